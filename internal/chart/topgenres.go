package chart

import (
	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// TopGenresChart renders the play-count ranking as horizontal bars with
// rank 1 at the top, the color ramp following the ranking, and value labels
// at the bar ends.
func (r *Renderer) TopGenresChart(path string, genres []analytics.GenreAggregate) error {
	const width, height = 1200, 800

	if len(genres) == 0 {
		return errors.NewRenderError("no genres to chart", nil)
	}

	dc := r.newCanvas(width, height)
	w, h := float64(width), float64(height)
	r.drawTitle(dc, w, "Top Genres by Total Plays")

	const (
		left   = 270.0
		right  = 110.0
		top    = 110.0
		bottom = 70.0
	)
	plotW := w - left - right
	plotH := h - top - bottom

	var maxPlays float64
	for _, g := range genres {
		if float64(g.TotalPlays) > maxPlays {
			maxPlays = float64(g.TotalPlays)
		}
	}
	axMax, step := axisMax(maxPlays)

	dc.SetFontFace(r.smallFace)
	for v := 0.0; v <= axMax+step/2; v += step {
		x := left + v/axMax*plotW
		dc.SetHexColor(gridHex)
		dc.SetLineWidth(1)
		dc.DrawLine(x, top, x, top+plotH)
		dc.Stroke()
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(compactCount(v), x, top+plotH+18, 0.5, 0.5)
	}

	rowH := plotH / float64(len(genres))
	barH := rowH * 0.68
	for i, g := range genres {
		y := top + float64(i)*rowH + (rowH-barH)/2
		barW := float64(g.TotalPlays) / axMax * plotW

		dc.SetRGB(rampColor(i, len(genres)))
		dc.DrawRectangle(left, y, barW, barH)
		dc.Fill()

		dc.SetFontFace(r.labelFace)
		dc.SetHexColor(textHex)
		dc.DrawStringAnchored(truncateLabel(g.Genre, 26), left-14, y+barH/2, 1, 0.5)

		dc.SetFontFace(r.smallFace)
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(compactCount(float64(g.TotalPlays)), left+barW+10, y+barH/2, 0, 0.5)
	}

	dc.SetHexColor(frameHex)
	dc.SetLineWidth(2)
	dc.DrawLine(left, top, left, top+plotH)
	dc.DrawLine(left, top+plotH, left+plotW, top+plotH)
	dc.Stroke()

	return r.savePNG(dc, path)
}
