package chart

import (
	"fmt"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// TopGamesChart renders the most played games of a single genre as
// horizontal bars, most played first.
func (r *Renderer) TopGamesChart(path, genreName string, games []analytics.GameRecord) error {
	const width, height = 1000, 600

	if len(games) == 0 {
		return errors.NewRenderError(fmt.Sprintf("no games to chart for genre %s", genreName), nil)
	}

	dc := r.newCanvas(width, height)
	w, h := float64(width), float64(height)
	r.drawTitle(dc, w, fmt.Sprintf("Top %s Games", genreName))

	const (
		left   = 300.0
		right  = 100.0
		top    = 100.0
		bottom = 60.0
	)
	plotW := w - left - right
	plotH := h - top - bottom

	var maxPlays float64
	for _, g := range games {
		if float64(g.PlayCount) > maxPlays {
			maxPlays = float64(g.PlayCount)
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

	rowH := plotH / float64(len(games))
	barH := rowH * 0.64
	for i, g := range games {
		y := top + float64(i)*rowH + (rowH-barH)/2
		barW := float64(g.PlayCount) / axMax * plotW

		dc.SetRGB(rampColor(i, len(games)))
		dc.DrawRectangle(left, y, barW, barH)
		dc.Fill()

		dc.SetFontFace(r.labelFace)
		dc.SetHexColor(textHex)
		dc.DrawStringAnchored(truncateLabel(g.Title, 30), left-14, y+barH/2, 1, 0.5)

		dc.SetFontFace(r.smallFace)
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(compactCount(float64(g.PlayCount)), left+barW+10, y+barH/2, 0, 0.5)
	}

	dc.SetHexColor(frameHex)
	dc.SetLineWidth(2)
	dc.DrawLine(left, top, left, top+plotH)
	dc.DrawLine(left, top+plotH, left+plotW, top+plotH)
	dc.Stroke()

	return r.savePNG(dc, path)
}
