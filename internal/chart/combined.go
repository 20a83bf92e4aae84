package chart

import (
	"fmt"

	"github.com/fogleman/gg"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// CombinedChart renders the dual-axis view: bars for total plays against
// the left axis, a marked line for mean rating against a fixed 0-5 right
// axis, genre labels rotated 45 degrees, and a legend for both series.
func (r *Renderer) CombinedChart(path string, entries []analytics.CombinedEntry) error {
	const width, height = 1400, 800

	if len(entries) == 0 {
		return errors.NewRenderError("no combined entries to chart", nil)
	}

	dc := r.newCanvas(width, height)
	w, h := float64(width), float64(height)
	r.drawTitle(dc, w, "Top Genres: Plays vs Rating")

	const (
		left   = 130.0
		right  = 130.0
		top    = 120.0
		bottom = 200.0
	)
	plotW := w - left - right
	plotH := h - top - bottom
	baseline := top + plotH

	var maxPlays float64
	for _, e := range entries {
		if float64(e.TotalPlays) > maxPlays {
			maxPlays = float64(e.TotalPlays)
		}
	}
	axMax, step := axisMax(maxPlays)

	// Left axis gridlines and play-count labels.
	dc.SetFontFace(r.smallFace)
	for v := 0.0; v <= axMax+step/2; v += step {
		y := baseline - v/axMax*plotH
		dc.SetHexColor(gridHex)
		dc.SetLineWidth(1)
		dc.DrawLine(left, y, left+plotW, y)
		dc.Stroke()
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(compactCount(v), left-10, y, 1, 0.5)
	}

	// Right axis: fixed 0-5 rating scale.
	for v := 0; v <= 5; v++ {
		y := baseline - float64(v)/5*plotH
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(fmt.Sprintf("%d.0", v), left+plotW+10, y, 0, 0.5)
	}

	slotW := plotW / float64(len(entries))
	barW := slotW * 0.6

	for i, e := range entries {
		x := left + float64(i)*slotW + slotW/2
		barH := float64(e.TotalPlays) / axMax * plotH
		dc.SetHexColor(seriesHex)
		dc.DrawRectangle(x-barW/2, baseline-barH, barW, barH)
		dc.Fill()
	}

	// Rating line with point markers, drawn over the bars.
	dc.SetHexColor(highlightHex)
	dc.SetLineWidth(3)
	for i, e := range entries {
		x := left + float64(i)*slotW + slotW/2
		y := baseline - e.MeanRating/5*plotH
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
	for i, e := range entries {
		x := left + float64(i)*slotW + slotW/2
		y := baseline - e.MeanRating/5*plotH
		dc.DrawCircle(x, y, 5)
		dc.Fill()
	}

	// Genre labels rotated 45 degrees under the baseline.
	dc.SetFontFace(r.labelFace)
	dc.SetHexColor(textHex)
	for i, e := range entries {
		x := left + float64(i)*slotW + slotW/2
		y := baseline + 16
		dc.Push()
		dc.RotateAbout(gg.Radians(-45), x, y)
		dc.DrawStringAnchored(truncateLabel(e.Genre, 22), x, y, 1, 0.5)
		dc.Pop()
	}

	dc.SetHexColor(frameHex)
	dc.SetLineWidth(2)
	dc.DrawLine(left, top, left, baseline)
	dc.DrawLine(left, baseline, left+plotW, baseline)
	dc.DrawLine(left+plotW, top, left+plotW, baseline)
	dc.Stroke()

	r.drawCombinedLegend(dc, left+plotW-300, 96)

	return r.savePNG(dc, path)
}

func (r *Renderer) drawCombinedLegend(dc *gg.Context, x, y float64) {
	dc.SetFontFace(r.smallFace)

	dc.SetHexColor(seriesHex)
	dc.DrawRectangle(x, y-7, 26, 14)
	dc.Fill()
	dc.SetHexColor(textHex)
	dc.DrawStringAnchored("Total Plays", x+34, y, 0, 0.5)

	dc.SetHexColor(highlightHex)
	dc.SetLineWidth(3)
	dc.DrawLine(x+140, y, x+172, y)
	dc.Stroke()
	dc.DrawCircle(x+156, y, 4)
	dc.Fill()
	dc.SetHexColor(textHex)
	dc.DrawStringAnchored("Mean Rating", x+180, y, 0, 0.5)
}
