package chart

import (
	"fmt"
	"strings"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// MostPlayedChart renders a single highlighted bar for the library's most
// played game. The exact count sits above the bar; the subtitle repeats the
// abbreviated token from the source catalog.
func (r *Renderer) MostPlayedChart(path string, game analytics.GameRecord) error {
	const width, height = 1000, 600
	w, h := float64(width), float64(height)

	if game.Title == "" && game.PlayCount == 0 {
		return errors.NewRenderError("no game to chart", nil)
	}

	dc := r.newCanvas(width, height)
	r.drawTitle(dc, w, "Most Played Game")
	if game.Plays != "" {
		r.drawSubtitle(dc, w, fmt.Sprintf("Reported as %s in the source catalog", game.Plays))
	}

	const (
		plotTop  = 140.0
		barWidth = 220.0
	)
	plotBottom := h - 110
	barX := (w - barWidth) / 2

	dc.SetHexColor(highlightHex)
	dc.DrawRectangle(barX, plotTop, barWidth, plotBottom-plotTop)
	dc.Fill()

	dc.SetFontFace(r.boldFace)
	dc.SetHexColor(textHex)
	dc.DrawStringAnchored(groupDigits(game.PlayCount)+" plays", w/2, plotTop-20, 0.5, 0.5)

	dc.SetHexColor(frameHex)
	dc.SetLineWidth(2)
	dc.DrawLine(w*0.2, plotBottom, w*0.8, plotBottom)
	dc.Stroke()

	dc.SetFontFace(r.labelFace)
	dc.SetHexColor(textHex)
	dc.DrawStringAnchored(truncateLabel(game.Title, 40), w/2, plotBottom+28, 0.5, 0.5)
	if len(game.Genres) > 0 {
		dc.SetFontFace(r.smallFace)
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(strings.Join(game.Genres, ", "), w/2, plotBottom+52, 0.5, 0.5)
	}

	return r.savePNG(dc, path)
}
