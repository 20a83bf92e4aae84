package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"gamelens/internal/analytics"
	"gamelens/internal/errors"
)

// RatingsChart renders the mean-rating view as a two-panel composite: a pie
// of rating share on the left and matching horizontal bars on a fixed 0-5
// axis on the right. Wedges and bars share colors by index.
func (r *Renderer) RatingsChart(path string, genres []analytics.GenreAggregate) error {
	const width, height = 1600, 800

	if len(genres) == 0 {
		return errors.NewRenderError("no rated genres to chart", nil)
	}

	var total float64
	for _, g := range genres {
		total += g.MeanRating
	}
	if total <= 0 {
		return errors.NewRenderError("mean ratings sum to zero", nil)
	}

	dc := r.newCanvas(width, height)
	w := float64(width)
	r.drawTitle(dc, w, "Mean Rating by Genre")

	r.drawRatingPie(dc, genres, total)
	r.drawRatingBars(dc, genres)

	return r.savePNG(dc, path)
}

func (r *Renderer) drawRatingPie(dc *gg.Context, genres []analytics.GenreAggregate, total float64) {
	const (
		cx     = 420.0
		cy     = 450.0
		radius = 260.0
	)

	start := -math.Pi / 2
	for i, g := range genres {
		frac := g.MeanRating / total
		end := start + frac*2*math.Pi

		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, start, end)
		dc.ClosePath()
		dc.SetHexColor(wedgeColor(i))
		dc.FillPreserve()
		dc.SetHexColor(backgroundHex)
		dc.SetLineWidth(2)
		dc.Stroke()

		mid := (start + end) / 2

		// Share label inside the wedge.
		dc.SetFontFace(r.smallFace)
		dc.SetHexColor(textHex)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", frac*100),
			cx+math.Cos(mid)*radius*0.62, cy+math.Sin(mid)*radius*0.62, 0.5, 0.5)

		// Genre label outside, anchored toward the pie.
		anchor := 0.0
		if math.Cos(mid) < 0 {
			anchor = 1.0
		}
		dc.DrawStringAnchored(truncateLabel(g.Genre, 22),
			cx+math.Cos(mid)*radius*1.12, cy+math.Sin(mid)*radius*1.12, anchor, 0.5)

		start = end
	}
}

func (r *Renderer) drawRatingBars(dc *gg.Context, genres []analytics.GenreAggregate) {
	const (
		left   = 1020.0
		top    = 130.0
		plotW  = 440.0
		bottom = 700.0
	)
	plotH := bottom - top

	// Fixed 0-5 rating axis.
	dc.SetFontFace(r.smallFace)
	for v := 0; v <= 5; v++ {
		x := left + float64(v)/5*plotW
		dc.SetHexColor(gridHex)
		dc.SetLineWidth(1)
		dc.DrawLine(x, top, x, bottom)
		dc.Stroke()
		dc.SetHexColor(subtitleHex)
		dc.DrawStringAnchored(strconv.Itoa(v), x, bottom+18, 0.5, 0.5)
	}

	rowH := plotH / float64(len(genres))
	barH := rowH * 0.64
	for i, g := range genres {
		y := top + float64(i)*rowH + (rowH-barH)/2
		barW := g.MeanRating / 5 * plotW

		dc.SetHexColor(wedgeColor(i))
		dc.DrawRectangle(left, y, barW, barH)
		dc.Fill()

		dc.SetFontFace(r.labelFace)
		dc.SetHexColor(textHex)
		dc.DrawStringAnchored(truncateLabel(g.Genre, 20), left-14, y+barH/2, 1, 0.5)

		dc.SetFontFace(r.smallFace)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", g.MeanRating), left+barW+10, y+barH/2, 0, 0.5)
	}

	dc.SetHexColor(frameHex)
	dc.SetLineWidth(2)
	dc.DrawLine(left, top, left, bottom)
	dc.DrawLine(left, bottom, left+plotW, bottom)
	dc.Stroke()
}
