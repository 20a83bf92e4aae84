package chart

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"gamelens/internal/errors"
)

const (
	backgroundHex = "#ffffff"
	frameHex      = "#333333"
	gridHex       = "#e3e3e3"
	textHex       = "#222222"
	subtitleHex   = "#555555"
)

// Renderer draws the analysis charts. Font faces are parsed once from the
// embedded Go fonts, so rendering needs no files beyond the output PNGs.
type Renderer struct {
	logger *slog.Logger

	titleFace font.Face
	boldFace  font.Face
	labelFace font.Face
	smallFace font.Face
}

// NewRenderer creates a renderer with parsed font faces. A nil logger falls
// back to slog.Default().
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.NewRenderError("failed to parse bold font", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.NewRenderError("failed to parse regular font", err)
	}

	return &Renderer{
		logger:    logger,
		titleFace: newFace(bold, 30),
		boldFace:  newFace(bold, 18),
		labelFace: newFace(regular, 16),
		smallFace: newFace(regular, 13),
	}, nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// newCanvas returns a white context of the given size.
func (r *Renderer) newCanvas(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetHexColor(backgroundHex)
	dc.Clear()
	return dc
}

// drawTitle centers the chart title near the top edge.
func (r *Renderer) drawTitle(dc *gg.Context, width float64, title string) {
	dc.SetFontFace(r.titleFace)
	dc.SetHexColor(textHex)
	dc.DrawStringAnchored(title, width/2, 42, 0.5, 0.5)
}

// drawSubtitle centers secondary text under the title.
func (r *Renderer) drawSubtitle(dc *gg.Context, width float64, subtitle string) {
	dc.SetFontFace(r.labelFace)
	dc.SetHexColor(subtitleHex)
	dc.DrawStringAnchored(subtitle, width/2, 76, 0.5, 0.5)
}

// savePNG writes the finished canvas, creating the output directory first.
func (r *Renderer) savePNG(dc *gg.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create chart directory", err)
	}
	if err := dc.SavePNG(path); err != nil {
		return errors.NewStorageError("failed to save chart", err)
	}
	r.logger.Debug("Chart written", slog.String("path", path))
	return nil
}
