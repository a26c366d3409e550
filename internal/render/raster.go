package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/muurk/signboard/internal/display"
)

const (
	// minFontPx is the smallest size the shrink-to-fit loop will go to.
	minFontPx = 4.0
	// shrinkFactor is applied per shrink-to-fit iteration.
	shrinkFactor = 0.9
	lineSpacing  = 1.15
)

// Rasterizer draws sign text with the Go Bold face. Faces are cached per
// size; a Rasterizer must not be shared between goroutines.
type Rasterizer struct {
	font  *truetype.Font
	faces map[int]font.Face
}

// NewRasterizer parses the embedded font.
func NewRasterizer() (*Rasterizer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Rasterizer{
		font:  f,
		faces: make(map[int]font.Face),
	}, nil
}

// Layout describes how the text was placed.
type Layout struct {
	FontPx float64  // Size actually used after shrink-to-fit
	Lines  []string // Lines drawn, top to bottom
}

// Image draws cfg in its own colors at full resolution.
func (r *Rasterizer) Image(cfg display.PresentationConfig, width, height int, offset float64) (image.Image, Layout) {
	dc := gg.NewContext(width, height)
	layout := r.draw(dc, cfg, toRGBA(cfg.TextColor), toRGBA(cfg.BackgroundColor), offset)
	return dc.Image(), layout
}

// Mask draws cfg as white-on-black and thresholds it to on/off pixels.
func (r *Rasterizer) Mask(cfg display.PresentationConfig, width, height int, offset float64) (Mask, Layout) {
	if width <= 0 || height <= 0 {
		return Mask{}, Layout{}
	}
	dc := gg.NewContext(width, height)
	layout := r.draw(dc, cfg, color.White, color.Black, offset)
	return maskFromImage(dc.Image()), layout
}

// EncodePNG writes the full-color image to w.
func (r *Rasterizer) EncodePNG(w io.Writer, cfg display.PresentationConfig, width, height int) (Layout, error) {
	img, layout := r.Image(cfg, width, height, 0)
	if err := png.Encode(w, img); err != nil {
		return layout, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return layout, nil
}

// SavePNG writes the full-color image to path.
func (r *Rasterizer) SavePNG(path string, cfg display.PresentationConfig, width, height int) (Layout, error) {
	dc := gg.NewContext(width, height)
	layout := r.draw(dc, cfg, toRGBA(cfg.TextColor), toRGBA(cfg.BackgroundColor), 0)
	if err := dc.SavePNG(path); err != nil {
		return layout, fmt.Errorf("failed to save PNG: %w", err)
	}
	return layout, nil
}

func (r *Rasterizer) draw(dc *gg.Context, cfg display.PresentationConfig, fg, bg color.Color, offset float64) Layout {
	w := float64(dc.Width())
	h := float64(dc.Height())

	dc.SetColor(bg)
	dc.Clear()
	dc.SetColor(fg)

	size := FontSize(cfg.Text, math.Min(w, h))
	if size < minFontPx {
		size = minFontPx
	}

	if cfg.MarqueeMode {
		line := singleLine(cfg.Text)
		dc.SetFontFace(r.face(size))
		dc.DrawStringAnchored(line, offset, h/2, 0, 0.5)
		return Layout{FontPx: size, Lines: []string{line}}
	}

	lines, size := r.fit(dc, cfg, size, w, h)
	lineHeight := dc.FontHeight() * lineSpacing
	top := (h - lineHeight*float64(len(lines))) / 2
	for i, line := range lines {
		y := top + lineHeight*(float64(i)+0.5)
		dc.DrawStringAnchored(line, w/2, y, 0.5, 0.5)
	}
	return Layout{FontPx: size, Lines: lines}
}

// fit shrinks the font until the wrapped text fits the viewport or the
// minimum size is reached. It leaves the chosen face set on dc.
func (r *Rasterizer) fit(dc *gg.Context, cfg display.PresentationConfig, size, w, h float64) ([]string, float64) {
	for {
		dc.SetFontFace(r.face(size))

		var lines []string
		if cfg.ForceSingleLine {
			lines = []string{singleLine(cfg.Text)}
		} else {
			lines = dc.WordWrap(cfg.Text, w)
		}

		widest := 0.0
		for _, line := range lines {
			if lw, _ := dc.MeasureString(line); lw > widest {
				widest = lw
			}
		}
		tall := dc.FontHeight() * lineSpacing * float64(len(lines))

		if (widest <= w && tall <= h) || size <= minFontPx {
			return lines, size
		}
		size = math.Max(size*shrinkFactor, minFontPx)
	}
}

func (r *Rasterizer) face(size float64) font.Face {
	key := int(math.Round(size * 4))
	if f, ok := r.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    float64(key) / 4,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = f
	return f
}

func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func toRGBA(c display.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
