package render

import (
	"image"
	"strings"
)

// Mask is a monochrome bitmap: true where text ink is.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// NewMask returns an empty mask.
func NewMask(width, height int) Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Mask{Width: width, Height: height, bits: make([]bool, width*height)}
}

// Set turns a pixel on or off. Out-of-range coordinates are ignored.
func (m Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.bits[y*m.Width+x] = on
}

// At reports whether a pixel is on. Out-of-range coordinates are off.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}

// Ink counts lit pixels.
func (m Mask) Ink() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// HalfBlocks packs two pixel rows into each text row using the upper and
// lower half block characters. The result has ceil(Height/2) rows of Width
// cells each.
func (m Mask) HalfBlocks() []string {
	rows := (m.Height + 1) / 2
	out := make([]string, rows)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		for x := 0; x < m.Width; x++ {
			top := m.At(x, row*2)
			bottom := m.At(x, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		out[row] = b.String()
	}
	return out
}

func maskFromImage(img image.Image) Mask {
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			m.Set(x-bounds.Min.X, y-bounds.Min.Y, r > 0x7FFF)
		}
	}
	return m
}
