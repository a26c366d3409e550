package render

import "unicode/utf8"

// Length thresholds for FontSize, in runes.
const (
	LongTextLen   = 50
	MediumTextLen = 20
)

// FontSize returns the nominal font size for static text. It does not
// guarantee a fit; the rasterizer shrinks further when it has to.
func FontSize(text string, viewportShortSide float64) float64 {
	base := viewportShortSide / 5

	n := utf8.RuneCountInString(text)
	scale := 1.0
	switch {
	case n > LongTextLen:
		scale = 0.4
	case n > MediumTextLen:
		scale = 0.6
	}
	return base * scale
}
