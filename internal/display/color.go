package display

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a palette entry represented as an upper-case "#RRGGBB" string.
type Color string

// The fixed sign palette.
const (
	White  Color = "#FFFFFF"
	Black  Color = "#000000"
	Pink   Color = "#FFC0CB"
	Blue   Color = "#0000FF"
	Orange Color = "#FFA500"
)

// Palette lists the selectable colors in swatch order.
var Palette = []Color{White, Black, Pink, Blue, Orange}

var colorNames = map[Color]string{
	White:  "white",
	Black:  "black",
	Pink:   "pink",
	Blue:   "blue",
	Orange: "orange",
}

// ParseColor accepts a palette name ("pink") or hex value ("#ffc0cb").
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for c, name := range colorNames {
		if v == name || v == strings.ToLower(string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownColor, s, strings.Join(PaletteNames(), ", "))
}

// MustParseColor is ParseColor for compile-time constants in tests and defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// PaletteNames returns the palette names in swatch order.
func PaletteNames() []string {
	names := make([]string, len(Palette))
	for i, c := range Palette {
		names[i] = colorNames[c]
	}
	return names
}

// Name returns the palette name, or the raw value for colors outside it.
func (c Color) Name() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return string(c)
}

// Hex returns the "#RRGGBB" form.
func (c Color) Hex() string {
	return string(c)
}

// RGB splits the color into 8-bit channels. Malformed values yield black.
func (c Color) RGB() (r, g, b uint8) {
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Valid reports whether c is a palette member.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// Next returns the following palette entry, wrapping around.
func (c Color) Next() Color {
	return c.step(1)
}

// Prev returns the preceding palette entry, wrapping around.
func (c Color) Prev() Color {
	return c.step(-1)
}

func (c Color) step(delta int) Color {
	idx := 0
	for i, p := range Palette {
		if p == c {
			idx = i
			break
		}
	}
	n := len(Palette)
	return Palette[((idx+delta)%n+n)%n]
}

func (c Color) String() string {
	return c.Name()
}
