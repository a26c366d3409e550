package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/signboard/internal/display"
	"github.com/muurk/signboard/internal/render"
)

// Below this many cells the sign is shown as plain text.
const (
	MinSignCols = 10
	MinSignRows = 3
)

// ViewportPx converts a cell area to the pixel grid the rasterizer draws
// on. Each cell holds two vertically stacked pixels.
func ViewportPx(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// SignView draws cfg filling cols×rows cells. offset is the marquee scroll
// offset in pixels and is ignored for static signs.
func SignView(r *render.Rasterizer, cfg display.PresentationConfig, cols, rows int, offset float64) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	style := signStyle(cfg)

	if cols >= MinSignCols && rows >= MinSignRows {
		w, h := ViewportPx(cols, rows)
		mask, _ := r.Mask(cfg, w, h, offset)
		// A marquee frame with the text scrolled out of view stays blank.
		if mask.Ink() > 0 || cfg.MarqueeMode {
			lines := mask.HalfBlocks()
			for i, line := range lines {
				lines[i] = style.Render(line)
			}
			return strings.Join(lines, "\n")
		}
	}
	return plainSign(style, cfg.Text, cols, rows)
}
