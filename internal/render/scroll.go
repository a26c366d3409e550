package render

// DefaultStepPx is how far the marquee moves per tick.
const DefaultStepPx = 8.0

// ScrollState is the marquee position for one presentation session.
type ScrollState struct {
	OffsetPx float64
}

// AdvanceScroll moves offset one step to the right and wraps to
// -viewportWidth once it passes the right edge.
func AdvanceScroll(offsetPx, viewportWidth, stepPx float64) float64 {
	next := offsetPx + stepPx
	if next > viewportWidth {
		return -viewportWidth
	}
	return next
}
