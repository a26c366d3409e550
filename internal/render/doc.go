// Package render computes presentation parameters for a committed sign.
//
// Two pure computations cover the two presentation styles:
//   - FontSize: coarse three-bucket sizing from text length and the
//     viewport's short side (static mode)
//   - AdvanceScroll: one step of the marquee offset with wrap-around
//
// Marquee is the animation clock for scrolling mode. It implements
// display.Clock so the mode controller can start and stop it on
// transitions, and it only advances for ticks carrying its current
// generation, so a tick scheduled before Stop can never move the offset.
//
// Rasterizer turns a config into pixels with fogleman/gg and the Go Bold
// font. The TUI consumes the result as a Mask rendered in half-block
// cells; the render command writes it out as a PNG.
package render
