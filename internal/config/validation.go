package config

import (
	"fmt"
	"io"

	"github.com/muurk/signboard/internal/display"
)

// Validation bounds
const (
	MinTapWindowMs   = 50
	MaxTapWindowMs   = 2000
	MinMarqueeTickMs = 10
	MaxMarqueeTickMs = 1000
	MinMarqueeStepPx = 1.0
	MaxMarqueeStepPx = 64.0
)

// FieldError describes one invalid settings field.
type FieldError struct {
	Field   string // Dotted key, e.g. "timing.tap_window_ms"
	Message string
}

// Error implements the error interface
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate returns one FieldError per invalid field.
func Validate(s *Settings) []error {
	var errs []error

	if _, err := display.ParseColor(s.Display.TextColor); err != nil {
		errs = append(errs, FieldError{Field: "display.text_color", Message: err.Error()})
	}
	if _, err := display.ParseColor(s.Display.BackgroundColor); err != nil {
		errs = append(errs, FieldError{Field: "display.background_color", Message: err.Error()})
	}

	if s.Timing.TapWindowMs < MinTapWindowMs || s.Timing.TapWindowMs > MaxTapWindowMs {
		errs = append(errs, FieldError{
			Field:   "timing.tap_window_ms",
			Message: fmt.Sprintf("must be between %d and %d (got %d)", MinTapWindowMs, MaxTapWindowMs, s.Timing.TapWindowMs),
		})
	}
	if s.Timing.MarqueeTickMs < MinMarqueeTickMs || s.Timing.MarqueeTickMs > MaxMarqueeTickMs {
		errs = append(errs, FieldError{
			Field:   "timing.marquee_tick_ms",
			Message: fmt.Sprintf("must be between %d and %d (got %d)", MinMarqueeTickMs, MaxMarqueeTickMs, s.Timing.MarqueeTickMs),
		})
	}
	if s.Timing.MarqueeStepPx < MinMarqueeStepPx || s.Timing.MarqueeStepPx > MaxMarqueeStepPx {
		errs = append(errs, FieldError{
			Field:   "timing.marquee_step_px",
			Message: fmt.Sprintf("must be between %g and %g (got %g)", MinMarqueeStepPx, MaxMarqueeStepPx, s.Timing.MarqueeStepPx),
		})
	}

	switch s.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error (got %q)", s.Log.Level),
		})
	}

	return errs
}

// ApplyDefaults resets every field named in errs to its default.
func ApplyDefaults(s *Settings, errs []error) {
	defaults := NewSettings()
	for _, err := range errs {
		fe, ok := err.(FieldError)
		if !ok {
			continue
		}
		switch fe.Field {
		case "display.text_color":
			s.Display.TextColor = defaults.Display.TextColor
		case "display.background_color":
			s.Display.BackgroundColor = defaults.Display.BackgroundColor
		case "timing.tap_window_ms":
			s.Timing.TapWindowMs = defaults.Timing.TapWindowMs
		case "timing.marquee_tick_ms":
			s.Timing.MarqueeTickMs = defaults.Timing.MarqueeTickMs
		case "timing.marquee_step_px":
			s.Timing.MarqueeStepPx = defaults.Timing.MarqueeStepPx
		case "log.level":
			s.Log.Level = defaults.Log.Level
		}
	}
}

// PrintWarnings writes one line per validation error.
func PrintWarnings(w io.Writer, errs []error) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(w, "Warning: %d invalid setting(s), using defaults for:\n", len(errs))
	for _, err := range errs {
		fmt.Fprintf(w, "  - %v\n", err)
	}
}
