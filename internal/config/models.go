package config

import (
	"time"

	"github.com/muurk/signboard/internal/display"
)

// Settings is the entire settings file.
type Settings struct {
	Display DisplaySettings `mapstructure:"display" yaml:"display"`
	Timing  TimingSettings  `mapstructure:"timing" yaml:"timing"`
	Log     LogSettings     `mapstructure:"log" yaml:"log"`
}

// DisplaySettings seed the draft when the editor opens.
type DisplaySettings struct {
	TextColor       string `mapstructure:"text_color" yaml:"text_color"`             // Palette name or hex
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color"` // Palette name or hex
	ForceSingleLine bool   `mapstructure:"force_single_line" yaml:"force_single_line"`
	Marquee         bool   `mapstructure:"marquee" yaml:"marquee"`
}

// TimingSettings control the gesture window and the marquee clock.
type TimingSettings struct {
	TapWindowMs   int     `mapstructure:"tap_window_ms" yaml:"tap_window_ms"`
	MarqueeTickMs int     `mapstructure:"marquee_tick_ms" yaml:"marquee_tick_ms"`
	MarqueeStepPx float64 `mapstructure:"marquee_step_px" yaml:"marquee_step_px"`
}

// LogSettings configure internal/logging. An empty level means silent.
type LogSettings struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Default values
const (
	DefaultTextColor       = "white"
	DefaultBackgroundColor = "black"
	DefaultTapWindowMs     = 300
	DefaultMarqueeTickMs   = 50
	DefaultMarqueeStepPx   = 8.0
)

// NewSettings returns the built-in defaults.
func NewSettings() Settings {
	return Settings{
		Display: DisplaySettings{
			TextColor:       DefaultTextColor,
			BackgroundColor: DefaultBackgroundColor,
		},
		Timing: TimingSettings{
			TapWindowMs:   DefaultTapWindowMs,
			MarqueeTickMs: DefaultMarqueeTickMs,
			MarqueeStepPx: DefaultMarqueeStepPx,
		},
	}
}

// Draft converts the display settings into an initial presentation config.
// Unparseable colors fall back to the defaults; Validate reports them.
func (s Settings) Draft() display.PresentationConfig {
	cfg := display.DefaultConfig()
	if c, err := display.ParseColor(s.Display.TextColor); err == nil {
		cfg.TextColor = c
	}
	if c, err := display.ParseColor(s.Display.BackgroundColor); err == nil {
		cfg.BackgroundColor = c
	}
	cfg.ForceSingleLine = s.Display.ForceSingleLine
	cfg.MarqueeMode = s.Display.Marquee
	return cfg
}

// TapWindow returns the gesture window as a duration.
func (s Settings) TapWindow() time.Duration {
	return time.Duration(s.Timing.TapWindowMs) * time.Millisecond
}

// MarqueeTick returns the marquee clock period as a duration.
func (s Settings) MarqueeTick() time.Duration {
	return time.Duration(s.Timing.MarqueeTickMs) * time.Millisecond
}
