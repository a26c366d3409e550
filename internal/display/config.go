package display

import "strings"

// PresentationConfig is everything needed to present a message.
// A committed config is a value copy and is never mutated afterwards.
type PresentationConfig struct {
	Text            string `yaml:"text"`
	TextColor       Color  `yaml:"text_color"`
	BackgroundColor Color  `yaml:"background_color"`
	ForceSingleLine bool   `yaml:"force_single_line"`
	MarqueeMode     bool   `yaml:"marquee"`
}

// DefaultConfig returns white-on-black static text with no message.
func DefaultConfig() PresentationConfig {
	return PresentationConfig{
		TextColor:       White,
		BackgroundColor: Black,
	}
}

// HasText reports whether the text has any non-whitespace content.
func (c PresentationConfig) HasText() bool {
	return strings.TrimSpace(c.Text) != ""
}

// ColorsClash reports whether text and background share a color.
func (c PresentationConfig) ColorsClash() bool {
	return c.TextColor == c.BackgroundColor
}

// Draft is the editable config plus the advisory color clash flag.
type Draft struct {
	PresentationConfig
	ColorClash bool
}

func newDraft(cfg PresentationConfig) Draft {
	return Draft{
		PresentationConfig: cfg,
		ColorClash:         cfg.ColorsClash(),
	}
}

// Warning returns ErrColorClash when the flag is raised, nil otherwise.
func (d Draft) Warning() error {
	if d.ColorClash {
		return ErrColorClash
	}
	return nil
}

// DraftOption sets one field of a draft. Options are applied in order.
type DraftOption func(*draftUpdate)

type draftUpdate struct {
	cfg          *PresentationConfig
	colorChanged bool
}

// WithText sets the message text.
func WithText(text string) DraftOption {
	return func(u *draftUpdate) {
		u.cfg.Text = text
	}
}

// WithTextColor sets the foreground color.
func WithTextColor(c Color) DraftOption {
	return func(u *draftUpdate) {
		u.cfg.TextColor = c
		u.colorChanged = true
	}
}

// WithBackgroundColor sets the background color.
func WithBackgroundColor(c Color) DraftOption {
	return func(u *draftUpdate) {
		u.cfg.BackgroundColor = c
		u.colorChanged = true
	}
}

// WithForceSingleLine keeps static text on one line.
func WithForceSingleLine(on bool) DraftOption {
	return func(u *draftUpdate) {
		u.cfg.ForceSingleLine = on
	}
}

// WithMarqueeMode selects horizontal scrolling instead of static text.
func WithMarqueeMode(on bool) DraftOption {
	return func(u *draftUpdate) {
		u.cfg.MarqueeMode = on
	}
}

// apply merges opts into d. The clash flag is only recomputed when a color
// option ran.
func (d Draft) apply(opts ...DraftOption) Draft {
	u := draftUpdate{cfg: &d.PresentationConfig}
	for _, opt := range opts {
		opt(&u)
	}
	if u.colorChanged {
		d.ColorClash = d.ColorsClash()
	}
	return d
}
