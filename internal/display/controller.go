package display

import (
	"go.uber.org/zap"
)

// Resetter clears gesture state at the start of a presentation session.
type Resetter interface {
	Reset()
}

// Clock is the marquee animation clock. Start and Stop must be idempotent.
type Clock interface {
	Start()
	Stop()
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithGestureResetter registers the tap detector reset on submit.
func WithGestureResetter(r Resetter) ControllerOption {
	return func(c *Controller) {
		c.gesture = r
	}
}

// WithAnimationClock registers the marquee clock driven by mode transitions.
func WithAnimationClock(clock Clock) ControllerOption {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithLogger logs transitions and advisories.
func WithLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller owns the current Mode. It is not safe for concurrent use; all
// calls are expected from a single event loop.
type Controller struct {
	mode    Mode
	gesture Resetter
	clock   Clock
	logger  *zap.Logger
}

// NewController starts in Editing with the given initial draft.
func NewController(initial PresentationConfig, opts ...ControllerOption) *Controller {
	c := &Controller{
		mode:   Editing{Draft: newDraft(initial)},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the active mode value.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Kind is shorthand for Mode().Kind().
func (c *Controller) Kind() ModeKind {
	return c.mode.Kind()
}

// Draft returns the current draft. While presenting this is the draft the
// active config was committed from.
func (c *Controller) Draft() Draft {
	switch m := c.mode.(type) {
	case Editing:
		return m.Draft
	case Presenting:
		return m.draft
	}
	return Draft{}
}

// Active returns the committed config when presenting.
func (c *Controller) Active() (PresentationConfig, bool) {
	if m, ok := c.mode.(Presenting); ok {
		return m.Config, true
	}
	return PresentationConfig{}, false
}

// ColorClash reports the draft's advisory flag.
func (c *Controller) ColorClash() bool {
	return c.Draft().ColorClash
}

// UpdateDraft merges opts into the draft. Editing only.
func (c *Controller) UpdateDraft(opts ...DraftOption) error {
	m, ok := c.mode.(Editing)
	if !ok {
		return &TransitionError{Op: "update draft", From: c.Kind(), Err: ErrNotEditing}
	}

	before := m.Draft.ColorClash
	m.Draft = m.Draft.apply(opts...)
	c.mode = m

	if m.Draft.ColorClash != before {
		c.logger.Debug("Color clash changed",
			zap.Bool("clash", m.Draft.ColorClash),
			zap.String("text_color", m.Draft.TextColor.Name()),
			zap.String("background_color", m.Draft.BackgroundColor.Name()),
		)
	}
	return nil
}

// Submit freezes the draft and starts presenting it. Editing only.
// Empty or whitespace-only text is rejected with ErrEmptyText and the mode
// does not change. A color clash does not block submission.
func (c *Controller) Submit() error {
	m, ok := c.mode.(Editing)
	if !ok {
		return &TransitionError{Op: "submit", From: c.Kind(), Err: ErrNotEditing}
	}
	if !m.Draft.HasText() {
		return ErrEmptyText
	}
	if m.Draft.ColorClash {
		c.logger.Warn("Presenting with clashing colors",
			zap.String("color", m.Draft.TextColor.Name()),
		)
	}

	c.mode = Presenting{
		Config: m.Draft.PresentationConfig,
		draft:  m.Draft,
	}

	if c.gesture != nil {
		c.gesture.Reset()
	}
	if c.clock != nil && m.Draft.MarqueeMode {
		c.clock.Start()
	}

	c.logger.Info("Mode transition",
		zap.Stringer("from", ModeEditing),
		zap.Stringer("to", ModePresenting),
		zap.Bool("marquee", m.Draft.MarqueeMode),
		zap.Int("text_len", len([]rune(m.Draft.Text))),
	)
	return nil
}

// Exit stops presenting and restores the draft. Presenting only.
func (c *Controller) Exit() error {
	m, ok := c.mode.(Presenting)
	if !ok {
		return &TransitionError{Op: "exit", From: c.Kind(), Err: ErrNotPresenting}
	}

	if c.clock != nil {
		c.clock.Stop()
	}
	c.mode = Editing{Draft: m.draft}

	c.logger.Info("Mode transition",
		zap.Stringer("from", ModePresenting),
		zap.Stringer("to", ModeEditing),
	)
	return nil
}
