package gesture

import "time"

const (
	// DefaultWindow is the maximum gap between consecutive taps.
	DefaultWindow = 300 * time.Millisecond

	// DefaultThreshold is the number of taps that fire the gesture.
	DefaultThreshold = 3
)

// Result is the outcome of feeding an event to the Detector.
type Result int

const (
	// Continuing means the tap was counted and the window is armed.
	Continuing Result = iota
	// Fired means the threshold was reached; state is back to zero.
	Fired
	// Reset means the window expired before the next tap.
	Reset
)

// String returns a human-readable name for the result
func (r Result) String() string {
	switch r {
	case Continuing:
		return "continuing"
	case Fired:
		return "fired"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Option configures a Detector.
type Option func(*Detector)

// WithThreshold overrides the number of taps needed to fire. Values below
// two are ignored.
func WithThreshold(n int) Option {
	return func(d *Detector) {
		if n >= 2 {
			d.threshold = n
		}
	}
}

// WithResetHandler is called whenever a partially counted sequence expires.
func WithResetHandler(fn func()) Option {
	return func(d *Detector) {
		d.onReset = fn
	}
}

// Detector counts taps. It is owned by a single event loop and is not safe
// for concurrent use.
type Detector struct {
	window    time.Duration
	threshold int
	onReset   func()

	count      int
	deadline   time.Time // zero when no window is armed
	generation uint64
}

// New creates a detector. A non-positive window falls back to DefaultWindow.
func New(window time.Duration, opts ...Option) *Detector {
	if window <= 0 {
		window = DefaultWindow
	}
	d := &Detector{
		window:    window,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnTap counts a tap that happened at now.
func (d *Detector) OnTap(now time.Time) Result {
	if d.count > 0 && !now.Before(d.deadline) {
		d.expire()
	}

	d.count++
	if d.count >= d.threshold {
		d.clear()
		return Fired
	}

	d.deadline = now.Add(d.window)
	d.generation++
	return Continuing
}

// Expire is called by the owner's timer. The second return value is false
// when gen no longer matches the armed window (a newer tap re-armed it, the
// gesture fired, or Reset was called), in which case nothing changes.
func (d *Detector) Expire(gen uint64) (Result, bool) {
	if gen != d.generation || d.count == 0 {
		return Continuing, false
	}
	d.expire()
	return Reset, true
}

// Reset drops any partial sequence and cancels the pending window without
// calling the reset handler.
func (d *Detector) Reset() {
	d.clear()
}

// SetWindow changes the window length and drops any partial sequence.
// A non-positive window falls back to DefaultWindow.
func (d *Detector) SetWindow(window time.Duration) {
	if window <= 0 {
		window = DefaultWindow
	}
	d.window = window
	d.clear()
}

// Window reports the armed deadline and its generation token.
func (d *Detector) Window() (deadline time.Time, gen uint64, armed bool) {
	return d.deadline, d.generation, d.count > 0
}

// Count returns the taps counted in the current sequence.
func (d *Detector) Count() int {
	return d.count
}

// Duration returns the configured window length.
func (d *Detector) Duration() time.Duration {
	return d.window
}

func (d *Detector) expire() {
	d.clear()
	if d.onReset != nil {
		d.onReset()
	}
}

// clear bumps the generation so any outstanding timer becomes stale.
func (d *Detector) clear() {
	d.count = 0
	d.deadline = time.Time{}
	d.generation++
}
