package render

import "time"

// DefaultTick is the marquee clock period.
const DefaultTick = 50 * time.Millisecond

// Marquee is a cancellable repeating clock plus the scroll state it drives.
// The owner schedules one tick at a time with the token from Generation and
// reschedules only while Tick keeps returning true.
type Marquee struct {
	interval time.Duration
	step     float64

	running    bool
	generation uint64
	state      ScrollState
}

// NewMarquee creates a stopped clock. Non-positive values use the defaults.
func NewMarquee(interval time.Duration, stepPx float64) *Marquee {
	m := &Marquee{}
	m.Configure(interval, stepPx)
	return m
}

// Configure changes the period and step. The session, its offset and its
// generation are kept, so a tick already scheduled still lands.
func (m *Marquee) Configure(interval time.Duration, stepPx float64) {
	if interval <= 0 {
		interval = DefaultTick
	}
	if stepPx <= 0 {
		stepPx = DefaultStepPx
	}
	m.interval = interval
	m.step = stepPx
}

// Start begins a new session from offset zero. Starting a running clock is
// a no-op.
func (m *Marquee) Start() {
	if m.running {
		return
	}
	m.running = true
	m.generation++
	m.state = ScrollState{}
}

// Stop ends the session and discards its scroll state. Any tick already
// scheduled becomes stale.
func (m *Marquee) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.generation++
	m.state = ScrollState{}
}

// Tick advances the offset if gen belongs to the live session.
func (m *Marquee) Tick(gen uint64, viewportWidth float64) bool {
	if !m.running || gen != m.generation {
		return false
	}
	m.state.OffsetPx = AdvanceScroll(m.state.OffsetPx, viewportWidth, m.step)
	return true
}

// Running reports whether a session is live.
func (m *Marquee) Running() bool { return m.running }

// Generation is the token the next scheduled tick must carry.
func (m *Marquee) Generation() uint64 { return m.generation }

// Offset returns the current scroll offset in pixels.
func (m *Marquee) Offset() float64 { return m.state.OffsetPx }

// State returns a copy of the scroll state.
func (m *Marquee) State() ScrollState { return m.state }

// Interval returns the tick period.
func (m *Marquee) Interval() time.Duration { return m.interval }

// Step returns the per-tick advance in pixels.
func (m *Marquee) Step() float64 { return m.step }
