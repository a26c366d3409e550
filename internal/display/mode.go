package display

// ModeKind names the active mode.
type ModeKind int

const (
	ModeEditing ModeKind = iota
	ModePresenting
)

// String returns a human-readable name for the mode
func (k ModeKind) String() string {
	switch k {
	case ModeEditing:
		return "editing"
	case ModePresenting:
		return "presenting"
	default:
		return "unknown"
	}
}

// Mode is the tagged union Editing | Presenting. The unexported marker
// method keeps the set closed to this package.
type Mode interface {
	Kind() ModeKind
	isMode()
}

// Editing holds the mutable draft.
type Editing struct {
	Draft Draft
}

// Presenting holds the frozen config. The draft it was committed from is
// carried along so Exit can restore it untouched.
type Presenting struct {
	Config PresentationConfig
	draft  Draft
}

func (Editing) Kind() ModeKind    { return ModeEditing }
func (Presenting) Kind() ModeKind { return ModePresenting }

func (Editing) isMode()    {}
func (Presenting) isMode() {}
