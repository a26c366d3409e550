package display

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned by Submit when the draft text is empty or
	// whitespace-only.
	ErrEmptyText = errors.New("message text is empty")

	// ErrColorClash is advisory. It is reported by Draft.Warning when text
	// and background share a color and is never returned by Submit.
	ErrColorClash = errors.New("text and background colors are the same")

	// ErrNotEditing is wrapped when an editing-only operation is called
	// while presenting.
	ErrNotEditing = errors.New("not in editing mode")

	// ErrNotPresenting is wrapped when Exit is called while editing.
	ErrNotPresenting = errors.New("not in presenting mode")

	// ErrUnknownColor is returned by ParseColor for values outside the palette.
	ErrUnknownColor = errors.New("unknown color")
)

// TransitionError reports an operation attempted from the wrong mode.
type TransitionError struct {
	Op   string   // Operation that was attempted ("submit", "exit", ...)
	From ModeKind // Mode the controller was in
	Err  error    // ErrNotEditing or ErrNotPresenting
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %v (mode: %s)", e.Op, e.Err, e.From)
}

// Unwrap returns the underlying sentinel for errors.Is
func (e *TransitionError) Unwrap() error {
	return e.Err
}
