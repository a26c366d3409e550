// Package display implements the sign's mode state machine.
//
// A sign is always in exactly one of two modes:
//   - Editing: the user builds a draft PresentationConfig field by field
//   - Presenting: a frozen copy of the draft is shown full-screen
//
// The Mode type is a closed tagged union (Editing | Presenting) and the
// Controller is the only thing allowed to move between them:
//
//	ctrl := display.NewController(display.DefaultConfig(),
//	    display.WithGestureResetter(detector),
//	    display.WithAnimationClock(marquee),
//	)
//
//	_ = ctrl.UpdateDraft(display.WithText("HELLO"), display.WithMarqueeMode(true))
//	if err := ctrl.Submit(); errors.Is(err, display.ErrEmptyText) {
//	    // show inline message, stay in Editing
//	}
//	...
//	_ = ctrl.Exit() // back to Editing, draft untouched
//
// # Transitions
//
//	Editing    --Submit (non-empty text)-->  Presenting
//	Presenting --Exit (triple-tap or esc)-->  Editing
//
// No other transitions exist. Calling an operation from the wrong mode
// returns a *TransitionError that wraps ErrNotEditing or ErrNotPresenting.
//
// # Color Clash
//
// A draft whose text and background colors are equal carries an advisory
// ColorClash flag. It is recomputed whenever either color is set and never
// blocks Submit.
//
// # Hooks
//
// Entering Presenting resets the gesture detector and, for marquee configs,
// starts the animation clock. Leaving Presenting always stops the clock so
// no tick can mutate scroll state after teardown.
package display
