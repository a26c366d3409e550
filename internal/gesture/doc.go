// Package gesture detects the triple-tap exit gesture.
//
// The Detector is a debounced counter, not a general gesture recognizer:
// it only answers "did N taps arrive with every gap shorter than the
// window". It never touches a real timer itself. The owner schedules a
// one-shot timer from Window() and hands the generation token back to
// Expire when it fires:
//
//	d := gesture.New(gesture.DefaultWindow)
//	switch d.OnTap(now) {
//	case gesture.Fired:
//	    // exit presenting
//	case gesture.Continuing:
//	    deadline, gen, _ := d.Window()
//	    schedule(deadline, func() { d.Expire(gen) })
//	}
//
// Every tap re-arms the window by bumping the generation, so a timer
// scheduled for an earlier tap is ignored when it eventually fires. A tap
// that arrives at or after the live deadline is treated as the first tap
// of a new sequence even if the owner's timer has not fired yet.
package gesture
