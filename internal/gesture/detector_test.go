package gesture

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestTripleTapWithinWindowFires(t *testing.T) {
	tests := []struct {
		name string
		taps []int
	}{
		{"evenly spaced", []int{0, 100, 200}},
		{"uneven gaps", []int{0, 290, 310}},
		{"burst", []int{0, 1, 2}},
		{"just under window each gap", []int{0, 299, 598}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(DefaultWindow)

			for i, ms := range tt.taps[:2] {
				if got := d.OnTap(at(ms)); got != Continuing {
					t.Fatalf("tap %d = %v, want continuing", i+1, got)
				}
			}
			if got := d.OnTap(at(tt.taps[2])); got != Fired {
				t.Fatalf("tap 3 = %v, want fired", got)
			}
			if d.Count() != 0 {
				t.Errorf("Count() after fire = %d, want 0", d.Count())
			}
			if _, _, armed := d.Window(); armed {
				t.Error("window should be disarmed after fire")
			}
		})
	}
}

func TestGapAtOrBeyondWindowRestartsCount(t *testing.T) {
	resets := 0
	d := New(DefaultWindow, WithResetHandler(func() { resets++ }))

	d.OnTap(at(0))
	d.OnTap(at(100))
	// 400ms gap: window expired before this tap, so it counts as the first.
	if got := d.OnTap(at(500)); got != Continuing {
		t.Fatalf("tap at 500ms = %v, want continuing", got)
	}
	if d.Count() != 1 {
		t.Errorf("Count() = %d, want 1 (fresh sequence)", d.Count())
	}
	if resets != 1 {
		t.Errorf("reset handler calls = %d, want 1", resets)
	}

	// Exactly one window later is also too late.
	d2 := New(DefaultWindow)
	d2.OnTap(at(0))
	d2.OnTap(at(300))
	if d2.Count() != 1 {
		t.Errorf("gap of exactly the window should restart, Count() = %d", d2.Count())
	}
}

func TestFiresExactlyOncePerThreeTaps(t *testing.T) {
	d := New(DefaultWindow)
	fired := 0
	for i := 0; i < 9; i++ {
		if d.OnTap(at(i*50)) == Fired {
			fired++
		}
	}
	if fired != 3 {
		t.Errorf("nine quick taps fired %d times, want 3", fired)
	}
}

func TestExpireResetsArmedWindow(t *testing.T) {
	resets := 0
	d := New(DefaultWindow, WithResetHandler(func() { resets++ }))

	d.OnTap(at(0))
	d.OnTap(at(100))
	deadline, gen, armed := d.Window()
	if !armed {
		t.Fatal("window should be armed after a tap")
	}
	if !deadline.Equal(at(400)) {
		t.Errorf("deadline = %v, want %v", deadline, at(400))
	}

	got, ok := d.Expire(gen)
	if !ok || got != Reset {
		t.Fatalf("Expire(live) = %v, %v; want reset, true", got, ok)
	}
	if d.Count() != 0 {
		t.Errorf("Count() after expire = %d, want 0", d.Count())
	}
	if resets != 1 {
		t.Errorf("reset handler calls = %d, want 1", resets)
	}

	// No further taps: the next one starts over.
	if d.OnTap(at(450)); d.Count() != 1 {
		t.Errorf("tap after expiry Count() = %d, want 1", d.Count())
	}
}

func TestStaleTimerIsIgnored(t *testing.T) {
	d := New(DefaultWindow)

	d.OnTap(at(0))
	_, first, _ := d.Window()
	d.OnTap(at(200)) // re-arms

	if _, ok := d.Expire(first); ok {
		t.Fatal("timer from the first tap should be stale after re-arm")
	}
	if d.Count() != 2 {
		t.Errorf("stale expiry changed Count() to %d", d.Count())
	}

	if d.OnTap(at(350)) != Fired {
		t.Error("third tap inside the re-armed window should fire")
	}
}

func TestTimerAfterFireIsIgnored(t *testing.T) {
	resets := 0
	d := New(DefaultWindow, WithResetHandler(func() { resets++ }))

	d.OnTap(at(0))
	d.OnTap(at(10))
	_, gen, _ := d.Window()
	d.OnTap(at(20))

	if _, ok := d.Expire(gen); ok {
		t.Error("expiry after a fire must be a no-op")
	}
	if resets != 0 {
		t.Error("reset handler must not run for a cancelled window")
	}
}

func TestExplicitReset(t *testing.T) {
	resets := 0
	d := New(DefaultWindow, WithResetHandler(func() { resets++ }))

	d.OnTap(at(0))
	d.OnTap(at(100))
	_, gen, _ := d.Window()
	d.Reset()

	if d.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", d.Count())
	}
	if _, ok := d.Expire(gen); ok {
		t.Error("Reset should cancel the pending window")
	}
	if resets != 0 {
		t.Error("explicit Reset should not call the reset handler")
	}
}

func TestOptions(t *testing.T) {
	d := New(0, WithThreshold(2))
	if d.Duration() != DefaultWindow {
		t.Errorf("Duration() = %v, want default", d.Duration())
	}
	d.OnTap(at(0))
	if d.OnTap(at(10)) != Fired {
		t.Error("threshold 2 should fire on the second tap")
	}

	d = New(time.Second, WithThreshold(1))
	if d.threshold != DefaultThreshold {
		t.Errorf("threshold below 2 should be ignored, got %d", d.threshold)
	}
}

func TestResultString(t *testing.T) {
	for r, want := range map[Result]string{Continuing: "continuing", Fired: "fired", Reset: "reset", Result(9): "unknown"} {
		if r.String() != want {
			t.Errorf("Result(%d).String() = %q, want %q", r, r.String(), want)
		}
	}
}

func TestSetWindow(t *testing.T) {
	d := New(300 * time.Millisecond)
	d.OnTap(at(0))
	_, gen, _ := d.Window()

	d.SetWindow(500 * time.Millisecond)
	if d.Count() != 0 {
		t.Error("SetWindow should drop the partial sequence")
	}
	if _, ok := d.Expire(gen); ok {
		t.Error("timer armed before SetWindow should be stale")
	}

	d.OnTap(at(1000))
	d.OnTap(at(1400)) // outside the old window, inside the new one
	if d.Count() != 2 {
		t.Errorf("Count() = %d, want 2 with the longer window", d.Count())
	}

	d.SetWindow(-1)
	if d.Duration() != DefaultWindow {
		t.Errorf("Duration() = %v, want default", d.Duration())
	}
}
