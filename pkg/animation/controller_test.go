package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/speeddial/pkg/animation"
	speedtest "github.com/go-drift/speeddial/pkg/testing"
)

const frame = 10 * time.Millisecond

// withFakeClock installs a fake clock for the test and returns it.
func withFakeClock(t *testing.T) *speedtest.FakeClock {
	t.Helper()
	clock := speedtest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func TestControllerForwardCompletes(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(300 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if c.Status() != animation.AnimationForward {
		t.Fatalf("status = %v; want forward", c.Status())
	}

	speedtest.Pump(clock, frame, 15) // 150ms
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("Value at 150ms = %v; want 0.5", c.Value)
	}

	speedtest.Pump(clock, frame, 15) // 300ms total
	if c.Value != 1 {
		t.Errorf("Value at 300ms = %v; want 1", c.Value)
	}
	if c.Status() != animation.AnimationCompleted {
		t.Errorf("status = %v; want completed", c.Status())
	}
	if animation.HasActiveTickers() {
		t.Error("ticker still active after completion")
	}
}

func TestControllerReverseUsesReverseDuration(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(300 * time.Millisecond)
	c.ReverseDuration = 100 * time.Millisecond
	defer c.Dispose()

	c.Forward()
	speedtest.Pump(clock, frame, 30)
	if c.Status() != animation.AnimationCompleted {
		t.Fatalf("status = %v; want completed", c.Status())
	}

	c.Reverse()
	speedtest.Pump(clock, frame, 5) // 50ms of a 100ms reverse
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("Value mid-reverse = %v; want 0.5", c.Value)
	}

	speedtest.Pump(clock, frame, 5)
	if c.Status() != animation.AnimationDismissed {
		t.Errorf("status = %v; want dismissed", c.Status())
	}
}

func TestControllerInterruptionKeepsValue(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(200 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	speedtest.Pump(clock, frame, 10) // halfway
	mid := c.Value
	if math.Abs(mid-0.5) > 1e-9 {
		t.Fatalf("Value at interruption = %v; want 0.5", mid)
	}

	// Reversing mid-flight continues from the current value with no jump.
	c.Reverse()
	if c.Value != mid {
		t.Errorf("Value changed on Reverse(): %v -> %v", mid, c.Value)
	}

	speedtest.Pump(clock, frame, 1)
	if c.Value >= mid {
		t.Errorf("Value did not decrease after reversal: %v", c.Value)
	}
	speedtest.Pump(clock, frame, 19)
	if c.Status() != animation.AnimationDismissed {
		t.Errorf("status = %v; want dismissed", c.Status())
	}
	if c.Value != 0 {
		t.Errorf("Value = %v; want 0", c.Value)
	}
}

func TestControllerReverseCurve(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	c.Curve = animation.LinearCurve
	c.ReverseCurve = func(t float64) float64 { return t * t }
	defer c.Dispose()

	c.Forward()
	speedtest.Pump(clock, frame, 10)

	c.Reverse()
	speedtest.Pump(clock, frame, 5) // half the reverse drive
	// Eased progress is 0.25, so the value has moved a quarter of the way
	// from 1 toward 0.
	if math.Abs(c.Value-0.75) > 1e-9 {
		t.Errorf("Value = %v; want 0.75 under quadratic reverse curve", c.Value)
	}
}

func TestControllerStatusListeners(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	var got []animation.AnimationStatus
	unsubscribe := c.AddStatusListener(func(s animation.AnimationStatus) {
		got = append(got, s)
	})

	c.Forward()
	speedtest.Pump(clock, frame, 10)
	c.Reverse()
	speedtest.Pump(clock, frame, 10)

	want := []animation.AnimationStatus{
		animation.AnimationForward,
		animation.AnimationCompleted,
		animation.AnimationReverse,
		animation.AnimationDismissed,
	}
	if len(got) != len(want) {
		t.Fatalf("statuses = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statuses = %v; want %v", got, want)
		}
	}

	unsubscribe()
	c.Forward()
	speedtest.Pump(clock, frame, 10)
	if len(got) != len(want) {
		t.Error("listener fired after unsubscribe")
	}
}

func TestControllerValueListener(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(50 * time.Millisecond)
	defer c.Dispose()

	ticks := 0
	c.AddListener(func() { ticks++ })

	c.Forward()
	speedtest.Pump(clock, frame, 5)
	if ticks != 5 {
		t.Errorf("value listener fired %d times; want 5", ticks)
	}
}

func TestControllerReset(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	speedtest.Pump(clock, frame, 5)
	c.Reset()

	if c.Value != 0 {
		t.Errorf("Value after Reset = %v; want 0", c.Value)
	}
	if c.Status() != animation.AnimationDismissed {
		t.Errorf("status after Reset = %v; want dismissed", c.Status())
	}
	if animation.HasActiveTickers() {
		t.Error("ticker still active after Reset")
	}
}

func TestControllerZeroDurationSnapsToTarget(t *testing.T) {
	clock := withFakeClock(t)

	c := animation.NewAnimationController(0)
	defer c.Dispose()

	c.Forward()
	speedtest.Pump(clock, frame, 1)
	if c.Value != 1 || c.Status() != animation.AnimationCompleted {
		t.Errorf("Value = %v, status = %v; want 1, completed", c.Value, c.Status())
	}
}
