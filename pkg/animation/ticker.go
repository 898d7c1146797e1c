// Package animation provides the timed-driver primitives the speed dial
// control is built on.
//
// # Core Components
//
//   - [AnimationController]: drives a value from 0.0 to 1.0 (and back) over a
//     configurable duration, with separate forward and reverse durations and
//     easing curves, value listeners, and status listeners.
//
//   - [CurvedAnimation]: a derived, read-only view of a controller that
//     applies an easing curve to the parent's value, switching to a reverse
//     curve while the parent drives backward.
//
//   - Curves: easing functions that transform linear progress. Includes the
//     CSS cubic-bezier set ([Ease], [EaseIn], [EaseOut], [EaseInOut]),
//     [CubicBezier] for custom curves, [Interval] for restricting a curve to
//     a sub-range of the timeline, and [FromEase] for adapting easing
//     functions from github.com/tanema/gween.
//
//   - [Tween]: maps the 0-1 range of a controller to other value types.
//
// # Frame Loop
//
// Animations are cooperative and frame-driven: nothing advances until the
// host's frame loop calls [StepTickers]. Time comes from the package clock,
// replaceable via [SetClock] for deterministic tests.
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	controller.Forward()
//	for running {
//	    animation.StepTickers() // once per frame
//	    render(controller.Value)
//	}
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host's loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so the lock is not held during callbacks, which may stop
	// tickers or start new ones.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
