package testing

import (
	"time"

	"github.com/go-drift/speeddial/pkg/animation"
)

// Pump advances the fake clock by step and steps all active tickers, frames
// times. It is the frame-loop stand-in for tests driving animations.
func Pump(clock *FakeClock, step time.Duration, frames int) {
	for range frames {
		clock.Advance(step)
		animation.StepTickers()
	}
}

// PumpUntil pumps frames until cond reports true or maxFrames is reached.
// Returns true if cond was satisfied.
func PumpUntil(clock *FakeClock, step time.Duration, maxFrames int, cond func() bool) bool {
	for range maxFrames {
		if cond() {
			return true
		}
		clock.Advance(step)
		animation.StepTickers()
	}
	return cond()
}
