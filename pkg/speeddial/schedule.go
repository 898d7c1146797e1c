package speeddial

import (
	"github.com/go-drift/speeddial/pkg/errors"
)

// Interval is one item's normalized slice [Start, End] of the master
// timeline, with 0 <= Start <= End <= 1.
type Interval struct {
	Start float64
	End   float64
}

// Length returns the interval's extent on the timeline.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Scale returns the master-duration multiplier for n items at the given
// overlap ratio: 1 + (1-overlap)*(n-1), or 1 for n <= 1. Multiplying the
// base duration by Scale keeps each item's slice playing for the base
// duration regardless of item count.
func Scale(n int, overlap float64) float64 {
	if n <= 1 {
		return 1
	}
	return 1 + (1-overlap)*float64(n-1)
}

// BuildSchedule computes the per-item intervals for n items.
//
// Each interval has length 1/Scale(n, overlap); consecutive intervals start
// intervalLength*(1-overlap) apart, so neighbors share exactly
// overlap*intervalLength of timeline. With reverse set, the last item
// animates first. Interval ends are clamped to 1 to absorb floating-point
// overshoot on the final item.
//
// BuildSchedule is pure. It must be re-derived whenever n, overlap, or
// reverse change, including while a drive is in flight; [Surface.Update]
// does exactly that. Overlap outside [0, 1] is a caller bug and panics;
// [Config] validation rejects it before it can get here.
func BuildSchedule(n int, overlap float64, reverse bool) []Interval {
	if overlap < 0 || overlap > 1 {
		panic(errors.Misuse("speeddial.BuildSchedule", "overlap %v outside [0, 1]", overlap))
	}

	intervals := make([]Interval, n)
	length := 1 / Scale(n, overlap)
	step := length * (1 - overlap)

	for i := range intervals {
		position := i
		if reverse {
			position = n - 1 - i
		}
		start := float64(position) * step
		end := start + length
		if end > 1 {
			end = 1
		}
		intervals[i] = Interval{Start: start, End: end}
	}
	return intervals
}
