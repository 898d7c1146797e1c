package animation

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Easing curves transform linear animation progress into natural-feeling
// motion.
//
// Each curve is a function that takes a value t in [0, 1] and returns a
// transformed value. Set an [AnimationController]'s Curve or ReverseCurve
// field, or a [CurvedAnimation]'s, to apply easing.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier(),
// [Interval] to confine a curve to a sub-range of the timeline, and
// [FromEase] to adapt gween easing functions.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Use for elements that stay on screen but change state.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

// Interval confines a curve to the [start, end] sub-range of the timeline.
//
// The returned curve maps t below start to 0, t above end to 1, and values
// within the interval through curve rescaled to that sub-range. A nil curve
// means linear. Interval panics when start or end lie outside [0, 1] or when
// start exceeds end; intervals handed to it must already be clamped.
func Interval(start, end float64, curve func(float64) float64) func(float64) float64 {
	if start < 0 || end > 1 || start > end {
		panic(fmt.Sprintf("animation: invalid interval [%v, %v]", start, end))
	}
	return func(t float64) float64 {
		if t <= start {
			return 0
		}
		if t >= end {
			return 1
		}
		u := (t - start) / (end - start)
		if curve == nil {
			return u
		}
		return curve(u)
	}
}

// FlipCurve mirrors a curve so its shape plays backwards: the result at t is
// 1 - curve(1 - t). Useful for deriving an exit curve from an entrance curve.
func FlipCurve(curve func(float64) float64) func(float64) float64 {
	return func(t float64) float64 {
		if curve == nil {
			return t
		}
		return 1 - curve(1-t)
	}
}

// FromEase adapts a gween easing function (github.com/tanema/gween/ease) to
// a curve. Elastic and back easings may report values outside [0, 1]; that
// is expected of overshooting curves.
func FromEase(fn ease.TweenFunc) func(float64) float64 {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
