// Package layouts provides ready-made fan shapes for speed dial items.
//
// A layout is a pure function from (index, count) to the pixel offset of an
// item's fully disclosed position, relative to the shared anchor. The
// speeddial core never consults layouts; item builders apply them, usually
// scaled by the item's sub-animation value to get the slide-in motion:
//
//	at := layout(index, count).Scale(anim.Value())
package layouts

import (
	"math"

	"github.com/go-drift/speeddial/pkg/geometry"
)

// Layout maps an item index to its fully disclosed offset from the anchor.
type Layout func(index, count int) geometry.Offset

// Vertical stacks items upward from the anchor, spacing pixels apart.
// Negative spacing stacks downward.
func Vertical(spacing float64) Layout {
	return func(index, count int) geometry.Offset {
		return geometry.Offset{Y: -spacing * float64(index+1)}
	}
}

// Horizontal lines items up leftward from the anchor, spacing pixels apart.
// Negative spacing goes rightward.
func Horizontal(spacing float64) Layout {
	return func(index, count int) geometry.Offset {
		return geometry.Offset{X: -spacing * float64(index+1)}
	}
}

// Arc fans items along a circular arc of the given radius. startDeg and
// sweepDeg are measured clockwise from the positive x-axis; items are
// spread evenly across the sweep.
func Arc(radius, startDeg, sweepDeg float64) Layout {
	return func(index, count int) geometry.Offset {
		var fraction float64
		if count > 1 {
			fraction = float64(index) / float64(count-1)
		}
		angle := (startDeg + sweepDeg*fraction) * math.Pi / 180
		return geometry.Offset{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
}

// Radial spreads items evenly around a full circle of the given radius,
// starting at the top.
func Radial(radius float64) Layout {
	return func(index, count int) geometry.Offset {
		if count == 0 {
			return geometry.Offset{}
		}
		angle := -math.Pi/2 + 2*math.Pi*float64(index)/float64(count)
		return geometry.Offset{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
}
