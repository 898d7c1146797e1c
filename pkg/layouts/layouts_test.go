package layouts_test

import (
	"math"
	"testing"

	"github.com/go-drift/speeddial/pkg/geometry"
	"github.com/go-drift/speeddial/pkg/layouts"
)

func offsetNear(a, b geometry.Offset) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestVertical(t *testing.T) {
	layout := layouts.Vertical(60)

	if got := layout(0, 4); !offsetNear(got, geometry.Offset{Y: -60}) {
		t.Errorf("item 0 = %+v; want (0, -60)", got)
	}
	if got := layout(3, 4); !offsetNear(got, geometry.Offset{Y: -240}) {
		t.Errorf("item 3 = %+v; want (0, -240)", got)
	}
}

func TestHorizontal(t *testing.T) {
	layout := layouts.Horizontal(50)

	if got := layout(1, 3); !offsetNear(got, geometry.Offset{X: -100}) {
		t.Errorf("item 1 = %+v; want (-100, 0)", got)
	}
}

func TestArcEndpoints(t *testing.T) {
	// Quarter arc sweeping from straight up to straight left.
	layout := layouts.Arc(100, -90, -90)

	first := layout(0, 3)
	if !offsetNear(first, geometry.Offset{X: 0, Y: -100}) {
		t.Errorf("first item = %+v; want (0, -100)", first)
	}
	last := layout(2, 3)
	if !offsetNear(last, geometry.Offset{X: -100, Y: 0}) {
		t.Errorf("last item = %+v; want (-100, 0)", last)
	}
}

func TestArcSingleItem(t *testing.T) {
	layout := layouts.Arc(100, -90, -90)
	// A lone item sits at the start of the sweep.
	if got := layout(0, 1); !offsetNear(got, geometry.Offset{X: 0, Y: -100}) {
		t.Errorf("single item = %+v; want (0, -100)", got)
	}
}

func TestRadial(t *testing.T) {
	layout := layouts.Radial(80)

	// First item straight up.
	if got := layout(0, 4); !offsetNear(got, geometry.Offset{X: 0, Y: -80}) {
		t.Errorf("item 0 = %+v; want (0, -80)", got)
	}
	// Quarter turn clockwise.
	if got := layout(1, 4); !offsetNear(got, geometry.Offset{X: 80, Y: 0}) {
		t.Errorf("item 1 = %+v; want (80, 0)", got)
	}

	// All items on the circle.
	for i := range 5 {
		at := layout(i, 5)
		r := math.Hypot(at.X, at.Y)
		if math.Abs(r-80) > 1e-9 {
			t.Errorf("item %d radius = %v; want 80", i, r)
		}
	}
}
