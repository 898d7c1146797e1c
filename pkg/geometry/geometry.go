// Package geometry provides the small set of 2D types the speed dial core
// positions content with: pixel offsets and sizes, rectangles, and normalized
// alignments used as anchor points.
package geometry

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the vector sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the vector difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns the offset multiplied by a scalar factor.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Alignment is a normalized point within a rectangle's bounds.
//
// X and Y range over [-1, 1]: (-1, -1) is the top-left corner, (0, 0) the
// center, (1, 1) the bottom-right corner. Values outside that range address
// points outside the bounds.
type Alignment struct {
	X float64
	Y float64
}

// Common alignment values.
var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// PointOn returns the pixel position of the alignment on a box of the given
// size, measured from the box's top-left corner.
func (a Alignment) PointOn(size Size) Offset {
	return Offset{
		X: (a.X + 1) * 0.5 * size.Width,
		Y: (a.Y + 1) * 0.5 * size.Height,
	}
}

// WithinRect positions a box of the given size within rect according to the
// alignment and returns the box's top-left offset.
func (a Alignment) WithinRect(rect Rect, size Size) Offset {
	return Offset{
		X: rect.Left + (a.X+1)*0.5*(rect.Width()-size.Width),
		Y: rect.Top + (a.Y+1)*0.5*(rect.Height()-size.Height),
	}
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// LerpAlignment linearly interpolates between two alignments.
func LerpAlignment(a, b Alignment, t float64) Alignment {
	return Alignment{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
