package animation

// CurvedAnimation is a read-only view of a parent controller with easing
// applied on top of the parent's value.
//
// Curve transforms the value while the parent drives forward (or rests);
// ReverseCurve, when set, takes over while the parent drives backward. Both
// receive the parent's raw value, so combining them with [Interval] yields a
// sub-animation that only moves during its slice of the parent's timeline.
//
// CurvedAnimation holds no state of its own. It is safe to share one
// instance between multiple consumers that must stay in lockstep.
type CurvedAnimation struct {
	// Parent is the controller whose value is transformed.
	Parent *AnimationController

	// Curve transforms the parent's value. Nil means linear.
	Curve func(float64) float64

	// ReverseCurve transforms the parent's value while the parent's status
	// is AnimationReverse. Nil falls back to Curve.
	ReverseCurve func(float64) float64
}

// Value returns the eased value for the parent's current value and direction.
func (a *CurvedAnimation) Value() float64 {
	curve := a.Curve
	if a.Parent.Status() == AnimationReverse && a.ReverseCurve != nil {
		curve = a.ReverseCurve
	}
	if curve == nil {
		return a.Parent.Value
	}
	return curve(a.Parent.Value)
}

// Status returns the parent's status.
func (a *CurvedAnimation) Status() AnimationStatus {
	return a.Parent.Status()
}

// AddListener forwards to the parent controller and returns its unsubscribe
// function.
func (a *CurvedAnimation) AddListener(fn func()) func() {
	return a.Parent.AddListener(fn)
}
