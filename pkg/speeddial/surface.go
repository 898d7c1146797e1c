package speeddial

import (
	"math"
	"time"

	"github.com/go-drift/speeddial/pkg/animation"
	"github.com/go-drift/speeddial/pkg/geometry"
)

// Anchor ties every item to the primary control: the item's anchor point is
// aligned to the primary's anchor point plus a constant pixel offset. Any
// further fan or slide offset is applied by the caller on top of the
// resolved position.
type Anchor struct {
	Primary geometry.Alignment
	Item    geometry.Alignment
	Offset  geometry.Offset
}

// Resolve returns the top-left position for an item of itemSize such that
// its anchor point coincides with the primary control's anchor point plus
// the pixel offset. primary is the primary control's bounds in the caller's
// coordinate space.
func (a Anchor) Resolve(primary geometry.Rect, itemSize geometry.Size) geometry.Offset {
	shared := primary.TopLeft().
		Add(a.Primary.PointOn(primary.Size())).
		Add(a.Offset)
	return shared.Sub(a.Item.PointOn(itemSize))
}

// PlanItem is one item's rendered content within a [Plan].
type PlanItem[C any] struct {
	// Index is the item's position in Config.Items.
	Index int
	// Content is what ItemBuilder returned.
	Content C
	// Secondary is what SecondaryItemBuilder returned; meaningful only when
	// Plan.HasSecondary is set.
	Secondary C
	// Animation is the sub-animation both contents were built against.
	Animation *animation.CurvedAnimation
}

// Plan is the output of one [Surface.Build]: everything the caller needs to
// paint the dial this frame, in paint order (backdrop, items, primary).
type Plan[C any] struct {
	// Primary is the primary control's content, present every frame.
	Primary C
	// Backdrop is rendered beneath the items; meaningful only when
	// HasBackdrop is set. It is absent while unmounted.
	Backdrop C
	// HasBackdrop reports whether Backdrop carries content.
	HasBackdrop bool
	// Items is one entry per item while mounted, nil otherwise.
	Items []PlanItem[C]
	// HasSecondary reports whether the items carry secondary content.
	HasSecondary bool
	// Anchor positions every item relative to the primary control.
	Anchor Anchor
	// Mounted reports whether the disclosure surface is showing.
	Mounted bool
}

// Surface is a live speed dial instance.
//
// It owns the master progress driver and the mounted flag. The surface
// mounts when an open command arrives and unmounts exactly when an
// uninterrupted close drive completes, so exit animations stay visible.
//
// Surface is not safe for concurrent use; like the rest of the package it
// expects the host's single UI thread.
type Surface[T, C any] struct {
	config   Config[T, C]
	driver   *animation.AnimationController
	schedule []Interval
	subAnims []*animation.CurvedAnimation

	controller     *Controller
	ownsController bool

	mounted     bool
	unsubStatus func()
	disposed    bool
}

// New validates the configuration and creates a closed surface with its
// controller attached. The returned error is non-nil exactly when the
// configuration is invalid; no instance exists in that case.
func New[T, C any](config Config[T, C]) (*Surface[T, C], error) {
	if err := config.validate("speeddial.New"); err != nil {
		return nil, err
	}

	s := &Surface[T, C]{
		config: config.withDefaults(),
		driver: animation.NewAnimationController(0),
	}
	s.rebuildSchedule()
	s.unsubStatus = s.driver.AddStatusListener(s.onDriverStatus)

	if config.Controller != nil {
		s.controller = config.Controller
	} else {
		s.controller = NewController()
		s.ownsController = true
	}
	s.controller.attach(s.driver, s.mount)

	return s, nil
}

// Controller returns the surface's controller.
func (s *Surface[T, C]) Controller() *Controller {
	return s.controller
}

// Mounted reports whether the disclosure surface is currently showing.
func (s *Surface[T, C]) Mounted() bool {
	return s.mounted
}

// Schedule returns a copy of the current per-item intervals.
func (s *Surface[T, C]) Schedule() []Interval {
	out := make([]Interval, len(s.schedule))
	copy(out, s.schedule)
	return out
}

// Update replaces the configuration on a live surface.
//
// The schedule and sub-animations are recomputed even mid-drive; the master
// progress value is untouched, so a running disclosure continues from where
// it is under the new timing. Supplying a different Controller hands the
// surface over to it: the old controller detaches cleanly and stops
// receiving status changes. An invalid configuration leaves the surface
// unchanged.
func (s *Surface[T, C]) Update(config Config[T, C]) error {
	if err := config.validate("speeddial.Update"); err != nil {
		return err
	}

	if config.Controller != nil && config.Controller != s.controller {
		old := s.controller
		old.detach()
		if s.ownsController {
			old.Dispose()
		}
		s.controller = config.Controller
		s.ownsController = false
		s.controller.attach(s.driver, s.mount)
	}

	s.config = config.withDefaults()
	s.rebuildSchedule()
	return nil
}

// Build derives this frame's render plan.
//
// The primary content is always present. While mounted, every item (and its
// optional secondary content) is built against its sub-animation, and the
// backdrop, if configured, precedes them in paint order.
func (s *Surface[T, C]) Build() Plan[C] {
	plan := Plan[C]{
		Anchor: Anchor{
			Primary: s.config.PrimaryAnchor,
			Item:    s.config.ItemAnchor,
			Offset:  s.config.Offset,
		},
		Mounted: s.mounted,
	}
	if s.config.PrimaryBuilder != nil {
		plan.Primary = s.config.PrimaryBuilder(s.controller)
	}
	if !s.mounted {
		return plan
	}

	if s.config.BackdropBuilder != nil {
		plan.Backdrop = s.config.BackdropBuilder(s.controller)
		plan.HasBackdrop = true
	}

	plan.HasSecondary = s.config.SecondaryItemBuilder != nil
	plan.Items = make([]PlanItem[C], len(s.config.Items))
	for i, item := range s.config.Items {
		anim := s.subAnims[i]
		entry := PlanItem[C]{
			Index:     i,
			Animation: anim,
			Content:   s.config.ItemBuilder(item, i, anim, s.controller),
		}
		if plan.HasSecondary {
			entry.Secondary = s.config.SecondaryItemBuilder(item, i, anim, s.controller)
		}
		plan.Items[i] = entry
	}
	return plan
}

// Dispose tears the surface down: the controller detaches (and is disposed
// too when implicitly owned), the driver stops, and the surface unmounts.
// Safe to call more than once.
func (s *Surface[T, C]) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	if s.unsubStatus != nil {
		s.unsubStatus()
	}
	if s.ownsController {
		s.controller.Dispose()
	} else {
		s.controller.detach()
	}
	s.driver.Dispose()
	s.mounted = false
}

// mount shows the disclosure surface. Handed to the controller so Open can
// mount before driving forward.
func (s *Surface[T, C]) mount() {
	s.mounted = true
}

// rebuildSchedule re-derives the intervals, sub-animations, and scaled drive
// durations from the current configuration.
func (s *Surface[T, C]) rebuildSchedule() {
	n := len(s.config.Items)
	scale := Scale(n, s.config.Overlap)
	s.schedule = BuildSchedule(n, s.config.Overlap, s.config.Reverse)

	// Easing lives in the per-item interval remaps; the master drive stays
	// linear so curves are not applied twice. Rounding keeps the nanosecond
	// durations exact when scale carries float error (0.8 is not
	// representable, so scale for overlap 0.8 lands a hair above 1.6).
	s.driver.Duration = time.Duration(math.Round(float64(s.config.OpenDuration) * scale))
	s.driver.ReverseDuration = time.Duration(math.Round(float64(s.config.CloseDuration) * scale))
	s.driver.Curve = animation.LinearCurve
	s.driver.ReverseCurve = nil

	s.subAnims = make([]*animation.CurvedAnimation, n)
	for i, iv := range s.schedule {
		s.subAnims[i] = &animation.CurvedAnimation{
			Parent:       s.driver,
			Curve:        animation.Interval(iv.Start, iv.End, s.config.OpenCurve),
			ReverseCurve: animation.Interval(iv.Start, iv.End, s.config.CloseCurve),
		}
	}
}

// onDriverStatus keeps the mounted flag in sync with the drive and fires the
// completion callbacks. Unmounting happens here and only here: when a close
// drive actually reaches zero. A close interrupted back into opening never
// passes through Dismissed and therefore never unmounts.
func (s *Surface[T, C]) onDriverStatus(status animation.AnimationStatus) {
	switch status {
	case animation.AnimationDismissed:
		if s.mounted {
			s.mounted = false
			if s.config.OnClose != nil {
				s.config.OnClose()
			}
		}
	case animation.AnimationCompleted:
		if s.config.OnOpen != nil {
			s.config.OnOpen()
		}
	}
}
