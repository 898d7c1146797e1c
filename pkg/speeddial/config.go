package speeddial

import (
	"time"

	"github.com/go-drift/speeddial/pkg/animation"
	"github.com/go-drift/speeddial/pkg/errors"
	"github.com/go-drift/speeddial/pkg/geometry"
)

// Default drive durations, used when the corresponding Config field is zero.
const (
	DefaultOpenDuration  = 250 * time.Millisecond
	DefaultCloseDuration = 200 * time.Millisecond
)

// ItemBuilder turns one item into rendered content.
//
// It receives the item payload, its index, the index-stable sub-animation
// for that slot, and the controller, and is called once per item per
// [Surface.Build] while the surface is mounted. Content type and placement
// beyond the shared anchor are entirely the caller's.
type ItemBuilder[T, C any] func(item T, index int, anim *animation.CurvedAnimation, controller *Controller) C

// ContentBuilder produces content that depends only on the controller, such
// as the primary toggle control or a backdrop.
type ContentBuilder[C any] func(controller *Controller) C

// Config describes a speed dial. It is generic over the item payload type T,
// which the core never inspects, and the content type C the builders return.
//
// A Config is immutable per build: hand a modified copy to [Surface.Update]
// to change a live dial.
type Config[T, C any] struct {
	// Items is the ordered sequence of secondary actions.
	Items []T

	// PrimaryBuilder renders the primary toggle control. Its content should
	// invoke Controller.Toggle from a user-interaction handler.
	PrimaryBuilder ContentBuilder[C]

	// ItemBuilder renders one item. Required when Items is non-empty.
	ItemBuilder ItemBuilder[T, C]

	// SecondaryItemBuilder optionally renders a companion widget per item
	// (e.g. a label). It receives the same sub-animation instance as
	// ItemBuilder for that index, keeping both in lockstep.
	SecondaryItemBuilder ItemBuilder[T, C]

	// BackdropBuilder optionally renders content beneath the items while the
	// surface is mounted, typically a dimming tap-to-dismiss barrier.
	BackdropBuilder ContentBuilder[C]

	// PrimaryAnchor is the anchor point on the primary control's bounds.
	PrimaryAnchor geometry.Alignment

	// ItemAnchor is the anchor point on each item's bounds that is aligned
	// to PrimaryAnchor.
	ItemAnchor geometry.Alignment

	// Offset is a constant pixel offset added between the two anchors.
	Offset geometry.Offset

	// Overlap is the stagger overlap ratio in [0, 1]: the fraction of each
	// item's animation interval shared with its neighbors. 0 is fully
	// sequential, 1 fully simultaneous. Values outside [0, 1] are a
	// configuration error.
	Overlap float64

	// OpenDuration is the per-item entrance duration; the master drive runs
	// for OpenDuration * Scale(len(Items), Overlap). Zero means
	// DefaultOpenDuration.
	OpenDuration time.Duration

	// CloseDuration is the per-item exit duration, scaled like OpenDuration.
	// Zero means DefaultCloseDuration.
	CloseDuration time.Duration

	// OpenCurve eases each item's sub-animation while opening. Nil means
	// animation.EaseOut.
	OpenCurve func(float64) float64

	// CloseCurve eases each item's sub-animation while closing. Nil means
	// animation.EaseIn.
	CloseCurve func(float64) float64

	// Reverse makes the last item animate first.
	Reverse bool

	// Controller optionally supplies an externally owned controller. The
	// caller is responsible for disposing it; when nil, the surface creates
	// and owns one.
	Controller *Controller

	// OnOpen fires when an open drive completes.
	OnOpen func()

	// OnClose fires when a close drive completes and the surface unmounts.
	OnClose func()
}

// validate reports configuration errors; op names the failing operation.
func (c *Config[T, C]) validate(op string) error {
	if c.Overlap < 0 || c.Overlap > 1 {
		return errors.Config(op, "overlap %v outside [0, 1]", c.Overlap)
	}
	if c.OpenDuration < 0 {
		return errors.Config(op, "negative open duration %v", c.OpenDuration)
	}
	if c.CloseDuration < 0 {
		return errors.Config(op, "negative close duration %v", c.CloseDuration)
	}
	if c.ItemBuilder == nil && len(c.Items) > 0 {
		return errors.Config(op, "ItemBuilder is required when Items is non-empty")
	}
	return nil
}

// withDefaults fills zero durations and nil curves.
func (c Config[T, C]) withDefaults() Config[T, C] {
	if c.OpenDuration == 0 {
		c.OpenDuration = DefaultOpenDuration
	}
	if c.CloseDuration == 0 {
		c.CloseDuration = DefaultCloseDuration
	}
	if c.OpenCurve == nil {
		c.OpenCurve = animation.EaseOut
	}
	if c.CloseCurve == nil {
		c.CloseCurve = animation.EaseIn
	}
	return c
}
