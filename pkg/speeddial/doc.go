// Package speeddial implements the disclosure core of a speed dial control:
// a primary toggle that reveals a set of secondary actions with a staggered
// entrance and exit animation.
//
// The package owns the open/close state machine, the per-item stagger
// schedule, and the anchor math that ties every item to the primary control.
// It renders nothing itself: callers supply builder functions that turn
// items into content of any type, and a [Plan] hands that content back with
// the per-item sub-animation and anchor to place it with.
//
// # Anatomy
//
//   - [Config]: items, builders, anchors, overlap, durations, and curves.
//     Generic over the item payload type and the rendered content type; the
//     core never inspects either.
//
//   - [Surface]: a live instance. It owns the master progress driver and the
//     mounted flag, recomputes the stagger schedule when the configuration
//     changes, and builds a [Plan] per frame.
//
//   - [Controller]: the long-lived handle exposing Open, Close, Toggle, the
//     projected [Status], and status-change subscriptions. A controller can
//     outlive a surface and be re-attached to a new one, but never to two
//     live surfaces at once.
//
//   - [BuildSchedule] and [Scale]: the pure stagger math, usable on its own.
//
// # Stagger model
//
// For n items and an overlap ratio in [0, 1], every item receives an equal
// slice of the master timeline. Overlap 0 tiles the slices end to end (fully
// sequential); overlap 1 collapses every slice to the whole timeline (fully
// simultaneous). The master drive duration is scaled so each item's slice
// plays for the configured duration regardless of n.
//
// # Typical use
//
//	dial, err := speeddial.New(speeddial.Config[Action, Sprite]{
//	    Items:       actions,
//	    ItemBuilder: buildActionSprite,
//	    PrimaryBuilder: buildFab,
//	    PrimaryAnchor:  geometry.AlignmentTopCenter,
//	    ItemAnchor:     geometry.AlignmentBottomCenter,
//	    Overlap:        0.8,
//	})
//	...
//	dial.Controller().Toggle() // from the primary control's tap handler
//	...
//	plan := dial.Build() // each frame
package speeddial
