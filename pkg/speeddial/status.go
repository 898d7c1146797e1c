package speeddial

import (
	"fmt"

	"github.com/go-drift/speeddial/pkg/animation"
)

// Status is the disclosure state of a speed dial.
//
// Status is always a projection of the master driver's state, never stored
// independently: Closed and Opened are the resting positions, Opening and
// Closing the in-flight directions. A detached [Controller] reports Closed.
type Status int

const (
	// StatusClosed means the dial is at rest with items hidden.
	StatusClosed Status = iota
	// StatusOpening means the dial is animating toward fully open.
	StatusOpening
	// StatusOpened means the dial is at rest with items revealed.
	StatusOpened
	// StatusClosing means the dial is animating toward fully closed.
	StatusClosing
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusClosed:
		return "closed"
	case StatusOpening:
		return "opening"
	case StatusOpened:
		return "opened"
	case StatusClosing:
		return "closing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// projectStatus maps the driver's state onto the disclosure state.
func projectStatus(s animation.AnimationStatus) Status {
	switch s {
	case animation.AnimationForward:
		return StatusOpening
	case animation.AnimationCompleted:
		return StatusOpened
	case animation.AnimationReverse:
		return StatusClosing
	default:
		return StatusClosed
	}
}
