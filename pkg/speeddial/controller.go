package speeddial

import (
	"sync"

	"github.com/go-drift/speeddial/pkg/animation"
	"github.com/go-drift/speeddial/pkg/errors"
)

// Controller is the externally observable handle for a speed dial.
//
// Create one with NewController and pass it in [Config] to keep it across
// surface rebuilds, or let [New] create an implicit one. A controller is a
// capability handle, not an owner: at most one live [Surface] holds the
// attachment at a time, and re-attachment through a new surface's Config is
// the only supported hand-off.
//
// Commands on a detached controller are silent no-ops; reading Animation on
// a detached controller is a caller bug and panics.
type Controller struct {
	mu sync.Mutex

	driver       *animation.AnimationController
	mountFunc    func()
	unsubscribe  func()
	listeners    map[int]func(Status)
	nextListener int
}

// NewController creates a detached controller.
func NewController() *Controller {
	return &Controller{}
}

// Open mounts the surface and drives the dial toward fully open.
//
// Valid from closed or closing; a closing drive reverses in place from its
// current progress. No-op while already opening or opened, and while
// detached.
func (c *Controller) Open() {
	driver, mount := c.attached()
	if driver == nil {
		return
	}
	switch projectStatus(driver.Status()) {
	case StatusOpening, StatusOpened:
		return
	}
	if mount != nil {
		mount()
	}
	driver.Forward()
}

// Close drives the dial toward fully closed.
//
// Valid from opened or opening; an opening drive reverses in place from its
// current progress. The surface stays mounted until the reverse drive
// completes, so exit animations remain visible. No-op while already closing
// or closed, and while detached.
func (c *Controller) Close() {
	driver, _ := c.attached()
	if driver == nil {
		return
	}
	switch projectStatus(driver.Status()) {
	case StatusClosing, StatusClosed:
		return
	}
	driver.Reverse()
}

// Toggle opens when the driver is dismissed or reversing, closes otherwise.
//
// Toggling mid-flight reverses the drive at its current progress: toggle
// while opening closes, toggle while closing reopens.
func (c *Controller) Toggle() {
	driver, _ := c.attached()
	if driver == nil {
		return
	}
	switch driver.Status() {
	case animation.AnimationDismissed, animation.AnimationReverse:
		c.Open()
	default:
		c.Close()
	}
}

// Status returns the current disclosure state, computed live from the
// driver. A detached controller reports StatusClosed.
func (c *Controller) Status() Status {
	driver, _ := c.attached()
	if driver == nil {
		return StatusClosed
	}
	return projectStatus(driver.Status())
}

// IsActive reports whether the dial is opened or opening.
func (c *Controller) IsActive() bool {
	status := c.Status()
	return status == StatusOpened || status == StatusOpening
}

// Animation returns the live master progress driver.
//
// Panics when the controller is not attached: no progress value exists and
// reading one is a caller bug.
func (c *Controller) Animation() *animation.AnimationController {
	driver, _ := c.attached()
	if driver == nil {
		panic(errors.Misuse("speeddial.Controller.Animation", "controller is not attached to a live surface"))
	}
	return driver
}

// AddStatusListener registers a callback for disclosure state changes,
// including the changes caused by attach and detach. Returns an unsubscribe
// function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	if c.listeners == nil {
		c.listeners = make(map[int]func(Status))
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Dispose detaches the controller and drops all listeners. Safe to call on
// a detached controller.
func (c *Controller) Dispose() {
	c.detach()
	c.mu.Lock()
	c.listeners = nil
	c.mu.Unlock()
}

// attach binds the controller to a surface's driver and mount toggle.
// Called by Surface during construction and re-attachment. Attaching an
// already attached controller is a caller bug: which instance's commands
// would take effect is undefined.
func (c *Controller) attach(driver *animation.AnimationController, mount func()) {
	c.mu.Lock()
	if c.driver != nil {
		c.mu.Unlock()
		panic(errors.Misuse("speeddial.Controller", "controller already attached to a live surface"))
	}
	c.driver = driver
	c.mountFunc = mount
	c.unsubscribe = driver.AddStatusListener(func(s animation.AnimationStatus) {
		c.notifyStatus(projectStatus(s))
	})
	c.mu.Unlock()

	// The externally visible status may change as a result of attaching.
	c.notifyStatus(projectStatus(driver.Status()))
}

// detach unbinds the controller from its surface. Idempotent. Status
// notifications from the old driver stop flowing immediately.
func (c *Controller) detach() {
	c.mu.Lock()
	if c.driver == nil {
		c.mu.Unlock()
		return
	}
	c.driver = nil
	c.mountFunc = nil
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	// Detached controllers report closed.
	c.notifyStatus(StatusClosed)
}

func (c *Controller) attached() (*animation.AnimationController, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver, c.mountFunc
}

func (c *Controller) notifyStatus(status Status) {
	c.mu.Lock()
	listeners := make([]func(Status), 0, len(c.listeners))
	for _, listener := range c.listeners {
		listeners = append(listeners, listener)
	}
	c.mu.Unlock()
	for _, listener := range listeners {
		listener(status)
	}
}
