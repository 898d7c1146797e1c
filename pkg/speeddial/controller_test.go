package speeddial_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/speeddial/pkg/animation"
	"github.com/go-drift/speeddial/pkg/speeddial"
	speedtest "github.com/go-drift/speeddial/pkg/testing"
)

const frame = 10 * time.Millisecond

func withFakeClock(t *testing.T) *speedtest.FakeClock {
	t.Helper()
	clock := speedtest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

// newDial builds a minimal live surface over string items and string content.
func newDial(t *testing.T, config speeddial.Config[string, string]) *speeddial.Surface[string, string] {
	t.Helper()
	if config.Items == nil {
		config.Items = []string{"a", "b", "c"}
	}
	if config.ItemBuilder == nil {
		config.ItemBuilder = func(item string, index int, anim *animation.CurvedAnimation, c *speeddial.Controller) string {
			return item
		}
	}
	dial, err := speeddial.New(config)
	require.NoError(t, err)
	t.Cleanup(dial.Dispose)
	return dial
}

func TestDetachedController(t *testing.T) {
	c := speeddial.NewController()

	assert.Equal(t, speeddial.StatusClosed, c.Status())
	assert.False(t, c.IsActive())

	// Commands while detached are silent no-ops.
	assert.NotPanics(t, func() {
		c.Open()
		c.Close()
		c.Toggle()
	})

	// Reading the live progress value is a caller bug.
	assert.Panics(t, func() { c.Animation() })
}

func TestOpenCloseLifecycle(t *testing.T) {
	clock := withFakeClock(t)
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration:  100 * time.Millisecond,
		CloseDuration: 100 * time.Millisecond,
		Overlap:       1, // scale 1: master drive takes the base duration
	})
	c := dial.Controller()

	assert.Equal(t, speeddial.StatusClosed, c.Status())
	assert.False(t, dial.Mounted())

	c.Open()
	assert.Equal(t, speeddial.StatusOpening, c.Status())
	assert.True(t, c.IsActive())
	assert.True(t, dial.Mounted(), "surface mounts before the forward drive")

	speedtest.Pump(clock, frame, 10)
	assert.Equal(t, speeddial.StatusOpened, c.Status())
	assert.Equal(t, 1.0, c.Animation().Value)

	c.Close()
	assert.Equal(t, speeddial.StatusClosing, c.Status())
	assert.False(t, c.IsActive())
	assert.True(t, dial.Mounted(), "surface stays mounted during close")

	speedtest.Pump(clock, frame, 10)
	assert.Equal(t, speeddial.StatusClosed, c.Status())
	assert.False(t, dial.Mounted(), "surface unmounts when close completes")
}

func TestOpenCloseNoOps(t *testing.T) {
	clock := withFakeClock(t)
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration: 100 * time.Millisecond,
		Overlap:      1,
	})
	c := dial.Controller()

	// Close while closed: nothing happens.
	c.Close()
	assert.Equal(t, speeddial.StatusClosed, c.Status())
	assert.False(t, dial.Mounted())

	c.Open()
	value := c.Animation().Value
	// Open while opening: the in-flight drive keeps going.
	c.Open()
	assert.Equal(t, speeddial.StatusOpening, c.Status())
	assert.Equal(t, value, c.Animation().Value)

	speedtest.Pump(clock, frame, 10)
	// Open while opened: still satisfied.
	c.Open()
	assert.Equal(t, speeddial.StatusOpened, c.Status())
}

func TestToggleInterruption(t *testing.T) {
	clock := withFakeClock(t)
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration:  100 * time.Millisecond,
		CloseDuration: 100 * time.Millisecond,
		Overlap:       1,
	})
	c := dial.Controller()

	// First toggle from closed opens.
	c.Toggle()
	assert.Equal(t, speeddial.StatusOpening, c.Status())

	speedtest.Pump(clock, frame, 5)
	before := c.Animation().Value
	assert.Greater(t, before, 0.0)

	// Second toggle before the drive completes reverses it in place.
	c.Toggle()
	assert.Equal(t, speeddial.StatusClosing, c.Status())
	assert.Equal(t, before, c.Animation().Value, "no snap on interruption")

	// Progress only decreases once reversed.
	previous := c.Animation().Value
	for range 5 {
		speedtest.Pump(clock, frame, 1)
		current := c.Animation().Value
		assert.LessOrEqual(t, current, previous)
		previous = current
	}

	// Toggling while closing reopens.
	c.Toggle()
	assert.Equal(t, speeddial.StatusOpening, c.Status())
	assert.True(t, dial.Mounted())
}

func TestCloseUnmountsOnlyAtZero(t *testing.T) {
	clock := withFakeClock(t)
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration:  100 * time.Millisecond,
		CloseDuration: 100 * time.Millisecond,
		Overlap:       1,
	})
	c := dial.Controller()

	c.Open()
	speedtest.Pump(clock, frame, 10)
	c.Close()

	// Mid-close the surface must still be mounted.
	speedtest.Pump(clock, frame, 6)
	assert.InDelta(t, 0.4, c.Animation().Value, 1e-9)
	assert.True(t, dial.Mounted())

	speedtest.Pump(clock, frame, 4)
	assert.Equal(t, 0.0, c.Animation().Value)
	assert.False(t, dial.Mounted())
}

func TestInterruptedCloseNeverUnmounts(t *testing.T) {
	clock := withFakeClock(t)
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration:  100 * time.Millisecond,
		CloseDuration: 100 * time.Millisecond,
		Overlap:       1,
	})
	c := dial.Controller()

	c.Open()
	speedtest.Pump(clock, frame, 10)
	c.Close()
	speedtest.Pump(clock, frame, 5)

	// Interrupt the close back into opening; the surface never unmounts.
	c.Open()
	speedtest.Pump(clock, frame, 10)
	assert.Equal(t, speeddial.StatusOpened, c.Status())
	assert.True(t, dial.Mounted())
}

func TestStatusListeners(t *testing.T) {
	clock := withFakeClock(t)
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration:  50 * time.Millisecond,
		CloseDuration: 50 * time.Millisecond,
		Overlap:       1,
	})
	c := dial.Controller()

	var got []speeddial.Status
	unsubscribe := c.AddStatusListener(func(s speeddial.Status) {
		got = append(got, s)
	})

	c.Open()
	speedtest.Pump(clock, frame, 5)
	c.Close()
	speedtest.Pump(clock, frame, 5)

	assert.Equal(t, []speeddial.Status{
		speeddial.StatusOpening,
		speeddial.StatusOpened,
		speeddial.StatusClosing,
		speeddial.StatusClosed,
	}, got)

	unsubscribe()
	c.Open()
	assert.Len(t, got, 4, "listener fired after unsubscribe")
}

func TestListenerSeesConsistentStatus(t *testing.T) {
	dial := newDial(t, speeddial.Config[string, string]{Overlap: 1})
	c := dial.Controller()

	c.AddStatusListener(func(s speeddial.Status) {
		// The controller's observable status is already updated when the
		// notification fires.
		assert.Equal(t, s, c.Status())
	})
	c.Open()
}

func TestCompletionCallbacks(t *testing.T) {
	clock := withFakeClock(t)

	var events []string
	dial := newDial(t, speeddial.Config[string, string]{
		OpenDuration:  50 * time.Millisecond,
		CloseDuration: 50 * time.Millisecond,
		Overlap:       1,
		OnOpen:        func() { events = append(events, "open") },
		OnClose:       func() { events = append(events, "close") },
	})
	c := dial.Controller()

	c.Open()
	assert.Empty(t, events, "OnOpen fires on completion, not on command")
	speedtest.Pump(clock, frame, 5)
	assert.Equal(t, []string{"open"}, events)

	c.Close()
	speedtest.Pump(clock, frame, 5)
	assert.Equal(t, []string{"open", "close"}, events)
}

func TestDoubleAttachPanics(t *testing.T) {
	shared := speeddial.NewController()

	first, err := speeddial.New(speeddial.Config[string, string]{
		Controller: shared,
	})
	require.NoError(t, err)
	defer first.Dispose()

	assert.Panics(t, func() {
		_, _ = speeddial.New(speeddial.Config[string, string]{
			Controller: shared,
		})
	})
}

func TestControllerReattachment(t *testing.T) {
	clock := withFakeClock(t)
	external := speeddial.NewController()

	first, err := speeddial.New(speeddial.Config[string, string]{
		Items: []string{"x"},
		ItemBuilder: func(item string, index int, anim *animation.CurvedAnimation, c *speeddial.Controller) string {
			return item
		},
		OpenDuration: 100 * time.Millisecond,
		Overlap:      1,
		Controller:   external,
	})
	require.NoError(t, err)

	external.Open()
	speedtest.Pump(clock, frame, 5)
	assert.Equal(t, speeddial.StatusOpening, external.Status())

	// Tearing down the first surface detaches mid-drive.
	first.Dispose()
	assert.Equal(t, speeddial.StatusClosed, external.Status())
	assert.NotPanics(t, func() { external.Toggle() })

	// The controller is reusable on a fresh surface, which starts closed.
	second, err := speeddial.New(speeddial.Config[string, string]{
		Controller: external,
	})
	require.NoError(t, err)
	defer second.Dispose()

	assert.Equal(t, speeddial.StatusClosed, external.Status())
	external.Open()
	assert.Equal(t, speeddial.StatusOpening, external.Status())
}

func TestDisposeDetachesOwnedController(t *testing.T) {
	dial, err := speeddial.New(speeddial.Config[string, string]{})
	require.NoError(t, err)

	c := dial.Controller()
	dial.Dispose()

	assert.Equal(t, speeddial.StatusClosed, c.Status())
	assert.NotPanics(t, func() { c.Open() })
	assert.NotPanics(t, dial.Dispose, "Dispose is idempotent")
}
