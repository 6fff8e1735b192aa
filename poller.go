package realm

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Poller is an event source. Poll must not block for longer than the source's
// own configured bound. A nil Event with a nil error means there was no data.
// A failed poll does not unregister the source; it is retried when next due.
type Poller interface {
	Poll() (Event, error)
}

// PollerFunc adapts an ordinary function to a Poller.
type PollerFunc func() (Event, error)

// Poll calls f.
func (f PollerFunc) Poll() (Event, error) {
	return f()
}

// InputListener is the terminal input source. Each poll waits at most its
// timeout for one event from the underlying EventReader.
type InputListener struct {
	reader  EventReader
	timeout time.Duration
}

var _ Poller = (*InputListener)(nil)

// NewInputListener wraps r. A zero timeout makes every poll non-blocking.
func NewInputListener(r EventReader, timeout time.Duration) *InputListener {
	return &InputListener{reader: r, timeout: max(timeout, 0)}
}

// Poll returns the next input event, if any arrived within the timeout.
func (l *InputListener) Poll() (Event, error) {
	return l.reader.PollEvent(l.timeout)
}

// Close releases the underlying reader.
func (l *InputListener) Close() error {
	return l.reader.Close()
}

// TickListener produces a TickEvent stamped with the clock's time every time
// it is polled. Register it with the interval the ticks should arrive at.
type TickListener struct {
	clock clockwork.Clock
}

var _ Poller = (*TickListener)(nil)

// NewTickListener creates a TickListener. A nil clock uses the real clock.
func NewTickListener(clock clockwork.Clock) *TickListener {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TickListener{clock: clock}
}

// Poll always returns a TickEvent.
func (t *TickListener) Poll() (Event, error) {
	return TickEvent{Time: t.clock.Now()}, nil
}
