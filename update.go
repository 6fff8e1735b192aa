package realm

import (
	"sync/atomic"

	"github.com/grindlemire/go-realm/internal/debug"
)

// Updater is the host's reducer. Update applies msg to the host's state and
// may return a follow-up message, which is applied before the next message
// in the batch.
type Updater[Msg any] interface {
	Update(msg Msg) (Msg, bool)
}

// UpdaterFunc adapts an ordinary function to an Updater.
type UpdaterFunc[Msg any] func(msg Msg) (Msg, bool)

// Update calls f.
func (f UpdaterFunc[Msg]) Update(msg Msg) (Msg, bool) {
	return f(msg)
}

// UpdateLoop drains batches of messages through an Updater and tracks
// whether the screen needs redrawing.
type UpdateLoop[Msg any] struct {
	updater Updater[Msg]
	isQuit  func(Msg) bool
	redraw  atomic.Bool
}

// NewUpdateLoop creates an UpdateLoop. isQuit recognises the termination
// message; a nil isQuit means no message terminates.
func NewUpdateLoop[Msg any](u Updater[Msg], isQuit func(Msg) bool) *UpdateLoop[Msg] {
	if isQuit == nil {
		isQuit = func(Msg) bool { return false }
	}
	return &UpdateLoop[Msg]{updater: u, isQuit: isQuit}
}

// Drain applies every message in msgs, each followed by its whole chain of
// follow-ups, until nothing is left. It returns the number of Update calls
// and whether a termination message was among them. A termination message
// does not cut the drain short. Redraw is requested iff calls > 0.
func (l *UpdateLoop[Msg]) Drain(msgs []Msg) (calls int, quit bool) {
	for _, msg := range msgs {
		for next, ok := msg, true; ok; {
			calls++
			if l.isQuit(next) {
				quit = true
			}
			next, ok = l.updater.Update(next)
		}
	}
	if calls > 0 {
		l.MarkRedraw()
		debug.Log("UpdateLoop.Drain: messages=%d calls=%d quit=%v", len(msgs), calls, quit)
	}
	return calls, quit
}

// MarkRedraw requests a redraw.
func (l *UpdateLoop[Msg]) MarkRedraw() {
	l.redraw.Store(true)
}

// NeedsRedraw reports whether a redraw is pending without clearing it.
func (l *UpdateLoop[Msg]) NeedsRedraw() bool {
	return l.redraw.Load()
}

// CheckAndClearRedraw returns true if a redraw was pending and clears it.
// Called by the main loop after each drain.
func (l *UpdateLoop[Msg]) CheckAndClearRedraw() bool {
	return l.redraw.Swap(false)
}
