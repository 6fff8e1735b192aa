package realm

import "time"

// MockEventReader is an EventReader for testing. Queued events are returned
// one per poll, in order; an injected error is returned by the next poll.
type MockEventReader struct {
	events []Event
	index  int
	err    error
	polls  int
	closed bool
}

var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a MockEventReader with the given events.
func NewMockEventReader(events ...Event) *MockEventReader {
	return &MockEventReader{events: events}
}

// PollEvent returns the next queued event, ignoring the timeout.
// Returns (nil, nil) when all events have been consumed.
func (m *MockEventReader) PollEvent(timeout time.Duration) (Event, error) {
	m.polls++
	if m.err != nil {
		err := m.err
		m.err = nil
		return nil, err
	}
	if m.index >= len(m.events) {
		return nil, nil
	}
	ev := m.events[m.index]
	m.index++
	return ev, nil
}

// Close marks the reader closed.
func (m *MockEventReader) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockEventReader) Closed() bool {
	return m.closed
}

// FailNext makes the next PollEvent return err instead of an event.
func (m *MockEventReader) FailNext(err error) {
	m.err = err
}

// AddEvents adds more events to the queue.
func (m *MockEventReader) AddEvents(events ...Event) {
	m.events = append(m.events, events...)
}

// Remaining returns the number of events yet to be returned.
func (m *MockEventReader) Remaining() int {
	return len(m.events) - m.index
}

// Polls returns how many times PollEvent was called.
func (m *MockEventReader) Polls() int {
	return m.polls
}
