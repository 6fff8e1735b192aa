package realm

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyMounted is returned when mounting an id that is already mounted.
	ErrAlreadyMounted = errors.New("component already mounted")
	// ErrNotMounted is returned when an operation names an id that is not mounted.
	ErrNotMounted = errors.New("component not mounted")
	// ErrNoFocus is returned by Blur when nothing is focused.
	ErrNoFocus = errors.New("no component has focus")
	// ErrNotAttributer is returned when a component does not accept attributes.
	ErrNotAttributer = errors.New("component does not implement Attributer")

	// ErrNilPoller is returned when registering a nil event source.
	ErrNilPoller = errors.New("nil poller")
	// ErrInvalidInterval is returned when registering a source with a negative interval.
	ErrInvalidInterval = errors.New("poll interval must not be negative")

	// ErrNotATerminal is returned when the program's input or output is not a tty.
	ErrNotATerminal = errors.New("not a terminal")
	// ErrUnsupportedPlatform is returned by the stdin reader on platforms without select(2).
	ErrUnsupportedPlatform = errors.New("terminal input is not supported on this platform")
)

// SourceError reports a failed poll of the event source registered at Index.
// The source stays registered and is retried on its next due tick.
type SourceError struct {
	Index int
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("event source %d: %v", e.Index, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
