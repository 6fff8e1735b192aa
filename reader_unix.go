//go:build unix

package realm

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd         int            // stdin file descriptor
	buf        []byte         // Read buffer for escape sequences
	partialBuf []byte         // Buffer for incomplete UTF-8 sequences
	pending    []Event        // Parsed events waiting to be returned
	sigCh      chan os.Signal // For SIGWINCH (resize) handling
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

// PollEvent reads the next event with a timeout.
// Returns (nil, nil) when nothing arrived before the timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, error) {
	if ev := r.next(); ev != nil {
		return ev, nil
	}

	select {
	case <-r.sigCh:
		w, h := terminalSizeForReader(r.fd)
		return ResizeEvent{Width: w, Height: h}, nil
	default:
	}

	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil {
		return nil, fmt.Errorf("select stdin: %w", err)
	}
	if !ready {
		return nil, nil
	}

	n, err := unix.Read(r.fd, r.buf)
	switch {
	case errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read stdin: %w", err)
	case n == 0:
		return nil, nil
	}

	data := r.buf[:n]
	if len(r.partialBuf) > 0 {
		data = append(r.partialBuf, data...)
		r.partialBuf = nil
	}

	events, remaining := parseInputWithRemainder(data)
	if len(remaining) > 0 {
		r.partialBuf = append([]byte(nil), remaining...)
	}
	r.pending = append(r.pending, events...)
	return r.next(), nil
}

// next pops the oldest pending event, or returns nil.
func (r *stdinReader) next() Event {
	if len(r.pending) == 0 {
		return nil
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev
}

// Close releases resources.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	return nil
}

// terminalSizeForReader returns the terminal dimensions for the EventReader.
func terminalSizeForReader(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading and (false, nil) on
// timeout or when a signal interrupted the wait.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
