package realm

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-realm/internal/debug"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ANSITerminal implements Terminal using ANSI escape sequences.
type ANSITerminal struct {
	out      io.Writer
	inFd     int
	outFd    int
	esc      *escBuilder
	rawState *term.State
}

var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a terminal reading from in and drawing to out.
// Both must be ttys; ErrNotATerminal is returned otherwise.
func NewANSITerminal(out, in *os.File) (*ANSITerminal, error) {
	for _, f := range []*os.File{in, out} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return nil, fmt.Errorf("%s: %w", f.Name(), ErrNotATerminal)
		}
	}
	return &ANSITerminal{
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		esc:   newEscBuilder(4096),
	}, nil
}

// Size returns the terminal dimensions, or 80x24 if they cannot be read.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

// Draw repaints the screen with the frame's rows inside a synchronized update.
func (t *ANSITerminal) Draw(f *Frame) {
	t.esc.Reset()
	t.esc.BeginSyncUpdate()
	_, height := f.Size()
	for y := range height {
		t.esc.MoveTo(0, y)
		t.esc.WriteString(f.Row(y))
		t.esc.ResetStyle()
		t.esc.ClearToEndOfLine()
	}
	t.esc.EndSyncUpdate()
	t.flush()
}

// Clear clears the entire screen and homes the cursor.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
	t.flush()
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.flush()
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.flush()
}

// EnterRawMode puts the input tty into raw mode, remembering the old state.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the state saved by EnterRawMode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.rawState)
	t.rawState = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.flush()
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	t.flush()
}

func (t *ANSITerminal) flush() {
	if _, err := t.out.Write(t.esc.Bytes()); err != nil {
		debug.Error("ANSITerminal: write failed", err)
	}
}
