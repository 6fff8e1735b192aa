package realm

import "strconv"

// escBuilder accumulates ANSI escape sequences and text into one buffer so a
// whole operation reaches the terminal in a single write.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built output.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) csi(seq string) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, seq...)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = strconv.AppendInt(e.buf, int64(y+1), 10)
	e.buf = append(e.buf, ';')
	e.buf = strconv.AppendInt(e.buf, int64(x+1), 10)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() { e.csi("2J") }

// ClearToEndOfLine clears from the cursor to the end of the line.
func (e *escBuilder) ClearToEndOfLine() { e.csi("K") }

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() { e.csi("?25l") }

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() { e.csi("?25h") }

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() { e.csi("?1049h") }

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() { e.csi("?1049l") }

// BeginSyncUpdate starts a synchronized update (DEC mode 2026). Terminals
// that support it hold the screen until EndSyncUpdate.
func (e *escBuilder) BeginSyncUpdate() { e.csi("?2026h") }

// EndSyncUpdate ends a synchronized update.
func (e *escBuilder) EndSyncUpdate() { e.csi("?2026l") }

// ResetStyle resets all text attributes.
func (e *escBuilder) ResetStyle() { e.csi("0m") }

// WriteString appends s verbatim.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
