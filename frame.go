package realm

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Frame is the drawing surface handed to views for one render. It is a grid
// of rows; each row is a line of text that may carry ANSI styling and is
// always exactly as wide as the frame.
type Frame struct {
	width, height int
	rows          []string
}

// NewFrame creates a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	f := &Frame{width: max(width, 0), height: max(height, 0)}
	f.Clear()
	return f
}

// Size returns the frame dimensions in cells.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Area returns the whole frame as a Rect.
func (f *Frame) Area() Rect {
	return NewRect(0, 0, f.width, f.height)
}

// Clear blanks every row.
func (f *Frame) Clear() {
	blank := strings.Repeat(" ", f.width)
	f.rows = make([]string, f.height)
	for i := range f.rows {
		f.rows[i] = blank
	}
}

// Render draws block, a possibly multi-line and styled string, into area.
// Lines are cut at the area's right edge, lines past its bottom are dropped,
// and the rest of the area is blanked, so nothing outside area changes.
func (f *Frame) Render(area Rect, block string) {
	area = area.Intersect(f.Area())
	if area.IsEmpty() {
		return
	}

	lines := strings.Split(block, "\n")
	for dy := range area.Height {
		line := ""
		if dy < len(lines) {
			line = ansi.Truncate(lines[dy], area.Width, "")
		}
		if pad := area.Width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		f.splice(area.Y+dy, area.X, area.Width, line)
	}
}

// splice replaces width cells of row y starting at column x with segment.
func (f *Frame) splice(y, x, width int, segment string) {
	row := f.rows[y]
	left := ansi.Truncate(row, x, "")
	right := ansi.TruncateLeft(row, x+width, "")
	f.rows[y] = left + segment + right
}

// Row returns row y, or "" when y is out of range.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= len(f.rows) {
		return ""
	}
	return f.rows[y]
}

// Rows returns a copy of every row.
func (f *Frame) Rows() []string {
	return append([]string(nil), f.rows...)
}

// String returns the rows joined by newlines.
func (f *Frame) String() string {
	return strings.Join(f.rows, "\n")
}

// PlainString is String with all escape sequences removed.
func (f *Frame) PlainString() string {
	return ansi.Strip(f.String())
}
