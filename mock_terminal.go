package realm

import "strings"

// MockTerminal is a mock implementation of Terminal for testing.
// It records every operation and keeps the rows of the last drawn frame.
type MockTerminal struct {
	width, height int
	screen        []string
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	draws         int
	ops           []string

	// RawModeErr, if set, is returned by EnterRawMode.
	RawModeErr error
	// ExitRawModeErr, if set, is returned by ExitRawMode.
	ExitRawModeErr error
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{width: width, height: height}
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// SetSize changes the reported dimensions, as a resize would.
func (m *MockTerminal) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Draw records the frame's rows as the visible screen.
func (m *MockTerminal) Draw(f *Frame) {
	m.draws++
	m.screen = f.Rows()
	m.ops = append(m.ops, "draw")
}

// Clear blanks the recorded screen.
func (m *MockTerminal) Clear() {
	m.screen = nil
	m.ops = append(m.ops, "clear")
}

// HideCursor makes the cursor invisible.
func (m *MockTerminal) HideCursor() {
	m.cursorHidden = true
	m.ops = append(m.ops, "hide-cursor")
}

// ShowCursor makes the cursor visible.
func (m *MockTerminal) ShowCursor() {
	m.cursorHidden = false
	m.ops = append(m.ops, "show-cursor")
}

// EnterRawMode enables raw mode unless RawModeErr is set.
func (m *MockTerminal) EnterRawMode() error {
	if m.RawModeErr != nil {
		return m.RawModeErr
	}
	m.inRawMode = true
	m.ops = append(m.ops, "raw")
	return nil
}

// ExitRawMode disables raw mode. ExitRawModeErr is returned if set.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	m.ops = append(m.ops, "cooked")
	return m.ExitRawModeErr
}

// EnterAltScreen switches to the alternate screen.
func (m *MockTerminal) EnterAltScreen() {
	m.inAltScreen = true
	m.ops = append(m.ops, "alt-screen")
}

// ExitAltScreen switches back to the main screen.
func (m *MockTerminal) ExitAltScreen() {
	m.inAltScreen = false
	m.ops = append(m.ops, "main-screen")
}

// Draws returns how many frames were drawn.
func (m *MockTerminal) Draws() int {
	return m.draws
}

// Ops returns the recorded operations in order.
func (m *MockTerminal) Ops() []string {
	return append([]string(nil), m.ops...)
}

// Screen returns the rows of the last drawn frame.
func (m *MockTerminal) Screen() []string {
	return append([]string(nil), m.screen...)
}

// String returns the last drawn frame as newline-joined rows.
func (m *MockTerminal) String() string {
	return strings.Join(m.screen, "\n")
}

// IsInRawMode returns whether the terminal is in raw mode.
func (m *MockTerminal) IsInRawMode() bool {
	return m.inRawMode
}

// IsInAltScreen returns whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool {
	return m.inAltScreen
}

// IsCursorHidden returns whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool {
	return m.cursorHidden
}
