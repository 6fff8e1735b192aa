package realm

// Terminal abstracts the screen the program draws on.
// Implementations handle ANSI terminals or mock terminals for testing.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Draw paints every row of the frame.
	Draw(f *Frame)

	// Clear clears the entire terminal screen.
	Clear()

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// EnterRawMode puts the terminal into raw mode for character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen()

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()
}
