package realm

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-realm/internal/debug"
)

// TerminalBridge acquires a Terminal for full-screen use and gives it back.
// Release undoes only the steps Acquire completed, in reverse order, so it is
// safe to call after a failed or partial Acquire and to call more than once.
type TerminalBridge struct {
	term      Terminal
	altScreen bool

	raw, alt, cursor bool
}

// NewTerminalBridge creates a bridge for t. With altScreen false the program
// draws on the main screen buffer.
func NewTerminalBridge(t Terminal, altScreen bool) *TerminalBridge {
	return &TerminalBridge{term: t, altScreen: altScreen}
}

// Acquire enters raw mode, switches to the alternate screen if configured,
// hides the cursor, and clears the screen.
func (b *TerminalBridge) Acquire() error {
	if err := b.term.EnterRawMode(); err != nil {
		return fmt.Errorf("acquire terminal: %w", err)
	}
	b.raw = true
	if b.altScreen {
		b.term.EnterAltScreen()
		b.alt = true
	}
	b.term.HideCursor()
	b.cursor = true
	b.term.Clear()
	debug.Log("TerminalBridge.Acquire: alt=%v", b.altScreen)
	return nil
}

// Release restores the terminal. Every step is attempted; failures are joined.
func (b *TerminalBridge) Release() error {
	var errs []error
	if b.cursor {
		b.term.ShowCursor()
		b.cursor = false
	}
	if b.alt {
		b.term.ExitAltScreen()
		b.alt = false
	}
	if b.raw {
		if err := b.term.ExitRawMode(); err != nil {
			errs = append(errs, fmt.Errorf("release terminal: %w", err))
		}
		b.raw = false
	}
	debug.Log("TerminalBridge.Release: errors=%d", len(errs))
	return errors.Join(errs...)
}
