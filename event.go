package realm

import "time"

// Event is the base interface for everything an event source can produce.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	// For special keys (arrows, function keys), this is the specific constant.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// String renders the key with its modifiers, e.g. "Ctrl+Up" or "'q'".
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = "'" + string(e.Rune) + "'"
	}
	if e.Mod == ModNone {
		return name
	}
	return e.Mod.String() + "+" + name
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// TickEvent is emitted by a TickListener each time it is polled.
type TickEvent struct {
	Time time.Time
}

func (TickEvent) isEvent() {}

// UserEvent carries an application-defined payload from a custom source.
type UserEvent[U any] struct {
	Payload U
}

func (UserEvent[U]) isEvent() {}

func (e UserEvent[U]) userPayload() any { return e.Payload }

// userEvent is satisfied by every UserEvent instantiation.
type userEvent interface {
	userPayload() any
}

// Payload extracts the payload of a UserEvent[U]. It reports false for any
// other event, including a UserEvent with a different payload type.
func Payload[U any](ev Event) (U, bool) {
	ue, ok := ev.(UserEvent[U])
	return ue.Payload, ok
}
