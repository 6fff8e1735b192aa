package realm

import "unicode/utf8"

// csiFinal maps the final byte of a parameterless (or modifier-only) CSI
// sequence to its key.
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'Z': KeyBackTab,
}

// csiTilde maps the first parameter of a "CSI n ~" sequence to its key.
var csiTilde = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

// parseInput parses buffered bytes into key events.
// Handles:
// - Single printable characters -> KeyEvent{Key: KeyRune, Rune: r}
// - Control characters (0x00-0x1F) -> appropriate KeyEvent
// - CSI sequences (\x1b[...) -> Arrow keys, function keys with modifiers
// - SS3 sequences (\x1bO...) -> Some function keys
// - Alt+key: \x1b + printable -> KeyRune with ModAlt
func parseInput(data []byte) []Event {
	var events []Event
	for i := 0; i < len(data); {
		ev, n := parseOne(data[i:])
		if ev.Key != KeyNone {
			events = append(events, ev)
		}
		i += n
	}
	return events
}

// parseOne decodes the event at the start of data and the number of bytes
// it used, always at least one. A KeyNone event means the bytes are dropped.
func parseOne(data []byte) (KeyEvent, int) {
	b := data[0]
	switch {
	case b == 0x1b:
		return parseEscape(data)
	case b < 0x20:
		return KeyEvent{Key: controlToKey(b)}, 1
	case b == 0x7f:
		return KeyEvent{Key: KeyBackspace}, 1
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return KeyEvent{}, 1
	}
	return KeyEvent{Key: KeyRune, Rune: r}, size
}

// parseEscape decodes a sequence starting with ESC. Anything it cannot make
// sense of is a lone Escape key press.
func parseEscape(data []byte) (KeyEvent, int) {
	escape := KeyEvent{Key: KeyEscape}
	if len(data) < 2 {
		return escape, 1
	}

	switch next := data[1]; {
	case next == '[':
		if key, mod, n := parseCSISequence(data); n > 0 {
			return KeyEvent{Key: key, Mod: mod}, n
		}
	case next == 'O':
		if len(data) > 2 {
			if key := parseSS3(data[2]); key != KeyNone {
				return KeyEvent{Key: key}, 3
			}
		}
	case next >= 0x20 && next < 0x7f:
		return KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt}, 2
	}
	return escape, 1
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08: // Ctrl+H (backspace on some terminals)
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return ctrlKey('A' + b - 1)
	}
	return KeyNone
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed.
// Returns (KeyNone, ModNone, 0) if the sequence is malformed or incomplete.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	current, hasParam := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, current)
			current, hasParam = 0, false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, current)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}
	return KeyNone, ModNone, 0
}

// parseCSI resolves a complete CSI sequence given its parameters and final byte.
// Unknown sequences resolve to KeyNone so their bytes are dropped.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	if final == '~' {
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		if key, ok := csiTilde[params[0]]; ok {
			return key, mod
		}
		return KeyNone, ModNone
	}
	if key, ok := csiFinal[final]; ok {
		return key, mod
	}
	return KeyNone, ModNone
}

// parseSS3 parses an SS3 function key sequence.
func parseSS3(b byte) Key {
	if b == 'Z' {
		return KeyNone
	}
	return csiFinal[b]
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}

	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
