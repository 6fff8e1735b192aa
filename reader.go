package realm

import "time"

// EventReader reads events from the terminal.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, nil) if an event was read, or (nil, nil) on timeout.
	// A timeout of 0 performs a non-blocking check.
	// A negative timeout blocks indefinitely.
	PollEvent(timeout time.Duration) (Event, error)

	// Close releases resources. Must be called when done.
	Close() error
}

// parseInputWithRemainder parses input and returns any incomplete trailing bytes.
// This handles partial UTF-8 sequences at the end of the buffer.
func parseInputWithRemainder(data []byte) ([]Event, []byte) {
	remaining := findIncompleteUTF8Suffix(data)
	if len(remaining) > 0 {
		data = data[:len(data)-len(remaining)]
	}
	return parseInput(data), remaining
}

// findIncompleteUTF8Suffix finds any incomplete UTF-8 sequence at the end of data.
// Returns the incomplete bytes (if any).
func findIncompleteUTF8Suffix(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		switch {
		case b >= 0x80 && b < 0xC0:
			// Continuation byte, keep looking for the lead byte.
			continue
		case b >= 0xC0:
			if i < utf8SequenceLen(b) {
				return data[len(data)-i:]
			}
		}
		return nil
	}
	return nil
}

// utf8SequenceLen returns the encoded length implied by a UTF-8 lead byte.
func utf8SequenceLen(lead byte) int {
	switch {
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	default:
		return 4
	}
}
