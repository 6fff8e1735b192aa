//go:build !unix

package realm

import "os"

// NewEventReader is unavailable on this platform; inject an EventReader
// through InputListener instead.
func NewEventReader(in *os.File) (EventReader, error) {
	return nil, ErrUnsupportedPlatform
}
