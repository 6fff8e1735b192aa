// Package layout provides the rectangle geometry and the simple constraint
// splitter used to carve a terminal area into component regions.
package layout
