package realm

import "github.com/grindlemire/go-realm/layout"

// Rect is an area of the screen in cells. See the layout package.
type Rect = layout.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
