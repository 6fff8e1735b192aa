package realm

// Component is a mounted piece of UI. On handles an event routed to it and
// may return a message for the host; it returns false when it has nothing to
// say. View draws the component into area of the frame.
type Component[Msg any] interface {
	On(ev Event) (Msg, bool)
	View(f *Frame, area Rect)
}

// Initializer is implemented by components that need setup when mounted.
// Init() is called once when the component is mounted. The returned function
// (if non-nil) is called when the component is unmounted or replaced.
type Initializer interface {
	Init() func()
}

// FocusListener is implemented by components that react to gaining or
// losing focus.
type FocusListener interface {
	Focus()
	Blur()
}

// Attribute names a property a host can set on or read from a component.
type Attribute string

// Common attributes understood by the widgets package.
const (
	AttrTitle       Attribute = "title"
	AttrText        Attribute = "text"
	AttrLabel       Attribute = "label"
	AttrProgress    Attribute = "progress"
	AttrForeground  Attribute = "foreground"
	AttrBorderColor Attribute = "border-color"
	AttrWrap        Attribute = "wrap"
	AttrFocus       Attribute = "focus"
)

// Attributer is implemented by components whose properties can be set and
// queried through the Application.
type Attributer interface {
	Attr(attr Attribute, value any)
	Query(attr Attribute) (any, bool)
}

// Props is a ready-made Attributer. The zero value is ready to use; embed it
// in a component to make the component an Attributer.
type Props struct {
	values map[Attribute]any
}

var _ Attributer = (*Props)(nil)

// Attr sets attr to value. A nil value removes the attribute.
func (p *Props) Attr(attr Attribute, value any) {
	if value == nil {
		delete(p.values, attr)
		return
	}
	if p.values == nil {
		p.values = make(map[Attribute]any)
	}
	p.values[attr] = value
}

// Query returns the value of attr.
func (p *Props) Query(attr Attribute) (any, bool) {
	v, ok := p.values[attr]
	return v, ok
}

// PropAs returns the attribute value as a T, or fallback when it is unset or
// holds a different type.
func PropAs[T any](a Attributer, attr Attribute, fallback T) T {
	v, ok := a.Query(attr)
	if !ok {
		return fallback
	}
	t, ok := v.(T)
	if !ok {
		return fallback
	}
	return t
}
