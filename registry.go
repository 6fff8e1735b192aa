package realm

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-realm/internal/debug"
)

// mounted is the registry's record of one component.
type mounted[Msg any] struct {
	component Component[Msg]
	subs      []Sub
	cleanup   func()
}

// Registry owns the mounted components, their subscriptions, and the single
// focus. Mount order is kept and used wherever components are visited in turn.
// A Registry is not safe for concurrent use.
type Registry[ID comparable, Msg any] struct {
	entries map[ID]*mounted[Msg]
	order   []ID
	focus   ID
	focused bool
}

// NewRegistry creates an empty Registry.
func NewRegistry[ID comparable, Msg any]() *Registry[ID, Msg] {
	return &Registry[ID, Msg]{entries: make(map[ID]*mounted[Msg])}
}

// Mount adds c under id with its subscriptions. Mounting never moves focus.
func (r *Registry[ID, Msg]) Mount(id ID, c Component[Msg], subs ...Sub) error {
	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("mount %v: %w", id, ErrAlreadyMounted)
	}
	r.entries[id] = newMounted(c, subs)
	r.order = append(r.order, id)
	debug.Log("Registry.Mount: id=%v type=%T subs=%d total=%d", id, c, len(subs), len(r.order))
	return nil
}

func newMounted[Msg any](c Component[Msg], subs []Sub) *mounted[Msg] {
	m := &mounted[Msg]{component: c, subs: slices.Clone(subs)}
	if init, ok := c.(Initializer); ok {
		m.cleanup = init.Init()
	}
	return m
}

// Umount removes id. If id had focus, focus becomes unset.
func (r *Registry[ID, Msg]) Umount(id ID) error {
	m, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("umount %v: %w", id, ErrNotMounted)
	}
	if r.focused && r.focus == id {
		r.clearFocus()
	}
	if m.cleanup != nil {
		m.cleanup()
	}
	delete(r.entries, id)
	r.order = slices.DeleteFunc(r.order, func(other ID) bool { return other == id })
	debug.Log("Registry.Umount: id=%v total=%d", id, len(r.order))
	return nil
}

// Remount replaces the component and subscriptions under id, keeping its
// place in mount order and its focus. An id that is not mounted is mounted.
func (r *Registry[ID, Msg]) Remount(id ID, c Component[Msg], subs ...Sub) error {
	old, ok := r.entries[id]
	if !ok {
		return r.Mount(id, c, subs...)
	}
	hadFocus := r.focused && r.focus == id
	if hadFocus {
		if fl, ok := old.component.(FocusListener); ok {
			fl.Blur()
		}
	}
	if old.cleanup != nil {
		old.cleanup()
	}
	r.entries[id] = newMounted(c, subs)
	if hadFocus {
		if fl, ok := c.(FocusListener); ok {
			fl.Focus()
		}
	}
	debug.Log("Registry.Remount: id=%v type=%T focused=%v", id, c, hadFocus)
	return nil
}

// Active gives focus to id, taking it from whichever component had it.
func (r *Registry[ID, Msg]) Active(id ID) error {
	m, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("active %v: %w", id, ErrNotMounted)
	}
	if r.focused && r.focus == id {
		return nil
	}
	if r.focused {
		r.clearFocus()
	}
	r.focus, r.focused = id, true
	if fl, ok := m.component.(FocusListener); ok {
		fl.Focus()
	}
	debug.Log("Registry.Active: id=%v", id)
	return nil
}

// Blur clears focus.
func (r *Registry[ID, Msg]) Blur() error {
	if !r.focused {
		return ErrNoFocus
	}
	r.clearFocus()
	return nil
}

func (r *Registry[ID, Msg]) clearFocus() {
	if m, ok := r.entries[r.focus]; ok {
		if fl, ok := m.component.(FocusListener); ok {
			fl.Blur()
		}
	}
	var zero ID
	r.focus, r.focused = zero, false
}

// Focus returns the focused id, if any.
func (r *Registry[ID, Msg]) Focus() (ID, bool) {
	return r.focus, r.focused
}

// Mounted reports whether id is mounted.
func (r *Registry[ID, Msg]) Mounted(id ID) bool {
	_, ok := r.entries[id]
	return ok
}

// Component returns the component mounted under id.
func (r *Registry[ID, Msg]) Component(id ID) (Component[Msg], bool) {
	m, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return m.component, true
}

// Forward hands ev to the component mounted under id.
func (r *Registry[ID, Msg]) Forward(id ID, ev Event) (Msg, bool, error) {
	m, ok := r.entries[id]
	if !ok {
		var zero Msg
		return zero, false, fmt.Errorf("forward %T to %v: %w", ev, id, ErrNotMounted)
	}
	msg, ok := m.component.On(ev)
	return msg, ok, nil
}

// Subscribers returns, in mount order, every unfocused component with a
// subscription matching ev.
func (r *Registry[ID, Msg]) Subscribers(ev Event) []ID {
	var ids []ID
	for _, id := range r.order {
		if r.focused && r.focus == id {
			continue
		}
		if slices.ContainsFunc(r.entries[id].subs, func(s Sub) bool { return s.Matches(ev) }) {
			ids = append(ids, id)
		}
	}
	return ids
}

// FocusNext moves focus to the next component in mount order, wrapping
// around. With nothing focused it focuses the first component.
func (r *Registry[ID, Msg]) FocusNext() (ID, bool) {
	return r.cycleFocus(1)
}

// FocusPrev moves focus to the previous component in mount order, wrapping
// around. With nothing focused it focuses the last component.
func (r *Registry[ID, Msg]) FocusPrev() (ID, bool) {
	return r.cycleFocus(-1)
}

func (r *Registry[ID, Msg]) cycleFocus(step int) (ID, bool) {
	n := len(r.order)
	if n == 0 {
		var zero ID
		return zero, false
	}

	next := 0
	if step < 0 {
		next = n - 1
	}
	if r.focused {
		cur := slices.Index(r.order, r.focus)
		next = ((cur+step)%n + n) % n
	}
	id := r.order[next]
	// id is mounted, Active cannot fail.
	_ = r.Active(id)
	return id, true
}

// IDs returns the mounted ids in mount order.
func (r *Registry[ID, Msg]) IDs() []ID {
	return slices.Clone(r.order)
}

// Len returns the number of mounted components.
func (r *Registry[ID, Msg]) Len() int {
	return len(r.order)
}

// Attr sets an attribute on the component mounted under id.
func (r *Registry[ID, Msg]) Attr(id ID, attr Attribute, value any) error {
	a, err := r.attributer(id)
	if err != nil {
		return fmt.Errorf("attr %s: %w", attr, err)
	}
	a.Attr(attr, value)
	return nil
}

// Query reads an attribute from the component mounted under id.
func (r *Registry[ID, Msg]) Query(id ID, attr Attribute) (any, bool, error) {
	a, err := r.attributer(id)
	if err != nil {
		return nil, false, fmt.Errorf("query %s: %w", attr, err)
	}
	v, ok := a.Query(attr)
	return v, ok, nil
}

func (r *Registry[ID, Msg]) attributer(id ID) (Attributer, error) {
	m, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("%v: %w", id, ErrNotMounted)
	}
	a, ok := m.component.(Attributer)
	if !ok {
		return nil, fmt.Errorf("%v (%T): %w", id, m.component, ErrNotAttributer)
	}
	return a, nil
}
