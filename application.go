package realm

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-realm/internal/debug"
)

// Application ties a Scheduler to a Registry. Each Tick polls the scheduler
// and routes the resulting events to components, collecting the messages
// they return.
type Application[ID comparable, Msg any] struct {
	listener *Scheduler
	registry *Registry[ID, Msg]

	navKeys       []Key
	focusResolver func(Msg) (ID, bool)
	errorHandler  func(error) (Msg, bool)
}

// NewApplication creates an Application polling listener. Tab is the only
// navigation key until SetNavigationKeys says otherwise.
func NewApplication[ID comparable, Msg any](listener *Scheduler) *Application[ID, Msg] {
	if listener == nil {
		listener = NewScheduler()
	}
	return &Application[ID, Msg]{
		listener: listener,
		registry: NewRegistry[ID, Msg](),
		navKeys:  []Key{KeyTab},
	}
}

// SetFocusResolver installs fn to recognise focus-change messages. When a
// handler returns a message for which fn reports an id, that id is given
// focus before the next event is routed.
func (a *Application[ID, Msg]) SetFocusResolver(fn func(Msg) (ID, bool)) {
	a.focusResolver = fn
}

// SetNavigationKeys replaces the keys delivered only to the focused
// component and never to subscribers.
func (a *Application[ID, Msg]) SetNavigationKeys(keys ...Key) {
	a.navKeys = slices.Clone(keys)
}

// SetErrorHandler installs fn to turn event source errors into messages.
// Without one, source errors are only logged.
func (a *Application[ID, Msg]) SetErrorHandler(fn func(error) (Msg, bool)) {
	a.errorHandler = fn
}

// Scheduler returns the scheduler the application polls.
func (a *Application[ID, Msg]) Scheduler() *Scheduler {
	return a.listener
}

// Registry returns the registry holding the mounted components.
func (a *Application[ID, Msg]) Registry() *Registry[ID, Msg] {
	return a.registry
}

// Tick polls the scheduler once according to strategy and routes every event
// in order. Messages are returned in the order handlers produced them,
// followed by messages mapped from source errors.
func (a *Application[ID, Msg]) Tick(strategy PollStrategy) []Msg {
	events, errs := a.listener.Poll(strategy)

	var msgs []Msg
	for _, ev := range events {
		msgs = a.route(ev, msgs)
	}
	for _, err := range errs {
		debug.Error("Application.Tick: event source error", err)
		if a.errorHandler == nil {
			continue
		}
		if msg, ok := a.errorHandler(err); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Dispatch routes a single event as Tick would, without polling.
func (a *Application[ID, Msg]) Dispatch(ev Event) []Msg {
	return a.route(ev, nil)
}

// route delivers ev and appends the messages it produced to msgs. Recipients
// are fixed before delivery starts, so a focus change caused by one handler
// applies from the next event on.
func (a *Application[ID, Msg]) route(ev Event, msgs []Msg) []Msg {
	focus, focused := a.registry.Focus()

	var recipients []ID
	if focused {
		recipients = append(recipients, focus)
	}
	if !a.isNavigation(ev) {
		recipients = append(recipients, a.registry.Subscribers(ev)...)
	}

	for _, id := range recipients {
		msg, ok, err := a.registry.Forward(id, ev)
		if err != nil {
			// Unmounted while this event was being routed.
			debug.Log("Application.route: skipping %v: %v", id, err)
			continue
		}
		if !ok {
			continue
		}
		msgs = append(msgs, msg)
		a.resolveFocus(msg)
	}
	return msgs
}

func (a *Application[ID, Msg]) isNavigation(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	return ok && slices.Contains(a.navKeys, ke.Key)
}

func (a *Application[ID, Msg]) resolveFocus(msg Msg) {
	if a.focusResolver == nil {
		return
	}
	id, ok := a.focusResolver(msg)
	if !ok {
		return
	}
	if err := a.registry.Active(id); err != nil {
		debug.Error("Application: focus change failed", err)
	}
}

// Mount adds c under id. See Registry.Mount.
func (a *Application[ID, Msg]) Mount(id ID, c Component[Msg], subs ...Sub) error {
	return a.registry.Mount(id, c, subs...)
}

// Umount removes id. See Registry.Umount.
func (a *Application[ID, Msg]) Umount(id ID) error {
	return a.registry.Umount(id)
}

// Remount replaces the component under id. See Registry.Remount.
func (a *Application[ID, Msg]) Remount(id ID, c Component[Msg], subs ...Sub) error {
	return a.registry.Remount(id, c, subs...)
}

// Active gives focus to id.
func (a *Application[ID, Msg]) Active(id ID) error {
	return a.registry.Active(id)
}

// Blur clears focus.
func (a *Application[ID, Msg]) Blur() error {
	return a.registry.Blur()
}

// Focus returns the focused id, if any.
func (a *Application[ID, Msg]) Focus() (ID, bool) {
	return a.registry.Focus()
}

// Mounted reports whether id is mounted.
func (a *Application[ID, Msg]) Mounted(id ID) bool {
	return a.registry.Mounted(id)
}

// Attr sets an attribute on the component under id.
func (a *Application[ID, Msg]) Attr(id ID, attr Attribute, value any) error {
	return a.registry.Attr(id, attr, value)
}

// Query reads an attribute from the component under id.
func (a *Application[ID, Msg]) Query(id ID, attr Attribute) (any, bool, error) {
	return a.registry.Query(id, attr)
}

// View draws the component under id into area of f.
func (a *Application[ID, Msg]) View(id ID, f *Frame, area Rect) error {
	c, ok := a.registry.Component(id)
	if !ok {
		return fmt.Errorf("view %v: %w", id, ErrNotMounted)
	}
	c.View(f, area)
	return nil
}
