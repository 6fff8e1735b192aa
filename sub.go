package realm

// EventClause decides whether an event is of interest to a subscriber.
type EventClause func(Event) bool

// OnAny matches every event.
func OnAny() EventClause {
	return func(Event) bool { return true }
}

// OnKey matches a key event equal to key, including rune and modifiers.
func OnKey(key KeyEvent) EventClause {
	return func(ev Event) bool {
		ke, ok := ev.(KeyEvent)
		return ok && ke == key
	}
}

// OnTick matches tick events.
func OnTick() EventClause {
	return func(ev Event) bool {
		_, ok := ev.(TickEvent)
		return ok
	}
}

// OnResize matches terminal resize events.
func OnResize() EventClause {
	return func(ev Event) bool {
		_, ok := ev.(ResizeEvent)
		return ok
	}
}

// OnUser matches every user event regardless of its payload type.
func OnUser() EventClause {
	return func(ev Event) bool {
		_, ok := ev.(userEvent)
		return ok
	}
}

// OnUserMatch matches user events whose payload satisfies fn.
func OnUserMatch(fn func(payload any) bool) EventClause {
	return func(ev Event) bool {
		ue, ok := ev.(userEvent)
		return ok && fn(ue.userPayload())
	}
}

// OnPayload matches user events carrying a payload of type U.
func OnPayload[U any]() EventClause {
	return func(ev Event) bool {
		_, ok := ev.(UserEvent[U])
		return ok
	}
}

// Sub subscribes a mounted component to events it receives while unfocused.
// When, if set, is consulted at routing time and can veto the delivery.
type Sub struct {
	Clause EventClause
	When   func() bool
}

// Subscribe builds a Sub with no extra condition.
func Subscribe(clause EventClause) Sub {
	return Sub{Clause: clause}
}

// Matches reports whether ev should be delivered under this subscription.
func (s Sub) Matches(ev Event) bool {
	if s.Clause == nil || !s.Clause(ev) {
		return false
	}
	return s.When == nil || s.When()
}
