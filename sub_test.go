package realm

import "testing"

func TestEventClauses(t *testing.T) {
	type progress float64

	type tc struct {
		clause   EventClause
		event    Event
		expected bool
	}

	tests := map[string]tc{
		"any matches key":             {clause: OnAny(), event: KeyEvent{Key: KeyTab}, expected: true},
		"key exact":                   {clause: OnKey(KeyEvent{Key: KeyEscape}), event: KeyEvent{Key: KeyEscape}, expected: true},
		"key with different mod":      {clause: OnKey(KeyEvent{Key: KeyEscape}), event: KeyEvent{Key: KeyEscape, Mod: ModAlt}, expected: false},
		"key vs tick":                 {clause: OnKey(KeyEvent{Key: KeyEscape}), event: TickEvent{}, expected: false},
		"tick":                        {clause: OnTick(), event: TickEvent{}, expected: true},
		"resize":                      {clause: OnResize(), event: ResizeEvent{Width: 1, Height: 1}, expected: true},
		"resize vs key":               {clause: OnResize(), event: KeyEvent{}, expected: false},
		"user any payload":            {clause: OnUser(), event: UserEvent[progress]{Payload: 0.5}, expected: true},
		"user vs tick":                {clause: OnUser(), event: TickEvent{}, expected: false},
		"user match accepts":          {clause: OnUserMatch(func(p any) bool { return p == progress(0.5) }), event: UserEvent[progress]{Payload: 0.5}, expected: true},
		"user match rejects":          {clause: OnUserMatch(func(p any) bool { return p == progress(0.5) }), event: UserEvent[progress]{Payload: 0.1}, expected: false},
		"payload type matches":        {clause: OnPayload[progress](), event: UserEvent[progress]{Payload: 1}, expected: true},
		"payload type differs":        {clause: OnPayload[string](), event: UserEvent[progress]{Payload: 1}, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.clause(tt.event); got != tt.expected {
				t.Errorf("clause(%v) = %v, want %v", tt.event, got, tt.expected)
			}
		})
	}
}

func TestSub_Matches(t *testing.T) {
	type tc struct {
		sub      Sub
		expected bool
	}

	tests := map[string]tc{
		"nil clause never matches": {sub: Sub{}, expected: false},
		"clause only":              {sub: Subscribe(OnTick()), expected: true},
		"when allows":              {sub: Sub{Clause: OnTick(), When: func() bool { return true }}, expected: true},
		"when vetoes":              {sub: Sub{Clause: OnTick(), When: func() bool { return false }}, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.sub.Matches(TickEvent{}); got != tt.expected {
				t.Errorf("Matches() = %v, want %v", got, tt.expected)
			}
		})
	}
}
