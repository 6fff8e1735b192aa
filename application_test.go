package realm

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

// newTestApplication builds an application fed by a mock reader polled on
// every tick.
func newTestApplication(t *testing.T, events ...Event) (*Application[string, testMsg], *MockEventReader) {
	t.Helper()
	reader := NewMockEventReader(events...)
	s := NewScheduler(WithClock(clockwork.NewFakeClock()))
	if err := s.Register(NewInputListener(reader, 0), 0); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return NewApplication[string, testMsg](s), reader
}

func TestApplication_Routing(t *testing.T) {
	type tc struct {
		event    Event
		focus    string
		expected []testMsg
	}

	tests := map[string]tc{
		"focused then subscribers in mount order": {
			event:    TickEvent{},
			focus:    "b",
			expected: []testMsg{"b", "a", "c"},
		},
		"focused only once even if subscribed": {
			event:    TickEvent{},
			focus:    "a",
			expected: []testMsg{"a", "c"},
		},
		"navigation key goes to focused only": {
			event:    KeyEvent{Key: KeyTab},
			focus:    "b",
			expected: []testMsg{"b"},
		},
		"navigation key without focus goes nowhere": {
			event:    KeyEvent{Key: KeyTab},
			expected: nil,
		},
		"no focus reaches subscribers": {
			event:    TickEvent{},
			expected: []testMsg{"a", "c"},
		},
		"unsubscribed event reaches focused only": {
			event:    ResizeEvent{Width: 10, Height: 10},
			focus:    "a",
			expected: []testMsg{"a"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _ := newTestApplication(t, tt.event)
			app.Mount("a", newTestComponent("a"), Subscribe(OnAny()))
			app.Mount("b", newTestComponent("b"))
			app.Mount("c", newTestComponent("c"), Subscribe(OnTick()), Subscribe(OnKey(KeyEvent{Key: KeyTab})))
			if tt.focus != "" {
				app.Active(tt.focus)
			}

			got := app.Tick(PollOnce)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tick() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplication_FocusResolverAppliesBeforeNextEvent(t *testing.T) {
	app, _ := newTestApplication(t)
	a, b := newTestComponent("a"), newTestComponent("b")
	a.respond = func(ev Event) (testMsg, bool) {
		if ke, ok := ev.(KeyEvent); ok && ke.Key == KeyTab {
			return "blur:a", true
		}
		return "a", true
	}
	b.respond = func(ev Event) (testMsg, bool) { return "b", true }
	app.Mount("a", a)
	app.Mount("b", b)
	app.Active("a")
	app.SetFocusResolver(func(m testMsg) (string, bool) {
		if m == "blur:a" {
			return "b", true
		}
		return "", false
	})

	// Drive two events through one tick with PollUpTo.
	reader := NewMockEventReader(KeyEvent{Key: KeyTab}, KeyEvent{Key: KeyEnter})
	s := NewScheduler(WithClock(clockwork.NewFakeClock()))
	s.Register(NewInputListener(reader, 0), 0)
	app.listener = s

	got := app.Tick(PollUpTo(2))
	if diff := cmp.Diff([]testMsg{"blur:a", "b"}, got); diff != "" {
		t.Errorf("Tick() mismatch (-want +got):\n%s", diff)
	}
	if id, _ := app.Focus(); id != "b" {
		t.Errorf("Focus() = %q, want b", id)
	}
	if len(a.received) != 1 {
		t.Errorf("a received %d events, want only the Tab", len(a.received))
	}
}

func TestApplication_SetNavigationKeys(t *testing.T) {
	app, _ := newTestApplication(t, KeyEvent{Key: KeyTab}, KeyEvent{Key: KeyF1})
	app.SetNavigationKeys(KeyF1)
	app.Mount("sub", newTestComponent("sub"), Subscribe(OnAny()))

	if got := app.Tick(PollOnce); !cmp.Equal([]testMsg{"sub"}, got) {
		t.Errorf("Tab is no longer navigation, got %v want [sub]", got)
	}
	if got := app.Tick(PollOnce); len(got) != 0 {
		t.Errorf("F1 is navigation, got %v want none", got)
	}
}

func TestApplication_SourceErrors(t *testing.T) {
	type tc struct {
		handler  func(error) (testMsg, bool)
		expected []testMsg
	}

	tests := map[string]tc{
		"logged only without handler": {expected: nil},
		"mapped by handler": {
			handler: func(err error) (testMsg, bool) {
				var serr *SourceError
				if errors.As(err, &serr) {
					return testMsg("error:" + serr.Err.Error()), true
				}
				return "", false
			},
			expected: []testMsg{"error:eof"},
		},
		"handler can ignore": {
			handler:  func(error) (testMsg, bool) { return "", false },
			expected: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, reader := newTestApplication(t)
			app.Mount("a", newTestComponent("a"), Subscribe(OnAny()))
			if tt.handler != nil {
				app.SetErrorHandler(tt.handler)
			}
			reader.FailNext(errors.New("eof"))

			if diff := cmp.Diff(tt.expected, app.Tick(PollOnce)); diff != "" {
				t.Errorf("Tick() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplication_SilentComponents(t *testing.T) {
	app, _ := newTestApplication(t, KeyEvent{Key: KeyRune, Rune: 'x'})
	c := newTestComponent("quiet")
	c.silent = true
	app.Mount("quiet", c)
	app.Active("quiet")

	if got := app.Tick(PollOnce); len(got) != 0 {
		t.Errorf("Tick() = %v, want no messages", got)
	}
	if len(c.received) != 1 {
		t.Errorf("received %d events, want 1", len(c.received))
	}
}

func TestApplication_DelegatesToRegistry(t *testing.T) {
	app := NewApplication[string, testMsg](nil)
	if app.Scheduler() == nil {
		t.Fatal("NewApplication(nil) has no scheduler")
	}

	c := newTestComponent("a")
	if err := app.Mount("a", c); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if err := app.Mount("a", c); !errors.Is(err, ErrAlreadyMounted) {
		t.Errorf("second Mount() error = %v", err)
	}
	if err := app.Remount("a", newTestComponent("a2")); err != nil {
		t.Errorf("Remount() error = %v", err)
	}
	if err := app.Attr("a", AttrText, "body"); err != nil {
		t.Errorf("Attr() error = %v", err)
	}
	if v, ok, _ := app.Query("a", AttrText); !ok || v != "body" {
		t.Errorf("Query() = (%v, %v)", v, ok)
	}
	if got := app.Dispatch(KeyEvent{Key: KeyEnter}); len(got) != 0 {
		t.Errorf("Dispatch() without focus or subs = %v", got)
	}
	app.Active("a")
	if got := app.Dispatch(KeyEvent{Key: KeyEnter}); !cmp.Equal([]testMsg{"a2"}, got) {
		t.Errorf("Dispatch() = %v, want [a2]", got)
	}
	if err := app.Blur(); err != nil {
		t.Errorf("Blur() error = %v", err)
	}
	if err := app.Umount("a"); err != nil || app.Mounted("a") {
		t.Errorf("Umount() error = %v mounted = %v", err, app.Mounted("a"))
	}
	if app.Registry().Len() != 0 {
		t.Errorf("Registry().Len() = %d", app.Registry().Len())
	}
}

func TestApplication_View(t *testing.T) {
	app := NewApplication[string, testMsg](nil)
	app.Mount("a", newTestComponent("alfa"))

	f := NewFrame(10, 2)
	if err := app.View("a", f, NewRect(2, 1, 6, 1)); err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if got := f.Row(1); !strings.HasPrefix(got, "  alfa") {
		t.Errorf("row 1 = %q, want alfa at column 2", got)
	}
	if err := app.View("ghost", f, f.Area()); !errors.Is(err, ErrNotMounted) {
		t.Errorf("View(ghost) error = %v, want %v", err, ErrNotMounted)
	}
}
