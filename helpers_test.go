package realm

// testMsg is the message type used across the package tests.
type testMsg string

// testComponent records what it receives and answers every event with a
// message built from its name, unless silent.
type testComponent struct {
	Props

	name     string
	silent   bool
	received []Event
	focused  bool
	focuses  int
	blurs    int
	inits    int
	cleanups int
	respond  func(ev Event) (testMsg, bool)
}

func newTestComponent(name string) *testComponent {
	return &testComponent{name: name}
}

func (c *testComponent) On(ev Event) (testMsg, bool) {
	c.received = append(c.received, ev)
	if c.respond != nil {
		return c.respond(ev)
	}
	if c.silent {
		return "", false
	}
	return testMsg(c.name), true
}

func (c *testComponent) View(f *Frame, area Rect) {
	f.Render(area, c.name)
}

func (c *testComponent) Focus() {
	c.focused = true
	c.focuses++
}

func (c *testComponent) Blur() {
	c.focused = false
	c.blurs++
}

func (c *testComponent) Init() func() {
	c.inits++
	return func() { c.cleanups++ }
}

// plainComponent has no optional capabilities.
type plainComponent struct{}

func (plainComponent) On(Event) (testMsg, bool) { return "", false }
func (plainComponent) View(*Frame, Rect)        {}
