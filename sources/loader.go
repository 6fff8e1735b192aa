package sources

import "github.com/grindlemire/go-realm"

// DefaultStep is how far a Loader advances per poll when no step is given.
const DefaultStep = 0.01

// Loader is a synthetic progress feed. Every poll advances it by one step;
// once it would pass 1 it starts again from 0.
type Loader struct {
	step  float64
	ticks int
}

var _ realm.Poller = (*Loader)(nil)

// NewLoader creates a Loader. A step outside (0, 1] uses DefaultStep.
func NewLoader(step float64) *Loader {
	if step <= 0 || step > 1 {
		step = DefaultStep
	}
	return &Loader{step: step}
}

// Load advances the feed and returns the new progress.
func (l *Loader) Load() float64 {
	l.ticks++
	p := float64(l.ticks) * l.step
	// Tolerate float error so a step of 0.01 still reaches exactly 1.
	if p > 1+1e-9 {
		l.ticks = 0
		return 0
	}
	return min(p, 1)
}

// Poll emits the next progress value.
func (l *Loader) Poll() (realm.Event, error) {
	return realm.UserEvent[Progress]{Payload: Progress(l.Load())}, nil
}
