package realm

import (
	"fmt"
	"time"
)

// DefaultTickInterval paces the program loop at roughly 60 ticks a second.
const DefaultTickInterval = 16 * time.Millisecond

type programOptions struct {
	tickInterval time.Duration
	strategy     PollStrategy
	altScreen    bool
}

func defaultProgramOptions() programOptions {
	return programOptions{
		tickInterval: DefaultTickInterval,
		strategy:     PollOnce,
		altScreen:    true,
	}
}

// ProgramOption is a functional option for configuring a Program.
type ProgramOption func(*programOptions) error

// WithTickInterval sets the minimum time between the starts of two loop
// iterations. Zero runs iterations back to back.
func WithTickInterval(d time.Duration) ProgramOption {
	return func(o *programOptions) error {
		if d < 0 {
			return fmt.Errorf("tick interval cannot be negative: %v", d)
		}
		o.tickInterval = d
		return nil
	}
}

// WithPollStrategy sets the strategy passed to Application.Tick.
// Default is PollOnce.
func WithPollStrategy(s PollStrategy) ProgramOption {
	return func(o *programOptions) error {
		o.strategy = s
		return nil
	}
}

// WithoutAltScreen draws on the main screen buffer instead of the alternate one.
func WithoutAltScreen() ProgramOption {
	return func(o *programOptions) error {
		o.altScreen = false
		return nil
	}
}
