package realm

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-realm/internal/debug"
	"github.com/jonboulle/clockwork"
)

// PollStrategy controls how much a single Scheduler.Poll collects.
type PollStrategy struct {
	limit int
}

// PollOnce runs exactly one scheduler tick.
var PollOnce = PollStrategy{}

// PollUpTo keeps ticking while ticks produce events, until n events are
// collected. Events past n stay queued for the next Poll.
func PollUpTo(n int) PollStrategy {
	return PollStrategy{limit: max(n, 0)}
}

func (s PollStrategy) String() string {
	if s.limit == 0 {
		return "Once"
	}
	return fmt.Sprintf("UpTo(%d)", s.limit)
}

// source is a registered Poller and its polling state.
type source struct {
	poller   Poller
	interval time.Duration
	lastPoll time.Time
	polled   bool
}

// due reports whether the source should be polled at now. A source that has
// never been polled is always due.
func (s *source) due(now time.Time) bool {
	return !s.polled || now.Sub(s.lastPoll) >= s.interval
}

// Scheduler polls registered event sources, each at its own interval, and
// merges what they produce into one ordered batch. It never sleeps; the
// caller's loop decides how often Tick runs.
type Scheduler struct {
	clock   clockwork.Clock
	sources []*source
	pending []Event
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock sets the clock used to decide which sources are due.
func WithClock(clock clockwork.Clock) SchedulerOption {
	return func(s *Scheduler) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewScheduler creates a Scheduler with no sources.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a source polled at most once per interval. Sources are polled
// in registration order. A zero interval polls the source on every tick.
func (s *Scheduler) Register(p Poller, interval time.Duration) error {
	if p == nil {
		return ErrNilPoller
	}
	if interval < 0 {
		return fmt.Errorf("register %T every %v: %w", p, interval, ErrInvalidInterval)
	}
	s.sources = append(s.sources, &source{poller: p, interval: interval})
	debug.Log("Scheduler.Register: source=%d type=%T interval=%v", len(s.sources)-1, p, interval)
	return nil
}

// Len returns the number of registered sources.
func (s *Scheduler) Len() int {
	return len(s.sources)
}

// Tick polls every source that is due, once, in registration order, and
// returns the events they produced in that order. The timer of every polled
// source restarts at this tick whether it produced an event, nothing, or an
// error; polls missed while the caller was busy are not made up.
func (s *Scheduler) Tick() ([]Event, []error) {
	now := s.clock.Now()

	var (
		events []Event
		errs   []error
	)
	for i, src := range s.sources {
		if !src.due(now) {
			continue
		}
		ev, err := src.poller.Poll()
		src.lastPoll = now
		src.polled = true

		if err != nil {
			serr := &SourceError{Index: i, Err: err}
			debug.Error("Scheduler.Tick: poll failed", err, "source", i)
			errs = append(errs, serr)
			continue
		}
		if ev != nil {
			events = append(events, ev)
		}
	}
	return events, errs
}

// Poll collects a batch according to strategy. Events queued by an earlier
// PollUpTo come first.
func (s *Scheduler) Poll(strategy PollStrategy) ([]Event, []error) {
	if strategy.limit == 0 {
		events, errs := s.Tick()
		batch := append(s.pending, events...)
		s.pending = nil
		return batch, errs
	}

	var errs []error
	for len(s.pending) < strategy.limit {
		events, tickErrs := s.Tick()
		errs = append(errs, tickErrs...)
		if len(events) == 0 {
			break
		}
		s.pending = append(s.pending, events...)
	}

	n := min(strategy.limit, len(s.pending))
	batch := append([]Event(nil), s.pending[:n]...)
	s.pending = s.pending[n:]
	if len(s.pending) == 0 {
		s.pending = nil
	}
	return batch, errs
}
