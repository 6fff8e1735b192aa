package realm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-realm/internal/debug"
)

// RunState is the lifecycle state of a Program.
type RunState int32

const (
	// Idle is the state before Run.
	Idle RunState = iota
	// Running means the loop is ticking.
	Running
	// Terminating means termination was requested and the final render is due.
	Terminating
	// Stopped means the loop has exited.
	Stopped
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Terminating:
		return "Terminating"
	case Stopped:
		return "Stopped"
	}
	return fmt.Sprintf("RunState(%d)", int32(s))
}

// Model is the host application: a reducer plus a view of the whole screen.
type Model[ID comparable, Msg any] interface {
	Updater[Msg]
	View(app *Application[ID, Msg], f *Frame)
}

// Program runs the loop: tick the application, drain the messages through the
// model, and draw when a redraw is pending.
type Program[ID comparable, Msg any] struct {
	app   *Application[ID, Msg]
	model Model[ID, Msg]
	term  Terminal
	loop  *UpdateLoop[Msg]
	opts  programOptions

	state    atomic.Int32
	renders  int
	lastW    int
	lastH    int
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewProgram creates a Program. isQuit recognises the termination message.
func NewProgram[ID comparable, Msg any](app *Application[ID, Msg], model Model[ID, Msg], term Terminal, isQuit func(Msg) bool, opts ...ProgramOption) (*Program[ID, Msg], error) {
	if app == nil || model == nil || term == nil {
		return nil, errors.New("program needs an application, a model and a terminal")
	}
	if isQuit == nil {
		return nil, errors.New("program needs a termination predicate")
	}

	o := defaultProgramOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	return &Program[ID, Msg]{
		app:    app,
		model:  model,
		term:   term,
		loop:   NewUpdateLoop[Msg](model, isQuit),
		opts:   o,
		stopCh: make(chan struct{}),
	}, nil
}

// State returns the current lifecycle state. Safe to call from any goroutine.
func (p *Program[ID, Msg]) State() RunState {
	return RunState(p.state.Load())
}

// Renders returns how many frames have been drawn.
func (p *Program[ID, Msg]) Renders() int {
	return p.renders
}

// UpdateLoop returns the loop draining messages into the model.
func (p *Program[ID, Msg]) UpdateLoop() *UpdateLoop[Msg] {
	return p.loop
}

// Stop asks the loop to terminate after its current iteration.
// Stop is idempotent and safe to call from any goroutine.
func (p *Program[ID, Msg]) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// Run is RunContext with a background context.
func (p *Program[ID, Msg]) Run() error {
	return p.RunContext(context.Background())
}

// RunContext acquires the terminal and runs the loop until a termination
// message is drained, Stop is called, or ctx is done. Every exit draws exactly
// one final frame before the state becomes Stopped. Failing to acquire the
// terminal is returned before any iteration; failing to release it is only
// logged.
func (p *Program[ID, Msg]) RunContext(ctx context.Context) error {
	if !p.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return fmt.Errorf("program already ran (state %v)", p.State())
	}

	bridge := NewTerminalBridge(p.term, p.opts.altScreen)
	if err := bridge.Acquire(); err != nil {
		p.state.Store(int32(Stopped))
		return err
	}
	defer func() {
		if rerr := bridge.Release(); rerr != nil {
			debug.Error("Program: terminal release failed", rerr)
		}
		p.state.Store(int32(Stopped))
	}()

	p.loop.MarkRedraw()
	for {
		start := time.Now()

		msgs := p.app.Tick(p.opts.strategy)
		_, quit := p.loop.Drain(msgs)
		if quit {
			p.state.Store(int32(Terminating))
		}

		if p.loop.CheckAndClearRedraw() || p.resized() {
			p.render()
		}
		if quit {
			debug.Log("Program: terminated by message after %d renders", p.renders)
			return nil
		}

		if p.opts.tickInterval <= 0 {
			if p.stopRequested(ctx) {
				return p.terminate()
			}
			continue
		}
		wait := max(p.opts.tickInterval-time.Since(start), 0)
		select {
		case <-time.After(wait):
		case <-p.stopCh:
			return p.terminate()
		case <-ctx.Done():
			return p.terminate()
		}
	}
}

func (p *Program[ID, Msg]) stopRequested(ctx context.Context) bool {
	select {
	case <-p.stopCh:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// terminate handles a Stop or cancellation: one final render, then exit.
func (p *Program[ID, Msg]) terminate() error {
	p.state.Store(int32(Terminating))
	p.loop.CheckAndClearRedraw()
	p.render()
	debug.Log("Program: stopped after %d renders", p.renders)
	return nil
}

// resized reports whether the terminal size changed since the last render.
func (p *Program[ID, Msg]) resized() bool {
	w, h := p.term.Size()
	return p.renders > 0 && (w != p.lastW || h != p.lastH)
}

func (p *Program[ID, Msg]) render() {
	w, h := p.term.Size()
	p.lastW, p.lastH = w, h
	f := NewFrame(w, h)
	p.model.View(p.app, f)
	p.term.Draw(f)
	p.renders++
}
