// Package demo holds the start-up plumbing shared by the example programs:
// flags, configuration, debug logging, and the terminal session.
package demo

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-realm"
	"github.com/grindlemire/go-realm/internal/config"
	"github.com/grindlemire/go-realm/internal/debug"
	"github.com/muesli/termenv"
)

// Flags are the command line flags of a demo.
type Flags struct {
	ConfigPath string
	Feed       string
}

// ParseFlags parses args, which exclude the program name. The -feed flag is
// only registered when withFeed is set.
func ParseFlags(name string, args []string, withFeed bool) (Flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var f Flags
	fs.StringVar(&f.ConfigPath, "config", "", "path to a .toml or .yaml config file")
	if withFeed {
		fs.StringVar(&f.Feed, "feed", "", "data feed for the gauges: loader or cpu")
	}
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// LoadConfig loads the configuration named by f and applies flag overrides.
func LoadConfig(f Flags) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Feed != "" {
		cfg.Feed.Kind = f.Feed
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Strategy returns the poll strategy cfg asks for.
func Strategy(cfg *config.Config) realm.PollStrategy {
	if cfg.Runtime.PollStrategy == config.StrategyUpTo {
		return realm.PollUpTo(cfg.Runtime.PollLimit)
	}
	return realm.PollOnce
}

// ProgramOptions maps the runtime section of cfg onto program options.
func ProgramOptions(cfg *config.Config) []realm.ProgramOption {
	opts := []realm.ProgramOption{
		realm.WithTickInterval(cfg.Runtime.TickInterval.Duration),
		realm.WithPollStrategy(Strategy(cfg)),
	}
	if !cfg.Runtime.AltScreen {
		opts = append(opts, realm.WithoutAltScreen())
	}
	return opts
}

// Scheduler creates a scheduler with input registered first, at the
// configured input interval.
func Scheduler(cfg *config.Config, input realm.Poller) (*realm.Scheduler, error) {
	s := realm.NewScheduler()
	if err := s.Register(input, cfg.Input.Interval.Duration); err != nil {
		return nil, fmt.Errorf("register input: %w", err)
	}
	return s, nil
}

// Session is the real terminal a demo draws on and reads from.
type Session struct {
	Terminal *realm.ANSITerminal
	Input    *realm.InputListener
}

// Open starts debug logging when configured, checks that stdin and stdout
// are a terminal, and picks lipgloss's colour profile from stdout.
func Open(cfg *config.Config) (*Session, error) {
	if cfg.Log.DebugFile != "" {
		if err := debug.Init(cfg.Log.DebugFile); err != nil {
			return nil, fmt.Errorf("debug log: %w", err)
		}
	}

	term, err := realm.NewANSITerminal(os.Stdout, os.Stdin)
	if err != nil {
		return nil, err
	}
	reader, err := realm.NewEventReader(os.Stdin)
	if err != nil {
		return nil, err
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

	debug.Log("demo: session open, input every %v", cfg.Input.Interval.Duration)
	return &Session{
		Terminal: term,
		Input:    realm.NewInputListener(reader, cfg.Input.Timeout.Duration),
	}, nil
}

// Close releases the input reader and the debug log.
func (s *Session) Close() error {
	return errors.Join(s.Input.Close(), debug.Close())
}

// Exit reports err on stderr and exits with status 1. A help request exits 0.
func Exit(name string, err error) {
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	os.Exit(1)
}
