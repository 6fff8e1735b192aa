package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Feed kinds understood by the progress-bar demo.
const (
	FeedLoader = "loader"
	FeedCPU    = "cpu"
)

// Poll strategies.
const (
	StrategyOnce = "once"
	StrategyUpTo = "upto"
)

// Config is the demo program configuration.
type Config struct {
	Runtime RuntimeConfig `toml:"runtime" yaml:"runtime"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Feed    FeedConfig    `toml:"feed" yaml:"feed"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// RuntimeConfig paces the program loop.
type RuntimeConfig struct {
	TickInterval Duration `toml:"tick_interval" yaml:"tick_interval"`
	PollStrategy string   `toml:"poll_strategy" yaml:"poll_strategy"`
	PollLimit    int      `toml:"poll_limit" yaml:"poll_limit"`
	AltScreen    bool     `toml:"alt_screen" yaml:"alt_screen"`
}

// InputConfig configures the terminal input source.
type InputConfig struct {
	Interval Duration `toml:"interval" yaml:"interval"`
	Timeout  Duration `toml:"timeout" yaml:"timeout"`
}

// FeedConfig configures the custom data source of the progress-bar demo.
type FeedConfig struct {
	Kind     string   `toml:"kind" yaml:"kind"`
	Interval Duration `toml:"interval" yaml:"interval"`
	Step     float64  `toml:"step" yaml:"step"`
}

// LogConfig configures debug logging.
type LogConfig struct {
	DebugFile string `toml:"debug_file" yaml:"debug_file"`
}

// DefaultConfig returns the configuration the demos run with when no file is
// given: input every 10ms, a feed every 50ms, one scheduler tick per loop.
func DefaultConfig() *Config {
	return &Config{
		Runtime: RuntimeConfig{
			TickInterval: Duration{16 * time.Millisecond},
			PollStrategy: StrategyOnce,
			AltScreen:    true,
		},
		Input: InputConfig{
			Interval: Duration{10 * time.Millisecond},
		},
		Feed: FeedConfig{
			Kind:     FeedLoader,
			Interval: Duration{50 * time.Millisecond},
			Step:     0.01,
		},
	}
}

// Load returns the configuration at path, or the defaults when path is empty.
// Environment overrides are applied in both cases and the result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		if err := applyEnvOverrides(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFromFile(path)
}

// LoadFromFile reads configuration from a specific file path. The format is
// chosen by extension: .toml, or .yaml/.yml.
func LoadFromFile(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Format is a config file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config format")

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w (want .toml, .yaml or .yml)", path, ErrUnknownFormat)
}

// LoadFromReader decodes configuration in the given format on top of the
// defaults. Unknown keys are errors.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("REALM_FEED"); v != "" {
		cfg.Feed.Kind = v
	}
	if v := os.Getenv("REALM_TICK_INTERVAL"); v != "" {
		if err := cfg.Runtime.TickInterval.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("REALM_TICK_INTERVAL: %w", err)
		}
	}
	if v := os.Getenv("REALM_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REALM_ALT_SCREEN: %w", err)
		}
		cfg.Runtime.AltScreen = b
	}
	if v := os.Getenv("REALM_DEBUG"); v != "" {
		cfg.Log.DebugFile = v
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.Runtime.PollStrategy {
	case StrategyOnce:
	case StrategyUpTo:
		if c.Runtime.PollLimit < 1 {
			errs = append(errs, fmt.Errorf("runtime.poll_limit must be at least 1 for %q, got %d", StrategyUpTo, c.Runtime.PollLimit))
		}
	default:
		errs = append(errs, fmt.Errorf("runtime.poll_strategy must be %q or %q, got %q", StrategyOnce, StrategyUpTo, c.Runtime.PollStrategy))
	}
	if c.Input.Interval.Duration <= 0 {
		errs = append(errs, errors.New("input.interval must be positive"))
	}
	switch c.Feed.Kind {
	case FeedLoader, FeedCPU:
	default:
		errs = append(errs, fmt.Errorf("feed.kind must be %q or %q, got %q", FeedLoader, FeedCPU, c.Feed.Kind))
	}
	if c.Feed.Interval.Duration <= 0 {
		errs = append(errs, errors.New("feed.interval must be positive"))
	}
	if c.Feed.Step <= 0 || c.Feed.Step > 1 {
		errs = append(errs, fmt.Errorf("feed.step must be in (0, 1], got %v", c.Feed.Step))
	}
	return errors.Join(errs...)
}
