package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "REALM_DEBUG"

var (
	mu         sync.Mutex
	logger     *slog.Logger
	logFile    *os.File
	envChecked bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f)
	envChecked = true
	return nil
}

// SetOutput routes debug records to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	envChecked = true
	if w != nil {
		logger = newLogger(w)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether debug records are written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return activeLocked() != nil
}

// activeLocked returns the logger, opening the REALM_DEBUG file the first
// time it is needed. Caller must hold mu.
func activeLocked() *slog.Logger {
	if logger == nil && !envChecked {
		envChecked = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug: %v\n", err)
			}
		}
	}
	return logger
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := activeLocked()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

// Error writes a structured error record with optional key/value attributes.
func Error(msg string, err error, attrs ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := activeLocked()
	if l == nil {
		return
	}
	l.Log(context.Background(), slog.LevelError, msg, append([]any{slog.Any("err", err)}, attrs...)...)
}
