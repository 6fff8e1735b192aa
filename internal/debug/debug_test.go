package debug

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_Disabled(t *testing.T) {
	SetOutput(nil)
	defer SetOutput(nil)

	if Enabled() {
		t.Fatal("Enabled() = true after SetOutput(nil)")
	}
	Log("dropped %d", 1)
}

func TestLog_Output(t *testing.T) {
	type tc struct {
		write    func()
		contains []string
	}

	tests := map[string]tc{
		"formatted message": {
			write:    func() { Log("mounted %q at %d", "alfa", 2) },
			contains: []string{"level=DEBUG", `mounted \"alfa\" at 2`},
		},
		"logf alias": {
			write:    func() { Logf("tick %d", 7) },
			contains: []string{"tick 7"},
		},
		"structured error": {
			write:    func() { Error("poll failed", errors.New("boom"), "source", 3) },
			contains: []string{"level=ERROR", "poll failed", "err=boom", "source=3"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			defer SetOutput(nil)

			tt.write()

			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "realm.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hello %s", "file")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	defer SetOutput(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q, want it to contain %q", data, "hello file")
	}
}

func TestEnvVar_OpensLazily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)

	mu.Lock()
	closeLocked()
	envChecked = false
	mu.Unlock()
	defer SetOutput(nil)

	if !Enabled() {
		t.Fatalf("Enabled() = false with %s set", EnvVar)
	}
	Log("from env")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "from env") {
		t.Errorf("log file = %q, want it to contain %q", data, "from env")
	}
}
