package sources

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-realm"
)

func TestFunc(t *testing.T) {
	errBoom := errors.New("boom")

	type tc struct {
		value     string
		ok        bool
		err       error
		expected  realm.Event
		expectErr error
	}

	tests := map[string]tc{
		"reading":    {value: "hi", ok: true, expected: realm.UserEvent[string]{Payload: "hi"}},
		"no reading": {value: "ignored"},
		"error":      {ok: true, err: errBoom, expectErr: errBoom},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := Func(func() (string, bool, error) { return tt.value, tt.ok, tt.err })
			ev, err := p.Poll()
			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("Poll() error = %v, want %v", err, tt.expectErr)
			}
			if ev != tt.expected {
				t.Errorf("Poll() = %#v, want %#v", ev, tt.expected)
			}
		})
	}
}

func TestMeasureOf(t *testing.T) {
	type tc struct {
		payload  any
		expected float64
		ok       bool
	}

	tests := map[string]tc{
		"progress": {payload: Progress(0.3), expected: 0.3, ok: true},
		"cpu":      {payload: CPULoad(0.7), expected: 0.7, ok: true},
		"other":    {payload: "x"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := MeasureOf(tt.payload)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("MeasureOf(%v) = (%v, %v), want (%v, %v)", tt.payload, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
