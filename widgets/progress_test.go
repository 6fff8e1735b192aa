package widgets

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-realm"
)

func TestProgressBar_Progress(t *testing.T) {
	type tc struct {
		in       float64
		expected float64
	}

	tests := map[string]tc{
		"inside range": {in: 0.25, expected: 0.25},
		"negative":     {in: -1, expected: 0},
		"above one":    {in: 1.5, expected: 1},
		"nan":          {in: math.NaN(), expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewProgressBar().Progress(tt.in).Ratio(); got != tt.expected {
				t.Errorf("Ratio() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProgressBar_Bar(t *testing.T) {
	type tc struct {
		ratio    float64
		label    string
		width    int
		expected string
	}

	tests := map[string]tc{
		"empty":        {ratio: 0, width: 4, expected: "    "},
		"full":         {ratio: 1, width: 4, expected: "████"},
		"half":         {ratio: 0.5, width: 10, expected: "█████     "},
		"partial cell": {ratio: 0.55, width: 10, expected: "█████▌    "},
		"label":        {ratio: 0.5, label: "50%", width: 10, expected: "███50%    "},
		"label cut":    {ratio: 1, label: "toolong", width: 3, expected: "too"},
		"zero width":   {ratio: 1, width: 0, expected: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewProgressBar().Progress(tt.ratio).Label(tt.label)
			if got := b.Bar(tt.width); got != tt.expected {
				t.Errorf("Bar(%d) = %q, want %q", tt.width, got, tt.expected)
			}
		})
	}
}

func TestPercentLabel(t *testing.T) {
	type tc struct {
		ratio    float64
		expected string
	}

	tests := map[string]tc{
		"zero":     {ratio: 0, expected: "00%"},
		"small":    {ratio: 0.05, expected: "05%"},
		"half":     {ratio: 0.5, expected: "50%"},
		"full":     {ratio: 1, expected: "100%"},
		"clamped":  {ratio: -3, expected: "00%"},
		"truncates": {ratio: 0.126, expected: "12%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := PercentLabel(tt.ratio); got != tt.expected {
				t.Errorf("PercentLabel(%v) = %q, want %q", tt.ratio, got, tt.expected)
			}
		})
	}
}

func TestProgressBar_View(t *testing.T) {
	b := NewProgressBar().
		Title("Loader", lipgloss.Center).
		Borders(lipgloss.Color("2")).
		Foreground(lipgloss.Color("3")).
		Progress(0.5).
		Label("50%")

	f := realm.NewFrame(12, 3)
	b.View(f, f.Area())

	expected := []string{
		"╭──Loader──╮",
		"│███50%    │",
		"╰──────────╯",
	}
	if diff := cmp.Diff(expected, strings.Split(f.PlainString(), "\n")); diff != "" {
		t.Errorf("View() mismatch (-want +got):\n%s", diff)
	}
}
