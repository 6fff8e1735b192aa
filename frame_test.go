package realm

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestFrame_Render(t *testing.T) {
	type tc struct {
		width, height int
		area          Rect
		block         string
		expected      []string
	}

	tests := map[string]tc{
		"fits": {
			width: 6, height: 2,
			area:     NewRect(1, 0, 4, 2),
			block:    "ab\ncd",
			expected: []string{" ab   ", " cd   "},
		},
		"clipped right": {
			width: 6, height: 1,
			area:     NewRect(2, 0, 3, 1),
			block:    "abcdef",
			expected: []string{"  abc "},
		},
		"clipped bottom": {
			width: 3, height: 2,
			area:     NewRect(0, 1, 3, 1),
			block:    "one\ntwo",
			expected: []string{"   ", "one"},
		},
		"area outside frame is cut": {
			width: 4, height: 1,
			area:     NewRect(2, 0, 10, 5),
			block:    "xyzw",
			expected: []string{"  xy"},
		},
		"empty area draws nothing": {
			width: 3, height: 1,
			area:     NewRect(0, 0, 0, 1),
			block:    "abc",
			expected: []string{"   "},
		},
		"wide runes": {
			width: 5, height: 1,
			area:     NewRect(0, 0, 3, 1),
			block:    "世界",
			expected: []string{"世   "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFrame(tt.width, tt.height)
			f.Render(tt.area, tt.block)
			if diff := cmp.Diff(tt.expected, f.Rows()); diff != "" {
				t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFrame_RenderKeepsNeighbours(t *testing.T) {
	f := NewFrame(8, 1)
	f.Render(NewRect(0, 0, 4, 1), "left")
	f.Render(NewRect(4, 0, 4, 1), "rght")
	f.Render(NewRect(2, 0, 2, 1), "--")

	if got := f.String(); got != "le--rght" {
		t.Errorf("String() = %q, want %q", got, "le--rght")
	}
}

func TestFrame_StyledRowsKeepWidth(t *testing.T) {
	f := NewFrame(10, 1)
	f.Render(NewRect(0, 0, 10, 1), "\x1b[1mbold\x1b[0m")
	f.Render(NewRect(5, 0, 5, 1), "\x1b[33mtail!\x1b[0m")

	if w := ansi.StringWidth(f.Row(0)); w != 10 {
		t.Errorf("row width = %d, want 10", w)
	}
	if got := f.PlainString(); got != "bold tail!" {
		t.Errorf("PlainString() = %q, want %q", got, "bold tail!")
	}
}

func TestFrame_Size(t *testing.T) {
	f := NewFrame(-1, 3)
	w, h := f.Size()
	if w != 0 || h != 3 {
		t.Errorf("Size() = (%d, %d), want (0, 3)", w, h)
	}
	if f.Row(5) != "" || f.Row(-1) != "" {
		t.Error("out of range Row() returned content")
	}
}
