package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-realm"
)

func TestParagraph_Lines(t *testing.T) {
	type tc struct {
		wrap     bool
		text     []string
		width    int
		expected []string
	}

	tests := map[string]tc{
		"no wrap cuts at edge": {
			text:     []string{"hello world", "ok"},
			width:    5,
			expected: []string{"hello", "ok"},
		},
		"wrap breaks on words": {
			wrap:     true,
			text:     []string{"hello world foo"},
			width:    6,
			expected: []string{"hello", "world", "foo"},
		},
		"wrap keeps line breaks": {
			wrap:     true,
			text:     []string{"a", "b"},
			width:    4,
			expected: []string{"a", "b"},
		},
		"zero width": {
			text:  []string{"abc"},
			width: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewParagraph().Wrap(tt.wrap).Text(tt.text...)
			got := p.Lines(tt.width)
			for i := range got {
				got[i] = strings.TrimRight(got[i], " ")
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParagraph_View(t *testing.T) {
	type tc struct {
		build    func() *Paragraph
		focus    bool
		expected []string
	}

	tests := map[string]tc{
		"wrapped with title": {
			build: func() *Paragraph {
				return NewParagraph().Title("hi", lipgloss.Left).Wrap(true).Text("hello world foo")
			},
			expected: []string{
				"╭hi────╮",
				"│hello │",
				"│world │",
				"╰──────╯",
			},
		},
		"unwrapped right title": {
			build: func() *Paragraph {
				return NewParagraph().Title("hi", lipgloss.Right).Text("hello world", "ab")
			},
			expected: []string{
				"╭────hi╮",
				"│hello │",
				"│ab    │",
				"╰──────╯",
			},
		},
		"centred text": {
			build: func() *Paragraph {
				return NewParagraph().Alignment(lipgloss.Center).Text("ab")
			},
			expected: []string{
				"╭──────╮",
				"│  ab  │",
				"│      │",
				"╰──────╯",
			},
		},
		"focused uses thick border": {
			build: func() *Paragraph {
				return NewParagraph().Text("x")
			},
			focus: true,
			expected: []string{
				"┏━━━━━━┓",
				"┃x     ┃",
				"┃      ┃",
				"┗━━━━━━┛",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := tt.build()
			if tt.focus {
				p.Focus()
			}
			f := realm.NewFrame(8, 4)
			p.View(f, f.Area())
			if diff := cmp.Diff(tt.expected, strings.Split(f.PlainString(), "\n")); diff != "" {
				t.Errorf("View() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParagraph_FocusRoundTrip(t *testing.T) {
	p := NewParagraph()
	p.Focus()
	if !realm.PropAs(p, realm.AttrFocus, false) {
		t.Fatal("Focus() did not set the focus attribute")
	}
	p.Blur()
	if _, ok := p.Query(realm.AttrFocus); ok {
		t.Error("Blur() left the focus attribute set")
	}
}

func TestParagraph_TinyAreaDrawsNothing(t *testing.T) {
	f := realm.NewFrame(3, 1)
	NewParagraph().Text("abc").View(f, f.Area())
	if got := f.PlainString(); got != "   " {
		t.Errorf("View() on 3x1 = %q, want blank", got)
	}
}
