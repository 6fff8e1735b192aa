package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/go-realm"
)

// Paragraph is a bordered block of text that is either word-wrapped to the
// area or cut at its right edge.
type Paragraph struct {
	block
}

// NewParagraph creates an empty paragraph with wrapping off.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// Title sets the title shown in the top border.
func (p *Paragraph) Title(title string, align lipgloss.Position) *Paragraph {
	p.Attr(realm.AttrTitle, title)
	p.Attr(AttrTitleAlignment, align)
	return p
}

// Alignment sets the horizontal alignment of the text.
func (p *Paragraph) Alignment(align lipgloss.Position) *Paragraph {
	p.Attr(AttrAlignment, align)
	return p
}

// Borders sets the border colour.
func (p *Paragraph) Borders(color lipgloss.Color) *Paragraph {
	p.Attr(realm.AttrBorderColor, color)
	return p
}

// Foreground sets the text colour.
func (p *Paragraph) Foreground(color lipgloss.Color) *Paragraph {
	p.Attr(realm.AttrForeground, color)
	return p
}

// Background sets the background colour of the text area.
func (p *Paragraph) Background(color lipgloss.Color) *Paragraph {
	p.Attr(AttrBackground, color)
	return p
}

// Wrap turns word wrapping on or off.
func (p *Paragraph) Wrap(wrap bool) *Paragraph {
	p.Attr(realm.AttrWrap, wrap)
	return p
}

// Text sets the lines of the paragraph.
func (p *Paragraph) Text(lines ...string) *Paragraph {
	p.Attr(realm.AttrText, lines)
	return p
}

// Lines lays out the text for a content area width columns wide.
func (p *Paragraph) Lines(width int) []string {
	text := realm.PropAs[[]string](p, realm.AttrText, nil)
	if width <= 0 {
		return nil
	}
	if !realm.PropAs(p, realm.AttrWrap, false) {
		out := make([]string, len(text))
		for i, line := range text {
			out[i] = ansi.Truncate(line, width, "")
		}
		return out
	}

	var out []string
	for _, line := range text {
		out = append(out, strings.Split(ansi.Wrap(line, width, ""), "\n")...)
	}
	return out
}

// View draws the paragraph into area.
func (p *Paragraph) View(f *realm.Frame, area realm.Rect) {
	width, height := innerSize(area)
	lines := p.Lines(width)
	if len(lines) > height {
		lines = lines[:height]
	}

	p.render(f, area, p.contentStyle(width, height).Render(strings.Join(lines, "\n")))
}
