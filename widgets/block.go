package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/go-realm"
)

// Widget attributes on top of the common realm ones. Alignments hold a
// lipgloss.Position, colours a lipgloss.Color.
const (
	AttrAlignment      realm.Attribute = "alignment"
	AttrTitleAlignment realm.Attribute = "title-alignment"
	AttrBackground     realm.Attribute = "background"
)

// block is the bordered, titled frame shared by every widget.
type block struct {
	realm.Props
}

// Focus marks the widget focused; focused widgets draw a thick border.
func (b *block) Focus() { b.Attr(realm.AttrFocus, true) }

// Blur clears the focus mark.
func (b *block) Blur() { b.Attr(realm.AttrFocus, nil) }

func (b *block) border() lipgloss.Border {
	if realm.PropAs(b, realm.AttrFocus, false) {
		return lipgloss.ThickBorder()
	}
	return lipgloss.RoundedBorder()
}

func (b *block) alignment(attr realm.Attribute) lipgloss.Position {
	return realm.PropAs(b, attr, lipgloss.Left)
}

// contentStyle sizes content to the inner area and applies the colours.
func (b *block) contentStyle(width, height int) lipgloss.Style {
	style := lipgloss.NewStyle().Width(width).Height(height).Align(b.alignment(AttrAlignment))
	if c := realm.PropAs(b, realm.AttrForeground, lipgloss.Color("")); c != "" {
		style = style.Foreground(c)
	}
	if c := realm.PropAs(b, AttrBackground, lipgloss.Color("")); c != "" {
		style = style.Background(c)
	}
	return style
}

// innerSize is the content area left inside the border of area.
func innerSize(area realm.Rect) (width, height int) {
	return max(area.Width-2, 0), max(area.Height-2, 0)
}

// render wraps content, already sized to the inner area, in the border and
// writes the title into the top edge.
func (b *block) render(f *realm.Frame, area realm.Rect, content string) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	border := b.border()
	borderStyle := lipgloss.NewStyle().Border(border)
	if c := realm.PropAs(b, realm.AttrBorderColor, lipgloss.Color("")); c != "" {
		borderStyle = borderStyle.BorderForeground(c)
	}
	box := borderStyle.Render(content)

	lines := strings.Split(box, "\n")
	if title := realm.PropAs(b, realm.AttrTitle, ""); title != "" {
		lines[0] = b.titledEdge(border, title, area.Width)
	}
	f.Render(area, strings.Join(lines, "\n"))
}

// titledEdge builds the top border line with title placed per alignment.
func (b *block) titledEdge(border lipgloss.Border, title string, width int) string {
	span := width - 2
	title = ansi.Truncate(title, span, "…")
	fill := span - ansi.StringWidth(title)

	var left int
	switch b.alignment(AttrTitleAlignment) {
	case lipgloss.Center:
		left = fill / 2
	case lipgloss.Right:
		left = fill
	}

	edge := lipgloss.NewStyle()
	if c := realm.PropAs(b, realm.AttrBorderColor, lipgloss.Color("")); c != "" {
		edge = edge.Foreground(c)
	}
	titleStyle := edge
	if c := realm.PropAs(b, realm.AttrForeground, lipgloss.Color("")); c != "" {
		titleStyle = lipgloss.NewStyle().Foreground(c)
	}

	return edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		titleStyle.Render(title) +
		edge.Render(strings.Repeat(border.Top, fill-left)+border.TopRight)
}
