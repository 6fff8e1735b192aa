package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/go-realm"
)

// Block characters for sub-cell precision (8 levels per cell).
var barBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// ProgressBar is a bordered gauge filled to a ratio in [0, 1] with a label
// centred over the bar.
type ProgressBar struct {
	block
}

// NewProgressBar creates an empty progress bar.
func NewProgressBar() *ProgressBar {
	return &ProgressBar{}
}

// Title sets the title shown in the top border.
func (b *ProgressBar) Title(title string, align lipgloss.Position) *ProgressBar {
	b.Attr(realm.AttrTitle, title)
	b.Attr(AttrTitleAlignment, align)
	return b
}

// Borders sets the border colour.
func (b *ProgressBar) Borders(color lipgloss.Color) *ProgressBar {
	b.Attr(realm.AttrBorderColor, color)
	return b
}

// Foreground sets the bar colour.
func (b *ProgressBar) Foreground(color lipgloss.Color) *ProgressBar {
	b.Attr(realm.AttrForeground, color)
	return b
}

// Label sets the text drawn over the bar.
func (b *ProgressBar) Label(label string) *ProgressBar {
	b.Attr(realm.AttrLabel, label)
	return b
}

// Progress sets the fill ratio, clamped to [0, 1].
func (b *ProgressBar) Progress(ratio float64) *ProgressBar {
	b.Attr(realm.AttrProgress, clampRatio(ratio))
	return b
}

// Ratio returns the current fill ratio.
func (b *ProgressBar) Ratio() float64 {
	return realm.PropAs(b, realm.AttrProgress, 0.0)
}

func clampRatio(r float64) float64 {
	if math.IsNaN(r) {
		return 0
	}
	return min(max(r, 0), 1)
}

// PercentLabel formats a ratio as a whole, truncated, zero-padded percentage.
func PercentLabel(ratio float64) string {
	return fmt.Sprintf("%02d%%", int(clampRatio(ratio)*100))
}

// Bar renders the plain bar, width cells wide, with the label centred on it.
func (b *ProgressBar) Bar(width int) string {
	if width <= 0 {
		return ""
	}
	units := int(math.Round(b.Ratio() * float64(width*8)))
	full, partial := units/8, units%8

	cells := make([]rune, width)
	for i := range cells {
		switch {
		case i < full:
			cells[i] = barBlocks[8]
		case i == full && partial > 0:
			cells[i] = barBlocks[partial]
		default:
			cells[i] = barBlocks[0]
		}
	}

	label := ansi.Truncate(realm.PropAs(b, realm.AttrLabel, ""), width, "")
	bar := string(cells)
	if label == "" {
		return bar
	}
	start := (width - ansi.StringWidth(label)) / 2
	return ansi.Truncate(bar, start, "") + label + ansi.TruncateLeft(bar, start+ansi.StringWidth(label), "")
}

// View draws the gauge into area; the bar sits on the first content row.
func (b *ProgressBar) View(f *realm.Frame, area realm.Rect) {
	width, height := innerSize(area)
	rows := make([]string, max(height, 1))
	rows[0] = b.Bar(width)
	b.render(f, area, b.contentStyle(width, height).Render(strings.Join(rows, "\n")))
}
