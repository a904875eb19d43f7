package box

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flexstack/pkg/flex"
)

// Text is a text block measured in terminal cells. Width is the widest
// rendered line, height the line count; both are fixed, so a Text never
// grows beyond its content. The style is applied when the block is
// rendered, and participates in measurement (padding, borders).
type Text struct {
	// ID identifies the text block in serialized layouts.
	ID string
	// Content is the raw text.
	Content string
	// Style is an optional lipgloss style applied to the content.
	Style lipgloss.Style

	placed   flex.Rect
	isPlaced bool
}

// Measure returns the rendered cell dimensions of the text. The
// baseline sits on the first rendered line.
func (t *Text) Measure(p flex.Proposal) flex.Dimensions {
	rendered := t.Render()
	w := float64(lipgloss.Width(rendered))
	h := float64(lipgloss.Height(rendered))

	var baseline float64
	if h > 0 {
		baseline = 1
	}
	return flex.Dimensions{
		Size:     flex.Size{Width: w, Height: h},
		Baseline: baseline,
	}
}

// Place records the text block's final rectangle at its measured size.
func (t *Text) Place(origin flex.Point, p flex.Proposal) {
	d := t.Measure(p)
	t.placed = flex.Rect{Min: origin, Size: d.Size}
	t.isPlaced = true
}

// Placed returns the rectangle assigned by the last layout pass and
// whether the block has been placed at all.
func (t *Text) Placed() (flex.Rect, bool) {
	return t.placed, t.isPlaced
}

// Render returns the styled content.
func (t *Text) Render() string {
	return t.Style.Render(t.Content)
}

// Ensure Text implements flex.Item.
var _ flex.Item = (*Text)(nil)
