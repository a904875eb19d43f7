// Package box provides concrete layout items for the flex resolver:
// fixed and growable rectangles, lipgloss-measured text blocks, and
// spacers. Items record the rectangle they were placed at so renderers
// can read final geometry back after a layout pass.
package box

import "github.com/matzehuels/flexstack/pkg/flex"

// =============================================================================
// Box - Rectangular Item
// =============================================================================

// Box is a rectangular layout item with a natural size. A growable box
// adopts whatever main-axis length it is offered; a fixed box keeps
// its natural size regardless of the proposal.
type Box struct {
	// ID identifies the box in serialized layouts.
	ID string
	// Label is the display label, defaulting to ID.
	Label string
	// Natural is the box's size when unconstrained.
	Natural flex.Size
	// Grow marks the box as able to use extra space on either axis.
	Grow bool

	placed   flex.Rect
	isPlaced bool
}

// Measure returns the box's dimensions under the given proposal.
func (b *Box) Measure(p flex.Proposal) flex.Dimensions {
	return flex.Dimensions{Size: flex.Size{
		Width:  b.axisLength(p.Width, b.Natural.Width),
		Height: b.axisLength(p.Height, b.Natural.Height),
	}}
}

// axisLength resolves one axis of a proposal against the natural
// length on that axis.
func (b *Box) axisLength(proposed, natural float64) float64 {
	switch {
	case proposed == flex.Unspecified:
		return natural
	case proposed == flex.Infinite:
		if b.Grow {
			return flex.Infinite
		}
		return natural
	case b.Grow:
		return proposed
	default:
		return natural
	}
}

// Place records the box's final rectangle.
func (b *Box) Place(origin flex.Point, p flex.Proposal) {
	d := b.Measure(p)
	b.placed = flex.Rect{Min: origin, Size: d.Size}
	b.isPlaced = true
}

// Placed returns the rectangle assigned by the last layout pass and
// whether the box has been placed at all.
func (b *Box) Placed() (flex.Rect, bool) {
	return b.placed, b.isPlaced
}

// DisplayLabel returns the label if set, otherwise the ID.
func (b *Box) DisplayLabel() string {
	if b.Label != "" {
		return b.Label
	}
	return b.ID
}

// Ensure Box implements flex.Item.
var _ flex.Item = (*Box)(nil)
