package box

import "github.com/matzehuels/flexstack/pkg/flex"

// Spacer is a pure filler item. It reports zero size under every
// proposal, which is exactly the heuristic the resolver uses to detect
// fillers, and adopts whatever length it is offered at placement time.
type Spacer struct {
	// ID identifies the spacer in serialized layouts.
	ID string

	placed   flex.Rect
	isPlaced bool
}

// Measure returns zero dimensions regardless of the proposal.
func (s *Spacer) Measure(p flex.Proposal) flex.Dimensions {
	return flex.Dimensions{}
}

// Place records the spacer's assigned rectangle. The size adopts the
// proposed lengths where specified.
func (s *Spacer) Place(origin flex.Point, p flex.Proposal) {
	var size flex.Size
	if flex.Specified(p.Width) {
		size.Width = p.Width
	}
	if flex.Specified(p.Height) {
		size.Height = p.Height
	}
	s.placed = flex.Rect{Min: origin, Size: size}
	s.isPlaced = true
}

// Placed returns the rectangle assigned by the last layout pass and
// whether the spacer has been placed at all.
func (s *Spacer) Placed() (flex.Rect, bool) {
	return s.placed, s.isPlaced
}

// Ensure Spacer implements flex.Item.
var _ flex.Item = (*Spacer)(nil)
