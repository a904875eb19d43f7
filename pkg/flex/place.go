package flex

// Place assigns every child its final position and main-axis length
// within bounds, walking the items in input order. Items are placed
// strictly sequentially along the main axis; spacing and alignment
// accumulate from the bounds' origin.
//
// When the bounds' main-axis length does not match the cached resolved
// length, the cache is stale (the host placed without a matching prior
// measurement) and Place re-measures synchronously against the current
// bounds before positioning. Measure never places, so the re-entrancy
// terminates after one extra pass.
func (s *Stack) Place(children []Child, bounds Rect, p Proposal, c *Cache) {
	boundsMain := s.Axis.MainOf(bounds.Size)
	if boundsMain != c.resolvedMainLength || len(c.items) != len(children) {
		size := s.Measure(children, MakeProposal(s.Axis, boundsMain, p.Cross(s.Axis)), c)
		bounds.Size = size
	}

	var (
		cursor        = s.Axis.MainCoord(bounds.Min)
		crossOrigin   = s.Axis.CrossCoord(bounds.Min)
		proposedCross = p.Cross(s.Axis)
	)
	for i, ch := range children {
		info := c.items[i]

		length := info.Length
		switch info.Class {
		case ClassSpacer:
			length = c.spacerFill
		case ClassRegular:
			if info.CanGrow {
				length = info.Length * c.growthMultiplier
			}
		}

		// Re-center items that reported different guide offsets so they
		// still align visually despite differing cross-axis lengths.
		cross := crossOrigin - info.AlignmentOffset + c.maxAlignmentOffset

		ch.item.Place(s.Axis.PointOf(cursor, cross), MakeProposal(s.Axis, length, proposedCross))
		cursor += length + s.Spacing
	}
}
