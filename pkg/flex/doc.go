// Package flex resolves one-dimensional stack layouts.
//
// A Stack arranges items along a single main axis (horizontal for rows,
// vertical for columns) and reconciles three competing sizing rules:
//
//   - Relative items claim an explicit fraction of the container's
//     main-axis length.
//   - Spacers are pure filler: they have no intrinsic size and split
//     whatever space is left over equally among themselves.
//   - Regular items start at their natural length and, when no spacers
//     are present, grow (or shrink) by a shared multiplier to absorb
//     the remaining space — unless measurement proves they cannot grow.
//
// # Protocol
//
// Layout happens in two phases. Measure classifies every item, computes
// the container's resolved size and the distribution coefficients, and
// stores them in a per-container Cache. Place walks the items in input
// order, assigning each a final position and length from the cached
// rules. Place validates the cache against its bounds and transparently
// re-measures when the host skipped a matching measurement, bounded to
// a single extra pass.
//
//	s := &flex.Stack{Axis: flex.Horizontal, Spacing: 1}
//	cache := s.MakeCache()
//	size := s.Measure(children, flex.Proposal{Width: 300, Height: 40}, cache)
//	s.Place(children, flex.Rect{Size: size}, flex.Proposal{Width: 300, Height: 40}, cache)
//
// # Degraded outcomes
//
// There is no error channel: every conflict resolves to defined
// geometry. When relative fractions and fixed content meet or exceed
// the proposal, the resolved size grows past it to the minimum feasible
// size instead of clipping. No item is ever assigned a negative length.
package flex
