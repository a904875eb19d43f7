package flex

// Stack lays out items along a single main axis with uniform spacing,
// aligning them on a cross-axis guide. The zero value is a horizontal
// stack with no spacing and leading alignment.
//
// A Stack holds configuration only; all mutable layout state lives in
// the Cache created by MakeCache. The host is responsible for
// serializing Measure and Place calls per container.
type Stack struct {
	// Axis is the main axis, Horizontal or Vertical.
	Axis Axis
	// Spacing is the gap inserted between adjacent items. Non-negative.
	Spacing float64
	// Alignment is the cross-axis guide.
	Alignment Alignment
}

// MakeCache returns an empty layout cache for a container using this
// stack. Exactly one cache is created per container instance and
// passed to every Measure and Place call for it.
func (s *Stack) MakeCache() *Cache {
	return &Cache{growthMultiplier: 1}
}

// guideOffset returns the cross-axis guide offset within measured
// dimensions, per the stack's alignment.
func (s *Stack) guideOffset(d Dimensions) float64 {
	switch s.Alignment {
	case AlignCenter:
		return s.Axis.CrossOf(d.Size) / 2
	case AlignEnd:
		return s.Axis.CrossOf(d.Size)
	case AlignBaseline:
		if s.Axis == Horizontal {
			return d.Baseline
		}
		return 0
	default:
		return 0
	}
}
