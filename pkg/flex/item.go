package flex

// =============================================================================
// Item - External Layout Participant
// =============================================================================

// Item is a single participant in a stack layout. The resolver never
// mutates an item: it queries dimensions under size proposals during
// measurement and later instructs the item to take its final position.
type Item interface {
	// Measure returns the item's dimensions under the given proposal.
	// An Unspecified axis asks for the natural length; Infinite asks
	// for the maximum length the item can use.
	Measure(p Proposal) Dimensions

	// Place finalizes the item at origin with p as its size constraint.
	Place(origin Point, p Proposal)
}

// Dimensions reports an item's measured size and, for items with
// baseline content, the distance from the top edge to the first
// baseline.
type Dimensions struct {
	Size     Size
	Baseline float64
}

// =============================================================================
// Alignment - Cross-Axis Guide
// =============================================================================

// Alignment identifies the cross-axis guide items are aligned on.
type Alignment uint8

const (
	// AlignStart aligns items on the leading cross-axis edge.
	AlignStart Alignment = iota
	// AlignCenter aligns items on their cross-axis midpoints.
	AlignCenter
	// AlignEnd aligns items on the trailing cross-axis edge.
	AlignEnd
	// AlignBaseline aligns items on their first text baseline.
	// Only meaningful for horizontal stacks; vertical stacks treat it
	// as AlignStart.
	AlignBaseline
)

// String returns the configuration name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignBaseline:
		return "baseline"
	default:
		return "start"
	}
}

// =============================================================================
// Child - Item With Layout Role
// =============================================================================

// Child pairs an item with its sizing role in the stack. The relative
// fraction is resolved by the host before layout runs; the resolver
// treats it as a plain optional field.
type Child struct {
	item     Item
	relative bool
	fraction float64
}

// Natural returns a child laid out at its measured size. It may grow
// to absorb leftover space when measurement shows it can.
func Natural(item Item) Child {
	return Child{item: item}
}

// Relative returns a child sized to a fraction of the container's
// total main-axis length. The fraction is intended to lie in (0,1);
// values above 1 are clamped to 1 during measurement.
func Relative(fraction float64, item Item) Child {
	return Child{item: item, relative: true, fraction: fraction}
}

// Item returns the wrapped layout item.
func (c Child) Item() Item { return c.item }

// Fraction returns the relative fraction and whether one is attached.
func (c Child) Fraction() (float64, bool) {
	return c.fraction, c.relative
}
