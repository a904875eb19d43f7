package flex

import "math"

// =============================================================================
// Sizes and Positions
// =============================================================================

// Size is a width/height pair in user units.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in user units.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle anchored at Min.
type Rect struct {
	Min  Point
	Size Size
}

// =============================================================================
// Proposals
// =============================================================================

// Sentinel lengths for size proposals.
const (
	// Unspecified asks an item for its natural length on that axis.
	Unspecified = -1.0

	// Infinite probes the maximum length an item can make use of.
	Infinite = math.MaxFloat64
)

// Proposal is a size offered to an item or a stack. Either axis may be
// Unspecified or Infinite; a concrete value constrains the item on that
// axis.
type Proposal struct {
	Width  float64
	Height float64
}

// Main returns the proposal's length along the main axis of a.
func (p Proposal) Main(a Axis) float64 {
	if a == Horizontal {
		return p.Width
	}
	return p.Height
}

// Cross returns the proposal's length across the main axis of a.
func (p Proposal) Cross(a Axis) float64 {
	if a == Horizontal {
		return p.Height
	}
	return p.Width
}

// MakeProposal builds a proposal from main- and cross-axis lengths.
func MakeProposal(a Axis, main, cross float64) Proposal {
	if a == Horizontal {
		return Proposal{Width: main, Height: cross}
	}
	return Proposal{Width: cross, Height: main}
}

// Specified reports whether v is a concrete length rather than one of
// the proposal sentinels.
func Specified(v float64) bool {
	return v >= 0 && v != Infinite
}
