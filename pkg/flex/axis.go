package flex

// Axis selects the main direction of a stack.
type Axis uint8

const (
	// Horizontal arranges items left to right (a row).
	Horizontal Axis = iota
	// Vertical arranges items top to bottom (a column).
	Vertical
)

// MainOf returns the extent of s along the main axis.
func (a Axis) MainOf(s Size) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// CrossOf returns the extent of s across the main axis.
func (a Axis) CrossOf(s Size) float64 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Pack builds a size from main- and cross-axis extents.
func (a Axis) Pack(main, cross float64) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// MainCoord returns the coordinate of p along the main axis.
func (a Axis) MainCoord(p Point) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// CrossCoord returns the coordinate of p across the main axis.
func (a Axis) CrossCoord(p Point) float64 {
	if a == Horizontal {
		return p.Y
	}
	return p.X
}

// PointOf builds a point from main- and cross-axis coordinates.
func (a Axis) PointOf(main, cross float64) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
