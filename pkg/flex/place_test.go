package flex_test

import (
	"sort"
	"testing"

	"github.com/matzehuels/flexstack/pkg/box"
	"github.com/matzehuels/flexstack/pkg/flex"
)

func mustPlaced(t *testing.T, b *box.Box) flex.Rect {
	t.Helper()
	r, ok := b.Placed()
	if !ok {
		t.Fatalf("box %s was never placed", b.ID)
	}
	return r
}

func TestPlaceSequentialOrder(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal, Spacing: 10}
	a := fixedBox("a", 40, 20)
	gap := &box.Spacer{ID: "gap"}
	b := fixedBox("b", 100, 20)
	children := []flex.Child{flex.Natural(a), flex.Natural(gap), flex.Natural(b)}
	c := s.MakeCache()

	p := flex.Proposal{Width: 300, Height: flex.Unspecified}
	size := s.Measure(children, p, c)
	s.Place(children, flex.Rect{Size: size}, p, c)

	ra := mustPlaced(t, a)
	rb := mustPlaced(t, b)
	rg, ok := gap.Placed()
	if !ok {
		t.Fatal("spacer was never placed")
	}

	if !approx(ra.Min.X, 0) || !approx(ra.Size.Width, 40) {
		t.Errorf("a = %+v, want x=0 w=40", ra)
	}
	if !approx(rg.Min.X, 50) || !approx(rg.Size.Width, 140) {
		t.Errorf("gap = %+v, want x=50 w=140", rg)
	}
	if !approx(rb.Min.X, 200) || !approx(rb.Size.Width, 100) {
		t.Errorf("b = %+v, want x=200 w=100", rb)
	}
	// The last item's trailing edge meets the proposal exactly.
	if !approx(rb.Min.X+rb.Size.Width, 300) {
		t.Errorf("trailing edge = %v, want 300", rb.Min.X+rb.Size.Width)
	}
}

func TestPlaceGrownLengths(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal}
	a := growBox("a", 40, 10)
	b := growBox("b", 60, 10)
	children := []flex.Child{flex.Natural(a), flex.Natural(b)}
	c := s.MakeCache()

	p := flex.Proposal{Width: 200, Height: flex.Unspecified}
	size := s.Measure(children, p, c)
	s.Place(children, flex.Rect{Size: size}, p, c)

	ra := mustPlaced(t, a)
	rb := mustPlaced(t, b)
	if !approx(ra.Size.Width, 80) {
		t.Errorf("a width = %v, want 80", ra.Size.Width)
	}
	if !approx(rb.Size.Width, 120) {
		t.Errorf("b width = %v, want 120", rb.Size.Width)
	}
	if !approx(rb.Min.X, 80) {
		t.Errorf("b x = %v, want 80", rb.Min.X)
	}
	if !approx(ra.Size.Width+rb.Size.Width, 200) {
		t.Errorf("total = %v, want 200", ra.Size.Width+rb.Size.Width)
	}
}

func TestPlaceStaleCacheRemeasures(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal}
	a := fixedBox("a", 40, 10)
	gap := &box.Spacer{}
	children := []flex.Child{flex.Natural(a), flex.Natural(gap)}
	c := s.MakeCache()

	p := flex.Proposal{Width: 300, Height: flex.Unspecified}
	s.Measure(children, p, c)

	// Place against bounds the cache was not measured for: one
	// synchronous re-measure against the new bounds.
	s.Place(children, flex.Rect{Size: flex.Size{Width: 400, Height: 10}}, p, c)

	if !approx(c.ResolvedMainLength(), 400) {
		t.Errorf("resolved main = %v, want 400", c.ResolvedMainLength())
	}
	rg, _ := gap.Placed()
	if !approx(rg.Size.Width, 360) {
		t.Errorf("spacer width = %v, want 360", rg.Size.Width)
	}
}

func TestPlaceUnmeasuredCache(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal}
	a := fixedBox("a", 40, 10)
	b := fixedBox("b", 60, 10)
	children := []flex.Child{flex.Natural(a), flex.Natural(b)}
	c := s.MakeCache()

	// No prior Measure call at all; Place fills the cache itself.
	s.Place(children, flex.Rect{Size: flex.Size{Width: 100, Height: 10}},
		flex.Proposal{Width: 100, Height: flex.Unspecified}, c)

	ra := mustPlaced(t, a)
	rb := mustPlaced(t, b)
	if !approx(ra.Min.X, 0) || !approx(rb.Min.X, 40) {
		t.Errorf("positions = %v, %v, want 0, 40", ra.Min.X, rb.Min.X)
	}
}

func TestPlaceOverflowKeepsNaturalLengths(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal}
	a := fixedBox("a", 80, 10)
	b := fixedBox("b", 90, 10)
	children := []flex.Child{flex.Natural(a), flex.Natural(b)}
	c := s.MakeCache()

	p := flex.Proposal{Width: 100, Height: flex.Unspecified}
	size := s.Measure(children, p, c)
	s.Place(children, flex.Rect{Size: size}, p, c)

	ra := mustPlaced(t, a)
	rb := mustPlaced(t, b)
	if !approx(ra.Size.Width, 80) || !approx(rb.Size.Width, 90) {
		t.Errorf("widths = %v, %v, want 80, 90", ra.Size.Width, rb.Size.Width)
	}
	if !approx(rb.Min.X, 80) {
		t.Errorf("b x = %v, want 80", rb.Min.X)
	}
}

func TestPlaceCenterAlignment(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal, Alignment: flex.AlignCenter}
	short := fixedBox("short", 30, 20)
	tall := fixedBox("tall", 30, 40)
	children := []flex.Child{flex.Natural(short), flex.Natural(tall)}
	c := s.MakeCache()

	p := flex.Proposal{Width: flex.Unspecified, Height: flex.Unspecified}
	size := s.Measure(children, p, c)
	s.Place(children, flex.Rect{Size: size}, p, c)

	rs := mustPlaced(t, short)
	rt := mustPlaced(t, tall)
	// Midpoints coincide: the short item shifts down by half the height
	// difference.
	if !approx(rs.Min.Y, 10) {
		t.Errorf("short y = %v, want 10", rs.Min.Y)
	}
	if !approx(rt.Min.Y, 0) {
		t.Errorf("tall y = %v, want 0", rt.Min.Y)
	}
}

func TestPlaceOffsetBounds(t *testing.T) {
	s := &flex.Stack{Axis: flex.Horizontal, Spacing: 5}
	a := fixedBox("a", 40, 10)
	b := fixedBox("b", 60, 10)
	children := []flex.Child{flex.Natural(a), flex.Natural(b)}
	c := s.MakeCache()

	p := flex.Proposal{Width: flex.Unspecified, Height: flex.Unspecified}
	size := s.Measure(children, p, c)
	s.Place(children, flex.Rect{Min: flex.Point{X: 100, Y: 50}, Size: size}, p, c)

	ra := mustPlaced(t, a)
	rb := mustPlaced(t, b)
	if !approx(ra.Min.X, 100) || !approx(ra.Min.Y, 50) {
		t.Errorf("a min = %+v, want (100,50)", ra.Min)
	}
	if !approx(rb.Min.X, 145) {
		t.Errorf("b x = %v, want 145", rb.Min.X)
	}
}

func TestPlaceVerticalStack(t *testing.T) {
	s := &flex.Stack{Axis: flex.Vertical, Spacing: 4}
	a := fixedBox("a", 20, 30)
	gap := &box.Spacer{}
	b := fixedBox("b", 20, 50)
	children := []flex.Child{flex.Natural(a), flex.Natural(gap), flex.Natural(b)}
	c := s.MakeCache()

	p := flex.Proposal{Width: flex.Unspecified, Height: 200}
	size := s.Measure(children, p, c)
	s.Place(children, flex.Rect{Size: size}, p, c)

	ra := mustPlaced(t, a)
	rb := mustPlaced(t, b)
	// 200 minus 8 spacing minus 80 content leaves 112 for the spacer.
	if !approx(c.SpacerFill(), 112) {
		t.Fatalf("spacer fill = %v, want 112", c.SpacerFill())
	}
	if !approx(ra.Min.Y, 0) {
		t.Errorf("a y = %v, want 0", ra.Min.Y)
	}
	if !approx(rb.Min.Y, 150) {
		t.Errorf("b y = %v, want 150", rb.Min.Y)
	}
	if !approx(rb.Min.Y+rb.Size.Height, 200) {
		t.Errorf("trailing edge = %v, want 200", rb.Min.Y+rb.Size.Height)
	}
}

func TestPlacePermutedOrder(t *testing.T) {
	// Permuting the children changes positions, never lengths: the
	// same set of final widths comes out, and each cursor advances by
	// the preceding item's length plus spacing.
	build := func(order []int) ([]flex.Child, []*box.Box) {
		pool := []*box.Box{
			fixedBox("rel", 20, 10),
			growBox("g1", 30, 10),
			growBox("g2", 50, 10),
		}
		wrap := []flex.Child{
			flex.Relative(0.25, pool[0]),
			flex.Natural(pool[1]),
			flex.Natural(pool[2]),
		}
		children := make([]flex.Child, len(order))
		boxes := make([]*box.Box, len(order))
		for i, j := range order {
			children[i] = wrap[j]
			boxes[i] = pool[j]
		}
		return children, boxes
	}

	place := func(order []int) []flex.Rect {
		s := &flex.Stack{Axis: flex.Horizontal, Spacing: 5}
		children, boxes := build(order)
		c := s.MakeCache()
		p := flex.Proposal{Width: 200, Height: flex.Unspecified}
		size := s.Measure(children, p, c)
		s.Place(children, flex.Rect{Size: size}, p, c)
		rects := make([]flex.Rect, len(boxes))
		for i, b := range boxes {
			rects[i] = mustPlaced(t, b)
		}
		return rects
	}

	forward := place([]int{0, 1, 2})
	reversed := place([]int{2, 1, 0})

	widths := func(rects []flex.Rect) []float64 {
		out := make([]float64, len(rects))
		for i, r := range rects {
			out[i] = r.Size.Width
		}
		sort.Float64s(out)
		return out
	}
	fw, rw := widths(forward), widths(reversed)
	for i := range fw {
		if !approx(fw[i], rw[i]) {
			t.Errorf("length set diverged at %d: %v vs %v", i, fw[i], rw[i])
		}
	}

	for _, rects := range [][]flex.Rect{forward, reversed} {
		cursor := 0.0
		for i, r := range rects {
			if !approx(r.Min.X, cursor) {
				t.Errorf("item %d at x=%v, want %v", i, r.Min.X, cursor)
			}
			cursor += r.Size.Width + 5
		}
	}
}
