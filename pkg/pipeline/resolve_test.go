package pipeline

import (
	"testing"

	"github.com/matzehuels/flexstack/pkg/flex"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

const spacerDoc = `
axis = "horizontal"
width = 300
height = 60

[[item]]
id = "a"
kind = "box"
width = 40
height = 60

[[item]]
id = "gap"
kind = "spacer"

[[item]]
id = "b"
kind = "box"
width = 100
height = 60
`

const fractionDoc = `
axis = "horizontal"
width = 300
height = 60

[[item]]
id = "half"
kind = "box"
fraction = 0.5
height = 60

[[item]]
id = "rest"
kind = "box"
width = 40
height = 60
grow = true
`

func TestResolveSpacerAbsorbsLeftover(t *testing.T) {
	doc, err := stackfile.DecodeDocument([]byte(spacerDoc))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}

	res, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if res.Layout.Width != 300 {
		t.Errorf("Width = %v, want 300", res.Layout.Width)
	}
	if res.Layout.Overflow {
		t.Error("layout should not overflow")
	}
	if got := res.Cache.SpacerFill(); got != 160 {
		t.Errorf("SpacerFill = %v, want 160", got)
	}

	items := res.Layout.Items
	if len(items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(items))
	}
	if items[0].X != 0 || items[0].Width != 40 {
		t.Errorf("item a = (%v, w%v), want (0, w40)", items[0].X, items[0].Width)
	}
	if items[1].X != 40 || items[1].Width != 160 {
		t.Errorf("spacer = (%v, w%v), want (40, w160)", items[1].X, items[1].Width)
	}
	if items[2].X != 200 || items[2].Width != 100 {
		t.Errorf("item b = (%v, w%v), want (200, w100)", items[2].X, items[2].Width)
	}
}

func TestResolveFractionAndGrowth(t *testing.T) {
	doc, err := stackfile.DecodeDocument([]byte(fractionDoc))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}

	res, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	items := res.Layout.Items
	if len(items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(items))
	}

	// The fractional item takes half the container; the growable item
	// absorbs everything that remains.
	if items[0].Width != 150 {
		t.Errorf("fractional width = %v, want 150", items[0].Width)
	}
	if items[0].Class != flex.ClassRelative.String() {
		t.Errorf("fractional class = %q, want relative", items[0].Class)
	}
	if items[1].Width != 150 {
		t.Errorf("grown width = %v, want 150", items[1].Width)
	}
	if !items[1].Grown {
		t.Error("growable item should be marked grown")
	}

	// Lengths sum to the container size.
	var total float64
	for _, it := range items {
		total += it.Width
	}
	if total != res.Layout.Width {
		t.Errorf("item widths sum to %v, want %v", total, res.Layout.Width)
	}
}

func TestResolveOverflowTakesMinimumFeasibleSize(t *testing.T) {
	doc, err := stackfile.DecodeDocument([]byte(`
axis = "horizontal"
width = 100

[[item]]
kind = "box"
width = 80

[[item]]
kind = "box"
width = 90
`))
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}

	res, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !res.Layout.Overflow {
		t.Error("layout should be marked overflowed")
	}
	if res.Layout.Width != 170 {
		t.Errorf("Width = %v, want minimum feasible 170", res.Layout.Width)
	}
}
