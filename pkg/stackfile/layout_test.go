package stackfile

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/flexstack/pkg/flex"
)

// resolveDoc runs the full build → measure → place path and returns
// the assembled layout, mirroring what the pipeline does.
func resolveDoc(t *testing.T, doc Document) Layout {
	t.Helper()
	stack, built, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	children := Children(built)
	cache := stack.MakeCache()
	p := doc.Proposal()
	size := stack.Measure(children, p, cache)
	stack.Place(children, flex.Rect{Size: size}, p, cache)
	return LayoutFrom(doc, size, cache, built)
}

func TestBuildItemKinds(t *testing.T) {
	doc := Document{
		Axis: AxisHorizontal,
		Items: []ItemSpec{
			{Kind: KindBox, Width: 40, Height: 20},
			{Kind: KindSpacer},
			{ID: "label", Kind: KindText, Text: "hi"},
		},
	}
	_, built, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(built) != 3 {
		t.Fatalf("built = %d items, want 3", len(built))
	}
	// Unset IDs default by position.
	if built[0].Spec.ID != "item-0" {
		t.Errorf("item 0 id = %q, want item-0", built[0].Spec.ID)
	}
	if built[2].Spec.ID != "label" {
		t.Errorf("item 2 id = %q, want label", built[2].Spec.ID)
	}
}

func TestChildrenAttachFractions(t *testing.T) {
	doc := Document{
		Axis: AxisHorizontal,
		Items: []ItemSpec{
			{ID: "rel", Kind: KindBox, Fraction: 0.5},
			{ID: "nat", Kind: KindBox, Width: 40},
		},
	}
	_, built, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	children := Children(built)

	if f, ok := children[0].Fraction(); !ok || f != 0.5 {
		t.Errorf("child 0 fraction = %v,%v, want 0.5,true", f, ok)
	}
	if _, ok := children[1].Fraction(); ok {
		t.Error("child 1 should have no fraction")
	}
}

func TestLayoutFromSpacerDocument(t *testing.T) {
	doc := Document{
		Axis:  AxisHorizontal,
		Width: 300, Height: 40,
		Items: []ItemSpec{
			{ID: "a", Kind: KindBox, Width: 40, Height: 20},
			{ID: "gap", Kind: KindSpacer},
			{ID: "b", Kind: KindBox, Width: 100, Height: 20},
		},
	}
	l := resolveDoc(t, doc)

	if l.Width != 300 {
		t.Errorf("width = %v, want 300", l.Width)
	}
	if l.Overflow {
		t.Error("layout should not overflow")
	}
	if len(l.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(l.Items))
	}

	gap := l.Items[1]
	if gap.Class != "spacer" {
		t.Errorf("gap class = %q, want spacer", gap.Class)
	}
	if gap.X != 40 || gap.Width != 160 {
		t.Errorf("gap = x=%v w=%v, want x=40 w=160", gap.X, gap.Width)
	}
	if l.Items[2].X != 200 {
		t.Errorf("b x = %v, want 200", l.Items[2].X)
	}
}

func TestLayoutFromFractionAndGrowth(t *testing.T) {
	doc := Document{
		Axis:  AxisHorizontal,
		Width: 300, Height: 40,
		Items: []ItemSpec{
			{ID: "rel", Kind: KindBox, Height: 20, Fraction: 0.5},
			{ID: "grow", Kind: KindBox, Width: 40, Height: 20, Grow: true},
		},
	}
	l := resolveDoc(t, doc)

	rel := l.Items[0]
	if rel.Class != "relative" || rel.Fraction != 0.5 {
		t.Errorf("rel = class=%q fraction=%v, want relative 0.5", rel.Class, rel.Fraction)
	}
	if rel.Width != 150 {
		t.Errorf("rel width = %v, want 150", rel.Width)
	}

	grown := l.Items[1]
	if !grown.Grown {
		t.Error("grow item should be marked grown")
	}
	if grown.Width != 150 {
		t.Errorf("grow width = %v, want 150", grown.Width)
	}
	if rel.Width+grown.Width != l.Width {
		t.Errorf("item widths sum to %v, want %v", rel.Width+grown.Width, l.Width)
	}
}

func TestLayoutFromOverflow(t *testing.T) {
	doc := Document{
		Axis:  AxisHorizontal,
		Width: 100, Height: 40,
		Items: []ItemSpec{
			{ID: "a", Kind: KindBox, Width: 80, Height: 20},
			{ID: "b", Kind: KindBox, Width: 90, Height: 20},
		},
	}
	l := resolveDoc(t, doc)

	if !l.Overflow {
		t.Error("layout should be marked overflow")
	}
	if l.Width != 170 {
		t.Errorf("width = %v, want 170", l.Width)
	}
	// Natural lengths survive the minimum-feasible path untouched.
	if l.Items[0].Width != 80 || l.Items[1].Width != 90 {
		t.Errorf("widths = %v, %v, want 80, 90", l.Items[0].Width, l.Items[1].Width)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	doc := Document{
		Axis:    AxisVertical,
		Spacing: 4,
		Width:   200, Height: 400,
		Items: []ItemSpec{
			{ID: "top", Kind: KindBox, Width: 200, Height: 60},
			{ID: "fill", Kind: KindSpacer},
			{ID: "bottom", Kind: KindBox, Width: 200, Height: 40},
		},
	}
	l := resolveDoc(t, doc)

	path := filepath.Join(t.TempDir(), "stack.layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile() error = %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error = %v", err)
	}

	if got.Axis != l.Axis || got.Width != l.Width || got.Height != l.Height {
		t.Errorf("container mismatch: got %+v", got)
	}
	if len(got.Items) != len(l.Items) {
		t.Fatalf("items = %d, want %d", len(got.Items), len(l.Items))
	}
	for i := range l.Items {
		if got.Items[i] != l.Items[i] {
			t.Errorf("item %d = %+v, want %+v", i, got.Items[i], l.Items[i])
		}
	}
}

func TestUnmarshalLayoutValidation(t *testing.T) {
	if _, err := UnmarshalLayout([]byte(`{"axis":"diagonal","items":[]}`)); err == nil {
		t.Error("expected error for invalid axis")
	}
	l, err := UnmarshalLayout([]byte(`{"width":100,"height":20,"items":[]}`))
	if err != nil {
		t.Fatalf("UnmarshalLayout() error = %v", err)
	}
	if l.Axis != AxisHorizontal {
		t.Errorf("axis = %q, want horizontal default", l.Axis)
	}
}
