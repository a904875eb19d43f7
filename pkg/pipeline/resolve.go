package pipeline

import (
	"github.com/matzehuels/flexstack/pkg/flex"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// Resolution holds the full resolver state for one document: the
// configured stack, the built items, the populated measurement cache,
// and the serializable layout derived from them.
//
// Most callers only need the Layout; inspection tooling uses the Cache
// to show per-item classifications, fills, and multipliers.
type Resolution struct {
	Stack  *flex.Stack
	Built  []stackfile.Built
	Cache  *flex.Cache
	Layout stackfile.Layout
}

// Resolve runs the two-pass measure/place protocol for a document and
// returns the complete resolver state.
//
// The document's own width/height form the size proposal: a zero value
// leaves that axis unconstrained and the stack adopts its natural
// extent. When the items cannot fit the proposal, the stack takes its
// minimum feasible size instead and the layout is marked as overflowed.
func Resolve(doc stackfile.Document) (Resolution, error) {
	stack, built, err := stackfile.Build(doc)
	if err != nil {
		return Resolution{}, err
	}

	children := stackfile.Children(built)
	c := stack.MakeCache()
	p := doc.Proposal()

	size := stack.Measure(children, p, c)
	stack.Place(children, flex.Rect{Size: size}, p, c)

	return Resolution{
		Stack:  stack,
		Built:  built,
		Cache:  c,
		Layout: stackfile.LayoutFrom(doc, size, c, built),
	}, nil
}
