package stackfile

import (
	"fmt"

	"github.com/matzehuels/flexstack/pkg/box"
	"github.com/matzehuels/flexstack/pkg/flex"
)

// Placeable is a layout item that records the rectangle it was placed
// at, so renderers can read final geometry back after a layout pass.
type Placeable interface {
	flex.Item
	Placed() (flex.Rect, bool)
}

// Built pairs an item specification with its constructed layout item.
type Built struct {
	Spec ItemSpec
	Item Placeable
}

// Build constructs the stack container and concrete layout items for a
// document. Item IDs default to "item-<index>" when unset. Boxes that
// carry a relative fraction are built growable so they adopt the
// fractional length they are offered at placement time.
func Build(doc Document) (*flex.Stack, []Built, error) {
	stack := &flex.Stack{
		Axis:      doc.FlexAxis(),
		Spacing:   doc.Spacing,
		Alignment: doc.FlexAlignment(),
	}

	built := make([]Built, 0, len(doc.Items))
	for i, spec := range doc.Items {
		if spec.ID == "" {
			spec.ID = fmt.Sprintf("item-%d", i)
		}

		var item Placeable
		switch spec.Kind {
		case KindSpacer:
			item = &box.Spacer{ID: spec.ID}
		case KindText:
			item = &box.Text{ID: spec.ID, Content: spec.Text}
		default:
			item = &box.Box{
				ID:      spec.ID,
				Label:   spec.Label,
				Natural: flex.Size{Width: spec.Width, Height: spec.Height},
				Grow:    spec.Grow || spec.HasFraction(),
			}
		}
		built = append(built, Built{Spec: spec, Item: item})
	}

	return stack, built, nil
}

// Children wraps built items as flex children, attaching relative
// fractions where the document declares them.
func Children(built []Built) []flex.Child {
	children := make([]flex.Child, len(built))
	for i, b := range built {
		if b.Spec.HasFraction() {
			children[i] = flex.Relative(b.Spec.Fraction, b.Item)
		} else {
			children[i] = flex.Natural(b.Item)
		}
	}
	return children
}
