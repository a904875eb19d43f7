package stackfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/flexstack/pkg/flex"
)

// =============================================================================
// Layout - Resolved Stack Serialization
// =============================================================================

// Layout is the serialization format for a resolved stack: the
// container's resolved size plus one placed rectangle per item, in
// document order. It is designed for round-trip fidelity:
// resolve → export → re-import produces identical geometry.
type Layout struct {
	Axis      string  `json:"axis" bson:"axis"`
	Spacing   float64 `json:"spacing,omitempty" bson:"spacing,omitempty"`
	Alignment string  `json:"alignment,omitempty" bson:"alignment,omitempty"`

	// Width and Height are the resolved container size.
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Overflow marks layouts whose resolved main-axis length exceeded
	// the proposed one (the minimum-feasible path was taken).
	Overflow bool `json:"overflow,omitempty" bson:"overflow,omitempty"`

	Items []PlacedItem `json:"items" bson:"items"`
}

// PlacedItem is a single positioned item in a resolved layout.
type PlacedItem struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`

	// Kind is the document item kind (box, text, spacer).
	Kind string `json:"kind" bson:"kind"`

	// Class is the sizing classification the resolver derived
	// (regular, spacer, relative).
	Class string `json:"class" bson:"class"`

	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Fraction is the clamped relative fraction, when one applied.
	Fraction float64 `json:"fraction,omitempty" bson:"fraction,omitempty"`

	// Grown marks regular items scaled by the growth multiplier.
	Grown bool `json:"grown,omitempty" bson:"grown,omitempty"`

	// Text carries the content of text items for renderers.
	Text string `json:"text,omitempty" bson:"text,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (p *PlacedItem) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.ID
}

// =============================================================================
// Layout Construction
// =============================================================================

// LayoutFrom assembles a resolved layout from the document, the
// resolved container size, the populated cache, and the placed items.
// The cache must come from the measurement that placed the items.
func LayoutFrom(doc Document, size flex.Size, cache *flex.Cache, built []Built) Layout {
	axis := doc.FlexAxis()
	proposedMain := doc.Proposal().Main(axis)

	l := Layout{
		Axis:      doc.Axis,
		Spacing:   doc.Spacing,
		Alignment: doc.Alignment,
		Width:     size.Width,
		Height:    size.Height,
		Overflow:  flex.Specified(proposedMain) && axis.MainOf(size) > proposedMain,
		Items:     make([]PlacedItem, 0, len(built)),
	}

	for i, b := range built {
		rect, ok := b.Item.Placed()
		if !ok {
			continue
		}
		info := cache.Info(i)
		p := PlacedItem{
			ID:     b.Spec.ID,
			Label:  b.Spec.Label,
			Kind:   b.Spec.Kind,
			Class:  info.Class.String(),
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Size.Width,
			Height: rect.Size.Height,
			Text:   b.Spec.Text,
		}
		if p.ID == "" {
			p.ID = fmt.Sprintf("item-%d", i)
		}
		if info.Class == flex.ClassRelative {
			p.Fraction = info.Fraction
		}
		if info.Class == flex.ClassRegular && info.CanGrow && cache.GrowthMultiplier() != 1 {
			p.Grown = true
		}
		l.Items = append(l.Items, p)
	}

	return l
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Axis == "" {
		l.Axis = AxisHorizontal
	}
	if err := ValidateAxis(l.Axis); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
