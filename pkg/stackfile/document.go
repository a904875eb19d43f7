package stackfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flexstack/pkg/errors"
	"github.com/matzehuels/flexstack/pkg/flex"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Axis names accepted in documents.
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// Alignment names accepted in documents.
const (
	AlignStart    = "start"
	AlignCenter   = "center"
	AlignEnd      = "end"
	AlignBaseline = "baseline"
)

// Item kinds accepted in documents.
const (
	KindBox    = "box"
	KindText   = "text"
	KindSpacer = "spacer"
)

// =============================================================================
// Document - Stack Description
// =============================================================================

// Document describes one stack container and its ordered items.
// It is the TOML input format of the flexstack CLI.
//
// A zero Width or Height leaves that axis unconstrained: the resolver
// derives the natural content size instead.
type Document struct {
	Axis      string     `toml:"axis"`
	Spacing   float64    `toml:"spacing"`
	Alignment string     `toml:"alignment"`
	Width     float64    `toml:"width"`
	Height    float64    `toml:"height"`
	Items     []ItemSpec `toml:"item"`
}

// ItemSpec describes a single layout item in document order.
type ItemSpec struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Kind  string `toml:"kind"`

	// Box fields. Width and Height are the natural size; Grow marks
	// the box as able to use extra main-axis space.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Grow   bool    `toml:"grow"`

	// Fraction attaches a relative-fraction annotation, claiming that
	// share of the container's total main-axis length. Zero means none.
	Fraction float64 `toml:"fraction"`

	// Text content for text items.
	Text string `toml:"text"`
}

// HasFraction reports whether the item carries a relative fraction.
func (s *ItemSpec) HasFraction() bool { return s.Fraction != 0 }

// DisplayLabel returns the label if set, otherwise the ID.
func (s *ItemSpec) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}

// =============================================================================
// Decoding
// =============================================================================

// DecodeDocument parses and validates a TOML stack document.
func DecodeDocument(data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if doc.Axis == "" {
		doc.Axis = AxisHorizontal
	}
	if doc.Alignment == "" {
		doc.Alignment = AlignStart
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ReadDocumentFile reads and validates a stack document from a file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeDocument(data)
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks document fields against the accepted vocabulary.
func (d *Document) Validate() error {
	if err := ValidateAxis(d.Axis); err != nil {
		return err
	}
	if err := ValidateAlignment(d.Alignment); err != nil {
		return err
	}
	if err := errors.ValidateSpacing(d.Spacing); err != nil {
		return err
	}
	for i := range d.Items {
		if err := d.Items[i].Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single item specification.
func (s *ItemSpec) Validate() error {
	switch s.Kind {
	case KindBox, KindSpacer:
	case KindText:
		if s.Text == "" {
			return errors.New(errors.ErrCodeInvalidItem, "text item requires text")
		}
	case "":
		return errors.New(errors.ErrCodeInvalidItem, "item kind is required")
	default:
		return errors.New(errors.ErrCodeInvalidItem,
			"invalid kind: %q (must be one of: box, text, spacer)", s.Kind)
	}

	if s.ID != "" {
		if err := errors.ValidateItemID(s.ID); err != nil {
			return err
		}
	}
	if s.HasFraction() {
		if s.Kind == KindSpacer {
			return errors.New(errors.ErrCodeInvalidFraction, "spacer cannot carry a fraction")
		}
		if err := errors.ValidateFraction(s.Fraction); err != nil {
			return err
		}
	}
	if s.Width < 0 || s.Height < 0 {
		return errors.New(errors.ErrCodeInvalidItem, "item size must be non-negative")
	}
	return nil
}

// ValidateAxis checks that an axis name is valid.
func ValidateAxis(axis string) error {
	switch axis {
	case AxisHorizontal, AxisVertical:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidAxis,
		"invalid axis: %q (must be one of: horizontal, vertical)", axis)
}

// ValidateAlignment checks that an alignment name is valid.
func ValidateAlignment(alignment string) error {
	switch alignment {
	case AlignStart, AlignCenter, AlignEnd, AlignBaseline:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidAlignment,
		"invalid alignment: %q (must be one of: start, center, end, baseline)", alignment)
}

// =============================================================================
// Conversions
// =============================================================================

// FlexAxis returns the document's axis as a flex.Axis.
func (d *Document) FlexAxis() flex.Axis {
	if d.Axis == AxisVertical {
		return flex.Vertical
	}
	return flex.Horizontal
}

// FlexAlignment returns the document's alignment as a flex.Alignment.
func (d *Document) FlexAlignment() flex.Alignment {
	switch d.Alignment {
	case AlignCenter:
		return flex.AlignCenter
	case AlignEnd:
		return flex.AlignEnd
	case AlignBaseline:
		return flex.AlignBaseline
	default:
		return flex.AlignStart
	}
}

// Proposal returns the size proposal encoded by the document. A zero
// width or height maps to an unconstrained axis.
func (d *Document) Proposal() flex.Proposal {
	p := flex.Proposal{Width: flex.Unspecified, Height: flex.Unspecified}
	if d.Width > 0 {
		p.Width = d.Width
	}
	if d.Height > 0 {
		p.Height = d.Height
	}
	return p
}
