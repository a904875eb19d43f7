package pipeline

import (
	"fmt"

	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// Parse reads the stackfile document and applies the resolve overrides
// from opts. The returned document is the effective input to the
// resolver: its axis, sizes, spacing, and alignment reflect any CLI or
// request overrides.
func Parse(opts Options) (stackfile.Document, error) {
	if err := opts.ValidateForParse(); err != nil {
		return stackfile.Document{}, err
	}
	if err := opts.ValidateForResolve(); err != nil {
		return stackfile.Document{}, err
	}

	var (
		doc stackfile.Document
		err error
	)
	if len(opts.Source) > 0 {
		doc, err = stackfile.DecodeDocument(opts.Source)
	} else {
		doc, err = stackfile.ReadDocumentFile(opts.Stackfile)
	}
	if err != nil {
		return stackfile.Document{}, err
	}

	opts.ApplyTo(&doc)

	// Overrides can reintroduce invalid values, so validate again.
	if err := doc.Validate(); err != nil {
		return stackfile.Document{}, fmt.Errorf("after overrides: %w", err)
	}

	return doc, nil
}
