package pipeline

import (
	"testing"

	"github.com/matzehuels/flexstack/pkg/stackfile"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"ascii", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"outline", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForParse(t *testing.T) {
	// Missing stackfile and source
	opts := Options{}
	if err := opts.ValidateForParse(); err == nil {
		t.Error("Missing stackfile/source should fail")
	}

	// Valid with path
	opts = Options{Stackfile: "stack.toml"}
	if err := opts.ValidateForParse(); err != nil {
		t.Errorf("Valid path options should pass: %v", err)
	}

	// Valid with inline source
	opts = Options{Source: []byte(`[[item]]`)}
	if err := opts.ValidateForParse(); err != nil {
		t.Errorf("Valid source options should pass: %v", err)
	}
}

func TestOptionsValidateForResolve(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"empty overrides", Options{}, false},
		{"valid axis", Options{Axis: "vertical"}, false},
		{"invalid axis", Options{Axis: "diagonal"}, true},
		{"valid alignment", Options{Alignment: "center"}, false},
		{"invalid alignment", Options{Alignment: "middle"}, true},
		{"negative spacing", Options{Spacing: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForResolve()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateForResolve() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{
		Stackfile: "stack.toml",
	}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalStyle := opts.Style
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Style != originalStyle {
		t.Error("Style changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %f, got %f", DefaultScale, opts.Scale)
	}
}

func TestOptionsApplyTo(t *testing.T) {
	doc := stackfile.Document{
		Axis:      stackfile.AxisHorizontal,
		Alignment: stackfile.AlignStart,
		Width:     300,
	}

	opts := Options{Axis: "vertical", Height: 200, Spacing: 4}
	opts.ApplyTo(&doc)

	if doc.Axis != stackfile.AxisVertical {
		t.Errorf("Axis override not applied: %s", doc.Axis)
	}
	if doc.Width != 300 {
		t.Errorf("Unset override should not change Width: %f", doc.Width)
	}
	if doc.Height != 200 {
		t.Errorf("Height override not applied: %f", doc.Height)
	}
	if doc.Spacing != 4 {
		t.Errorf("Spacing override not applied: %f", doc.Spacing)
	}
	if doc.Alignment != stackfile.AlignStart {
		t.Errorf("Unset override should not change Alignment: %s", doc.Alignment)
	}
}

func TestLayoutKeyOptsReflectsDocument(t *testing.T) {
	doc := stackfile.Document{
		Axis:      stackfile.AxisVertical,
		Width:     100,
		Height:    400,
		Spacing:   8,
		Alignment: stackfile.AlignCenter,
	}

	ko := LayoutKeyOpts(doc)
	if ko.Axis != doc.Axis || ko.Width != doc.Width || ko.Height != doc.Height ||
		ko.Spacing != doc.Spacing || ko.Alignment != doc.Alignment {
		t.Errorf("LayoutKeyOpts mismatch: %+v", ko)
	}
}
