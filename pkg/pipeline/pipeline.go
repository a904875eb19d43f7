// Package pipeline provides the core layout pipeline for flexstack.
//
// This package implements the complete parse → resolve → render pipeline
// that can be used by CLI and server components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read and validate a stackfile document
//  2. Resolve: Run the measure/place passes to position every item
//  3. Render: Generate output in various formats (SVG, PNG, JSON, ASCII, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Stackfile: "stack.toml",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	doc, err := runner.Parse(ctx, opts)
//
//	// Resolve with an existing document
//	layout, err := runner.ResolveLayout(ctx, doc, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/flexstack/pkg/cache"
	"github.com/matzehuels/flexstack/pkg/render"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// DefaultScale is the default raster scale factor for PNG output.
const DefaultScale = 1.0

// DefaultStyle is the default visual style.
const DefaultStyle = render.StyleSimple

// Format constants for output formats.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatJSON  = "json"
	FormatASCII = "ascii"
	FormatDOT   = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatPNG:   true,
	FormatJSON:  true,
	FormatASCII: true,
	FormatDOT:   true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	render.StyleSimple:  true,
	render.StyleOutline: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Parse options
	Stackfile string `json:"stackfile,omitempty"` // Path to the stackfile document
	Source    []byte `json:"source,omitempty"`    // Raw document bytes (takes precedence over Stackfile)

	// Resolve options. Zero values defer to the document; set values
	// override it.
	Axis      string  `json:"axis,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Spacing   float64 `json:"spacing,omitempty"`
	Alignment string  `json:"alignment,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	ShowSpacers bool     `json:"show_spacers,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run for logging and
	// server responses.
	RunID uuid.UUID

	// Document is the parsed stackfile with overrides applied.
	Document stackfile.Document

	// DocumentHash is the content hash of the effective document.
	DocumentHash string

	// Layout contains the resolved item positions.
	Layout stackfile.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount   int
	ParseTime   time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ResolveHit bool // Whether the layout came from cache
	RenderHit  bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, json, ascii, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: simple, outline)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForResolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Stackfile == "" && len(o.Source) == 0 {
		return fmt.Errorf("stackfile or source is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// ValidateForResolve validates the resolve overrides.
func (o *Options) ValidateForResolve() error {
	if o.Axis != "" {
		if err := stackfile.ValidateAxis(o.Axis); err != nil {
			return err
		}
	}
	if o.Alignment != "" {
		if err := stackfile.ValidateAlignment(o.Alignment); err != nil {
			return err
		}
	}
	if o.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative: %v", o.Spacing)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// ApplyTo overlays the resolve overrides onto a parsed document.
// Zero-valued overrides leave the document untouched.
func (o *Options) ApplyTo(doc *stackfile.Document) {
	if o.Axis != "" {
		doc.Axis = o.Axis
	}
	if o.Width != 0 {
		doc.Width = o.Width
	}
	if o.Height != 0 {
		doc.Height = o.Height
	}
	if o.Spacing != 0 {
		doc.Spacing = o.Spacing
	}
	if o.Alignment != "" {
		doc.Alignment = o.Alignment
	}
}

// LayoutKeyOpts returns cache key options for layout resolution.
// The document passed in should already have overrides applied.
func LayoutKeyOpts(doc stackfile.Document) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Axis:      doc.Axis,
		Width:     doc.Width,
		Height:    doc.Height,
		Spacing:   doc.Spacing,
		Alignment: doc.Alignment,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Scale:  o.Scale,
	}
}
