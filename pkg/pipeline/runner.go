package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/flexstack/pkg/cache"
	"github.com/matzehuels/flexstack/pkg/observability"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → resolve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.New(),
		Artifacts: make(map[string][]byte),
	}
	r.Logger.Debug("pipeline run", "id", result.RunID)

	// Stage 1: Parse
	parseStart := time.Now()
	doc, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Document = doc
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.ItemCount = len(doc.Items)

	// Compute document hash for cache keys and server responses
	if docData, err := json.Marshal(doc); err == nil {
		result.DocumentHash = cache.Hash(docData)
	}

	r.Logger.Info("parsed stackfile",
		"items", len(doc.Items),
		"axis", doc.Axis,
		"duration", result.Stats.ParseTime)

	// Stage 2: Resolve
	resolveStart := time.Now()
	layout, resolveHit, err := r.ResolveLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Layout = layout
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.CacheInfo.ResolveHit = resolveHit

	r.Logger.Info("resolved layout",
		"width", layout.Width,
		"height", layout.Height,
		"overflow", layout.Overflow,
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse reads the stackfile document with overrides applied.
func (r *Runner) Parse(ctx context.Context, opts Options) (stackfile.Document, error) {
	r.applyLogger(&opts)

	source := opts.Stackfile
	if source == "" {
		source = "<inline>"
	}
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, source)

	doc, err := Parse(opts)
	observability.Pipeline().OnParseComplete(ctx, source, len(doc.Items), time.Since(start), err)
	return doc, err
}

// ResolveLayoutWithCacheInfo resolves a layout with caching and returns cache hit info.
func (r *Runner) ResolveLayoutWithCacheInfo(ctx context.Context, doc stackfile.Document, opts Options) (stackfile.Layout, bool, error) {
	if err := opts.ValidateForResolve(); err != nil {
		return stackfile.Layout{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key
	docData, _ := json.Marshal(doc)
	docHash := cache.Hash(docData)
	cacheKey := r.Keyer.LayoutKey(docHash, LayoutKeyOpts(doc))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "layout")
			cached, err := stackfile.UnmarshalLayout(data)
			if err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		} else {
			observability.Cache().OnCacheMiss(ctx, "layout")
		}
	}

	// Resolve
	start := time.Now()
	observability.Pipeline().OnResolveStart(ctx, doc.Axis, len(doc.Items))
	res, err := Resolve(doc)
	observability.Pipeline().OnResolveComplete(ctx, doc.Axis, time.Since(start), err)
	if err != nil {
		return stackfile.Layout{}, false, err
	}

	// Cache the result
	if data, err := stackfile.MarshalLayout(res.Layout); err == nil {
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout) == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return res.Layout, false, nil // Cache miss
}

// ResolveLayout is a convenience wrapper that calls ResolveLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ResolveLayout(ctx context.Context, doc stackfile.Document, opts Options) (stackfile.Layout, error) {
	layout, _, err := r.ResolveLayoutWithCacheInfo(ctx, doc, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout stackfile.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := stackfile.MarshalLayout(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := RenderFromLayout(layout, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact) == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout stackfile.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
