// Package pkg provides the core libraries for Flexstack layout resolution.
//
// # Overview
//
// Flexstack resolves one-dimensional stack layouts: a row or column of items
// whose lengths are negotiated through a measure/place protocol, the way
// flexible box models do it. The pkg directory is organized into five areas:
//
//  1. [flex] - The layout engine (proposals, measurement, placement, cache)
//  2. [box] - Concrete items (boxes, text, spacers)
//  3. [stackfile] - TOML documents and resolved-layout serialization
//  4. [render] - Output formats (SVG, PNG, ASCII, DOT)
//  5. [pipeline] - Orchestration (parse → resolve → render) with caching
//
// # Architecture
//
// The typical data flow through Flexstack:
//
//	stack.toml (stackfile document)
//	         ↓
//	    [stackfile] package (decode + build items)
//	         ↓
//	    [flex] package (measure + place)
//	         ↓
//	    [render] package (SVG/PNG/JSON/ASCII/DOT output)
//
// # Quick Start
//
// Resolve a stackfile and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/flexstack/pkg/cache"
//	    "github.com/matzehuels/flexstack/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Stackfile: "stack.toml",
//	    Formats:   []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
//
// # Main Packages
//
// [flex] - The measurement and placement engine. A [flex.Stack] proposes
// space to its children twice (natural size, then maximum size), classifies
// each child as relative, spacer, or regular, and distributes leftover main
// axis length through spacer fill and a growth multiplier. Results are
// memoized in a [flex.Cache] keyed by the proposal.
//
// [box] - Leaf items implementing [flex.Item]: fixed and growable boxes,
// text labels measured in character cells, and spacers that absorb leftover
// space.
//
// [stackfile] - The TOML document format describing a stack, plus the
// resolved [stackfile.Layout] with per-item positions, sizes, and
// classifications. Layouts serialize to JSON (and BSON for the Mongo cache).
//
// [render] - Turns a resolved layout into artifacts: SVG (simple and outline
// styles), PNG via rasterization, ASCII canvases for the terminal, and
// Graphviz DOT for structure inspection.
//
// [pipeline] - The complete parse → resolve → render pipeline used by the
// CLI and the HTTP server. Resolved layouts and rendered artifacts are cached
// by content hash with per-kind TTLs.
//
// [cache] - Cache backends behind one interface: filesystem for the CLI,
// Redis and MongoDB for shared deployments, and a null cache for tests.
//
// [observability] - Pluggable hooks for pipeline stages and cache traffic.
//
// [errors] - Error codes and validation helpers shared across packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/flex/...     # Specific package
//	go test -run Example       # Examples only
//
// [flex]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/flex
// [box]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/box
// [stackfile]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/stackfile
// [render]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/flexstack/pkg/errors
package pkg
