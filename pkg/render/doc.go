// Package render turns resolved stack layouts into visual artifacts.
//
// Four sinks are provided:
//
//   - SVG: scalable output with hover highlighting, styled simple or
//     outline
//   - ASCII: terminal output on a cell grid with lipgloss-drawn boxes
//   - DOT: the resolver's classification as a Graphviz graph, with
//     optional SVG conversion through goccy/go-graphviz
//   - PNG: rasterized SVG via rsvg-convert
//
// All sinks are pure functions of the layout; none of them re-run the
// resolver.
package render
