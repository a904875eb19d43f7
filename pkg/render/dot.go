package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// DOT renders the resolver's view of a layout as a Graphviz graph:
// the container node on top, one node per item below it in document
// order, labeled with the derived classification and resolved length.
// Useful for debugging why an item ended up with a given length.
func DOT(l stackfile.Layout) string {
	var b strings.Builder
	b.WriteString("digraph stack {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	containerLabel := fmt.Sprintf("%s stack\n%.1f x %.1f", l.Axis, l.Width, l.Height)
	if l.Overflow {
		containerLabel += "\noverflow"
	}
	fmt.Fprintf(&b, "  container [label=%q, style=filled, fillcolor=lightgrey];\n", containerLabel)

	for i, item := range l.Items {
		label := fmt.Sprintf("%s\n%s", item.DisplayLabel(), item.Class)
		switch {
		case item.Fraction > 0:
			label += fmt.Sprintf(" %.2f", item.Fraction)
		case item.Grown:
			label += " (grown)"
		}
		label += fmt.Sprintf("\n%.1f x %.1f", item.Width, item.Height)

		attrs := fmt.Sprintf("label=%q", label)
		if item.Class == "spacer" {
			attrs += ", style=dashed"
		}
		fmt.Fprintf(&b, "  i%d [%s];\n", i, attrs)
		fmt.Fprintf(&b, "  container -> i%d;\n", i)
	}

	b.WriteString("}\n")
	return b.String()
}

// DOTSVG renders a DOT graph to SVG using Graphviz.
func DOTSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
