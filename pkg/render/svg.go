package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// Visual styles for SVG rendering.
const (
	StyleSimple  = "simple"
	StyleOutline = "outline"
)

const itemInteractionCSS = `
    .item { transition: stroke-width 0.2s ease; }
    .item:hover { stroke-width: 3; }
    .item-text { pointer-events: none; }`

// Item fill colors by classification.
var classFills = map[string]string{
	"regular":  "#7aa2c9",
	"relative": "#c9a27a",
	"spacer":   "#e8e8e8",
}

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       string
	showSpacers bool
}

// WithStyle sets the visual style (simple or outline).
func WithStyle(s string) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithSpacers draws spacer rectangles instead of leaving gaps.
func WithSpacers() SVGOption { return func(r *svgRenderer) { r.showSpacers = true } }

// SVG renders the layout as an SVG document. Each item becomes a
// rectangle with a centered label; spacers are skipped unless
// WithSpacers is set.
func SVG(l stackfile.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: StyleSimple}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := l.Width, l.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, "<style>%s</style>\n", itemInteractionCSS)
	fmt.Fprintf(&buf, `<rect x="0" y="0" width="%.1f" height="%.1f" fill="#fafafa" stroke="#cccccc"/>`+"\n", w, h)

	for _, item := range l.Items {
		if item.Class == "spacer" && !r.showSpacers {
			continue
		}
		renderItem(&buf, &r, item)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderItem(buf *bytes.Buffer, r *svgRenderer, item stackfile.PlacedItem) {
	fill := classFills[item.Class]
	if fill == "" {
		fill = classFills["regular"]
	}
	if r.style == StyleOutline {
		fill = "none"
	}

	fmt.Fprintf(buf,
		`<rect id="item-%s" class="item" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#333333" stroke-width="1"/>`+"\n",
		item.ID, item.X, item.Y, item.Width, item.Height, fill)

	label := item.DisplayLabel()
	if item.Text != "" {
		label = item.Text
	}
	if label == "" || item.Width <= 0 || item.Height <= 0 {
		return
	}
	fmt.Fprintf(buf,
		`<text class="item-text" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="monospace" font-size="10">%s</text>`+"\n",
		item.X+item.Width/2, item.Y+item.Height/2, escapeXML(label))
}

// escapeXML escapes the characters that terminate SVG text content.
func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
