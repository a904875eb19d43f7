package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// ASCIIOption configures terminal rendering.
type ASCIIOption func(*asciiRenderer)

type asciiRenderer struct {
	showSpacers bool
}

// WithASCIISpacers draws spacers as dotted regions instead of blanks.
func WithASCIISpacers() ASCIIOption { return func(r *asciiRenderer) { r.showSpacers = true } }

// ASCII renders the layout on a terminal cell grid. One layout unit
// equals one cell; fractional geometry is rounded. Items are drawn as
// lipgloss-bordered boxes with centered labels, pasted onto the grid
// at their resolved positions.
func ASCII(l stackfile.Layout, opts ...ASCIIOption) string {
	r := asciiRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	cols := int(math.Ceil(l.Width))
	rows := int(math.Ceil(l.Height))
	if cols <= 0 || rows <= 0 {
		return ""
	}

	canvas := make([][]rune, rows)
	for y := range canvas {
		canvas[y] = make([]rune, cols)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	for _, item := range l.Items {
		if item.Class == "spacer" {
			if r.showSpacers {
				pasteFill(canvas, item, '·')
			}
			continue
		}
		paste(canvas, item)
	}

	lines := make([]string, rows)
	for y, row := range canvas {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// paste draws one item's box onto the canvas.
func paste(canvas [][]rune, item stackfile.PlacedItem) {
	x, y := int(math.Round(item.X)), int(math.Round(item.Y))
	w, h := int(math.Round(item.Width)), int(math.Round(item.Height))
	if w <= 0 || h <= 0 {
		return
	}

	label := item.DisplayLabel()
	if item.Text != "" {
		label = item.Text
	}

	var block string
	if w < 2 || h < 2 {
		// Too small for a border: fill the region.
		row := strings.Repeat("█", w)
		block = strings.TrimSuffix(strings.Repeat(row+"\n", h), "\n")
	} else {
		style := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(w - 2).
			Height(h - 2).
			Align(lipgloss.Center, lipgloss.Center)
		if lipgloss.Width(label) > w-2 {
			label = truncate(label, w-2)
		}
		block = style.Render(label)
	}

	for dy, line := range strings.Split(block, "\n") {
		for dx, r := range []rune(line) {
			set(canvas, x+dx, y+dy, r)
		}
	}
}

// pasteFill fills an item's region with a single rune.
func pasteFill(canvas [][]rune, item stackfile.PlacedItem, fill rune) {
	x, y := int(math.Round(item.X)), int(math.Round(item.Y))
	w, h := int(math.Round(item.Width)), int(math.Round(item.Height))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			set(canvas, x+dx, y+dy, fill)
		}
	}
}

// set writes a rune at (x, y), ignoring out-of-bounds coordinates.
// Items may legitimately extend past the canvas on the overflow path.
func set(canvas [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(canvas) || x < 0 || x >= len(canvas[y]) {
		return
	}
	canvas[y][x] = r
}

// truncate cuts s to at most n cells with a trailing ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
