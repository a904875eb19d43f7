package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flexstack/pkg/flex"
	"github.com/matzehuels/flexstack/pkg/pipeline"
	"github.com/matzehuels/flexstack/pkg/render"
)

// inspectCommand creates the inspect command for examining resolver state.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		output string
		format string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [stack.toml]",
		Short: "Show the resolver's classification and distribution state (debug tool)",
		Long: `Show the resolver's classification and distribution state.

The inspect command resolves a stackfile and prints each item's sizing
classification (regular, spacer, relative) together with the distribution
values derived during measurement: the uniform spacer fill, the growth
multiplier applied to growable items, and the alignment guide offsets.

With --graph the same classification data is exported as a Graphviz
diagram instead (DOT text or rendered SVG).`,
		Example: `  # Print the classification table
  flexstack inspect stack.toml

  # Export the classification graph
  flexstack inspect stack.toml --graph dot -o stack.dot
  flexstack inspect stack.toml --graph svg -o stack.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stackfile = args[0]
			return c.runInspect(cmd.Context(), opts, format, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for --graph (stdout if empty)")
	cmd.Flags().StringVar(&format, "graph", "", "export classification graph: dot, svg")
	addResolveFlags(cmd, &opts)

	return cmd
}

// runInspect resolves the document without caching and reports the
// resolver internals. Caching is skipped on purpose: a cached layout
// has no measurement cache to inspect.
func (c *CLI) runInspect(ctx context.Context, opts pipeline.Options, format, output string) error {
	opts.Logger = c.Logger

	doc, err := pipeline.Parse(opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.Stackfile, err)
	}

	res, err := pipeline.Resolve(doc)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	switch format {
	case "":
		printInspection(res, doc.Proposal().Main(res.Stack.Axis))
		return nil
	case "dot":
		return writeGraph([]byte(render.DOT(res.Layout)), output, "DOT")
	case "svg":
		svg, err := render.DOTSVG(render.DOT(res.Layout))
		if err != nil {
			return fmt.Errorf("render graph: %w", err)
		}
		return writeGraph(svg, output, "SVG")
	default:
		return fmt.Errorf("invalid graph format: %q (must be dot or svg)", format)
	}
}

// writeGraph writes exported graph data to output or stdout.
func writeGraph(data []byte, output, kind string) error {
	out, err := openOutput(output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if output != "" {
		printSuccess("Classification graph exported (%s)", kind)
		printFile(output)
	}
	return nil
}

// printInspection renders the classification table and distribution values.
func printInspection(res pipeline.Resolution, proposedMain float64) {
	fmt.Println(StyleTitle.Render("Resolver State"))
	printNewline()

	rows := [][]string{}
	for i, b := range res.Built {
		info := res.Cache.Info(i)

		growth := "—"
		switch {
		case info.Class == flex.ClassRelative:
			growth = fmt.Sprintf("%.2f of proposal", info.Fraction)
		case info.Class == flex.ClassSpacer:
			growth = "absorbs leftover"
		case info.CanGrow:
			growth = fmt.Sprintf("×%.3f", res.Cache.GrowthMultiplier())
		}

		maxLen := "∞"
		if info.MaxLength != flex.Infinite {
			maxLen = fmt.Sprintf("%.1f", info.MaxLength)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			b.Spec.DisplayLabel(),
			b.Spec.Kind,
			info.Class.String(),
			fmt.Sprintf("%.1f", info.Length),
			maxLen,
			growth,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Item", "Kind", "Class", "Length", "Max", "Growth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	fmt.Println(t.Render())
	printNewline()

	l := res.Layout
	axis := res.Stack.Axis
	printKeyValue("Axis", axis.String())
	printKeyValue("Resolved main", fmt.Sprintf("%.1f", res.Cache.ResolvedMainLength()))
	printKeyValue("Spacer fill", fmt.Sprintf("%.1f", res.Cache.SpacerFill()))
	printKeyValue("Growth", fmt.Sprintf("×%.3f", res.Cache.GrowthMultiplier()))
	printKeyValue("Align offset", fmt.Sprintf("%.1f", res.Cache.MaxAlignmentOffset()))
	printKeyValue("Container", fmt.Sprintf("%.1f × %.1f", l.Width, l.Height))
	if l.Overflow && flex.Specified(proposedMain) {
		excess := res.Cache.ResolvedMainLength() - proposedMain
		printWarning("overflow: items exceed the proposal by %.1f", excess)
	}
}
