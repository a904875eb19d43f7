package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flexstack/pkg/pipeline"
)

// renderCommand creates the render command for running the full pipeline.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [stack.toml]",
		Short: "Resolve a stackfile and render the layout",
		Long: `Resolve a stackfile and render the layout.

The render command runs the complete pipeline: it parses the stackfile,
resolves item positions, and renders the result. Multiple output formats
can be requested at once; each goes to its own file derived from the
input name (or from --output as a base path).

Formats:
  svg    vector drawing of the placed items
  png    raster conversion of the SVG (requires rsvg-convert)
  json   the resolved layout data
  ascii  terminal drawing with box borders
  dot    classification graph in Graphviz DOT

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stackfile = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if opts.Style != "" {
				if err := pipeline.ValidateStyle(opts.Style); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	addResolveFlags(cmd, &opts)

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, ascii, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: simple (default), outline")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.ShowSpacers, "spacers", false, "draw spacer items in the output")

	return cmd
}

// runRender executes the full pipeline and writes all artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering stack...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Stackfile,
		output:    output,
		itemCount: len(result.Layout.Items),
		width:     result.Layout.Width,
		height:    result.Layout.Height,
		overflow:  result.Layout.Overflow,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
