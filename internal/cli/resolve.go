package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flexstack/pkg/pipeline"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

// resolveCommand creates the resolve command for computing layouts.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "resolve [stack.toml]",
		Short: "Compute item positions for a stackfile document",
		Long: `Compute item positions for a stackfile document.

The resolve command reads a TOML stackfile, runs the measure and place
passes, and writes the resolved layout as JSON. The layout records every
item's position and size along with its sizing classification, and can
be rendered later with 'flexstack render'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stackfile = args[0]
			return c.runResolve(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	addResolveFlags(cmd, &opts)

	return cmd
}

// runResolve parses the document, resolves the layout, and writes output.
func (c *CLI) runResolve(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	doc, err := runner.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", opts.Stackfile, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s stack...", doc.Axis))
	spinner.Start()

	layout, cacheHit, err := runner.ResolveLayoutWithCacheInfo(ctx, doc, opts)
	if err != nil {
		spinner.StopWithError("Resolve failed")
		return fmt.Errorf("resolve layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.Stackfile, filepath.Ext(opts.Stackfile))
		outputPath = base + ".layout.json"
	}

	if err := stackfile.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Resolve complete")
	printFile(outputPath)
	printStats(len(layout.Items), layout.Width, layout.Height, layout.Overflow, cacheHit)
	printNewline()
	printNextStep("Render", "flexstack render "+opts.Stackfile)

	return nil
}
