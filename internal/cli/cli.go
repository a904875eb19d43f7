package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flexstack/pkg/buildinfo"
	"github.com/matzehuels/flexstack/pkg/cache"
	"github.com/matzehuels/flexstack/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "flexstack"

	// envRedisAddr selects the Redis cache backend when set.
	envRedisAddr = "FLEXSTACK_REDIS_ADDR"

	// envRedisPassword is the optional Redis password.
	envRedisPassword = "FLEXSTACK_REDIS_PASSWORD"

	// envMongoURI selects the MongoDB cache backend when set.
	envMongoURI = "FLEXSTACK_MONGO_URI"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "flexstack",
		Short:        "Flexstack resolves one-dimensional stack layouts",
		Long:         `Flexstack is a CLI tool for resolving stackfile documents into positioned layouts along a single axis, distributing space across fixed, fractional, growable, and spacer items.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

// newCache selects the cache backend. Remote backends are chosen via
// environment variables so deployments can share results; the default
// is a file cache in the XDG cache directory, and any setup failure
// degrades to disabled caching rather than aborting the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	if addr := os.Getenv(envRedisAddr); addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     addr,
			Password: os.Getenv(envRedisPassword),
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "addr", addr, "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}

	if uri := os.Getenv(envMongoURI); uri != "" {
		mc, err := cache.NewMongoCache(ctx, cache.MongoConfig{URI: uri})
		if err != nil {
			c.Logger.Warn("mongo cache unavailable, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return mc, nil
	}

	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/flexstack/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// addResolveFlags registers the flags that override document resolve
// settings. They are shared by resolve, render, inspect, and preview.
func addResolveFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVar(&opts.Axis, "axis", "", "override axis: horizontal, vertical")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "override container width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "override container height")
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", 0, "override inter-item spacing")
	cmd.Flags().StringVar(&opts.Alignment, "align", "", "override alignment: start, center, end, baseline")
}
