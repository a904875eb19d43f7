package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flexstack/pkg/pipeline"
)

// serveCommand creates the serve command exposing layouts over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "serve [stack.toml]",
		Short: "Expose resolved layouts over HTTP",
		Long: `Expose resolved layouts over HTTP.

The serve command loads a stackfile and serves its resolved layout on
demand. Query parameters override the proposed container size per
request, so clients can ask for the same stack at different sizes:

  GET /layout.json?width=400          resolved layout data
  GET /layout.svg?width=400&style=outline
  GET /healthz                        liveness probe

Each distinct size is resolved once and cached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Stackfile = args[0]
			return c.runServe(cmd.Context(), opts, addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addResolveFlags(cmd, &opts)

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	// Fail fast on an unreadable document before binding the socket.
	if _, err := runner.Parse(ctx, opts); err != nil {
		return fmt.Errorf("parse %s: %w", opts.Stackfile, err)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServeRouter(runner, opts, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printSuccess("Serving %s on %s", opts.Stackfile, addr)
	printDetail("GET /layout.json · GET /layout.svg · GET /healthz")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeRouter builds the chi router for the layout endpoints.
func newServeRouter(runner *pipeline.Runner, base pipeline.Options, logger *log.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/layout.json", func(w http.ResponseWriter, req *http.Request) {
		serveArtifact(w, req, runner, base, pipeline.FormatJSON, "application/json")
	})

	r.Get("/layout.svg", func(w http.ResponseWriter, req *http.Request) {
		serveArtifact(w, req, runner, base, pipeline.FormatSVG, "image/svg+xml")
	})

	return r
}

// requestLogger attaches l to each request's context and logs the
// request with its elapsed time once the handler returns.
func requestLogger(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			p := newProgress(l)
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), l)))
			p.done(req.Method + " " + req.URL.Path)
		})
	}
}

// serveArtifact resolves the stack with per-request overrides and writes
// a single rendered format.
func serveArtifact(w http.ResponseWriter, req *http.Request, runner *pipeline.Runner, base pipeline.Options, format, contentType string) {
	opts, err := requestOptions(base, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	opts.Formats = []string{format}

	result, err := runner.Execute(req.Context(), opts)
	if err != nil {
		loggerFromContext(req.Context()).Warn("resolve failed", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Run-Id", result.RunID.String())
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	}
	_, _ = w.Write(result.Artifacts[format])
}

// requestOptions overlays query parameters onto the base options.
func requestOptions(base pipeline.Options, req *http.Request) (pipeline.Options, error) {
	opts := base
	q := req.URL.Query()

	for name, dst := range map[string]*float64{
		"width":   &opts.Width,
		"height":  &opts.Height,
		"spacing": &opts.Spacing,
		"scale":   &opts.Scale,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return pipeline.Options{}, fmt.Errorf("invalid %s: %q", name, raw)
		}
		*dst = v
	}

	if axis := q.Get("axis"); axis != "" {
		opts.Axis = axis
	}
	if align := q.Get("align"); align != "" {
		opts.Alignment = align
	}
	if style := q.Get("style"); style != "" {
		if err := pipeline.ValidateStyle(style); err != nil {
			return pipeline.Options{}, err
		}
		opts.Style = style
	}
	if q.Get("spacers") == "true" {
		opts.ShowSpacers = true
	}

	return opts, nil
}
