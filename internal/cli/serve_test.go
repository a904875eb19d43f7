package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flexstack/pkg/cache"
	"github.com/matzehuels/flexstack/pkg/pipeline"
	"github.com/matzehuels/flexstack/pkg/stackfile"
)

const serveTestDoc = `
axis = "horizontal"
width = 300
height = 40

[[item]]
id = "a"
kind = "box"
width = 100
height = 40

[[item]]
id = "gap"
kind = "spacer"

[[item]]
id = "b"
kind = "box"
width = 60
height = 40
`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stack.toml")
	if err := os.WriteFile(path, []byte(serveTestDoc), 0o644); err != nil {
		t.Fatalf("write stackfile: %v", err)
	}

	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	t.Cleanup(func() { runner.Close() })

	return newServeRouter(runner, pipeline.Options{Stackfile: path}, logger)
}

func TestServeHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestServeLayoutJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/layout.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if rec.Header().Get("X-Run-Id") == "" {
		t.Error("X-Run-Id header should be set")
	}

	var layout stackfile.Layout
	if err := json.Unmarshal(rec.Body.Bytes(), &layout); err != nil {
		t.Fatalf("unmarshal layout: %v", err)
	}
	if layout.Width != 300 {
		t.Errorf("layout.Width = %v, want 300", layout.Width)
	}
	if len(layout.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3", len(layout.Items))
	}
}

func TestServeLayoutJSONWidthOverride(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/layout.json?width=500", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var layout stackfile.Layout
	if err := json.Unmarshal(rec.Body.Bytes(), &layout); err != nil {
		t.Fatalf("unmarshal layout: %v", err)
	}
	if layout.Width != 500 {
		t.Errorf("layout.Width = %v, want 500", layout.Width)
	}
}

func TestServeLayoutSVG(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/layout.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if body := rec.Body.String(); len(body) == 0 {
		t.Error("SVG body should not be empty")
	}
}

func TestServeBadQuery(t *testing.T) {
	router := newTestRouter(t)

	tests := []string{
		"/layout.json?width=abc",
		"/layout.svg?style=sketchy",
	}

	for _, path := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
	}
}
