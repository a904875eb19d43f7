package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flexstack/pkg/cache"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Source:  []byte(spacerDoc),
		Formats: []string{FormatJSON, FormatASCII},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.DocumentHash == "" {
		t.Error("DocumentHash should be set")
	}
	if result.Stats.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", result.Stats.ItemCount)
	}
	if result.Layout.Width != 300 {
		t.Errorf("Layout.Width = %v, want 300", result.Layout.Width)
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("JSON artifact should be present")
	}
	if len(result.Artifacts[FormatASCII]) == 0 {
		t.Error("ASCII artifact should be present")
	}
	if result.CacheInfo.ResolveHit || result.CacheInfo.RenderHit {
		t.Error("NullCache should never report hits")
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Source:  []byte(spacerDoc),
		Formats: []string{FormatJSON},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.ResolveHit || first.CacheInfo.RenderHit {
		t.Error("first run should be a cache miss")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.ResolveHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if second.Layout.Width != first.Layout.Width {
		t.Errorf("cached layout width = %v, want %v", second.Layout.Width, first.Layout.Width)
	}
}

func TestRunnerExecuteRefreshBypassesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Source:  []byte(spacerDoc),
		Formats: []string{FormatJSON},
	}
	if _, err := runner.Execute(context.Background(), opts); err != nil {
		t.Fatalf("prime Execute: %v", err)
	}

	opts.Refresh = true
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if result.CacheInfo.ResolveHit {
		t.Error("refresh should bypass the layout cache")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), Options{}); err == nil {
		t.Error("missing stackfile should fail")
	}

	if _, err := runner.Execute(context.Background(), Options{
		Source:  []byte(spacerDoc),
		Formats: []string{"gif"},
	}); err == nil {
		t.Error("invalid format should fail")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	if runner.Cache == nil {
		t.Error("Cache should default to NullCache")
	}
	if runner.Keyer == nil {
		t.Error("Keyer should default to DefaultKeyer")
	}
	if runner.Logger == nil {
		t.Error("Logger should default to log.Default()")
	}
}
