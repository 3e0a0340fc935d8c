package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/spec"
)

const testSpec = `
[canvas]
width = 800
height = 600

[labels.bottom]
size = 50

[labels.left]
size = 60

[x]
type = "linear"
min = 0.0
max = 10.0

[y]
type = "linear"
min = 0.0
max = 100.0
`

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"spec data", Options{SpecData: []byte(testSpec)}, false},
		{"spec path", Options{SpecPath: "chart.toml"}, false},
		{"no source", Options{}, true},
		{"both sources", Options{SpecPath: "chart.toml", SpecData: []byte("x")}, true},
		{"negative width", Options{SpecData: []byte(testSpec), Width: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDimensions(t *testing.T) {
	s, err := spec.Parse([]byte(testSpec))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts := Options{}
	if w, h := opts.Dimensions(s); w != 800 || h != 600 {
		t.Errorf("Dimensions = %dx%d, want 800x600", w, h)
	}

	opts = Options{Width: 1024, Height: 768}
	if w, h := opts.Dimensions(s); w != 1024 || h != 768 {
		t.Errorf("Dimensions = %dx%d, want 1024x768", w, h)
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{SpecData: []byte(testSpec)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Spec == nil {
		t.Fatal("result.Spec is nil")
	}
	if result.SpecHash == "" {
		t.Error("result.SpecHash is empty")
	}
	if result.CacheInfo.LayoutHit {
		t.Error("null cache should never hit")
	}

	l := result.Layout
	if l.Width != 800 || l.Height != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", l.Width, l.Height)
	}
	if l.Interior.X != 60 || l.Interior.Width != 740 {
		t.Errorf("interior x/width = %d/%d, want 60/740", l.Interior.X, l.Interior.Width)
	}
	if l.Interior.Height != 550 {
		t.Errorf("interior height = %d, want 550", l.Interior.Height)
	}
	if l.Bottom == nil || l.Bottom.Height != 50 {
		t.Error("bottom label area missing or wrong height")
	}
	if l.Left == nil || l.Left.Width != 60 {
		t.Error("left label area missing or wrong width")
	}
}

func TestRunnerExecuteCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	ctx := context.Background()
	opts := Options{SpecData: []byte(testSpec)}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit {
		t.Error("first run should miss the cache")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the cache")
	}
	if second.Layout.Interior != first.Layout.Interior {
		t.Error("cached layout differs from computed layout")
	}

	// Refresh bypasses the cache.
	refreshed, err := r.Execute(ctx, Options{SpecData: []byte(testSpec), Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.LayoutHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestRunnerExecuteDimensionOverride(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		SpecData: []byte(testSpec),
		Width:    400,
		Height:   300,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Layout.Width != 400 || result.Layout.Height != 300 {
		t.Errorf("canvas = %dx%d, want 400x300", result.Layout.Width, result.Layout.Height)
	}
	if result.Layout.Interior.Width != 340 {
		t.Errorf("interior width = %d, want 340", result.Layout.Interior.Width)
	}
}

func TestRunnerExecuteExport(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	out := filepath.Join(t.TempDir(), "layout.json")
	result, err := r.Execute(context.Background(), Options{
		SpecData:   []byte(testSpec),
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("export is empty")
	}
	if result.Stats.ExportTime == 0 {
		t.Error("export time not recorded")
	}
}

func TestRunnerExecuteInvalidSpec(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{SpecData: []byte("[canvas]\nwidth = -5\n")})
	if err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRunnerLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(testSpec), 0644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	s, err := r.Load(context.Background(), Options{SpecPath: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Canvas.Width != 800 {
		t.Errorf("width = %d, want 800", s.Canvas.Width)
	}
}
