package spec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/coord"
	"github.com/matzehuels/chartframe/pkg/drawing"
	"github.com/matzehuels/chartframe/pkg/errors"
)

const fullSpec = `
[canvas]
width = 800
height = 600

[margin]
all = 10
left = 20

[caption]
text = "Monthly revenue"
size = 20

[labels.bottom]
size = 50

[labels.left]
size = 60

[labels.top]
size = 40
inset = true

[x]
type = "category"
values = ["q1", "q2", "q3", "q4"]

[y]
type = "log"
min = 1
max = 1000
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(fullSpec))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if s.Canvas.Width != 800 || s.Canvas.Height != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", s.Canvas.Width, s.Canvas.Height)
	}

	top, bottom, left, right := s.Margin.Sides()
	if top != 10 || bottom != 10 || right != 10 {
		t.Errorf("margins = %d,%d,_,%d, want all 10", top, bottom, right)
	}
	if left != 20 {
		t.Errorf("left margin = %d, want explicit override 20", left)
	}

	if s.Caption == nil || s.Caption.Text != "Monthly revenue" {
		t.Errorf("caption = %+v", s.Caption)
	}
	if got := s.Labels["bottom"].Size; got != 50 {
		t.Errorf("bottom label size = %d, want 50", got)
	}
	if !s.Labels["top"].Inset {
		t.Error("top label should be inset")
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Canvas.Width != DefaultWidth || s.Canvas.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d, want defaults %dx%d", s.Canvas.Width, s.Canvas.Height, DefaultWidth, DefaultHeight)
	}
	if s.X.Type != "linear" || s.Y.Type != "linear" {
		t.Errorf("axis types = %q,%q, want linear", s.X.Type, s.Y.Type)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{
			name: "malformed toml",
			toml: "[canvas\nwidth=",
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "negative margin",
			toml: "[margin]\nall = -5",
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "bad label side",
			toml: "[labels.center]\nsize = 10",
			code: errors.ErrCodeInvalidSpec,
		},
		{
			name: "bad axis type",
			toml: "[x]\ntype = \"polar\"",
			code: errors.ErrCodeInvalidAxis,
		},
		{
			name: "log axis with zero bound",
			toml: "[y]\ntype = \"log\"\nmin = 0\nmax = 100",
			code: errors.ErrCodeInvalidAxis,
		},
		{
			name: "category without values",
			toml: "[x]\ntype = \"category\"",
			code: errors.ErrCodeInvalidAxis,
		},
		{
			name: "time axis bad timestamp",
			toml: "[x]\ntype = \"time\"\nstart = \"yesterday\"\nend = \"2025-01-02T00:00:00Z\"",
			code: errors.ErrCodeInvalidAxis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestAxisAsRanged(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
	}{
		{"default linear", Axis{}},
		{"linear", Axis{Type: "linear", Min: 0, Max: 10}},
		{"log", Axis{Type: "log", Min: 1, Max: 1000, Base: 10}},
		{"time", Axis{Type: "time", Start: "2025-01-01T00:00:00Z", End: "2025-12-31T00:00:00Z"}},
		{"category", Axis{Type: "category", Values: []string{"a", "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.axis.AsRanged()
			if err != nil {
				t.Fatalf("AsRanged() error = %v", err)
			}
			if spec.IntoRanged() == nil {
				t.Error("IntoRanged() = nil")
			}
		})
	}
}

func TestBuilderFromSpec(t *testing.T) {
	s, err := Parse([]byte(fullSpec))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	xSpec, err := s.X.AsRanged()
	if err != nil {
		t.Fatalf("x AsRanged() error = %v", err)
	}
	ySpec, err := s.Y.AsRanged()
	if err != nil {
		t.Fatalf("y AsRanged() error = %v", err)
	}

	root := drawing.NewArea(nil, s.Canvas.Width, s.Canvas.Height)
	ctx, err := s.Builder(root).Build(xSpec, ySpec)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Canvas 800x600, margin 10 (left 20), caption 20+5, bottom 50, left 60.
	plot := ctx.PlotRect()
	wantW := 800 - 20 - 10 - 60
	wantH := 600 - 10 - 10 - 25 - 50
	if plot.Width != wantW || plot.Height != wantH {
		t.Errorf("plot = %dx%d, want %dx%d", plot.Width, plot.Height, wantW, wantH)
	}

	// Top label is inset: contained in the interior, 40 tall.
	top := ctx.LabelArea(chart.PositionTop)
	if top == nil {
		t.Fatal("top label area missing")
	}
	if r := top.Rect(); r.Height != 40 || !plot.ContainsRect(r) {
		t.Errorf("top inset = %+v, want height 40 inside %+v", r, plot)
	}

	insets := s.Insets()
	if !insets[chart.PositionTop] || insets[chart.PositionBottom] {
		t.Errorf("Insets() = %v", insets)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(fullSpec), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.CaptionText() != "Monthly revenue" {
		t.Errorf("CaptionText() = %q", s.CaptionText())
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestCanonicalJSONDeterministic(t *testing.T) {
	s, err := Parse([]byte(fullSpec))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	a, err := s.CanonicalJSON()
	if err != nil {
		t.Fatalf("CanonicalJSON() error = %v", err)
	}
	b, _ := s.CanonicalJSON()
	if !bytes.Equal(a, b) {
		t.Error("CanonicalJSON() should be deterministic")
	}
}

func TestAxisAsRangedMapsValues(t *testing.T) {
	spec := Axis{Type: "linear", Min: 0, Max: 10}
	r, err := spec.AsRanged()
	if err != nil {
		t.Fatal(err)
	}
	if got := r.IntoRanged().Map(5, coord.PixelRange{Start: 0, End: 100}); got != 50 {
		t.Errorf("Map(5) = %d, want 50", got)
	}
}
