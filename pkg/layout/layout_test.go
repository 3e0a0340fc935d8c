package layout

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/coord"
	"github.com/matzehuels/chartframe/pkg/drawing"
)

func buildContext(t *testing.T) *chart.Context {
	t.Helper()
	ctx, err := chart.On(drawing.NewArea(nil, 800, 600)).
		XLabelAreaSize(50).
		YLabelAreaSize(60).
		Build(coord.Lin(0, 1), coord.Lin(0, 1))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return ctx
}

func TestFromContext(t *testing.T) {
	ctx := buildContext(t)
	l := FromContext(ctx, 800, 600, "Revenue", [4]bool{})

	if l.Width != 800 || l.Height != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", l.Width, l.Height)
	}
	if l.Caption != "Revenue" {
		t.Errorf("Caption = %q", l.Caption)
	}
	if l.Interior != (Region{X: 60, Y: 0, Width: 740, Height: 550}) {
		t.Errorf("Interior = %+v", l.Interior)
	}
	if l.Top != nil || l.Right != nil {
		t.Error("absent sides should be nil")
	}
	if l.Bottom == nil || l.Bottom.Region != (Region{X: 60, Y: 550, Width: 740, Height: 50}) {
		t.Errorf("Bottom = %+v", l.Bottom)
	}
	if l.Left == nil || l.Left.Region != (Region{X: 0, Y: 0, Width: 60, Height: 550}) {
		t.Errorf("Left = %+v", l.Left)
	}
	if l.XRange != (PixelSpan{Start: 60, End: 800}) {
		t.Errorf("XRange = %+v", l.XRange)
	}
	if l.YRange != (PixelSpan{Start: 550, End: 0}) {
		t.Errorf("YRange = %+v (should be inverted)", l.YRange)
	}
}

func TestFromContextInsetFlag(t *testing.T) {
	ctx, err := chart.On(drawing.NewArea(nil, 800, 600)).
		TopXLabelAreaSize(40).
		InsetTopXLabels().
		Build(coord.Lin(0, 1), coord.Lin(0, 1))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	insets := [4]bool{}
	insets[chart.PositionTop] = true
	l := FromContext(ctx, 800, 600, "", insets)

	if l.Top == nil || !l.Top.Inset {
		t.Errorf("Top = %+v, want inset label area", l.Top)
	}
	if !l.Interior.Rect().ContainsRect(l.Top.Rect()) {
		t.Errorf("inset %+v escapes interior %+v", l.Top.Region, l.Interior)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	l := FromContext(buildContext(t), 800, 600, "Revenue", [4]bool{})

	data, err := Marshal(l)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Interior != l.Interior {
		t.Errorf("Interior = %+v, want %+v", got.Interior, l.Interior)
	}
	if got.Label(chart.PositionLeft) == nil {
		t.Error("left label lost in round trip")
	}
}

func TestUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing dimensions", `{"interior":{"x":0,"y":0,"width":10,"height":10}}`},
		{"missing interior", `{"width":800,"height":600}`},
		{"malformed", `{"width":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.json)); err == nil {
				t.Error("Unmarshal() should fail")
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	l := FromContext(buildContext(t), 800, 600, "", [4]bool{})
	path := filepath.Join(t.TempDir(), "chart.layout.json")

	if err := WriteFile(l, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got.Interior != l.Interior {
		t.Errorf("Interior = %+v, want %+v", got.Interior, l.Interior)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile(missing) should fail")
	} else if !strings.Contains(err.Error(), "read") {
		t.Errorf("error should mention read: %v", err)
	}
}
