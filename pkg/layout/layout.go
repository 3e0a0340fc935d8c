// Package layout defines the serialization format for computed chart layouts.
//
// A [Layout] captures everything downstream consumers need from a chart
// build: the interior plot region, the per-side label areas, and the pixel
// ranges the coordinate system was bound to. It is the stable wire format
// used for JSON file output, API responses, caching, and persistence.
package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/drawing"
)

// Region is a serialized pixel rectangle.
type Region struct {
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// FromRect converts a drawing rectangle to a Region.
func FromRect(r drawing.Rect) Region {
	return Region{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Rect converts the region back to a drawing rectangle.
func (r Region) Rect() drawing.Rect {
	return drawing.NewRect(r.X, r.Y, r.Width, r.Height)
}

// LabelArea is a label region plus its overlay mode.
type LabelArea struct {
	Region `bson:",inline"`

	// Inset marks the area as overlaying the interior instead of having
	// been carved out of the canvas.
	Inset bool `json:"inset,omitempty" bson:"inset,omitempty"`
}

// PixelSpan is a half-open pixel interval. Start > End for inverted axes.
type PixelSpan struct {
	Start int `json:"start" bson:"start"`
	End   int `json:"end" bson:"end"`
}

// Layout is the serialized result of a chart build.
type Layout struct {
	// Canvas dimensions the layout was computed for.
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`

	// Caption is the chart title, if any.
	Caption string `json:"caption,omitempty" bson:"caption,omitempty"`

	// Interior is the plot region.
	Interior Region `json:"interior" bson:"interior"`

	// Per-side label areas. Absent sides are nil.
	Top    *LabelArea `json:"top,omitempty" bson:"top,omitempty"`
	Bottom *LabelArea `json:"bottom,omitempty" bson:"bottom,omitempty"`
	Left   *LabelArea `json:"left,omitempty" bson:"left,omitempty"`
	Right  *LabelArea `json:"right,omitempty" bson:"right,omitempty"`

	// Pixel ranges the coordinate system is bound to. YRange is inverted.
	XRange PixelSpan `json:"x_range" bson:"x_range"`
	YRange PixelSpan `json:"y_range" bson:"y_range"`
}

// FromContext converts a built chart context to its serialized form.
// insets reports, per position, whether the label area overlays the interior.
func FromContext(ctx *chart.Context, canvasWidth, canvasHeight int, caption string, insets [4]bool) Layout {
	l := Layout{
		Width:    canvasWidth,
		Height:   canvasHeight,
		Caption:  caption,
		Interior: FromRect(ctx.PlotRect()),
	}

	for _, pos := range chart.Positions {
		area := ctx.LabelArea(pos)
		if area == nil {
			continue
		}
		la := &LabelArea{Region: FromRect(area.Rect()), Inset: insets[pos]}
		switch pos {
		case chart.PositionTop:
			l.Top = la
		case chart.PositionBottom:
			l.Bottom = la
		case chart.PositionLeft:
			l.Left = la
		case chart.PositionRight:
			l.Right = la
		}
	}

	x := ctx.DrawingArea.Coord().PixelX()
	y := ctx.DrawingArea.Coord().PixelY()
	l.XRange = PixelSpan{Start: x.Start, End: x.End}
	l.YRange = PixelSpan{Start: y.Start, End: y.End}

	return l
}

// Label returns the label area at a position, or nil when absent.
func (l *Layout) Label(pos chart.Position) *LabelArea {
	switch pos {
	case chart.PositionTop:
		return l.Top
	case chart.PositionBottom:
		return l.Bottom
	case chart.PositionLeft:
		return l.Left
	case chart.PositionRight:
		return l.Right
	}
	return nil
}

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout.
// Validates that the layout carries an interior region and canvas dimensions.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must carry canvas dimensions")
	}
	if l.Interior == (Region{}) {
		return Layout{}, fmt.Errorf("layout must contain an interior region")
	}

	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
