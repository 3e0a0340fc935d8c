// Package spec loads chart specifications from TOML documents.
//
// A chart spec describes everything the layout engine needs: canvas size,
// margins, per-side label areas with overlay flags, an optional caption, and
// the two axis ranges. Example:
//
//	[canvas]
//	width = 800
//	height = 600
//
//	[margin]
//	all = 10
//
//	[caption]
//	text = "Monthly revenue"
//	size = 20
//
//	[labels.bottom]
//	size = 50
//
//	[labels.left]
//	size = 60
//
//	[x]
//	type = "linear"
//	min = 0
//	max = 12
//
//	[y]
//	type = "log"
//	min = 1
//	max = 1000
package spec

import (
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/coord"
	"github.com/matzehuels/chartframe/pkg/drawing"
	"github.com/matzehuels/chartframe/pkg/errors"
)

// Default canvas dimensions applied when the spec omits them.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Canvas holds the drawing surface dimensions.
type Canvas struct {
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
}

// Margin holds per-side pixel insets. All acts as the default for any side
// left unset; an explicit side value overrides it.
type Margin struct {
	All    int  `toml:"all" json:"all"`
	Top    *int `toml:"top" json:"top,omitempty"`
	Bottom *int `toml:"bottom" json:"bottom,omitempty"`
	Left   *int `toml:"left" json:"left,omitempty"`
	Right  *int `toml:"right" json:"right,omitempty"`
}

// side resolves one margin side.
func (m Margin) side(v *int) int {
	if v != nil {
		return *v
	}
	return m.All
}

// Sides returns the resolved top, bottom, left, right margins.
func (m Margin) Sides() (top, bottom, left, right int) {
	return m.side(m.Top), m.side(m.Bottom), m.side(m.Left), m.side(m.Right)
}

// Caption is the optional chart title.
type Caption struct {
	Text string `toml:"text" json:"text"`
	Size int    `toml:"size" json:"size,omitempty"`
	Font string `toml:"font" json:"font,omitempty"`
}

// Label configures one label area.
type Label struct {
	Size  int  `toml:"size" json:"size"`
	Inset bool `toml:"inset" json:"inset,omitempty"`
}

// Axis describes one coordinate range. Type selects which of the remaining
// fields apply: linear/log use Min/Max (log additionally Base), time uses
// Start/End (RFC 3339), category uses Values.
type Axis struct {
	Type   string   `toml:"type" json:"type"`
	Min    float64  `toml:"min" json:"min,omitempty"`
	Max    float64  `toml:"max" json:"max,omitempty"`
	Base   float64  `toml:"base" json:"base,omitempty"`
	Start  string   `toml:"start" json:"start,omitempty"`
	End    string   `toml:"end" json:"end,omitempty"`
	Values []string `toml:"values" json:"values,omitempty"`
}

// AsRanged converts the axis description into a coordinate-range spec.
func (a Axis) AsRanged() (coord.AsRanged, error) {
	switch a.Type {
	case "", "linear":
		return coord.Lin(a.Min, a.Max), nil
	case "log":
		if a.Min <= 0 || a.Max <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidAxis, "log axis bounds must be positive, got [%v, %v]", a.Min, a.Max)
		}
		return coord.NewLog(a.Min, a.Max, a.Base), nil
	case "time":
		start, err := time.Parse(time.RFC3339, a.Start)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidAxis, err, "parse time axis start %q", a.Start)
		}
		end, err := time.Parse(time.RFC3339, a.End)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidAxis, err, "parse time axis end %q", a.End)
		}
		return coord.NewTimeRange(start, end), nil
	case "category":
		if len(a.Values) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidAxis, "category axis requires values")
		}
		return coord.NewCategories(a.Values...), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidAxis, "invalid axis type: %q", a.Type)
}

// Spec is a complete chart specification.
type Spec struct {
	Canvas  Canvas           `toml:"canvas" json:"canvas"`
	Margin  Margin           `toml:"margin" json:"margin"`
	Caption *Caption         `toml:"caption" json:"caption,omitempty"`
	Labels  map[string]Label `toml:"labels" json:"labels,omitempty"`
	X       Axis             `toml:"x" json:"x"`
	Y       Axis             `toml:"y" json:"y"`
}

// Parse decodes and validates a TOML chart spec.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "parse chart spec")
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a TOML chart spec from a file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read spec %s", path)
	}
	return Parse(data)
}

// applyDefaults fills in canvas dimensions and axis types.
func (s *Spec) applyDefaults() {
	if s.Canvas.Width == 0 {
		s.Canvas.Width = DefaultWidth
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = DefaultHeight
	}
	if s.X.Type == "" {
		s.X.Type = "linear"
	}
	if s.Y.Type == "" {
		s.Y.Type = "linear"
	}
}

// Validate checks the spec for structural problems.
func (s *Spec) Validate() error {
	if err := errors.ValidateCanvasSize(s.Canvas.Width, s.Canvas.Height); err != nil {
		return err
	}

	top, bottom, left, right := s.Margin.Sides()
	for _, m := range []struct {
		side string
		size int
	}{{"top", top}, {"bottom", bottom}, {"left", left}, {"right", right}} {
		if err := errors.ValidateMargin(m.side, m.size); err != nil {
			return err
		}
	}

	for side := range s.Labels {
		if _, ok := chart.ParsePosition(side); !ok {
			return errors.New(errors.ErrCodeInvalidSpec, "invalid label side: %q (must be one of: top, bottom, left, right)", side)
		}
	}

	if s.Caption != nil {
		if err := errors.ValidateCaption(s.Caption.Text); err != nil {
			return err
		}
	}

	if err := errors.ValidateAxisType(s.X.Type); err != nil {
		return err
	}
	if err := errors.ValidateAxisType(s.Y.Type); err != nil {
		return err
	}
	if _, err := s.X.AsRanged(); err != nil {
		return err
	}
	if _, err := s.Y.AsRanged(); err != nil {
		return err
	}

	return nil
}

// Insets returns, per chart position, whether that label area is inset.
func (s *Spec) Insets() [4]bool {
	var insets [4]bool
	for side, label := range s.Labels {
		if pos, ok := chart.ParsePosition(side); ok {
			insets[pos] = label.Inset
		}
	}
	return insets
}

// Builder configures a chart builder on root according to the spec.
func (s *Spec) Builder(root *drawing.Area) *chart.Builder {
	b := chart.On(root)

	top, bottom, left, right := s.Margin.Sides()
	b.MarginTop(top).MarginBottom(bottom).MarginLeft(left).MarginRight(right)

	for side, label := range s.Labels {
		pos, ok := chart.ParsePosition(side)
		if !ok {
			continue
		}
		b.SetLabelAreaSize(pos, label.Size)
		if label.Inset {
			switch pos {
			case chart.PositionTop:
				b.InsetTopXLabels()
			case chart.PositionBottom:
				b.InsetXLabels()
			case chart.PositionLeft:
				b.InsetYLabels()
			case chart.PositionRight:
				b.InsetRightYLabels()
			}
		}
	}

	if s.Caption != nil {
		style := drawing.TextStyle{Font: s.Caption.Font, Size: s.Caption.Size}
		if style.Size == 0 {
			style.Size = drawing.DefaultTextStyle.Size
		}
		b.Caption(s.Caption.Text, style)
	}

	return b
}

// CaptionText returns the caption text, or empty when unset.
func (s *Spec) CaptionText() string {
	if s.Caption == nil {
		return ""
	}
	return s.Caption.Text
}

// CanonicalJSON returns a deterministic JSON encoding of the spec,
// suitable for content hashing in cache keys.
func (s *Spec) CanonicalJSON() ([]byte, error) {
	return json.Marshal(s)
}
