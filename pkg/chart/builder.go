package chart

import (
	"github.com/matzehuels/chartframe/pkg/coord"
	"github.com/matzehuels/chartframe/pkg/drawing"
)

// title holds the optional caption configuration.
type title struct {
	text  string
	style drawing.TextStyle
}

// Builder accumulates chart layout configuration and produces a [Context].
// All configuration methods mutate the builder and return it for chaining.
type Builder struct {
	labelAreaSize  [4]int  // indexed by Position
	labelAreaInset [4]bool // indexed by Position
	margin         [4]int  // top, bottom, left, right
	title          *title
	root           *drawing.Area
}

// On creates a builder bound to a root drawing area. The builder does not
// own the area; it reads dimensions and derives new regions from it.
func On(root *drawing.Area) *Builder {
	return &Builder{root: root}
}

// Margin sets all four margins to size.
func (b *Builder) Margin(size int) *Builder {
	b.margin = [4]int{size, size, size, size}
	return b
}

// MarginTop sets the top margin.
func (b *Builder) MarginTop(size int) *Builder {
	b.margin[0] = size
	return b
}

// MarginBottom sets the bottom margin.
func (b *Builder) MarginBottom(size int) *Builder {
	b.margin[1] = size
	return b
}

// MarginLeft sets the left margin.
func (b *Builder) MarginLeft(size int) *Builder {
	b.margin[2] = size
	return b
}

// MarginRight sets the right margin.
func (b *Builder) MarginRight(size int) *Builder {
	b.margin[3] = size
	return b
}

// XLabelAreaSize sets the height of the x label area below the plot.
// A size of 0 means the chart has no bottom label area.
func (b *Builder) XLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(PositionBottom, size)
}

// YLabelAreaSize sets the width of the y label area left of the plot.
// A size of 0 means the chart has no left label area.
func (b *Builder) YLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(PositionLeft, size)
}

// TopXLabelAreaSize sets the height of the x label area above the plot.
func (b *Builder) TopXLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(PositionTop, size)
}

// RightYLabelAreaSize sets the width of the y label area right of the plot.
func (b *Builder) RightYLabelAreaSize(size int) *Builder {
	return b.SetLabelAreaSize(PositionRight, size)
}

// SetLabelAreaSize sets the label area size for an arbitrary position.
// Later calls overwrite earlier ones for the same position.
func (b *Builder) SetLabelAreaSize(pos Position, size int) *Builder {
	b.labelAreaSize[pos] = size
	return b
}

// InsetXLabels overlays the bottom label area on the plot instead of
// carving space out of it.
func (b *Builder) InsetXLabels() *Builder {
	b.labelAreaInset[PositionBottom] = true
	return b
}

// InsetYLabels overlays the left label area on the plot.
func (b *Builder) InsetYLabels() *Builder {
	b.labelAreaInset[PositionLeft] = true
	return b
}

// InsetTopXLabels overlays the top label area on the plot.
func (b *Builder) InsetTopXLabels() *Builder {
	b.labelAreaInset[PositionTop] = true
	return b
}

// InsetRightYLabels overlays the right label area on the plot.
func (b *Builder) InsetRightYLabels() *Builder {
	b.labelAreaInset[PositionRight] = true
	return b
}

// Caption sets the chart title. Vertical space for the title is consumed
// after the margin is applied and before label splitting; it composes with
// the margin rather than replacing it.
func (b *Builder) Caption(text string, style drawing.TextStyle) *Builder {
	b.title = &title{text: text, style: style}
	return b
}

// Build executes the layout and binds the plot area to a two-axis coordinate
// system. The only failure path is title application: when the backend's
// text measurement fails, the wrapped cause is returned and nothing is
// partially committed.
func (b *Builder) Build(xSpec, ySpec coord.AsRanged) (*Context, error) {
	area := b.root.Clone()

	if b.margin[0] > 0 || b.margin[1] > 0 || b.margin[2] > 0 || b.margin[3] > 0 {
		area = area.Margin(b.margin[0], b.margin[1], b.margin[2], b.margin[3])
	}

	if b.title != nil {
		titled, err := area.Titled(b.title.text, b.title.style)
		if err != nil {
			return nil, err
		}
		area = titled
	}

	w, h := area.DimInPixel()

	// Interior edge coordinates: top, bottom, left, right. Each non-inset
	// label area moves its edge inward by its size. The sign flip keeps a
	// single addition per edge: Top and Left point toward negative axis
	// growth, so their split point is +size; Bottom and Right get -size.
	// Negative sizes therefore shift edges outward; that historical mapping
	// is kept for compatibility (see TestBuilderNegativeLabelSize).
	bounds := [4]int{0, h, 0, w}
	for i, d := range outward {
		if b.labelAreaInset[i] {
			continue
		}
		if d.dx+d.dy < 0 {
			bounds[i] += b.labelAreaSize[i]
		} else {
			bounds[i] -= b.labelAreaSize[i]
		}
	}

	cells := area.SplitByBreakpoints(
		[]int{bounds[2], bounds[3]},
		[]int{bounds[0], bounds[1]},
	)
	interior := cells[4]

	// Edge bands adjacent to the interior, in Position order. A band with a
	// zero extent on either axis is treated as absent.
	var labelAreas [4]*drawing.Area
	for pos, src := range [4]int{1, 7, 3, 5} {
		if cw, ch := cells[src].DimInPixel(); cw > 0 && ch > 0 {
			labelAreas[pos] = cells[src]
		}
	}

	// Inset label areas overlay the interior; the interior itself stays
	// untouched, and corner overlap between insets is permitted.
	for i, inset := range b.labelAreaInset {
		size := b.labelAreaSize[i]
		if !inset || size == 0 {
			continue
		}
		switch Position(i) {
		case PositionTop:
			labelAreas[i] = interior.TopStrip(size)
		case PositionBottom:
			labelAreas[i] = interior.BottomStrip(size)
		case PositionLeft:
			labelAreas[i] = interior.LeftStrip(size)
		case PositionRight:
			labelAreas[i] = interior.RightStrip(size)
		}
	}

	pixelX, pixelY := interior.GetPixelRange()
	// Invert y: increasing domain values map to decreasing pixel rows.
	pixelY = coord.PixelRange{Start: pixelY.End, End: pixelY.Start}

	return &Context{
		XLabelArea: [2]*drawing.Area{labelAreas[PositionTop], labelAreas[PositionBottom]},
		YLabelArea: [2]*drawing.Area{labelAreas[PositionLeft], labelAreas[PositionRight]},
		DrawingArea: interior.ApplyCoordSpec(coord.NewCartesian(
			xSpec.IntoRanged(), ySpec.IntoRanged(), pixelX, pixelY,
		)),
		SeriesAnno: []SeriesAnno{},
	}, nil
}
