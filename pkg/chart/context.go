package chart

import "github.com/matzehuels/chartframe/pkg/drawing"

// SeriesAnno is an annotation entry for one drawn series. Entries are
// appended by series-drawing code after the chart is built.
type SeriesAnno struct {
	Label string
}

// Context is the result of a chart build: the plot area bound to its
// coordinate system plus the optional label areas around it.
type Context struct {
	// XLabelArea holds the top (index 0) and bottom (index 1) label areas.
	// Absent areas are nil.
	XLabelArea [2]*drawing.Area

	// YLabelArea holds the left (index 0) and right (index 1) label areas.
	// Absent areas are nil.
	YLabelArea [2]*drawing.Area

	// DrawingArea is the plot region bound to the chart's coordinate system.
	DrawingArea *drawing.BoundArea

	// SeriesAnno collects series annotations in draw order. Empty at
	// construction.
	SeriesAnno []SeriesAnno
}

// LabelArea returns the label area at a position, or nil when absent.
func (c *Context) LabelArea(pos Position) *drawing.Area {
	switch pos {
	case PositionTop:
		return c.XLabelArea[0]
	case PositionBottom:
		return c.XLabelArea[1]
	case PositionLeft:
		return c.YLabelArea[0]
	case PositionRight:
		return c.YLabelArea[1]
	}
	return nil
}

// PlotRect returns the pixel rectangle of the plot area.
func (c *Context) PlotRect() drawing.Rect {
	return c.DrawingArea.Rect()
}

// AnnotateSeries appends a series annotation and returns its index.
func (c *Context) AnnotateSeries(label string) int {
	c.SeriesAnno = append(c.SeriesAnno, SeriesAnno{Label: label})
	return len(c.SeriesAnno) - 1
}
