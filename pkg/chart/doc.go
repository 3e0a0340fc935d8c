// Package chart partitions a drawing canvas into a plot area and per-side
// label areas, and binds the plot area to a two-axis coordinate system.
//
// # Usage
//
// Configure a [Builder] with chained calls, then build:
//
//	root := drawing.NewArea(nil, 800, 600)
//	ctx, err := chart.On(root).
//	    Margin(10).
//	    Caption("Monthly revenue", drawing.TextStyle{Size: 20}).
//	    XLabelAreaSize(50).
//	    YLabelAreaSize(60).
//	    Build(coord.Lin(0, 12), coord.Lin(0, 1000))
//	if err != nil {
//	    return err
//	}
//	px, py := ctx.DrawingArea.Translate(6, 500)
//
// # Layout model
//
// The canvas is reduced by the margin, then by the title band, and the rest
// is split into a 3×3 grid: four edge bands for tick labels and axis titles
// around a central plot area. A label area can instead be flagged inset, in
// which case it overlays the plot area rather than carving space out of it.
//
// The builder has exactly one logical owner and is consumed by Build; it is
// not safe for concurrent mutation and is not reused afterwards.
package chart
