// Package coord provides ranged coordinate systems for chart plot areas.
//
// A ranged coordinate is a bidirectional mapping between a domain value range
// and a pixel-coordinate range. The package ships linear, logarithmic,
// time-based, and categorical variants, all implementing [Ranged], plus
// [Cartesian2D], which combines two ranged axes with the pixel ranges of a
// plot region.
//
// Pixel ranges are half-open and may be reversed: a chart's y axis maps
// increasing domain values to decreasing pixel rows, so its pixel range runs
// from the bottom edge to the top edge.
package coord

import "math"

// PixelRange is a half-open pixel interval [Start, End).
// Start > End describes a reversed (inverted) axis.
type PixelRange struct {
	Start int
	End   int
}

// Span returns End - Start. Negative for reversed ranges.
func (r PixelRange) Span() int {
	return r.End - r.Start
}

// Reversed returns true if the range runs backwards in storage order.
func (r PixelRange) Reversed() bool {
	return r.End < r.Start
}

// Ranged maps domain values onto a pixel range.
type Ranged interface {
	// Map converts a domain value to a pixel coordinate within limit.
	// Values outside the domain range extrapolate.
	Map(v float64, limit PixelRange) int

	// Range returns the domain bounds of the axis.
	Range() (min, max float64)
}

// AsRanged is the capability of being converted into a ranged coordinate.
// Axis specifications passed to the chart builder implement it; the concrete
// types in this package return themselves.
type AsRanged interface {
	IntoRanged() Ranged
}

// interpolate maps a normalized position t in [0,1] onto limit.
// Works for reversed ranges since the span is signed.
func interpolate(t float64, limit PixelRange) int {
	return limit.Start + int(math.Round(t*float64(limit.Span())))
}
