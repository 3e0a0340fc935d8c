// Package drawing provides the pixel-region abstraction the layout engine
// operates on.
//
// An [Area] is an independently owned rectangular region of a canvas. Every
// derivation (margin, title, split, edge strip) returns a new Area; nothing
// is mutated in place, so intermediate regions can be held freely. The only
// fallible operation is [Area.Titled], which consults the [Backend] for text
// measurement.
package drawing

import (
	"github.com/matzehuels/chartframe/pkg/coord"
	"github.com/matzehuels/chartframe/pkg/errors"
)

// titlePadding is the vertical gap in pixels between the title text and the
// region below it.
const titlePadding = 5

// Area is a rectangular drawing region backed by a Backend.
type Area struct {
	rect    Rect
	backend Backend
}

// NewArea creates an area covering a width×height canvas at origin (0,0).
// A nil backend falls back to the NullBackend.
func NewArea(backend Backend, width, height int) *Area {
	if backend == nil {
		backend = NewNullBackend()
	}
	return &Area{rect: NewRect(0, 0, width, height), backend: backend}
}

// Rect returns the absolute pixel rectangle of the area.
func (a *Area) Rect() Rect {
	return a.rect
}

// Backend returns the backend this area derives from.
func (a *Area) Backend() Backend {
	return a.backend
}

// Clone returns an independent copy of the area.
func (a *Area) Clone() *Area {
	c := *a
	return &c
}

// DimInPixel returns the width and height of the area in pixels.
func (a *Area) DimInPixel() (width, height int) {
	return a.rect.Width, a.rect.Height
}

// Margin returns a new area inset by the given per-side pixel amounts.
func (a *Area) Margin(top, bottom, left, right int) *Area {
	return a.derive(a.rect.Shrink(top, bottom, left, right))
}

// Titled reserves vertical space at the top of the area for a title and
// returns the remaining region. The title text itself is rendered by the
// backend, not here. Returns a BACKEND_ERROR when text measurement fails.
func (a *Area) Titled(text string, style TextStyle) (*Area, error) {
	_, h, err := a.backend.EstimateTextExtent(text, style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBackend, err, "apply title %q", text)
	}
	return a.derive(a.rect.Shrink(h+titlePadding, 0, 0, 0)), nil
}

// SplitByBreakpoints splits the area into a grid using breakpoint offsets
// relative to the area origin. With m x-breakpoints and n y-breakpoints the
// result has (m+1)*(n+1) cells in row-major order. Breakpoints are taken as
// given: out-of-range values produce degenerate or out-of-bounds cells, which
// callers are expected to discard.
func (a *Area) SplitByBreakpoints(xBreakpoints, yBreakpoints []int) []*Area {
	xs := boundaries(xBreakpoints, a.rect.Width)
	ys := boundaries(yBreakpoints, a.rect.Height)

	cells := make([]*Area, 0, (len(xs)-1)*(len(ys)-1))
	for yi := 0; yi+1 < len(ys); yi++ {
		for xi := 0; xi+1 < len(xs); xi++ {
			cells = append(cells, a.derive(Rect{
				X:      a.rect.X + xs[xi],
				Y:      a.rect.Y + ys[yi],
				Width:  xs[xi+1] - xs[xi],
				Height: ys[yi+1] - ys[yi],
			}))
		}
	}
	return cells
}

// TopStrip returns the strip of the given thickness flush against the top
// edge of the area, spanning its full width.
func (a *Area) TopStrip(thickness int) *Area {
	return a.derive(Rect{X: a.rect.X, Y: a.rect.Y, Width: a.rect.Width, Height: thickness})
}

// BottomStrip returns the strip of the given thickness flush against the
// bottom edge of the area, spanning its full width.
func (a *Area) BottomStrip(thickness int) *Area {
	return a.derive(Rect{X: a.rect.X, Y: a.rect.Y1() - thickness, Width: a.rect.Width, Height: thickness})
}

// LeftStrip returns the strip of the given thickness flush against the left
// edge of the area, spanning its full height.
func (a *Area) LeftStrip(thickness int) *Area {
	return a.derive(Rect{X: a.rect.X, Y: a.rect.Y, Width: thickness, Height: a.rect.Height})
}

// RightStrip returns the strip of the given thickness flush against the
// right edge of the area, spanning its full height.
func (a *Area) RightStrip(thickness int) *Area {
	return a.derive(Rect{X: a.rect.X1() - thickness, Y: a.rect.Y, Width: thickness, Height: a.rect.Height})
}

// GetPixelRange returns the half-open pixel ranges of the area on both axes,
// in storage order (y increasing downward).
func (a *Area) GetPixelRange() (x, y coord.PixelRange) {
	return coord.PixelRange{Start: a.rect.X, End: a.rect.X1()},
		coord.PixelRange{Start: a.rect.Y, End: a.rect.Y1()}
}

// ApplyCoordSpec binds the area to a two-dimensional coordinate system.
func (a *Area) ApplyCoordSpec(c *coord.Cartesian2D) *BoundArea {
	return &BoundArea{rect: a.rect, backend: a.backend, coord: c}
}

// derive creates a new area with the same backend and a different rectangle.
func (a *Area) derive(r Rect) *Area {
	return &Area{rect: r, backend: a.backend}
}

// boundaries assembles cell boundaries from breakpoints: 0, the breakpoints
// in order, then the full extent.
func boundaries(breakpoints []int, extent int) []int {
	b := make([]int, 0, len(breakpoints)+2)
	b = append(b, 0)
	b = append(b, breakpoints...)
	b = append(b, extent)
	return b
}

// BoundArea is a drawing region bound to a coordinate system. Domain values
// translate to pixel positions inside the region.
type BoundArea struct {
	rect    Rect
	backend Backend
	coord   *coord.Cartesian2D
}

// Rect returns the absolute pixel rectangle of the bound region.
func (a *BoundArea) Rect() Rect {
	return a.rect
}

// Coord returns the coordinate system the region is bound to.
func (a *BoundArea) Coord() *coord.Cartesian2D {
	return a.coord
}

// Translate maps a domain point to absolute pixel coordinates.
func (a *BoundArea) Translate(x, y float64) (px, py int) {
	return a.coord.Translate(x, y)
}
