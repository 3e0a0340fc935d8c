package drawing

// Rect is an axis-aligned pixel rectangle with a top-left origin.
// X and Y are the top-left corner; y increases downward.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// X1 returns the x-coordinate of the right edge (exclusive).
func (r Rect) X1() int {
	return r.X + r.Width
}

// Y1 returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Y1() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative extent on either axis.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsRect returns true if other is fully contained within this rectangle.
// An empty rectangle is contained in anything.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.X1() <= r.X1() && other.Y1() <= r.Y1()
}

// Shrink returns a new Rect inset by the given per-side amounts.
// Negative resulting extents are not clamped.
func (r Rect) Shrink(top, bottom, left, right int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
}
