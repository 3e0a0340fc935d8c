package chart

// Position identifies one side of the plot area. It indexes every per-side
// array in this package.
type Position int

// The four label area positions.
const (
	PositionTop Position = iota
	PositionBottom
	PositionLeft
	PositionRight
)

// Positions lists all positions in index order.
var Positions = [4]Position{PositionTop, PositionBottom, PositionLeft, PositionRight}

// outward is the outward direction vector of each position, in storage
// coordinates (y increasing downward).
var outward = [4]struct{ dx, dy int }{
	PositionTop:    {0, -1},
	PositionBottom: {0, 1},
	PositionLeft:   {-1, 0},
	PositionRight:  {1, 0},
}

// String returns the lowercase side name.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	}
	return "unknown"
}

// ParsePosition converts a side name to a Position.
func ParsePosition(s string) (Position, bool) {
	switch s {
	case "top":
		return PositionTop, true
	case "bottom":
		return PositionBottom, true
	case "left":
		return PositionLeft, true
	case "right":
		return PositionRight, true
	}
	return 0, false
}
