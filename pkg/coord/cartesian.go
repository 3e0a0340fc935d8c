package coord

// Cartesian2D is a two-dimensional ranged coordinate system: two ranged axes
// combined with the pixel ranges of a plot region. The y pixel range is
// normally reversed, matching a bottom-up plotting convention over top-down
// pixel storage.
type Cartesian2D struct {
	x, y   Ranged
	pixelX PixelRange
	pixelY PixelRange
}

// NewCartesian combines two ranged axes with a pixel-range pair.
func NewCartesian(x, y Ranged, pixelX, pixelY PixelRange) *Cartesian2D {
	return &Cartesian2D{x: x, y: y, pixelX: pixelX, pixelY: pixelY}
}

// Translate maps a domain point to pixel coordinates.
func (c *Cartesian2D) Translate(x, y float64) (px, py int) {
	return c.x.Map(x, c.pixelX), c.y.Map(y, c.pixelY)
}

// X returns the x axis.
func (c *Cartesian2D) X() Ranged { return c.x }

// Y returns the y axis.
func (c *Cartesian2D) Y() Ranged { return c.y }

// PixelX returns the x pixel range.
func (c *Cartesian2D) PixelX() PixelRange { return c.pixelX }

// PixelY returns the y pixel range.
func (c *Cartesian2D) PixelY() PixelRange { return c.pixelY }
