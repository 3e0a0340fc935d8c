package drawing

// TextStyle describes how title and label text would be rendered.
// The layout engine only uses it for extent estimation; actual rendering,
// font resolution, and styling live in the backend.
type TextStyle struct {
	// Font is the font family name. Interpretation is backend-specific.
	Font string

	// Size is the nominal glyph height in pixels.
	Size int
}

// DefaultTextStyle is used when a caller supplies a zero TextStyle.
var DefaultTextStyle = TextStyle{Font: "sans-serif", Size: 16}

// Backend abstracts the canvas capabilities the layout engine depends on.
// This engine never rasterizes; the only capability it needs from a real
// drawing backend is text measurement for title space reservation.
type Backend interface {
	// EstimateTextExtent returns the pixel width and height that rendering
	// text with the given style would occupy.
	EstimateTextExtent(text string, style TextStyle) (width, height int, err error)
}

// NullBackend is a Backend that estimates text extents from the style alone,
// without any font machinery. Width is a fixed fraction of the glyph height
// per rune, which is stable across platforms and good enough for layout.
type NullBackend struct{}

// NewNullBackend creates a null backend.
func NewNullBackend() Backend {
	return &NullBackend{}
}

// EstimateTextExtent implements Backend.
func (b *NullBackend) EstimateTextExtent(text string, style TextStyle) (int, int, error) {
	if style.Size <= 0 {
		style.Size = DefaultTextStyle.Size
	}
	runes := 0
	for range text {
		runes++
	}
	// Approximate advance width of 3/5 em per glyph.
	return runes * style.Size * 3 / 5, style.Size, nil
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)
