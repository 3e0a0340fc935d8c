package coord

// Categories is a discrete axis. Each value occupies an equal slot of the
// pixel range, and domain values are slot indices mapped to slot centers.
type Categories struct {
	Values []string
}

// NewCategories creates a categorical axis spec.
func NewCategories(values ...string) Categories {
	return Categories{Values: values}
}

// Map implements Ranged. v is a slot index; fractional indices interpolate
// between slot centers.
func (c Categories) Map(v float64, limit PixelRange) int {
	n := len(c.Values)
	if n == 0 {
		return limit.Start
	}
	return interpolate((v+0.5)/float64(n), limit)
}

// Range implements Ranged.
func (c Categories) Range() (float64, float64) {
	return 0, float64(len(c.Values))
}

// Index returns the slot index of a category value.
func (c Categories) Index(value string) (int, bool) {
	for i, v := range c.Values {
		if v == value {
			return i, true
		}
	}
	return 0, false
}

// IntoRanged implements AsRanged.
func (c Categories) IntoRanged() Ranged {
	return c
}
