package coord

import "math"

// Log is a logarithmic axis over [Min, Max]. Min and Max must be positive;
// non-positive values map to the start of the pixel range.
type Log struct {
	Min, Max float64

	// Base is the logarithm base. Zero means base 10.
	Base float64
}

// NewLog creates a logarithmic axis spec with the given base.
func NewLog(min, max, base float64) Log {
	return Log{Min: min, Max: max, Base: base}
}

// Map implements Ranged.
func (l Log) Map(v float64, limit PixelRange) int {
	if v <= 0 || l.Min <= 0 || l.Max <= 0 || l.Min == l.Max {
		return limit.Start
	}
	base := l.Base
	if base == 0 {
		base = 10
	}
	lv := math.Log(v) / math.Log(base)
	lmin := math.Log(l.Min) / math.Log(base)
	lmax := math.Log(l.Max) / math.Log(base)
	return interpolate((lv-lmin)/(lmax-lmin), limit)
}

// Range implements Ranged.
func (l Log) Range() (float64, float64) {
	return l.Min, l.Max
}

// IntoRanged implements AsRanged.
func (l Log) IntoRanged() Ranged {
	return l
}
