package coord

// Linear is a linear axis over [Min, Max].
type Linear struct {
	Min, Max float64
}

// Lin creates a linear axis spec.
func Lin(min, max float64) Linear {
	return Linear{Min: min, Max: max}
}

// Map implements Ranged.
func (l Linear) Map(v float64, limit PixelRange) int {
	if l.Max == l.Min {
		return limit.Start
	}
	return interpolate((v-l.Min)/(l.Max-l.Min), limit)
}

// Range implements Ranged.
func (l Linear) Range() (float64, float64) {
	return l.Min, l.Max
}

// IntoRanged implements AsRanged.
func (l Linear) IntoRanged() Ranged {
	return l
}
