package coord

import "time"

// TimeRange is a date/time axis between Start and End. Domain values are
// Unix timestamps in seconds (fractional seconds allowed); MapTime accepts
// time.Time directly.
type TimeRange struct {
	Start, End time.Time
}

// NewTimeRange creates a time axis spec.
func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

// Map implements Ranged. v is a Unix timestamp in seconds.
func (t TimeRange) Map(v float64, limit PixelRange) int {
	min, max := t.Range()
	if max == min {
		return limit.Start
	}
	return interpolate((v-min)/(max-min), limit)
}

// MapTime maps a time.Time to a pixel coordinate within limit.
func (t TimeRange) MapTime(v time.Time, limit PixelRange) int {
	return t.Map(unixSeconds(v), limit)
}

// Range implements Ranged. Bounds are Unix timestamps in seconds.
func (t TimeRange) Range() (float64, float64) {
	return unixSeconds(t.Start), unixSeconds(t.End)
}

// IntoRanged implements AsRanged.
func (t TimeRange) IntoRanged() Ranged {
	return t
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
