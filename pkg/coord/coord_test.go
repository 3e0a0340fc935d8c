package coord

import (
	"testing"
	"time"
)

func TestLinearMap(t *testing.T) {
	l := Lin(0, 10)
	limit := PixelRange{Start: 0, End: 100}

	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{5, 50},
		{10, 100},
		{12, 120}, // extrapolates
		{-1, -10},
	}
	for _, tt := range tests {
		if got := l.Map(tt.v, limit); got != tt.want {
			t.Errorf("Map(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestLinearMapReversed(t *testing.T) {
	l := Lin(0, 10)
	limit := PixelRange{Start: 600, End: 0}

	if got := l.Map(0, limit); got != 600 {
		t.Errorf("Map(0) = %d, want 600", got)
	}
	if got := l.Map(10, limit); got != 0 {
		t.Errorf("Map(10) = %d, want 0", got)
	}
	if got := l.Map(5, limit); got != 300 {
		t.Errorf("Map(5) = %d, want 300", got)
	}
}

func TestLinearDegenerate(t *testing.T) {
	l := Lin(3, 3)
	if got := l.Map(7, PixelRange{Start: 10, End: 20}); got != 10 {
		t.Errorf("Map on empty domain = %d, want range start", got)
	}
}

func TestLogMap(t *testing.T) {
	l := NewLog(1, 1000, 10)
	limit := PixelRange{Start: 0, End: 300}

	tests := []struct {
		v    float64
		want int
	}{
		{1, 0},
		{10, 100},
		{100, 200},
		{1000, 300},
	}
	for _, tt := range tests {
		if got := l.Map(tt.v, limit); got != tt.want {
			t.Errorf("Map(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}

	// Non-positive values collapse to the range start.
	if got := l.Map(0, limit); got != 0 {
		t.Errorf("Map(0) = %d, want 0", got)
	}
	if got := l.Map(-5, limit); got != 0 {
		t.Errorf("Map(-5) = %d, want 0", got)
	}
}

func TestLogDefaultBase(t *testing.T) {
	l := NewLog(1, 100, 0) // base 0 means base 10
	if got := l.Map(10, PixelRange{Start: 0, End: 100}); got != 50 {
		t.Errorf("Map(10) = %d, want 50", got)
	}
}

func TestTimeRangeMap(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Hour)
	tr := NewTimeRange(start, end)
	limit := PixelRange{Start: 0, End: 100}

	if got := tr.MapTime(start, limit); got != 0 {
		t.Errorf("MapTime(start) = %d, want 0", got)
	}
	if got := tr.MapTime(end, limit); got != 100 {
		t.Errorf("MapTime(end) = %d, want 100", got)
	}
	if got := tr.MapTime(start.Add(5*time.Hour), limit); got != 50 {
		t.Errorf("MapTime(middle) = %d, want 50", got)
	}
}

func TestCategoriesMap(t *testing.T) {
	c := NewCategories("q1", "q2", "q3", "q4")
	limit := PixelRange{Start: 0, End: 400}

	// Slot centers.
	for i, want := range []int{50, 150, 250, 350} {
		if got := c.Map(float64(i), limit); got != want {
			t.Errorf("Map(%d) = %d, want %d", i, got, want)
		}
	}

	if idx, ok := c.Index("q3"); !ok || idx != 2 {
		t.Errorf("Index(q3) = %d, %v, want 2, true", idx, ok)
	}
	if _, ok := c.Index("q5"); ok {
		t.Error("Index(q5) should not be found")
	}
}

func TestCategoriesEmpty(t *testing.T) {
	c := NewCategories()
	if got := c.Map(0, PixelRange{Start: 7, End: 100}); got != 7 {
		t.Errorf("Map on empty categories = %d, want range start", got)
	}
}

func TestPixelRange(t *testing.T) {
	r := PixelRange{Start: 10, End: 110}
	if r.Span() != 100 {
		t.Errorf("Span() = %d, want 100", r.Span())
	}
	if r.Reversed() {
		t.Error("forward range reported reversed")
	}

	inv := PixelRange{Start: 110, End: 10}
	if inv.Span() != -100 {
		t.Errorf("Span() = %d, want -100", inv.Span())
	}
	if !inv.Reversed() {
		t.Error("reversed range not detected")
	}
}

func TestCartesianTranslate(t *testing.T) {
	cart := NewCartesian(
		Lin(0, 10), Lin(0, 100),
		PixelRange{Start: 60, End: 800},
		PixelRange{Start: 550, End: 0}, // inverted y
	)

	px, py := cart.Translate(0, 0)
	if px != 60 || py != 550 {
		t.Errorf("Translate(0,0) = (%d,%d), want (60,550)", px, py)
	}
	px, py = cart.Translate(10, 100)
	if px != 800 || py != 0 {
		t.Errorf("Translate(10,100) = (%d,%d), want (800,0)", px, py)
	}
	px, py = cart.Translate(5, 50)
	if px != 430 || py != 275 {
		t.Errorf("Translate(5,50) = (%d,%d), want (430,275)", px, py)
	}
}

func TestAsRangedRoundTrip(t *testing.T) {
	specs := []AsRanged{
		Lin(0, 1),
		NewLog(1, 10, 10),
		NewTimeRange(time.Unix(0, 0), time.Unix(3600, 0)),
		NewCategories("a", "b"),
	}
	for _, s := range specs {
		if s.IntoRanged() == nil {
			t.Errorf("%T.IntoRanged() = nil", s)
		}
	}
}
