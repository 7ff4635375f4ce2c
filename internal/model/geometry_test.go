package model

import "testing"

func TestToRelativeToAbsolute_RoundTrip(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 100, Y: 250},
		{X: -50, Y: 30},
		{X: 3840, Y: 2160},
	}
	origins := []Point{
		{X: 0, Y: 0},
		{X: 120, Y: 45},
		{X: -1920, Y: 0},
		{X: 7, Y: 99999},
	}

	for _, p := range points {
		for _, o := range origins {
			if got := ToAbsolute(ToRelative(p, o), o); got != p {
				t.Errorf("ToAbsolute(ToRelative(%v, %v), %v): expected %v, got %v", p, o, o, p, got)
			}
			if got := ToRelative(ToAbsolute(p, o), o); got != p {
				t.Errorf("ToRelative(ToAbsolute(%v, %v), %v): expected %v, got %v", p, o, o, p, got)
			}
		}
	}
}

func TestToRelative(t *testing.T) {
	got := ToRelative(Point{X: 150, Y: 200}, Point{X: 100, Y: 50})
	want := Point{X: 50, Y: 150}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestToAbsolute(t *testing.T) {
	got := ToAbsolute(Point{X: 50, Y: 150}, Point{X: 100, Y: 50})
	want := Point{X: 150, Y: 200}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWindowOrigin(t *testing.T) {
	w := Window{Bounds: [4]int{120, 45, 800, 600}}
	if got := w.Origin(); got != (Point{X: 120, Y: 45}) {
		t.Errorf("expected origin (120,45), got %v", got)
	}
}
