package sim

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 30, H: 30}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"inside", Rect{X: 110, Y: 110, W: 5, H: 5}, true},
		{"partial", Rect{X: 125, Y: 95, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 130, Y: 110, W: 5, H: 5}, true},
		{"touching bottom edge", Rect{X: 110, Y: 130, W: 5, H: 5}, true},
		{"left of", Rect{X: 80, Y: 110, W: 10, H: 10}, false},
		{"above", Rect{X: 110, Y: 80, W: 10, H: 10}, false},
		{"diagonal miss", Rect{X: 131, Y: 131, W: 10, H: 10}, false},
		{"enclosing", Rect{X: 0, Y: 0, W: 500, H: 500}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.o); got != tt.want {
				t.Fatalf("Overlaps(%+v) = %v, want %v", tt.o, got, tt.want)
			}
			if got := tt.o.Overlaps(base); got != tt.want {
				t.Fatalf("overlap should be symmetric for %+v", tt.o)
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	arena := Rect{W: 800, H: 600}
	if !arena.ContainsPoint(0, 0) || !arena.ContainsPoint(800, 600) {
		t.Fatal("arena edges should count as inside")
	}
	if arena.ContainsPoint(-0.1, 10) || arena.ContainsPoint(10, 600.1) {
		t.Fatal("points past the edge should be outside")
	}
}

func TestRectClamp(t *testing.T) {
	r := Rect{X: 50, Y: 50, W: 670, H: 470}
	x, y := r.Clamp(-20, 900)
	if x != 50 || y != 520 {
		t.Fatalf("expected (50,520), got (%.1f,%.1f)", x, y)
	}
	x, y = r.Clamp(300, 200)
	if x != 300 || y != 200 {
		t.Fatalf("in-bounds point should be unchanged, got (%.1f,%.1f)", x, y)
	}
}

func TestBoxAround(t *testing.T) {
	b := boxAround(10, 20, 6)
	if b.X != 4 || b.Y != 14 || b.W != 12 || b.H != 12 {
		t.Fatalf("unexpected box %+v", b)
	}
}
