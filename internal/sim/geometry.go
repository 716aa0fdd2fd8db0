package sim

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o intersect. Touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X+r.W < o.X ||
		o.X+o.W < r.X ||
		r.Y+r.H < o.Y ||
		o.Y+o.H < r.Y)
}

// ContainsPoint reports whether (x,y) lies inside r, edges included.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Clamp limits (x,y) to the rectangle.
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return clamp(x, r.X, r.X+r.W), clamp(y, r.Y, r.Y+r.H)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// boxAround returns the square of half-extent r centred on (x,y).
func boxAround(x, y, r float64) Rect {
	return Rect{X: x - r, Y: y - r, W: 2 * r, H: 2 * r}
}
