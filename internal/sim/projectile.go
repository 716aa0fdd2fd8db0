package sim

// Projectile is a round in flight.
type Projectile struct {
	X, Y    float64
	VX, VY  float64
	Weapon  WeaponProfile
	Owner   Side
	Radius  float64
	Special bool // fired with a profile other than the arsenal's first
}

// Box is the projectile's collision square, position ± radius.
func (p *Projectile) Box() Rect {
	return boxAround(p.X, p.Y, p.Radius)
}

// Advance integrates one tick of velocity.
func (p *Projectile) Advance() {
	p.X += p.VX
	p.Y += p.VY
}

// OutOfBounds reports whether the projectile has left the arena.
func (p *Projectile) OutOfBounds(arena Rect) bool {
	return !arena.ContainsPoint(p.X, p.Y)
}
