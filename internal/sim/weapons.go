package sim

import "image/color"

// WeaponProfile is the damage and visual profile of a projectile.
type WeaponProfile struct {
	Name   string
	Color  color.RGBA
	Speed  float64 // units per tick
	Damage float64
	Radius float64 // collision half-extent and draw radius
}

// Arsenal is the ordered weapon sequence. Rounds cycle through it.
type Arsenal []WeaponProfile

// DefaultArsenal returns the three stock profiles.
func DefaultArsenal() Arsenal {
	return Arsenal{
		{Name: "Bullet", Color: color.RGBA{R: 255, G: 255, B: 0, A: 255}, Speed: 8, Damage: 8, Radius: 6},
		{Name: "Fireball", Color: color.RGBA{R: 255, G: 136, B: 0, A: 255}, Speed: 5, Damage: 6, Radius: 8},
		{Name: "Snowball", Color: color.RGBA{R: 136, G: 255, B: 255, A: 255}, Speed: 6, Damage: 5, Radius: 7},
	}
}

// Index returns the sequence position used for the given 1-based round.
func (a Arsenal) Index(round int) int {
	if len(a) == 0 {
		return 0
	}
	if round < 1 {
		round = 1
	}
	return (round - 1) % len(a)
}

// ForRound returns the active profile for the given 1-based round.
func (a Arsenal) ForRound(round int) WeaponProfile {
	if len(a) == 0 {
		return WeaponProfile{}
	}
	return a[a.Index(round)]
}
