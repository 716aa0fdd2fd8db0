package sim

import (
	"image/color"
	"math"
	"math/rand"
)

// defaultExplosionColor is used when an impact has no profile colour.
var defaultExplosionColor = color.RGBA{R: 255, G: 136, B: 0, A: 255}

// Particle is a cosmetic spark thrown out by an impact.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // remaining ticks
	Color  color.RGBA
	Size   float64
}

// LifeFraction maps remaining life to [0,1] for alpha blending.
func (p *Particle) LifeFraction() float64 {
	return clamp(p.Life/particleMaxLife, 0, 1)
}

// Effects owns the particle store. Nothing in it affects the match outcome.
type Effects struct {
	particles []Particle
	rng       *rand.Rand
}

// NewEffects creates an empty store drawing randomness from rng.
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Explode throws count particles out from (x,y).
func (e *Effects) Explode(x, y float64, c color.RGBA, count int) {
	if c == (color.RGBA{}) {
		c = defaultExplosionColor
	}
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * math.Pi * 2
		speed := e.rng.Float64()*4 + 1
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  20 + e.rng.Float64()*20,
			Color: c,
			Size:  e.rng.Float64()*4 + 2,
		})
	}
}

// Update moves, ages and prunes particles.
func (e *Effects) Update() {
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	e.particles = kept
}

// Clear drops every particle.
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
}

// Particles returns the live particles. The slice is owned by the store.
func (e *Effects) Particles() []Particle {
	return e.particles
}

// Len is the number of live particles.
func (e *Effects) Len() int {
	return len(e.particles)
}
