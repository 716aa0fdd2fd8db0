package sim

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestExplode_SpawnsParticles(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(3))) // #nosec G404 -- test
	c := color.RGBA{R: 136, G: 255, B: 255, A: 255}
	e.Explode(100, 200, c, 15)
	if e.Len() != 15 {
		t.Fatalf("expected 15 particles, got %d", e.Len())
	}
	for _, p := range e.Particles() {
		if p.X != 100 || p.Y != 200 {
			t.Fatalf("particle should start at the impact point, got (%.1f,%.1f)", p.X, p.Y)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 1-1e-9 || speed > 5+1e-9 {
			t.Fatalf("particle speed out of range: %.3f", speed)
		}
		if p.Life < 20 || p.Life >= 40 {
			t.Fatalf("particle life out of range: %.2f", p.Life)
		}
		if p.Size < 2 || p.Size >= 6 {
			t.Fatalf("particle size out of range: %.2f", p.Size)
		}
		if p.Color != c {
			t.Fatalf("particle colour should match the impact, got %+v", p.Color)
		}
	}
}

func TestExplode_DefaultColour(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(3))) // #nosec G404 -- test
	e.Explode(0, 0, color.RGBA{}, 1)
	if got := e.Particles()[0].Color; got != defaultExplosionColor {
		t.Fatalf("expected default orange, got %+v", got)
	}
}

func TestEffectsUpdate_DecaysAndPrunes(t *testing.T) {
	e := NewEffects(rand.New(rand.NewSource(3))) // #nosec G404 -- test
	e.Explode(100, 100, color.RGBA{R: 1, A: 255}, 15)

	e.Update()
	if e.Len() != 15 {
		t.Fatalf("no particle should expire after one tick, got %d", e.Len())
	}
	for i := 0; i < 40; i++ {
		e.Update()
	}
	if e.Len() != 0 {
		t.Fatalf("all particles should expire within 40 ticks, %d left", e.Len())
	}
}

func TestParticleLifeFraction(t *testing.T) {
	p := Particle{Life: 20}
	if p.LifeFraction() != 0.5 {
		t.Fatalf("expected 0.5, got %.2f", p.LifeFraction())
	}
	p.Life = 80
	if p.LifeFraction() != 1 {
		t.Fatalf("fraction should cap at 1, got %.2f", p.LifeFraction())
	}
}
