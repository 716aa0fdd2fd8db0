package sim

import (
	"image/color"
	"time"
)

// TankView is the read-only presentation of a tank.
type TankView struct {
	Side          Side
	X, Y          float64
	Width, Height float64
	Facing        Facing
	Health        float64
	MaxHealth     float64
}

// HealthFraction is health over max, in [0,1].
func (v TankView) HealthFraction() float64 {
	if v.MaxHealth <= 0 {
		return 0
	}
	return clamp(v.Health/v.MaxHealth, 0, 1)
}

// ProjectileView is the read-only presentation of a projectile.
type ProjectileView struct {
	X, Y    float64
	Radius  float64
	Color   color.RGBA
	Special bool
	Owner   Side
}

// ParticleView is the read-only presentation of a particle.
type ParticleView struct {
	X, Y         float64
	Size         float64
	Color        color.RGBA
	LifeFraction float64
}

// Snapshot is everything a presentation layer needs for one frame. It shares
// no memory with the match.
type Snapshot struct {
	MatchID  string
	Phase    Phase
	Running  bool
	GameOver bool
	Tick     int

	Round          int
	MaxRounds      int
	Endless        bool
	Difficulty     int
	Weapon         string
	RoundRemaining time.Duration

	ArenaWidth  float64
	ArenaHeight float64

	Player *TankView // nil before the first match
	AI     *TankView

	Projectiles []ProjectileView
	Particles   []ParticleView

	Outcome *Outcome // set once the match has resolved
}

func viewOf(t *Tank) *TankView {
	if t == nil {
		return nil
	}
	return &TankView{
		Side:      t.Side,
		X:         t.X,
		Y:         t.Y,
		Width:     t.Width,
		Height:    t.Height,
		Facing:    t.Facing,
		Health:    t.Health,
		MaxHealth: t.MaxHealth,
	}
}

// Snapshot captures the current state at now.
func (m *Match) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		MatchID:        m.id,
		Phase:          m.phase,
		Running:        m.phase == PhaseRunning,
		GameOver:       m.phase == PhaseGameOver,
		Tick:           m.tick,
		Round:          m.round,
		MaxRounds:      m.maxRounds,
		Endless:        m.Endless(),
		Difficulty:     m.difficulty,
		RoundRemaining: m.RoundRemaining(now),
		ArenaWidth:     m.cfg.ArenaWidth,
		ArenaHeight:    m.cfg.ArenaHeight,
		Player:         viewOf(m.player),
		AI:             viewOf(m.ai),
	}
	if m.round > 0 {
		s.Weapon = m.cfg.Weapons.ForRound(m.round).Name
	}

	if len(m.projectiles) > 0 {
		s.Projectiles = make([]ProjectileView, len(m.projectiles))
		for i, p := range m.projectiles {
			s.Projectiles[i] = ProjectileView{
				X:       p.X,
				Y:       p.Y,
				Radius:  p.Radius,
				Color:   p.Weapon.Color,
				Special: p.Special,
				Owner:   p.Owner,
			}
		}
	}

	if parts := m.effects.Particles(); len(parts) > 0 {
		s.Particles = make([]ParticleView, len(parts))
		for i := range parts {
			p := &parts[i]
			s.Particles[i] = ParticleView{
				X:            p.X,
				Y:            p.Y,
				Size:         p.Size,
				Color:        p.Color,
				LifeFraction: p.LifeFraction(),
			}
		}
	}

	if m.outcome != nil {
		o := *m.outcome
		s.Outcome = &o
	}
	return s
}
