package sim

import "time"

// Side identifies which combatant owns a tank or projectile.
type Side int

const (
	SidePlayer Side = iota // human-controlled
	SideAI                 // computer-controlled
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Label is the short tag used in log lines.
func (s Side) Label() string {
	if s == SidePlayer {
		return "P"
	}
	return "AI"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

// Facing is one of the four barrel directions.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
	FacingUp
	FacingDown
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	default:
		return "unknown"
	}
}

// Vector returns the unit direction of the facing.
func (f Facing) Vector() (float64, float64) {
	switch f {
	case FacingLeft:
		return -1, 0
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	default:
		return 1, 0
	}
}

// Tank is one combatant.
type Tank struct {
	Side      Side
	X, Y      float64 // top-left corner
	Width     float64
	Height    float64
	Health    float64
	MaxHealth float64
	Facing    Facing
	Speed     float64
	LastShot  time.Time

	cooldown time.Duration
	barrel   float64
	bounds   Rect
}

// NewTank creates a full-health tank at (x,y), facing right, sized and
// bounded by cfg.
func NewTank(side Side, x, y float64, cfg Config) *Tank {
	cfg = cfg.normalized()
	t := &Tank{
		Side:      side,
		Width:     cfg.TankSize,
		Height:    cfg.TankSize,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Facing:    FacingRight,
		Speed:     cfg.TankSpeed,
		cooldown:  cfg.FireCooldown,
		barrel:    cfg.BarrelLength,
		bounds:    cfg.movementBounds(),
	}
	t.X, t.Y = t.bounds.Clamp(x, y)
	return t
}

// Box is the tank's collision rectangle.
func (t *Tank) Box() Rect {
	return Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// Center returns the middle of the tank.
func (t *Tank) Center() (float64, float64) {
	return t.X + t.Width/2, t.Y + t.Height/2
}

// Move shifts the tank by (dx,dy), clamps it into the movement rectangle and
// updates facing from the requested delta. Horizontal input wins when both
// axes are nonzero; a zero delta leaves facing alone.
func (t *Tank) Move(dx, dy float64) {
	t.X, t.Y = t.bounds.Clamp(t.X+dx, t.Y+dy)

	switch {
	case dx > 0:
		t.Facing = FacingRight
	case dx < 0:
		t.Facing = FacingLeft
	case dy > 0:
		t.Facing = FacingDown
	case dy < 0:
		t.Facing = FacingUp
	}
}

// CanFire reports whether the fire cooldown has elapsed at now.
func (t *Tank) CanFire(now time.Time) bool {
	return now.Sub(t.LastShot) >= t.cooldown
}

// SinceLastShot is the time elapsed since the last accepted shot.
func (t *Tank) SinceLastShot(now time.Time) time.Duration {
	return now.Sub(t.LastShot)
}

// Shoot fires w along the current facing. It returns false, creating nothing,
// while the cooldown is still running.
func (t *Tank) Shoot(now time.Time, w WeaponProfile) (Projectile, bool) {
	if !t.CanFire(now) {
		return Projectile{}, false
	}
	t.LastShot = now

	fx, fy := t.Facing.Vector()
	cx, cy := t.Center()
	return Projectile{
		X:      cx + fx*t.barrel,
		Y:      cy + fy*t.barrel,
		VX:     fx * w.Speed,
		VY:     fy * w.Speed,
		Weapon: w,
		Owner:  t.Side,
		Radius: w.Radius,
	}, true
}

// TakeDamage subtracts dmg, clamping health to [0, MaxHealth], and reports
// whether the tank is destroyed.
func (t *Tank) TakeDamage(dmg float64) bool {
	t.Health = clamp(t.Health-dmg, 0, t.MaxHealth)
	return t.Health <= 0
}

// Destroyed reports whether health has reached zero.
func (t *Tank) Destroyed() bool {
	return t.Health <= 0
}

// Respawn moves the tank to (x,y) inside its bounds with full health.
func (t *Tank) Respawn(x, y float64) {
	t.X, t.Y = t.bounds.Clamp(x, y)
	t.Health = t.MaxHealth
}
