package sim

import (
	"strconv"
	"strings"
	"time"
)

const (
	// EndlessRounds is the max-rounds sentinel for a match that never runs out of rounds.
	EndlessRounds = 999
	// DefaultMaxRounds is used when the requested round count is missing or malformed.
	DefaultMaxRounds = 5

	// particleMaxLife normalises particle life into an alpha fraction.
	particleMaxLife = 40.0
)

// DeathPolicy decides what happens when a tank's health reaches zero.
type DeathPolicy int

const (
	DeathRespawns  DeathPolicy = iota // respawn in place, only round exhaustion ends the match
	DeathEndsMatch                    // the match resolves immediately
)

func (p DeathPolicy) String() string {
	switch p {
	case DeathRespawns:
		return "respawn"
	case DeathEndsMatch:
		return "end"
	default:
		return "unknown"
	}
}

// ParseDeathPolicy accepts "respawn" or "end" (also "end-match").
func ParseDeathPolicy(s string) (DeathPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "respawn":
		return DeathRespawns, true
	case "end", "end-match", "endmatch":
		return DeathEndsMatch, true
	default:
		return DeathRespawns, false
	}
}

// Staging is where a side enters the arena. Start is used at match start;
// respawns pick a random point inside Respawn.
type Staging struct {
	StartX, StartY float64
	Respawn        Rect
}

// Config holds every tunable of the simulation. It is captured when a match
// starts and never changes while the match runs.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64
	Margin      float64 // inset of the tank movement rectangle from every edge

	TankSize     float64
	TankSpeed    float64 // units per tick
	MaxHealth    float64
	FireCooldown time.Duration
	BarrelLength float64

	RoundDuration time.Duration
	DeathPolicy   DeathPolicy
	ScorePerRound int

	PursuitRange       float64
	ExplosionParticles int

	PlayerStaging Staging
	AIStaging     Staging

	Weapons Arsenal
}

// DefaultConfig is the corrected design: 100 HP, 30 second rounds and
// in-place respawns.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:         800,
		ArenaHeight:        600,
		Margin:             50,
		TankSize:           30,
		TankSpeed:          3,
		MaxHealth:          100,
		FireCooldown:       1500 * time.Millisecond,
		BarrelLength:       25,
		RoundDuration:      30 * time.Second,
		DeathPolicy:        DeathRespawns,
		ScorePerRound:      50,
		PursuitRange:       100,
		ExplosionParticles: 15,
		PlayerStaging: Staging{
			StartX: 150, StartY: 300,
			Respawn: Rect{X: 150, Y: 200, W: 50, H: 200},
		},
		AIStaging: Staging{
			StartX: 600, StartY: 300,
			Respawn: Rect{X: 550, Y: 200, W: 50, H: 200},
		},
		Weapons: DefaultArsenal(),
	}
}

// ClassicConfig is the first observed variant: 200 HP, 40 second rounds and
// a match that ends as soon as a tank is destroyed.
func ClassicConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxHealth = 200
	cfg.RoundDuration = 40 * time.Second
	cfg.DeathPolicy = DeathEndsMatch
	return cfg
}

// normalized fills zero or nonsensical fields from DefaultConfig.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		c.ArenaWidth, c.ArenaHeight = d.ArenaWidth, d.ArenaHeight
	}
	if c.Margin < 0 {
		c.Margin = 0
	}
	if c.TankSize <= 0 {
		c.TankSize = d.TankSize
	}
	if c.ArenaWidth-c.TankSize-2*c.Margin < 0 || c.ArenaHeight-c.TankSize-2*c.Margin < 0 {
		c.Margin = 0
	}
	if c.TankSpeed <= 0 {
		c.TankSpeed = d.TankSpeed
	}
	if c.MaxHealth <= 0 {
		c.MaxHealth = d.MaxHealth
	}
	if c.FireCooldown < 0 {
		c.FireCooldown = d.FireCooldown
	}
	if c.RoundDuration <= 0 {
		c.RoundDuration = d.RoundDuration
	}
	if c.ScorePerRound < 0 {
		c.ScorePerRound = d.ScorePerRound
	}
	if c.PursuitRange < 0 {
		c.PursuitRange = d.PursuitRange
	}
	if c.ExplosionParticles < 0 {
		c.ExplosionParticles = 0
	}
	if len(c.Weapons) == 0 {
		c.Weapons = d.Weapons
	}
	return c
}

// movementBounds is the rectangle a tank's top-left corner may occupy.
func (c Config) movementBounds() Rect {
	return Rect{
		X: c.Margin,
		Y: c.Margin,
		W: c.ArenaWidth - c.TankSize - 2*c.Margin,
		H: c.ArenaHeight - c.TankSize - 2*c.Margin,
	}
}

func (c Config) arena() Rect {
	return Rect{W: c.ArenaWidth, H: c.ArenaHeight}
}

// ParseMaxRounds converts a round-count selection into a max-round value.
// "endless" maps to EndlessRounds; anything malformed or non-positive maps
// to DefaultMaxRounds.
func ParseMaxRounds(s string) int {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "endless") {
		return EndlessRounds
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return DefaultMaxRounds
	}
	return n
}

// ClampDifficulty keeps a difficulty tier at 1 or above.
func ClampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	return d
}
