package sim

import (
	"math"
	"math/rand"
	"time"
)

const (
	aiBaseFireCooldown = 1500 * time.Millisecond
	aiCooldownPerTier  = 100 * time.Millisecond
	aiBaseEngageRange  = 250.0
	aiRangePerTier     = 30.0
	aiPreciseTier      = 3 // tiers below this get movement jitter
)

// AIFireCooldown is how long the AI waits between fire attempts at the given
// difficulty. It never grows as difficulty rises.
func AIFireCooldown(difficulty int) time.Duration {
	return aiBaseFireCooldown - time.Duration(ClampDifficulty(difficulty))*aiCooldownPerTier
}

// AIEngageRange is the distance inside which the AI will fire. It never
// shrinks as difficulty rises.
func AIEngageRange(difficulty int) float64 {
	return aiBaseEngageRange + float64(ClampDifficulty(difficulty))*aiRangePerTier
}

func aiSpeedFactor(difficulty int) float64 {
	return 0.8 + float64(difficulty)*0.1
}

// AIDecision is one tick of AI intent.
type AIDecision struct {
	DX, DY   float64
	Fire     bool
	Distance float64 // distance to the opponent this tick
}

// AIController steers the computer-controlled tank.
type AIController struct {
	pursuitRange float64
	rng          *rand.Rand
}

// NewAIController creates a controller that closes in until within
// pursuitRange of its opponent.
func NewAIController(pursuitRange float64, rng *rand.Rand) *AIController {
	return &AIController{pursuitRange: pursuitRange, rng: rng}
}

// Decide computes movement and fire intent for self against opponent.
// Distances are measured between the tanks' top-left corners.
func (c *AIController) Decide(self, opponent *Tank, difficulty int, now time.Time) AIDecision {
	difficulty = ClampDifficulty(difficulty)
	dx := opponent.X - self.X
	dy := opponent.Y - self.Y
	dist := math.Hypot(dx, dy)

	d := AIDecision{Distance: dist}
	if dist > c.pursuitRange {
		f := self.Speed * aiSpeedFactor(difficulty)
		d.DX = dx / dist * f
		d.DY = dy / dist * f
		// Lower tiers wobble.
		if difficulty < aiPreciseTier {
			spread := float64(aiPreciseTier - difficulty)
			d.DX += (c.rng.Float64() - 0.5) * spread
			d.DY += (c.rng.Float64() - 0.5) * spread
		}
	}

	d.Fire = self.SinceLastShot(now) > AIFireCooldown(difficulty) && dist < AIEngageRange(difficulty)
	return d
}
