package sim

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func genInput() *rapid.Generator[Input] {
	return rapid.Custom(func(t *rapid.T) Input {
		return Input{
			Left:  rapid.Bool().Draw(t, "left"),
			Right: rapid.Bool().Draw(t, "right"),
			Up:    rapid.Bool().Draw(t, "up"),
			Down:  rapid.Bool().Draw(t, "down"),
			Fire:  rapid.Bool().Draw(t, "fire"),
		}
	})
}

// Random play never pushes a tank out of its movement rectangle or its
// health outside [0, max].
func TestProperty_TanksStayInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		diff := rapid.IntRange(1, 5).Draw(rt, "difficulty")
		policy := DeathPolicy(rapid.IntRange(0, 1).Draw(rt, "policy"))
		inputs := rapid.SliceOfN(genInput(), 1, 300).Draw(rt, "inputs")

		cfg := DefaultConfig()
		cfg.DeathPolicy = policy
		cfg.RoundDuration = 2 * time.Second
		h := NewHarness(WithConfig(cfg), WithHarnessSeed(seed), WithDifficulty(diff))
		bounds := h.Match.Config().movementBounds()

		for i, in := range inputs {
			s := h.StepWith(in)
			for _, tv := range []*TankView{s.Player, s.AI} {
				if !bounds.ContainsPoint(tv.X, tv.Y) {
					rt.Fatalf("tick %d: %s at (%.2f,%.2f) outside %+v", i, tv.Side, tv.X, tv.Y, bounds)
				}
				if tv.Health < 0 || tv.Health > tv.MaxHealth {
					rt.Fatalf("tick %d: %s health %.2f outside [0,%.0f]", i, tv.Side, tv.Health, tv.MaxHealth)
				}
			}
			if s.Round < 1 || s.Round > s.MaxRounds {
				rt.Fatalf("tick %d: round %d outside [1,%d]", i, s.Round, s.MaxRounds)
			}
			if !s.Running {
				break
			}
		}
	})
}

// No live projectile is ever left outside the arena after a tick.
func TestProperty_ProjectilesInsideArena(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		inputs := rapid.SliceOfN(genInput(), 1, 200).Draw(rt, "inputs")

		h := NewHarness(WithHarnessSeed(seed), WithDifficulty(3))
		for i, in := range inputs {
			s := h.StepWith(in)
			for _, p := range s.Projectiles {
				if p.X < 0 || p.X > s.ArenaWidth || p.Y < 0 || p.Y > s.ArenaHeight {
					rt.Fatalf("tick %d: projectile at (%.1f,%.1f) outside the arena", i, p.X, p.Y)
				}
			}
		}
	})
}

// Two shots from one tank are always at least the cooldown apart.
func TestProperty_ShotSpacing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tk := newTestTank(300, 300)
		w := DefaultArsenal()[0]
		offsets := rapid.SliceOfN(rapid.IntRange(0, 3000), 1, 50).Draw(rt, "offsets_ms")

		now := t0
		var last time.Time
		fired := false
		for _, ms := range offsets {
			now = now.Add(time.Duration(ms) * time.Millisecond)
			if _, ok := tk.Shoot(now, w); ok {
				if fired && now.Sub(last) < 1500*time.Millisecond {
					rt.Fatalf("shots %v apart, under the cooldown", now.Sub(last))
				}
				last, fired = now, true
			}
		}
	})
}

func TestProperty_ThresholdsMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(1, 14).Draw(rt, "a")
		b := rapid.IntRange(a, 15).Draw(rt, "b")
		if AIFireCooldown(b) > AIFireCooldown(a) {
			rt.Fatalf("cooldown(%d)=%v > cooldown(%d)=%v", b, AIFireCooldown(b), a, AIFireCooldown(a))
		}
		if AIEngageRange(b) < AIEngageRange(a) {
			rt.Fatalf("range(%d)=%.0f < range(%d)=%.0f", b, AIEngageRange(b), a, AIEngageRange(a))
		}
	})
}

func TestProperty_ScoreNonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		round := rapid.IntRange(1, EndlessRounds).Draw(rt, "round")
		hp := rapid.Float64Range(0, 200).Draw(rt, "hp")
		s := Score(round, 50, hp)
		if s < round*50 || s > round*50+200 {
			rt.Fatalf("score %d out of range for round %d hp %.2f", s, round, hp)
		}
	})
}
