package sim

import "time"

// Input is the set of player controls held at the start of a tick.
type Input struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// delta converts held directions into a movement delta at speed.
func (in Input) delta(speed float64) (float64, float64) {
	var dx, dy float64
	if in.Left {
		dx -= speed
	}
	if in.Right {
		dx += speed
	}
	if in.Up {
		dy -= speed
	}
	if in.Down {
		dy += speed
	}
	return dx, dy
}

// Tick advances the simulation by one frame at wall-clock time now and
// returns the resulting snapshot. Outside PhaseRunning it changes nothing.
//
// Order within a tick:
//  1. player movement and fire from held input
//  2. AI decision, movement and fire
//  3. projectile integration, bounds exits and hits
//  4. particle decay
//  5. round clock
func (m *Match) Tick(now time.Time, in Input) Snapshot {
	if m.phase != PhaseRunning {
		return m.Snapshot(now)
	}
	m.tick++

	// 1. PLAYER
	if dx, dy := in.delta(m.player.Speed); dx != 0 || dy != 0 {
		m.player.Move(dx, dy)
	}
	if in.Fire {
		m.fire(m.player, now)
	}

	// 2. AI
	d := m.brain.Decide(m.ai, m.player, m.difficulty, now)
	m.ai.Move(d.DX, d.DY)
	if d.Fire {
		m.fire(m.ai, now)
	}

	// 3. PROJECTILES
	if !m.resolveProjectiles() {
		return m.Snapshot(now)
	}

	// 4. EFFECTS
	m.effects.Update()

	// 5. ROUND CLOCK
	m.advanceRound(now)

	return m.Snapshot(now)
}
