package sim

import (
	"fmt"
	"time"
)

// fire attempts a shot for t with the current round's weapon and appends the
// projectile to the store on success.
func (m *Match) fire(t *Tank, now time.Time) bool {
	idx := m.cfg.Weapons.Index(m.round)
	p, ok := t.Shoot(now, m.cfg.Weapons.ForRound(m.round))
	if !ok {
		return false
	}
	p.Special = idx != 0
	m.projectiles = append(m.projectiles, p)
	m.simLog.Add(m.tick, t.Side.Label(), "fire", "shot",
		fmt.Sprintf("%s %s from (%.1f,%.1f)", p.Weapon.Name, t.Facing, p.X, p.Y), p.Weapon.Damage)
	return true
}

// tankFor returns the tank belonging to side.
func (m *Match) tankFor(side Side) *Tank {
	if side == SidePlayer {
		return m.player
	}
	return m.ai
}

// resolveProjectiles advances every projectile and settles bounds exits and
// hits. Each projectile resolves at most once per tick and only against the
// opposing tank. It returns false if a hit ended the match.
func (m *Match) resolveProjectiles() bool {
	arena := m.cfg.arena()
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		p.Advance()

		if p.OutOfBounds(arena) {
			m.simLog.AddVerbose(m.tick, p.Owner.Label(), "projectile", "out_of_bounds",
				fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y), 0)
			continue
		}

		target := m.tankFor(p.Owner.Opponent())
		if !target.Box().Overlaps(p.Box()) {
			kept = append(kept, p)
			continue
		}

		destroyed := target.TakeDamage(p.Weapon.Damage)
		m.effects.Explode(p.X, p.Y, p.Weapon.Color, m.cfg.ExplosionParticles)
		m.simLog.Add(m.tick, p.Owner.Label(), "hit", "damage",
			fmt.Sprintf("%s -%.0f → %.0f", target.Side, p.Weapon.Damage, target.Health), p.Weapon.Damage)
		m.logger.Debug("hit",
			"id", m.id,
			"shooter", p.Owner,
			"weapon", p.Weapon.Name,
			"damage", p.Weapon.Damage,
			"target_health", target.Health,
		)

		if !destroyed {
			continue
		}
		m.simLog.Add(m.tick, target.Side.Label(), "tank", "destroyed", target.Side.String(), 0)
		if m.cfg.DeathPolicy == DeathEndsMatch {
			m.end(destroyedOutcome(m.player, m.ai, target.Side, m.round, m.cfg.ScorePerRound))
			return false
		}
		st := m.cfg.PlayerStaging
		if target.Side == SideAI {
			st = m.cfg.AIStaging
		}
		m.respawn(target, st)
		m.logger.Debug("tank respawned", "id", m.id, "side", target.Side)
	}
	m.projectiles = kept
	return true
}
