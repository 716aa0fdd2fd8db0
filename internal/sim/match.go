package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Phase is the top-level match state.
type Phase int

const (
	PhaseMenu     Phase = iota // not running, waiting for a start command
	PhaseRunning               // ticking
	PhaseGameOver              // frozen on the final frame
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StartOptions are captured from the menu when a match starts.
type StartOptions struct {
	Difficulty int
	MaxRounds  int // EndlessRounds for no limit; non-positive falls back to DefaultMaxRounds
}

// Match owns all mutable simulation state. It has a single writer: the host
// calls Start, Tick and Restart from one goroutine and must not share a Match
// across goroutines.
type Match struct {
	cfg    Config
	id     string
	phase  Phase
	player *Tank
	ai     *Tank

	projectiles []Projectile
	effects     *Effects
	brain       *AIController

	round      int
	maxRounds  int
	difficulty int
	roundStart time.Time
	tick       int
	outcome    *Outcome

	rng    *rand.Rand
	simLog *SimLog
	logger *log.Logger
}

// Option configures a Match at construction.
type Option func(*Match)

// WithSeed makes the match's randomness reproducible.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithLogger routes operator logging to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSimLog records match events into sl.
func WithSimLog(sl *SimLog) Option {
	return func(m *Match) {
		if sl != nil {
			m.simLog = sl
		}
	}
}

// NewMatch creates a match sitting in the menu.
func NewMatch(cfg Config, opts ...Option) *Match {
	m := &Match{
		cfg:    cfg.normalized(),
		phase:  PhaseMenu,
		simLog: NewSimLog(false),
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	m.effects = NewEffects(m.rng)
	m.brain = NewAIController(m.cfg.PursuitRange, m.rng)
	return m
}

// Config returns the configuration the match runs with.
func (m *Match) Config() Config { return m.cfg }

// Phase returns the current state.
func (m *Match) Phase() Phase { return m.phase }

// Running reports whether the simulation is ticking.
func (m *Match) Running() bool { return m.phase == PhaseRunning }

// GameOver reports whether the match has resolved and not yet returned to the menu.
func (m *Match) GameOver() bool { return m.phase == PhaseGameOver }

// ID is the identifier of the current or last match.
func (m *Match) ID() string { return m.id }

// Round is the current 1-based round.
func (m *Match) Round() int { return m.round }

// MaxRounds is the configured round limit, EndlessRounds when unlimited.
func (m *Match) MaxRounds() int { return m.maxRounds }

// Difficulty is the captured difficulty tier.
func (m *Match) Difficulty() int { return m.difficulty }

// Player returns the human tank, nil before the first start.
func (m *Match) Player() *Tank { return m.player }

// AI returns the computer tank, nil before the first start.
func (m *Match) AI() *Tank { return m.ai }

// Projectiles returns the live projectile store. The slice is owned by the match.
func (m *Match) Projectiles() []Projectile { return m.projectiles }

// Effects returns the particle store.
func (m *Match) Effects() *Effects { return m.effects }

// Outcome returns the result of the last finished match.
func (m *Match) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

// SimLog returns the event log.
func (m *Match) SimLog() *SimLog { return m.simLog }

// TickCount is the number of ticks simulated in the current match.
func (m *Match) TickCount() int { return m.tick }

// Endless reports whether the round limit is the endless sentinel.
func (m *Match) Endless() bool { return m.maxRounds == EndlessRounds }

// Start begins a new match from the menu. It returns false in any other phase.
func (m *Match) Start(now time.Time, opts StartOptions) bool {
	if m.phase != PhaseMenu {
		return false
	}
	m.difficulty = ClampDifficulty(opts.Difficulty)
	m.maxRounds = opts.MaxRounds
	if m.maxRounds <= 0 {
		m.maxRounds = DefaultMaxRounds
	}
	m.id = uuid.NewString()
	m.round = 1
	m.tick = 0
	m.outcome = nil
	m.player = NewTank(SidePlayer, m.cfg.PlayerStaging.StartX, m.cfg.PlayerStaging.StartY, m.cfg)
	m.ai = NewTank(SideAI, m.cfg.AIStaging.StartX, m.cfg.AIStaging.StartY, m.cfg)
	m.projectiles = m.projectiles[:0]
	m.effects.Clear()
	m.roundStart = now
	m.phase = PhaseRunning

	m.simLog.Add(m.tick, "--", "match", "start",
		fmt.Sprintf("difficulty=%d max_rounds=%d policy=%s", m.difficulty, m.maxRounds, m.cfg.DeathPolicy),
		float64(m.difficulty))
	m.logger.Info("match started",
		"id", m.id,
		"difficulty", m.difficulty,
		"max_rounds", m.maxRounds,
		"death_policy", m.cfg.DeathPolicy,
		"max_health", m.cfg.MaxHealth,
	)
	return true
}

// Restart returns a finished match to the menu. Entities and the outcome are
// kept until the next Start. It returns false unless the match is over.
func (m *Match) Restart() bool {
	if m.phase != PhaseGameOver {
		return false
	}
	m.phase = PhaseMenu
	m.simLog.Add(m.tick, "--", "match", "restart", "back to menu", 0)
	m.logger.Debug("returned to menu", "id", m.id)
	return true
}

// RoundRemaining is the time left in the current round at now.
func (m *Match) RoundRemaining(now time.Time) time.Duration {
	if m.phase != PhaseRunning {
		return 0
	}
	left := m.cfg.RoundDuration - now.Sub(m.roundStart)
	if left < 0 {
		return 0
	}
	return left
}

// advanceRound closes the round once its duration has elapsed: either the
// match resolves on health (last round) or the next round begins.
func (m *Match) advanceRound(now time.Time) {
	if now.Sub(m.roundStart) <= m.cfg.RoundDuration {
		return
	}
	m.roundStart = now

	if m.round >= m.maxRounds && !m.Endless() {
		m.end(DetermineOutcome(m.player, m.ai, m.round, m.cfg.ScorePerRound))
		return
	}

	m.round++
	m.respawn(m.player, m.cfg.PlayerStaging)
	m.respawn(m.ai, m.cfg.AIStaging)
	m.projectiles = m.projectiles[:0]

	weapon := m.cfg.Weapons.ForRound(m.round)
	m.simLog.Add(m.tick, "--", "round", "advance",
		fmt.Sprintf("round %d/%d weapon=%s", m.round, m.maxRounds, weapon.Name), float64(m.round))
	m.logger.Info("round advanced", "id", m.id, "round", m.round, "weapon", weapon.Name)
}

// respawn puts t back at a random point of its staging area with full health.
func (m *Match) respawn(t *Tank, st Staging) {
	x := st.Respawn.X + m.rng.Float64()*st.Respawn.W
	y := st.Respawn.Y + m.rng.Float64()*st.Respawn.H
	t.Respawn(x, y)
	m.simLog.Add(m.tick, t.Side.Label(), "tank", "respawn",
		fmt.Sprintf("(%.1f,%.1f)", t.X, t.Y), t.Health)
}

// end resolves the match and freezes it on the final frame.
func (m *Match) end(o Outcome) {
	o.MatchID = m.id
	m.outcome = &o
	m.projectiles = m.projectiles[:0]
	m.effects.Clear()
	m.phase = PhaseGameOver

	m.simLog.Add(m.tick, o.Winner.Label(), "match", "end",
		fmt.Sprintf("%s wins by %s score=%d", o.Winner, o.Reason, o.Score), float64(o.Score))
	m.logger.Info("match over",
		"id", m.id,
		"winner", o.Winner,
		"reason", o.Reason,
		"round", o.Round,
		"score", o.Score,
	)
}
