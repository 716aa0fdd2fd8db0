package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Tank-Duel/internal/config"
	"github.com/Garsondee/Tank-Duel/internal/sim"
)

// roundOptions are the round counts offered in the menu, in cycling order.
var roundOptions = []int{3, 5, 10, sim.EndlessRounds}

// statusLinger is how long a one-off status line stays on screen.
const statusLinger = 3 * time.Second

// Game is the ebiten host. It samples the keyboard, ticks the match once per
// frame and draws the resulting snapshot.
type Game struct {
	width  int
	height int
	arenaW int // playfield size (the event panel takes the rest)
	arenaH int

	match  *sim.Match
	snap   sim.Snapshot
	logger *log.Logger

	events    *EventLog
	logCursor int // next SimLog index to copy into the panel
	keys      keyEdges
	face      text.Face

	// Menu selections, captured on start.
	difficulty int
	maxRounds  int

	// Deterministic ground detail, generated once.
	terrainPatches []terrainPatch

	status      string
	statusUntil time.Time

	clock    func() time.Time
	copyText func(string) error
}

// terrainPatch is a small ground detail tile.
type terrainPatch struct {
	x, y  float32
	w, h  float32
	shade uint8
}

// New builds a host around a fresh match in the menu.
func New(settings config.Settings, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	opts := []sim.Option{sim.WithLogger(logger)}
	if settings.Seed != 0 {
		opts = append(opts, sim.WithSeed(settings.Seed))
	}
	m := sim.NewMatch(settings.Sim, opts...)
	cfg := m.Config()

	g := &Game{
		arenaW:     int(cfg.ArenaWidth),
		arenaH:     int(cfg.ArenaHeight),
		match:      m,
		logger:     logger,
		events:     NewEventLog(),
		face:       text.NewGoXFace(basicfont.Face7x13),
		difficulty: sim.ClampDifficulty(settings.Difficulty),
		maxRounds:  settings.MaxRounds,
		clock:      time.Now,
		copyText:   writeClipboard,
	}
	if g.maxRounds <= 0 {
		g.maxRounds = sim.DefaultMaxRounds
	}
	g.width = g.arenaW + logPanelWidth
	g.height = g.arenaH
	g.initTerrainPatches()
	g.snap = m.Snapshot(g.clock())
	return g
}

// initTerrainPatches scatters grass tufts across the arena.
func (g *Game) initTerrainPatches() {
	rng := rand.New(rand.NewSource(54321)) // #nosec G404 -- cosmetic only
	count := 50
	g.terrainPatches = make([]terrainPatch, 0, count)
	for i := 0; i < count; i++ {
		g.terrainPatches = append(g.terrainPatches, terrainPatch{
			x:     float32(rng.Intn(g.arenaW)),
			y:     float32(rng.Intn(g.arenaH)),
			w:     3,
			h:     8,
			shade: uint8(rng.Intn(13)),
		})
	}
}

// Match exposes the hosted match.
func (g *Game) Match() *sim.Match { return g.match }

// Size is the window size the host lays out at.
func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	now := g.clock()
	for _, k := range g.keys.scan(commandKeys, ebiten.IsKeyPressed) {
		g.command(k, now)
	}
	g.advance(now, inputFromKeys(ebiten.IsKeyPressed))
	return nil
}

// command handles an edge-triggered key outside of tank control.
func (g *Game) command(k ebiten.Key, now time.Time) {
	switch g.match.Phase() {
	case sim.PhaseMenu:
		switch k {
		case ebiten.Key1:
			g.difficulty = 1
		case ebiten.Key2:
			g.difficulty = 2
		case ebiten.Key3:
			g.difficulty = 3
		case ebiten.KeyR:
			g.maxRounds = nextRoundOption(g.maxRounds)
		case ebiten.KeyEnter:
			g.match.Start(now, sim.StartOptions{Difficulty: g.difficulty, MaxRounds: g.maxRounds})
			g.status = ""
		}
	case sim.PhaseGameOver:
		switch k {
		case ebiten.KeyEnter:
			g.match.Restart()
			g.status = ""
		case ebiten.KeyC:
			g.copySummary(now)
		}
	}
}

// advance ticks the match and copies new events into the panel.
func (g *Game) advance(now time.Time, in sim.Input) {
	g.snap = g.match.Tick(now, in)
	sl := g.match.SimLog()
	for _, e := range sl.Since(g.logCursor) {
		g.events.AddSim(e)
	}
	g.logCursor = sl.Len()
}

func (g *Game) copySummary(now time.Time) {
	o, ok := g.match.Outcome()
	if !ok {
		return
	}
	if err := g.copyText(o.Summary()); err != nil {
		g.logger.Warn("clipboard unavailable", "err", err)
		g.setStatus("Clipboard unavailable", now)
		return
	}
	g.logger.Info("copied match summary", "id", o.MatchID)
	g.setStatus("Summary copied", now)
}

func (g *Game) setStatus(msg string, now time.Time) {
	g.status = msg
	g.statusUntil = now.Add(statusLinger)
}

// statusLine returns the current status text, if it has not expired.
func (g *Game) statusLine(now time.Time) string {
	if g.status == "" || now.After(g.statusUntil) {
		return ""
	}
	return g.status
}

// nextRoundOption cycles to the next offered round count after cur.
func nextRoundOption(cur int) int {
	for _, n := range roundOptions {
		if n > cur {
			return n
		}
	}
	return roundOptions[0]
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawArena(screen)

	s := g.snap
	if s.Player != nil && s.Phase != sim.PhaseMenu {
		g.drawProjectiles(screen, s.Projectiles)
		g.drawParticles(screen, s.Particles)
		g.drawTank(screen, *s.Player, playerColor)
		g.drawTank(screen, *s.AI, aiColor)
		g.drawHUD(screen, s)
	}

	switch s.Phase {
	case sim.PhaseMenu:
		g.drawMenu(screen)
	case sim.PhaseGameOver:
		g.drawGameOver(screen, s)
	}

	g.events.Draw(screen, g.face, g.arenaW, g.height)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
