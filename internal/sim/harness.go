package sim

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFrameStep is one frame at 60 Hz.
const DefaultFrameStep = time.Second / 60

// Pilot produces player input for headless runs.
type Pilot interface {
	Steer(s Snapshot) Input
}

// IdlePilot never touches the controls.
type IdlePilot struct{}

// Steer implements Pilot.
func (IdlePilot) Steer(Snapshot) Input { return Input{} }

// ChasePilot lines up with the AI on the vertical axis, then turns toward it
// and fires.
type ChasePilot struct {
	AlignTolerance float64 // vertical gap treated as lined up
}

// Steer implements Pilot.
func (p ChasePilot) Steer(s Snapshot) Input {
	if s.Player == nil || s.AI == nil {
		return Input{}
	}
	tol := p.AlignTolerance
	if tol <= 0 {
		tol = s.Player.Height / 3
	}
	dx := s.AI.X - s.Player.X
	dy := s.AI.Y - s.Player.Y
	if math.Abs(dy) > tol {
		return Input{Up: dy < 0, Down: dy > 0}
	}
	return Input{Left: dx < 0, Right: dx >= 0, Fire: true}
}

// Harness drives a Match headlessly with a synthetic frame clock so that runs
// are reproducible.
type Harness struct {
	Match     *Match
	SimLog    *SimLog
	Pilot     Pilot
	Now       time.Time
	FrameStep time.Duration

	cfg    Config
	seed   int64
	start  StartOptions
	logger *log.Logger
}

type harnessOptionKind int

const (
	harnessOptInfra harnessOptionKind = iota // config, seed, logging: applied before the match exists
	harnessOptMatch                          // start options, pilot, clock: applied after
)

// HarnessOption is a builder function applied during NewHarness.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*Harness)
}

// WithConfig replaces the default simulation config.
func WithConfig(cfg Config) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.cfg = cfg }}
}

// WithHarnessSeed sets the RNG seed for deterministic runs.
func WithHarnessSeed(seed int64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.seed = seed }}
}

// WithVerbose enables per-projectile verbose logging.
func WithVerbose(v bool) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.SimLog = NewSimLog(v) }}
}

// WithHarnessLogger routes the match's operator logging to l.
func WithHarnessLogger(l *log.Logger) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) { h.logger = l }}
}

// WithDifficulty sets the difficulty captured at start.
func WithDifficulty(d int) HarnessOption {
	return HarnessOption{harnessOptMatch, func(h *Harness) { h.start.Difficulty = d }}
}

// WithMaxRounds sets the round limit captured at start.
func WithMaxRounds(n int) HarnessOption {
	return HarnessOption{harnessOptMatch, func(h *Harness) { h.start.MaxRounds = n }}
}

// WithPilot sets the player autopilot.
func WithPilot(p Pilot) HarnessOption {
	return HarnessOption{harnessOptMatch, func(h *Harness) { h.Pilot = p }}
}

// WithFrameStep sets how far the synthetic clock moves per tick.
func WithFrameStep(d time.Duration) HarnessOption {
	return HarnessOption{harnessOptMatch, func(h *Harness) {
		if d > 0 {
			h.FrameStep = d
		}
	}}
}

// NewHarness builds a match from the options in two passes (infrastructure,
// then match settings) and starts it.
func NewHarness(opts ...HarnessOption) *Harness {
	h := &Harness{
		cfg:       DefaultConfig(),
		seed:      1,
		SimLog:    NewSimLog(false),
		Pilot:     IdlePilot{},
		Now:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		FrameStep: DefaultFrameStep,
		start:     StartOptions{Difficulty: 1, MaxRounds: DefaultMaxRounds},
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(h)
		}
	}
	mopts := []Option{WithSeed(h.seed), WithSimLog(h.SimLog)}
	if h.logger != nil {
		mopts = append(mopts, WithLogger(h.logger))
	}
	h.Match = NewMatch(h.cfg, mopts...)
	for _, o := range opts {
		if o.kind == harnessOptMatch {
			o.fn(h)
		}
	}
	h.Match.Start(h.Now, h.start)
	return h
}

// Step advances the clock one frame and ticks once with the pilot's input.
func (h *Harness) Step() Snapshot {
	h.Now = h.Now.Add(h.FrameStep)
	in := h.Pilot.Steer(h.Match.Snapshot(h.Now))
	return h.Match.Tick(h.Now, in)
}

// StepWith advances the clock one frame and ticks once with explicit input.
func (h *Harness) StepWith(in Input) Snapshot {
	h.Now = h.Now.Add(h.FrameStep)
	return h.Match.Tick(h.Now, in)
}

// RunTicks steps n times and returns the last snapshot.
func (h *Harness) RunTicks(n int) Snapshot {
	s := h.Match.Snapshot(h.Now)
	for i := 0; i < n; i++ {
		s = h.Step()
	}
	return s
}

// RunUntilOver steps until the match resolves or maxTicks have run.
func (h *Harness) RunUntilOver(maxTicks int) (Outcome, bool) {
	for i := 0; i < maxTicks && h.Match.Running(); i++ {
		h.Step()
	}
	return h.Match.Outcome()
}

// Advance moves the clock forward without ticking.
func (h *Harness) Advance(d time.Duration) {
	h.Now = h.Now.Add(d)
}

// Restart returns the match to the menu and starts it again with the same options.
func (h *Harness) Restart() bool {
	if !h.Match.Restart() {
		return false
	}
	return h.Match.Start(h.Now, h.start)
}
