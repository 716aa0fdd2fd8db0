package sim

import (
	"testing"
	"time"
)

func shortRounds() Config {
	cfg := DefaultConfig()
	cfg.RoundDuration = 2 * time.Second
	return cfg
}

func TestHarness_ChasePilotResolves(t *testing.T) {
	h := NewHarness(
		WithConfig(shortRounds()),
		WithMaxRounds(2),
		WithDifficulty(2),
		WithPilot(ChasePilot{}),
	)
	o, ok := h.RunUntilOver(2000)
	if !ok {
		t.Fatalf("match should resolve, still in %s after %d ticks", h.Match.Phase(), h.Match.TickCount())
	}
	if o.Round != 2 || o.Reason != EndRoundsExhausted {
		t.Fatalf("unexpected outcome %+v", o)
	}
	if o.MatchID != h.Match.ID() {
		t.Fatalf("outcome should carry the match id")
	}
	if h.SimLog.CountCategory("fire", "shot") == 0 {
		t.Fatalf("chase pilot should have fired, log:\n%s", h.SimLog.Format())
	}
	if h.SimLog.CountCategory("match", "end") != 1 {
		t.Fatal("expected exactly one end entry")
	}
}

func TestHarness_Deterministic(t *testing.T) {
	run := func() string {
		h := NewHarness(
			WithConfig(shortRounds()),
			WithHarnessSeed(42),
			WithMaxRounds(3),
			WithDifficulty(1),
			WithPilot(ChasePilot{}),
		)
		h.RunUntilOver(3000)
		return h.SimLog.Format()
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("same seed should replay identically\n--- first\n%s\n--- second\n%s", a, b)
	}
}

func TestHarness_Restart(t *testing.T) {
	h := NewHarness(WithConfig(shortRounds()), WithMaxRounds(1))
	if h.Restart() {
		t.Fatal("restart while running should fail")
	}
	h.RunUntilOver(500)
	first := h.Match.ID()
	if !h.Restart() {
		t.Fatal("restart after game over should start a new match")
	}
	if !h.Match.Running() || h.Match.ID() == first {
		t.Fatal("restart should begin a fresh match with a new id")
	}
}

func TestHarness_IdleRunsTheClock(t *testing.T) {
	h := NewHarness(WithConfig(shortRounds()), WithMaxRounds(1))
	s := h.RunTicks(60)
	if s.Tick != 60 {
		t.Fatalf("expected 60 ticks, got %d", s.Tick)
	}
	if got := s.RoundRemaining; got < time.Second-time.Millisecond || got > time.Second+time.Millisecond {
		t.Fatalf("expected about 1s remaining, got %v", got)
	}
}

func TestChasePilot_Steer(t *testing.T) {
	p := ChasePilot{AlignTolerance: 5}
	player := &TankView{X: 100, Y: 100, Width: 30, Height: 30}

	in := p.Steer(Snapshot{Player: player, AI: &TankView{X: 500, Y: 300}})
	if !in.Down || in.Fire {
		t.Fatalf("misaligned pilot should move down without firing, got %+v", in)
	}
	in = p.Steer(Snapshot{Player: player, AI: &TankView{X: 20, Y: 102}})
	if !in.Left || !in.Fire || in.Up || in.Down {
		t.Fatalf("aligned pilot should face left and fire, got %+v", in)
	}
	if in := p.Steer(Snapshot{}); in != (Input{}) {
		t.Fatalf("pilot without tanks should idle, got %+v", in)
	}
}
