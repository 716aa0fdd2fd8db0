package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/Tank-Duel/internal/config"
	"github.com/Garsondee/Tank-Duel/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64
	matchID  string

	resolved bool
	outcome  sim.Outcome
	ticks    int

	playerShots int
	aiShots     int
	playerHits  int
	aiHits      int
	playerLost  int // times the player tank was destroyed
	aiLost      int

	firstHitTick int

	final sim.Snapshot
}

type options struct {
	runs       int
	rounds     string
	difficulty int
	seedBase   int64
	seedStep   int64
	policy     string
	roundSecs  float64
	maxTicks   int
	pngDir     string
	envFile    string
}

func main() {
	var o options
	flag.IntVar(&o.runs, "runs", 5, "number of headless matches")
	flag.StringVar(&o.rounds, "rounds", "", "rounds per match (integer or endless); default from config")
	flag.IntVar(&o.difficulty, "difficulty", 0, "AI difficulty tier; default from config")
	flag.Int64Var(&o.seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&o.policy, "policy", "", "death policy: respawn or end; default from config")
	flag.Float64Var(&o.roundSecs, "round-seconds", 0, "round length in seconds; default from config")
	flag.IntVar(&o.maxTicks, "max-ticks", 0, "tick cap per match; 0 derives it from the round settings")
	flag.StringVar(&o.pngDir, "png-dir", "", "write the final frame of each match as PNG into this directory")
	flag.StringVar(&o.envFile, "env", ".env", "optional .env file with TANKDUEL_* settings")
	flag.Parse()

	settings, err := config.Load(o.envFile)
	if err != nil {
		log.Fatal("config", "err", err)
	}
	logger := settings.Logger()
	settings.Report(logger)

	cfg, start, err := resolve(settings, o)
	if err != nil {
		logger.Fatal("bad flags", "err", err)
	}
	if o.pngDir != "" {
		if err := os.MkdirAll(o.pngDir, 0o750); err != nil {
			logger.Fatal("png dir", "err", err)
		}
	}
	maxTicks := o.maxTicks
	if maxTicks <= 0 {
		maxTicks = tickBudget(cfg, start.MaxRounds)
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("runs=%d rounds=%s difficulty=%d policy=%s max_health=%.0f round=%s seed_base=%d seed_step=%d\n\n",
		o.runs, roundsLabel(start.MaxRounds), start.Difficulty, cfg.DeathPolicy, cfg.MaxHealth, cfg.RoundDuration, o.seedBase, o.seedStep)

	all := make([]runStats, 0, o.runs)
	for i := 0; i < o.runs; i++ {
		seed := o.seedBase + int64(i)*o.seedStep
		rs := runMatch(i+1, seed, cfg, start, maxTicks)
		all = append(all, rs)
		printRun(rs)

		if o.pngDir != "" {
			path := filepath.Join(o.pngDir, fmt.Sprintf("run-%02d.png", rs.runIndex))
			if err := renderFrame(rs.final, path); err != nil {
				logger.Error("render frame", "run", rs.runIndex, "err", err)
				continue
			}
			logger.Info("wrote final frame", "run", rs.runIndex, "path", path)
		}
	}

	printAggregate(all)
}

// resolve applies flag overrides on top of the loaded settings.
func resolve(s config.Settings, o options) (sim.Config, sim.StartOptions, error) {
	if o.runs <= 0 {
		return sim.Config{}, sim.StartOptions{}, fmt.Errorf("-runs must be > 0, got %d", o.runs)
	}
	cfg := s.Sim
	start := s.Start()
	if o.rounds != "" {
		start.MaxRounds = sim.ParseMaxRounds(o.rounds)
	}
	if o.difficulty != 0 {
		start.Difficulty = sim.ClampDifficulty(o.difficulty)
	}
	if o.policy != "" {
		p, ok := sim.ParseDeathPolicy(o.policy)
		if !ok {
			return sim.Config{}, sim.StartOptions{}, fmt.Errorf("unsupported policy %q (supported: respawn, end)", o.policy)
		}
		cfg.DeathPolicy = p
	}
	if o.roundSecs < 0 {
		return sim.Config{}, sim.StartOptions{}, fmt.Errorf("-round-seconds must be >= 0, got %v", o.roundSecs)
	}
	if o.roundSecs > 0 {
		cfg.RoundDuration = time.Duration(o.roundSecs * float64(time.Second))
	}
	if start.MaxRounds == sim.EndlessRounds && o.maxTicks <= 0 {
		return sim.Config{}, sim.StartOptions{}, fmt.Errorf("endless matches need an explicit -max-ticks")
	}
	return cfg, start, nil
}

// tickBudget is enough 60 Hz frames to play every round plus slack.
func tickBudget(cfg sim.Config, rounds int) int {
	perRound := int(cfg.RoundDuration/sim.DefaultFrameStep) + 2
	return perRound*rounds + 60
}

func roundsLabel(n int) string {
	if n == sim.EndlessRounds {
		return "endless"
	}
	return fmt.Sprint(n)
}

func runMatch(runIndex int, seed int64, cfg sim.Config, start sim.StartOptions, maxTicks int) runStats {
	h := sim.NewHarness(
		sim.WithConfig(cfg),
		sim.WithHarnessSeed(seed),
		sim.WithDifficulty(start.Difficulty),
		sim.WithMaxRounds(start.MaxRounds),
		sim.WithPilot(sim.ChasePilot{}),
	)
	o, ok := h.RunUntilOver(maxTicks)

	rs := collectStats(h.SimLog.Entries())
	rs.runIndex = runIndex
	rs.seed = seed
	rs.matchID = h.Match.ID()
	rs.resolved = ok
	rs.outcome = o
	rs.ticks = h.Match.TickCount()
	rs.final = h.Match.Snapshot(h.Now)
	return rs
}

// collectStats tallies shots, hits and losses from a match's event log.
func collectStats(entries []sim.SimLogEntry) runStats {
	p, ai := sim.SidePlayer.Label(), sim.SideAI.Label()
	rs := runStats{firstHitTick: -1}
	for _, e := range entries {
		switch e.Category {
		case "fire":
			if e.Key != "shot" {
				continue
			}
			switch e.Side {
			case p:
				rs.playerShots++
			case ai:
				rs.aiShots++
			}
		case "hit":
			if e.Key != "damage" {
				continue
			}
			if rs.firstHitTick < 0 {
				rs.firstHitTick = e.Tick
			}
			switch e.Side {
			case p:
				rs.playerHits++
			case ai:
				rs.aiHits++
			}
		case "tank":
			if e.Key != "destroyed" {
				continue
			}
			switch e.Side {
			case p:
				rs.playerLost++
			case ai:
				rs.aiLost++
			}
		}
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.matchID)
	if !rs.resolved {
		fmt.Printf("unresolved after %d ticks\n", rs.ticks)
	} else {
		fmt.Printf("winner=%s reason=%s round=%d score=%d player_hp=%.0f ai_hp=%.0f ticks=%d\n",
			rs.outcome.Winner, rs.outcome.Reason, rs.outcome.Round, rs.outcome.Score,
			rs.outcome.PlayerHealth, rs.outcome.AIHealth, rs.ticks)
	}
	fmt.Printf("shots: player=%d ai=%d  hits: player=%d (%s) ai=%d (%s)\n",
		rs.playerShots, rs.aiShots,
		rs.playerHits, pct(rs.playerHits, rs.playerShots),
		rs.aiHits, pct(rs.aiHits, rs.aiShots))
	fmt.Printf("destroyed: player=%d ai=%d first_hit_tick=%s\n\n",
		rs.playerLost, rs.aiLost, tickString(rs.firstHitTick))
}

func printAggregate(all []runStats) {
	resolved, playerWins := 0, 0
	scoreSum := 0
	var pShots, aShots, pHits, aHits, pLost, aLost int
	hitTicks := make([]int, 0, len(all))

	for _, rs := range all {
		if rs.resolved {
			resolved++
			scoreSum += rs.outcome.Score
			if rs.outcome.PlayerWon() {
				playerWins++
			}
		}
		pShots += rs.playerShots
		aShots += rs.aiShots
		pHits += rs.playerHits
		aHits += rs.aiHits
		pLost += rs.playerLost
		aLost += rs.aiLost
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d resolved=%d player_win_rate=%s avg_score=%.1f\n",
		len(all), resolved, pct(playerWins, resolved), avg(scoreSum, resolved))
	fmt.Printf("avg_per_run: player_shots=%.1f ai_shots=%.1f player_hits=%.1f ai_hits=%.1f\n",
		avg(pShots, len(all)), avg(aShots, len(all)), avg(pHits, len(all)), avg(aHits, len(all)))
	fmt.Printf("accuracy: player=%s ai=%s\n", pct(pHits, pShots), pct(aHits, aShots))
	fmt.Printf("destroyed_total: player=%d ai=%d avg_first_hit_tick=%s\n", pLost, aLost, avgTickString(hitTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(num, den int) string {
	if den <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(num)/float64(den)*100)
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return fmt.Sprint(t)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
