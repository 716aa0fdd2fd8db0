// Package config resolves the match settings for the binaries from defaults,
// optional .env files and TANKDUEL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

// Environment variable names.
const (
	EnvPreset       = "TANKDUEL_PRESET"
	EnvMaxHealth    = "TANKDUEL_MAX_HEALTH"
	EnvRoundSeconds = "TANKDUEL_ROUND_SECONDS"
	EnvDeathPolicy  = "TANKDUEL_DEATH_POLICY"
	EnvDifficulty   = "TANKDUEL_DIFFICULTY"
	EnvMaxRounds    = "TANKDUEL_MAX_ROUNDS"
	EnvSeed         = "TANKDUEL_SEED"
	EnvLogLevel     = "TANKDUEL_LOG_LEVEL"
)

// Settings is everything a binary needs to build and start a match.
type Settings struct {
	Preset     string
	Sim        sim.Config
	Difficulty int
	MaxRounds  int
	Seed       int64 // 0 means seed from the clock
	LogLevel   log.Level

	// Warnings lists values that were present but malformed and ignored.
	Warnings []string
}

// Start returns the menu options the settings describe.
func (s Settings) Start() sim.StartOptions {
	return sim.StartOptions{Difficulty: s.Difficulty, MaxRounds: s.MaxRounds}
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Preset:     "default",
		Sim:        sim.DefaultConfig(),
		Difficulty: 1,
		MaxRounds:  sim.DefaultMaxRounds,
		LogLevel:   log.InfoLevel,
	}
}

// Load reads the given .env files (".env" when none are named), then applies
// environment overrides on top of Default. Missing files are skipped; a file
// that exists but cannot be parsed is an error. Variables already set in the
// process environment win over .env values.
func Load(paths ...string) (Settings, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("load %s: %w", p, err)
		}
	}
	return FromEnv(os.LookupEnv), nil
}

// FromEnv builds settings from a lookup function.
func FromEnv(lookup func(string) (string, bool)) Settings {
	s := Default()
	warn := func(key, val, why string) {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s=%q: %s", key, val, why))
	}

	if v, ok := lookup(EnvPreset); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "default":
		case "classic":
			s.Preset = "classic"
			s.Sim = sim.ClassicConfig()
		default:
			warn(EnvPreset, v, "want default or classic")
		}
	}

	if v, ok := lookup(EnvMaxHealth); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f > 0 {
			s.Sim.MaxHealth = f
		} else {
			warn(EnvMaxHealth, v, "want a positive number")
		}
	}

	if v, ok := lookup(EnvRoundSeconds); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f > 0 {
			s.Sim.RoundDuration = time.Duration(f * float64(time.Second))
		} else {
			warn(EnvRoundSeconds, v, "want a positive number of seconds")
		}
	}

	if v, ok := lookup(EnvDeathPolicy); ok {
		if p, ok := sim.ParseDeathPolicy(v); ok {
			s.Sim.DeathPolicy = p
		} else {
			warn(EnvDeathPolicy, v, "want respawn or end")
		}
	}

	if v, ok := lookup(EnvDifficulty); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			s.Difficulty = n
		} else {
			warn(EnvDifficulty, v, "want an integer of 1 or more")
		}
	}

	if v, ok := lookup(EnvMaxRounds); ok {
		s.MaxRounds = sim.ParseMaxRounds(v)
		if s.MaxRounds == sim.DefaultMaxRounds && strings.TrimSpace(v) != strconv.Itoa(sim.DefaultMaxRounds) {
			warn(EnvMaxRounds, v, "want a positive integer or endless")
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			s.Seed = n
		} else {
			warn(EnvSeed, v, "want an integer")
		}
	}

	if v, ok := lookup(EnvLogLevel); ok {
		if lvl, err := log.ParseLevel(strings.TrimSpace(v)); err == nil {
			s.LogLevel = lvl
		} else {
			warn(EnvLogLevel, v, "want debug, info, warn or error")
		}
	}

	return s
}

// Logger builds the operator logger at the configured level.
func (s Settings) Logger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tankduel",
	})
	l.SetLevel(s.LogLevel)
	return l
}

// Report logs the resolved settings and any warnings.
func (s Settings) Report(l *log.Logger) {
	for _, w := range s.Warnings {
		l.Warn("ignoring config value", "detail", w)
	}
	l.Debug("config resolved",
		"preset", s.Preset,
		"max_health", s.Sim.MaxHealth,
		"round", s.Sim.RoundDuration,
		"death_policy", s.Sim.DeathPolicy,
		"difficulty", s.Difficulty,
		"max_rounds", s.MaxRounds,
		"seed", s.Seed,
	)
}
