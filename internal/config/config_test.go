package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/Tank-Duel/internal/sim"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	s := FromEnv(lookupMap(nil))
	if s.Sim.MaxHealth != 100 || s.Sim.DeathPolicy != sim.DeathRespawns {
		t.Fatalf("unexpected defaults %+v", s.Sim)
	}
	if s.Difficulty != 1 || s.MaxRounds != sim.DefaultMaxRounds || s.LogLevel != log.InfoLevel {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if len(s.Warnings) != 0 {
		t.Fatalf("no warnings expected, got %v", s.Warnings)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	s := FromEnv(lookupMap(map[string]string{
		EnvPreset:       "classic",
		EnvRoundSeconds: "12.5",
		EnvDeathPolicy:  "respawn",
		EnvDifficulty:   "3",
		EnvMaxRounds:    "endless",
		EnvSeed:         "-7",
		EnvLogLevel:     "debug",
	}))
	if s.Preset != "classic" || s.Sim.MaxHealth != 200 {
		t.Fatalf("classic preset should apply, got %+v", s.Sim)
	}
	if s.Sim.RoundDuration != 12500*time.Millisecond {
		t.Fatalf("expected 12.5s rounds, got %v", s.Sim.RoundDuration)
	}
	if s.Sim.DeathPolicy != sim.DeathRespawns {
		t.Fatal("explicit policy should override the preset")
	}
	if s.Difficulty != 3 || s.MaxRounds != sim.EndlessRounds || s.Seed != -7 {
		t.Fatalf("unexpected overrides %+v", s)
	}
	if s.LogLevel != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", s.LogLevel)
	}
	if got := s.Start(); got.Difficulty != 3 || got.MaxRounds != sim.EndlessRounds {
		t.Fatalf("unexpected start options %+v", got)
	}
}

func TestFromEnv_MalformedWarns(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvPreset, "arcade"},
		{EnvMaxHealth, "-10"},
		{EnvRoundSeconds, "soon"},
		{EnvDeathPolicy, "sudden"},
		{EnvDifficulty, "0"},
		{EnvMaxRounds, "lots"},
		{EnvSeed, "1.5"},
		{EnvLogLevel, "shouty"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := FromEnv(lookupMap(map[string]string{tt.key: tt.val}))
			if len(s.Warnings) != 1 {
				t.Fatalf("expected one warning, got %v", s.Warnings)
			}
			d := Default()
			if s.Sim.MaxHealth != d.Sim.MaxHealth || s.Difficulty != d.Difficulty || s.MaxRounds != d.MaxRounds {
				t.Fatalf("malformed value should keep defaults, got %+v", s)
			}
		})
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("missing .env should be skipped, got %v", err)
	}
	if s.Preset == "" {
		t.Fatal("expected resolved settings")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	// Register cleanup, then clear so the file value is visible.
	t.Setenv(EnvMaxHealth, "")
	os.Unsetenv(EnvMaxHealth)
	t.Setenv(EnvDifficulty, "2")

	p := filepath.Join(t.TempDir(), ".env")
	body := EnvMaxHealth + "=150\n" + EnvDifficulty + "=3\n"
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Sim.MaxHealth != 150 {
		t.Fatalf("expected max health from file, got %.0f", s.Sim.MaxHealth)
	}
	if s.Difficulty != 2 {
		t.Fatalf("process env should win over the file, got %d", s.Difficulty)
	}
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatal("a directory is not a readable .env file")
	}
}
