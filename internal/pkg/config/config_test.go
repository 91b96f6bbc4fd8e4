package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
analysis:
  min_edge: 0.04
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Analysis.MinEdge != 0.04 {
		t.Errorf("MinEdge = %v, want 0.04 from file", cfg.Analysis.MinEdge)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug from file", cfg.Logging.Level)
	}

	// Everything unset falls back to defaults.
	if cfg.HTTP.Timeout != 25*time.Second {
		t.Errorf("Timeout = %v, want 25s", cfg.HTTP.Timeout)
	}
	if cfg.Matching.TimeToleranceMinutes != 12 {
		t.Errorf("TimeToleranceMinutes = %d, want 12", cfg.Matching.TimeToleranceMinutes)
	}
	if cfg.Matching.MinSimilarity != 0.85 {
		t.Errorf("MinSimilarity = %v, want 0.85", cfg.Matching.MinSimilarity)
	}
	if cfg.Analysis.KellyFraction != 0.25 {
		t.Errorf("KellyFraction = %v, want 0.25", cfg.Analysis.KellyFraction)
	}
	if cfg.Analysis.MaxStakePct != 0.05 {
		t.Errorf("MaxStakePct = %v, want 0.05", cfg.Analysis.MaxStakePct)
	}
	if cfg.Analysis.SwapHysteresis != 0.05 {
		t.Errorf("SwapHysteresis = %v, want 0.05", cfg.Analysis.SwapHysteresis)
	}
	if cfg.Output.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.Output.TopN)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Analysis.MinEdge != 0.025 {
		t.Errorf("MinEdge = %v, want 0.025", cfg.Analysis.MinEdge)
	}
	if cfg.Analysis.Bankroll != 1000 {
		t.Errorf("Bankroll = %v, want 1000", cfg.Analysis.Bankroll)
	}
	if cfg.Leagues.MinPriority != 1 || cfg.Leagues.MaxPriority != 2 {
		t.Errorf("priorities = %d..%d, want 1..2", cfg.Leagues.MinPriority, cfg.Leagues.MaxPriority)
	}
}
