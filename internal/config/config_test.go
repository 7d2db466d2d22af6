package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Countdown.StartTicks != 30 {
		t.Errorf("Expected 30 start ticks (3.0s), got %d", cfg.Countdown.StartTicks)
	}
	if cfg.Countdown.TickMs != 100 {
		t.Errorf("Expected 100ms ticks, got %d", cfg.Countdown.TickMs)
	}
	if cfg.Sequence.InitialSize != 30 {
		t.Errorf("Expected initial size 30, got %d", cfg.Sequence.InitialSize)
	}
	if cfg.Sequence.ChunkSize != 20 {
		t.Errorf("Expected chunk size 20, got %d", cfg.Sequence.ChunkSize)
	}
	if cfg.Sequence.ExtendThreshold != 20 {
		t.Errorf("Expected extend threshold 20, got %d", cfg.Sequence.ExtendThreshold)
	}
	if cfg.Scoring.PointsPerMatch != 100 {
		t.Errorf("Expected 100 points per match, got %d", cfg.Scoring.PointsPerMatch)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}
	cfg.Normalize()

	if cfg != DefaultGameConfig() {
		t.Errorf("Embedded default %+v differs from hardcoded default %+v", cfg, DefaultGameConfig())
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yaml")

	content := `
countdown:
  start_ticks: 50
  tick_ms: 80
sequence:
  initial_size: 40
  chunk_size: 25
  extend_threshold: 10
  window_size: 12
scoring:
  points_per_match: 250
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if cfg.Countdown.StartTicks != 50 {
		t.Errorf("Expected 50 start ticks, got %d", cfg.Countdown.StartTicks)
	}
	if cfg.Countdown.TickMs != 80 {
		t.Errorf("Expected 80ms ticks, got %d", cfg.Countdown.TickMs)
	}
	if cfg.Sequence.ChunkSize != 25 {
		t.Errorf("Expected chunk size 25, got %d", cfg.Sequence.ChunkSize)
	}
	if cfg.Scoring.PointsPerMatch != 250 {
		t.Errorf("Expected 250 points per match, got %d", cfg.Scoring.PointsPerMatch)
	}
}

func TestLoadGameMissingCustomPathFails(t *testing.T) {
	if _, err := LoadGame("/nonexistent/rules.yaml"); err == nil {
		t.Error("LoadGame() with a missing explicit path should fail")
	}
}

func TestLoadGameInvalidYAMLFails(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")
	if err := os.WriteFile(path, []byte("countdown: ["), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadGame(path); err == nil {
		t.Error("LoadGame() with invalid YAML should fail")
	}
}

func TestLoadGamePartialConfigFillsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "partial.yaml")

	// Only scoring is set; everything else should normalize to defaults
	if err := os.WriteFile(path, []byte("scoring:\n  points_per_match: 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if cfg.Scoring.PointsPerMatch != 1 {
		t.Errorf("Expected 1 point per match, got %d", cfg.Scoring.PointsPerMatch)
	}
	def := DefaultGameConfig()
	if cfg.Countdown != def.Countdown {
		t.Errorf("Missing countdown section should fall back to default, got %+v", cfg.Countdown)
	}
	if cfg.Sequence != def.Sequence {
		t.Errorf("Missing sequence section should fall back to default, got %+v", cfg.Sequence)
	}
}

func TestNormalizeClampsThresholdToChunk(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Sequence.ChunkSize = 10
	cfg.Sequence.ExtendThreshold = 50

	cfg.Normalize()

	if cfg.Sequence.ExtendThreshold != 10 {
		t.Errorf("Threshold above chunk size should clamp to %d, got %d",
			cfg.Sequence.ChunkSize, cfg.Sequence.ExtendThreshold)
	}
}

func TestNormalizeGrowsTooSmallInitialSize(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Sequence.InitialSize = 5

	cfg.Normalize()

	if cfg.Sequence.InitialSize <= cfg.Sequence.ExtendThreshold {
		t.Errorf("Initial size %d must exceed extend threshold %d",
			cfg.Sequence.InitialSize, cfg.Sequence.ExtendThreshold)
	}
}

func TestNormalizeZeroConfigEqualsDefault(t *testing.T) {
	var cfg GameConfig
	cfg.Normalize()

	if cfg != DefaultGameConfig() {
		t.Errorf("Normalizing a zero config should yield the default, got %+v", cfg)
	}
}
