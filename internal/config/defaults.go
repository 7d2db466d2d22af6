package config

import (
	_ "embed"
)

//go:embed defaults/letterfall.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default letterfall rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Countdown: CountdownConfig{
			StartTicks: 30,
			TickMs:     100,
		},
		Sequence: SequenceConfig{
			InitialSize:     30,
			ChunkSize:       20,
			ExtendThreshold: 20,
			WindowSize:      15,
		},
		Scoring: ScoringConfig{
			PointsPerMatch: 100,
		},
	}
}
