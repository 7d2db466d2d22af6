// Package config provides YAML-based rules configuration for the
// letterfall platform.
package config

// GameConfig contains all tunable rules for the letterfall game.
// The defaults match the classic rules: a 3.0 second countdown in 100 ms
// ticks, 30 letters up front, 20-letter extensions, 100 points per match.
type GameConfig struct {
	Countdown CountdownConfig `yaml:"countdown"`
	Sequence  SequenceConfig  `yaml:"sequence"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// CountdownConfig defines the per-letter countdown.
type CountdownConfig struct {
	// StartTicks is the countdown refill in ticks. Each tick is one tenth
	// of a second of time left, so 30 ticks = 3.0 seconds.
	StartTicks int `yaml:"start_ticks"`
	// TickMs is the real-time interval between countdown ticks.
	TickMs int `yaml:"tick_ms"`
}

// SequenceConfig defines how the target letter sequence is materialized.
type SequenceConfig struct {
	InitialSize     int `yaml:"initial_size"`     // Letters generated at session start
	ChunkSize       int `yaml:"chunk_size"`       // Letters appended per extension
	ExtendThreshold int `yaml:"extend_threshold"` // Extend when lookahead drops to this
	WindowSize      int `yaml:"window_size"`      // Upcoming letters shown to the player
}

// ScoringConfig defines score bookkeeping.
type ScoringConfig struct {
	PointsPerMatch int `yaml:"points_per_match"`
}

// Normalize clamps nonsensical values to workable minimums. A zero value
// (missing YAML key) falls back to the default for that field. The extend
// threshold may never exceed the chunk size, otherwise a single extension
// could leave the lookahead below the threshold forever.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()

	if c.Countdown.StartTicks <= 0 {
		c.Countdown.StartTicks = def.Countdown.StartTicks
	}
	if c.Countdown.TickMs <= 0 {
		c.Countdown.TickMs = def.Countdown.TickMs
	}
	if c.Sequence.ChunkSize <= 0 {
		c.Sequence.ChunkSize = def.Sequence.ChunkSize
	}
	if c.Sequence.ExtendThreshold <= 0 {
		c.Sequence.ExtendThreshold = def.Sequence.ExtendThreshold
	}
	if c.Sequence.ExtendThreshold > c.Sequence.ChunkSize {
		c.Sequence.ExtendThreshold = c.Sequence.ChunkSize
	}
	if c.Sequence.InitialSize <= c.Sequence.ExtendThreshold {
		c.Sequence.InitialSize = c.Sequence.ExtendThreshold + c.Sequence.ChunkSize/2
	}
	if c.Sequence.WindowSize <= 0 {
		c.Sequence.WindowSize = def.Sequence.WindowSize
	}
	if c.Scoring.PointsPerMatch <= 0 {
		c.Scoring.PointsPerMatch = def.Scoring.PointsPerMatch
	}
}
