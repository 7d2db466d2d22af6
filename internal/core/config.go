package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	TickMs  int   // Countdown tick interval in milliseconds (default 100)
	Seed    int64 // RNG seed for deterministic sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		TickMs:  100,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current session score
	HighScore int     // Best score of this process lifetime
	TimeLeft  float64 // Seconds remaining on the per-letter countdown
	TimeLimit float64 // Seconds of a full countdown refill
	Ready     bool    // Session has not been started yet
	GameOver  bool    // Countdown expired, session is read-only until restart
}

// StepResult is returned by Game.Tick() after each countdown tick.
type StepResult struct {
	State GameState
}
