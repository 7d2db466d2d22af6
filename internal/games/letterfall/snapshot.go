package letterfall

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Cursor    int
	SeqLen    int
	TicksLeft int
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Cursor:    g.cursor,
		SeqLen:    len(g.seq),
		TicksLeft: g.ticksLeft,
	}
}
