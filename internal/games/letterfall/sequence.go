package letterfall

import (
	"math/rand"

	"github.com/letterfall/letterfall/internal/core"
)

// alphabetSize is the number of target characters (uppercase A-Z).
const alphabetSize = 26

// generate returns n characters, each independently uniform over A-Z.
func generate(rng *rand.Rand, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = rune('A' + rng.Intn(alphabetSize))
	}
	return out
}

// extendIfNeeded appends chunks to the target sequence until the lookahead
// ahead of the cursor exceeds the extend threshold. Called after every
// advance so the cursor can never reach an unmaterialized index.
func (g *Game) extendIfNeeded() {
	for len(g.seq)-g.cursor <= g.rules.Sequence.ExtendThreshold {
		g.seq = append(g.seq, generate(g.rng, g.rules.Sequence.ChunkSize)...)
	}
}

// Window returns the upcoming targets visible to the player, starting at the
// cursor. It is a derived view, recomputed on demand, never stored.
func (g *Game) Window() []rune {
	end := core.Min(g.cursor+g.rules.Sequence.WindowSize, len(g.seq))
	return g.seq[g.cursor:end]
}

// TypedTail returns up to n already-typed characters behind the cursor,
// oldest first. Used by the renderer to show where the player came from.
func (g *Game) TypedTail(n int) []rune {
	start := core.Max(g.cursor-n, 0)
	return g.seq[start:g.cursor]
}
