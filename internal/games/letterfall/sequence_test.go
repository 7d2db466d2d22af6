package letterfall

import (
	"math/rand"
	"testing"

	"github.com/letterfall/letterfall/internal/core"
)

func TestGenerateLengthAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seq := generate(rng, 1000)
	if len(seq) != 1000 {
		t.Fatalf("Expected 1000 characters, got %d", len(seq))
	}
	for i, r := range seq {
		if r < 'A' || r > 'Z' {
			t.Fatalf("Character %d is %q, want A-Z", i, r)
		}
	}
}

func TestGenerateCoversAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seen := make(map[rune]bool)
	for _, r := range generate(rng, 10000) {
		seen[r] = true
	}
	if len(seen) != alphabetSize {
		t.Errorf("Expected all %d letters over 10000 draws, got %d", alphabetSize, len(seen))
	}
}

func TestGenerateZeroLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if seq := generate(rng, 0); len(seq) != 0 {
		t.Errorf("Expected empty sequence, got %d characters", len(seq))
	}
}

func TestExtendAppendsWholeChunks(t *testing.T) {
	g := newTestGame(5)
	g.Do(core.ActionStart)

	initial := len(g.seq)
	prefix := append([]rune(nil), g.seq...)

	// Push the cursor to the threshold so one extension fires
	g.cursor = initial - g.rules.Sequence.ExtendThreshold
	g.extendIfNeeded()

	if len(g.seq) != initial+g.rules.Sequence.ChunkSize {
		t.Errorf("Expected one chunk of %d appended, got length %d (was %d)",
			g.rules.Sequence.ChunkSize, len(g.seq), initial)
	}
	for i, r := range prefix {
		if g.seq[i] != r {
			t.Fatalf("Extension rewrote index %d: had %q, now %q", i, r, g.seq[i])
		}
	}
}

func TestExtendLoopsUntilLookaheadRestored(t *testing.T) {
	g := newTestGame(5)
	g.Do(core.ActionStart)

	// Jump far past the end; extension must catch up in one call
	g.cursor = len(g.seq) + 3*g.rules.Sequence.ChunkSize
	g.extendIfNeeded()

	if lookahead := len(g.seq) - g.cursor; lookahead <= g.rules.Sequence.ExtendThreshold {
		t.Errorf("Lookahead %d still at or below threshold %d", lookahead, g.rules.Sequence.ExtendThreshold)
	}
}

func TestWindowStartsAtCursor(t *testing.T) {
	g := newTestGame(5)
	g.Do(core.ActionStart)

	g.Press(target(g))
	g.Press(target(g))

	window := g.Window()
	if len(window) != g.rules.Sequence.WindowSize {
		t.Errorf("Expected window of %d, got %d", g.rules.Sequence.WindowSize, len(window))
	}
	if window[0] != g.seq[g.cursor] {
		t.Errorf("Window should start at the cursor: got %q, want %q", window[0], g.seq[g.cursor])
	}
}

func TestWindowClampedBeforeStart(t *testing.T) {
	g := newTestGame(5)

	// Ready phase has no sequence yet
	if window := g.Window(); len(window) != 0 {
		t.Errorf("Expected empty window before start, got %d characters", len(window))
	}
}

func TestTypedTail(t *testing.T) {
	g := newTestGame(5)
	g.Do(core.ActionStart)

	if tail := g.TypedTail(5); len(tail) != 0 {
		t.Errorf("Expected empty tail at cursor 0, got %d characters", len(tail))
	}

	for i := 0; i < 8; i++ {
		g.Press(target(g))
	}

	tail := g.TypedTail(5)
	if len(tail) != 5 {
		t.Fatalf("Expected tail capped at 5, got %d", len(tail))
	}
	for i, r := range tail {
		if want := g.seq[g.cursor-5+i]; r != want {
			t.Errorf("Tail[%d] = %q, want %q", i, r, want)
		}
	}
}
