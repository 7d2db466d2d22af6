// Package letterfall implements the letterfall typing game.
// Upcoming letters scroll across a strip; the player must type each one
// before a per-letter countdown expires. Every correct keystroke advances
// the cursor, scores points, and refills the countdown.
package letterfall

import (
	"fmt"
	"math/rand"
	"unicode"

	"github.com/letterfall/letterfall/internal/config"
	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/registry"
)

// Phase represents the session state machine.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// CursorMarker is drawn under the current target letter.
const CursorMarker = '▲'

// tailShown is how many already-typed letters stay visible behind the cursor.
const tailShown = 5

var configPath string

// SetConfigPath sets a custom rules config path for the next game creation.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the letterfall game logic. One live session per value.
type Game struct {
	cfg   core.RuntimeConfig
	rules config.GameConfig
	rng   *rand.Rand

	phase     Phase
	seq       []rune // append-only target sequence, materialized in chunks
	cursor    int    // index of the current target; 0 <= cursor <= len(seq)
	score     int
	highScore int // survives Reset; updated only at the Playing->GameOver transition
	ticksLeft int // countdown in tenths of a second; 0 means expired
	tick      uint64
}

// New creates a new letterfall game instance.
func New() *Game {
	return &Game{phase: PhaseReady}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "letterfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Letterfall"
}

// Reset returns the game to the Ready phase. The high score is the only
// state that survives: it belongs to the process lifetime, not the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rules, err := config.LoadGame(configPath)
	if err != nil {
		rules = config.DefaultGameConfig()
	}

	g.cfg = cfg
	g.rules = rules
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = PhaseReady
	g.seq = nil
	g.cursor = 0
	g.score = 0
	g.ticksLeft = rules.Countdown.StartTicks
	g.tick = 0
}

// Do applies a semantic action. Start and Restart are only honored outside
// a running session; everything else is ignored here.
func (g *Game) Do(a core.Action) {
	switch a {
	case core.ActionStart, core.ActionRestart:
		if g.phase != PhasePlaying {
			g.start()
		}
	}
}

// start begins a fresh session: Ready -> Playing or GameOver -> Playing.
func (g *Game) start() {
	g.score = 0
	g.cursor = 0
	g.ticksLeft = g.rules.Countdown.StartTicks
	g.tick = 0
	g.seq = generate(g.rng, g.rules.Sequence.InitialSize)
	g.phase = PhasePlaying
}

// Press delivers one typed character. Characters are case-normalized to
// uppercase; non-letter input is ignored silently. A match advances the
// cursor, scores points, and refills the countdown; a mismatch changes
// nothing (no penalty). Returns true if the character matched.
func (g *Game) Press(r rune) bool {
	if g.phase != PhasePlaying {
		return false
	}

	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return false
	}

	if r != g.seq[g.cursor] {
		return false
	}

	g.cursor++
	g.score += g.rules.Scoring.PointsPerMatch
	g.ticksLeft = g.rules.Countdown.StartTicks
	g.extendIfNeeded()
	return true
}

// Tick advances the countdown by one tenth of a second. When the countdown
// reaches exactly zero, the session transitions to GameOver and the high
// score is folded in. Ticks outside Playing are ignored, so a stale ticker
// can never mutate a reset session.
func (g *Game) Tick() core.StepResult {
	if g.phase != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.ticksLeft > 0 {
		g.ticksLeft--
	}
	if g.ticksLeft <= 0 {
		g.ticksLeft = 0
		g.finish()
	}

	return core.StepResult{State: g.State()}
}

// finish performs the Playing -> GameOver transition. The high score is
// updated here and nowhere else.
func (g *Game) finish() {
	g.highScore = core.Max(g.highScore, g.score)
	g.phase = PhaseGameOver
}

// TimeLeft returns the countdown in seconds. One tick is a tenth of a
// second, so the value is always an exact multiple of 0.1.
func (g *Game) TimeLeft() float64 {
	return float64(g.ticksLeft) / 10.0
}

// TimeFraction returns the countdown as a proportion of a full refill,
// in [0, 1]. Used for the progress display.
func (g *Game) TimeFraction() float64 {
	return core.ClampF(float64(g.ticksLeft)/float64(g.rules.Countdown.StartTicks), 0, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		TimeLeft:  g.TimeLeft(),
		TimeLimit: float64(g.rules.Countdown.StartTicks) / 10.0,
		Ready:     g.phase == PhaseReady,
		GameOver:  g.phase == PhaseGameOver,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()

	// HUD
	hud := fmt.Sprintf(" Score: %d   Best: %d   Time: %.1fs ", g.score, g.highScore, g.TimeLeft())
	dst.DrawText(2, 0, hud)

	// Letter strip: dimmed tail, highlighted cursor target, upcoming window
	stripY := h / 2
	tail := g.TypedTail(tailShown)
	window := g.Window()

	x := (w - (len(tail) + len(window) + 1)) / 2
	if x < 1 {
		x = 1
	}
	for _, r := range tail {
		dst.SetCell(x, stripY, r, core.ColorGray)
		x++
	}
	for i, r := range window {
		if i == 0 {
			dst.SetCell(x, stripY, r, core.ColorBrightYellow)
			dst.SetCell(x, stripY+1, CursorMarker, core.ColorBrightYellow)
		} else {
			dst.SetCell(x, stripY, r, core.ColorWhite)
		}
		x++
	}

	switch g.phase {
	case PhaseReady:
		g.drawCenteredMessage(dst, "LETTERFALL", "Type the highlighted letter before time runs out  |  Enter to start")
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", g.score, g.highScore))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("letterfall", func() registry.Game {
		return New()
	})
}
