package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/registry"
	"github.com/letterfall/letterfall/internal/storage"
)

// hudRows is the number of terminal rows reserved below the game screen
// for the countdown bar and the help footer.
const hudRows = 2

// Model is the Bubble Tea model for running a letterfall game session.
// It owns the countdown ticker: ticks are scheduled only while a session
// is running and carry a generation number, so every exit from the running
// phase invalidates ticks already in flight.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	progress  progress.Model
	gameState core.GameState

	tickGen    int // current ticker generation; older ticks are stale
	quitting   bool
	scoreSaved bool // whether the score has been logged for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = barWidth(cfg.ScreenW)

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		progress:  bar,
		gameState: game.State(),
	}
}

// screenRows returns the game screen height for a terminal height.
func screenRows(termH int) int {
	return core.Max(termH-hudRows, 1)
}

// barWidth returns the countdown bar width for a terminal width.
func barWidth(termW int) int {
	return core.Clamp(termW/2, 10, 60)
}

// Init initializes the model. No ticker runs until the player starts a
// session.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// playing reports whether a session is currently running.
func (m Model) playing() bool {
	return !m.gameState.Ready && !m.gameState.GameOver
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg, m.playing()) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		m.tickGen++ // invalidate any tick in flight
		return m, tea.Quit

	case core.ActionStart, core.ActionRestart:
		if !m.playing() {
			return m.startSession()
		}
		return m, nil
	}

	// While playing, plain characters are game input.
	if m.playing() {
		if r, ok := TypedRune(msg); ok {
			m.game.Press(r)
			m.gameState = m.game.State()
		}
	}

	return m, nil
}

// startSession begins a fresh session and arms a new ticker generation.
func (m Model) startSession() (tea.Model, tea.Cmd) {
	m.game.Do(core.ActionStart)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.tickGen++
	return m, tickCmd(m.tickGen, m.config.TickMs)
}

// handleResize processes window resize events. The session is not spatial,
// so it keeps running; only the buffers change size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	m.progress.Width = barWidth(msg.Width)
	return m, nil
}

// handleTick processes one countdown tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// A tick from a retired generation arrives after the session left the
	// running phase; dropping it here is what stops the ticker.
	if msg.Gen != m.tickGen {
		return m, nil
	}

	result := m.game.Tick()
	m.gameState = result.State

	if m.gameState.GameOver {
		m.tickGen++
		m.logScore()
		return m, nil
	}

	return m, tickCmd(m.tickGen, m.config.TickMs)
}

// logScore records the finished session's score, best effort, once.
func (m *Model) logScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	view := RenderScreen(m.screen)
	view += "\n" + m.renderBar()
	view += "\n" + footerStyle.Render(m.footerHint())
	return view
}

// renderBar draws the countdown as a proportion of a full refill.
func (m Model) renderBar() string {
	frac := 0.0
	if m.gameState.TimeLimit > 0 {
		frac = m.gameState.TimeLeft / m.gameState.TimeLimit
	}
	pad := (m.config.ScreenW - m.progress.Width) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + m.progress.ViewAs(frac)
}

// footerHint returns the help line for the current phase.
func (m Model) footerHint() string {
	switch {
	case m.gameState.Ready:
		return "  enter: start • q: quit"
	case m.gameState.GameOver:
		return "  r: restart • q: quit"
	default:
		return "  type the highlighted letter • esc: quit"
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
