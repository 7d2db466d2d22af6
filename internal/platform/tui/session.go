package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/registry"
	"github.com/letterfall/letterfall/internal/storage"
)

// SessionModel manages the full session flow: game runner plus a scoreboard
// reachable with Tab from Ready or GameOver. This is the top-level model
// used for SSH sessions.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	game   registry.Game

	runner       Model
	scoreboard   ScoreboardModel
	inScoreboard bool
	quitting     bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		game:   game,
		runner: NewModel(game, store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.runner.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size for whichever child is active next
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inScoreboard {
		return m.updateScoreboard(msg)
	}
	return m.updateRunner(msg)
}

// updateRunner forwards messages to the game runner, intercepting the
// scoreboard request.
func (m SessionModel) updateRunner(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.runner.keyMapper.MapKey(keyMsg, m.runner.playing()) == core.ActionScoreboard {
			m.scoreboard = NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
			m.inScoreboard = true
			return m, nil
		}
	}

	newModel, cmd := m.runner.Update(msg)
	if runner, ok := newModel.(Model); ok {
		m.runner = runner
	}

	if m.runner.quitting {
		m.quitting = true
	}
	return m, cmd
}

// updateScoreboard forwards messages to the scoreboard, swallowing the quit
// command it emits when the user merely backs out.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.goingBack {
		m.inScoreboard = false
		return m, nil // back to the game, not out of the session
	}
	if m.scoreboard.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the active child.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inScoreboard {
		return m.scoreboard.View()
	}
	return m.runner.View()
}
