package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/letterfall/letterfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// The mapping is phase-aware: while a session is running, every letter key
// belongs to the game, so only control keys (ctrl+c, esc) map to actions.
// Outside a running session, plain letters like r and q become semantic
// actions again.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. The playing flag reports
// whether a session is currently running.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, playing bool) core.Action {
	key := msg.String()

	// Control keys work in every phase
	switch key {
	case "ctrl+c":
		return core.ActionQuit
	case "esc":
		return core.ActionBack
	}

	if playing {
		return core.ActionNone
	}

	switch key {
	case "enter", " ":
		return core.ActionStart
	case "r":
		return core.ActionRestart
	case "q":
		return core.ActionQuit
	case "tab":
		return core.ActionScoreboard
	}

	return core.ActionNone
}

// TypedRune extracts a single typed character from a key message.
// Returns false for control keys, navigation keys, and multi-rune input;
// only the key's textual value is consumed.
func TypedRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	return msg.Runes[0], true
}
