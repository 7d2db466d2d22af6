// Package tui provides the Bubble Tea integration for the letterfall
// platform. It handles the terminal UI loop, input mapping, and the
// countdown ticker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one countdown tick. Gen identifies the ticker generation that
// scheduled it: the model bumps its generation on every exit from the
// running phase, so a tick scheduled before the exit arrives stale and is
// dropped instead of mutating a reset session.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a Bubble Tea command that delivers the next countdown
// tick for the given ticker generation.
func tickCmd(gen, tickMs int) tea.Cmd {
	interval := time.Duration(tickMs) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
