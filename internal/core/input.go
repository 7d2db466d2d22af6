package core

// Action represents a semantic game action, abstracted from physical key
// presses. Character input is not an Action: typed letters are delivered to
// games individually through Game.Press, because while a session is running
// every letter key belongs to the game.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter, Space - start a session from Ready or GameOver
	ActionRestart           // R - restart after game over (same effect as start)
	ActionScoreboard        // Tab - open the scoreboard (session flow only)
	ActionBack              // Esc - leave the current screen
	ActionQuit              // Ctrl+C, Q - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
