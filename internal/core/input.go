package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard keys and touch-style buttons both resolve to one of these.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A - move piece left
	ActionRight            // Right arrow, D - move piece right
	ActionDown             // Down arrow, S - soft drop
	ActionRotate           // Up arrow, W - rotate clockwise
	ActionStart            // Enter, Space - leave the start prompt
	ActionRestart          // R - restart after game over
	ActionLanguage         // L - switch label locale
	ActionScoreboard       // Tab - toggle the session scoreboard
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionLanguage:
		return "Language"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
