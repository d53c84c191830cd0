// Package tui runs the stabilizer in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to actions, schedules refresh ticks and turns the
// game's screen buffer into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one refresh of the gravity clock. ID names the tick chain it
// belongs to; ticks from a superseded chain are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that delivers the next tick of
// chain id at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
