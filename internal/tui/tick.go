// Package tui provides the Bubble Tea front end for the minesweeper engine:
// input mapping, board rendering, and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to refresh the elapsed-time clock.
type TickMsg time.Time

// tickCmd returns a command that delivers the next clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
