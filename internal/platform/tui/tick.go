// Package tui provides the Bubble Tea palette browser and its SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays visible.
const statusTimeout = 3 * time.Second

// clearStatusMsg clears the status line if it still belongs to seq.
type clearStatusMsg struct {
	seq int
}

// clearStatusCmd returns a Bubble Tea command that expires status message seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
