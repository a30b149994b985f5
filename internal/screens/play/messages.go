package play

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickMsg is the fixed-interval clock driving the session engine.
type tickMsg time.Time

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
