// Package app hosts the root Bubble Tea model: frame rendering and screen
// routing. All game logic lives below internal/game; this package only
// drives presentation.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/router"
	"github.com/AhmetShbz/wordrush/internal/screens/home"
	"github.com/AhmetShbz/wordrush/internal/screens/play"
	"github.com/AhmetShbz/wordrush/internal/ui/layout"
)

// Options wires the application's collaborators, built once in cmd/play.
type Options struct {
	Deps play.Deps
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ledger *economy.Ledger
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(home.New(opts.Deps)),
		ledger: opts.Deps.Ledger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	balance := 0
	if m.ledger != nil {
		balance = m.ledger.Balance()
	}
	header := layout.RenderHeader(title, balance, m.width)

	hints := []router.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(router.KeyHintProvider); ok {
		hints = append(provider.KeyHints(), hints...)
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
