// Package progress lists achievements and how close each one is.
package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/AhmetShbz/wordrush/internal/achievements"
	"github.com/AhmetShbz/wordrush/internal/router"
	"github.com/AhmetShbz/wordrush/internal/ui/layout"
	"github.com/AhmetShbz/wordrush/internal/ui/theme"
)

// ProgressScreen shows the achievement list with progress bars.
type ProgressScreen struct {
	evaluator *achievements.Evaluator
}

var _ router.Screen = (*ProgressScreen)(nil)
var _ router.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the achievements screen.
func New(evaluator *achievements.Evaluator) *ProgressScreen {
	return &ProgressScreen{evaluator: evaluator}
}

func (p *ProgressScreen) Init() tea.Cmd { return nil }

func (p *ProgressScreen) Title() string { return "Achievements" }

func (p *ProgressScreen) KeyHints() []router.KeyHint {
	return []router.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "enter", "q":
			return p, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if p.evaluator == nil {
		return layout.Center(theme.Hint.Render("No achievement data"), width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Achievements"))
	b.WriteString("\n\n")

	for _, a := range p.evaluator.Records() {
		var mark, label string
		if a.Completed {
			mark = theme.Correct.Render("★")
			label = theme.Body.Render(a.Name)
		} else {
			mark = theme.Hint.Render("☆")
			label = theme.Unselected.Render(a.Name)
		}

		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			mark,
			label,
			theme.Hint.Render(renderBar(a.Progress, a.Target)),
			theme.Coin.Render(fmt.Sprintf("+%d●", a.Reward)),
		))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}

// renderBar draws a ten-cell progress bar with a count.
func renderBar(progress, target int) string {
	if progress > target {
		progress = target
	}
	filled := 0
	if target > 0 {
		filled = progress * 10 / target
	}
	return fmt.Sprintf("%s%s %d/%d",
		strings.Repeat("█", filled),
		strings.Repeat("░", 10-filled),
		progress, target,
	)
}
