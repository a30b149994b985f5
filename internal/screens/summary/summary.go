// Package summary shows the end-of-session report.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/AhmetShbz/wordrush/internal/game"
	"github.com/AhmetShbz/wordrush/internal/router"
	"github.com/AhmetShbz/wordrush/internal/ui/layout"
	"github.com/AhmetShbz/wordrush/internal/ui/theme"
)

// SummaryScreen displays the terminal result of one session.
type SummaryScreen struct {
	result  *game.Result
	newBest bool
	balance int
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary for a finished session.
func New(result *game.Result, newBest bool, balance int) *SummaryScreen {
	return &SummaryScreen{result: result, newBest: newBest, balance: balance}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Session Over" }

func (s *SummaryScreen) KeyHints() []router.KeyHint {
	return []router.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", "q":
			// Pop the summary and the finished play screen beneath it.
			pop := func() tea.Msg { return router.PopMsg{} }
			return s, tea.Sequence(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.result == nil {
		return ""
	}
	res := s.result

	var headline string
	switch res.Outcome {
	case game.StatusWon:
		headline = theme.Correct.Render("You won!")
	case game.StatusLost:
		headline = theme.Incorrect.Render("Out of lives")
	default:
		headline = theme.Incorrect.Render("Time's up")
	}

	var b strings.Builder
	b.WriteString(headline)
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(
		res.Mode.DisplayName() + " · " + res.Tier.DisplayName()))
	b.WriteString("\n\n")

	score := fmt.Sprintf("Score      %d", res.FinalScore)
	if s.newBest {
		score += "  " + theme.Coin.Render("★ new best")
	}
	stats := []string{
		score,
		fmt.Sprintf("Words      %d", res.ItemsCompleted),
		fmt.Sprintf("Best combo ×%d", res.ComboPeak),
		fmt.Sprintf("Duration   %ds", res.DurationSecs),
	}
	for _, line := range stats {
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}

	if len(res.Completed) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Achievements unlocked"))
		b.WriteString("\n")
		for _, a := range res.Completed {
			b.WriteString(theme.Coin.Render(
				fmt.Sprintf("★ %s  +%d●", a.Name, a.Reward)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Coin.Render(fmt.Sprintf("Wallet ● %d", s.balance)))

	return layout.Center(theme.Card.Render(b.String()), width, height)
}
