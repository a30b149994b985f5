package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/effects"
	"github.com/AhmetShbz/wordrush/internal/game"
	"github.com/AhmetShbz/wordrush/internal/ui/layout"
	"github.com/AhmetShbz/wordrush/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		msg := theme.Incorrect.Render("Cannot start session") + "\n\n" +
			theme.Body.Render(s.errMsg) + "\n\n" +
			theme.Hint.Render("Press any key to go back")
		return layout.Center(theme.Card.Render(msg), width, height)
	}
	if s.session == nil {
		return ""
	}

	if s.showingQuit {
		msg := theme.Title.Render("Abandon session?") + "\n\n" +
			theme.Body.Render("Progress will not be saved.") + "\n\n" +
			theme.Hint.Render("Y abandon · N keep playing")
		return layout.Center(theme.Card.Render(msg), width, height)
	}

	sections := []string{
		s.renderStats(),
		s.renderQuestion(),
		s.renderFeedback(),
		s.renderShop(),
	}
	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width, height)
}

// renderStats draws the score / lives / timer / combo bar.
func (s *PlayScreen) renderStats() string {
	sess := s.session

	timer := theme.Body.Render(fmt.Sprintf("⏱ %ds", sess.Remaining()))
	if sess.Remaining() <= 10 {
		timer = theme.Incorrect.Render(fmt.Sprintf("⏱ %ds", sess.Remaining()))
	}

	parts := []string{
		theme.Subtitle.Render(fmt.Sprintf("Score %d", sess.Score())),
		theme.Body.Render("♥ " + strings.Repeat("●", sess.Lives())),
		timer,
	}
	if sess.Combo() > 1 {
		parts = append(parts, theme.Correct.Render(fmt.Sprintf("Combo ×%d", sess.Combo())))
	}
	for _, fx := range sess.ActiveEffects() {
		parts = append(parts, theme.Coin.Render(
			fmt.Sprintf("%s %dt", fx.Type.DisplayName(), fx.Remaining)))
	}
	if sess.Status() == game.StatusPaused {
		parts = append(parts, theme.Hint.Render("PAUSED"))
	}
	return strings.Join(parts, "   ")
}

// renderQuestion draws the prompt card for the current mode.
func (s *PlayScreen) renderQuestion() string {
	sess := s.session
	item, ok := sess.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(sess.Tier().DisplayName()))
	b.WriteString("\n\n")

	switch sess.Mode() {
	case game.ModeScramble:
		b.WriteString(theme.Title.Render(sess.Scrambled()))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Unscramble · means: " + item.Prompt))
	default:
		b.WriteString(theme.Title.Render(item.Prompt))
	}

	if sess.Mode().Input() == game.InputChoice {
		b.WriteString("\n\n")
		for i, c := range sess.Choices() {
			line := fmt.Sprintf("%d. %s", i+1, c)
			if i == s.selected {
				b.WriteString(theme.Selected.Render("▸ " + line))
			} else {
				b.WriteString(theme.Unselected.Render("  " + line))
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	}

	return theme.Card.Render(b.String())
}

// renderFeedback shows the last answer result and any purchase notice.
func (s *PlayScreen) renderFeedback() string {
	lines := []string{}
	if s.last != nil {
		if s.last.Correct {
			line := theme.Correct.Render(fmt.Sprintf("✓ +%d", s.last.Points))
			if s.last.DroppedCoins > 0 {
				line += "  " + theme.Coin.Render(fmt.Sprintf("● +%d drop!", s.last.DroppedCoins))
			}
			lines = append(lines, line)
		} else {
			lines = append(lines, theme.Incorrect.Render("✗ wrong"))
		}
		for _, a := range s.last.Completed {
			lines = append(lines, theme.Coin.Render("★ "+a.Name))
		}
	}
	if s.notice != "" {
		lines = append(lines, theme.Hint.Render(s.notice))
	}
	if len(lines) == 0 {
		return " "
	}
	return strings.Join(lines, "\n")
}

// renderShop lists purchasable power-ups with their keys and costs.
func (s *PlayScreen) renderShop() string {
	keys := map[effects.Type]string{
		effects.TimeFreeze:   "F",
		effects.DoublePoints: "D",
		effects.ExtraLife:    "X",
	}
	prefix := ""
	if s.session.Mode().Input() == game.InputTyped {
		prefix = "Ctrl+"
	}

	parts := make([]string, 0, 3)
	for _, p := range economy.DefaultShop() {
		parts = append(parts, theme.Hint.Render(
			fmt.Sprintf("[%s%s] %s %d●", prefix, keys[p.Effect], p.Effect.DisplayName(), p.Cost)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}
