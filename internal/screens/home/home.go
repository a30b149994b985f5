// Package home is the main menu: mode picker, tier picker, achievements.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/game"
	"github.com/AhmetShbz/wordrush/internal/router"
	"github.com/AhmetShbz/wordrush/internal/screens/play"
	"github.com/AhmetShbz/wordrush/internal/screens/progress"
	"github.com/AhmetShbz/wordrush/internal/ui/layout"
	"github.com/AhmetShbz/wordrush/internal/ui/theme"
)

type stage int

const (
	stageMode stage = iota
	stageTier
)

// HomeScreen is the root menu. Picking a mode moves to the tier picker;
// picking a tier pushes a play screen.
type HomeScreen struct {
	deps     play.Deps
	stage    stage
	selected int
	mode     game.Mode
}

var _ router.Screen = (*HomeScreen)(nil)
var _ router.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps play.Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Title() string {
	if h.stage == stageTier {
		return h.mode.DisplayName()
	}
	return "Main Menu"
}

func (h *HomeScreen) KeyHints() []router.KeyHint {
	hints := []router.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
	if h.stage == stageTier {
		hints = append(hints, router.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}

// entries returns the menu rows for the current stage.
func (h *HomeScreen) entries() []string {
	if h.stage == stageTier {
		tiers := catalog.AllTiers()
		out := make([]string, len(tiers))
		for i, t := range tiers {
			out[i] = t.DisplayName()
		}
		return out
	}

	modes := game.AllModes()
	out := make([]string, 0, len(modes)+1)
	for _, m := range modes {
		out = append(out, m.DisplayName())
	}
	out = append(out, "Achievements")
	return out
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	entries := h.entries()
	switch key.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(entries)-1 {
			h.selected++
		}
	case "esc":
		if h.stage == stageTier {
			h.stage = stageMode
			h.selected = 0
		}
	case "enter":
		return h.choose()
	}
	return h, nil
}

func (h *HomeScreen) choose() (router.Screen, tea.Cmd) {
	if h.stage == stageMode {
		modes := game.AllModes()
		if h.selected < len(modes) {
			h.mode = modes[h.selected]
			h.stage = stageTier
			h.selected = 0
			return h, nil
		}
		// Last entry: achievements.
		return h, func() tea.Msg {
			return router.PushMsg{Screen: progress.New(h.deps.Evaluator)}
		}
	}

	tier := catalog.AllTiers()[h.selected]
	h.stage = stageMode
	h.selected = 0
	screen := play.New(h.deps, h.mode, tier)
	return h, func() tea.Msg {
		return router.PushMsg{Screen: screen}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	if h.stage == stageTier {
		b.WriteString(theme.Title.Render(h.mode.DisplayName()))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Pick a difficulty"))
	} else {
		b.WriteString(theme.Title.Render("WordRush"))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Learn Turkish words against the clock"))
	}
	b.WriteString("\n\n")

	for i, entry := range h.entries() {
		if i == h.selected {
			b.WriteString(theme.Selected.Render("▸ " + entry))
		} else {
			b.WriteString(theme.Unselected.Render("  " + entry))
		}
		if h.stage == stageTier {
			tier := catalog.AllTiers()[i]
			if best, ok := h.deps.Bests[play.BestKey(h.mode, tier)]; ok && best > 0 {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("  best %d", best)))
			}
		}
		b.WriteString("\n")
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}
