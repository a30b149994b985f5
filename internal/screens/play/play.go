package play

import (
	"context"
	"strconv"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/AhmetShbz/wordrush/internal/achievements"
	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/effects"
	"github.com/AhmetShbz/wordrush/internal/game"
	"github.com/AhmetShbz/wordrush/internal/router"
	"github.com/AhmetShbz/wordrush/internal/screens/summary"
	"github.com/AhmetShbz/wordrush/internal/store"
)

// Deps bundles the collaborators every game screen needs. Built once in
// cmd/play from the latest snapshot and shared across screens.
type Deps struct {
	Catalog      *catalog.Catalog
	Profiles     map[catalog.Tier]game.Profile
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Ledger       *economy.Ledger
	Evaluator    *achievements.Evaluator

	// Bests maps mode/tier keys to the stored personal best score.
	Bests map[string]int
}

// BestKey builds the personal-best map key for a mode and tier.
func BestKey(mode game.Mode, tier catalog.Tier) string {
	return string(mode) + "/" + string(tier)
}

// PlayScreen runs one game session and persists its result.
type PlayScreen struct {
	deps    Deps
	session *game.Session

	input       textinput.Model
	selected    int // cursor for choice modes
	last        *game.AnswerResult
	notice      string // transient purchase feedback
	errMsg      string
	showingQuit bool
	finalized   bool
}

var _ router.Screen = (*PlayScreen)(nil)
var _ router.KeyHintProvider = (*PlayScreen)(nil)

// New creates a play screen for the given mode and tier. Configuration
// problems (empty pool, missing profile) surface on screen, not as a crash.
func New(deps Deps, mode game.Mode, tier catalog.Tier) *PlayScreen {
	s := &PlayScreen{deps: deps}

	session, err := game.NewSession(game.Config{
		Mode:      mode,
		Tier:      tier,
		Catalog:   deps.Catalog,
		Profiles:  deps.Profiles,
		Ledger:    deps.Ledger,
		Evaluator: deps.Evaluator,
		SessionID: uuid.New().String(),
	})
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = session

	ti := textinput.New()
	ti.Placeholder = "Type the Turkish word..."
	ti.CharLimit = 40
	s.input = ti

	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	if s.session == nil {
		return nil
	}
	if err := s.session.Start(); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	_ = s.deps.EventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID: s.session.ID(),
		Action:    "start",
		Mode:      string(s.session.Mode()),
		Tier:      string(s.session.Tier()),
	})

	return tea.Batch(s.input.Focus(), tickCmd())
}

func (s *PlayScreen) Title() string {
	if s.session == nil {
		return "Play"
	}
	return s.session.Mode().DisplayName()
}

func (s *PlayScreen) KeyHints() []router.KeyHint {
	if s.showingQuit {
		return []router.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	hints := []router.KeyHint{}
	if s.session != nil && s.session.Mode().Input() == game.InputTyped {
		// Plain letters belong to the answer; power-ups and pause need Ctrl.
		hints = append(hints,
			router.KeyHint{Key: "Enter", Description: "Submit"},
			router.KeyHint{Key: "Ctrl+F/D/X", Description: "Buy power-up"},
			router.KeyHint{Key: "Ctrl+P", Description: "Pause"},
		)
	} else {
		hints = append(hints,
			router.KeyHint{Key: "1-4", Description: "Pick"},
			router.KeyHint{Key: "F/D/X", Description: "Buy power-up"},
			router.KeyHint{Key: "P", Description: "Pause"},
		)
	}
	hints = append(hints, router.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (s *PlayScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.typingActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleTick() (router.Screen, tea.Cmd) {
	if s.session == nil || s.session.Status().Terminal() {
		return s, nil
	}

	s.session.Tick(context.Background())
	if s.session.Status().Terminal() {
		return s, s.finalize()
	}
	return s, tickCmd()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopMsg{} }
	}
	if s.session == nil {
		return s, nil
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
			s.session.Resume()
			return s, tickCmd()
		}
		return s, nil
	}

	if s.session.Status().Terminal() {
		return s, nil
	}

	switch key {
	case "esc":
		s.session.Pause()
		s.showingQuit = true
		return s, nil
	case "ctrl+p":
		return s.togglePause()
	case "ctrl+f":
		return s, s.purchase(effects.TimeFreeze)
	case "ctrl+d":
		return s, s.purchase(effects.DoublePoints)
	case "ctrl+x":
		return s, s.purchase(effects.ExtraLife)
	}

	// Plain letters are answer text in the typed modes; only the choice
	// modes hand them to the shop. Purchases work while active or paused.
	if s.session.Mode().Input() == game.InputChoice {
		switch key {
		case "f", "F":
			return s, s.purchase(effects.TimeFreeze)
		case "d", "D":
			return s, s.purchase(effects.DoublePoints)
		case "x", "X":
			return s, s.purchase(effects.ExtraLife)
		}
	}

	if s.session.Status() == game.StatusPaused {
		if s.session.Mode().Input() == game.InputChoice && (key == "p" || key == "P") {
			return s.togglePause()
		}
		return s, nil
	}

	if s.session.Mode().Input() == game.InputChoice {
		return s.handleChoiceKey(key)
	}
	return s.handleTypedKey(msg, key)
}

func (s *PlayScreen) handleChoiceKey(key string) (router.Screen, tea.Cmd) {
	choices := s.session.Choices()

	switch key {
	case "p", "P":
		return s.togglePause()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(choices)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		return s.submitChoice(s.selected)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(choices) {
		return s.submitChoice(n - 1)
	}
	return s, nil
}

func (s *PlayScreen) handleTypedKey(msg tea.KeyMsg, key string) (router.Screen, tea.Cmd) {
	if key == "enter" {
		res := s.session.SubmitAnswer(context.Background(), s.input.Value())
		return s.afterAnswer(res)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) submitChoice(idx int) (router.Screen, tea.Cmd) {
	res := s.session.SelectOption(context.Background(), idx)
	s.selected = 0
	return s.afterAnswer(res)
}

func (s *PlayScreen) afterAnswer(res game.AnswerResult) (router.Screen, tea.Cmd) {
	if !res.Ignored {
		s.last = &res
		s.notice = ""
		s.input.SetValue("")
	}
	if s.session.Status().Terminal() {
		return s, s.finalize()
	}
	return s, nil
}

func (s *PlayScreen) togglePause() (router.Screen, tea.Cmd) {
	switch s.session.Status() {
	case game.StatusActive:
		s.session.Pause()
		return s, nil
	case game.StatusPaused:
		s.session.Resume()
		// Ticks were suspended while paused; restart the clock.
		return s, tickCmd()
	}
	return s, nil
}

// purchase buys a power-up from the shop, reporting failures inline.
func (s *PlayScreen) purchase(t effects.Type) tea.Cmd {
	p, ok := economy.FindPowerUp(t)
	if !ok {
		return nil
	}
	if err := s.session.PurchasePowerUp(context.Background(), p); err != nil {
		s.notice = "Not enough coins for " + t.DisplayName()
		return nil
	}
	s.notice = t.DisplayName() + " activated!"
	return nil
}

// finalize persists the terminal result exactly once and shows the summary.
func (s *PlayScreen) finalize() tea.Cmd {
	if s.finalized {
		return nil
	}
	s.finalized = true

	res := s.session.Result()
	ctx := context.Background()

	_ = s.deps.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      res.SessionID,
		Action:         "end",
		Mode:           string(res.Mode),
		Tier:           string(res.Tier),
		Outcome:        res.Outcome.String(),
		Score:          res.FinalScore,
		ItemsCompleted: res.ItemsCompleted,
		ComboPeak:      res.ComboPeak,
		DurationSecs:   res.DurationSecs,
	})

	// Session results credit the wallet: one coin per ten points.
	if payout := res.FinalScore / 10; payout > 0 && s.deps.Ledger != nil {
		s.deps.Ledger.Credit(ctx, payout, "session result", res.SessionID)
	}

	key := BestKey(res.Mode, res.Tier)
	newBest := res.FinalScore > s.deps.Bests[key]
	if newBest {
		s.deps.Bests[key] = res.FinalScore
	}

	s.saveSnapshot(ctx)

	balance := 0
	if s.deps.Ledger != nil {
		balance = s.deps.Ledger.Balance()
	}
	return func() tea.Msg {
		return router.PushMsg{Screen: summary.New(res, newBest, balance)}
	}
}

// keepSnapshots bounds the snapshot table; older captures add nothing once
// a newer one exists.
const keepSnapshots = 10

// saveSnapshot persists wallet balance, achievement progress, and bests,
// stamped with the event sequence the snapshot covers, then prunes old ones.
func (s *PlayScreen) saveSnapshot(ctx context.Context) {
	if s.deps.SnapshotRepo == nil {
		return
	}
	var seq int64
	if s.deps.EventRepo != nil {
		if last, err := s.deps.EventRepo.LastSequence(ctx); err == nil {
			seq = last
		}
	}

	data := store.SnapshotData{
		Version:    1,
		BestScores: s.deps.Bests,
	}
	if s.deps.Ledger != nil {
		data.WalletBalance = s.deps.Ledger.Balance()
	}
	if s.deps.Evaluator != nil {
		data.Achievements = s.deps.Evaluator.SnapshotData()
	}
	_ = s.deps.SnapshotRepo.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      data,
	})
	_ = s.deps.SnapshotRepo.Prune(ctx, keepSnapshots)
}

// typingActive reports whether free-text input should receive messages.
func (s *PlayScreen) typingActive() bool {
	return s.session != nil &&
		s.session.Status() == game.StatusActive &&
		s.session.Mode().Input() == game.InputTyped &&
		!s.showingQuit
}
