package play

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/game"
	"github.com/AhmetShbz/wordrush/internal/router"
	"github.com/AhmetShbz/wordrush/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessions []store.SessionEventData
	ledger   []store.LedgerEventData
	grants   []store.AchievementEventData
	lastSeq  int64
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) LastSequence(_ context.Context) (int64, error) {
	return m.lastSeq, nil
}
func (m *mockEventRepo) AppendLedgerEvent(_ context.Context, data store.LedgerEventData) error {
	m.ledger = append(m.ledger, data)
	return nil
}
func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	m.grants = append(m.grants, data)
	return nil
}
func (m *mockEventRepo) QuerySessionResults(_ context.Context, _ store.QueryOpts) ([]store.SessionResultRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLedgerEvents(_ context.Context, _ store.QueryOpts) ([]store.LedgerEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryAchievementEvents(_ context.Context, _ store.QueryOpts) ([]store.AchievementEventRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
	pruneKeep []int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	m.pruneKeep = append(m.pruneKeep, keep)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testDeps(lives int) (Deps, *mockEventRepo, *mockSnapshotRepo) {
	cat := &catalog.Catalog{Items: []catalog.Item{
		{ID: "e1", Prompt: "world", Answer: "dünya", Tier: catalog.TierEasy},
		{ID: "e2", Prompt: "notebook", Answer: "defter", Tier: catalog.TierEasy},
		{ID: "e3", Prompt: "elephant", Answer: "fil", Tier: catalog.TierEasy},
		{ID: "e4", Prompt: "book", Answer: "kitap", Tier: catalog.TierEasy},
		{ID: "e5", Prompt: "pen", Answer: "kalem", Tier: catalog.TierEasy},
	}}
	profiles := map[catalog.Tier]game.Profile{
		catalog.TierEasy: {
			TimeLimitSecs:   60,
			StartingLives:   lives,
			BasePoints:      200,
			ComboMultiplier: 1.2,
			AnswerBonusSecs: 2,
		},
	}
	eventRepo := &mockEventRepo{lastSeq: 41}
	snapRepo := &mockSnapshotRepo{}

	return Deps{
		Catalog:      cat,
		Profiles:     profiles,
		EventRepo:    eventRepo,
		SnapshotRepo: snapRepo,
		Ledger:       economy.NewLedger(10000, nil),
		Bests:        map[string]int{},
	}, eventRepo, snapRepo
}

func typeWord(s *PlayScreen, word string) router.Screen {
	var scr router.Screen = s
	for _, r := range word {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestPlayScreen_TypedModeKeepsShopLetters(t *testing.T) {
	deps, _, _ := testDeps(3)
	s := New(deps, game.ModeDuel, catalog.TierEasy)
	s.Init()

	// "dünya", "defter", "fil" all contain shop letters; every rune must
	// land in the input and none may touch the wallet.
	for _, word := range []string{"dünya", "defter", "fil"} {
		typeWord(s, word)
		if got := s.input.Value(); got != word {
			t.Errorf("input after typing %q = %q", word, got)
		}
		s.input.SetValue("")
	}

	if deps.Ledger.Balance() != 10000 {
		t.Errorf("balance = %d after typing, want untouched 10000", deps.Ledger.Balance())
	}
	if len(s.session.ActiveEffects()) != 0 {
		t.Error("typing must not activate effects")
	}
}

func TestPlayScreen_TypedModeCtrlChordsBuy(t *testing.T) {
	deps, _, _ := testDeps(3)
	s := New(deps, game.ModeScramble, catalog.TierEasy)
	s.Init()

	s.Update(ctrlKey('f'))
	if deps.Ledger.Balance() != 10000-300 {
		t.Errorf("balance = %d after ctrl+f, want 9700", deps.Ledger.Balance())
	}
	if len(s.session.ActiveEffects()) != 1 {
		t.Fatal("ctrl+f should activate time freeze")
	}
	if s.input.Value() != "" {
		t.Errorf("ctrl chord leaked into input: %q", s.input.Value())
	}
}

func TestPlayScreen_ChoiceModePlainLettersBuy(t *testing.T) {
	deps, _, _ := testDeps(3)
	s := New(deps, game.ModeMatch, catalog.TierEasy)
	s.Init()

	s.Update(keyPress('f'))
	if deps.Ledger.Balance() != 10000-300 {
		t.Errorf("balance = %d after f, want 9700", deps.Ledger.Balance())
	}

	s.Update(keyPress('d'))
	if deps.Ledger.Balance() != 9700-500 {
		t.Errorf("balance = %d after d, want 9200", deps.Ledger.Balance())
	}
}

func TestPlayScreen_KeyHintsMatchBindings(t *testing.T) {
	deps, _, _ := testDeps(3)

	typed := New(deps, game.ModeDuel, catalog.TierEasy)
	hasHint := func(s *PlayScreen, key string) bool {
		for _, h := range s.KeyHints() {
			if h.Key == key {
				return true
			}
		}
		return false
	}
	if !hasHint(typed, "Ctrl+P") || !hasHint(typed, "Ctrl+F/D/X") {
		t.Errorf("typed-mode hints missing ctrl chords: %v", typed.KeyHints())
	}
	if hasHint(typed, "P") {
		t.Error("typed mode must not advertise plain P")
	}

	choice := New(deps, game.ModeMatch, catalog.TierEasy)
	if !hasHint(choice, "P") || !hasHint(choice, "F/D/X") {
		t.Errorf("choice-mode hints missing plain keys: %v", choice.KeyHints())
	}
}

func TestPlayScreen_FinalizeStampsAndPrunesSnapshot(t *testing.T) {
	deps, eventRepo, snapRepo := testDeps(1)
	s := New(deps, game.ModeDuel, catalog.TierEasy)
	s.Init()

	// One wrong answer on the last life ends the session.
	typeWord(s, "zzz")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.session.Status() != game.StatusLost {
		t.Fatalf("status = %v, want lost", s.session.Status())
	}

	var end *store.SessionEventData
	for i := range eventRepo.sessions {
		if eventRepo.sessions[i].Action == "end" {
			end = &eventRepo.sessions[i]
		}
	}
	if end == nil {
		t.Fatal("no end event recorded")
	}
	if end.Outcome != "lost" {
		t.Errorf("end outcome = %q, want lost", end.Outcome)
	}

	if len(snapRepo.snapshots) != 1 {
		t.Fatalf("snapshots saved = %d, want 1", len(snapRepo.snapshots))
	}
	if got := snapRepo.snapshots[0].Sequence; got != 41 {
		t.Errorf("snapshot sequence = %d, want the log's last sequence 41", got)
	}
	if len(snapRepo.pruneKeep) != 1 || snapRepo.pruneKeep[0] != keepSnapshots {
		t.Errorf("prune calls = %v, want one call keeping %d", snapRepo.pruneKeep, keepSnapshots)
	}
}
