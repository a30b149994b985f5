package achievements

import (
	"context"
	"testing"

	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/store"
)

// grantRecorder captures achievement events appended on completion.
type grantRecorder struct {
	store.EventRepo
	grants []store.AchievementEventData
}

func (r *grantRecorder) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	r.grants = append(r.grants, data)
	return nil
}

func (r *grantRecorder) AppendLedgerEvent(_ context.Context, _ store.LedgerEventData) error {
	return nil
}

func find(e *Evaluator, id string) *Achievement {
	for _, a := range e.Records() {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func TestEvaluator_MaxMetricKeepsPeak(t *testing.T) {
	e := NewEvaluator(nil, nil, nil)

	e.Observe(t.Context(), Observation{ComboPeak: 7})
	e.Observe(t.Context(), Observation{ComboPeak: 4})

	a := find(e, "combo-10")
	if a.Progress != 7 {
		t.Errorf("combo progress = %d, want 7 (max, not sum)", a.Progress)
	}
	if a.Completed {
		t.Error("combo-10 should not complete at 7")
	}
}

func TestEvaluator_SumMetricAccumulates(t *testing.T) {
	e := NewEvaluator(nil, nil, nil)

	for i := 0; i < 3; i++ {
		e.Observe(t.Context(), Observation{WordsLearned: 1})
	}

	a := find(e, "words-100")
	if a.Progress != 3 {
		t.Errorf("words progress = %d, want 3", a.Progress)
	}
}

func TestEvaluator_CompletionPaysOnce(t *testing.T) {
	repo := &grantRecorder{}
	ledger := economy.NewLedger(0, repo)
	e := NewEvaluator(nil, ledger, repo)

	completed := e.Observe(t.Context(), Observation{Wins: 1, Sessions: 1, SessionID: "s1"})
	if len(completed) != 1 || completed[0].ID != "first-win" {
		t.Fatalf("expected first-win to complete, got %v", completed)
	}
	if ledger.Balance() != 250 {
		t.Errorf("balance = %d, want 250 reward", ledger.Balance())
	}
	if len(repo.grants) != 1 {
		t.Fatalf("expected one grant event, got %d", len(repo.grants))
	}
	if repo.grants[0].AchievementID != "first-win" {
		t.Errorf("grant event for %q, want first-win", repo.grants[0].AchievementID)
	}

	// A later win must not pay again.
	completed = e.Observe(t.Context(), Observation{Wins: 1, Sessions: 1, SessionID: "s2"})
	if len(completed) != 0 {
		t.Errorf("expected no new completions, got %d", len(completed))
	}
	if ledger.Balance() != 250 {
		t.Errorf("balance changed on repeat win: %d", ledger.Balance())
	}
	if len(repo.grants) != 1 {
		t.Errorf("expected still one grant event, got %d", len(repo.grants))
	}
}

func TestEvaluator_SeedsFromSnapshot(t *testing.T) {
	saved := map[string]store.AchievementProgressData{
		"words-100":   {Progress: 99},
		"sessions-25": {Progress: 25, Completed: true},
	}
	e := NewEvaluator(saved, nil, nil)

	if got := find(e, "words-100").Progress; got != 99 {
		t.Errorf("seeded progress = %d, want 99", got)
	}
	if !find(e, "sessions-25").Completed {
		t.Error("seeded completion lost")
	}

	// One more word tips the seeded record over.
	completed := e.Observe(t.Context(), Observation{WordsLearned: 1})
	if len(completed) != 1 || completed[0].ID != "words-100" {
		t.Fatalf("expected words-100 to complete, got %v", completed)
	}
}

func TestEvaluator_SnapshotRoundTrip(t *testing.T) {
	e := NewEvaluator(nil, nil, nil)
	e.Observe(t.Context(), Observation{Score: 4200, ComboPeak: 6})

	data := e.SnapshotData()
	restored := NewEvaluator(data, nil, nil)

	if got := find(restored, "score-5000").Progress; got != 4200 {
		t.Errorf("restored score progress = %d, want 4200", got)
	}
	if got := find(restored, "combo-10").Progress; got != 6 {
		t.Errorf("restored combo progress = %d, want 6", got)
	}
}
