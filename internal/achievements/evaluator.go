package achievements

import (
	"context"

	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/store"
)

// Observation is one scored event as seen by the evaluator. MAX metrics
// (Score, ComboPeak) carry absolute observed values; SUM metrics carry
// per-event deltas (one more word, one more session, one more win).
type Observation struct {
	Score        int
	ComboPeak    int
	WordsLearned int
	Sessions     int
	Wins         int
	SessionID    string
}

// Evaluator holds the achievement records and applies observations to them.
// Completed records are skipped forever; completion credits the ledger and
// appends an achievement event exactly once.
type Evaluator struct {
	records   []*Achievement
	ledger    *economy.Ledger
	eventRepo store.EventRepo
}

// NewEvaluator builds an evaluator over the default achievement set, seeding
// progress from snapshot data when present. ledger and eventRepo may be nil
// in tests.
func NewEvaluator(saved map[string]store.AchievementProgressData, ledger *economy.Ledger, eventRepo store.EventRepo) *Evaluator {
	records := Defaults()
	for _, a := range records {
		if prev, ok := saved[a.ID]; ok {
			a.Progress = prev.Progress
			a.Completed = prev.Completed
		}
	}
	return &Evaluator{records: records, ledger: ledger, eventRepo: eventRepo}
}

// Records returns the achievement records in display order.
func (e *Evaluator) Records() []*Achievement {
	return e.records
}

// Observe folds an observation into every incomplete achievement and returns
// the ones that completed on this call, in display order.
func (e *Evaluator) Observe(ctx context.Context, obs Observation) []*Achievement {
	var completed []*Achievement
	for _, a := range e.records {
		if a.Completed {
			continue
		}

		value := obs.value(a.Metric)
		switch a.Metric.Rule() {
		case CombineMax:
			if value > a.Progress {
				a.Progress = value
			}
		case CombineSum:
			a.Progress += value
		}

		if a.Progress >= a.Target {
			a.Completed = true
			e.grant(ctx, a, obs.SessionID)
			completed = append(completed, a)
		}
	}
	return completed
}

// SnapshotData returns the progress map for snapshot persistence.
func (e *Evaluator) SnapshotData() map[string]store.AchievementProgressData {
	out := make(map[string]store.AchievementProgressData, len(e.records))
	for _, a := range e.records {
		out[a.ID] = store.AchievementProgressData{
			Progress:  a.Progress,
			Completed: a.Completed,
		}
	}
	return out
}

// grant pays the reward and records the completion.
func (e *Evaluator) grant(ctx context.Context, a *Achievement, sessionID string) {
	if e.ledger != nil {
		e.ledger.Credit(ctx, a.Reward, "achievement: "+a.Name, sessionID)
	}
	if e.eventRepo != nil {
		_ = e.eventRepo.AppendAchievementEvent(ctx, store.AchievementEventData{
			AchievementID: a.ID,
			Name:          a.Name,
			Reward:        a.Reward,
			SessionID:     sessionID,
		})
	}
}

// value extracts the observation field for a metric.
func (o Observation) value(m Metric) int {
	switch m {
	case MetricScore:
		return o.Score
	case MetricComboPeak:
		return o.ComboPeak
	case MetricWordsLearned:
		return o.WordsLearned
	case MetricSessions:
		return o.Sessions
	case MetricWins:
		return o.Wins
	default:
		return 0
	}
}
