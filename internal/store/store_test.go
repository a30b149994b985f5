package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	cur, err := sc.Current(ctx)
	if err != nil {
		t.Fatalf("current (fresh): %v", err)
	}
	if cur != 0 {
		t.Errorf("fresh counter Current = %d, want 0", cur)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if expected := int64(i + 1); seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	// Current reports the last issued number without advancing.
	for i := 0; i < 2; i++ {
		cur, err = sc.Current(ctx)
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		if cur != 5 {
			t.Errorf("Current = %d, want 5", cur)
		}
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}

	last, err := repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence (empty): %v", err)
	}
	if last != 0 {
		t.Errorf("empty log LastSequence = %d, want 0", last)
	}

	// Interleave event types; the global counter must order across them.
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Mode: "duel", Tier: "easy",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendLedgerEvent(ctx, LedgerEventData{
		Delta: -300, BalanceAfter: 700, Reason: "power-up: Time Freeze", SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("append ledger: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Mode: "duel", Tier: "easy",
		Outcome: "won", Score: 10200, ItemsCompleted: 12, ComboPeak: 7, DurationSecs: 55,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
	err = repo.AppendAchievementEvent(ctx, AchievementEventData{
		AchievementID: "first-win", Name: "First Victory", Reward: 250, SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("append achievement: %v", err)
	}

	last, err = repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if last != 4 {
		t.Errorf("LastSequence = %d after 4 events, want 4", last)
	}

	// Only end events come back as results.
	results, err := repo.QuerySessionResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query results: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1 (start events are not results)", len(results))
	}
	r := results[0]
	if r.Outcome != "won" || r.Score != 10200 || r.ItemsCompleted != 12 ||
		r.ComboPeak != 7 || r.DurationSecs != 55 {
		t.Errorf("result round-trip mismatch: %+v", r)
	}

	ledger, err := repo.QueryLedgerEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query ledger: %v", err)
	}
	if len(ledger) != 1 {
		t.Fatalf("ledger events = %d, want 1", len(ledger))
	}
	if ledger[0].Sequence != 2 {
		t.Errorf("ledger sequence = %d, want 2 (between the session events)", ledger[0].Sequence)
	}
	if ledger[0].Delta != -300 || ledger[0].BalanceAfter != 700 {
		t.Errorf("ledger round-trip mismatch: %+v", ledger[0])
	}

	grants, err := repo.QueryAchievementEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query achievements: %v", err)
	}
	if len(grants) != 1 {
		t.Fatalf("achievement events = %d, want 1", len(grants))
	}
	if grants[0].Sequence != 4 || grants[0].Reward != 250 {
		t.Errorf("achievement round-trip mismatch: %+v", grants[0])
	}
}

func TestQuerySessionResults_NewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}

	for i := 0; i < 3; i++ {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "s", Action: "end", Mode: "match", Tier: "easy",
			Outcome: "won", Score: (i + 1) * 100,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	results, err := repo.QuerySessionResults(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want limit 2", len(results))
	}
	if results[0].Score != 300 || results[1].Score != 200 {
		t.Errorf("order = [%d, %d], want newest first [300, 200]",
			results[0].Score, results[1].Score)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:       1,
			WalletBalance: 1250,
			Achievements: map[string]AchievementProgressData{
				"combo-10": {Progress: 7},
			},
			BestScores: map[string]int{"duel/easy": 10200},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.WalletBalance != 1250 {
		t.Errorf("wallet = %d, want 1250", snap.Data.WalletBalance)
	}
	if snap.Data.Achievements["combo-10"].Progress != 7 {
		t.Errorf("achievement progress lost: %+v", snap.Data.Achievements)
	}
	if snap.Data.BestScores["duel/easy"] != 10200 {
		t.Errorf("best scores lost: %+v", snap.Data.BestScores)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, WalletBalance: (i + 1) * 100},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 || snap.Data.WalletBalance != 300 {
		t.Errorf("latest = seq %d wallet %d, want newest (3, 300)",
			snap.Sequence, snap.Data.WalletBalance)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
