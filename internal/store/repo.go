package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AchievementProgressData is the persisted progress of one achievement.
type AchievementProgressData struct {
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// SnapshotData captures the full player state at a point in time: wallet
// balance, achievement progress, and per-game personal bests. Session
// internals are never snapshotted; they are rebuilt from events if needed.
type SnapshotData struct {
	Version       int                                `json:"version"`
	WalletBalance int                                `json:"wallet_balance"`
	Achievements  map[string]AchievementProgressData `json:"achievements,omitempty"`
	BestScores    map[string]int                     `json:"best_scores,omitempty"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages player state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session boundary event ("start" or "end").
type SessionEventData struct {
	SessionID      string
	Action         string
	Mode           string
	Tier           string
	Outcome        string // terminal status for "end" events, empty for "start"
	Score          int
	ItemsCompleted int
	ComboPeak      int
	DurationSecs   int
}

// SessionResultRecord is a finished session as read back from the store.
type SessionResultRecord struct {
	SessionID      string
	Timestamp      time.Time
	Mode           string
	Tier           string
	Outcome        string
	Score          int
	ItemsCompleted int
	ComboPeak      int
	DurationSecs   int
}

// LedgerEventData captures one wallet movement.
type LedgerEventData struct {
	Delta        int // positive credit, negative debit
	BalanceAfter int
	Reason       string
	SessionID    string // empty for movements outside a session
}

// LedgerEventRecord is a wallet movement as read back from the store.
type LedgerEventRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Delta        int
	BalanceAfter int
	Reason       string
	SessionID    string
}

// AchievementEventData captures a completed achievement grant.
type AchievementEventData struct {
	AchievementID string
	Name          string
	Reward        int
	SessionID     string
}

// AchievementEventRecord is a grant as read back from the store.
type AchievementEventRecord struct {
	Sequence      int64
	Timestamp     time.Time
	AchievementID string
	Name          string
	Reward        int
	SessionID     string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// LastSequence returns the sequence of the most recently appended event,
	// or 0 when the log is empty. Snapshots record it as their consistency
	// anchor.
	LastSequence(ctx context.Context) (int64, error)

	// AppendLedgerEvent records a wallet credit or debit.
	AppendLedgerEvent(ctx context.Context, data LedgerEventData) error

	// AppendAchievementEvent records an achievement completion.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// QuerySessionResults returns finished sessions, most recent first.
	QuerySessionResults(ctx context.Context, opts QueryOpts) ([]SessionResultRecord, error)

	// QueryLedgerEvents returns wallet movements, most recent first.
	QueryLedgerEvents(ctx context.Context, opts QueryOpts) ([]LedgerEventRecord, error)

	// QueryAchievementEvents returns grants, most recent first.
	QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error)
}
