package store

import (
	"context"
	"fmt"

	"github.com/AhmetShbz/wordrush/ent"
	"github.com/AhmetShbz/wordrush/ent/achievementevent"
	"github.com/AhmetShbz/wordrush/ent/ledgerevent"
	"github.com/AhmetShbz/wordrush/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetTier(data.Tier).
		SetOutcome(data.Outcome).
		SetScore(data.Score).
		SetItemsCompleted(data.ItemsCompleted).
		SetComboPeak(data.ComboPeak).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) LastSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) AppendLedgerEvent(ctx context.Context, data LedgerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LedgerEvent.Create().
		SetSequence(seqNum).
		SetDelta(data.Delta).
		SetBalanceAfter(data.BalanceAfter).
		SetReason(data.Reason).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save ledger event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetAchievementID(data.AchievementID).
		SetName(data.Name).
		SetReward(data.Reward).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionResults(ctx context.Context, opts QueryOpts) ([]SessionResultRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	query = applySessionOpts(query, opts)

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session results: %w", err)
	}

	records := make([]SessionResultRecord, len(events))
	for i, e := range events {
		records[i] = SessionResultRecord{
			SessionID:      e.SessionID,
			Timestamp:      e.Timestamp,
			Mode:           e.Mode,
			Tier:           e.Tier,
			Outcome:        e.Outcome,
			Score:          e.Score,
			ItemsCompleted: e.ItemsCompleted,
			ComboPeak:      e.ComboPeak,
			DurationSecs:   e.DurationSecs,
		}
	}
	return records, nil
}

func (r *eventRepo) QueryLedgerEvents(ctx context.Context, opts QueryOpts) ([]LedgerEventRecord, error) {
	query := r.client.LedgerEvent.Query().
		Order(ent.Desc(ledgerevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(ledgerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(ledgerevent.SequenceLT(opts.Before))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ledger events: %w", err)
	}

	records := make([]LedgerEventRecord, len(events))
	for i, e := range events {
		records[i] = LedgerEventRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			Delta:        e.Delta,
			BalanceAfter: e.BalanceAfter,
			Reason:       e.Reason,
			SessionID:    e.SessionID,
		}
	}
	return records, nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error) {
	query := r.client.AchievementEvent.Query().
		Order(ent.Desc(achievementevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}

	records := make([]AchievementEventRecord, len(events))
	for i, e := range events {
		records[i] = AchievementEventRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			AchievementID: e.AchievementID,
			Name:          e.Name,
			Reward:        e.Reward,
			SessionID:     e.SessionID,
		}
	}
	return records, nil
}

// applySessionOpts applies shared query options to a session event query.
func applySessionOpts(query *ent.SessionEventQuery, opts QueryOpts) *ent.SessionEventQuery {
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}
	return query
}
