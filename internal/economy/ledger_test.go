package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetShbz/wordrush/internal/effects"
	"github.com/AhmetShbz/wordrush/internal/store"
)

// recordingRepo captures appended ledger events for inspection.
type recordingRepo struct {
	store.EventRepo
	ledger []store.LedgerEventData
}

func (r *recordingRepo) AppendLedgerEvent(_ context.Context, data store.LedgerEventData) error {
	r.ledger = append(r.ledger, data)
	return nil
}

func TestLedger_DebitAndCredit(t *testing.T) {
	repo := &recordingRepo{}
	l := NewLedger(1000, repo)

	require.NoError(t, l.Debit(t.Context(), 300, "power-up: Time Freeze", "s1"))
	assert.Equal(t, 700, l.Balance())

	l.Credit(t.Context(), 50, "power-up drop", "s1")
	assert.Equal(t, 750, l.Balance())

	require.Len(t, repo.ledger, 2)
	assert.Equal(t, -300, repo.ledger[0].Delta)
	assert.Equal(t, 700, repo.ledger[0].BalanceAfter)
	assert.Equal(t, 50, repo.ledger[1].Delta)
	assert.Equal(t, 750, repo.ledger[1].BalanceAfter)
}

func TestLedger_InsufficientFundsLeavesBalance(t *testing.T) {
	repo := &recordingRepo{}
	l := NewLedger(1000, repo)

	err := l.Debit(t.Context(), 1500, "power-up: Double Points", "s1")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 1000, l.Balance(), "failed debit must not touch the balance")
	assert.Empty(t, repo.ledger, "failed debit must not be recorded")
}

func TestLedger_ExactBalanceDebit(t *testing.T) {
	l := NewLedger(300, nil)
	require.NoError(t, l.Debit(t.Context(), 300, "power-up: Time Freeze", ""))
	assert.Equal(t, 0, l.Balance())
}

func TestLedger_NegativeDebitRejected(t *testing.T) {
	l := NewLedger(1000, nil)
	err := l.Debit(t.Context(), -10, "bogus", "")
	require.Error(t, err)
	assert.Equal(t, 1000, l.Balance())
}

func TestLedger_NonPositiveCreditIgnored(t *testing.T) {
	repo := &recordingRepo{}
	l := NewLedger(100, repo)
	l.Credit(t.Context(), 0, "noop", "")
	l.Credit(t.Context(), -5, "noop", "")
	assert.Equal(t, 100, l.Balance())
	assert.Empty(t, repo.ledger)
}

func TestLedger_NegativeOpeningBalanceClamped(t *testing.T) {
	l := NewLedger(-50, nil)
	assert.Equal(t, 0, l.Balance())
}

func TestDefaultShop(t *testing.T) {
	shop := DefaultShop()
	require.Len(t, shop, 3)

	freeze, ok := FindPowerUp(effects.TimeFreeze)
	require.True(t, ok)
	assert.Equal(t, 300, freeze.Cost)
	assert.Equal(t, 10, freeze.DurationTicks)

	life, ok := FindPowerUp(effects.ExtraLife)
	require.True(t, ok)
	assert.Zero(t, life.DurationTicks, "extra life is instant")

	_, ok = FindPowerUp(effects.Type("mystery"))
	assert.False(t, ok)
}
