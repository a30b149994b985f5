// Package economy manages the player's virtual currency and the power-up
// shop funded by it.
package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/AhmetShbz/wordrush/internal/store"
)

// ErrInsufficientFunds is returned when a debit exceeds the balance. The
// wallet is left untouched; a failed purchase must not apply its power-up.
var ErrInsufficientFunds = errors.New("economy: insufficient funds")

// StartingBalance is the opening wallet for a brand-new profile, enough for
// one cheap power-up so the shop is discoverable from the first session.
const StartingBalance = 500

// Ledger is the wallet for one player profile. Mutations happen only through
// Debit and Credit; every movement is appended to the event repo when one is
// attached. Access is serialized by the host event loop, so the ledger
// carries no locking of its own.
type Ledger struct {
	balance   int
	eventRepo store.EventRepo
}

// NewLedger creates a ledger with the given opening balance, normally read
// from the latest snapshot. eventRepo may be nil in tests.
func NewLedger(openingBalance int, eventRepo store.EventRepo) *Ledger {
	if openingBalance < 0 {
		openingBalance = 0
	}
	return &Ledger{balance: openingBalance, eventRepo: eventRepo}
}

// Balance returns the current balance.
func (l *Ledger) Balance() int {
	return l.balance
}

// Debit withdraws amount from the wallet. The operation is atomic: on
// ErrInsufficientFunds no partial deduction happens and nothing is recorded.
func (l *Ledger) Debit(ctx context.Context, amount int, reason, sessionID string) error {
	if amount < 0 {
		return fmt.Errorf("economy: negative debit %d", amount)
	}
	if amount > l.balance {
		return ErrInsufficientFunds
	}
	l.balance -= amount
	l.record(ctx, -amount, reason, sessionID)
	return nil
}

// Credit deposits amount into the wallet. Amounts are bounded in practice by
// the scoring engine's output range; no upper bound is enforced here.
func (l *Ledger) Credit(ctx context.Context, amount int, reason, sessionID string) {
	if amount <= 0 {
		return
	}
	l.balance += amount
	l.record(ctx, amount, reason, sessionID)
}

func (l *Ledger) record(ctx context.Context, delta int, reason, sessionID string) {
	if l.eventRepo == nil {
		return
	}
	_ = l.eventRepo.AppendLedgerEvent(ctx, store.LedgerEventData{
		Delta:        delta,
		BalanceAfter: l.balance,
		Reason:       reason,
		SessionID:    sessionID,
	})
}
