// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementEvent is the predicate function for achievementevent builders.
type AchievementEvent func(*sql.Selector)

// LedgerEvent is the predicate function for ledgerevent builders.
type LedgerEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
