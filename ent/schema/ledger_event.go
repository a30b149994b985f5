package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LedgerEvent records one virtual-currency movement.
type LedgerEvent struct {
	ent.Schema
}

func (LedgerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LedgerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("delta").
			Comment("Positive credit, negative debit"),
		field.Int("balance_after").
			NonNegative().
			Comment("Wallet balance after applying the delta"),
		field.String("reason").
			NotEmpty().
			Comment("What caused the movement (purchase, drop, reward, session result)"),
		field.String("session_id").
			Default("").
			Comment("Session the movement happened in, empty outside sessions"),
	}
}

func (LedgerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
