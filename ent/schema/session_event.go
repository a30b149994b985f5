package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records game session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("mode").
			NotEmpty().
			Comment("Mini-game played (match, scramble, duel, race)"),
		field.String("tier").
			NotEmpty().
			Comment("Difficulty tier"),
		field.String("outcome").
			Default("").
			Comment("Terminal status (won, lost, timed-out); empty on start"),
		field.Int("score").
			Default(0).
			Comment("Final score (on end only)"),
		field.Int("items_completed").
			Default(0).
			Comment("Correctly answered items (on end only)"),
		field.Int("combo_peak").
			Default(0).
			Comment("Best combo reached (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Active play time in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("mode", "tier"),
	}
}
