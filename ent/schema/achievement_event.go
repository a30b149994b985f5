package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an achievement completion and its reward grant.
// Each achievement id appears at most once in the log.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").
			NotEmpty().
			Unique().
			Comment("Stable achievement identifier"),
		field.String("name").
			NotEmpty(),
		field.Int("reward").
			NonNegative().
			Comment("Coins credited on completion"),
		field.String("session_id").
			Default("").
			Comment("Session during which the threshold was crossed"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("achievement_id"),
	}
}
