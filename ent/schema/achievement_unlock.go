package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementUnlock records that a user earned an achievement. The unique
// (user_id, achievement_id) index is what makes the grant at-most-once: the
// rule engine inserts blind and treats a constraint violation as "already
// unlocked".
type AchievementUnlock struct {
	ent.Schema
}

func (AchievementUnlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("achievement_id").NotEmpty().Immutable(),
		field.Time("unlocked_at").Default(time.Now).Immutable(),
	}
}

func (AchievementUnlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "achievement_id").Unique(),
		index.Fields("user_id"),
	}
}
