package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile is the per-user ledger header: points, level, and learning
// preferences. Competence records reference it by user_id only; there is no
// edge, since users are owned by an external identity system.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable().Unique(),
		field.Int("total_points").Default(0),
		field.Int("level").Default(1),
		field.String("learning_style").Default(""),
		field.Strings("favorite_topics").Optional(),
		field.String("language").Default(""),
	}
}

func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
