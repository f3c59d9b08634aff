package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompetenceRecord is one user's mastery state for one skill.
type CompetenceRecord struct {
	ent.Schema
}

func (CompetenceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.Int("mastery").Default(0).Min(0).Max(100),
		field.Bool("completed").Default(false),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CompetenceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id"),
	}
}
