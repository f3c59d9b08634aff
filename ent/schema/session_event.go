package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one closed quiz session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("user_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Int("questions_answered").Default(0),
		field.Int("correct_answers").Default(0),
		field.Int("points").Default(0),
		field.Int("best_streak").Default(0),
		field.Bool("completion_reached").Default(false),
		field.Bool("prereq_gap").Default(false).
			Comment("Completion arrived while prerequisites were incomplete"),
		field.Int("duration_secs").Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("skill_id"),
	}
}
