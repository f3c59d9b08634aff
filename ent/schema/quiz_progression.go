package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizProgression is the committed result of one generation request, keyed
// by (user_id, skill_id). The unique index is the idempotency key: a second
// insert for the same pair fails with a constraint error and the caller
// reads back the winner's row.
type QuizProgression struct {
	ent.Schema
}

func (QuizProgression) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("skill_id").NotEmpty().Immutable(),
		field.Enum("status").Values("generated", "presented").Default("generated"),
		field.Time("generated_at").Default(time.Now).Immutable(),
		field.JSON("quizzes", json.RawMessage{}).
			Comment("The three specialized quizzes, foundational to mastery order"),
		field.Text("rationale").Default(""),
		field.String("celebration_title").Default(""),
		field.Text("celebration_message").Default(""),
		field.Text("motivational_quote").Default(""),
	}
}

func (QuizProgression) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id").Unique(),
		index.Fields("user_id", "generated_at"),
	}
}
