// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillquest/ent/quizprogression"
)

// QuizProgression is the model entity for the QuizProgression schema.
type QuizProgression struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Status holds the value of the "status" field.
	Status quizprogression.Status `json:"status,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// The three specialized quizzes, foundational to mastery order
	Quizzes json.RawMessage `json:"quizzes,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// CelebrationTitle holds the value of the "celebration_title" field.
	CelebrationTitle string `json:"celebration_title,omitempty"`
	// CelebrationMessage holds the value of the "celebration_message" field.
	CelebrationMessage string `json:"celebration_message,omitempty"`
	// MotivationalQuote holds the value of the "motivational_quote" field.
	MotivationalQuote string `json:"motivational_quote,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizProgression) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizprogression.FieldQuizzes:
			values[i] = new([]byte)
		case quizprogression.FieldID:
			values[i] = new(sql.NullInt64)
		case quizprogression.FieldUserID, quizprogression.FieldSkillID, quizprogression.FieldStatus, quizprogression.FieldRationale, quizprogression.FieldCelebrationTitle, quizprogression.FieldCelebrationMessage, quizprogression.FieldMotivationalQuote:
			values[i] = new(sql.NullString)
		case quizprogression.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizProgression fields.
func (_m *QuizProgression) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizprogression.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizprogression.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case quizprogression.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case quizprogression.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = quizprogression.Status(value.String)
			}
		case quizprogression.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		case quizprogression.FieldQuizzes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Quizzes); err != nil {
					return fmt.Errorf("unmarshal field quizzes: %w", err)
				}
			}
		case quizprogression.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case quizprogression.FieldCelebrationTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field celebration_title", values[i])
			} else if value.Valid {
				_m.CelebrationTitle = value.String
			}
		case quizprogression.FieldCelebrationMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field celebration_message", values[i])
			} else if value.Valid {
				_m.CelebrationMessage = value.String
			}
		case quizprogression.FieldMotivationalQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field motivational_quote", values[i])
			} else if value.Valid {
				_m.MotivationalQuote = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizProgression.
// This includes values selected through modifiers, order, etc.
func (_m *QuizProgression) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizProgression.
// Note that you need to call QuizProgression.Unwrap() before calling this method if this QuizProgression
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizProgression) Update() *QuizProgressionUpdateOne {
	return NewQuizProgressionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizProgression entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizProgression) Unwrap() *QuizProgression {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizProgression is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizProgression) String() string {
	var builder strings.Builder
	builder.WriteString("QuizProgression(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quizzes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quizzes))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("celebration_title=")
	builder.WriteString(_m.CelebrationTitle)
	builder.WriteString(", ")
	builder.WriteString("celebration_message=")
	builder.WriteString(_m.CelebrationMessage)
	builder.WriteString(", ")
	builder.WriteString("motivational_quote=")
	builder.WriteString(_m.MotivationalQuote)
	builder.WriteByte(')')
	return builder.String()
}

// QuizProgressions is a parsable slice of QuizProgression.
type QuizProgressions []*QuizProgression
