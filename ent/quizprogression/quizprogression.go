// Code generated by ent, DO NOT EDIT.

package quizprogression

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizprogression type in the database.
	Label = "quiz_progression"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// FieldQuizzes holds the string denoting the quizzes field in the database.
	FieldQuizzes = "quizzes"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldCelebrationTitle holds the string denoting the celebration_title field in the database.
	FieldCelebrationTitle = "celebration_title"
	// FieldCelebrationMessage holds the string denoting the celebration_message field in the database.
	FieldCelebrationMessage = "celebration_message"
	// FieldMotivationalQuote holds the string denoting the motivational_quote field in the database.
	FieldMotivationalQuote = "motivational_quote"
	// Table holds the table name of the quizprogression in the database.
	Table = "quiz_progressions"
)

// Columns holds all SQL columns for quizprogression fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSkillID,
	FieldStatus,
	FieldGeneratedAt,
	FieldQuizzes,
	FieldRationale,
	FieldCelebrationTitle,
	FieldCelebrationMessage,
	FieldMotivationalQuote,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
	// DefaultRationale holds the default value on creation for the "rationale" field.
	DefaultRationale string
	// DefaultCelebrationTitle holds the default value on creation for the "celebration_title" field.
	DefaultCelebrationTitle string
	// DefaultCelebrationMessage holds the default value on creation for the "celebration_message" field.
	DefaultCelebrationMessage string
	// DefaultMotivationalQuote holds the default value on creation for the "motivational_quote" field.
	DefaultMotivationalQuote string
)

// Status defines the type for the "status" enum field.
type Status string

// StatusGenerated is the default value of the Status enum.
const DefaultStatus = StatusGenerated

// Status values.
const (
	StatusGenerated Status = "generated"
	StatusPresented Status = "presented"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusGenerated, StatusPresented:
		return nil
	default:
		return fmt.Errorf("quizprogression: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QuizProgression queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByCelebrationTitle orders the results by the celebration_title field.
func ByCelebrationTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCelebrationTitle, opts...).ToFunc()
}

// ByCelebrationMessage orders the results by the celebration_message field.
func ByCelebrationMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCelebrationMessage, opts...).ToFunc()
}

// ByMotivationalQuote orders the results by the motivational_quote field.
func ByMotivationalQuote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotivationalQuote, opts...).ToFunc()
}
