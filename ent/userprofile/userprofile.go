// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprofile type in the database.
	Label = "user_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldFavoriteTopics holds the string denoting the favorite_topics field in the database.
	FieldFavoriteTopics = "favorite_topics"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// Table holds the table name of the userprofile in the database.
	Table = "user_profiles"
)

// Columns holds all SQL columns for userprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTotalPoints,
	FieldLevel,
	FieldLearningStyle,
	FieldFavoriteTopics,
	FieldLanguage,
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
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultLearningStyle holds the default value on creation for the "learning_style" field.
	DefaultLearningStyle string
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
)

// OrderOption defines the ordering options for the UserProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}
