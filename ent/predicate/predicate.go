// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementUnlock is the predicate function for achievementunlock builders.
type AchievementUnlock func(*sql.Selector)

// CompetenceRecord is the predicate function for competencerecord builders.
type CompetenceRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizProgression is the predicate function for quizprogression builders.
type QuizProgression func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
