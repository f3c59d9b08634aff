// Package progression manages the lifecycle of specialized quiz
// progressions: one per (user, completed skill), generated through an LLM
// and committed atomically.
package progression

import (
	"time"

	"github.com/abhisek/skillquest/internal/quizgen"
)

// Status is the lifecycle state of a progression.
type Status string

const (
	// StatusGenerated means the quizzes are stored but the learner has not
	// seen them yet.
	StatusGenerated Status = "generated"

	// StatusPresented means the learner has been shown the progression.
	// Terminal: there is no transition out.
	StatusPresented Status = "presented"
)

// Progression is one committed quiz progression record.
type Progression struct {
	UserID      string
	SkillID     string
	Status      Status
	GeneratedAt time.Time
	Quizzes     []quizgen.Quiz
	Rationale   string
	Celebration quizgen.Celebration
}
