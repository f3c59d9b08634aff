// Package session tracks the live state of one quiz session.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session accumulates answers for one user on one skill. It is a purely
// in-memory tally; nothing persists until the engine closes it.
type Session struct {
	ID      string
	UserID  string
	SkillID string

	QuestionsAnswered int
	CorrectAnswers    int
	Points            int
	Streak            int
	BestStreak        int

	StartedAt time.Time
}

// New starts a session for the user and skill.
func New(userID, skillID string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		SkillID:   skillID,
		StartedAt: time.Now(),
	}
}

// RecordAnswer tallies one answered question. A correct answer extends the
// streak; a wrong one resets it.
func (s *Session) RecordAnswer(correct bool, points int) {
	s.QuestionsAnswered++
	if correct {
		s.CorrectAnswers++
		s.Points += points
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Streak = 0
	}
}

// Accuracy returns the fraction of correct answers, 0 when nothing was
// answered yet.
func (s *Session) Accuracy() float64 {
	if s.QuestionsAnswered == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
}

// Duration returns elapsed time since the session started.
func (s *Session) Duration() time.Duration {
	return time.Since(s.StartedAt)
}
