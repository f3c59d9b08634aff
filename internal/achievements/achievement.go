// Package achievements evaluates reward rules against session and ledger
// facts and grants each achievement at most once per user.
package achievements

import (
	"time"
)

// SessionStats summarizes one closed quiz session for rule evaluation.
type SessionStats struct {
	QuestionsAnswered int
	CorrectAnswers    int
	BestStreak        int
	CompletionReached bool
}

// Accuracy returns the fraction of correct answers, 0 when nothing was
// answered.
func (s SessionStats) Accuracy() float64 {
	if s.QuestionsAnswered == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
}

// Facts is everything a rule may inspect: the session that just closed plus
// the user's ledger aggregates after that session was applied.
type Facts struct {
	Session         SessionStats
	CompletedSkills int
	TotalPoints     int
	Level           int
}

// Achievement is one reward rule. Predicate is pure: it inspects facts and
// never performs I/O.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Rarity      Rarity
	XPReward    int
	Predicate   func(Facts) bool
}

// Unlock is one granted achievement, returned to the caller for display.
type Unlock struct {
	Achievement Achievement
	UserID      string
	UnlockedAt  time.Time
}

// Catalog returns the built-in achievement rules.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first-steps",
			Title:       "First Steps",
			Description: "Complete your first skill",
			Icon:        "footprints",
			Rarity:      RarityCommon,
			XPReward:    25,
			Predicate: func(f Facts) bool {
				return f.CompletedSkills >= 1
			},
		},
		{
			ID:          "quiz-master",
			Title:       "Quiz Master",
			Description: "Answer 10 or more questions correctly in one session",
			Icon:        "crown",
			Rarity:      RarityRare,
			XPReward:    50,
			Predicate: func(f Facts) bool {
				return f.Session.CorrectAnswers >= 10
			},
		},
		{
			ID:          "streak-master",
			Title:       "Streak Master",
			Description: "Get 5 correct answers in a row",
			Icon:        "flame",
			Rarity:      RarityRare,
			XPReward:    50,
			Predicate: func(f Facts) bool {
				return f.Session.BestStreak >= 5
			},
		},
		{
			ID:          "perfect-session",
			Title:       "Flawless",
			Description: "Finish a session of 5+ questions with perfect accuracy",
			Icon:        "gem",
			Rarity:      RarityEpic,
			XPReward:    75,
			Predicate: func(f Facts) bool {
				return f.Session.QuestionsAnswered >= 5 && f.Session.Accuracy() >= 1.0
			},
		},
		{
			ID:          "skill-collector",
			Title:       "Skill Collector",
			Description: "Complete 5 skills",
			Icon:        "backpack",
			Rarity:      RarityEpic,
			XPReward:    100,
			Predicate: func(f Facts) bool {
				return f.CompletedSkills >= 5
			},
		},
		{
			ID:          "tree-climber",
			Title:       "Tree Climber",
			Description: "Complete 10 skills",
			Icon:        "tree",
			Rarity:      RarityLegendary,
			XPReward:    200,
			Predicate: func(f Facts) bool {
				return f.CompletedSkills >= 10
			},
		},
		{
			ID:          "rising-star",
			Title:       "Rising Star",
			Description: "Reach level 5",
			Icon:        "star",
			Rarity:      RarityLegendary,
			XPReward:    150,
			Predicate: func(f Facts) bool {
				return f.Level >= 5
			},
		},
	}
}
