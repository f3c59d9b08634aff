// Package quizgen generates specialized follow-up quizzes for a completed
// skill through an LLM provider.
package quizgen

import (
	"github.com/abhisek/skillquest/internal/ledger"
)

// Difficulty is the challenge tier of a generated quiz.
type Difficulty string

const (
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Rank returns the ordinal position of the difficulty, starting at 1 for
// intermediate. Unknown difficulties rank 0.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	case DifficultyExpert:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the difficulty is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d.Rank() > 0
}

// Quiz is one generated specialized quiz.
type Quiz struct {
	ID                    string
	Name                  string
	Description           string
	Category              string
	Icon                  string
	Difficulty            Difficulty
	EstimatedMins         int
	PrerequisiteSkillIDs  []string
	Domain                string
	Depth                 string
	PracticalApplications []string
	NextSteps             string
	UnlockCost            int
	UnlockMessage         string
}

// Celebration is the congratulatory content shown when a skill completes.
type Celebration struct {
	Title             string
	Message           string
	MotivationalQuote string
}

// GenerationResult is the full output of one generation call.
type GenerationResult struct {
	Quizzes     []Quiz
	Rationale   string
	Celebration Celebration
}

// SkillDetails describes the completed skill for the prompt.
type SkillDetails struct {
	Name        string
	Category    string
	Description string
}

// GenerateInput holds all context needed to generate a progression.
type GenerateInput struct {
	UserID           string
	CompletedSkillID string
	Skill            SkillDetails
	UserLevel        int
	Preferences      ledger.Preferences
}
