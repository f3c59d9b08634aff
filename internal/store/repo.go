package store

import (
	"context"
	"time"
)

// CompetenceData is the persisted form of one user's record for one skill.
type CompetenceData struct {
	UserID    string
	SkillID   string
	Mastery   int
	Completed bool
	UpdatedAt time.Time
}

// ProfileData is the persisted per-user ledger header.
type ProfileData struct {
	UserID         string
	TotalPoints    int
	Level          int
	LearningStyle  string
	FavoriteTopics []string
	Language       string
}

// LedgerRepo persists competence records and user profiles.
// Get methods return (nil, nil) for absent rows; the ledger service turns
// absence into zero-value domain records.
type LedgerRepo interface {
	GetCompetence(ctx context.Context, userID, skillID string) (*CompetenceData, error)
	UpsertCompetence(ctx context.Context, data CompetenceData) error
	ListCompetence(ctx context.Context, userID string) ([]CompetenceData, error)

	GetProfile(ctx context.Context, userID string) (*ProfileData, error)
	UpsertProfile(ctx context.Context, data ProfileData) error
}

// UnlockData is one granted achievement.
type UnlockData struct {
	UserID        string
	AchievementID string
	UnlockedAt    time.Time
}

// UnlockRepo persists achievement unlocks.
type UnlockRepo interface {
	// InsertUnlock atomically inserts the unlock unless one already exists
	// for the (user, achievement) pair. Reports whether this call created
	// the row. This is the single authoritative insert-if-absent; there is
	// no separate existence check to race against.
	InsertUnlock(ctx context.Context, data UnlockData) (inserted bool, err error)

	ListUnlocks(ctx context.Context, userID string) ([]UnlockData, error)
}

// QuizData is the persisted form of one specialized quiz.
type QuizData struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Category              string   `json:"category"`
	Icon                  string   `json:"icon"`
	Difficulty            string   `json:"difficulty"`
	EstimatedMins         int      `json:"estimated_mins"`
	PrerequisiteSkillIDs  []string `json:"prerequisite_skill_ids"`
	Domain                string   `json:"domain"`
	Depth                 string   `json:"depth"`
	PracticalApplications []string `json:"practical_applications"`
	NextSteps             string   `json:"next_steps"`
	UnlockCost            int      `json:"unlock_cost"`
	UnlockMessage         string   `json:"unlock_message"`
}

// ProgressionData is the persisted form of one quiz progression record,
// keyed by (user, completed skill).
type ProgressionData struct {
	UserID             string
	SkillID            string
	Status             string
	GeneratedAt        time.Time
	Quizzes            []QuizData
	Rationale          string
	CelebrationTitle   string
	CelebrationMessage string
	MotivationalQuote  string
}

// ProgressionRepo persists quiz progressions.
type ProgressionRepo interface {
	// InsertProgression atomically inserts the record unless one already
	// exists for the (user, skill) key. Reports whether this call created
	// the row.
	InsertProgression(ctx context.Context, data ProgressionData) (inserted bool, err error)

	GetProgression(ctx context.Context, userID, skillID string) (*ProgressionData, error)

	// SetPresented flips status to presented. The generated_at column is
	// never touched after insert.
	SetPresented(ctx context.Context, userID, skillID string) error

	// ListProgressions returns all progressions for a user, most recent
	// generated_at first.
	ListProgressions(ctx context.Context, userID string) ([]ProgressionData, error)
}

// SessionEventData captures one closed quiz session.
type SessionEventData struct {
	SessionID         string
	UserID            string
	SkillID           string
	QuestionsAnswered int
	CorrectAnswers    int
	Points            int
	BestStreak        int
	CompletionReached bool
	PrereqGap         bool // completion arrived with incomplete prerequisites
	DurationSecs      int
}

// SessionSummaryRecord is a queried session event with its sequence.
type SessionSummaryRecord struct {
	SessionID         string
	UserID            string
	SkillID           string
	QuestionsAnswered int
	CorrectAnswers    int
	Points            int
	BestStreak        int
	CompletionReached bool
	Sequence          int64
	Timestamp         time.Time
}

// LLMRequestEventData captures one generative-collaborator call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a queried LLM request event with its sequence.
type LLMRequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsageStats aggregates request counts and tokens per purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int    // max results (0 = unlimited)
	UserID string // filter by owner ("" = all users)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}
