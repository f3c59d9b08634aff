// Package ledger tracks per-user competence state and profile progress.
//
// The ledger is the single writer for mastery and completion. Writes for the
// same (user, skill) pair are serialized, mastery is clamped to [0, 100], and
// completion is monotonic: once a skill is completed it never reverts.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/skillquest/internal/keylock"
	"github.com/abhisek/skillquest/internal/store"
)

const (
	// MasteryMax is the competence ceiling for a single skill.
	MasteryMax = 100

	// PointsPerLevel is how many total points advance the user one level.
	PointsPerLevel = 100
)

// CompetenceRecord is one user's standing on one skill.
type CompetenceRecord struct {
	SkillID   string
	Mastery   int
	Completed bool
	UpdatedAt time.Time
}

// Preferences personalize generated content for a user.
type Preferences struct {
	LearningStyle  string
	FavoriteTopics []string
	Language       string
}

// Profile is the per-user progress header.
type Profile struct {
	UserID      string
	TotalPoints int
	Level       int
	Preferences Preferences
}

// Service owns all ledger reads and writes.
type Service struct {
	repo  store.LedgerRepo
	locks *keylock.KeyedMutex
}

// NewService creates a ledger service over the given repository.
func NewService(repo store.LedgerRepo) *Service {
	return &Service{
		repo:  repo,
		locks: keylock.New(),
	}
}

// Get returns the user's record for a skill. Absent records read as the zero
// record: mastery 0, not completed.
func (s *Service) Get(ctx context.Context, userID, skillID string) (CompetenceRecord, error) {
	data, err := s.repo.GetCompetence(ctx, userID, skillID)
	if err != nil {
		return CompetenceRecord{}, err
	}
	if data == nil {
		return CompetenceRecord{SkillID: skillID}, nil
	}
	return recordFromData(*data), nil
}

// Records returns all non-zero records for a user.
func (s *Service) Records(ctx context.Context, userID string) ([]CompetenceRecord, error) {
	rows, err := s.repo.ListCompetence(ctx, userID)
	if err != nil {
		return nil, err
	}
	records := make([]CompetenceRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromData(row)
	}
	return records, nil
}

// CompletedSet returns the IDs of every skill the user has completed.
func (s *Service) CompletedSet(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.repo.ListCompetence(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]bool)
	for _, row := range rows {
		if row.Completed {
			completed[row.SkillID] = true
		}
	}
	return completed, nil
}

// ApplySessionResult folds one closed session into the skill's record.
// masteryDelta may be negative; the stored value is clamped to [0, MasteryMax].
// completionReached marks the skill completed; completion never reverts.
//
// The returned transitioned flag is true only when this call moved the skill
// from not-completed to completed. It is the signal downstream consumers key
// progression and celebration on, so it fires at most once per (user, skill).
func (s *Service) ApplySessionResult(ctx context.Context, userID, skillID string, masteryDelta int, completionReached bool) (CompetenceRecord, bool, error) {
	unlock := s.locks.Lock(userID + "|" + skillID)
	defer unlock()

	prev, err := s.Get(ctx, userID, skillID)
	if err != nil {
		return CompetenceRecord{}, false, fmt.Errorf("read record: %w", err)
	}

	next := prev
	next.Mastery = clamp(prev.Mastery+masteryDelta, 0, MasteryMax)
	next.Completed = prev.Completed || completionReached
	transitioned := !prev.Completed && next.Completed

	err = s.repo.UpsertCompetence(ctx, store.CompetenceData{
		UserID:    userID,
		SkillID:   skillID,
		Mastery:   next.Mastery,
		Completed: next.Completed,
	})
	if err != nil {
		return CompetenceRecord{}, false, fmt.Errorf("write record: %w", err)
	}
	return next, transitioned, nil
}

// AddPoints credits points to the user's profile and recomputes the level.
func (s *Service) AddPoints(ctx context.Context, userID string, points int) (Profile, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	profile.TotalPoints += points
	if profile.TotalPoints < 0 {
		profile.TotalPoints = 0
	}
	profile.Level = 1 + profile.TotalPoints/PointsPerLevel

	if err := s.saveProfile(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Profile returns the user's progress header, defaulting absent users to
// level 1 with zero points.
func (s *Service) Profile(ctx context.Context, userID string) (Profile, error) {
	data, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if data == nil {
		return Profile{UserID: userID, Level: 1}, nil
	}
	return Profile{
		UserID:      data.UserID,
		TotalPoints: data.TotalPoints,
		Level:       data.Level,
		Preferences: Preferences{
			LearningStyle:  data.LearningStyle,
			FavoriteTopics: data.FavoriteTopics,
			Language:       data.Language,
		},
	}, nil
}

// SetPreferences replaces the user's personalization settings.
func (s *Service) SetPreferences(ctx context.Context, userID string, prefs Preferences) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	profile.Preferences = prefs
	return s.saveProfile(ctx, profile)
}

func (s *Service) saveProfile(ctx context.Context, p Profile) error {
	err := s.repo.UpsertProfile(ctx, store.ProfileData{
		UserID:         p.UserID,
		TotalPoints:    p.TotalPoints,
		Level:          p.Level,
		LearningStyle:  p.Preferences.LearningStyle,
		FavoriteTopics: p.Preferences.FavoriteTopics,
		Language:       p.Preferences.Language,
	})
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

func recordFromData(d store.CompetenceData) CompetenceRecord {
	return CompetenceRecord{
		SkillID:   d.SkillID,
		Mastery:   d.Mastery,
		Completed: d.Completed,
		UpdatedAt: d.UpdatedAt,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
