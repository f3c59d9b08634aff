package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/skillquest/internal/keylock"
	"github.com/abhisek/skillquest/internal/quizgen"
	"github.com/abhisek/skillquest/internal/store"
)

// Manager coordinates progression generation and persistence.
//
// RequestProgression is idempotent per (user, skill): the first successful
// call generates and commits, every later call returns the committed record
// without touching the generator. The per-key lock keeps concurrent requests
// from paying for duplicate generations; the repository's insert-if-absent
// is the correctness backstop if two processes race anyway.
type Manager struct {
	repo  store.ProgressionRepo
	gen   quizgen.Generator
	locks *keylock.KeyedMutex
}

// NewManager creates a progression manager.
func NewManager(repo store.ProgressionRepo, gen quizgen.Generator) *Manager {
	return &Manager{
		repo:  repo,
		gen:   gen,
		locks: keylock.New(),
	}
}

// RequestProgression returns the progression for the completed skill,
// generating and committing it if none exists. The created flag reports
// whether this call did the generation.
//
// On generator failure or a structurally invalid result a *GenerationError
// is returned and nothing is committed, so a retry is safe. Shape violations
// wrap a *ShapeError with the specific defect.
func (m *Manager) RequestProgression(ctx context.Context, input quizgen.GenerateInput) (*Progression, bool, error) {
	unlock := m.locks.Lock(input.UserID + "|" + input.CompletedSkillID)
	defer unlock()

	existing, err := m.repo.GetProgression(ctx, input.UserID, input.CompletedSkillID)
	if err != nil {
		return nil, false, fmt.Errorf("load progression: %w", err)
	}
	if existing != nil {
		return fromData(existing), false, nil
	}

	result, err := m.gen.Generate(ctx, input)
	if err != nil {
		return nil, false, &GenerationError{SkillID: input.CompletedSkillID, Err: err}
	}
	if err := validateShape(input.CompletedSkillID, result); err != nil {
		// Malformed output is a generation failure like any other: nothing
		// committed, safe to retry. The wrapped ShapeError keeps the detail.
		return nil, false, &GenerationError{SkillID: input.CompletedSkillID, Err: err}
	}

	data := toData(input.UserID, input.CompletedSkillID, result, time.Now().UTC())
	inserted, err := m.repo.InsertProgression(ctx, data)
	if err != nil {
		return nil, false, fmt.Errorf("commit progression: %w", err)
	}
	if !inserted {
		// Another process committed first; its record is authoritative.
		winner, err := m.repo.GetProgression(ctx, input.UserID, input.CompletedSkillID)
		if err != nil {
			return nil, false, fmt.Errorf("load winning progression: %w", err)
		}
		if winner == nil {
			return nil, false, fmt.Errorf("progression for %s vanished after lost insert", input.CompletedSkillID)
		}
		return fromData(winner), false, nil
	}

	return fromData(&data), true, nil
}

// MarkPresented transitions the progression to presented. Marking an
// already-presented progression is a no-op; a missing progression returns
// ErrNotFound.
func (m *Manager) MarkPresented(ctx context.Context, userID, skillID string) error {
	existing, err := m.repo.GetProgression(ctx, userID, skillID)
	if err != nil {
		return fmt.Errorf("load progression: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if Status(existing.Status) == StatusPresented {
		return nil
	}
	return m.repo.SetPresented(ctx, userID, skillID)
}

// Get returns the progression for the pair, or ErrNotFound.
func (m *Manager) Get(ctx context.Context, userID, skillID string) (*Progression, error) {
	data, err := m.repo.GetProgression(ctx, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("load progression: %w", err)
	}
	if data == nil {
		return nil, ErrNotFound
	}
	return fromData(data), nil
}

// ListForUser returns all of a user's progressions, newest first.
func (m *Manager) ListForUser(ctx context.Context, userID string) ([]Progression, error) {
	rows, err := m.repo.ListProgressions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progressions: %w", err)
	}
	out := make([]Progression, len(rows))
	for i := range rows {
		out[i] = *fromData(&rows[i])
	}
	return out, nil
}

// LatestForUser returns the most recently generated progression, or
// ErrNotFound when the user has none.
func (m *Manager) LatestForUser(ctx context.Context, userID string) (*Progression, error) {
	rows, err := m.repo.ListProgressions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progressions: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return fromData(&rows[0]), nil
}

// validateShape enforces the committed invariants: exactly three quizzes,
// every difficulty known, and difficulty never decreasing.
func validateShape(skillID string, result *quizgen.GenerationResult) error {
	if len(result.Quizzes) != 3 {
		return &ShapeError{
			SkillID: skillID,
			Reason:  fmt.Sprintf("got %d quizzes, need exactly 3", len(result.Quizzes)),
		}
	}
	prev := 0
	for i, q := range result.Quizzes {
		if !q.Difficulty.Valid() {
			return &ShapeError{
				SkillID: skillID,
				Reason:  fmt.Sprintf("quiz %d has unknown difficulty %q", i, q.Difficulty),
			}
		}
		if q.Difficulty.Rank() < prev {
			return &ShapeError{
				SkillID: skillID,
				Reason:  fmt.Sprintf("difficulty decreases at quiz %d (%s)", i, q.Difficulty),
			}
		}
		prev = q.Difficulty.Rank()
	}
	return nil
}

func toData(userID, skillID string, result *quizgen.GenerationResult, when time.Time) store.ProgressionData {
	data := store.ProgressionData{
		UserID:             userID,
		SkillID:            skillID,
		Status:             string(StatusGenerated),
		GeneratedAt:        when,
		Rationale:          result.Rationale,
		CelebrationTitle:   result.Celebration.Title,
		CelebrationMessage: result.Celebration.Message,
		MotivationalQuote:  result.Celebration.MotivationalQuote,
	}
	for _, q := range result.Quizzes {
		data.Quizzes = append(data.Quizzes, store.QuizData{
			ID:                    q.ID,
			Name:                  q.Name,
			Description:           q.Description,
			Category:              q.Category,
			Icon:                  q.Icon,
			Difficulty:            string(q.Difficulty),
			EstimatedMins:         q.EstimatedMins,
			PrerequisiteSkillIDs:  q.PrerequisiteSkillIDs,
			Domain:                q.Domain,
			Depth:                 q.Depth,
			PracticalApplications: q.PracticalApplications,
			NextSteps:             q.NextSteps,
			UnlockCost:            q.UnlockCost,
			UnlockMessage:         q.UnlockMessage,
		})
	}
	return data
}

func fromData(data *store.ProgressionData) *Progression {
	p := &Progression{
		UserID:      data.UserID,
		SkillID:     data.SkillID,
		Status:      Status(data.Status),
		GeneratedAt: data.GeneratedAt,
		Rationale:   data.Rationale,
		Celebration: quizgen.Celebration{
			Title:             data.CelebrationTitle,
			Message:           data.CelebrationMessage,
			MotivationalQuote: data.MotivationalQuote,
		},
	}
	for _, q := range data.Quizzes {
		p.Quizzes = append(p.Quizzes, quizgen.Quiz{
			ID:                    q.ID,
			Name:                  q.Name,
			Description:           q.Description,
			Category:              q.Category,
			Icon:                  q.Icon,
			Difficulty:            quizgen.Difficulty(q.Difficulty),
			EstimatedMins:         q.EstimatedMins,
			PrerequisiteSkillIDs:  q.PrerequisiteSkillIDs,
			Domain:                q.Domain,
			Depth:                 q.Depth,
			PracticalApplications: q.PracticalApplications,
			NextSteps:             q.NextSteps,
			UnlockCost:            q.UnlockCost,
			UnlockMessage:         q.UnlockMessage,
		})
	}
	return p
}
