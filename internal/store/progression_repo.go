package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/skillquest/ent"
	"github.com/abhisek/skillquest/ent/quizprogression"
)

type progressionRepo struct {
	client *ent.Client
}

func (r *progressionRepo) InsertProgression(ctx context.Context, data ProgressionData) (bool, error) {
	quizzes, err := json.Marshal(data.Quizzes)
	if err != nil {
		return false, fmt.Errorf("marshal quizzes: %w", err)
	}

	builder := r.client.QuizProgression.Create().
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetStatus(quizprogression.Status(data.Status)).
		SetQuizzes(quizzes).
		SetRationale(data.Rationale).
		SetCelebrationTitle(data.CelebrationTitle).
		SetCelebrationMessage(data.CelebrationMessage).
		SetMotivationalQuote(data.MotivationalQuote)
	if !data.GeneratedAt.IsZero() {
		builder = builder.SetGeneratedAt(data.GeneratedAt)
	}

	_, err = builder.Save(ctx)
	if ent.IsConstraintError(err) {
		// A progression already exists for this (user, skill) key.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert progression: %w", err)
	}
	return true, nil
}

func (r *progressionRepo) GetProgression(ctx context.Context, userID, skillID string) (*ProgressionData, error) {
	row, err := r.client.QuizProgression.Query().
		Where(
			quizprogression.UserID(userID),
			quizprogression.SkillID(skillID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progression: %w", err)
	}
	return progressionFromRow(row)
}

func (r *progressionRepo) SetPresented(ctx context.Context, userID, skillID string) error {
	_, err := r.client.QuizProgression.Update().
		Where(
			quizprogression.UserID(userID),
			quizprogression.SkillID(skillID),
		).
		SetStatus(quizprogression.StatusPresented).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set presented: %w", err)
	}
	return nil
}

func (r *progressionRepo) ListProgressions(ctx context.Context, userID string) ([]ProgressionData, error) {
	rows, err := r.client.QuizProgression.Query().
		Where(quizprogression.UserID(userID)).
		Order(ent.Desc(quizprogression.FieldGeneratedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progressions: %w", err)
	}

	records := make([]ProgressionData, 0, len(rows))
	for _, row := range rows {
		rec, err := progressionFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func progressionFromRow(row *ent.QuizProgression) (*ProgressionData, error) {
	var quizzes []QuizData
	if len(row.Quizzes) > 0 {
		if err := json.Unmarshal(row.Quizzes, &quizzes); err != nil {
			return nil, fmt.Errorf("unmarshal quizzes: %w", err)
		}
	}

	return &ProgressionData{
		UserID:             row.UserID,
		SkillID:            row.SkillID,
		Status:             string(row.Status),
		GeneratedAt:        row.GeneratedAt,
		Quizzes:            quizzes,
		Rationale:          row.Rationale,
		CelebrationTitle:   row.CelebrationTitle,
		CelebrationMessage: row.CelebrationMessage,
		MotivationalQuote:  row.MotivationalQuote,
	}, nil
}
