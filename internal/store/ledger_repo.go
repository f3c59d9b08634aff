package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillquest/ent"
	"github.com/abhisek/skillquest/ent/competencerecord"
	"github.com/abhisek/skillquest/ent/userprofile"
)

type ledgerRepo struct {
	client *ent.Client
}

func (r *ledgerRepo) GetCompetence(ctx context.Context, userID, skillID string) (*CompetenceData, error) {
	row, err := r.client.CompetenceRecord.Query().
		Where(
			competencerecord.UserID(userID),
			competencerecord.SkillID(skillID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get competence: %w", err)
	}
	return competenceFromRow(row), nil
}

func (r *ledgerRepo) UpsertCompetence(ctx context.Context, data CompetenceData) error {
	// Callers serialize per (user, skill), so query-then-write is safe here;
	// the unique index backstops anything that slips through.
	n, err := r.client.CompetenceRecord.Update().
		Where(
			competencerecord.UserID(data.UserID),
			competencerecord.SkillID(data.SkillID),
		).
		SetMastery(data.Mastery).
		SetCompleted(data.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update competence: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CompetenceRecord.Create().
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetMastery(data.Mastery).
		SetCompleted(data.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create competence: %w", err)
	}
	return nil
}

func (r *ledgerRepo) ListCompetence(ctx context.Context, userID string) ([]CompetenceData, error) {
	rows, err := r.client.CompetenceRecord.Query().
		Where(competencerecord.UserID(userID)).
		Order(ent.Asc(competencerecord.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competence: %w", err)
	}

	records := make([]CompetenceData, len(rows))
	for i, row := range rows {
		records[i] = *competenceFromRow(row)
	}
	return records, nil
}

func (r *ledgerRepo) GetProfile(ctx context.Context, userID string) (*ProfileData, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &ProfileData{
		UserID:         row.UserID,
		TotalPoints:    row.TotalPoints,
		Level:          row.Level,
		LearningStyle:  row.LearningStyle,
		FavoriteTopics: row.FavoriteTopics,
		Language:       row.Language,
	}, nil
}

func (r *ledgerRepo) UpsertProfile(ctx context.Context, data ProfileData) error {
	n, err := r.client.UserProfile.Update().
		Where(userprofile.UserID(data.UserID)).
		SetTotalPoints(data.TotalPoints).
		SetLevel(data.Level).
		SetLearningStyle(data.LearningStyle).
		SetFavoriteTopics(data.FavoriteTopics).
		SetLanguage(data.Language).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.UserProfile.Create().
		SetUserID(data.UserID).
		SetTotalPoints(data.TotalPoints).
		SetLevel(data.Level).
		SetLearningStyle(data.LearningStyle).
		SetFavoriteTopics(data.FavoriteTopics).
		SetLanguage(data.Language).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func competenceFromRow(row *ent.CompetenceRecord) *CompetenceData {
	return &CompetenceData{
		UserID:    row.UserID,
		SkillID:   row.SkillID,
		Mastery:   row.Mastery,
		Completed: row.Completed,
		UpdatedAt: row.UpdatedAt,
	}
}
