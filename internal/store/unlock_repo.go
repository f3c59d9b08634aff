package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillquest/ent"
	"github.com/abhisek/skillquest/ent/achievementunlock"
)

type unlockRepo struct {
	client *ent.Client
}

func (r *unlockRepo) InsertUnlock(ctx context.Context, data UnlockData) (bool, error) {
	builder := r.client.AchievementUnlock.Create().
		SetUserID(data.UserID).
		SetAchievementID(data.AchievementID)
	if !data.UnlockedAt.IsZero() {
		builder = builder.SetUnlockedAt(data.UnlockedAt)
	}

	_, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		// Another evaluation already granted this pair.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert unlock: %w", err)
	}
	return true, nil
}

func (r *unlockRepo) ListUnlocks(ctx context.Context, userID string) ([]UnlockData, error) {
	rows, err := r.client.AchievementUnlock.Query().
		Where(achievementunlock.UserID(userID)).
		Order(ent.Asc(achievementunlock.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}

	unlocks := make([]UnlockData, len(rows))
	for i, row := range rows {
		unlocks[i] = UnlockData{
			UserID:        row.UserID,
			AchievementID: row.AchievementID,
			UnlockedAt:    row.UnlockedAt,
		}
	}
	return unlocks, nil
}
