package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/store"
)

// Engine evaluates achievement rules and grants unlocks.
//
// The unlock repository's insert-if-absent is the only at-most-once
// authority. Evaluate may race with itself for the same user; whichever call
// wins the insert applies the XP reward, the loser treats the rule as
// already granted.
type Engine struct {
	catalog []Achievement
	repo    store.UnlockRepo
	ledger  *ledger.Service
}

// NewEngine creates an engine over the given unlock repository and ledger.
// A nil catalog uses the built-in rules.
func NewEngine(repo store.UnlockRepo, ledgerSvc *ledger.Service, catalog []Achievement) *Engine {
	if catalog == nil {
		catalog = Catalog()
	}
	return &Engine{catalog: catalog, repo: repo, ledger: ledgerSvc}
}

// Evaluate runs every rule against the facts and returns the unlocks newly
// granted by this call. Already-granted achievements are skipped, and each
// XP reward is applied exactly once, by the call that won the insert.
func (e *Engine) Evaluate(ctx context.Context, userID string, facts Facts) ([]Unlock, error) {
	granted, err := e.grantedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unlocks []Unlock
	for _, a := range e.catalog {
		if granted[a.ID] || !a.Predicate(facts) {
			continue
		}

		now := time.Now().UTC()
		inserted, err := e.repo.InsertUnlock(ctx, store.UnlockData{
			UserID:        userID,
			AchievementID: a.ID,
			UnlockedAt:    now,
		})
		if err != nil {
			return unlocks, fmt.Errorf("grant %s: %w", a.ID, err)
		}
		if !inserted {
			// Lost the race; the winning call owns the reward.
			continue
		}

		if a.XPReward > 0 && e.ledger != nil {
			if _, err := e.ledger.AddPoints(ctx, userID, a.XPReward); err != nil {
				return unlocks, fmt.Errorf("apply reward for %s: %w", a.ID, err)
			}
		}
		unlocks = append(unlocks, Unlock{Achievement: a, UserID: userID, UnlockedAt: now})
	}
	return unlocks, nil
}

// Granted returns the user's unlocked achievements in grant order. Unknown
// IDs from retired rules are skipped.
func (e *Engine) Granted(ctx context.Context, userID string) ([]Unlock, error) {
	rows, err := e.repo.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}

	byID := make(map[string]Achievement, len(e.catalog))
	for _, a := range e.catalog {
		byID[a.ID] = a
	}

	var unlocks []Unlock
	for _, row := range rows {
		a, ok := byID[row.AchievementID]
		if !ok {
			continue
		}
		unlocks = append(unlocks, Unlock{
			Achievement: a,
			UserID:      row.UserID,
			UnlockedAt:  row.UnlockedAt,
		})
	}
	return unlocks, nil
}

func (e *Engine) grantedSet(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := e.repo.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	granted := make(map[string]bool, len(rows))
	for _, row := range rows {
		granted[row.AchievementID] = true
	}
	return granted, nil
}
