package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillquest/internal/achievements"
	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's progress and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		userID := resolveUser(cmd)
		ledgerSvc := ledger.NewService(s.LedgerRepo())

		profile, err := ledgerSvc.Profile(ctx, userID)
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		fmt.Printf("User:   %s\n", userID)
		fmt.Printf("Level:  %d\n", profile.Level)
		fmt.Printf("Points: %d\n", profile.TotalPoints)

		records, err := ledgerSvc.Records(ctx, userID)
		if err != nil {
			return fmt.Errorf("read competence: %w", err)
		}
		if len(records) > 0 {
			completed := 0
			fmt.Println("\nSkills:")
			fmt.Printf("  %-20s  %8s  %s\n", "Skill", "Mastery", "Status")
			fmt.Println("  " + strings.Repeat("─", 46))
			for _, r := range records {
				status := "in progress"
				if r.Completed {
					status = "completed"
					completed++
				}
				fmt.Printf("  %-20s  %7d%%  %s\n", r.SkillID, r.Mastery, status)
			}
			fmt.Printf("  %d of %d completed\n", completed, len(records))
		}

		unlocks, err := achievements.NewEngine(s.UnlockRepo(), ledgerSvc, nil).Granted(ctx, userID)
		if err != nil {
			return err
		}
		if len(unlocks) > 0 {
			fmt.Println("\nAchievements:")
			for _, u := range unlocks {
				fmt.Printf("  %s %-16s [%s]  %s\n",
					u.Achievement.Icon, u.Achievement.Title,
					u.Achievement.Rarity.DisplayName(),
					u.UnlockedAt.Local().Format("2006-01-02"))
			}
		}

		summaries, err := s.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{
			UserID: userID,
			Limit:  limit,
		})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(summaries) > 0 {
			fmt.Println("\nRecent sessions:")
			fmt.Printf("  %-20s  %7s  %6s  %6s  %s\n", "Skill", "Score", "Points", "Streak", "When")
			fmt.Println("  " + strings.Repeat("─", 62))
			for _, sum := range summaries {
				score := fmt.Sprintf("%d/%d", sum.CorrectAnswers, sum.QuestionsAnswered)
				when := sum.Timestamp.Local().Format("2006-01-02 15:04")
				marker := ""
				if sum.CompletionReached {
					marker = " *"
				}
				fmt.Printf("  %-20s  %7s  %6d  %6d  %s%s\n",
					sum.SkillID, score, sum.Points, sum.BestStreak, when, marker)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent sessions to show")
}
