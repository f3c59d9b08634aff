package cmd

import (
	"fmt"

	"github.com/abhisek/skillquest/internal/session"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Record quiz sessions",
}

var sessionRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Close a finished session and apply its results",
	RunE: func(cmd *cobra.Command, args []string) error {
		skillID, _ := cmd.Flags().GetString("skill")
		total, _ := cmd.Flags().GetInt("total")
		correct, _ := cmd.Flags().GetInt("correct")
		points, _ := cmd.Flags().GetInt("points")
		mastery, _ := cmd.Flags().GetInt("mastery")
		complete, _ := cmd.Flags().GetBool("complete")

		if skillID == "" {
			return fmt.Errorf("--skill is required")
		}
		if correct > total {
			return fmt.Errorf("--correct (%d) cannot exceed --total (%d)", correct, total)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		eng, bridge, err := buildEngine(cmd, s)
		if err != nil {
			return err
		}

		userID := resolveUser(cmd)
		sess := session.New(userID, skillID)

		// Replay the tallies as a run of correct answers followed by the
		// misses; the CLI has no per-question record, so best streak is the
		// correct count.
		perAnswer := 0
		if correct > 0 {
			perAnswer = points / correct
		}
		for i := 0; i < correct; i++ {
			sess.RecordAnswer(true, perAnswer)
		}
		for i := correct; i < total; i++ {
			sess.RecordAnswer(false, 0)
		}
		sess.Points = points

		result, err := eng.CloseSession(cmd.Context(), sess, mastery, complete)
		if err != nil {
			return err
		}

		fmt.Printf("Session %s closed for %s\n", sess.ID[:8], userID)
		fmt.Printf("  Skill:    %s\n", skillID)
		fmt.Printf("  Score:    %d/%d (%.0f%%)\n", correct, total, sess.Accuracy()*100)
		fmt.Printf("  Mastery:  %d%%", result.Record.Mastery)
		if result.Record.Completed {
			fmt.Printf("  [completed]")
		}
		fmt.Println()
		fmt.Printf("  Points:   %d (total %d, level %d)\n",
			points, result.Profile.TotalPoints, result.Profile.Level)

		if result.Transitioned {
			fmt.Printf("\nSkill completed! %d skill(s) now available.\n", len(result.NewlySkills))
			for _, sk := range result.NewlySkills {
				fmt.Printf("  + %s (%s)\n", sk.Name, sk.ID)
			}
		}

		if result.Progression != nil {
			fmt.Printf("\n%s\n%s\n", result.Progression.Celebration.Title, result.Progression.Celebration.Message)
			fmt.Println("\nNext quizzes:")
			for _, q := range result.Progression.Quizzes {
				fmt.Printf("  [%s] %s (~%d min)\n", q.Difficulty, q.Name, q.EstimatedMins)
			}
		}
		if result.ProgressionErr != nil {
			fmt.Printf("\nQuiz generation failed: %v\n", result.ProgressionErr)
			fmt.Println("Replaying this completion will retry.")
		}

		if len(result.Unlocks) > 0 {
			fmt.Println("\nAchievements unlocked:")
			for _, u := range result.Unlocks {
				fmt.Printf("  %s %s [%s] +%d XP\n",
					u.Achievement.Icon, u.Achievement.Title,
					u.Achievement.Rarity.DisplayName(), u.Achievement.XPReward)
			}
		}

		if notes := bridge.Drain(userID); len(notes) > 0 {
			fmt.Println("\nNotifications:")
			for _, n := range notes {
				fmt.Printf("  [%s] %s\n", n.Kind, n.Title)
			}
		}
		return nil
	},
}

func init() {
	sessionRecordCmd.Flags().String("skill", "", "Skill the session was played on (required)")
	sessionRecordCmd.Flags().Int("total", 0, "Questions answered")
	sessionRecordCmd.Flags().Int("correct", 0, "Questions answered correctly")
	sessionRecordCmd.Flags().Int("points", 0, "Points earned")
	sessionRecordCmd.Flags().Int("mastery", 10, "Mastery delta earned this session")
	sessionRecordCmd.Flags().Bool("complete", false, "Mark the skill as completed")

	sessionCmd.AddCommand(sessionRecordCmd)
}
