package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/skillquest/internal/progression"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Inspect generated quiz progressions",
}

var progressionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's progressions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mgr := progressionManager(s)
		userID := resolveUser(cmd)

		progs, err := mgr.ListForUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(progs) == 0 {
			fmt.Printf("No progressions for %s yet. Complete a skill to generate one.\n", userID)
			return nil
		}

		fmt.Printf("%-20s  %-10s  %-20s  %s\n", "Skill", "Status", "Generated", "Quizzes")
		fmt.Println(strings.Repeat("─", 70))
		for _, p := range progs {
			fmt.Printf("%-20s  %-10s  %-20s  %d\n",
				p.SkillID, p.Status, p.GeneratedAt.Local().Format("2006-01-02 15:04"), len(p.Quizzes))
		}
		return nil
	},
}

var progressionShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show the progression generated for a completed skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mgr := progressionManager(s)
		userID := resolveUser(cmd)

		p, err := mgr.Get(cmd.Context(), userID, args[0])
		if errors.Is(err, progression.ErrNotFound) {
			return fmt.Errorf("no progression for skill %q", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n", p.Celebration.Title, p.Celebration.Message)
		if p.Celebration.MotivationalQuote != "" {
			fmt.Printf("  %q\n", p.Celebration.MotivationalQuote)
		}
		fmt.Printf("\nStatus: %s   Generated: %s\n", p.Status, p.GeneratedAt.Local().Format("2006-01-02 15:04"))
		if p.Rationale != "" {
			fmt.Printf("Why these: %s\n", p.Rationale)
		}

		for i, q := range p.Quizzes {
			fmt.Printf("\n%d. %s %s [%s, ~%d min]\n", i+1, q.Icon, q.Name, q.Difficulty, q.EstimatedMins)
			fmt.Printf("   %s\n", q.Description)
			if len(q.PracticalApplications) > 0 {
				fmt.Printf("   Applications: %s\n", strings.Join(q.PracticalApplications, ", "))
			}
			if q.UnlockCost > 0 {
				fmt.Printf("   Unlock cost: %d\n", q.UnlockCost)
			}
		}
		return nil
	},
}

var progressionPresentCmd = &cobra.Command{
	Use:   "present <skill-id>",
	Short: "Mark a progression as shown to the user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mgr := progressionManager(s)
		userID := resolveUser(cmd)

		if err := mgr.MarkPresented(cmd.Context(), userID, args[0]); err != nil {
			if errors.Is(err, progression.ErrNotFound) {
				return fmt.Errorf("no progression for skill %q", args[0])
			}
			return err
		}
		fmt.Printf("Progression for %s marked presented.\n", args[0])
		return nil
	},
}

// progressionManager builds a manager without a generator: the inspection
// commands only read and transition committed records.
func progressionManager(s *store.Store) *progression.Manager {
	return progression.NewManager(s.ProgressionRepo(), nil)
}

func init() {
	progressionCmd.AddCommand(progressionListCmd)
	progressionCmd.AddCommand(progressionShowCmd)
	progressionCmd.AddCommand(progressionPresentCmd)
}
