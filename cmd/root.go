package cmd

import (
	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillquest",
	Short: "Learning progression engine",
	Long:  "SkillQuest tracks skill mastery through a prerequisite graph, grants achievements, and generates AI follow-up quizzes for completed skills.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLQUEST_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "default", "User ID to operate on")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(progressionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveUser(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}
