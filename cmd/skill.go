package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillquest/internal/availability"
	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/skillgraph"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills with their status (optionally filtered by category or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		level, _ := cmd.Flags().GetInt("level")

		graph, err := skillgraph.New(skillgraph.DefaultCatalog())
		if err != nil {
			return fmt.Errorf("load skill catalog: %w", err)
		}

		var skills []skillgraph.Skill
		switch {
		case category != "" && level != 0:
			return fmt.Errorf("use --category or --level, not both")
		case category != "":
			skills = graph.ByCategory(skillgraph.Category(category))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		case level != 0:
			skills = graph.ByLevel(level)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for level %d", level)
			}
		default:
			skills = graph.TopologicalOrder()
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		userID := resolveUser(cmd)
		completed, err := ledger.NewService(s.LedgerRepo()).CompletedSet(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		// Header.
		fmt.Printf("%-20s  %-28s  %5s  %-18s  %s\n",
			"ID", "Name", "Level", "Category", "Status")
		fmt.Println(strings.Repeat("─", 90))

		shown := 0
		for _, sk := range skills {
			status := availability.StatusOf(sk, completed)
			// Secret skills stay hidden until reachable.
			if sk.Secret && status == skillgraph.StatusLocked {
				continue
			}
			name := sk.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}
			fmt.Printf("%-20s  %-28s  %5d  %-18s  %s\n",
				sk.ID, name, sk.Level, sk.Category.DisplayName(), status.Label())
			shown++
		}

		fmt.Printf("\n%d skills\n", shown)
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := skillgraph.New(skillgraph.DefaultCatalog())
		if err != nil {
			return fmt.Errorf("load skill catalog: %w", err)
		}

		sk, err := graph.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", sk.ID)
		fmt.Printf("Name:        %s\n", sk.Name)
		fmt.Printf("Category:    %s\n", sk.Category.DisplayName())
		fmt.Printf("Level:       %d\n", sk.Level)
		fmt.Printf("Cost:        %d\n", sk.Cost)
		if sk.Description != "" {
			fmt.Printf("Description: %s\n", sk.Description)
		}

		if prereqs := graph.Prerequisites(sk.ID); len(prereqs) > 0 {
			fmt.Println("\nPrerequisites:")
			for _, p := range prereqs {
				fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
			}
		}
		if deps := graph.Dependents(sk.ID); len(deps) > 0 {
			fmt.Println("\nUnlocks:")
			for _, d := range deps {
				fmt.Printf("  - %s (%s)\n", d.Name, d.ID)
			}
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. web-foundations)")
	skillListCmd.Flags().Int("level", 0, "Filter by level (1-4)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
