package cmd

import (
	"fmt"

	"github.com/abhisek/skillquest/internal/skillgraph"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the availability partition for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		eng, _, err := buildEngine(cmd, s)
		if err != nil {
			return err
		}

		userID := resolveUser(cmd)
		partition, err := eng.Resolve(cmd.Context(), userID)
		if err != nil {
			return err
		}

		printGroup := func(label string, skills []skillgraph.Skill, hideSecretLocked bool) {
			fmt.Printf("%s (%d)\n", label, len(skills))
			for _, sk := range skills {
				if hideSecretLocked && sk.Secret {
					continue
				}
				fmt.Printf("  %-20s  %s\n", sk.ID, sk.Name)
			}
			fmt.Println()
		}

		fmt.Printf("Availability for %s\n\n", userID)
		printGroup("Completed", partition.Completed, false)
		printGroup("Available", partition.Available, false)
		printGroup("Locked", partition.Locked, true)
		return nil
	},
}
