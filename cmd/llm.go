package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show request and token totals per purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %8s  %8s  %12s  %12s\n",
			"Purpose", "Requests", "Failures", "Input tok", "Output tok")
		fmt.Println(strings.Repeat("─", 68))

		var totReq, totFail, totIn, totOut int
		for _, st := range stats {
			fmt.Printf("%-20s  %8d  %8d  %12d  %12d\n",
				st.Purpose, st.Requests, st.Failures, st.InputTokens, st.OutputTokens)
			totReq += st.Requests
			totFail += st.Failures
			totIn += st.InputTokens
			totOut += st.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 68))
		fmt.Printf("%-20s  %8d  %8d  %12d  %12d\n", "Total", totReq, totFail, totIn, totOut)
		return nil
	},
}

var llmLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent LLM requests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %-10s  %-24s  %8s  %8s  %8s  %s\n",
			"When", "Provider", "Model", "In tok", "Out tok", "Latency", "Status")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range records {
			status := "ok"
			if !r.Success {
				status = "FAILED"
				if r.ErrorMessage != "" {
					msg := r.ErrorMessage
					if len(msg) > 40 {
						msg = msg[:37] + "..."
					}
					status += ": " + msg
				}
			}
			fmt.Printf("%-20s  %-10s  %-24s  %8d  %8d  %6dms  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Provider, r.Model, r.InputTokens, r.OutputTokens, r.LatencyMs, status)
		}
		return nil
	},
}

func init() {
	llmLogCmd.Flags().Int("limit", 20, "Number of requests to show")

	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmLogCmd)
}
