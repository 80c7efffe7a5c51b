package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/services"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished countdowns",
	Long:  `List countdowns that ran down to zero, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		completions, err := app.history.Recent(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list completions: %w", err)
		}
		total, err := app.history.Total(ctx)
		if err != nil {
			return fmt.Errorf("failed to count completions: %w", err)
		}

		if jsonOutput {
			return outputHistoryJSON(cmd, completions, total)
		}

		if len(completions) == 0 {
			fmt.Fprintln(out, "No finished countdowns yet.")
			return nil
		}

		for _, c := range completions {
			fmt.Fprintf(out, "%s  %s\n", c.CompletedAt.Format("2006-01-02 15:04"), domain.FormatDisplay(c.TargetSeconds))
		}
		fmt.Fprintf(out, "\nShowing %d of %d\n", len(completions), total)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", services.DefaultHistoryLimit, "Maximum number of entries to show")
}

// outputHistoryJSON outputs the history in JSON format
func outputHistoryJSON(cmd *cobra.Command, completions []*domain.Completion, total int) error {
	entries := make([]map[string]interface{}, 0, len(completions))
	for _, c := range completions {
		entries = append(entries, map[string]interface{}{
			"id":             c.ID,
			"target_seconds": c.TargetSeconds,
			"display":        domain.FormatDisplay(c.TargetSeconds),
			"completed_at":   c.CompletedAt.Format("2006-01-02T15:04:05"),
		})
	}

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"completions": entries,
		"total":       total,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
