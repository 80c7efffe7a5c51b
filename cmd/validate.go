package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/domain"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate RAW",
	Short: "Clean duration input the way the duration field does",
	Long: `Filter RAW down to its digits and clamp it into the allowed range for the
active mode. Prints the cleaned value and whether the raw value was accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cleaned, accepted := app.countdown.ValidateDurationInput(args[0])

		if jsonOutput {
			jsonData, err := json.MarshalIndent(map[string]interface{}{
				"input":       args[0],
				"cleaned":     cleaned,
				"accepted":    accepted,
				"max_seconds": app.countdown.MaxSeconds(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}

		fmt.Fprintf(out, "cleaned:  %s\n", cleaned)
		fmt.Fprintf(out, "accepted: %v\n", accepted)
		if !accepted {
			fmt.Fprintf(cmd.ErrOrStderr(), "Duration must be between %d and %d seconds\n", domain.MinSeconds, app.countdown.MaxSeconds())
		}
		return nil
	},
}
