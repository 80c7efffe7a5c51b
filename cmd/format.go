package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/domain"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format SECONDS",
	Short: "Print a number of seconds as a clock",
	Long: `Print SECONDS the way the countdown clock shows it: MM:SS under an hour,
HH:MM:SS from one hour up. Negative values show as 00:00.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid seconds %q: must be a whole number", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), domain.FormatDisplay(seconds))
		return nil
	},
}
