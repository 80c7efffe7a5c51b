package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/adapters/tui"
	"github.com/xvierd/countdown-cli/internal/domain"
)

var pickAppearance bool

// appearanceCmd represents the appearance command
var appearanceCmd = &cobra.Command{
	Use:   "appearance [light|dark|system]",
	Short: "Show or set the appearance",
	Long: `Show the stored appearance preference, or set it.

The argument is matched loosely, so "d" selects dark and "sys" selects system.
Use --pick to choose from a menu.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		current, err := app.appearance.Get(ctx)
		if err != nil {
			return err
		}

		next := current
		switch {
		case len(args) == 1:
			next, err = matchAppearance(args[0])
			if err != nil {
				return err
			}
		case pickAppearance:
			if !tui.IsInteractive(os.Stdout) {
				return fmt.Errorf("--pick needs an interactive terminal")
			}
			result := tui.RunAppearancePicker(current, &app.config.Theme, app.appearance.Resolve(current))
			if result.Aborted {
				return nil
			}
			next = result.Appearance
		}

		if next != current {
			if err := app.appearance.Set(ctx, next); err != nil {
				return err
			}
			app.log.Infof("appearance changed: %s -> %s", current, next)
		}

		scheme := app.appearance.Resolve(next)
		if jsonOutput {
			data, err := json.MarshalIndent(map[string]string{
				"appearance": string(next),
				"scheme":     string(scheme),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Appearance: %s (%s)\n", next.Label(), scheme)
		return nil
	},
}

func init() {
	appearanceCmd.Flags().BoolVar(&pickAppearance, "pick", false, "Choose the appearance from a menu")
}

// matchAppearance resolves a loosely typed name to an appearance. Exact
// names win; otherwise the best fuzzy match is used unless two tie.
func matchAppearance(input string) (domain.Appearance, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if a, err := domain.ValidateAppearance(input); err == nil {
		return a, nil
	}

	names := make([]string, len(domain.ValidAppearances))
	for i, a := range domain.ValidAppearances {
		names[i] = string(a)
	}

	matches := fuzzy.Find(input, names)
	switch {
	case input == "" || len(matches) == 0:
		return "", fmt.Errorf("%w %q: must be one of light, dark, system", domain.ErrInvalidAppearance, input)
	case len(matches) > 1 && matches[0].Score == matches[1].Score:
		return "", fmt.Errorf("%w %q: matches both %s and %s", domain.ErrInvalidAppearance, input, matches[0].Str, matches[1].Str)
	}
	return domain.Appearance(matches[0].Str), nil
}
