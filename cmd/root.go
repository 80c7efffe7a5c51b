// Package cmd provides the CLI commands for the countdown application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/adapters/tui"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	configPath string
	jsonOutput bool
	modeFlag   string

	// Countdown screen flags
	secondsFlag int
	plainOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Countdown - a terminal countdown timer",
	Long: `Countdown is a terminal countdown timer with a big clock, a progress bar,
and a duration field that only accepts whole seconds in range.

Run "countdown" with no arguments to open the countdown screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runCountdown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.countdown/countdown.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.countdown/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "Duration range: standard (up to 1 hour) or extended (up to 10 hours)")

	rootCmd.Flags().IntVarP(&secondsFlag, "seconds", "s", 0, "Initial target in seconds (default from config)")
	rootCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print one line per second instead of the fullscreen clock")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Countdown CLI\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(appearanceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}

// runCountdown opens the countdown screen, or the plain line renderer when
// stdout is not a terminal.
func runCountdown(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()
	svc := app.countdown
	defer svc.Close()

	var timer ports.Timer
	if plainOutput || !tui.IsInteractive(os.Stdout) {
		timer = tui.NewPlainRenderer(svc, cmd.OutOrStdout())
	} else {
		appearance, err := app.appearance.Get(ctx)
		if err != nil {
			app.log.Warnf("reading appearance: %v", err)
		}
		timer = tui.NewTimer(svc, tui.Options{
			Theme:      &app.config.Theme,
			Presets:    app.config.Presets.GetPresets(),
			Appearance: appearance,
			Scheme:     app.appearance.Resolve(appearance),
			OnCycleAppearance: func() (domain.Appearance, domain.Scheme, error) {
				next, err := app.appearance.Cycle(ctx)
				return next, app.appearance.Resolve(next), err
			},
		})
	}

	unsubscribe := svc.Subscribe(timer.UpdateState)
	defer unsubscribe()

	app.log.Infof("countdown opened: target=%ds mode=%s", svc.Snapshot().TargetSeconds, app.mode)
	if err := timer.Run(ctx, svc.Snapshot()); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}
