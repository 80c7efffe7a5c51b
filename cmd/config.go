package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View the countdown settings",
	Long:  `Show the mode, default duration, presets and notification settings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg := app.config

		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Current configuration:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Mode:             %s\n", app.mode.Label())
		fmt.Fprintf(out, "  Default duration: %s\n", domain.FormatDisplay(cfg.DefaultSeconds))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Presets:")
		for i, p := range cfg.Presets.GetPresets() {
			fmt.Fprintf(out, "    [%d] %-8s  %s\n", i+1, p.Name, domain.FormatDisplay(p.Seconds))
		}
		fmt.Fprintln(out)

		notifStatus := "off"
		if cfg.Notifications.Enabled {
			notifStatus = "on"
			if cfg.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}
		fmt.Fprintf(out, "  Notifications:    %s\n", notifStatus)
		fmt.Fprintf(out, "  Data directory:   %s\n", cfg.Storage.DataDir)

		logs, err := app.log.LogFiles()
		if err != nil {
			app.log.Warnf("listing log files: %v", err)
		}
		if len(logs) > 0 {
			fmt.Fprintf(out, "  Latest log:       %s (%d kept)\n", logs[0], len(logs))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting and save the config file.

Keys: mode, default_seconds, preset1, preset2, preset3 (seconds),
preset1_name, preset2_name, preset3_name, notifications, sound (on/off).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applySetting(app.config, args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		app.log.Infof("config changed: %s=%s", args[0], args[1])
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

// applySetting writes value into cfg under key. Durations are checked
// against the range of the mode in effect after the change.
func applySetting(cfg *config.Config, key, value string) error {
	mode, err := cfg.ResolveMode("")
	if err != nil {
		return err
	}

	seconds := func() (int, error) {
		return domain.ParseDuration(value, mode.MaxSeconds())
	}

	switch key {
	case "mode":
		m, err := domain.ValidateMode(strings.ToLower(value))
		if err != nil {
			return err
		}
		cfg.Mode = string(m)
	case "default_seconds":
		n, err := seconds()
		if err != nil {
			return err
		}
		cfg.DefaultSeconds = n
	case "preset1", "preset2", "preset3":
		n, err := seconds()
		if err != nil {
			return err
		}
		switch key {
		case "preset1":
			cfg.Presets.Preset1Seconds = n
		case "preset2":
			cfg.Presets.Preset2Seconds = n
		case "preset3":
			cfg.Presets.Preset3Seconds = n
		}
	case "preset1_name":
		cfg.Presets.Preset1Name = value
	case "preset2_name":
		cfg.Presets.Preset2Name = value
	case "preset3_name":
		cfg.Presets.Preset3Name = value
	case "notifications", "sound":
		on, err := parseSwitch(value)
		if err != nil {
			return err
		}
		if key == "notifications" {
			cfg.Notifications.Enabled = on
		} else {
			cfg.Notifications.Sound = on
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid switch %q: use on or off", value)
	}
	return b, nil
}
