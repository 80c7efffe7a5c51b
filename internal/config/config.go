// Package config provides configuration management for countdown.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/xvierd/countdown-cli/internal/domain"
)

// Config holds all configuration for the countdown application.
type Config struct {
	Mode           string             `mapstructure:"mode"`
	DefaultSeconds int                `mapstructure:"default_seconds"`
	Presets        PresetConfig       `mapstructure:"presets"`
	Notifications  NotificationConfig `mapstructure:"notifications"`
	Storage        StorageConfig      `mapstructure:"storage"`
	Logging        LoggingConfig      `mapstructure:"logging"`
	Theme          ThemeConfig        `mapstructure:"theme"`
}

// PresetConfig holds the three quick-pick durations, in seconds.
type PresetConfig struct {
	Preset1Name    string `mapstructure:"preset1_name"`
	Preset1Seconds int    `mapstructure:"preset1_seconds"`
	Preset2Name    string `mapstructure:"preset2_name"`
	Preset2Seconds int    `mapstructure:"preset2_seconds"`
	Preset3Name    string `mapstructure:"preset3_name"`
	Preset3Seconds int    `mapstructure:"preset3_seconds"`
}

// Preset is a named quick-pick duration.
type Preset struct {
	Name    string
	Seconds int
}

// GetPresets returns the three presets.
func (c *PresetConfig) GetPresets() []Preset {
	return []Preset{
		{Name: c.Preset1Name, Seconds: c.Preset1Seconds},
		{Name: c.Preset2Name, Seconds: c.Preset2Seconds},
		{Name: c.Preset3Name, Seconds: c.Preset3Seconds},
	}
}

// NotificationConfig holds completion feedback settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LoggingConfig holds log file settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig holds the light and dark palettes.
type ThemeConfig struct {
	LightClock   string `mapstructure:"light_clock"`
	LightPaused  string `mapstructure:"light_paused"`
	LightText    string `mapstructure:"light_text"`
	LightWarning string `mapstructure:"light_warning"`
	DarkClock    string `mapstructure:"dark_clock"`
	DarkPaused   string `mapstructure:"dark_paused"`
	DarkText     string `mapstructure:"dark_text"`
	DarkWarning  string `mapstructure:"dark_warning"`
}

// DefaultThemeConfig returns the default palettes.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		LightClock:   "#1F2937",
		LightPaused:  "#9CA3AF",
		LightText:    "#4B5563",
		LightWarning: "#DC2626",
		DarkClock:    "#F9FAFB",
		DarkPaused:   "#6B7280",
		DarkText:     "#A0AEC0",
		DarkWarning:  "#F87171",
	}
}

const defaultDataDir = "~/.countdown"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Mode:           string(domain.ModeStandard),
		DefaultSeconds: domain.DefaultSeconds,
		Presets: PresetConfig{
			Preset1Name:    "Minute",
			Preset1Seconds: 60,
			Preset2Name:    "Five",
			Preset2Seconds: 300,
			Preset3Name:    "Quarter",
			Preset3Seconds: 900,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Theme: DefaultThemeConfig(),
	}
}

// configFile overrides the config location when set.
var configFile string

// SetConfigFile points Load and Save at path instead of the default location.
func SetConfigFile(path string) {
	configFile = path
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix("COUNTDOWN")
	v.AutomaticEnv()
	setDefaults(v)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.expandDataDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("mode", cfg.Mode)
	v.Set("default_seconds", cfg.DefaultSeconds)
	v.Set("presets.preset1_name", cfg.Presets.Preset1Name)
	v.Set("presets.preset1_seconds", cfg.Presets.Preset1Seconds)
	v.Set("presets.preset2_name", cfg.Presets.Preset2Name)
	v.Set("presets.preset2_seconds", cfg.Presets.Preset2Seconds)
	v.Set("presets.preset3_name", cfg.Presets.Preset3Name)
	v.Set("presets.preset3_seconds", cfg.Presets.Preset3Seconds)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("theme.light_clock", cfg.Theme.LightClock)
	v.Set("theme.light_paused", cfg.Theme.LightPaused)
	v.Set("theme.light_text", cfg.Theme.LightText)
	v.Set("theme.light_warning", cfg.Theme.LightWarning)
	v.Set("theme.dark_clock", cfg.Theme.DarkClock)
	v.Set("theme.dark_paused", cfg.Theme.DarkPaused)
	v.Set("theme.dark_text", cfg.Theme.DarkText)
	v.Set("theme.dark_warning", cfg.Theme.DarkWarning)

	return v.WriteConfigAs(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".countdown", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "countdown.db")
}

// ResolveMode validates the configured mode, preferring override when set.
func (c *Config) ResolveMode(override string) (domain.Mode, error) {
	s := c.Mode
	if override != "" {
		s = override
	}
	if s == "" {
		return domain.ModeStandard, nil
	}
	return domain.ValidateMode(s)
}

// expandDataDir replaces the ~ shorthand with the home directory.
func (c *Config) expandDataDir() error {
	if c.Storage.DataDir != defaultDataDir && c.Storage.DataDir != "" {
		return nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	c.Storage.DataDir = filepath.Join(homeDir, ".countdown")
	return nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("default_seconds", defaults.DefaultSeconds)
	v.SetDefault("presets.preset1_name", defaults.Presets.Preset1Name)
	v.SetDefault("presets.preset1_seconds", defaults.Presets.Preset1Seconds)
	v.SetDefault("presets.preset2_name", defaults.Presets.Preset2Name)
	v.SetDefault("presets.preset2_seconds", defaults.Presets.Preset2Seconds)
	v.SetDefault("presets.preset3_name", defaults.Presets.Preset3Name)
	v.SetDefault("presets.preset3_seconds", defaults.Presets.Preset3Seconds)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	// Theme defaults
	theme := defaults.Theme
	v.SetDefault("theme.light_clock", theme.LightClock)
	v.SetDefault("theme.light_paused", theme.LightPaused)
	v.SetDefault("theme.light_text", theme.LightText)
	v.SetDefault("theme.light_warning", theme.LightWarning)
	v.SetDefault("theme.dark_clock", theme.DarkClock)
	v.SetDefault("theme.dark_paused", theme.DarkPaused)
	v.SetDefault("theme.dark_text", theme.DarkText)
	v.SetDefault("theme.dark_warning", theme.DarkWarning)
}
