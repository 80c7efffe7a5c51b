package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/services"
)

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// resetFlags clears flag variables left over from a previous execution.
func resetFlags() {
	dbPath, configPath, modeFlag = "", "", ""
	jsonOutput, plainOutput, pickAppearance = false, false, false
	secondsFlag = 0
	historyLimit = services.DefaultHistoryLimit

	// cobra keeps --help and --version set on the command after a run
	clearBuiltinFlags(rootCmd)
}

func clearBuiltinFlags(c *cobra.Command) {
	for _, name := range []string{"help", "version"} {
		if f := c.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
	for _, sub := range c.Commands() {
		clearBuiltinFlags(sub)
	}
}

// testEnv writes a quiet config into a temp dir and returns the flags that
// point a command at it.
func testEnv(t *testing.T) []string {
	t.Helper()
	resetFlags()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	config.SetConfigFile(cfgPath)

	cfg := config.DefaultConfig()
	cfg.Notifications.Enabled = false
	cfg.Storage.DataDir = dir
	require.NoError(t, config.Save(cfg))

	t.Cleanup(func() {
		config.SetConfigFile("")
		resetFlags()
	})
	return []string{"--config", cfgPath, "--db", filepath.Join(dir, "countdown.db")}
}

func run(t *testing.T, env []string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	return executeCmd(rootCmd, append(append([]string{}, env...), args...)...)
}

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd.Use != "countdown" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "countdown")
	}

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"appearance", "history", "format", "validate", "config", "mcp"} {
		if !names[want] {
			t.Errorf("subcommand %q should be registered", want)
		}
	}
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}

	if !strings.Contains(stdout, "countdown") {
		t.Error("help output should contain 'countdown'")
	}
}

func TestRootCmd_RunAfterHelp(t *testing.T) {
	env := testEnv(t)

	stdout, _, err := run(t, env, "--help")
	require.NoError(t, err)
	require.Contains(t, stdout, "Usage:")

	stdout, _, err = run(t, env, "format", "61")
	require.NoError(t, err)
	assert.Equal(t, "01:01", strings.TrimSpace(stdout))

	stdout, _, err = run(t, env, "--version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Version:")

	stdout, _, err = run(t, env, "--plain", "--seconds", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "00:01  Ready"), "got %q", stdout)
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"db", "config", "json", "mode"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
	for _, name := range []string{"seconds", "plain"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag should be registered", name)
		}
	}
}

func TestRootCmd_PlainRunRecordsCompletion(t *testing.T) {
	env := testEnv(t)

	stdout, _, err := run(t, env, "--plain", "--seconds", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, "00:01  Ready", lines[0])
	assert.Equal(t, "00:00  Done", lines[len(lines)-1])

	stdout, _, err = run(t, env, "history", "--json")
	require.NoError(t, err)

	var out struct {
		Completions []map[string]interface{} `json:"completions"`
		Total       int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Completions, 1)
	assert.Equal(t, "00:01", out.Completions[0]["display"])
}

func TestRootCmd_InvalidMode(t *testing.T) {
	env := testEnv(t)

	_, _, err := run(t, env, "--mode", "hourly", "format", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidMode), "error = %v", err)
}

func TestFormatCmd(t *testing.T) {
	env := testEnv(t)

	tests := []struct {
		arg  string
		want string
	}{
		{"0", "00:00"},
		{"59", "00:59"},
		{"3599", "59:59"},
		{"3600", "01:00:00"},
		{"3661", "01:01:01"},
		{"-5", "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			stdout, _, err := run(t, env, "format", "--", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}

	_, _, err := run(t, env, "format", "1m")
	assert.Error(t, err, "non-numeric seconds should fail")
}

func TestValidateCmd(t *testing.T) {
	env := testEnv(t)

	tests := []struct {
		name        string
		args        []string
		wantCleaned string
		wantOK      bool
	}{
		{"digits", []string{"validate", "90"}, "90", true},
		{"strips letters", []string{"validate", "1a2b3"}, "123", true},
		{"clamps high", []string{"validate", "9999"}, "3600", false},
		{"clamps zero", []string{"validate", "0"}, "1", false},
		{"no digits", []string{"validate", "abc"}, "1", false},
		{"extended range", []string{"--mode", "extended", "validate", "9999"}, "9999", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, env, append([]string{"--json"}, tt.args...)...)
			require.NoError(t, err)

			var out map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(stdout), &out))
			assert.Equal(t, tt.wantCleaned, out["cleaned"])
			assert.Equal(t, tt.wantOK, out["accepted"])
		})
	}

	_, stderr, err := run(t, env, "validate", "4000")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Duration must be between 1 and 3600 seconds")
}

func TestAppearanceCmd(t *testing.T) {
	env := testEnv(t)

	stdout, _, err := run(t, env, "appearance")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Appearance: System")

	stdout, _, err = run(t, env, "appearance", "d")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Appearance: Dark (dark)")

	stdout, _, err = run(t, env, "--json", "appearance")
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "dark", out["appearance"])

	_, _, err = run(t, env, "appearance", "sepia")
	assert.True(t, errors.Is(err, domain.ErrInvalidAppearance), "error = %v", err)
}

func TestMatchAppearance(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Appearance
		wantErr bool
	}{
		{"light", domain.AppearanceLight, false},
		{"DARK", domain.AppearanceDark, false},
		{"sys", domain.AppearanceSystem, false},
		{"lt", domain.AppearanceLight, false},
		{"drk", domain.AppearanceDark, false},
		{"", "", true},
		{"xyz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := matchAppearance(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryCmd_Empty(t *testing.T) {
	env := testEnv(t)

	stdout, _, err := run(t, env, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No finished countdowns yet.")
}

func TestConfigCmd(t *testing.T) {
	env := testEnv(t)

	stdout, _, err := run(t, env, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Standard (1h)")
	assert.Contains(t, stdout, "Minute")
	logDir := filepath.Join(filepath.Dir(env[3]), "logs")
	assert.Contains(t, stdout, "Latest log:       "+filepath.Join(logDir, "countdown-"))

	_, _, err = run(t, env, "config", "set", "default_seconds", "90")
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.DefaultSeconds)

	_, _, err = run(t, env, "config", "set", "default_seconds", "99999")
	assert.True(t, errors.Is(err, domain.ErrInvalidDuration), "error = %v", err)

	_, _, err = run(t, env, "config", "set", "volume", "11")
	assert.Error(t, err)
}

func TestApplySetting(t *testing.T) {
	cfg := config.DefaultConfig()

	require.NoError(t, applySetting(cfg, "mode", "Extended"))
	assert.Equal(t, "extended", cfg.Mode)

	require.NoError(t, applySetting(cfg, "preset2", "7200"))
	assert.Equal(t, 7200, cfg.Presets.Preset2Seconds)

	require.NoError(t, applySetting(cfg, "preset3_name", "Long"))
	assert.Equal(t, "Long", cfg.Presets.Preset3Name)

	require.NoError(t, applySetting(cfg, "sound", "off"))
	assert.False(t, cfg.Notifications.Sound)

	assert.Error(t, applySetting(cfg, "notifications", "maybe"))
	assert.Error(t, applySetting(cfg, "mode", "hourly"))
}
