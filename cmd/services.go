package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/countdown-cli/internal/adapters/notification"
	"github.com/xvierd/countdown-cli/internal/adapters/scheduler"
	"github.com/xvierd/countdown-cli/internal/adapters/storage"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/logging"
	"github.com/xvierd/countdown-cli/internal/ports"
	"github.com/xvierd/countdown-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage    ports.Storage
	countdown  *services.CountdownService
	appearance *services.AppearanceService
	history    *services.HistoryService
	state      *services.StateService
	notifier   *notification.Notifier
	config     *config.Config
	mode       domain.Mode
	log        *logging.Logger
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// A failed RunE skips PersistentPostRunE, so release anything left over.
	if err := cleanupServices(); err != nil {
		return fmt.Errorf("failed to release previous services: %w", err)
	}

	if configPath != "" {
		config.SetConfigFile(configPath)
	}

	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Resolve effective mode: --mode flag > config > standard
	app.mode, err = app.config.ResolveMode(modeFlag)
	if err != nil {
		return fmt.Errorf("invalid mode: %w", err)
	}

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Logs live next to the database so --db keeps a run self-contained
	if err := logging.Init(logging.Config{
		Level:         app.config.Logging.Level,
		Path:          filepath.Join(dataDir, "logs"),
		Format:        app.config.Logging.Format,
		RetentionDays: 7,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	app.log = logging.Component("cli")

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	// Initialize storage
	app.storage, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	initial := app.config.DefaultSeconds
	if secondsFlag != 0 {
		initial = secondsFlag
	}

	// Initialize services
	app.countdown = services.NewCountdownService(scheduler.NewTicker(), app.mode, initial)
	app.appearance = services.NewAppearanceService(app.storage.Preferences(), platformScheme)
	app.history = services.NewHistoryService(app.storage.Completions())
	app.state = services.NewStateService(app.countdown, app.appearance, app.history)

	app.countdown.SetOnComplete(onCountdownComplete)

	app.log.Debugf("services ready: db=%s mode=%s initial=%ds", dbPath, app.mode, initial)
	return nil
}

// onCountdownComplete records the completion and fires desktop feedback.
func onCountdownComplete(state domain.Countdown) {
	ctx := context.Background()
	if _, err := app.history.Record(ctx, state); err != nil {
		app.log.Warnf("recording completion: %v", err)
	}
	if err := app.notifier.NotifyComplete(state.TargetSeconds); err != nil {
		app.log.Warnf("completion notification: %v", err)
	}
	app.log.Infof("countdown complete: target=%ds", state.TargetSeconds)
}

// platformScheme reports the terminal background as the system appearance.
func platformScheme() domain.Scheme {
	if lipgloss.HasDarkBackground() {
		return domain.SchemeDark
	}
	return domain.SchemeLight
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.countdown != nil {
		app.countdown.Close()
	}
	var err error
	if app.storage != nil {
		err = app.storage.Close()
		app.storage = nil
	}
	if logErr := logging.Get().Close(); err == nil {
		err = logErr
	}
	return err
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
