// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider, version string) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"countdown",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_countdown",
			mcp.WithDescription("Get the countdown state: target, remaining time, whether it is running"),
		),
		s.handleGetCountdown,
	)

	s.server.AddTool(
		mcp.NewTool(
			"start_countdown",
			mcp.WithDescription("Start the countdown from its remaining time"),
		),
		s.handleStart,
	)

	s.server.AddTool(
		mcp.NewTool(
			"pause_countdown",
			mcp.WithDescription("Pause the countdown"),
		),
		s.handlePause,
	)

	s.server.AddTool(
		mcp.NewTool(
			"reset_countdown",
			mcp.WithDescription("Stop the countdown and restore the remaining time to the target"),
		),
		s.handleReset,
	)

	s.server.AddTool(
		mcp.NewTool(
			"toggle_countdown",
			mcp.WithDescription("Start the countdown if idle, pause it if running"),
		),
		s.handleToggle,
	)

	setDurationTool := mcp.NewTool(
		"set_duration",
		mcp.WithDescription("Set the countdown target in whole seconds. Rejected while running or when out of range"),
		mcp.WithString(
			"seconds",
			mcp.Required(),
			mcp.Description("Target duration in seconds"),
		),
	)
	s.server.AddTool(setDurationTool, s.handleSetDuration)

	validateTool := mcp.NewTool(
		"validate_duration",
		mcp.WithDescription("Clean free-form duration input the way the duration field does"),
		mcp.WithString(
			"input",
			mcp.Required(),
			mcp.Description("Raw text typed into the duration field"),
		),
	)
	s.server.AddTool(validateTool, s.handleValidateDuration)

	s.server.AddTool(
		mcp.NewTool(
			"get_appearance",
			mcp.WithDescription("Get the stored appearance preference"),
		),
		s.handleGetAppearance,
	)

	setAppearanceTool := mcp.NewTool(
		"set_appearance",
		mcp.WithDescription("Store the appearance preference"),
		mcp.WithString(
			"appearance",
			mcp.Required(),
			mcp.Description("Appearance to use"),
			mcp.Enum("light", "dark", "system"),
		),
	)
	s.server.AddTool(setAppearanceTool, s.handleSetAppearance)

	historyTool := mcp.NewTool(
		"list_completions",
		mcp.WithDescription("List recently finished countdowns, newest first"),
		mcp.WithNumber(
			"limit",
			mcp.Description("Maximum entries to return (default: 20)"),
		),
	)
	s.server.AddTool(historyTool, s.handleListCompletions)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func (s *Server) countdownData(c domain.Countdown) map[string]interface{} {
	return map[string]interface{}{
		"target_seconds":    c.TargetSeconds,
		"remaining_seconds": c.RemainingSeconds,
		"running":           c.Running,
		"display":           domain.FormatDisplay(c.RemainingSeconds),
		"status":            c.StatusLabel(),
		"progress":          c.Progress(),
		"can_reset":         c.CanReset(),
		"max_seconds":       s.stateProvider.MaxSeconds(),
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) countdownResult(c domain.Countdown, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to read countdown: %w", err)
	}
	return jsonResult(s.countdownData(c))
}

// handleGetCountdown handles the get_countdown tool.
func (s *Server) handleGetCountdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.countdownResult(s.stateProvider.GetCountdown(ctx))
}

// handleStart handles the start_countdown tool.
func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.countdownResult(s.stateProvider.StartCountdown(ctx))
}

// handlePause handles the pause_countdown tool.
func (s *Server) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.countdownResult(s.stateProvider.PauseCountdown(ctx))
}

// handleReset handles the reset_countdown tool.
func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.countdownResult(s.stateProvider.ResetCountdown(ctx))
}

// handleToggle handles the toggle_countdown tool.
func (s *Server) handleToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.countdownResult(s.stateProvider.ToggleCountdown(ctx))
}

// stringArg reads key as text, accepting a JSON number as well.
func stringArg(request mcp.CallToolRequest, key string) (string, bool) {
	switch v := request.GetArguments()[key].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// handleSetDuration handles the set_duration tool.
func (s *Server) handleSetDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := stringArg(request, "seconds")
	if !ok {
		return mcp.NewToolResultError("seconds is required"), nil
	}

	state, err := s.stateProvider.SetDuration(ctx, text)
	switch {
	case errors.Is(err, domain.ErrInvalidDuration):
		return mcp.NewToolResultError(fmt.Sprintf("%v (allowed %d-%d)", err, domain.MinSeconds, s.stateProvider.MaxSeconds())), nil
	case errors.Is(err, domain.ErrCountdownRunning):
		return mcp.NewToolResultError("cannot change the duration while the countdown is running"), nil
	case err != nil:
		return nil, fmt.Errorf("failed to set duration: %w", err)
	}

	return jsonResult(s.countdownData(state))
}

// handleValidateDuration handles the validate_duration tool.
func (s *Server) handleValidateDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := stringArg(request, "input")
	if !ok {
		return mcp.NewToolResultError("input is required"), nil
	}

	cleaned, accepted := s.stateProvider.ValidateDuration(ctx, raw)
	return jsonResult(map[string]interface{}{
		"input":    raw,
		"cleaned":  cleaned,
		"accepted": accepted,
	})
}

// handleGetAppearance handles the get_appearance tool.
func (s *Server) handleGetAppearance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := s.stateProvider.GetAppearance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get appearance: %w", err)
	}
	return jsonResult(map[string]interface{}{
		"appearance": string(a),
		"label":      a.Label(),
	})
}

// handleSetAppearance handles the set_appearance tool.
func (s *Server) handleSetAppearance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := request.RequireString("appearance")
	if err != nil {
		return mcp.NewToolResultError("appearance is required: " + err.Error()), nil
	}

	a, err := domain.ValidateAppearance(value)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.stateProvider.SetAppearance(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to set appearance: %w", err)
	}

	return jsonResult(map[string]interface{}{
		"appearance": string(a),
		"label":      a.Label(),
	})
}

// handleListCompletions handles the list_completions tool.
func (s *Server) handleListCompletions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		return mcp.NewToolResultError("limit must be positive"), nil
	}

	completions, err := s.stateProvider.RecentCompletions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	entries := make([]map[string]interface{}, 0, len(completions))
	for _, c := range completions {
		entries = append(entries, map[string]interface{}{
			"id":             c.ID,
			"target_seconds": c.TargetSeconds,
			"display":        domain.FormatDisplay(c.TargetSeconds),
			"completed_at":   c.CompletedAt.Format("2006-01-02T15:04:05"),
		})
	}

	return jsonResult(map[string]interface{}{
		"completions": entries,
		"total_count": len(entries),
	})
}
