// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// warningDuration is how long the out-of-range notice stays visible.
const warningDuration = 5 * time.Second

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

type palette struct {
	clock   lipgloss.Color
	paused  lipgloss.Color
	text    lipgloss.Color
	warning lipgloss.Color
}

func paletteFor(theme config.ThemeConfig, scheme domain.Scheme) palette {
	if scheme == domain.SchemeDark {
		return palette{
			clock:   lipgloss.Color(theme.DarkClock),
			paused:  lipgloss.Color(theme.DarkPaused),
			text:    lipgloss.Color(theme.DarkText),
			warning: lipgloss.Color(theme.DarkWarning),
		}
	}
	return palette{
		clock:   lipgloss.Color(theme.LightClock),
		paused:  lipgloss.Color(theme.LightPaused),
		text:    lipgloss.Color(theme.LightText),
		warning: lipgloss.Color(theme.LightWarning),
	}
}

// stateMsg carries a countdown snapshot pushed by the controller.
type stateMsg struct {
	state domain.Countdown
}

// warningExpiredMsg clears the duration warning it was scheduled for.
type warningExpiredMsg struct {
	token int
}

// Options configures the countdown screen.
type Options struct {
	Theme      *config.ThemeConfig
	Presets    []config.Preset
	Appearance domain.Appearance
	Scheme     domain.Scheme

	// OnCycleAppearance stores the next appearance and returns it with the
	// scheme it resolves to.
	OnCycleAppearance func() (domain.Appearance, domain.Scheme, error)
}

// Model represents the TUI state.
type Model struct {
	controller ports.CountdownController
	state      domain.Countdown
	progress   progress.Model
	width      int
	height     int
	theme      config.ThemeConfig
	presets    []config.Preset
	appearance domain.Appearance
	scheme     domain.Scheme

	onCycleAppearance func() (domain.Appearance, domain.Scheme, error)

	// Duration dialog
	editing        bool
	input          textinput.Model
	warning        string
	warningToken   int
	commitRejected bool

	lastError error
}

// NewModel creates a new TUI model.
func NewModel(controller ports.CountdownController, initial domain.Countdown, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "seconds"
	ti.CharLimit = len(strconv.Itoa(controller.MaxSeconds())) + 1
	ti.Width = 12

	scheme := opts.Scheme
	if scheme == "" {
		scheme = domain.SchemeLight
	}
	appearance := opts.Appearance
	if appearance == "" {
		appearance = domain.AppearanceSystem
	}

	return Model{
		controller:        controller,
		state:             initial,
		progress:          progress.New(progress.WithDefaultGradient()),
		theme:             resolveTheme(opts.Theme),
		presets:           opts.Presets,
		appearance:        appearance,
		scheme:            scheme,
		onCycleAppearance: opts.OnCycleAppearance,
		input:             ti,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateDialog(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4

	case stateMsg:
		m.state = msg.state

	case warningExpiredMsg:
		if msg.token == m.warningToken {
			m.warning = ""
		}
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.lastError = nil

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ", "s":
		m.lastError = m.dispatch(ports.CmdToggle)
	case "r":
		if m.state.CanReset() {
			m.lastError = m.dispatch(ports.CmdReset)
		}
	case "+", "=", "up", "right":
		if !m.state.Running {
			m.lastError = m.dispatch(ports.CmdIncrement)
		}
	case "-", "_", "down", "left":
		if !m.state.Running {
			m.lastError = m.dispatch(ports.CmdDecrement)
		}
	case "e", "enter":
		if !m.state.Running {
			return m.openDialog()
		}
	case "1", "2", "3":
		if !m.state.Running {
			m.lastError = m.applyPreset(int(msg.String()[0] - '1'))
		}
	case "a":
		m.lastError = m.dispatch(ports.CmdCycleAppearance)
	}

	m.state = m.controller.Snapshot()
	return m, nil
}

// dispatch applies a timer command to the controller.
func (m *Model) dispatch(cmd ports.TimerCommand) error {
	switch cmd {
	case ports.CmdToggle:
		if !m.state.Running && m.state.Finished() {
			m.controller.Reset()
		}
		m.controller.ToggleRunning()
	case ports.CmdReset:
		m.controller.Reset()
	case ports.CmdIncrement, ports.CmdDecrement:
		delta := 1
		if cmd == ports.CmdDecrement {
			delta = -1
		}
		// The stepper stops at the range bounds.
		if err := m.controller.AdjustTarget(delta); err != nil && !errors.Is(err, domain.ErrInvalidDuration) {
			return err
		}
	case ports.CmdCycleAppearance:
		if m.onCycleAppearance == nil {
			return nil
		}
		a, s, err := m.onCycleAppearance()
		if err != nil {
			return err
		}
		m.appearance, m.scheme = a, s
	}
	return nil
}

func (m *Model) applyPreset(i int) error {
	if i < 0 || i >= len(m.presets) || m.presets[i].Seconds <= 0 {
		return nil
	}
	return m.controller.SetTargetSeconds(m.presets[i].Seconds)
}

func (m Model) openDialog() (tea.Model, tea.Cmd) {
	m.editing = true
	m.commitRejected = false
	m.input.SetValue(strconv.Itoa(m.state.TargetSeconds))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closeDialog() Model {
	m.editing = false
	m.commitRejected = false
	m.warning = ""
	m.input.Blur()
	return m
}

// updateDialog handles input while the duration dialog is open.
func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeDialog(), nil
	case "enter":
		if err := m.controller.CommitDuration(m.input.Value()); err != nil {
			m.commitRejected = true
			return m, nil
		}
		m = m.closeDialog()
		m.state = m.controller.Snapshot()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	if value == before {
		return m, cmd
	}

	m.commitRejected = false
	if value == "" {
		return m, cmd
	}

	cleaned, accepted := m.controller.ValidateDurationInput(value)
	if cleaned != value {
		m.input.SetValue(cleaned)
		m.input.CursorEnd()
	}
	if !accepted {
		m.warningToken++
		m.warning = fmt.Sprintf("Duration must be between %d and %d seconds", domain.MinSeconds, m.controller.MaxSeconds())
		token := m.warningToken
		cmd = tea.Batch(cmd, tea.Tick(warningDuration, func(time.Time) tea.Msg {
			return warningExpiredMsg{token: token}
		}))
	}
	return m, cmd
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	p := paletteFor(m.theme, m.scheme)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.clock).MarginBottom(1)
	textStyle := lipgloss.NewStyle().Foreground(p.text)
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(p.warning)

	var sections []string
	sections = append(sections, titleStyle.Render("Countdown"))
	sections = append(sections, textStyle.Render(fmt.Sprintf("Status: %s", m.state.StatusLabel())))

	clockColor := p.clock
	if !m.state.Running {
		clockColor = p.paused
	}
	sections = append(sections, "")
	sections = append(sections, renderBigTime(m.controller.FormatDisplay(m.state.RemainingSeconds), clockColor, m.width))

	if !m.state.Running && m.state.Finished() {
		sections = append(sections, "")
		sections = append(sections, warnStyle.Render("Time's up!"))
	}

	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(m.state.Progress()))
	sections = append(sections, textStyle.Render(fmt.Sprintf("Target %s", m.controller.FormatDisplay(m.state.TargetSeconds))))

	if m.editing {
		sections = append(sections, "")
		sections = append(sections, textStyle.Render(fmt.Sprintf("Duration (%d-%d s): ", domain.MinSeconds, m.controller.MaxSeconds()))+m.input.View())
		if m.warning != "" {
			sections = append(sections, warnStyle.Render(m.warning))
		}
		if m.commitRejected {
			sections = append(sections, textStyle.Render("enter disabled until the duration is valid · esc cancel"))
		} else {
			sections = append(sections, textStyle.Render("enter save · esc cancel"))
		}
	}

	if m.lastError != nil {
		sections = append(sections, "")
		sections = append(sections, warnStyle.Render(m.lastError.Error()))
	}

	sections = append(sections, "")
	sections = append(sections, textStyle.Render(m.helpText()))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) helpText() string {
	if m.editing {
		return ""
	}

	var parts []string
	if m.state.Running {
		parts = append(parts, "[space] pause")
	} else {
		parts = append(parts, "[space] start", "[+/-] adjust", "[e]dit")
		if len(m.presets) > 0 {
			parts = append(parts, fmt.Sprintf("[1-%d] presets", len(m.presets)))
		}
	}
	if m.state.CanReset() {
		parts = append(parts, "[r]eset")
	}
	parts = append(parts, fmt.Sprintf("[a]ppearance: %s", m.appearance.Label()), "[q]uit")
	return strings.Join(parts, "  ")
}
