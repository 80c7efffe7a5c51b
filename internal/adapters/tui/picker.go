package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
)

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Appearance domain.Appearance
	Aborted    bool
}

type pickerModel struct {
	items   []domain.Appearance
	cursor  int
	chosen  bool
	aborted bool
	colors  palette
}

func newPickerModel(current domain.Appearance, theme *config.ThemeConfig, scheme domain.Scheme) pickerModel {
	m := pickerModel{
		items:  domain.ValidAppearances,
		colors: paletteFor(resolveTheme(theme), scheme),
	}
	for i, a := range m.items {
		if a == current {
			m.cursor = i
		}
	}
	return m
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "1", "2", "3":
			i := int(msg.String()[0] - '1')
			if i < len(m.items) {
				m.cursor = i
				m.chosen = true
				return m, tea.Quit
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.colors.clock)
	activeStyle := lipgloss.NewStyle().Foreground(m.colors.clock).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.colors.text)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Appearance") + "\n\n")

	for i, a := range m.items {
		if i == m.cursor {
			b.WriteString(activeStyle.Render(fmt.Sprintf("  ▸ %d. %s", i+1, a.Label())) + "\n")
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %d. %s", i+1, a.Label())) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ navigate · enter select · esc back") + "\n")

	return b.String()
}

// RunAppearancePicker shows the three appearance choices with current
// preselected and returns the one picked.
func RunAppearancePicker(current domain.Appearance, theme *config.ThemeConfig, scheme domain.Scheme) PickerResult {
	p := tea.NewProgram(newPickerModel(current, theme, scheme))
	result, err := p.Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}

	final := result.(pickerModel)
	if final.aborted || !final.chosen {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Appearance: final.items[final.cursor]}
}
