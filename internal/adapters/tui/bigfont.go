package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const glyphRows = 5

// glyphs holds a 3-column block font for the clock face, indexed by rune.
var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", " ██", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", " █ ", " █ "},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// bigTimeWidth returns the column count renderBigTime needs for timeStr.
func bigTimeWidth(timeStr string) int {
	w := 0
	n := 0
	for _, ch := range timeStr {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		w += lipgloss.Width(g[0])
		n++
	}
	if n > 1 {
		w += n - 1
	}
	return w
}

// renderBigTime renders a clock string like "01:02:03" in block digits.
// Narrow terminals get a single bold line instead.
func renderBigTime(timeStr string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < bigTimeWidth(timeStr)+4 {
		return style.Render(timeStr)
	}

	var rows [glyphRows][]string
	for _, ch := range timeStr {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}

	lines := make([]string, glyphRows)
	for i, parts := range rows {
		lines[i] = style.Render(strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}
