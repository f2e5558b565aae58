package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/logtail"
)

type consoleMsg struct {
	lines []string
	err   error
}

// pollConsoleCmd reads new log lines off the UI goroutine. Only one poll is
// in flight at a time; the Tail is not shared otherwise.
func pollConsoleCmd(tail *logtail.Tail) tea.Cmd {
	return func() tea.Msg {
		lines, err := tail.Poll()
		return consoleMsg{lines: lines, err: err}
	}
}

// consoleTone picks a style for a diagnostics line.
func consoleTone(styles Styles, line string) lipgloss.Style {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "error"), strings.Contains(lower, "fail"):
		return styles.DangerText
	case strings.Contains(lower, "stale"), strings.Contains(lower, "not found"):
		return styles.WarningText
	default:
		return styles.MutedText
	}
}

// renderConsole renders the last lines of the diagnostics log.
func (m Model) renderConsole() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	height := consoleHeight

	title := "console"
	if m.tail != nil {
		title += "  " + truncateMiddle(m.tail.Path(), m.width/2)
	}
	out := []string{styles.FaintText.Render(title)}

	lines := m.consoleLines
	if m.consoleErr != nil {
		lines = append(append([]string(nil), lines...), m.consoleErr.Error())
	}
	if len(lines) > height-1 {
		lines = lines[len(lines)-(height-1):]
	}
	for _, line := range lines {
		out = append(out, consoleTone(styles, line).Render(truncate(line, m.width-2)))
	}
	for len(out) < height {
		out = append(out, "")
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(strings.Join(out, "\n"))
}
