package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/launches"
)

// renderHeader renders the status bar: logo, location and API health.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	sep := "  "
	snap := m.snapshot

	parts := []string{styles.Logo.Render("liftoff")}

	switch {
	case snap.IsOffline():
		parts = append(parts,
			styles.DangerText.Render("API "+classifyConnectionError(snap.LastError)),
			styles.MutedText.Render(fmt.Sprintf("%d failures in a row", snap.ConsecutiveFailures)),
		)
	case snap.LastError != nil:
		parts = append(parts, styles.WarningText.Render("last request "+classifyConnectionError(snap.LastError)))
	case snap.HasFetch:
		f := snap.LastFetch
		parts = append(parts,
			styles.SuccessText.Render("● ONLINE"),
			styles.MutedText.Render(fmt.Sprintf("%s %s %s", f.Kind, truncate(f.Target, 24), f.Duration.Round(time.Millisecond))),
		)
	default:
		parts = append(parts, styles.FaintText.Render("idle"))
	}

	if snap.Requests > 0 {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("requests %d", snap.Requests)))
	}

	left := strings.Join(parts, sep)
	location := styles.AccentText.Render(truncateMiddle(m.location(), max(m.width/3, 10)))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(location) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + location)
}

// classifyConnectionError maps an API error to a short status label.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, launches.ErrNotFound) {
		return "NOT FOUND"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "status 429"):
		return "RATE LIMITED"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, styles.AccentText.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	hints = append(hints, styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(hints, "  "))
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 5 {
		return string(runes[:max])
	}
	// Keep more of the end (file name, query) than the start
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}
