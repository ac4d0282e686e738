// ABOUTME: Terminal styling for standup entry displays.
// ABOUTME: Highlights the date heading and section labels with lipgloss.
package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	blockerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// renderEntry styles an entry display. The text layout is unchanged, so
// output without a color profile matches the plain display.
func renderEntry(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		newline := line[len(body):]
		switch {
		case body == "":
			b.WriteString(line)
			continue
		case !strings.HasPrefix(body, " "):
			body = headingStyle.Render(body)
		case strings.HasPrefix(body, "  blocker:"):
			body = "  " + blockerStyle.Render(strings.TrimPrefix(body, "  "))
		case !strings.HasPrefix(body, "    ") && strings.HasSuffix(body, ":"):
			body = "  " + sectionStyle.Render(strings.TrimPrefix(body, "  "))
		}
		b.WriteString(body)
		b.WriteString(newline)
	}
	return b.String()
}
