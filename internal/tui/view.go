package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mentalift/mentalift/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateWelcome:
		content = m.viewWelcome()
	case constants.StateLogin, constants.StateCheckin:
		content = m.viewForm()
	case constants.StateHome:
		content = m.viewHome()
	case constants.StateHistory:
		content = m.viewHistory()
	case constants.StateAbout:
		content = m.viewAbout()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.help.View(m),
	)
}

func (m Model) viewWelcome() string {
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("MentaLift"),
		subtitleStyle.Render("Your digital companion for mental well-being"),
		"",
		"Press enter to check your mental status.",
	))
}

func (m Model) viewForm() string {
	parts := []string{m.form.View()}
	if m.formError != "" {
		parts = append(parts, dangerStyle.Render(m.formError))
	}
	if m.warning != "" {
		parts = append(parts, warningStyle.Render(m.warning))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewHome() string {
	parts := []string{
		titleStyle.Render("MentaLift"),
		subtitleStyle.Render("Logged in as " + m.username),
	}

	if m.lastEntry != nil {
		e := m.lastEntry
		lines := []string{
			fmt.Sprintf("Status: %s    Score: %d", renderStatus(e.Status), e.Score),
			"",
			"Suggestions:",
		}
		// Suggestion strings are stored already numbered
		lines = append(lines, e.Suggestions...)
		parts = append(parts, "", resultBoxStyle.Render(strings.Join(lines, "\n")))
	}

	if m.warning != "" {
		parts = append(parts, "", warningStyle.Render(m.warning))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewHistory() string {
	parts := []string{
		titleStyle.Render("History"),
		subtitleStyle.Render(fmt.Sprintf("%d check-in(s) for %s", len(m.history), m.username)),
	}
	if m.warning != "" {
		parts = append(parts, warningStyle.Render(m.warning))
	}
	if m.chartPath != "" {
		parts = append(parts, subtitleStyle.Render("Trend chart saved to "+m.chartPath))
	}
	parts = append(parts, "", m.historyView.View())
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewAbout() string {
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("About"),
		"",
		constants.AboutText,
	))
}

// renderHistory formats every stored entry, newest last, for the
// history viewport.
func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return "No check-ins recorded yet."
	}

	var b strings.Builder
	for i, e := range m.history {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("─", 40) + "\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s  (score %d)\n", e.Date, renderStatus(e.Status), e.Score))
		b.WriteString(fmt.Sprintf("mood %d  stress %d  anxiety %d  sleep %d\n", e.Mood, e.Stress, e.Anxiety, e.Sleep))
		if strings.TrimSpace(e.Notes) != "" {
			b.WriteString("notes: " + e.Notes + "\n")
		}
		for _, s := range e.Suggestions {
			b.WriteString(s + "\n")
		}
	}
	return b.String()
}
