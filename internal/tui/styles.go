package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mentalift/mentalift/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusCalm:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		models.StatusBalanced: lipgloss.NewStyle().Foreground(lipgloss.Color("76")).Bold(true),
		models.StatusLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		models.StatusTired:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		models.StatusStressed: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		models.StatusAnxious:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
)

func renderStatus(status models.Status) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(string(status))
	}
	return string(status)
}
