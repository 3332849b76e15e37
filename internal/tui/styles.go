package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	focusedButtonStyle  = buttonStyle.Underline(true)
	disabledButtonStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
