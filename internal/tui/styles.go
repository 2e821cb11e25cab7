package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors (echo the printed document's palette)
	navyColor    = lipgloss.Color("17")  // Deep blue
	redColor     = lipgloss.Color("160") // Brand red
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("76")  // Green
	errorColor   = lipgloss.Color("196") // Red

	// Base styles
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(navyColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan

	// Document styles
	docLabelStyle  = lipgloss.NewStyle().Bold(true)
	docAccentStyle = lipgloss.NewStyle().Bold(true).Foreground(navyColor)
	docRedStyle    = lipgloss.NewStyle().Bold(true).Foreground(redColor)
	totalRowStyle  = lipgloss.NewStyle().Bold(true).Background(navyColor).Foreground(lipgloss.Color("15")).Padding(0, 1)

	// Layout
	borderColor    = lipgloss.Color("63") // Soft purple
	appBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	// Header/Footer
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(navyColor).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Bright yellow
)
