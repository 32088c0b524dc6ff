package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed   = lipgloss.Color("#FF5555")
	colorCyan  = lipgloss.Color("#8BE9FD")
	colorWhite = lipgloss.Color("#F8F8F2")
	colorGray  = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
)
