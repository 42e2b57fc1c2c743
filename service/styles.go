package service

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent terminal report styling
var (
	colorPrimary  = lipgloss.Color("#64b5f6")
	colorGood     = lipgloss.Color("#66bb6a")
	colorWarning  = lipgloss.Color("#fff59d")
	colorCritical = lipgloss.Color("#ef5350")
	colorMuted    = lipgloss.Color("#888888")
)

// Reusable lipgloss styles for the terminal report
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleGood = lipgloss.NewStyle().
			Foreground(colorGood)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleCritical = lipgloss.NewStyle().
			Foreground(colorCritical).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleScore = lipgloss.NewStyle().
			Bold(true)
)

// scoreStyle picks a style by how bad the composite score is
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score < 15:
		return styleGood
	case score < 55:
		return styleWarning
	default:
		return styleCritical
	}
}
