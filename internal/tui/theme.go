package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Purple
	colorAccent  = lipgloss.Color("#14B8A6") // Teal
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleQuestion = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleHint = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleScore = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)
