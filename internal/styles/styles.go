package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red     = "#FF6188" // Errors
	Orange  = "#FC9867" // Date cells
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success, numbers
	Cyan    = "#78DCE8" // Index labels
	Magenta = "#FF6188" // Headers

	Comment = "#727072" // Dim text
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))

	// Table cell styles, used by the preview command
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(Magenta))

	IndexStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(Cyan))

	NumberStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color(Green))

	DateStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(Orange))

	TextStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(Foreground))

	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Border))
)
