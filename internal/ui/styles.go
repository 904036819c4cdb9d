package ui

import "github.com/charmbracelet/lipgloss"

// Palette tuned for dark terminal backgrounds.
const (
	ColorWhite = "#FFFFFF"

	ColorGray400 = "#A3A3A8"
	ColorGray500 = "#76767E"
	ColorGray600 = "#55555C"
	ColorGray800 = "#26262B"

	ColorLime300 = "#D8F57A"
	ColorLime400 = "#BFF009"
	ColorLime600 = "#8DB300"

	ColorCyan300 = "#8BE3F2"
	ColorCyan400 = "#4FD2EA"

	ColorRed400    = "#FF6B6B"
	ColorAmber400  = "#FFC247"
	ColorViolet400 = "#A98BFF"
)

var (
	// TitleStyle is used for section headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorLime400))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorLime300))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorRed400))

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAmber400))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray500))

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// CodeStyle renders addresses, hashes and calldata.
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCyan300))

	CommandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorCyan400))

	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorViolet400))
)
