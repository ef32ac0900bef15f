package report

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the renderer.
type Theme struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Winner lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style

	TableBorder lipgloss.Border
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Padding(0, 1),
		Cell:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		Winner:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Padding(0, 1),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TableBorder: lipgloss.RoundedBorder(),
	}
}

// PlainTheme renders without colors and with ASCII borders, for pipes and
// files.
func PlainTheme() Theme {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Theme{
		Title:       lipgloss.NewStyle(),
		Header:      cell,
		Cell:        cell,
		Winner:      cell,
		Dim:         lipgloss.NewStyle(),
		Border:      lipgloss.NewStyle(),
		TableBorder: lipgloss.ASCIIBorder(),
	}
}
