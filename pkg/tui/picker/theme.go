package picker

import "github.com/charmbracelet/lipgloss"

// Theme holds the Lip Gloss styles used by the picker.
type Theme struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultTheme returns the built-in picker styles.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		Item:     lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).PaddingLeft(1).SetString(">"),
		Empty:    lipgloss.NewStyle().Faint(true).Italic(true).PaddingLeft(2),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
	}
}
