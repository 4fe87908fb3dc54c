package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style. Focused panels use the
// accent color for their border.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
