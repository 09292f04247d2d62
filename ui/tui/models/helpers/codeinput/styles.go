// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package codeinput

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title        lipgloss.Style
	Required     lipgloss.Style
	Cell         lipgloss.Style
	FocusedCell  lipgloss.Style
	DisabledCell lipgloss.Style
	// Selected renders the content of a focused cell that the next
	// keystroke will overwrite.
	Selected lipgloss.Style
}

func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Align(lipgloss.Center).
		Margin(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Required: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Cell: cell,
		FocusedCell: cell.
			BorderForeground(lipgloss.Color("205")),
		DisabledCell: cell.
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("240")),
		Selected: lipgloss.NewStyle().
			Reverse(true),
	}
}
