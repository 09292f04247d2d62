// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package codeinput

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/codeinput/ui/tui/util"
	"github.com/toeirei/codeinput/util/slicest"
)

const (
	maskChar = "•"
	// the width is split into at least six columns
	minColumns = 6
	// border plus horizontal margin
	cellChrome   = 4
	defaultInner = 3
	maxInner     = 5
)

func (m Model) View() string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, slicest.MapI(m.seq, m.cellView)...)
	if m.opts.Title == "" {
		return m.opts.ContainerStyle.Render(row)
	}

	title := m.Styles.Title.Render(m.opts.Title)
	if m.opts.Required {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, m.Styles.Required.Render(" *"))
	}
	return m.opts.ContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Center, title, row))
}

// innerWidth gives each cell a sixth of the width, or 1/fields when there
// are more than six.
func (m Model) innerWidth() int {
	if m.width <= 0 {
		return defaultInner
	}
	return util.Clamp(1, m.width/max(m.opts.Fields, minColumns)-cellChrome, maxInner)
}

func (m Model) cellView(i int, value string) string {
	display := value
	if display != "" && m.opts.Type.Masked() {
		display = maskChar
	}
	if display == "" {
		display = " "
	}

	width := m.innerWidth()
	switch {
	case m.opts.Disabled:
		return m.Styles.DisabledCell.Width(width).Render(display)
	case m.focused && i == m.active:
		h := m.handles[i]
		content := m.Styles.Selected.Render(display)
		if !h.selected || value == "" {
			cur := h.cursor
			cur.SetChar(display)
			content = cur.View()
		}
		return m.Styles.FocusedCell.Width(width).Render(content)
	default:
		return m.Styles.Cell.Width(width).Render(display)
	}
}
