// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key help line of the focused component.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool
	help     help.Model
}

func New() Model {
	return Model{help: help.New()}
}

// Update picks up announced key maps. It reports whether msg was consumed.
func (m *Model) Update(msg tea.Msg) bool {
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
		return true
	}
	return false
}

// SetWidth limits the rendered width. Zero means unlimited.
func (m *Model) SetWidth(width int) {
	m.help.Width = width
}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	}
	return ShortHelpView(m.help, m.KeyMap.ShortHelp())
}
