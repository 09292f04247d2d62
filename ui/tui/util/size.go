// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Size tracks the last window size a model was given.
type Size struct {
	Width  int
	Height int
}

// Update records msg if it is a tea.WindowSizeMsg and reports whether it was.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// Column is the width of one of n equal columns.
func (s Size) Column(n int) int {
	if n <= 0 {
		return s.Width
	}
	return s.Width / n
}
