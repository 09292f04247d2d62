// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set requests the title suffix shown after the handler's base.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
