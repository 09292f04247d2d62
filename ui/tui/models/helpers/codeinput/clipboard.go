// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package codeinput

import tea "github.com/charmbracelet/bubbletea"

// pasteMsg carries clipboard text back to the model that requested it.
type pasteMsg struct {
	id    int
	index int
	text  string
}

type clipboardErrMsg struct {
	id  int
	err error
}

// readClipboard reads the clipboard off the update loop. The target cell is
// fixed when the paste is requested.
func (m Model) readClipboard(index int) tea.Cmd {
	read, id := m.Clipboard, m.id
	if read == nil {
		return nil
	}
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			return clipboardErrMsg{id: id, err: err}
		}
		return pasteMsg{id: id, index: index, text: text}
	}
}
