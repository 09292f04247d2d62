// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/codeinput"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/form"
	"github.com/toeirei/codeinput/ui/tui/util"
)

// Code places a segmented code input in a form.
type Code struct {
	KeyMap CodeKeyMap

	input codeinput.Model
}

type CodeKeyMap struct {
	Submit key.Binding
}

func (k CodeKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Submit} }

func (k CodeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Submit}} }

func NewCode(opts codeinput.Options) *Code {
	return &Code{
		KeyMap: CodeKeyMap{
			Submit: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "submit"),
			),
		},
		input: codeinput.New(opts),
	}
}

// Model exposes the wrapped input, e.g. to swap its clipboard reader.
func (c *Code) Model() *codeinput.Model {
	return &c.input
}

func (c *Code) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return c.input.Focus(util.MergeKeyMaps(baseKeyMap, c.KeyMap))
}

func (c *Code) Blur() {
	c.input.Blur()
}

func (c *Code) Get() any {
	return c.input.Value()
}

func (c *Code) Init() tea.Cmd {
	return c.input.Init()
}

func (c *Code) Reset() {
	c.input.Reset()
}

func (c *Code) Set(value any) {
	if value, ok := value.(string); ok {
		c.input.SetValues(value)
	}
}

func (c *Code) Validate() error {
	return c.input.Validate()
}

func (c *Code) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && c.input.Focused() && key.Matches(msg, c.KeyMap.Submit) {
		return nil, form.ActionSubmit
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd, form.ActionNone
}

func (c *Code) View(width int) string {
	c.input.SetWidth(width)
	return c.input.View()
}

var (
	_ form.FormInput = (*Code)(nil)
	_ form.Validator = (*Code)(nil)
)
