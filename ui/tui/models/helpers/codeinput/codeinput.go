// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package codeinput provides a segmented code entry model for Bubble Tea:
// a row of single-character cells with per-cell focus, paste distribution
// and arrow/backspace navigation, as used for one-time passwords and
// verification codes.
//
// The cell contents are owned by the model. An owner that controls the value
// pushes it with SetValues; every accepted edit is reported back through
// Options.OnChange, and Options.OnComplete fires once all cells are filled.
package codeinput

import (
	"errors"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/codeinput/internal/cells"
	"github.com/toeirei/codeinput/internal/logging"
	"github.com/toeirei/codeinput/ui/tui/util"
)

// ErrIncomplete is returned by Validate for a required input whose cells
// are not all filled.
var ErrIncomplete = errors.New("code is incomplete")

type Options struct {
	// Values is the externally controlled value.
	Values string
	// Title is shown above the cells and derives the per-cell keys.
	Title    string
	Type     cells.Kind
	Fields   int
	Disabled bool
	Required bool

	OnChange   func(value string) tea.Cmd
	OnComplete func(value string) tea.Cmd

	// ContainerStyle wraps the rendered title and cells.
	ContainerStyle lipgloss.Style
}

// handle is the focus state of one cell.
type handle struct {
	cursor cursor.Model
	// selected is set when the cell gained focus; typing replaces the
	// content instead of appending to it.
	selected bool
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

type Model struct {
	KeyMap KeyMap
	Styles Styles
	// Clipboard reads the system clipboard for the Paste binding.
	Clipboard func() (string, error)

	id         int
	opts       Options
	seq        cells.Sequence
	handles    []handle
	active     int
	focused    bool
	lastValues string
	width      int
}

func New(opts Options) Model {
	if opts.Fields <= 0 {
		opts.Fields = cells.DefaultFields
	}
	if opts.Type == "" {
		opts.Type = cells.KindNumber
	}

	m := Model{
		KeyMap:     DefaultKeyMap,
		Styles:     DefaultStyles(),
		Clipboard:  clipboard.ReadAll,
		id:         nextID(),
		opts:       opts,
		handles:    make([]handle, opts.Fields),
		lastValues: opts.Values,
		seq:        cells.Reconcile(opts.Values, opts.Fields, opts.Type),
	}
	for i := range m.handles {
		m.handles[i].cursor = cursor.New()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetValues reconciles the cells with an externally supplied value. It is a
// no-op while the value equals the last one seen, so local edits survive
// repeated pushes of an unchanged value.
func (m *Model) SetValues(values string) {
	if values == m.lastValues {
		return
	}
	m.lastValues = values
	m.seq = cells.Reconcile(values, m.opts.Fields, m.opts.Type)
}

func (m *Model) SetDisabled(disabled bool) {
	m.opts.Disabled = disabled
	if disabled {
		m.Blur()
	}
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

// Reset clears every cell and moves focus back to the first one.
func (m *Model) Reset() {
	m.seq = cells.Empty(m.opts.Fields)
	m.lastValues = ""
	if m.focused {
		m.handles[m.active].cursor.Blur()
		m.active = 0
		m.handles[0].selected = true
		m.handles[0].cursor.Focus()
		return
	}
	m.active = 0
}

// Value is the concatenation of all cells.
func (m Model) Value() string {
	return m.seq.Join()
}

// Cells returns a copy of the cell contents.
func (m Model) Cells() []string {
	return m.seq.Clone()
}

func (m Model) Fields() int {
	return m.opts.Fields
}

// Active is the index of the focused cell.
func (m Model) Active() int {
	return m.active
}

func (m Model) Focused() bool {
	return m.focused
}

func (m Model) Disabled() bool {
	return m.opts.Disabled
}

func (m Model) Complete() bool {
	return cells.Complete(m.Value(), m.opts.Fields)
}

func (m Model) Validate() error {
	if m.opts.Required && !m.Complete() {
		return ErrIncomplete
	}
	return nil
}

// CellKey is a stable identifier for cell i derived from the title.
func (m Model) CellKey(i int) string {
	return strings.ReplaceAll(m.opts.Title, " ", "-") + strconv.Itoa(i)
}

// Focus focuses the active cell and selects its content. A disabled input
// refuses focus.
func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	if m.opts.Disabled {
		return nil
	}
	m.focused = true
	return tea.Batch(
		m.focusCell(m.active),
		util.AnnounceKeyMapCmd(baseKeyMap, m.KeyMap),
	)
}

func (m *Model) Blur() {
	m.focused = false
	m.handles[m.active].cursor.Blur()
	m.handles[m.active].selected = false
}

var _ util.Focusable = (*Model)(nil)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.opts.Disabled {
		return m, nil
	}

	switch msg := msg.(type) {
	case pasteMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.input(msg.index, msg.text, false)
	case clipboardErrMsg:
		if msg.id == m.id {
			logging.Debugf("clipboard read failed: %v", msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.handles[m.active].cursor, cmd = m.handles[m.active].cursor.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		return m.input(m.active, string(msg.Runes), !msg.Paste)
	case key.Matches(msg, m.KeyMap.Delete):
		return m.backspace()
	case key.Matches(msg, m.KeyMap.Prev):
		return m.navigate(cells.Left)
	case key.Matches(msg, m.KeyMap.Next):
		return m.navigate(cells.Right)
	case key.Matches(msg, m.KeyMap.Up), key.Matches(msg, m.KeyMap.Down):
		return nil
	case key.Matches(msg, m.KeyMap.Paste):
		return m.readClipboard(m.active)
	}
	return nil
}

// input applies text entered into cell index. An unselected cell keeps its
// content in front of the new text.
func (m *Model) input(index int, text string, typed bool) tea.Cmd {
	if index < 0 || index >= len(m.handles) {
		return nil
	}
	if !m.handles[index].selected {
		text = m.seq[index] + text
	}

	res := cells.Place(m.seq, cells.Input{Index: index, Value: text, Typed: typed}, m.opts.Type)
	if !res.Accepted {
		logging.Debugf("rejected input at cell %s", m.CellKey(index))
		return nil
	}
	m.seq = res.Seq
	logging.Debugf("accepted input at cell %s", m.CellKey(index))

	var focusCmd tea.Cmd
	if res.Focus != cells.NoFocus {
		focusCmd = m.focusCell(res.Focus)
	} else {
		m.handles[index].selected = false
	}
	return tea.Batch(focusCmd, m.notify())
}

func (m *Model) backspace() tea.Cmd {
	res := cells.Backspace(m.seq, m.active)
	m.seq = res.Seq

	var focusCmd tea.Cmd
	if res.Focus != cells.NoFocus {
		focusCmd = m.focusCell(res.Focus)
	}
	return tea.Batch(focusCmd, m.notify())
}

func (m *Model) navigate(dir cells.Direction) tea.Cmd {
	target := cells.Navigate(m.active, m.opts.Fields, dir)
	if target == cells.NoFocus {
		return nil
	}
	return m.focusCell(target)
}

// focusCell moves focus to cell i and selects its content.
func (m *Model) focusCell(i int) tea.Cmd {
	if i != m.active {
		m.handles[m.active].cursor.Blur()
		m.handles[m.active].selected = false
		m.active = i
	}
	m.handles[i].selected = true
	return m.handles[i].cursor.Focus()
}

// notify reports the current value to the owner. The change callback runs
// before the completion callback, and their commands keep that order.
func (m *Model) notify() tea.Cmd {
	value := m.seq.Join()
	var cmds []tea.Cmd
	if m.opts.OnChange != nil {
		cmds = append(cmds, m.opts.OnChange(value))
	}
	if m.opts.OnComplete != nil && cells.Complete(value, m.opts.Fields) {
		cmds = append(cmds, m.opts.OnComplete(value))
	}
	return tea.Sequence(cmds...)
}
