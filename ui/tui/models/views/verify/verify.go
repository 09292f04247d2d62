// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package verify is the full-screen code prompt: a code input, a submit
// button and a key help line. The program quits once a code is submitted
// successfully or the prompt is cancelled.
package verify

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/codeinput/internal/logging"
	"github.com/toeirei/codeinput/ui/tui/models/components/keyhelp"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/codeinput"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/codeinput/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/codeinput/ui/tui/models/helpers/title"
	"github.com/toeirei/codeinput/ui/tui/util"
)

const (
	appTitle     = "codeinput"
	defaultLabel = "Submit"
)

var ErrCancelled = errors.New("code entry cancelled")

type Result struct {
	Code string `mapstructure:"code"`
}

type Options struct {
	Input codeinput.Options
	// SubmitOnComplete submits as soon as every cell is filled.
	SubmitOnComplete bool
	SubmitLabel      string
	// Clipboard replaces the system clipboard reader when set.
	Clipboard func() (string, error)
}

type (
	submittedMsg struct {
		result Result
		err    error
	}
	cancelledMsg  struct{}
	autoSubmitMsg struct{}
	changedMsg    struct{}
)

type Model struct {
	KeyMap KeyMap

	form     form.Form[Result]
	code     *forminput.Code
	help     keyhelp.Model
	title    *windowtitle.TitleHandler
	size     util.Size
	titleStr string

	errStyle lipgloss.Style
	focusCmd tea.Cmd

	result Result
	err    error
	done   bool
}

func New(opts Options) Model {
	input := opts.Input
	userChange, userComplete := input.OnChange, input.OnComplete
	input.OnChange = func(value string) tea.Cmd {
		var cmd tea.Cmd
		if userChange != nil {
			cmd = userChange(value)
		}
		return tea.Batch(cmd, func() tea.Msg { return changedMsg{} })
	}
	input.OnComplete = func(value string) tea.Cmd {
		var cmd tea.Cmd
		if userComplete != nil {
			cmd = userComplete(value)
		}
		if !opts.SubmitOnComplete {
			return cmd
		}
		return tea.Sequence(cmd, func() tea.Msg { return autoSubmitMsg{} })
	}

	code := forminput.NewCode(input)
	if opts.Clipboard != nil {
		code.Model().Clipboard = opts.Clipboard
	}

	label := opts.SubmitLabel
	if label == "" {
		label = defaultLabel
	}
	button := forminput.NewButton(label, func() bool {
		return code.Model().Disabled() || code.Validate() != nil
	})

	m := Model{
		KeyMap: DefaultKeyMap,
		form: form.New(
			form.WithOnSubmit(func(result Result, err error) tea.Cmd {
				return func() tea.Msg { return submittedMsg{result: result, err: err} }
			}),
			form.WithOnCancel[Result](func() tea.Cmd {
				return func() tea.Msg { return cancelledMsg{} }
			}),
			form.WithInput[Result]("code", code),
			form.WithInput[Result]("submit", button),
		),
		code:     code,
		help:     keyhelp.New(),
		title:    windowtitle.NewHandler(appTitle, " - "),
		titleStr: input.Title,
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	// Init cannot keep state, so the form takes focus here.
	m.focusCmd = m.form.Focus(m.KeyMap)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.title.Init(),
		windowtitle.Set(m.titleStr),
		m.form.Init(),
		m.focusCmd,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.SetWidth(m.size.Width)
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	if m.help.Update(msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, func() tea.Msg { return cancelledMsg{} }
		case key.Matches(msg, m.KeyMap.Help):
			m.help.ToggleExpanded()
			return m, nil
		}
	case changedMsg:
		m.err = nil
		return m, nil
	case autoSubmitMsg:
		return m, m.form.Submit()
	case submittedMsg:
		if msg.err != nil {
			logging.Debugf("submit rejected: %v", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.result, m.done = msg.result, true
		return m, tea.Quit
	case cancelledMsg:
		m.err, m.done = ErrCancelled, true
		return m, tea.Quit
	}

	if cmd := m.title.Handle(msg); cmd != nil {
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	parts := []string{m.form.View()}
	if m.err != nil {
		parts = append(parts, m.errStyle.Render(m.err.Error()))
	}
	if help := m.help.View(); help != "" {
		parts = append(parts, "", help)
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.size.Width > 0 {
		body = lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, body)
	}
	return body
}

// Result returns the submitted code. It fails with ErrCancelled unless a
// code was submitted.
func (m Model) Result() (string, error) {
	if !m.done {
		return "", ErrCancelled
	}
	if m.err != nil {
		return "", m.err
	}
	return m.result.Code, nil
}

// Value is the code currently entered.
func (m Model) Value() string {
	return m.code.Model().Value()
}
