// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package verify

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/codeinput"
	"github.com/toeirei/codeinput/ui/tui/util"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return vm, cmd
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func TestSubmitCompleteCode(t *testing.T) {
	m := New(Options{Input: codeinput.Options{Fields: 4}})
	m, _ = update(t, m, paste("1234"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}

	msg := cmd()
	if _, ok := msg.(submittedMsg); !ok {
		t.Fatalf("expected submittedMsg, got %T", msg)
	}
	m, cmd = update(t, m, msg)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}

	code, err := m.Result()
	if err != nil || code != "1234" {
		t.Fatalf("unexpected result %q, %v", code, err)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after completion, got %q", m.View())
	}
}

func TestSubmitIncompleteRequiredShowsError(t *testing.T) {
	m := New(Options{Input: codeinput.Options{Fields: 4, Required: true}})
	m, _ = update(t, m, paste("12"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = update(t, m, cmd())
	if cmd != nil {
		t.Fatal("incomplete submit should not quit")
	}
	if !strings.Contains(m.View(), codeinput.ErrIncomplete.Error()) {
		t.Fatalf("expected error in view, got: %s", m.View())
	}
	if _, err := m.Result(); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected no result yet, got %v", err)
	}

	m, _ = update(t, m, changedMsg{})
	if strings.Contains(m.View(), codeinput.ErrIncomplete.Error()) {
		t.Fatal("error should clear after the code changes")
	}
}

func TestButtonDisabledUntilRequiredComplete(t *testing.T) {
	m := New(Options{Input: codeinput.Options{Fields: 4, Required: true}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("disabled button should not submit")
	}
}

func TestCancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := New(Options{})
		m, cmd := update(t, m, k)
		if cmd == nil {
			t.Fatalf("%s: expected cancel command", k)
		}
		m, _ = update(t, m, cmd())
		if _, err := m.Result(); !errors.Is(err, ErrCancelled) {
			t.Fatalf("%s: expected ErrCancelled, got %v", k, err)
		}
	}
}

func TestSubmitOnComplete(t *testing.T) {
	var completed []string
	m := New(Options{
		Input: codeinput.Options{
			Fields:     4,
			OnComplete: func(v string) tea.Cmd { completed = append(completed, v); return nil },
		},
		SubmitOnComplete: true,
	})
	m, _ = update(t, m, paste("4321"))
	if len(completed) != 1 || completed[0] != "4321" {
		t.Fatalf("owner OnComplete not called: %v", completed)
	}

	m, cmd := update(t, m, autoSubmitMsg{})
	m, _ = update(t, m, cmd())
	code, err := m.Result()
	if err != nil || code != "4321" {
		t.Fatalf("unexpected result %q, %v", code, err)
	}
}

func TestClipboardOverride(t *testing.T) {
	m := New(Options{
		Input:     codeinput.Options{Fields: 4},
		Clipboard: func() (string, error) { return "8765", nil },
	})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	m, _ = update(t, m, cmd())
	if m.Value() != "8765" {
		t.Fatalf("expected clipboard contents, got %q", m.Value())
	}
}

func TestHelp(t *testing.T) {
	m := New(Options{})
	m, _ = update(t, m, util.AnnounceKeyMapMsg{KeyMap: DefaultKeyMap})
	if !strings.Contains(m.View(), "quit") {
		t.Fatalf("expected key help in view, got: %s", m.View())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.help.Expanded {
		t.Fatal("expected full help after f1")
	}
}
