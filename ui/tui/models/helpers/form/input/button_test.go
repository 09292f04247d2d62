// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/codeinput"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/form"
)

func TestButton_DisabledFuncBlocksSubmit(t *testing.T) {
	enabled := false
	b := NewButton("Verify", func() bool { return !enabled })
	b.Focus(nil)

	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("disabled button submitted: %v", action)
	}
	enabled = true
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionSubmit {
		t.Fatalf("expected submit, got %v", action)
	}
}

func TestButton_BlurredIgnoresKeys(t *testing.T) {
	b := NewButton("Verify", nil)
	if _, action := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("blurred button submitted: %v", action)
	}
}

func TestCode_EnterSubmitsWhenFocused(t *testing.T) {
	c := NewCode(codeinput.Options{Fields: 4})
	if _, action := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNone {
		t.Fatalf("blurred code input submitted: %v", action)
	}
	c.Focus(nil)
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	if c.Get() != "7" {
		t.Fatalf("expected 7, got %v", c.Get())
	}
	if _, action := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionSubmit {
		t.Fatalf("expected submit, got %v", action)
	}
}

func TestCode_SetIgnoresNonStrings(t *testing.T) {
	c := NewCode(codeinput.Options{})
	c.Set(42)
	if c.Get() != "" {
		t.Fatalf("non-string value applied: %v", c.Get())
	}
	c.Set("42")
	if c.Get() != "42" {
		t.Fatalf("expected 42, got %v", c.Get())
	}
}
