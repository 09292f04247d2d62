// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package form_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/codeinput"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/codeinput/ui/tui/models/helpers/form/input"
)

type result struct {
	Code string `mapstructure:"code"`
}

type outcome struct {
	submitted bool
	cancelled bool
	result    result
	err       error
}

func newForm(opts codeinput.Options) (form.Form[result], *outcome) {
	o := &outcome{}
	f := form.New(
		form.WithOnSubmit(func(r result, err error) tea.Cmd {
			o.submitted, o.result, o.err = true, r, err
			return nil
		}),
		form.WithOnCancel[result](func() tea.Cmd {
			o.cancelled = true
			return nil
		}),
		form.WithInput[result]("code", forminput.NewCode(opts)),
		form.WithInput[result]("submit", forminput.NewButton("Submit", nil)),
	)
	f.Focus(nil)
	return f, o
}

func send(f form.Form[result], msgs ...tea.Msg) form.Form[result] {
	for _, msg := range msgs {
		f, _ = f.Update(msg)
	}
	return f
}

func TestForm_TabCyclesInputs(t *testing.T) {
	f, _ := newForm(codeinput.Options{})
	if f.ActiveID() != "code" {
		t.Fatalf("expected code focused first, got %q", f.ActiveID())
	}
	f = send(f, tea.KeyMsg{Type: tea.KeyTab})
	if f.ActiveID() != "submit" {
		t.Fatalf("expected submit after tab, got %q", f.ActiveID())
	}
	f = send(f, tea.KeyMsg{Type: tea.KeyTab})
	if f.ActiveID() != "code" {
		t.Fatalf("expected wrap to code, got %q", f.ActiveID())
	}
	f = send(f, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.ActiveID() != "submit" {
		t.Fatalf("expected shift+tab to wrap backwards, got %q", f.ActiveID())
	}
}

func TestForm_SubmitDecodesCode(t *testing.T) {
	f, o := newForm(codeinput.Options{Fields: 4})
	f = send(f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1234"), Paste: true})
	send(f, tea.KeyMsg{Type: tea.KeyEnter})

	if !o.submitted {
		t.Fatal("expected submit")
	}
	if o.err != nil {
		t.Fatalf("unexpected error: %v", o.err)
	}
	if o.result.Code != "1234" {
		t.Fatalf("expected code 1234, got %q", o.result.Code)
	}
}

func TestForm_SubmitReportsIncompleteRequired(t *testing.T) {
	f, o := newForm(codeinput.Options{Fields: 4, Required: true})
	f = send(f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})
	f = send(f, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})

	if !o.submitted {
		t.Fatal("expected submit from button")
	}
	if !errors.Is(o.err, codeinput.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", o.err)
	}
	if o.result.Code != "12" {
		t.Fatalf("expected partial code, got %q", o.result.Code)
	}
}

func TestForm_EscCancels(t *testing.T) {
	f, o := newForm(codeinput.Options{})
	send(f, tea.KeyMsg{Type: tea.KeyEsc})
	if !o.cancelled {
		t.Fatal("expected cancel callback")
	}
}

func TestForm_SetAndReset(t *testing.T) {
	f, o := newForm(codeinput.Options{Fields: 4})
	if err := f.Set(result{Code: "98"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := f.Get()
	if err != nil || got.Code != "98" {
		t.Fatalf("expected 98, got %q (%v)", got.Code, err)
	}

	f = send(f, tea.KeyMsg{Type: tea.KeyTab})
	f.Reset()
	if f.ActiveID() != "code" {
		t.Fatalf("reset should focus first input, got %q", f.ActiveID())
	}
	got, _ = f.Get()
	if got.Code != "" {
		t.Fatalf("expected empty code after reset, got %q", got.Code)
	}
	if o.submitted {
		t.Fatal("set/reset must not submit")
	}
}

func TestForm_IgnoresKeysWhenBlurred(t *testing.T) {
	f, _ := newForm(codeinput.Options{})
	f.Blur()
	f = send(f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	got, _ := f.Get()
	if got.Code != "" {
		t.Fatalf("blurred form accepted input: %q", got.Code)
	}
}
