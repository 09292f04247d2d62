// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cells implements the value algebra behind the segmented code
// input: a fixed-length sequence of single-character cells and the pure
// operations that place, clear and navigate within it. Nothing here knows
// about terminals; the Bubble Tea model in ui/tui drives these functions.
package cells

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultFields is the cell count used when none is configured.
const DefaultFields = 6

// Kind selects how input is filtered and rendered.
type Kind string

const (
	KindNumber   Kind = "number"
	KindText     Kind = "text"
	KindPassword Kind = "password"
)

// ParseKind maps a configured type name to a Kind. Empty selects
// KindNumber; unknown names are treated as free text.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindNumber:
		return KindNumber
	case KindPassword:
		return KindPassword
	default:
		return KindText
	}
}

// Numeric reports whether only digits are accepted.
func (k Kind) Numeric() bool { return k == KindNumber || k == "" }

// Masked reports whether cell contents are hidden when rendered.
func (k Kind) Masked() bool { return k == KindPassword }

// Sequence is the ordered cell contents. Each element is empty or holds
// exactly one character.
type Sequence []string

// Empty returns a sequence of n empty cells.
func Empty(n int) Sequence {
	return make(Sequence, n)
}

// Join concatenates all cells in index order.
func (s Sequence) Join() string {
	return strings.Join(s, "")
}

// Filled reports whether every cell holds a character.
func (s Sequence) Filled() bool {
	for _, c := range s {
		if c == "" {
			return false
		}
	}
	return len(s) > 0
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Normalize filters raw input for the given kind. Numeric kinds keep only
// ASCII digits; text kinds are NFC-normalized so composed characters fill
// a single cell.
func Normalize(raw string, kind Kind) string {
	if kind.Numeric() {
		return strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, raw)
	}
	return stripControl(norm.NFC.String(raw))
}

// Split breaks a normalized value into single-character cells.
func Split(value string) []string {
	out := make([]string, 0, len(value))
	for _, r := range value {
		out = append(out, string(r))
	}
	return out
}

// Reconcile derives the cell sequence from an externally supplied value:
// normalize, split, truncate to fields, and pad with empty cells.
func Reconcile(source string, fields int, kind Kind) Sequence {
	if fields <= 0 {
		fields = DefaultFields
	}
	seq := Empty(fields)
	for i, c := range Split(Normalize(source, kind)) {
		if i >= fields {
			break
		}
		seq[i] = c
	}
	return seq
}

// NoFocus marks a result that does not move focus.
const NoFocus = -1

// Result is the outcome of an input event.
type Result struct {
	Seq Sequence
	// Focus is the cell that should receive focus, or NoFocus.
	Focus int
	// Accepted is false when the event was rejected. Accepted events
	// notify the owner even if no cell changed.
	Accepted bool
}

// Input describes a value entered into one cell.
type Input struct {
	Index int
	// Value is the cell's new raw content: the typed or pasted text,
	// prefixed by the existing content when it was not selected.
	Value string
	// Typed is set for keystrokes. Numeric kinds reject typed input that
	// carries anything besides digits.
	Typed bool
}

// Place applies an input event to seq and returns the new sequence. A
// single character is stored at the index and focus advances by one; a
// longer value is spread over the following cells, dropping what does not
// fit, and focus lands on the last cell written.
func Place(seq Sequence, in Input, kind Kind) Result {
	if in.Index < 0 || in.Index >= len(seq) {
		return Result{Seq: seq, Focus: NoFocus}
	}
	value := Normalize(in.Value, kind)
	if value == "" {
		return Result{Seq: seq, Focus: NoFocus}
	}
	if kind.Numeric() && in.Typed && value != stripControl(in.Value) {
		return Result{Seq: seq, Focus: NoFocus}
	}

	chars := Split(value)
	next := seq.Clone()
	if len(chars) == 1 {
		next[in.Index] = chars[0]
		focus := in.Index + 1
		if focus >= len(next) {
			focus = NoFocus
		}
		return Result{Seq: next, Focus: focus, Accepted: true}
	}

	for off, c := range chars {
		cursor := in.Index + off
		if cursor >= len(next) {
			break
		}
		next[cursor] = c
	}
	focus := min(in.Index+len(chars)-1, len(next)-1)
	return Result{Seq: next, Focus: focus, Accepted: true}
}

// Backspace clears the cell at index, or the previous cell when the
// current one is empty. Focus moves only in the latter case.
func Backspace(seq Sequence, index int) Result {
	if index < 0 || index >= len(seq) {
		return Result{Seq: seq, Focus: NoFocus}
	}
	next := seq.Clone()
	switch {
	case next[index] != "":
		next[index] = ""
		return Result{Seq: next, Focus: NoFocus, Accepted: true}
	case index > 0:
		next[index-1] = ""
		return Result{Seq: next, Focus: index - 1, Accepted: true}
	default:
		// empty first cell; the owner is still notified
		return Result{Seq: next, Focus: NoFocus, Accepted: true}
	}
}

// Direction is an arrow key.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Navigate returns the cell focused after an arrow key at index, or
// NoFocus when focus stays. Up and Down never move focus.
func Navigate(index, fields int, dir Direction) int {
	switch dir {
	case Left:
		if index > 0 && index < fields {
			return index - 1
		}
	case Right:
		if index >= 0 && index+1 < fields {
			return index + 1
		}
	}
	return NoFocus
}

// Complete reports whether value fills all fields.
func Complete(value string, fields int) bool {
	return len([]rune(value)) >= fields
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
