// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/ui/tui/models/views/verify"
)

// Run shows the code prompt until a code is submitted or the prompt is
// cancelled, and returns the submitted code.
func Run(ctx context.Context, opts verify.Options, programOpts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(
		verify.New(opts),
		append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)...,
	).Run()
	if err != nil {
		return "", fmt.Errorf("run code prompt: %w", err)
	}

	m, ok := final.(verify.Model)
	if !ok {
		return "", fmt.Errorf("unexpected final model %T", final)
	}
	return m.Result()
}
