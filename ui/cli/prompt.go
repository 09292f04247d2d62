// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/codeinput/internal/config"
	"github.com/toeirei/codeinput/internal/logging"
	"github.com/toeirei/codeinput/ui/tui"
	"github.com/toeirei/codeinput/ui/tui/models/helpers/codeinput"
	"github.com/toeirei/codeinput/ui/tui/models/views/verify"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Replaced in tests.
var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	runTUI     = tui.Run
)

// output is the document written for the json and yaml formats.
type output struct {
	Code string `json:"code" yaml:"code"`
}

func runPrompt(cmd *cobra.Command, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !isTerminal() {
		return ErrNotATerminal
	}

	opts := verify.Options{
		Input: codeinput.Options{
			Values:   cfg.Values,
			Title:    cfg.Title,
			Type:     cfg.Kind(),
			Fields:   cfg.Fields,
			Disabled: cfg.Disabled,
			Required: cfg.Required,
		},
		SubmitOnComplete: cfg.SubmitOnComplete,
	}
	programOpts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logging.Infof("prompting for %d-cell %s code", cfg.Fields, cfg.Kind())
	code, err := runTUI(ctx, opts, programOpts...)
	if err != nil {
		if errors.Is(err, verify.ErrCancelled) {
			logging.Infof("prompt cancelled")
		}
		return err
	}
	return writeResult(cmd.OutOrStdout(), cfg.Output, code)
}

func writeResult(w io.Writer, format, code string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(output{Code: code})
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(output{Code: code}); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, code)
		return err
	}
}
