// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for codeinput using Cobra. The
// root command runs the code prompt; subcommands manage the config file and
// print build information.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/toeirei/codeinput/internal/config"
	"github.com/toeirei/codeinput/internal/logging"
)

// ErrNotATerminal is returned when the prompt would read from a pipe.
var ErrNotATerminal = errors.New("stdin is not a terminal")

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree. Each call has its own flag set so
// tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile   string
		appConfig config.Config
		logCloser io.Closer
	)

	cmd := &cobra.Command{
		Use:   "codeinput",
		Short: "Prompt for a one-time or verification code in the terminal.",
		Long: `codeinput shows a row of single-character boxes and reads a code into
them: digits only by default, free text with --type text, masked with
--type password. Pasting fills the boxes from the focused one onward.

The prompt is drawn on stderr and the submitted code is printed to stdout,
so it can be captured with $(codeinput).`,
		SilenceUsage: true,
		Version:      compositeVersion(resolveBuildVersion(nil)),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), &cfgFile)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			logging.SetDebug(appConfig.Debug)
			if appConfig.LogFile != "" {
				if logCloser, err = logging.OpenFile(appConfig.LogFile); err != nil {
					return err
				}
			}
			logging.Debugf("config loaded: %+v", appConfig)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser == nil {
				return nil
			}
			logging.SetOutput(io.Discard)
			return logCloser.Close()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, appConfig)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/codeinput/codeinput.yaml)")
	cmd.PersistentFlags().String("log-file", "", "append logs to this file")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	applyPromptFlags(cmd)

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Prompt for a code (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, appConfig)
		},
	}
	applyPromptFlags(promptCmd)

	cmd.AddCommand(
		promptCmd,
		newConfigCmd(&appConfig),
		newVersionCmd(),
	)
	return cmd
}

// applyPromptFlags registers the prompt settings. Defaults live in
// config.Defaults so unset flags never shadow the config file.
func applyPromptFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("title", "t", "", "label shown above the boxes")
	flags.String("type", "", `input type: "number", "text" or "password"`)
	flags.IntP("fields", "n", 0, "number of boxes")
	flags.String("values", "", "prefill the boxes with this value")
	flags.Bool("disabled", false, "render the boxes read-only")
	flags.Bool("required", false, "refuse to submit until every box is filled")
	flags.Bool("submit-on-complete", false, "submit as soon as the last box is filled")
	flags.Bool("alt-screen", false, "draw the prompt on the alternate screen")
	flags.StringP("output", "o", "", `output format: "text", "json" or "yaml"`)
}


