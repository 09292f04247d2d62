// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/codeinput/internal/config"
)

func newConfigCmd(appConfig *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the codeinput config file",
	}

	var system bool
	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Write the effective settings to the config file",
		Long: `Writes the settings currently in effect (defaults, config file, environment
and flags merged) to the user config file, or to the system-wide one with
--system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appConfig.Validate(); err != nil {
				return err
			}
			path, err := config.WriteConfigFile(appConfig, system)
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
			return nil
		},
	}
	writeCmd.Flags().BoolVar(&system, "system", false, "write the system-wide config file")
	applyPromptFlags(writeCmd)

	cmd.AddCommand(writeCmd)
	return cmd
}
