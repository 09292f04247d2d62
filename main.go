// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for codeinput.
//
// Usage:
//
//	code=$(codeinput --fields 6)
//	codeinput --type text --title "Recovery code" --output json
//
// See --help for options.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/codeinput/internal/logging"
	"github.com/toeirei/codeinput/ui/cli"
	"github.com/toeirei/codeinput/ui/tui/models/views/verify"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, verify.ErrCancelled) {
			os.Exit(130)
		}
		logging.SetOutput(os.Stderr)
		logging.Errorf("codeinput: %v", err)
		os.Exit(1)
	}
}
