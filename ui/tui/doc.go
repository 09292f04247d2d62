// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the code prompt as a Bubble Tea program. Presentation
// and input handling live in models/; this package only wires the program.
package tui
