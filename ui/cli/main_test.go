// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/codeinput/internal/cells"
	"github.com/toeirei/codeinput/internal/config"
	"github.com/toeirei/codeinput/ui/tui/models/views/verify"
	"gopkg.in/yaml.v3"
)

// isolate keeps the tests away from real config files and the terminal.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	oldTerm, oldRun := isTerminal, runTUI
	t.Cleanup(func() { isTerminal, runTUI = oldTerm, oldRun })
	isTerminal = func() bool { return true }
}

// stubPrompt records the options the prompt was started with and answers
// with code and err.
func stubPrompt(t *testing.T, code string, err error) *verify.Options {
	t.Helper()
	got := new(verify.Options)
	runTUI = func(_ context.Context, opts verify.Options, _ ...tea.ProgramOption) (string, error) {
		*got = opts
		return code, err
	}
	return got
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrompt_DefaultsAndTextOutput(t *testing.T) {
	isolate(t)
	got := stubPrompt(t, "123456", nil)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "123456\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if got.Input.Fields != cells.DefaultFields || got.Input.Type != cells.KindNumber {
		t.Fatalf("unexpected input options: %+v", got.Input)
	}
	if got.Input.Title != "Enter code" || !got.Input.Required {
		t.Fatalf("expected default title and required, got %+v", got.Input)
	}
}

func TestPrompt_FlagsReachTheInput(t *testing.T) {
	isolate(t)
	got := stubPrompt(t, "abcd", nil)

	_, err := execute(t, "prompt", "--fields", "4", "--type", "password", "--title", "PIN", "--values", "ab", "--submit-on-complete")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := got.Input
	if in.Fields != 4 || in.Type != cells.KindPassword || in.Title != "PIN" || in.Values != "ab" {
		t.Fatalf("unexpected input options: %+v", in)
	}
	if !got.SubmitOnComplete {
		t.Fatal("expected submit-on-complete")
	}
}

func TestPrompt_EnvironmentOverridesDefaults(t *testing.T) {
	isolate(t)
	got := stubPrompt(t, "1234", nil)
	t.Setenv("CODEINPUT_FIELDS", "4")
	t.Setenv("CODEINPUT_SUBMIT_ON_COMPLETE", "true")

	if _, err := execute(t); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Input.Fields != 4 || !got.SubmitOnComplete {
		t.Fatalf("environment not applied: %+v", got)
	}
}

func TestPrompt_JSONOutput(t *testing.T) {
	isolate(t)
	stubPrompt(t, "654321", nil)

	out, err := execute(t, "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc output
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if doc.Code != "654321" {
		t.Fatalf("unexpected code %q", doc.Code)
	}
}

func TestPrompt_YAMLOutput(t *testing.T) {
	isolate(t)
	stubPrompt(t, "000123", nil)

	out, err := execute(t, "--output", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc output
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid yaml %q: %v", out, err)
	}
	if doc.Code != "000123" {
		t.Fatalf("leading zeros lost: %q", doc.Code)
	}
}

func TestPrompt_NotATerminal(t *testing.T) {
	isolate(t)
	isTerminal = func() bool { return false }
	stubPrompt(t, "123456", nil)

	if _, err := execute(t); !errors.Is(err, ErrNotATerminal) {
		t.Fatalf("expected ErrNotATerminal, got %v", err)
	}
}

func TestPrompt_InvalidConfig(t *testing.T) {
	isolate(t)
	stubPrompt(t, "", nil)

	if _, err := execute(t, "--fields", "0"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := execute(t, "--output", "xml"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPrompt_CancelledWritesNothing(t *testing.T) {
	isolate(t)
	stubPrompt(t, "", verify.ErrCancelled)

	out, err := execute(t)
	if !errors.Is(err, verify.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestPrompt_LogFile(t *testing.T) {
	isolate(t)
	stubPrompt(t, "123456", nil)
	logPath := filepath.Join(t.TempDir(), "codeinput.log")

	if _, err := execute(t, "--log-file", logPath, "--debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "prompting for 6-cell number code") {
		t.Fatalf("expected prompt entry in log, got %q", data)
	}
}

func TestConfigWrite_RoundTrip(t *testing.T) {
	isolate(t)
	got := stubPrompt(t, "12345678", nil)

	out, err := execute(t, "config", "write", "--fields", "8", "--type", "text")
	if err != nil {
		t.Fatalf("config write: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected path %s in output %q", path, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := execute(t); err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got.Input.Fields != 8 || got.Input.Type != cells.KindText {
		t.Fatalf("written config not picked up: %+v", got.Input)
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestResolveBuildVersion_FromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v0.3.1" || c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected build version %q %q %q", v, c, d)
	}
	if got := compositeVersion(v, c, d); got != "v0.3.1 (abc123) built: 2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected composite version %q", got)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Deps: []*debug.Module{{Path: modulePath, Version: "v1.0.0"}},
	}
	v, c, _ := resolveBuildVersion(info)
	if v != "v1.0.0" || c != "dev" {
		t.Fatalf("unexpected build version %q %q", v, c)
	}
	if got := compositeVersion(v, c, ""); got != "v1.0.0" {
		t.Fatalf("unexpected composite version %q", got)
	}
}
