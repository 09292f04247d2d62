// Copyright (c) 2026 Keymaster Team
// Codeinput - segmented code entry for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads prompt settings from flags, CODEINPUT_* environment
// variables and codeinput.yaml, in that order of precedence, and writes
// default configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/codeinput/internal/cells"
)

const (
	configName = "codeinput"
	envPrefix  = "codeinput"
	maxFields  = 64
)

// Output formats accepted by the prompt command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Title            string `mapstructure:"title" yaml:"title"`
	Type             string `mapstructure:"type" yaml:"type"`
	Fields           int    `mapstructure:"fields" yaml:"fields"`
	Values           string `mapstructure:"values" yaml:"values,omitempty"`
	Disabled         bool   `mapstructure:"disabled" yaml:"disabled"`
	Required         bool   `mapstructure:"required" yaml:"required"`
	SubmitOnComplete bool   `mapstructure:"submit-on-complete" yaml:"submit-on-complete"`
	AltScreen        bool   `mapstructure:"alt-screen" yaml:"alt-screen"`
	Output           string `mapstructure:"output" yaml:"output"`
	LogFile          string `mapstructure:"log-file" yaml:"log-file,omitempty"`
	Debug            bool   `mapstructure:"debug" yaml:"debug"`
}

// Defaults are the values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"title":              "Enter code",
		"type":               string(cells.KindNumber),
		"fields":             cells.DefaultFields,
		"values":             "",
		"disabled":           false,
		"required":           true,
		"submit-on-complete": false,
		"alt-screen":         false,
		"output":             OutputText,
		"log-file":           "",
		"debug":              false,
	}
}

// Validate checks values that would otherwise fail deep inside the UI.
func (c Config) Validate() error {
	if c.Fields < 1 || c.Fields > maxFields {
		return fmt.Errorf("%w: fields must be between 1 and %d, got %d", ErrInvalidConfig, maxFields, c.Fields)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

// Kind is the parsed input type.
func (c Config) Kind() cells.Kind {
	return cells.ParseKind(c.Type)
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Codeinput")
		default: // Linux, macOS, etc.
			configDir = "/etc/codeinput"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "codeinput")
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig merges defaults, config file, environment and the flags of cmd
// into T. A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	// 3. An explicit --config path wins over the search paths.
	if configFilePath != nil && *configFilePath != "" {
		v.SetConfigFile(*configFilePath)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	// 4. Read in the config file.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	// 5. Read from environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// 6. Flags, only those set explicitly override the layers above
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c to the user or system config path and returns
// the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
