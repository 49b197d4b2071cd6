// Package config loads the optional .webctl.toml project file that sets
// defaults for the init command. Flags always win over config values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/webctl-dev/webctl/internal/messages"
)

// FileName is the project config file looked up at the project root.
const FileName = ".webctl.toml"

// Config is the parsed project configuration.
type Config struct {
	Init InitConfig `toml:"init"`
}

// InitConfig holds defaults for `webctl init`.
type InitConfig struct {
	// Agents is the default target selection, replacing the built-in
	// default set when non-empty.
	Agents []string `toml:"agents"`
	// Global selects the user-wide install scope by default.
	Global bool `toml:"global"`
}

// Load reads root/.webctl.toml. A missing file is not an error: the zero
// Config is returned so callers fall back to built-in defaults.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes config bytes strictly: unknown keys are rejected so typos
// surface instead of silently doing nothing.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf(messages.ConfigUnknownKeys, path, err)
		}
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	return &cfg, nil
}
