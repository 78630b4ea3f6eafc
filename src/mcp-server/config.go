// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable holding the configuration
// file path when none is given on the command line.
const ConfigFileEnv = "MCP_DDD_SCAFFOLDER_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_DDD_SCAFFOLDER_CONFIG_FILE environment variable, with defaults applied
// for any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Settings: Import sources and output folder used by every generator
	Settings generator.Settings `json:"settings" yaml:"settings"`

	// Log: Diagnostics written to stderr
	Log struct {
		// Silent: Suppress all server log lines
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Files without a known extension are sniffed: content that does not start
// with '{' is treated as YAML.
//
// Parameters:
//   - configPath: Path to the configuration file
//   - data: Raw configuration file contents
//
// Returns:
//   - configFormat: The detected format (configFormatJSON or configFormatYAML)
func detectConfigFormat(configPath string, data []byte) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	case ".json":
		return configFormatJSON
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return configFormatJSON
	}
	return configFormatYAML
}

// unmarshalConfig unmarshals configuration data based on the specified format.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_DDD_SCAFFOLDER_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. Environment variables override everything, but only when a tool runs
//     (see [Config.EffectiveSettings])
func loadConfig(configPath string) (*Config, error) {
	config := &Config{Settings: generator.DefaultSettings()}

	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath, data)); err != nil {
			return nil, err
		}

		// Empty values in the file fall back to defaults.
		config.Settings = config.Settings.WithDefaults()
	}

	if err := config.Settings.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EffectiveSettings returns the settings a generator call should use: the
// configured settings overridden by BASIC_TYPES_FROM, BASIC_ERROR_TYPES_FROM,
// BOUNDED_CONTEXTS_PARENT_FOLDER and DYNAMODB_CONFIG_FROM as they are set at
// call time.
func (c *Config) EffectiveSettings() (generator.Settings, error) {
	base := generator.DefaultSettings()
	if c != nil {
		base = c.Settings.WithDefaults()
	}
	return base.FromEnv()
}
