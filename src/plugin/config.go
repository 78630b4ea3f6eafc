// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package plugin

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/mattes3/mcp4ddd/src/internal/helper/jsonrpc"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

//go:embed config.schema.json
var configSchemaJSON []byte

// UIHint tells a host how to present one configuration field.
type UIHint struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// ConfigSchema describes and parses the plugin configuration.
type ConfigSchema struct {
	// JSON is the JSON Schema of the configuration object.
	JSON json.RawMessage
	// UIHints maps configuration keys to their presentation.
	UIHints map[string]UIHint

	validator *schema.Validator
}

// newConfigSchema compiles the embedded configuration schema.
func newConfigSchema() (ConfigSchema, error) {
	v, err := schema.Compile(configSchemaJSON)
	if err != nil {
		return ConfigSchema{}, fmt.Errorf("failed to compile plugin config schema: %w", err)
	}

	return ConfigSchema{
		JSON: v.Raw(),
		UIHints: map[string]UIHint{
			"basicTypesFrom": {
				Label:       "Package with Basic Types",
				Placeholder: generator.DefaultRuntimePackage,
			},
			"basicErrorTypesFrom": {
				Label:       "Package with Basic Error Types",
				Placeholder: generator.DefaultRuntimePackage,
			},
			"boundedContextsParentFolder": {
				Label:       "Parent folder for bounded contexts",
				Placeholder: generator.DefaultParentFolder,
			},
			"dynamoDBConfigurationFrom": {
				Label:       "Package with configuration for DynamoDB",
				Placeholder: generator.DefaultRuntimePackage,
			},
		},
		validator: v,
	}, nil
}

// Parse validates a host-provided configuration value and returns the
// settings it describes. Missing or empty fields take the defaults; nil
// yields the default settings.
func (c ConfigSchema) Parse(value map[string]any) (generator.Settings, error) {
	if value == nil {
		value = map[string]any{}
	}
	if err := c.validator.Validate(value); err != nil {
		return generator.Settings{}, err
	}

	settings, err := jsonrpc.Decode[generator.Settings](value)
	if err != nil {
		return generator.Settings{}, fmt.Errorf("failed to decode plugin config: %w", err)
	}

	settings = settings.WithDefaults()
	if err := settings.Validate(); err != nil {
		return generator.Settings{}, err
	}
	return settings, nil
}
