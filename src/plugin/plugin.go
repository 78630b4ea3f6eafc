// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/logger"
)

// ID identifies the plugin to its host.
const ID = "ddd-scaffolder"

// Host is the part of the agent runtime a plugin talks to.
type Host interface {
	// Logger returns the host's logger for plugin messages.
	Logger() logger.Logger
	// PluginConfig returns the raw configuration the user gave the plugin.
	PluginConfig() map[string]any
	// RegisterTool makes a tool available to the agent.
	RegisterTool(tool *AgentTool)
}

// Descriptor is what a host loads to learn about and initialize the plugin.
type Descriptor struct {
	ID           string
	Name         string
	Version      string
	Description  string
	ConfigSchema ConfigSchema

	generators []generator.Generator
}

// New returns the descriptor offering every scaffolding generator.
func New(version string) (*Descriptor, error) {
	cs, err := newConfigSchema()
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		ID:           ID,
		Name:         ID,
		Version:      version,
		Description:  "Generator for DDD entities, value objects, repositories, and services",
		ConfigSchema: cs,
		generators:   generator.All(),
	}, nil
}

// Register parses the host's plugin configuration and registers one
// [AgentTool] per generator. Nothing is registered when the configuration is
// invalid.
func (d *Descriptor) Register(api Host) error {
	log := api.Logger()

	settings, err := d.ConfigSchema.Parse(api.PluginConfig())
	if err != nil {
		log.Errorf("%s plugin configuration rejected: %v", d.Name, err)
		return fmt.Errorf("invalid %s plugin configuration: %w", d.Name, err)
	}

	for _, g := range d.generators {
		api.RegisterTool(NewAgentTool(g, settings))
	}

	log.Printf("%s plugin initialized with %d tools", d.Name, len(d.generators))
	return nil
}

// manifest is the host-facing description of the plugin configuration.
type manifest struct {
	ID           string            `json:"id"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	ConfigSchema json.RawMessage   `json:"configSchema"`
	UIHints      map[string]UIHint `json:"uiHints"`
}

// Manifest returns the indented JSON manifest a host reads before loading the
// plugin: id, version, description, config schema and UI hints.
func (d *Descriptor) Manifest() ([]byte, error) {
	data, err := json.MarshalIndent(manifest{
		ID:           d.ID,
		Version:      d.Version,
		Description:  d.Description,
		ConfigSchema: d.ConfigSchema.JSON,
		UIHints:      d.ConfigSchema.UIHints,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plugin manifest: %w", err)
	}
	return data, nil
}
