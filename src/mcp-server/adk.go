// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/mattes3/mcp4ddd/src/version"
)

// transportInMemory is the only transport type the ADK builder supports.
const transportInMemory = "inmemory"

// ADKTransportConfig holds configuration for creating MCP transports for
// [Google ADK] integration.
//
// Example usage with ADK:
//
//	transport, err := NewADKTransportBuilder().WithInMemoryTransport().BuildTransport(ctx)
//	toolSet, err := mcptoolset.New(mcptoolset.Config{Transport: transport})
//
// [Google ADK]: https://pkg.go.dev/google.golang.org/adk
type ADKTransportConfig struct {
	// MCPConfigFile: Configuration file for the scaffolding settings
	MCPConfigFile string
	// Version: Version reported by the embedded server
	Version string
	// TransportType: "inmemory"
	TransportType string
}

// ADKTransportBuilder helps construct MCP transports for ADK integration
type ADKTransportBuilder struct{ config ADKTransportConfig }

// NewADKTransportBuilder creates a new ADK transport builder reading the
// configuration file from MCP_DDD_SCAFFOLDER_CONFIG_FILE.
func NewADKTransportBuilder() *ADKTransportBuilder {
	return &ADKTransportBuilder{
		config: ADKTransportConfig{
			MCPConfigFile: os.Getenv(ConfigFileEnv),
			Version:       version.Version,
			TransportType: transportInMemory,
		},
	}
}

// WithMCPConfig sets the configuration file path
func (b *ADKTransportBuilder) WithMCPConfig(configFile string) *ADKTransportBuilder {
	b.config.MCPConfigFile = configFile
	return b
}

// WithVersion sets the MCP server version
func (b *ADKTransportBuilder) WithVersion(version string) *ADKTransportBuilder {
	b.config.Version = version
	return b
}

// WithInMemoryTransport configures in-memory transport (connects directly to handlers)
func (b *ADKTransportBuilder) WithInMemoryTransport() *ADKTransportBuilder {
	b.config.TransportType = transportInMemory
	return b
}

// ValidateConfig validates the transport builder configuration
func (b *ADKTransportBuilder) ValidateConfig() error {
	if b.config.TransportType != transportInMemory {
		return fmt.Errorf("unsupported transport type: %s", b.config.TransportType)
	}
	return nil
}

// BuildTransport loads the configuration and returns an in-memory transport
// connected to a server offering the scaffolding tools, resources and prompts.
func (b *ADKTransportBuilder) BuildTransport(ctx context.Context) (*InMemoryTransport, error) {
	if err := b.ValidateConfig(); err != nil {
		return nil, err
	}

	config, err := loadConfig(b.config.MCPConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load MCP config: %w", err)
	}

	return NewTransportBuilder().
		WithConfig(config).
		WithVersion(b.config.Version).
		WithDefaultTools().
		WithDefaultResources().
		WithDefaultPrompts().
		WithDefaultInstructions().
		BuildInMemoryTransport(ctx)
}
