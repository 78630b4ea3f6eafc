// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mattes3/mcp4ddd/src/logger"
	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
	"github.com/mattes3/mcp4ddd/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// newServerLogger returns the stderr logger for a server run.
func newServerLogger(config *Config) *logger.MCPLogger {
	return logger.NewMCPLogger(os.Stderr, config.Log.Silent).Named("mcp-server")
}

// Run starts the MCP server with the DDD scaffolding tools on stdio.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Server startup or runtime error; nil after a signal-triggered shutdown
//
// Configuration:
//   - Loads config from the MCP_DDD_SCAFFOLDER_CONFIG_FILE environment variable
//   - Falls back to default config if the variable is not set
//
// Server Lifecycle:
//  1. Load configuration from environment
//  2. Build MCP server using ServerBuilder pattern
//  3. Set up signal handling for graceful shutdown
//  4. Serve stdio until EOF, an error or a signal
func Run(version string) error {
	appVersion = version

	config, err := loadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l := newServerLogger(config)

	s, err := NewServerBuilder().
		WithConfig(config).
		WithEmbed(templates.MagicEmbed).
		WithVersion(version).
		WithLogger(l).
		WithDefaultTools().
		WithDefaultResources().
		WithDefaultPrompts().
		WithDefaultInstructions().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	return serveStdio(s, l, os.Stdin, os.Stdout)
}

// serveStdio serves s over in and out until the input ends or SIGINT or
// SIGTERM arrives. A signal-triggered shutdown is not an error.
func serveStdio(s *server.MCPServer, l logger.Logger, in io.Reader, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stdioServer := server.NewStdioServer(s)
	stdioServer.SetErrorLogger(newStdLogger(l))

	l.Printf("%s MCP server %s started", ServerName, appVersion)

	err := stdioServer.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		l.Printf("%s MCP server stopped", ServerName)
		return nil
	}
	return err
}
