// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server serves the DDD scaffolding tools over stdio without the CLI
// subcommands. Configuration comes from MCP_DDD_SCAFFOLDER_CONFIG_FILE.
package main

import (
	"fmt"
	"os"

	mcpserver "github.com/mattes3/mcp4ddd/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() {
	if err := mcpserver.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
