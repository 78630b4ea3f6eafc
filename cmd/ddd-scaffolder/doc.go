// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// ddd-scaffolder generates TypeScript domain-driven design components and
// serves the generators as MCP tools.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/mattes3/mcp4ddd/cmd/ddd-scaffolder@latest
//
// # Usage
//
//	ddd-scaffolder [--config FILE] [--instructions]
//	ddd-scaffolder list
//	ddd-scaffolder generate TOOL --input FILE [--json]
//	ddd-scaffolder manifest
//
// Without a subcommand the MCP server runs on stdio. Generated files are
// printed, never written.
//
// # Examples
//
// Preview an entity:
//
//	echo '{"entityName":"Order","boundedContext":"sales"}' | ddd-scaffolder generate generateEntity -i -
//
// Register with an MCP client:
//
//	{"mcpServers": {"ddd": {"command": "ddd-scaffolder"}}}
package main
