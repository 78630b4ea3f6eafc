// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// It holds two kinds of files:
//   - markdown documents at the root: server instructions, CLI help, prompt
//     workflows and the naming conventions resource
//   - TypeScript code templates under code/, rendered by the scaffolding
//     generators
//
// Access goes through [MagicEmbed], an [EmbedFS] that is safe for concurrent use.
//
// Example usage:
//
//	import "github.com/mattes3/mcp4ddd/src/mcp-server/templates"
//
//	entries, err := templates.MagicEmbed.ReadDir("code")
//	if err != nil {
//		return fmt.Errorf("failed to list code templates: %w", err)
//	}
package templates
