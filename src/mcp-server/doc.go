// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for DDD code scaffolding.
// It registers one tool per generator of the scaffold packages, each taking
// validated JSON arguments and returning the generated TypeScript files as
// structured output, together with resources describing the configuration and
// naming conventions and prompts that guide an assistant through an aggregate
// or a domain service. Generated files are returned, never written.
//
// The server is assembled with [ServerBuilder], run over stdio by [Run] or
// [CLIFramework], and can be embedded in [Google ADK] agents through
// [InMemoryTransport].
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [Google ADK]: https://pkg.go.dev/google.golang.org/adk
package mcpserver
