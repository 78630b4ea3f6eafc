// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers.
// Prompt content is rendered from the markdown templates in embed.
func createPrompts(embed templates.EmbedFS) []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("scaffold-aggregate",
				mcp.WithPromptDescription("Scaffold an aggregate with its value objects, repository and persistence adapter"),
				mcp.WithArgument("aggregateName",
					mcp.ArgumentDescription("Name of the aggregate root, e.g. Order"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("boundedContext",
					mcp.ArgumentDescription("Bounded context that owns the aggregate"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("persistence",
					mcp.ArgumentDescription("Persistence technology: 'dynamodb' or 'postgresql' (default: dynamodb)"),
				),
			),
			Handler: handleScaffoldAggregatePrompt(embed),
		},
		{
			Prompt: mcp.NewPrompt("domain-service",
				mcp.WithPromptDescription("Design a domain service and generate it with its error and parameter types"),
				mcp.WithArgument("serviceName",
					mcp.ArgumentDescription("Name of the domain service in camelCase, e.g. placeOrder"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("boundedContext",
					mcp.ArgumentDescription("Bounded context that owns the service"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handleDomainServicePrompt(embed),
		},
	}
}
