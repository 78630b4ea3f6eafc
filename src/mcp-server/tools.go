// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns one MCP tool definition per generator.
//
// The tools are:
//   - generateEntity: entity or aggregate root plus test skeleton
//   - generateValueObject: immutable value object plus test skeleton
//   - generateRepository: repository interface plus test skeleton
//   - generateDomainService: errors, params, implementation and test
//   - generateDynamoDBRepository: ElectroDB entity, implementation and test
//   - generatePostgreSQLRepository: Objection.js model and implementation
//   - generateModule: a whole bounded context
//
// Each tool carries the generator's JSON Schema as input schema and the
// [generator.Result] shape as output schema. All of them only compute text,
// so they are annotated read-only, idempotent and closed-world.
func createTools() []ToolDefinition {
	gens := generator.All()
	tools := make([]ToolDefinition, 0, len(gens))
	for _, g := range gens {
		tools = append(tools, ToolDefinition{Tool: newTool(g), Generator: g})
	}
	return tools
}

// newTool describes g as an MCP tool.
func newTool(g generator.Generator) mcp.Tool {
	tool := mcp.NewToolWithRawSchema(g.Name(), g.Description(), g.InputSchema())

	for _, opt := range []mcp.ToolOption{
		mcp.WithTitleAnnotation(g.Title()),
		mcp.WithOutputSchema[generator.Result](),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	} {
		opt(&tool)
	}

	return tool
}
