// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/logger"
	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ServerName is the name the server reports during the [MCP] handshake.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
const ServerName = "DDD Scaffolder"

// tracerName identifies spans created by this package.
const tracerName = "github.com/mattes3/mcp4ddd/src/mcp-server"

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers that provide static or dynamic resources.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers that provide predefined prompts.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition pairs an MCP tool specification with the generator that
// implements it.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Generator: The scaffolding generator invoked on each call
type ToolDefinition struct {
	Tool      mcp.Tool
	Generator generator.Generator
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It consolidates all required components for server initialization using the builder pattern.
//
// Fields:
//   - Config: Server configuration holding the generator settings
//   - Embed: Embedded filesystem for documents and prompt templates
//   - Version: Server version string reported to clients
//   - Logger: Destination for tool invocation logs (never stdout)
//   - Tracer: OpenTelemetry tracer for tool invocation spans
//   - Tools: Tool definitions, one per generator
//   - Resources: Additional resources besides the defaults
//   - Prompts: Additional prompts besides the defaults
//   - Instructions: Instructions sent to clients during initialization
//
// This struct is used internally by ServerBuilder and by [NewCLIFramework].
type ServerDependencies struct {
	Config       *Config
	Embed        templates.EmbedFS
	Version      string
	Logger       logger.Logger
	Tracer       trace.Tracer
	Tools        []ToolDefinition
	Resources    []server.ServerResource
	Prompts      []server.ServerPrompt
	Instructions string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    WithDefaultPrompts().
//	    WithDefaultInstructions().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct {
	deps                ServerDependencies
	defaultResources    bool
	defaultPrompts      bool
	defaultInstructions bool
}

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
// A nil config makes every tool call use the built-in settings plus the environment.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for documents and prompt templates.
// It defaults to [templates.MagicEmbed].
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string used for identification.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the logger for tool invocations.
// It defaults to a silent [logger.MCPLogger].
func (b *ServerBuilder) WithLogger(l logger.Logger) *ServerBuilder {
	b.deps.Logger = l
	return b
}

// WithTracer sets the tracer for tool invocation spans.
// It defaults to the global OpenTelemetry tracer provider.
func (b *ServerBuilder) WithTracer(tracer trace.Tracer) *ServerBuilder {
	b.deps.Tracer = tracer
	return b
}

// WithTools adds tool definitions to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds one tool per scaffolding generator.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, createTools()...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultResources adds the config template, version and naming
// conventions resources. They are created in Build so they can describe the
// final set of tools and prompts.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	b.defaultResources = true
	return b
}

// WithPrompts adds predefined prompts to the server for guided workflows.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithDefaultPrompts adds the scaffold-aggregate and domain-service prompts.
func (b *ServerBuilder) WithDefaultPrompts() *ServerBuilder {
	b.defaultPrompts = true
	return b
}

// WithInstructions sets the instructions sent to clients during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultInstructions renders the embedded instructions template for the
// configured tools during Build.
func (b *ServerBuilder) WithDefaultInstructions() *ServerBuilder {
	b.defaultInstructions = true
	return b
}

// dependencies resolves defaults and returns the final dependency set.
func (b *ServerBuilder) dependencies() (ServerDependencies, error) {
	deps := b.deps

	if deps.Embed == nil {
		deps.Embed = templates.MagicEmbed
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewMCPLogger(io.Discard, true)
	}
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer(tracerName)
	}
	if deps.Config == nil {
		deps.Config = &Config{Settings: generator.DefaultSettings()}
	}

	if b.defaultPrompts {
		deps.Prompts = append(createPrompts(deps.Embed), deps.Prompts...)
	}
	if b.defaultResources {
		deps.Resources = append(createResources(&deps), deps.Resources...)
	}
	if b.defaultInstructions {
		instructions, err := loadInstructions(deps.Embed, deps.Tools, deps.Config.Settings)
		if err != nil {
			return ServerDependencies{}, err
		}
		deps.Instructions = instructions
	}

	return deps, nil
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if the instructions cannot be rendered or a tool is incomplete
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	deps, err := b.dependencies()
	if err != nil {
		return nil, err
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(deps.Instructions))
	}

	s := server.NewMCPServer(ServerName, deps.Version, opts...)

	for _, tool := range deps.Tools {
		if tool.Generator == nil {
			return nil, fmt.Errorf("tool %q has no generator", tool.Tool.Name)
		}
		s.AddTool(tool.Tool, newGeneratorHandler(tool, deps.Config, deps.Logger, deps.Tracer))
	}

	for _, resource := range deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	for _, prompt := range deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	return s, nil
}
