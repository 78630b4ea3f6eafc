// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	attrTool           = attribute.Key("mcp.tool.name")
	attrBoundedContext = attribute.Key("ddd.bounded_context")
	attrLayer          = attribute.Key("ddd.layer")
	attrFiles          = attribute.Key("ddd.files")
)

// newGeneratorHandler adapts a generator to an MCP tool handler.
//
// Parameters:
//   - def: The tool definition whose generator runs on each call
//   - config: Server configuration; settings are resolved per call so
//     environment overrides apply without a restart
//   - log: Destination for invocation logs
//   - tracer: Tracer for the per-call span
//
// Returns:
//   - A handler that never returns a Go error for generator failures. Invalid
//     input and rendering failures come back as tool errors with the messages
//     produced by [generator.FailureMessage], so the client sees them.
//
// A successful call returns the [generator.Result] as structured content and
// its JSON encoding as text content.
func newGeneratorHandler(def ToolDefinition, config *Config, log logger.Logger, tracer trace.Tracer) ToolHandler {
	name := def.Generator.Name()

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		ctx, span := tracer.Start(ctx, name, trace.WithAttributes(spanAttributes(name, args)...))
		defer span.End()

		fail := func(err error) (*mcp.CallToolResult, error) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.Errorf("%s: %v", name, err)
			return mcp.NewToolResultError(generator.FailureMessage(name, err)), nil
		}

		settings, err := config.EffectiveSettings()
		if err != nil {
			return fail(err)
		}

		result, err := def.Generator.Generate(ctx, settings, args)
		if err != nil {
			return fail(err)
		}

		text, err := result.JSON()
		if err != nil {
			return fail(err)
		}

		span.SetAttributes(attrFiles.Int(len(result.Files)))
		log.Printf("%s prepared %d files", name, len(result.Files))

		return mcp.NewToolResultStructured(result, text), nil
	}
}

// spanAttributes picks the span attributes that are known before generating.
func spanAttributes(name string, args map[string]any) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attrTool.String(name)}

	for _, key := range []string{"boundedContext", "moduleName"} {
		if bc, ok := args[key].(string); ok && bc != "" {
			attrs = append(attrs, attrBoundedContext.String(bc))
			break
		}
	}
	if layer, ok := args["layer"].(string); ok && layer != "" {
		attrs = append(attrs, attrLayer.String(layer))
	}

	return attrs
}
