// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/logger"
)

// startToolServer serves the default tools through mcptest.
func startToolServer(t *testing.T, config *Config) *mcptest.Server {
	t.Helper()

	l := logger.NewMCPLogger(io.Discard, true)
	tracer := otel.Tracer(tracerName)

	srv := mcptest.NewUnstartedServer(t)
	for _, def := range createTools() {
		srv.AddTools(server.ServerTool{
			Tool:    def.Tool,
			Handler: newGeneratorHandler(def, config, l, tracer),
		})
	}
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(srv.Close)
	return srv
}

func callTool(t *testing.T, srv *mcptest.Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := srv.Client().CallTool(context.Background(), req)
	require.NoError(t, err)
	return result
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

// contextKeys names the argument each tool takes its bounded context from.
var contextKeys = map[string]string{
	"generateEntity":               `"boundedContext"`,
	"generateValueObject":          `"boundedContext"`,
	"generateRepository":           `"boundedContext"`,
	"generateDomainService":        `"boundedContext"`,
	"generateDynamoDBRepository":   `"boundedContext"`,
	"generatePostgreSQLRepository": `"boundedContext"`,
	"generateModule":               `"moduleName"`,
}

func TestCreateTools(t *testing.T) {
	tools := createTools()
	require.Len(t, tools, len(generator.All()))
	require.Len(t, contextKeys, len(tools))

	for _, def := range tools {
		t.Run(def.Tool.Name, func(t *testing.T) {
			assert.Equal(t, def.Generator.Name(), def.Tool.Name)
			assert.NotEmpty(t, def.Tool.Description)
			assert.Equal(t, def.Generator.Title(), def.Tool.Annotations.Title)
			require.NotNil(t, def.Tool.Annotations.ReadOnlyHint)
			assert.True(t, *def.Tool.Annotations.ReadOnlyHint)
			require.NotNil(t, def.Tool.Annotations.IdempotentHint)
			assert.True(t, *def.Tool.Annotations.IdempotentHint)

			data, err := json.Marshal(def.Tool)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"outputSchema"`)
			assert.Contains(t, string(data), contextKeys[def.Tool.Name])
		})
	}
}

func TestToolHandlers(t *testing.T) {
	pinSettingsEnv(t)
	srv := startToolServer(t, nil)

	list, err := srv.Client().ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Tools, len(generator.All()))

	tests := []struct {
		name      string
		tool      string
		args      map[string]any
		wantError bool
		wantFiles int
		contains  []string
	}{
		{
			name:      "entity",
			tool:      "generateEntity",
			args:      map[string]any{"entityName": "Order", "boundedContext": "orders"},
			wantFiles: 2,
			contains:  []string{"packages/domainlogic/orders/domain/src/domainmodel/Order.ts", "Assistant alert"},
		},
		{
			name: "repository with defaults",
			tool: "generateRepository",
			args: map[string]any{"aggregateName": "Order", "boundedContext": "orders"},
			wantFiles: 2,
			contains:  []string{"add(", "get(", "update(", "remove("},
		},
		{
			name:      "missing bounded context",
			tool:      "generateEntity",
			args:      map[string]any{"entityName": "Order"},
			wantError: true,
			contains:  []string{"Invalid parameters: ", "boundedContext"},
		},
		{
			name:      "reserved timestamp attribute",
			tool:      "generateDynamoDBRepository",
			args: map[string]any{
				"aggregateName":  "Order",
				"boundedContext": "orders",
				"attributes":     []any{map[string]any{"name": "createdAt", "type": "string"}},
			},
			wantError: true,
			contains:  []string{"Invalid parameters: ", "timestamps are managed internally"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, srv, tt.tool, tt.args)
			text := textOf(t, result)

			assert.Equal(t, tt.wantError, result.IsError, text)
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			if tt.wantError {
				return
			}

			var decoded generator.Result
			require.NoError(t, json.Unmarshal([]byte(text), &decoded))
			assert.Len(t, decoded.Files, tt.wantFiles)
			assert.NotNil(t, result.StructuredContent)
		})
	}
}

func TestToolHandlers_SettingsFromConfigAndEnv(t *testing.T) {
	pinSettingsEnv(t)
	config := &Config{Settings: generator.Settings{BoundedContextsParentFolder: "libs"}}
	srv := startToolServer(t, config)

	args := map[string]any{"valueObjectName": "Money", "boundedContext": "billing"}

	text := textOf(t, callTool(t, srv, "generateValueObject", args))
	assert.Contains(t, text, `"libs/billing/domain/src/domainmodel/Money.ts"`)

	// Environment variables are read on every call.
	t.Setenv("BOUNDED_CONTEXTS_PARENT_FOLDER", "apps/core")
	text = textOf(t, callTool(t, srv, "generateValueObject", args))
	assert.Contains(t, text, `"apps/core/billing/domain/src/domainmodel/Money.ts"`)
}

func TestSpanAttributes(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{"tool only", nil, []string{"mcp.tool.name"}},
		{"bounded context and layer", map[string]any{"boundedContext": "orders", "layer": "application"}, []string{"mcp.tool.name", "ddd.bounded_context", "ddd.layer"}},
		{"module name", map[string]any{"moduleName": "orders"}, []string{"mcp.tool.name", "ddd.bounded_context"}},
		{"empty values", map[string]any{"boundedContext": "", "layer": ""}, []string{"mcp.tool.name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := spanAttributes("generateEntity", tt.args)
			keys := make([]string, len(attrs))
			for i, a := range attrs {
				keys[i] = string(a.Key)
			}
			assert.Equal(t, tt.want, keys)
			assert.Equal(t, "generateEntity", attrs[0].Value.AsString())
		})
	}
}

func TestFailureMessagesReachClient(t *testing.T) {
	pinSettingsEnv(t)
	srv := startToolServer(t, nil)

	text := textOf(t, callTool(t, srv, "generateModule", map[string]any{"moduleName": "orders"}))
	assert.True(t, strings.HasPrefix(text, "Invalid parameters: "), text)
}
