// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

// connect starts an in-process client for s and initializes the session.
func connect(t *testing.T, s *server.MCPServer) (*client.Client, *mcp.InitializeResult) {
	t.Helper()
	c, err := client.NewInProcessClient(s)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	var req mcp.InitializeRequest
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{Name: "test-client", Version: "1.0.0"}
	init, err := c.Initialize(ctx, req)
	require.NoError(t, err)
	return c, init
}

// resourceText returns the text of the single content of a resource read.
func resourceText(t *testing.T, result *mcp.ReadResourceResult) (string, string) {
	t.Helper()
	require.Len(t, result.Contents, 1)
	switch c := result.Contents[0].(type) {
	case mcp.TextResourceContents:
		return c.Text, c.MIMEType
	case *mcp.TextResourceContents:
		return c.Text, c.MIMEType
	}
	t.Fatalf("unexpected resource contents %T", result.Contents[0])
	return "", ""
}

func buildDefaultServer(t *testing.T, config *Config) *server.MCPServer {
	t.Helper()
	s, err := NewServerBuilder().
		WithConfig(config).
		WithVersion("1.2.3").
		WithDefaultTools().
		WithDefaultResources().
		WithDefaultPrompts().
		WithDefaultInstructions().
		Build()
	require.NoError(t, err)
	return s
}

func TestServerBuilder_Build(t *testing.T) {
	pinSettingsEnv(t)
	config := &Config{Settings: generator.Settings{BoundedContextsParentFolder: "libs"}.WithDefaults()}
	c, init := connect(t, buildDefaultServer(t, config))
	ctx := context.Background()

	assert.Equal(t, ServerName, init.ServerInfo.Name)
	assert.Equal(t, "1.2.3", init.ServerInfo.Version)
	assert.Contains(t, init.Instructions, "never writes to")
	assert.Contains(t, init.Instructions, "`libs/<boundedContext>/<layer>/...`")
	for _, g := range generator.All() {
		assert.Contains(t, init.Instructions, "**"+g.Name()+"**")
	}

	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	assert.Len(t, tools.Tools, len(generator.All()))

	resources, err := c.ListResources(ctx, mcp.ListResourcesRequest{})
	require.NoError(t, err)
	assert.Len(t, resources.Resources, 3)

	prompts, err := c.ListPrompts(ctx, mcp.ListPromptsRequest{})
	require.NoError(t, err)
	assert.Len(t, prompts.Prompts, 2)
}

func TestServerBuilder_Defaults(t *testing.T) {
	s, err := NewServerBuilder().Build()
	require.NoError(t, err)

	c, init := connect(t, s)
	assert.Empty(t, init.Instructions)

	tools, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)
	assert.Empty(t, tools.Tools)
}

func TestServerBuilder_ToolWithoutGenerator(t *testing.T) {
	_, err := NewServerBuilder().
		WithTools(ToolDefinition{Tool: mcp.NewTool("orphan")}).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tool "orphan" has no generator`)
}

func TestServerBuilder_CustomInstructions(t *testing.T) {
	s, err := NewServerBuilder().WithInstructions("be brief").Build()
	require.NoError(t, err)

	_, init := connect(t, s)
	assert.Equal(t, "be brief", init.Instructions)
}

func TestResourceHandlers(t *testing.T) {
	pinSettingsEnv(t)
	t.Setenv("BASIC_TYPES_FROM", "@acme/types")
	c, _ := connect(t, buildDefaultServer(t, nil))

	tests := []struct {
		name     string
		uri      string
		mimeType string
		contains []string
	}{
		{
			name:     "config template",
			uri:      configTemplateURI,
			mimeType: "application/json",
			contains: []string{`"basicTypesFrom": "@acme/types"`, `"BOUNDED_CONTEXTS_PARENT_FOLDER"`, ConfigFileEnv},
		},
		{
			name:     "version",
			uri:      versionURI,
			mimeType: "application/json",
			contains: []string{`"version": "1.2.3"`, `"generateModule"`, `"scaffold-aggregate"`, `"docs://naming-conventions"`},
		},
		{
			name:     "naming conventions",
			uri:      namingConventionsURI,
			mimeType: "text/markdown",
			contains: []string{"Repository"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req mcp.ReadResourceRequest
			req.Params.URI = tt.uri
			result, err := c.ReadResource(context.Background(), req)
			require.NoError(t, err)

			text, mimeType := resourceText(t, result)
			assert.Equal(t, tt.mimeType, mimeType)
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			if mimeType == "application/json" {
				assert.True(t, json.Valid([]byte(text)))
			}
		})
	}

	var req mcp.ReadResourceRequest
	req.Params.URI = "nonexistent://resource"
	_, err := c.ReadResource(context.Background(), req)
	assert.Error(t, err)
}

func TestLoadInstructions(t *testing.T) {
	tools := createTools()[:2]

	tests := []struct {
		name    string
		fs      fstest.MapFS
		want    string
		wantErr string
	}{
		{
			name: "renders tools and parent folder",
			fs: fstest.MapFS{"instructions.md": {Data: []byte(
				"{{range .Tools}}{{.Name}};{{end}}{{.ParentFolder}}",
			)}},
			want: "generateEntity;generateValueObject;packages/domainlogic",
		},
		{
			name:    "missing template",
			fs:      fstest.MapFS{},
			wantErr: "failed to load MCP server instructions template",
		},
		{
			name:    "broken template",
			fs:      fstest.MapFS{"instructions.md": {Data: []byte("{{range}")}},
			wantErr: "failed to parse instructions template",
		},
		{
			name:    "unknown field",
			fs:      fstest.MapFS{"instructions.md": {Data: []byte("{{.Nope}}")}},
			wantErr: "failed to execute instructions template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadInstructions(tt.fs, tools, generator.Settings{})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
