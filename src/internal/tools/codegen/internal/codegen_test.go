// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

func TestLoadTools(t *testing.T) {
	tools, err := LoadTools(generator.All())
	require.NoError(t, err)
	require.Len(t, tools, len(generator.All()))

	for _, tool := range tools {
		require.NotEmpty(t, tool.Params, tool.Name)
		assert.True(t, tool.Params[0].Required, "required parameters come first in %s", tool.Name)
	}

	entity := tools[0]
	assert.Equal(t, "generateEntity", entity.Name)

	var layer *ToolParam
	for i := range entity.Params {
		if entity.Params[i].Name == "layer" {
			layer = &entity.Params[i]
		}
	}
	require.NotNil(t, layer)
	assert.Equal(t, "`domain` \\| `application`", layer.Type)
	assert.Equal(t, "domain", layer.Default)
	assert.False(t, layer.Required)
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		prop schemaProperty
		want string
	}{
		{"plain", schemaProperty{Type: "string"}, "string"},
		{"array", schemaProperty{Type: "array", Items: &schemaProperty{Type: "object"}}, "array of object"},
		{"untyped array", schemaProperty{Type: "array", Items: &schemaProperty{}}, "array"},
		{"enum", schemaProperty{Type: "string", Enum: []string{"a", "b"}}, "`a` \\| `b`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeName(tt.prop))
		})
	}
}

func TestValidateTools(t *testing.T) {
	tests := []struct {
		name    string
		tools   []ToolDefinition
		wantErr string
	}{
		{
			name:  "valid",
			tools: []ToolDefinition{{Name: "a", Params: []ToolParam{{Name: "x", Type: "string", Description: "x"}}}},
		},
		{
			name:    "missing name",
			tools:   []ToolDefinition{{}},
			wantErr: "Name is required",
		},
		{
			name:    "duplicate",
			tools:   []ToolDefinition{{Name: "a"}, {Name: "a"}},
			wantErr: "duplicate name",
		},
		{
			name:    "untyped param",
			tools:   []ToolDefinition{{Name: "a", Params: []ToolParam{{Name: "x", Description: "x"}}}},
			wantErr: "Type is required",
		},
		{
			name:    "undocumented param",
			tools:   []ToolDefinition{{Name: "a", Params: []ToolParam{{Name: "x", Type: "string"}}}},
			wantErr: "Description is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTools(tt.tools)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRenderReference(t *testing.T) {
	out, err := RenderReference([]ToolDefinition{{
		Name:        "generateThing",
		Title:       "Generate a thing",
		Description: "Makes things.",
		Params: []ToolParam{
			{Name: "thingName", Type: "string", Description: "the name | of it", Required: true},
			{Name: "layer", Type: "string", Description: "the layer", Default: "domain"},
		},
	}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Tool Reference\n"))
	assert.Contains(t, out, "## generateThing\n\nGenerate a thing. Makes things.\n")
	assert.Contains(t, out, "| `thingName` | string | yes |  | the name \\| of it |")
	assert.Contains(t, out, "| `layer` | string | no | `domain` | the layer |")
}

func TestGetOutputPath(t *testing.T) {
	out := getOutputPath("TOOLS.md")
	root := filepath.Dir(filepath.Dir(out))

	assert.Equal(t, "docs", filepath.Base(filepath.Dir(out)))
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestReferenceIsCurrent(t *testing.T) {
	tools, err := LoadTools(generator.All())
	require.NoError(t, err)
	want, err := RenderReference(tools)
	require.NoError(t, err)

	got, err := os.ReadFile(getOutputPath("TOOLS.md"))
	require.NoError(t, err, "run go generate ./src/internal/scaffold/generator")
	assert.Equal(t, want, string(got), "docs/TOOLS.md is stale, run go generate ./src/internal/scaffold/generator")
}
