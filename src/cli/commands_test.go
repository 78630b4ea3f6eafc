// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattes3/mcp4ddd/src/cli"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

func defaultSettings() (generator.Settings, error) { return generator.DefaultSettings(), nil }

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewGenerateCommand(generator.All(), defaultSettings)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	cmd := cli.NewListCommand(generator.All())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	for _, g := range generator.All() {
		assert.Contains(t, out.String(), g.Name())
	}
}

func TestGenerate(t *testing.T) {
	jsonInput := writeInput(t, "order.json", `{"entityName":"Order","boundedContext":"sales"}`)
	yamlInput := writeInput(t, "order.yaml", "entityName: Order\nboundedContext: sales\nattributes:\n  - name: total\n    type: number\n")

	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  string
	}{
		{
			name:     "JSON input",
			args:     []string{"generateEntity", "--input", jsonInput},
			contains: []string{"packages/domainlogic/sales/domain/src/domainmodel/Order.ts", "// ===== ", "export type Order"},
		},
		{
			name:     "YAML input",
			args:     []string{"generateEntity", "-i", yamlInput},
			contains: []string{"total: number"},
		},
		{
			name:    "unknown tool",
			args:    []string{"generateNothing", "--input", jsonInput},
			wantErr: "unknown tool",
		},
		{
			name:    "missing input",
			args:    []string{"generateEntity"},
			wantErr: cli.ErrInputFileRequired.Error(),
		},
		{
			name:    "invalid arguments",
			args:    []string{"generateEntity", "--input", writeInput(t, "bad.json", `{"entityName":"Order"}`)},
			wantErr: "Invalid parameters: ",
		},
		{
			name:    "missing file",
			args:    []string{"generateEntity", "--input", filepath.Join(t.TempDir(), "none.json")},
			wantErr: "failed to read input file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestGenerateJSON(t *testing.T) {
	input := writeInput(t, "vo.json", `{"valueObjectName":"Money","boundedContext":"billing","attributes":[{"name":"amount","type":"number"}]}`)

	out, err := run(t, "generateValueObject", "--input", input, "--json")
	require.NoError(t, err)

	var result generator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Files, 2)
	assert.True(t, strings.HasSuffix(result.Files[0].Path, "Money.ts"))
	assert.NotEmpty(t, result.ContentSummary)
}

func TestRenderFiles(t *testing.T) {
	empty, err := cli.RenderFiles(generator.Result{})
	require.NoError(t, err)
	assert.Equal(t, "No files generated", empty)

	table, err := cli.RenderFiles(generator.Result{Files: []generator.File{
		{Path: "a/One.ts", Content: "x\ny\n"},
		{Path: "a/Two.ts", Content: "z"},
	}})
	require.NoError(t, err)
	assert.Contains(t, table, "a/One.ts")
	assert.Contains(t, table, "a/Two.ts")
	// Markdown headers are upper-cased by the renderer.
	assert.Contains(t, table, "PATH")
	assert.Contains(t, table, "LINES")
}

func TestManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest cli.ManifestFunc
		want     string
		wantErr  string
	}{
		{
			name:     "prints document",
			manifest: func() ([]byte, error) { return []byte(`{"id":"ddd-scaffolder"}`), nil },
			want:     "{\"id\":\"ddd-scaffolder\"}\n",
		},
		{
			name:     "propagates error",
			manifest: func() ([]byte, error) { return nil, assert.AnError },
			wantErr:  assert.AnError.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := cli.NewManifestCommand(tt.manifest)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(nil)

			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
