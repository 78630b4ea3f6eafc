// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattes3/mcp4ddd/src/internal/helper/posix"
)

func TestParseTemplateResult(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantLong     string
		wantExamples string
		wantErr      bool
	}{
		{
			name:         "long and examples",
			input:        "Intro text.\n\n## Examples\n\n  tool list\n",
			wantLong:     "Intro text.",
			wantExamples: "tool list",
		},
		{
			name:         "marker on first line",
			input:        "## Examples\n  tool",
			wantExamples: "tool",
		},
		{
			name:     "marker on last line",
			input:    "Intro\n## Examples",
			wantLong: "Intro",
		},
		{
			name:    "missing marker",
			input:   "Intro only",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long, examples, err := parseTemplateResult(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLong, long)
			assert.Equal(t, tt.wantExamples, examples)
		})
	}
}

func TestBuildRootCommand(t *testing.T) {
	pinSettingsEnv(t)
	cf := NewCLIFramework("", ServerDependencies{Version: "9.9.9"})

	root, err := cf.BuildRootCommand()
	require.NoError(t, err)

	exeName := posix.GetExecutableName()
	assert.Equal(t, exeName, root.Use)
	assert.Equal(t, "9.9.9", root.Version)
	assert.Contains(t, root.Long, exeName+" scaffolds TypeScript domain-driven design components.")
	assert.Contains(t, root.Long, "--config or MCP_DDD_SCAFFOLDER_CONFIG_FILE")
	assert.Contains(t, root.Example, exeName+" --instructions")
	assert.NotContains(t, root.Long, "## Examples")

	names := make([]string, 0)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "manifest")
}

func TestBuildRootCommand_BrokenHelpTemplate(t *testing.T) {
	cf := NewCLIFramework("", ServerDependencies{
		Embed: fstest.MapFS{"cli_help.md": {Data: []byte("no examples here")}},
	})
	_, err := cf.BuildRootCommand()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing '## Examples' section")
}

func TestRootCommand_Subcommands(t *testing.T) {
	pinSettingsEnv(t)
	configFile := writeFile(t, "config.yaml", "settings:\n  boundedContextsParentFolder: libs\n")
	input := writeFile(t, "order.json", `{"entityName":"Order","boundedContext":"orders"}`)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "instructions",
			args:     []string{"--instructions"},
			contains: []string{"never writes to", "**generateEntity**", "packages/domainlogic/<boundedContext>"},
		},
		{
			name:     "instructions with config",
			args:     []string{"--config", configFile, "--instructions"},
			contains: []string{"libs/<boundedContext>"},
		},
		{
			name:     "list",
			args:     []string{"list"},
			contains: []string{"generateEntity", "generatePostgreSQLRepository"},
		},
		{
			name:     "generate uses config file",
			args:     []string{"--config", configFile, "generate", "generateEntity", "--input", input},
			contains: []string{"libs/orders/domain/src/domainmodel/Order.ts"},
		},
		{
			name:     "manifest",
			args:     []string{"manifest"},
			contains: []string{`"id": "ddd-scaffolder"`, `"version": "test"`, "Parent folder for bounded contexts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf := NewCLIFramework("", ServerDependencies{Version: "test"})
			root, err := cf.BuildRootCommand()
			require.NoError(t, err)

			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&out)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestExtractFlagNames(t *testing.T) {
	cf := NewCLIFramework("", ServerDependencies{})
	root, err := cf.BuildRootCommand()
	require.NoError(t, err)

	instructions, config, help := extractFlagNames(root)
	assert.Equal(t, "--instructions", instructions)
	assert.Equal(t, "--config", config)
	assert.Equal(t, "--help", help)
}
