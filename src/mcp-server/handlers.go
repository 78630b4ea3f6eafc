// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"text/template"

	"github.com/mattes3/mcp4ddd/src/internal/helper/gc"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools        []toolInfo
	ParentFolder string
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}

// describeTools extracts the name, title and description of each tool.
func describeTools(tools []ToolDefinition) []toolInfo {
	infos := make([]toolInfo, 0, len(tools))
	for _, tool := range tools {
		infos = append(infos, toolInfo{
			Name:        tool.Tool.Name,
			Title:       tool.Tool.Annotations.Title,
			Description: tool.Tool.Description,
		})
	}
	return infos
}

// loadInstructions renders instructions.md for the given tools.
//
// Parameters:
//   - embed: Filesystem holding instructions.md
//   - tools: Tool definitions listed in the instructions
//   - settings: Settings whose parent folder is shown in the path layout
//
// Returns:
//   - string: The rendered instruction text
//   - error: If the embedded file cannot be read or template execution fails
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinition, settings generator.Settings) (string, error) {
	templateBytes, err := embed.ReadFile("instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	data := instructionData{
		Tools:        describeTools(tools),
		ParentFolder: settings.WithDefaults().BoundedContextsParentFolder,
	}

	out, err := gc.Capture(gc.Default, func(w gc.Buffer) error {
		return tmpl.Execute(w, data)
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return out, nil
}
