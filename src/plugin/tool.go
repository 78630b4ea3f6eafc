// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

// Content is one content block of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Payload is the envelope every successful tool call answers with.
type Payload struct {
	Success bool        `json:"success"`
	Data    PayloadData `json:"data"`
	Message string      `json:"message"`
}

// PayloadData carries the generated files.
type PayloadData struct {
	Files []generator.File `json:"files"`
}

// ToolResult is what [AgentTool.Execute] returns to the host: the payload as
// pretty-printed JSON text plus the payload itself as details.
type ToolResult struct {
	Content []Content `json:"content"`
	Details Payload   `json:"details"`
}

// AgentTool wraps one generator for a host agent runtime.
type AgentTool struct {
	// Name is the tool name ("generateEntity").
	Name string
	// Label is the human-readable title.
	Label string
	// Description explains what the tool produces.
	Description string
	// Parameters is the JSON Schema of the tool arguments.
	Parameters json.RawMessage

	gen      generator.Generator
	settings generator.Settings
}

// NewAgentTool wraps g with the settings every call uses.
func NewAgentTool(g generator.Generator, settings generator.Settings) *AgentTool {
	return &AgentTool{
		Name:        g.Name(),
		Label:       g.Title(),
		Description: g.Description(),
		Parameters:  g.InputSchema(),
		gen:         g,
		settings:    settings,
	}
}

// Execute validates params, runs the generator and wraps the result.
//
// The error is "Invalid parameters: path: message, ..." for invalid params and
// "The <tool> tool failed: ..." for anything else. No partial result is
// returned with an error.
func (t *AgentTool) Execute(ctx context.Context, toolCallID string, params map[string]any) (ToolResult, error) {
	result, err := t.gen.Generate(ctx, t.settings, params)
	if err != nil {
		return ToolResult{}, errors.New(generator.FailureMessage(t.Name, err))
	}

	payload := Payload{
		Success: true,
		Data:    PayloadData{Files: result.Files},
		Message: result.ContentSummary,
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return ToolResult{}, fmt.Errorf("The %s tool failed: %w", t.Name, err)
	}

	return ToolResult{
		Content: []Content{{Type: "text", Text: string(text)}},
		Details: payload,
	}, nil
}
