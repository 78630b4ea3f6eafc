// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// settingsEnv lists the environment variables that override settings.
var settingsEnv = map[string]string{
	"basicTypesFrom":              "BASIC_TYPES_FROM",
	"basicErrorTypesFrom":         "BASIC_ERROR_TYPES_FROM",
	"boundedContextsParentFolder": "BOUNDED_CONTEXTS_PARENT_FOLDER",
	"dynamoDBConfigurationFrom":   "DYNAMODB_CONFIG_FROM",
}

// jsonResource marshals v as the single JSON content of uri.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleConfigResource serves the settings currently in effect, shaped like
// a configuration file, together with the overriding environment variables.
func handleConfigResource(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		settings, err := deps.Config.EffectiveSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve settings: %w", err)
		}

		return jsonResource(configTemplateURI, map[string]any{
			"settings":             settings,
			"log":                  map[string]any{"silent": false},
			"environmentOverrides": settingsEnv,
			"configFileVariable":   ConfigFileEnv,
		})
	}
}

// handleVersionResource serves server metadata and capabilities.
func handleVersionResource(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		resources := make([]map[string]string, 0, len(deps.Resources))
		for _, r := range deps.Resources {
			resources = append(resources, map[string]string{
				"uri":         r.Resource.URI,
				"name":        r.Resource.Name,
				"description": r.Resource.Description,
			})
		}

		prompts := make([]map[string]string, 0, len(deps.Prompts))
		for _, p := range deps.Prompts {
			prompts = append(prompts, map[string]string{
				"name":        p.Prompt.Name,
				"description": p.Prompt.Description,
			})
		}

		return jsonResource(versionURI, map[string]any{
			"name":    ServerName,
			"version": deps.Version,
			"type":    "MCP Server",
			"capabilities": map[string]any{
				"tools":     describeTools(deps.Tools),
				"resources": resources,
				"prompts":   prompts,
			},
		})
	}
}

// handleNamingConventionsResource serves the embedded naming-conventions.md.
func handleNamingConventionsResource(deps *ServerDependencies) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := deps.Embed.ReadFile("naming-conventions.md")
		if err != nil {
			return nil, fmt.Errorf("failed to read naming conventions: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      namingConventionsURI,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}
