// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	configTemplateURI    = "config://template"
	versionURI           = "info://version"
	namingConventionsURI = "docs://naming-conventions"
)

// createResources creates the default resources.
//
// Resources:
//   - config://template: the effective settings in the config file shape
//   - info://version: server name, version and capabilities
//   - docs://naming-conventions: how generators derive names
//
// The handlers read deps when they are called, so the version resource lists
// exactly what the built server offers.
func createResources(deps *ServerDependencies) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(configTemplateURI, "Configuration Template",
				mcp.WithResourceDescription("Effective generator settings in the configuration file format, with the environment variables that override them"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource(deps),
		},
		{
			Resource: mcp.NewResource(versionURI, "Version Information",
				mcp.WithResourceDescription("Server version and the tools, resources and prompts it offers"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource(deps),
		},
		{
			Resource: mcp.NewResource(namingConventionsURI, "Naming Conventions",
				mcp.WithResourceDescription("How the generators derive type, function, file and table names"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleNamingConventionsResource(deps),
		},
	}
}
