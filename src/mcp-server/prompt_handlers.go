// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mattes3/mcp4ddd/src/internal/helper/gc"
	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
)

// promptTemplateData holds the data used to populate prompt templates.
type promptTemplateData struct {
	AggregateName   string
	ServiceName     string
	BoundedContext  string
	Persistence     string
	PersistenceTool string
}

// persistenceTools maps a persistence technology to its repository generator.
var persistenceTools = map[string]struct{ Label, Tool string }{
	"dynamodb":   {"DynamoDB", "generateDynamoDBRepository"},
	"postgresql": {"PostgreSQL", "generatePostgreSQLRepository"},
}

// parsePromptTemplate parses a prompt template file and converts it to MCP messages.
//
// The rendered markdown is split on "### User:" and "### Assistant:" markers.
// Other headings and blank lines are dropped.
//
// Parameters:
//   - embed: Filesystem holding the template
//   - templateName: Name of the template file (without .md extension)
//   - data: Template data to populate placeholders
//
// Returns:
//   - []mcp.PromptMessage: Parsed MCP messages
//   - error: Any error during template execution or parsing
func parsePromptTemplate(embed templates.EmbedFS, templateName string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	templateContent, err := embed.ReadFile(templateName + ".md")
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	content, err := gc.Capture(gc.Default, func(w gc.Buffer) error {
		return tmpl.Execute(w, data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	var (
		messages       []mcp.PromptMessage
		currentRole    mcp.Role
		currentContent strings.Builder
	)

	flush := func() {
		if currentContent.Len() > 0 {
			messages = append(messages, mcp.NewPromptMessage(
				currentRole,
				mcp.NewTextContent(strings.TrimSpace(currentContent.String())),
			))
			currentContent.Reset()
		}
	}

	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "### Assistant:"):
			flush()
			currentRole = mcp.RoleAssistant
			continue
		case strings.HasPrefix(line, "### User:"):
			flush()
			currentRole = mcp.RoleUser
			continue
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		}

		if currentRole != "" {
			if currentContent.Len() > 0 {
				currentContent.WriteString("\n")
			}
			currentContent.WriteString(line)
		}
	}
	flush()

	return messages, nil
}

// requiredArgument returns the named prompt argument or an error when it is blank.
func requiredArgument(request mcp.GetPromptRequest, name string) (string, error) {
	value := strings.TrimSpace(request.Params.Arguments[name])
	if value == "" {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	return value, nil
}

// handleScaffoldAggregatePrompt returns the handler for the scaffold-aggregate prompt.
//
// The workflow walks through value objects, the aggregate root entity, the
// repository interface and the persistence adapter for the chosen technology.
//
// Expected arguments in request.Params.Arguments:
//   - aggregateName: Name of the aggregate root
//   - boundedContext: Owning bounded context
//   - persistence: 'dynamodb' (default) or 'postgresql'
func handleScaffoldAggregatePrompt(embed templates.EmbedFS) PromptHandler {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		aggregate, err := requiredArgument(request, "aggregateName")
		if err != nil {
			return nil, err
		}
		boundedContext, err := requiredArgument(request, "boundedContext")
		if err != nil {
			return nil, err
		}

		persistence := strings.ToLower(strings.TrimSpace(request.Params.Arguments["persistence"]))
		if persistence == "" {
			persistence = "dynamodb"
		}
		target, ok := persistenceTools[persistence]
		if !ok {
			return nil, fmt.Errorf("unsupported persistence %q: use 'dynamodb' or 'postgresql'", persistence)
		}

		messages, err := parsePromptTemplate(embed, "scaffold-aggregate-prompt", promptTemplateData{
			AggregateName:   aggregate,
			BoundedContext:  boundedContext,
			Persistence:     target.Label,
			PersistenceTool: target.Tool,
		})
		if err != nil {
			return nil, err
		}

		return mcp.NewGetPromptResult(
			fmt.Sprintf("Scaffold the %s aggregate", aggregate),
			messages,
		), nil
	}
}

// handleDomainServicePrompt returns the handler for the domain-service prompt.
//
// Expected arguments in request.Params.Arguments:
//   - serviceName: Name of the domain service
//   - boundedContext: Owning bounded context
func handleDomainServicePrompt(embed templates.EmbedFS) PromptHandler {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		service, err := requiredArgument(request, "serviceName")
		if err != nil {
			return nil, err
		}
		boundedContext, err := requiredArgument(request, "boundedContext")
		if err != nil {
			return nil, err
		}

		messages, err := parsePromptTemplate(embed, "domain-service-prompt", promptTemplateData{
			ServiceName:    service,
			BoundedContext: boundedContext,
		})
		if err != nil {
			return nil, err
		}

		return mcp.NewGetPromptResult(
			fmt.Sprintf("Design the %s domain service", service),
			messages,
		), nil
	}
}
