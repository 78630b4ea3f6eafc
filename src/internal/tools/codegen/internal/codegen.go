// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"text/template"

	"github.com/mattes3/mcp4ddd/src/internal/helper/gc"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

//go:embed templates/reference.md.tmpl
var referenceTemplate string

// ToolDefinition describes one tool in the reference.
type ToolDefinition struct {
	Name        string
	Title       string
	Description string
	Params      []ToolParam
}

// ToolParam describes one top-level tool argument.
type ToolParam struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     string
}

// schemaProperty is the subset of a JSON Schema property the reference shows.
type schemaProperty struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Default     any             `json:"default"`
	Enum        []string        `json:"enum"`
	Items       *schemaProperty `json:"items"`
}

// inputSchema is the subset of a tool input schema the reference shows.
type inputSchema struct {
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

// getCodegenDir returns the absolute path to the codegen directory
func getCodegenDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(currentFile)) // Go up from internal/ to codegen/
}

// getOutputPath returns the path to an output file under docs/ at the
// module root.
func getOutputPath(outputName string) string {
	return filepath.Join(getCodegenDir(), "..", "..", "..", "..", "docs", outputName)
}

// typeName renders the type of p, e.g. "string", "array of object" or
// "`domain` \| `application`" for enums.
func typeName(p schemaProperty) string {
	if len(p.Enum) > 0 {
		quoted := make([]string, len(p.Enum))
		for i, e := range p.Enum {
			quoted[i] = "`" + e + "`"
		}
		return strings.Join(quoted, ` \| `)
	}
	if p.Type == "array" && p.Items != nil && p.Items.Type != "" {
		return "array of " + p.Items.Type
	}
	return p.Type
}

// LoadTools converts the input schema of each generator into a tool definition.
// Parameters are listed with required ones first, then by name.
func LoadTools(gens []generator.Generator) ([]ToolDefinition, error) {
	tools := make([]ToolDefinition, 0, len(gens))
	for _, g := range gens {
		var s inputSchema
		if err := json.Unmarshal(g.InputSchema(), &s); err != nil {
			return nil, fmt.Errorf("parsing input schema of %s: %w", g.Name(), err)
		}

		params := make([]ToolParam, 0, len(s.Properties))
		for name, prop := range s.Properties {
			param := ToolParam{
				Name:        name,
				Type:        typeName(prop),
				Description: prop.Description,
				Required:    slices.Contains(s.Required, name),
			}
			if prop.Default != nil {
				param.Default = fmt.Sprint(prop.Default)
			}
			params = append(params, param)
		}
		slices.SortFunc(params, func(a, b ToolParam) int {
			if a.Required != b.Required {
				if a.Required {
					return -1
				}
				return 1
			}
			return strings.Compare(a.Name, b.Name)
		})

		tools = append(tools, ToolDefinition{
			Name:        g.Name(),
			Title:       g.Title(),
			Description: g.Description(),
			Params:      params,
		})
	}

	if err := validateTools(tools); err != nil {
		return nil, fmt.Errorf("validating tools: %w", err)
	}
	return tools, nil
}

// validateTools validates tool definitions
func validateTools(tools []ToolDefinition) error {
	toolNames := make(map[string]bool)
	for i, tool := range tools {
		if tool.Name == "" {
			return fmt.Errorf("tool %d: Name is required", i)
		}
		if toolNames[tool.Name] {
			return fmt.Errorf("tool %d: duplicate name '%s'", i, tool.Name)
		}
		toolNames[tool.Name] = true

		if err := validateToolParams(tool.Params, tool.Name); err != nil {
			return err
		}
	}
	return nil
}

// validateToolParams validates tool parameters
func validateToolParams(params []ToolParam, tool string) error {
	for j, param := range params {
		if param.Type == "" {
			return fmt.Errorf("tool %s param %d (%s): Type is required", tool, j, param.Name)
		}
		if param.Description == "" {
			return fmt.Errorf("tool %s param %d (%s): Description is required", tool, j, param.Name)
		}
	}
	return nil
}

// RenderReference renders the markdown tool reference.
func RenderReference(tools []ToolDefinition) (string, error) {
	tmpl, err := template.New("reference").Funcs(template.FuncMap{
		"cell": func(s string) string {
			return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
		},
	}).Parse(referenceTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing reference template: %w", err)
	}

	return gc.Capture(gc.Default, func(w gc.Buffer) error {
		return tmpl.Execute(w, tools)
	})
}

// GenerateReference writes docs/TOOLS.md for all generators.
func GenerateReference() error {
	tools, err := LoadTools(generator.All())
	if err != nil {
		return fmt.Errorf("loading tools: %w", err)
	}

	content, err := RenderReference(tools)
	if err != nil {
		return err
	}

	return writeGeneratedFile(getOutputPath("TOOLS.md"), []byte(content))
}

func writeGeneratedFile(filename string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
