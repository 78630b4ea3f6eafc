// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

var (
	// ErrUnknownTool is returned when generate is called with a tool name no
	// generator answers to.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInputFileRequired is returned when generate is called without --input.
	ErrInputFileRequired = errors.New("input file is required")
)

// SettingsFunc resolves the generator settings when a command runs.
type SettingsFunc func() (generator.Settings, error)

// NewListCommand creates the list command, which prints the available tools.
func NewListCommand(gens []generator.Generator) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scaffolding tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := RenderTools(gens)
			if err != nil {
				return fmt.Errorf("failed to render tools: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table)
			return err
		},
	}
}

// NewGenerateCommand creates the generate command, which runs one generator
// locally against an input file and prints the result.
//
// Parameters:
//   - gens: Generators selectable by name
//   - settings: Called once per run to resolve import sources and the parent folder
//
// Flags:
//   - --input, -i: JSON or YAML file holding the tool arguments ("-" reads stdin)
//   - --json: Print the full result as indented JSON instead of the table and file contents
func NewGenerateCommand(gens []generator.Generator, settings SettingsFunc) *cobra.Command {
	var (
		inputFile  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "generate <tool>",
		Short: "Run a scaffolding tool locally and print the generated files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := findGenerator(gens, args[0])
			if err != nil {
				return err
			}
			if inputFile == "" {
				return ErrInputFileRequired
			}

			input, err := readInput(inputFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, err := settings()
			if err != nil {
				return fmt.Errorf("failed to resolve settings: %w", err)
			}

			result, err := g.Generate(cmd.Context(), s, input)
			if err != nil {
				return errors.New(generator.FailureMessage(g.Name(), err))
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON or YAML file with the tool arguments (- for stdin)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full result as JSON")

	return cmd
}

// findGenerator returns the generator with the given name.
func findGenerator(gens []generator.Generator, name string) (generator.Generator, error) {
	names := make([]string, 0, len(gens))
	for _, g := range gens {
		if g.Name() == name {
			return g, nil
		}
		names = append(names, g.Name())
	}
	return nil, fmt.Errorf("%w %q, available: %s", ErrUnknownTool, name, strings.Join(names, ", "))
}

// readInput loads tool arguments from path. YAML input is normalized through
// JSON so numbers and nested objects look the same as arguments received over
// MCP.
func readInput(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML input: %w", err)
		}
		if data, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert YAML input: %w", err)
		}
	}

	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if input == nil {
		return nil, fmt.Errorf("input must be an object")
	}
	return input, nil
}

// writeJSON prints result as indented JSON.
func writeJSON(w io.Writer, result generator.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// writeResult prints the summary, the table of paths and every file.
func writeResult(w io.Writer, result generator.Result) error {
	table, err := RenderFiles(result)
	if err != nil {
		return fmt.Errorf("failed to render files: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n\n%s", result.ContentSummary, table); err != nil {
		return err
	}
	for _, f := range result.Files {
		if _, err := fmt.Fprintf(w, "\n// ===== %s =====\n%s", f.Path, f.Content); err != nil {
			return err
		}
	}
	return nil
}

// ManifestFunc produces the plugin manifest document.
type ManifestFunc func() ([]byte, error)

// NewManifestCommand creates the manifest command, which prints the manifest
// an agent host reads before loading the scaffolder as a plugin.
func NewManifestCommand(manifest ManifestFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the agent plugin manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := manifest()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
