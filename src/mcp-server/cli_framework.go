// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/mattes3/mcp4ddd/src/cli"
	"github.com/mattes3/mcp4ddd/src/internal/helper/gc"
	"github.com/mattes3/mcp4ddd/src/internal/helper/posix"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
	"github.com/mattes3/mcp4ddd/src/plugin"
)

// cliHelpData holds the data used to populate the CLI help template.
//
// Fields:
//   - ExeName: The name of the executable binary for command examples
//   - InstructionsFlagName: The formatted instructions flag name (e.g., "--instructions")
//   - ConfigFlagName: The formatted config flag name (e.g., "--config")
//   - HelpFlagName: The formatted help flag name (e.g., "--help")
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Key features:
//   - Dynamic executable naming based on actual binary path (not hardcoded)
//   - [Gopls-style] --instructions flag for displaying the tool workflow
//   - Configuration file support via --config flag or MCP_DDD_SCAFFOLDER_CONFIG_FILE
//   - Default MCP server startup when no arguments are provided
//   - list and generate subcommands that run the generators locally
//
// Fields:
//   - configFile: Path to the configuration file, empty for the environment fallback
//   - deps: Dependencies handed to the server builder on startup
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile string
	deps       ServerDependencies
}

// NewCLIFramework creates a new CLI framework instance with MCP server integration.
//
// Configuration loading is deferred until a command runs so the --config
// flag can override configFile. Empty fields of deps get the builder
// defaults; when deps.Tools is empty the default tools are used.
//
// Example usage:
//
//	framework := NewCLIFramework("", ServerDependencies{Version: "1.0.0"})
//	cmd := framework.BuildRootCommand()
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	if deps.Embed == nil {
		deps.Embed = templates.MagicEmbed
	}
	if len(deps.Tools) == 0 {
		deps.Tools = createTools()
	}
	return &CLIFramework{configFile: configFile, deps: deps}
}

// generators returns the generators behind the configured tools.
func (cf *CLIFramework) generators() []generator.Generator {
	gens := make([]generator.Generator, 0, len(cf.deps.Tools))
	for _, tool := range cf.deps.Tools {
		if tool.Generator != nil {
			gens = append(gens, tool.Generator)
		}
	}
	return gens
}

// loadConfig returns the configuration given at construction, or loads it
// from the --config file or the environment.
func (cf *CLIFramework) loadConfig() (*Config, error) {
	if cf.deps.Config != nil && cf.configFile == "" {
		return cf.deps.Config, nil
	}
	return loadConfig(cf.configFile)
}

// settings resolves the generator settings for the local subcommands.
func (cf *CLIFramework) settings() (generator.Settings, error) {
	config, err := cf.loadConfig()
	if err != nil {
		return generator.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	return config.EffectiveSettings()
}

// pluginManifest renders the agent plugin manifest for this build.
func (cf *CLIFramework) pluginManifest() ([]byte, error) {
	d, err := plugin.New(cf.deps.Version)
	if err != nil {
		return nil, err
	}
	return d.Manifest()
}

// BuildRootCommand creates the root Cobra command with integrated MCP server capabilities.
//
// Command behavior:
//   - With --instructions: Displays the rendered instructions and exits
//   - list / generate: Runs the generators locally
//   - manifest: Prints the agent plugin manifest
//   - Without arguments: Starts the MCP server on stdio
//
// It returns an error when the embedded help template cannot be rendered.
func (cf *CLIFramework) BuildRootCommand() (*cobra.Command, error) {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "DDD code scaffolder with MCP server integration",
		Version:       cf.deps.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Cobra adds the help flag during Execute; the help text needs its name now.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)

	var showInstructions bool
	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print the instructions sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to the configuration file (JSON or YAML)")

	instructionsFlagName, configFlagName, helpFlagName := extractFlagNames(rootCmd)

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to process CLI help template: %w", err)
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if showInstructions {
			return cf.printInstructions(cmd)
		}
		return cf.startMCPServer()
	}

	rootCmd.AddCommand(
		cli.NewListCommand(cf.generators()),
		cli.NewGenerateCommand(cf.generators(), cf.settings),
		cli.NewManifestCommand(cf.pluginManifest),
	)

	return rootCmd, nil
}

// loadAndExecuteCLIHelpTemplate loads cli_help.md from the embedded
// filesystem, executes it with the executable and flag names, and splits the
// result into the Long description and the Examples section.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName string) (longDesc, examples string, err error) {
	templateBytes, err := cf.deps.Embed.ReadFile("cli_help.md")
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	data := cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: instructionsFlagName,
		ConfigFlagName:       configFlagName,
		HelpFlagName:         helpFlagName,
	}

	result, err := gc.Capture(gc.Default, func(w gc.Buffer) error {
		return tmpl.Execute(w, data)
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return parseTemplateResult(result)
}

// parseTemplateResult splits the rendered help at the "## Examples" line.
// Everything before it becomes the Long description, everything after it the
// Examples. Both are trimmed.
func parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"

	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing '## Examples' section")
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n") + 1

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	longDesc = strings.TrimSpace(templateResult[:lineStart])
	examples = strings.TrimSpace(templateResult[lineEnd:])

	return longDesc, examples, nil
}

// extractFlagNames extracts formatted flag names from the root command,
// falling back to the usual names when a flag is missing.
func extractFlagNames(rootCmd *cobra.Command) (instructionsFlagName, configFlagName, helpFlagName string) {
	instructionsFlagName = "--instructions"
	if f := rootCmd.PersistentFlags().Lookup("instructions"); f != nil {
		instructionsFlagName = "--" + f.Name
	}

	configFlagName = "--config"
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil {
		configFlagName = "--" + f.Name
	}

	helpFlagName = "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	return instructionsFlagName, configFlagName, helpFlagName
}

// builder returns a server builder for config with the framework's
// dependencies and the default resources, prompts and instructions.
func (cf *CLIFramework) builder(config *Config) *ServerBuilder {
	b := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.deps.Embed).
		WithVersion(cf.deps.Version).
		WithTools(cf.deps.Tools...).
		WithDefaultResources().
		WithResources(cf.deps.Resources...).
		WithDefaultPrompts().
		WithPrompts(cf.deps.Prompts...)

	if cf.deps.Logger != nil {
		b = b.WithLogger(cf.deps.Logger)
	}
	if cf.deps.Tracer != nil {
		b = b.WithTracer(cf.deps.Tracer)
	}
	if cf.deps.Instructions != "" {
		b = b.WithInstructions(cf.deps.Instructions)
	} else {
		b = b.WithDefaultInstructions()
	}
	return b
}

// startMCPServer loads the configuration, builds the server and serves stdio
// until the input ends or a signal arrives.
func (cf *CLIFramework) startMCPServer() error {
	config, err := cf.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l := newServerLogger(config)
	if cf.deps.Logger == nil {
		cf.deps.Logger = l
	}
	appVersion = cf.deps.Version

	mcpServer, err := cf.builder(config).Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	return serveStdio(mcpServer, cf.deps.Logger, os.Stdin, os.Stdout)
}

// printInstructions writes the instructions MCP clients receive, similar to
// [gopls].
//
// [gopls]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
func (cf *CLIFramework) printInstructions(cmd *cobra.Command) error {
	instructions := cf.deps.Instructions
	if instructions == "" {
		config, err := cf.loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if instructions, err = loadInstructions(cf.deps.Embed, cf.deps.Tools, config.Settings); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), instructions)
	return err
}
