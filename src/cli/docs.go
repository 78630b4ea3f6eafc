// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the local command-line commands of the DDD scaffolder.
// It implements Cobra subcommands that list the available generators and run
// one of them against an input file in JSON or YAML, printing the generated
// paths as a markdown table (tablewriter) and the file contents to stdout,
// or the full result as JSON. Generated files are never written to disk.
// A manifest subcommand prints the agent plugin manifest.
package cli
