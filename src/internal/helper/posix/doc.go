// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers for process-level details that differ
// between operating systems.
//
// [GetExecutableName] names the running binary in the CLI help text:
//
//	rootCmd := &cobra.Command{Use: posix.GetExecutableName()}
//
//   - Linux/macOS: "/usr/local/bin/ddd-scaffolder" → "ddd-scaffolder"
//   - Windows: "C:\bin\ddd-scaffolder.exe" → "ddd-scaffolder"
//   - Empty os.Args → [FallbackName]
package posix
