// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codegen generates the markdown tool reference in docs/TOOLS.md.
//
// The reference is derived from the JSON input schemas of the scaffolding
// generators, so it cannot drift from what the tools accept.
package codegen
