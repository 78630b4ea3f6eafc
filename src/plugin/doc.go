// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package plugin exposes the scaffolding generators as agent tools for a host
// agent runtime.
//
// A host loads the [Descriptor], parses its own plugin configuration with
// [ConfigSchema.Parse] and calls [Descriptor.Register], which registers one
// [AgentTool] per generator. Each tool answers with a pretty-printed JSON
// envelope {success, data: {files}, message}. Failures are returned as errors
// starting with "Invalid parameters: " or "The <tool> tool failed: ".
package plugin
