// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package generator implements the scaffolding tools.
//
// Every generator follows the same pipeline: the raw arguments are checked
// against an embedded JSON Schema (plus any refinements), decoded into a typed
// input, completed with defaults, turned into a flat template data record
// using the [naming] and [format] packages, and rendered through the shared
// [render.Renderer]. The rendered files and a summary are returned as a
// [Result]; nothing is written to disk.
//
// Output paths follow a single layout:
//
//	{boundedContextsParentFolder}/{boundedContext}/{layer}/src/domainmodel/...
//	{boundedContextsParentFolder}/{boundedContext}/{layer}/src/adapter/persistence/...
//	{boundedContextsParentFolder}/{boundedContext}/{layer}/test/...
//
// [Settings] carry the process-wide import sources and parent folder. They
// are read by the caller (usually from a config file and the environment) and
// passed into every [Generator.Generate] call.
//
// [naming]: https://pkg.go.dev/github.com/mattes3/mcp4ddd/src/internal/scaffold/naming
// [format]: https://pkg.go.dev/github.com/mattes3/mcp4ddd/src/internal/scaffold/format
//
//go:generate go run ../../tools/codegen
package generator
