// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package schema validates raw tool arguments before they reach a generator.
//
// Shape checks are delegated to [gojsonschema] using the same JSON Schema
// document that the tool advertises to clients. Constraints with a domain
// specific message, such as reserved timestamp attribute names, are expressed
// as [Refinement] functions. Failures are reported as a [ValidationError]
// carrying a dotted field path and a message per issue.
//
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
package schema
