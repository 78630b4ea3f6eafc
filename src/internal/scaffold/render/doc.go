// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package render executes the embedded TypeScript code templates.
//
// Templates are standard [text/template] files under code/ in the embedded
// template set. They receive a flat map of preformatted values and may only
// substitute, branch with if, and iterate with range. Missing keys are errors.
package render
