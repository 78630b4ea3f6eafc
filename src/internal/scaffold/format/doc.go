// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package format turns field and method descriptors into TypeScript-shaped
// snippets: parameter lists, destructuring patterns, named parameter objects
// and zod schema members. All functions are order-preserving and pure.
package format
