// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package naming derives the consistent family of TypeScript identifiers
// (repository, data, error, params, schema, model and entity names) that the
// generators share across all files produced for one domain object.
package naming
