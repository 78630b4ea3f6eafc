// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] message handling.
// It includes utilities for normalizing JSON payloads (lowercase keys), handling
// ID fields (preserving values while normalizing types), and decoding of generic
// tool argument maps into typed generator inputs. The in-memory transport used
// by the agent bridge relies on it to keep messages in canonical form.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
