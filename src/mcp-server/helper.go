// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"log"
	"strings"

	"github.com/mattes3/mcp4ddd/src/logger"
)

// getStringParam returns the required non-empty string params[key].
func getStringParam(params map[string]any, method, key string) (string, error) {
	v, ok := params[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s requires string %q", errInvalidParams, method, key)
	}
	return v, nil
}

// getOptionalStringParam returns params[key], or "" when it is absent.
func getOptionalStringParam(params map[string]any, method, key string) (string, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s expects string %q, got %T", errInvalidParams, method, key, raw)
	}
	return v, nil
}

// getMapParam returns the object params[key]. An absent key yields an empty map.
func getMapParam(params map[string]any, method, key string) (map[string]any, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return map[string]any{}, nil
	}
	v, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects object %q, got %T", errInvalidParams, method, key, raw)
	}
	return v, nil
}

// logWriter adapts a [logger.Logger] to an io.Writer for the std logger.
type logWriter struct{ l logger.Logger }

func (w logWriter) Write(p []byte) (int, error) {
	w.l.Errorf("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// newStdLogger returns a std logger that writes through l.
func newStdLogger(l logger.Logger) *log.Logger {
	return log.New(logWriter{l: l}, "", 0)
}
