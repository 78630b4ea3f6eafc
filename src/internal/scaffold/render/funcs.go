// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/naming"
)

// Funcs returns the helper functions available to every code template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"join":         join,
		"quote":        Quote,
		"tsLiteral":    TSLiteral,
		"capitalize":   naming.Capitalize,
		"decapitalize": naming.Decapitalize,
		"snake":        naming.SnakeCase,
	}
}

func join(sep string, items []string) string { return strings.Join(items, sep) }

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// Quote renders s as a single-quoted TypeScript string literal.
func Quote(s string) string { return "'" + quoteReplacer.Replace(s) + "'" }

// TSLiteral renders a decoded JSON value as a TypeScript literal.
// Strings are single-quoted, nil becomes undefined, and composite values fall
// back to their JSON encoding.
func TSLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "undefined"
	case string:
		return Quote(val)
	case bool:
		return fmt.Sprint(val)
	case float64:
		return fmt.Sprint(val)
	case int, int64, int32:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return "undefined"
		}
		return string(data)
	}
}
