// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"slices"
	"strconv"
)

// ReservedTimestampMessage is reported for attributes named after the
// timestamps the generated code manages itself.
const ReservedTimestampMessage = "This value is not allowed as timestamps are managed internally!"

// TimestampNames are the attribute names managed by generated code.
var TimestampNames = []string{"createdAt", "updatedAt"}

// ReservedNames rejects list entries whose "name" is one of names.
//
// Parameters:
//   - listKey: Top-level key holding an array of objects ("attributes")
//   - message: Message reported for each offending entry
//   - names: Reserved values
//
// Returns:
//   - Refinement: Check reporting "listKey.i.name" paths
func ReservedNames(listKey, message string, names ...string) Refinement {
	return func(args map[string]any) []Issue {
		items, ok := args[listKey].([]any)
		if !ok {
			return nil
		}

		var issues []Issue
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			name, ok := obj["name"].(string)
			if !ok || !slices.Contains(names, name) {
				continue
			}
			issues = append(issues, Issue{
				Path:    listKey + "." + strconv.Itoa(i) + ".name",
				Message: message,
			})
		}
		return issues
	}
}

// NoTimestampAttributes is the reserved-name check used by generators whose
// output manages createdAt and updatedAt.
func NoTimestampAttributes() Refinement {
	return ReservedNames("attributes", ReservedTimestampMessage, TimestampNames...)
}
