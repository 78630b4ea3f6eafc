// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package schema

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Issue is a single validation failure.
type Issue struct {
	// Path is the dotted location of the offending value ("attributes.0.name").
	// It is empty for failures that concern the input as a whole.
	Path string `json:"path"`
	// Message describes the failure.
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError reports every issue found in one input.
type ValidationError struct{ Issues []Issue }

// Error renders the issues as "path: message, path: message".
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, ", ")
}

// Refinement checks constraints that a JSON Schema cannot express with a
// useful message. It receives the raw arguments and returns any issues.
type Refinement func(args map[string]any) []Issue

// Validator checks tool arguments against a compiled JSON Schema followed by
// optional refinements.
//
// A Validator is immutable after [Compile] and safe for concurrent use.
type Validator struct {
	raw         json.RawMessage
	schema      *gojsonschema.Schema
	refinements []Refinement
}

// Compile parses and compiles a JSON Schema document.
//
// Parameters:
//   - raw: JSON Schema document
//   - refinements: Extra checks run after the schema
//
// Returns:
//   - *Validator: Compiled validator
//   - error: Error if the document is not a valid schema
func Compile(raw []byte, refinements ...Refinement) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{
		raw:         json.RawMessage(raw),
		schema:      s,
		refinements: refinements,
	}, nil
}

// Raw returns the schema document the validator was compiled from.
func (v *Validator) Raw() json.RawMessage { return v.raw }

// Validate checks args. It returns nil or a *[ValidationError] listing every
// issue, sorted by path.
func (v *Validator) Validate(args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return &ValidationError{Issues: []Issue{{Message: fmt.Sprintf("input is not valid JSON: %v", err)}}}
	}

	var issues []Issue
	for _, re := range result.Errors() {
		issues = append(issues, issueFromResult(re))
	}

	for _, refine := range v.refinements {
		issues = append(issues, refine(args)...)
	}

	if len(issues) == 0 {
		return nil
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return strings.Compare(a.Path, b.Path)
	})

	return &ValidationError{Issues: slices.Compact(issues)}
}

const rootContext = "(root)"

func issueFromResult(re gojsonschema.ResultError) Issue {
	path := re.Field()
	if path == rootContext {
		path = ""
	}

	// Missing properties are reported against the parent object; point at
	// the property itself instead.
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			path = joinPath(path, prop)
			return Issue{Path: path, Message: "Required"}
		}
	}

	return Issue{Path: path, Message: re.Description()}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
