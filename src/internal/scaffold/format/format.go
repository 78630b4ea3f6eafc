// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"strings"
)

// DefaultResultType is used for methods that do not declare a result type.
const DefaultResultType = "void"

// Field is a named, typed member: an attribute, a method parameter, or an
// injected dependency.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	ValueObject bool   `json:"valueObject,omitempty"`
}

// Method is a method signature on an entity, value object or repository.
type Method struct {
	Name       string  `json:"name"`
	Parameters []Field `json:"parameters"`
	ResultType string  `json:"resultType,omitempty"`
}

// Result returns the declared result type or [DefaultResultType].
func (m Method) Result() string {
	if m.ResultType == "" {
		return DefaultResultType
	}
	return m.ResultType
}

// Signature renders "name(a: A, b: B): R".
func (m Method) Signature() string {
	return m.Name + "(" + ParameterList(m.Parameters) + "): " + m.Result()
}

// ParameterList renders fields as a TypeScript parameter list: "a: A, b: B".
func ParameterList(fields []Field) string {
	return joinFields(fields, func(f Field) string { return f.Name + ": " + f.Type })
}

// AnyTypedParameterList renders fields with every type replaced by any:
// "a: any, b: any". Raw inputs are untyped until the schema has parsed them.
func AnyTypedParameterList(fields []Field) string {
	return joinFields(fields, func(f Field) string { return f.Name + ": any" })
}

// ParameterNames renders the bare names: "a, b".
func ParameterNames(fields []Field) string {
	return joinFields(fields, func(f Field) string { return f.Name })
}

// Destructured renders a destructuring pattern: "{ a, b }".
// An empty list yields "{  }" so call sites keep their shape.
func Destructured(fields []Field) string {
	return "{ " + ParameterNames(fields) + " }"
}

// ParamsObject renders a single named-object parameter:
// "params: { a: A, b: B }". An empty list yields an empty string.
func ParamsObject(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	return "params: { " + ParameterList(fields) + " }"
}

// ZodType maps a TypeScript primitive type to the zod builder name.
// Anything that is not a primitive maps to "unknown".
func ZodType(tsType string) string {
	switch strings.TrimSpace(tsType) {
	case "string":
		return "string"
	case "number":
		return "number"
	case "boolean":
		return "boolean"
	case "Date":
		return "date"
	default:
		return "unknown"
	}
}

// ZodField renders one zod object member: "amount: z.number()".
func ZodField(f Field) string {
	return f.Name + ": z." + ZodType(f.Type) + "()"
}

// ZodFields renders zod object members, one per field, in input order.
func ZodFields(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = ZodField(f)
	}
	return out
}

// NormalizeMethods returns a copy of methods with result types defaulted and
// nil parameter lists replaced by empty ones.
func NormalizeMethods(methods []Method) []Method {
	out := make([]Method, len(methods))
	for i, m := range methods {
		m.ResultType = m.Result()
		if m.Parameters == nil {
			m.Parameters = []Field{}
		}
		out[i] = m
	}
	return out
}

// HasField reports whether a field with the given name is present.
func HasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// BaseTypeName strips array suffixes from a type: "OrderItem[]" becomes
// "OrderItem".
func BaseTypeName(tsType string) string {
	t := strings.TrimSpace(tsType)
	for strings.HasSuffix(t, "[]") {
		t = strings.TrimSpace(strings.TrimSuffix(t, "[]"))
	}
	return t
}

// ValueObjectImports returns the distinct base type names of fields flagged
// as value objects, in order of first appearance.
func ValueObjectImports(fields []Field) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range fields {
		if !f.ValueObject {
			continue
		}
		t := BaseTypeName(f.Type)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func joinFields(fields []Field, render func(Field) string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = render(f)
	}
	return strings.Join(parts, ", ")
}
