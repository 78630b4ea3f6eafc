// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

// View is the template data record for a single field or method.
// Templates index views by key and fail on missing keys.
type View = map[string]any

// FieldView exposes a field to templates.
func FieldView(f Field) View {
	return View{
		"name":        f.Name,
		"type":        f.Type,
		"valueObject": f.ValueObject,
		"zodType":     ZodType(f.Type),
		"zodField":    ZodField(f),
	}
}

// FieldViews converts fields in order.
func FieldViews(fields []Field) []View {
	out := make([]View, len(fields))
	for i, f := range fields {
		out[i] = FieldView(f)
	}
	return out
}

// MethodView exposes a method and its preformatted parameter snippets.
func MethodView(m Method) View {
	return View{
		"name":                m.Name,
		"resultType":          m.Result(),
		"parameters":          FieldViews(m.Parameters),
		"formattedParameters": ParameterList(m.Parameters),
		"parameterNames":      ParameterNames(m.Parameters),
		"destructured":        Destructured(m.Parameters),
		"paramsObject":        ParamsObject(m.Parameters),
		"signature":           m.Signature(),
	}
}

// MethodViews converts methods in order, defaulting result types.
func MethodViews(methods []Method) []View {
	normalized := NormalizeMethods(methods)
	out := make([]View, len(normalized))
	for i, m := range normalized {
		out[i] = MethodView(m)
	}
	return out
}
