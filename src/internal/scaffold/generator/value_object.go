// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"
	"strings"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/format"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/naming"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/render"
)

type valueObjectInput struct {
	ValueObjectName string          `json:"valueObjectName"`
	Attributes      []format.Field  `json:"attributes"`
	Methods         []format.Method `json:"methods"`
	BoundedContext  string          `json:"boundedContext"`
	Layer           Layer           `json:"layer"`
}

var valueObjectTool = &tool[valueObjectInput]{
	name:        "generateValueObject",
	title:       "Value Object generator",
	description: "Generates an immutable value object with structural equality and a test skeleton.",
	schemaFile:  "generateValueObject.json",
	defaults: func(in *valueObjectInput) {
		in.Layer = defaultLayer(in.Layer)
	},
	run: runValueObject,
}

// ValueObject generates a value object source file and its test skeleton.
func ValueObject() Generator { return valueObjectTool }

// equality builds the body of the generated equals function. Nested value
// objects are compared by their JSON form since they may be arrays.
func equality(attributes []format.Field) string {
	if len(attributes) == 0 {
		return "true"
	}

	parts := make([]string, len(attributes))
	for i, a := range attributes {
		if a.ValueObject {
			parts[i] = fmt.Sprintf("JSON.stringify(a.%[1]s) === JSON.stringify(b.%[1]s)", a.Name)
		} else {
			parts[i] = fmt.Sprintf("a.%[1]s === b.%[1]s", a.Name)
		}
	}
	return strings.Join(parts, " &&\n    ")
}

func runValueObject(e env, in valueObjectInput) (Result, error) {
	n := naming.Derive(in.ValueObjectName)
	loc := e.settings.at(in.BoundedContext, in.Layer)

	data := render.Data{
		"typeName":           n.Base,
		"dataType":           n.Data,
		"methodsType":        n.Methods,
		"factory":            n.Factory,
		"attributes":         format.FieldViews(in.Attributes),
		"methods":            format.MethodViews(in.Methods),
		"valueObjectImports": format.ValueObjectImports(in.Attributes),
		"equality":           equality(in.Attributes),
	}

	files, err := e.renderAll(data,
		target{"valueObject.ts.tmpl", loc.file(folderDomainModel, n.Base+".ts")},
		target{"valueObject.spec.ts.tmpl", loc.file(folderTest, n.Base+".spec.ts")},
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ContentSummary: summarize(fmt.Sprintf("Prepared %d files for value object %s.", len(files), n.Base)),
		Files:          files,
	}, nil
}
