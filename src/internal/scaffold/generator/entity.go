// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/format"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/naming"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/render"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

type entityInput struct {
	EntityName     string          `json:"entityName"`
	AggregateRoot  bool            `json:"aggregateRoot"`
	Attributes     []format.Field  `json:"attributes"`
	Methods        []format.Method `json:"methods"`
	BoundedContext string          `json:"boundedContext"`
	Layer          Layer           `json:"layer"`
}

var entityTool = &tool[entityInput]{
	name:        "generateEntity",
	title:       "Entity generator",
	description: "Generates an entity or aggregate root with its data type, methods, factory and a test skeleton.",
	schemaFile:  "generateEntity.json",
	refinements: []schema.Refinement{schema.NoTimestampAttributes()},
	defaults: func(in *entityInput) {
		in.Layer = defaultLayer(in.Layer)
	},
	run: runEntity,
}

// Entity generates an entity source file and its test skeleton.
func Entity() Generator { return entityTool }

func entityData(s Settings, name string, root bool, attributes []format.Field, methods []format.Method) render.Data {
	n := naming.Derive(name)

	return render.Data{
		"typeName":           n.Base,
		"dataType":           n.Data,
		"methodsType":        n.Methods,
		"factory":            n.Factory,
		"aggregateRoot":      root,
		"implicitId":         !format.HasField(attributes, "id"),
		"attributes":         format.FieldViews(attributes),
		"methods":            format.MethodViews(methods),
		"valueObjectImports": format.ValueObjectImports(attributes),
		"basicTypesFrom":     s.BasicTypesFrom,
	}
}

func runEntity(e env, in entityInput) (Result, error) {
	n := naming.Derive(in.EntityName)
	loc := e.settings.at(in.BoundedContext, in.Layer)

	files, err := e.renderAll(
		entityData(e.settings, in.EntityName, in.AggregateRoot, in.Attributes, in.Methods),
		target{"entity.ts.tmpl", loc.file(folderDomainModel, n.Base+".ts")},
		target{"entity.spec.ts.tmpl", loc.file(folderTest, n.Base+".spec.ts")},
	)
	if err != nil {
		return Result{}, err
	}

	kind := "entity"
	if in.AggregateRoot {
		kind = "aggregate root"
	}

	return Result{
		ContentSummary: summarize(fmt.Sprintf("Prepared %d files for %s %s.", len(files), kind, n.Base)),
		Files:          files,
	}, nil
}

func defaultLayer(l Layer) Layer {
	if l == "" {
		return LayerDomain
	}
	return l
}
