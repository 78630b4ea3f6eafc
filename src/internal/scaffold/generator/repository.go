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
)

type repositoryInput struct {
	AggregateName              string          `json:"aggregateName"`
	Methods                    []format.Method `json:"methods"`
	DefaultAddAndRemoveMethods *bool           `json:"defaultAddAndRemoveMethods"`
	BoundedContext             string          `json:"boundedContext"`
	Layer                      Layer           `json:"layer"`
}

var repositoryTool = &tool[repositoryInput]{
	name:        "generateRepository",
	title:       "Repository generator",
	description: "Generates the repository interface for an aggregate, including add, get, update and remove unless disabled, plus a test skeleton.",
	schemaFile:  "generateRepository.json",
	defaults: func(in *repositoryInput) {
		in.Layer = defaultLayer(in.Layer)
		if in.DefaultAddAndRemoveMethods == nil {
			enabled := true
			in.DefaultAddAndRemoveMethods = &enabled
		}
	},
	run: runRepository,
}

// Repository generates a repository interface and its test skeleton.
func Repository() Generator { return repositoryTool }

// CRUDMethods returns the default repository methods for an aggregate type.
func CRUDMethods(aggregate string) []format.Method {
	id := aggregate + "['id']"
	return []format.Method{
		{
			Name:       "add",
			Parameters: []format.Field{{Name: "item", Type: aggregate}},
			ResultType: "void",
		},
		{
			Name:       "get",
			Parameters: []format.Field{{Name: "id", Type: id}},
			ResultType: "Option<" + aggregate + ">",
		},
		{
			Name: "update",
			Parameters: []format.Field{
				{Name: "id", Type: id},
				{Name: "updates", Type: "Partial<Omit<" + aggregate + ", 'id'>>"},
			},
			ResultType: aggregate,
		},
		{
			Name:       "remove",
			Parameters: []format.Field{{Name: "item", Type: aggregate}},
			ResultType: "void",
		},
	}
}

func repositoryData(s Settings, aggregate string, methods []format.Method, withDefaults bool) render.Data {
	n := naming.Derive(aggregate)

	all := append([]format.Method{}, methods...)
	if withDefaults {
		all = append(all, CRUDMethods(n.Base)...)
	}

	return render.Data{
		"typeName":            n.Base,
		"repositoryName":      n.Repository,
		"methods":             format.MethodViews(all),
		"basicErrorTypesFrom": s.BasicErrorTypesFrom,
	}
}

func runRepository(e env, in repositoryInput) (Result, error) {
	n := naming.Derive(in.AggregateName)
	loc := e.settings.at(in.BoundedContext, in.Layer)

	files, err := e.renderAll(
		repositoryData(e.settings, in.AggregateName, in.Methods, *in.DefaultAddAndRemoveMethods),
		target{"repository.ts.tmpl", loc.file(folderDomainModel, n.Repository+".ts")},
		target{"repository.spec.ts.tmpl", loc.file(folderTest, n.Repository+".spec.ts")},
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ContentSummary: summarize(fmt.Sprintf("Prepared %d files for repository %s.", len(files), n.Repository)),
		Files:          files,
	}, nil
}
