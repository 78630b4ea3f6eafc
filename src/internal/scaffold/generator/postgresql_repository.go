// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/format"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/naming"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/render"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

// SQLAttribute is a column of a PostgreSQL model.
type SQLAttribute struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required *bool  `json:"required"`
}

type postgresInput struct {
	BoundedContext string          `json:"boundedContext"`
	AggregateName  string          `json:"aggregateName"`
	Layer          Layer           `json:"layer"`
	TableName      string          `json:"tableName"`
	Attributes     []SQLAttribute  `json:"attributes"`
	PrimaryKey     string          `json:"primaryKey"`
	Methods        []format.Method `json:"methods"`
}

var postgresTool = &tool[postgresInput]{
	name:        "generatePostgreSQLRepository",
	title:       "PostgreSQL Repository generator",
	description: "Generates a PostgreSQL repository implementation using Objection.js and Knex for an aggregate.",
	schemaFile:  "generatePostgreSQLRepository.json",
	defaults:    postgresDefaults,
	run:         runPostgres,
}

// PostgreSQLRepository generates an Objection.js model and the repository
// implementation on top of it.
func PostgreSQLRepository() Generator { return postgresTool }

func postgresDefaults(in *postgresInput) {
	in.Layer = defaultLayer(in.Layer)
	if in.PrimaryKey == "" {
		in.PrimaryKey = "id"
	}
	if in.TableName == "" {
		in.TableName = naming.SnakeCase(in.AggregateName)
	}

	// The model manages its own timestamps.
	in.Attributes = slices.DeleteFunc(in.Attributes, func(a SQLAttribute) bool {
		return slices.Contains(schema.TimestampNames, a.Name)
	})

	for i := range in.Attributes {
		if in.Attributes[i].Required == nil {
			required := true
			in.Attributes[i].Required = &required
		}
	}

	if !slices.ContainsFunc(in.Attributes, func(a SQLAttribute) bool { return a.Name == in.PrimaryKey }) {
		required := true
		pk := SQLAttribute{Name: in.PrimaryKey, Type: "string", Required: &required}
		in.Attributes = append([]SQLAttribute{pk}, in.Attributes...)
	}
}

// sqlTypes maps attribute types to (TypeScript type, JSON Schema type, format).
var sqlTypes = map[string][3]string{
	"string":  {"string", "string", ""},
	"number":  {"number", "number", ""},
	"boolean": {"boolean", "boolean", ""},
	"date":    {"string", "string", "date-time"},
}

func sqlAttributeViews(attrs []SQLAttribute) ([]render.Data, string) {
	views := make([]render.Data, len(attrs))
	var required []string
	for i, a := range attrs {
		t, ok := sqlTypes[a.Type]
		if !ok {
			t = sqlTypes["string"]
		}
		views[i] = render.Data{
			"name":           a.Name,
			"required":       *a.Required,
			"tsType":         t[0],
			"jsonSchemaType": t[1],
			"format":         t[2],
		}
		if *a.Required {
			required = append(required, render.Quote(a.Name))
		}
	}
	required = append(required, render.Quote("createdAt"), render.Quote("updatedAt"))
	return views, strings.Join(required, ", ")
}

func runPostgres(e env, in postgresInput) (Result, error) {
	n := naming.Derive(in.AggregateName)
	loc := e.settings.at(in.BoundedContext, in.Layer)
	attributes, requiredList := sqlAttributeViews(in.Attributes)

	data := render.Data{
		"aggregateName":       n.Base,
		"repositoryName":      n.Repository,
		"implName":            n.RepositoryImpl,
		"modelName":           n.Model,
		"tableName":           in.TableName,
		"primaryKey":          in.PrimaryKey,
		"attributes":          attributes,
		"requiredList":        requiredList,
		"methods":             format.MethodViews(in.Methods),
		"basicErrorTypesFrom": e.settings.BasicErrorTypesFrom,
	}

	files, err := e.renderAll(data,
		target{"postgresModel.ts.tmpl", loc.file(folderPersistence, n.Model+".ts")},
		target{"postgresRepository.ts.tmpl", loc.file(folderPersistence, n.RepositoryImpl+".ts")},
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ContentSummary: summarize(
			fmt.Sprintf("Prepared %d files for PostgreSQL repository %s.", len(files), n.Repository),
			fmt.Sprintf("Generated Objection.js model for table %q and repository implementation.", in.TableName),
		),
		Files: files,
	}, nil
}
