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
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

// DynamoAttribute is an attribute of an ElectroDB entity.
type DynamoAttribute struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required *bool  `json:"required"`
	Default  any    `json:"default"`
	ReadOnly bool   `json:"readOnly"`
	Watch    string `json:"watch"`
}

// KeyDefinition is a partition or sort key.
type KeyDefinition struct {
	Field     string   `json:"field"`
	Composite []string `json:"composite"`
}

// PrimaryIndex is the table's primary key.
type PrimaryIndex struct {
	PK KeyDefinition  `json:"pk"`
	SK *KeyDefinition `json:"sk"`
}

// SecondaryIndex is a global secondary index.
type SecondaryIndex struct {
	Name string         `json:"name"`
	PK   KeyDefinition  `json:"pk"`
	SK   *KeyDefinition `json:"sk"`
}

// Indexes is the key schema of an ElectroDB entity.
type Indexes struct {
	Primary                PrimaryIndex     `json:"primary"`
	GlobalSecondaryIndexes []SecondaryIndex `json:"globalSecondaryIndexes"`
}

type dynamoInput struct {
	BoundedContext string            `json:"boundedContext"`
	AggregateName  string            `json:"aggregateName"`
	Layer          Layer             `json:"layer"`
	Service        string            `json:"service"`
	EntityName     string            `json:"entityName"`
	TableName      string            `json:"tableName"`
	Version        string            `json:"version"`
	Attributes     []DynamoAttribute `json:"attributes"`
	Indexes        *Indexes          `json:"indexes"`
	Methods        []format.Method   `json:"methods"`
}

var dynamoTool = &tool[dynamoInput]{
	name:        "generateDynamoDBRepository",
	title:       "DynamoDB Repository generator",
	description: "Generates a DynamoDB repository implementation using ElectroDB for an aggregate.",
	schemaFile:  "generateDynamoDBRepository.json",
	refinements: []schema.Refinement{schema.NoTimestampAttributes(), primaryKeyedByID},
	defaults: func(in *dynamoInput) {
		in.Layer = defaultLayer(in.Layer)
		if in.Service == "" {
			in.Service = in.BoundedContext
		}
		if in.EntityName == "" {
			in.EntityName = naming.Capitalize(in.AggregateName)
		}
		if in.Version == "" {
			in.Version = "1"
		}
		if in.Indexes == nil {
			in.Indexes = &Indexes{Primary: PrimaryIndex{PK: KeyDefinition{Field: "id"}}}
		}
		for i := range in.Attributes {
			if in.Attributes[i].Required == nil {
				required := true
				in.Attributes[i].Required = &required
			}
		}
	},
	run: runDynamo,
}

// DynamoDBRepository generates an ElectroDB entity, the repository
// implementation on top of it, and a test skeleton.
func DynamoDBRepository() Generator { return dynamoTool }

// primaryKeyMessage is reported when the primary index is not composed of id
// alone.
const primaryKeyMessage = "The primary index must be composed of id only, the repository methods get, update and remove address items by id"

// keyAttributes returns the attributes a raw key definition is composed of.
// A key without composites is composed of its own field.
func keyAttributes(raw any) []string {
	key, _ := raw.(map[string]any)
	if key == nil {
		return nil
	}
	if list, ok := key["composite"].([]any); ok && len(list) > 0 {
		names := make([]string, 0, len(list))
		for _, item := range list {
			if name, ok := item.(string); ok {
				names = append(names, name)
			}
		}
		return names
	}
	if field, ok := key["field"].(string); ok {
		return []string{field}
	}
	return nil
}

// primaryKeyedByID rejects primary indexes whose pk and sk composites are not
// exactly id, since the generated repository looks items up by id.
func primaryKeyedByID(args map[string]any) []schema.Issue {
	indexes, _ := args["indexes"].(map[string]any)
	primary, _ := indexes["primary"].(map[string]any)
	if primary == nil {
		return nil
	}

	attrs := append(keyAttributes(primary["pk"]), keyAttributes(primary["sk"])...)
	if len(attrs) == 1 && attrs[0] == "id" {
		return nil
	}
	return []schema.Issue{{Path: "indexes.primary", Message: primaryKeyMessage}}
}

// composite renders the composite attribute list of a key. A key without
// composites is composed of its own field.
func composite(k KeyDefinition) string {
	names := k.Composite
	if len(names) == 0 {
		names = []string{k.Field}
	}

	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = render.Quote(name)
	}
	return strings.Join(quoted, ", ")
}

func keyView(k *KeyDefinition) render.Data {
	if k == nil {
		return nil
	}
	return render.Data{"field": k.Field, "composite": composite(*k)}
}

func watchLiteral(watch string) string {
	switch watch {
	case "":
		return ""
	case "*":
		return render.Quote(watch)
	default:
		return "[" + render.Quote(watch) + "]"
	}
}

func dynamoAttributeViews(attrs []DynamoAttribute) []render.Data {
	out := make([]render.Data, len(attrs))
	for i, a := range attrs {
		out[i] = render.Data{
			"name":           a.Name,
			"type":           a.Type,
			"required":       *a.Required,
			"hasDefault":     a.Default != nil,
			"defaultLiteral": render.TSLiteral(a.Default),
			"readOnly":       a.ReadOnly,
			"watch":          watchLiteral(a.Watch),
			"isStringType":   a.Type == "string",
		}
	}
	return out
}

func runDynamo(e env, in dynamoInput) (Result, error) {
	n := naming.Derive(in.AggregateName)
	loc := e.settings.at(in.BoundedContext, in.Layer)

	table := "singleDBTableName"
	if in.TableName != "" {
		table = render.Quote(in.TableName)
	}

	gsis := make([]render.Data, len(in.Indexes.GlobalSecondaryIndexes))
	for i, gsi := range in.Indexes.GlobalSecondaryIndexes {
		pk := gsi.PK
		gsis[i] = render.Data{"name": gsi.Name, "pk": keyView(&pk), "sk": keyView(gsi.SK)}
	}
	primaryPK := in.Indexes.Primary.PK

	data := render.Data{
		"aggregateName":             n.Base,
		"repositoryName":            n.Repository,
		"implName":                  n.RepositoryImpl,
		"configureFunc":             "configure" + n.Entity,
		"entityFile":                n.Entity,
		"entityName":                in.EntityName,
		"service":                   in.Service,
		"version":                   in.Version,
		"table":                     table,
		"attributes":                dynamoAttributeViews(in.Attributes),
		"primary":                   render.Data{"pk": keyView(&primaryPK), "sk": keyView(in.Indexes.Primary.SK)},
		"globalSecondaryIndexes":    gsis,
		"methods":                   format.MethodViews(in.Methods),
		"basicErrorTypesFrom":       e.settings.BasicErrorTypesFrom,
		"dynamoDBConfigurationFrom": e.settings.DynamoDBConfigurationFrom,
	}

	files, err := e.renderAll(data,
		target{"dynamoEntity.ts.tmpl", loc.file(folderPersistence, n.Entity+".ts")},
		target{"dynamoRepository.ts.tmpl", loc.file(folderPersistence, n.RepositoryImpl+".ts")},
		target{"dynamoRepository.spec.ts.tmpl", loc.file(folderTest, n.RepositoryImpl+".spec.ts")},
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ContentSummary: summarize(
			fmt.Sprintf("Prepared %d files for DynamoDB repository %s.", len(files), n.Repository),
			"Generated ElectroDB entity, repository implementation, and tests.",
		),
		Files: files,
	}, nil
}
