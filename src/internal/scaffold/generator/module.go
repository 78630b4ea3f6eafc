// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"
	"strconv"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/format"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/naming"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/render"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

type moduleEntity struct {
	Name          string         `json:"name"`
	AggregateRoot bool           `json:"aggregateRoot"`
	Fields        []format.Field `json:"fields"`
}

type moduleInput struct {
	ModuleName   string         `json:"moduleName"`
	Layer        Layer          `json:"layer"`
	Entities     []moduleEntity `json:"entities"`
	Services     []string       `json:"services"`
	Repositories []string       `json:"repositories"`
}

var moduleTool = &tool[moduleInput]{
	name:        "generateModule",
	title:       "Module generator",
	description: "Generates a complete bounded context module: entities, repository interfaces, domain service stubs and an index re-exporting them.",
	schemaFile:  "generateModule.json",
	refinements: []schema.Refinement{distinctModuleFiles},
	defaults: func(in *moduleInput) {
		in.Layer = defaultLayer(in.Layer)
	},
	run: runModule,
}

// Module generates a whole bounded context in one call.
func Module() Generator { return moduleTool }

// moduleIndexStem is the file every module gets for its re-exports.
const moduleIndexStem = "index"

// distinctModuleFiles rejects entries whose file would land on the same
// domainmodel path as an earlier entry or the index.
func distinctModuleFiles(args map[string]any) []schema.Issue {
	owners := map[string]string{moduleIndexStem: "the module index"}

	var issues []schema.Issue
	claim := func(stem, path string) {
		if stem == "" {
			return
		}
		if owner, taken := owners[stem]; taken {
			issues = append(issues, schema.Issue{
				Path:    path,
				Message: fmt.Sprintf("%s.ts is already generated for %s", stem, owner),
			})
			return
		}
		owners[stem] = path
	}

	entities, _ := args["entities"].([]any)
	for i, item := range entities {
		obj, _ := item.(map[string]any)
		if name, ok := obj["name"].(string); ok && name != "" {
			claim(naming.Capitalize(name), "entities."+strconv.Itoa(i)+".name")
		}
	}

	repositories, _ := args["repositories"].([]any)
	for i, item := range repositories {
		if aggregate, ok := item.(string); ok && aggregate != "" {
			claim(naming.Derive(aggregate).Repository, "repositories."+strconv.Itoa(i))
		}
	}

	services, _ := args["services"].([]any)
	for i, item := range services {
		if service, ok := item.(string); ok {
			claim(service, "services."+strconv.Itoa(i))
		}
	}

	return issues
}

func runModule(e env, in moduleInput) (Result, error) {
	loc := e.settings.at(in.ModuleName, in.Layer)

	var (
		files   []File
		exports []string
	)
	add := func(tmpl, stem string, data render.Data) error {
		content, err := e.renderer.Render(tmpl, data)
		if err != nil {
			return err
		}
		files = append(files, File{Path: loc.file(folderDomainModel, stem+".ts"), Content: content})
		exports = append(exports, stem)
		return nil
	}

	for _, ent := range in.Entities {
		data := entityData(e.settings, ent.Name, ent.AggregateRoot, ent.Fields, nil)
		if err := add("entity.ts.tmpl", naming.Capitalize(ent.Name), data); err != nil {
			return Result{}, err
		}
	}

	for _, aggregate := range in.Repositories {
		data := repositoryData(e.settings, aggregate, nil, true)
		if err := add("repository.ts.tmpl", naming.Derive(aggregate).Repository, data); err != nil {
			return Result{}, err
		}
	}

	for _, service := range in.Services {
		n := naming.Derive(service)
		data := render.Data{
			"serviceName":         service,
			"typeName":            n.Base,
			"implName":            service + "Impl",
			"basicErrorTypesFrom": e.settings.BasicErrorTypesFrom,
		}
		if err := add("serviceStub.ts.tmpl", service, data); err != nil {
			return Result{}, err
		}
	}

	index, err := e.renderer.Render("moduleIndex.ts.tmpl", render.Data{
		"moduleName": in.ModuleName,
		"exports":    exports,
	})
	if err != nil {
		return Result{}, err
	}
	files = append([]File{{Path: loc.file(folderDomainModel, moduleIndexStem+".ts"), Content: index}}, files...)

	return Result{
		ContentSummary: summarize(fmt.Sprintf(
			"Prepared %d files for module %s with %d entities, %d repositories and %d domain services.",
			len(files), in.ModuleName, len(in.Entities), len(in.Repositories), len(in.Services),
		)),
		Files: files,
	}, nil
}
