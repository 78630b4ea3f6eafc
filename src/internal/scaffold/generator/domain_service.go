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

type domainServiceInput struct {
	ServiceName          string         `json:"serviceName"`
	Parameters           []format.Field `json:"parameters"`
	Returns              string         `json:"returns"`
	InjectedDependencies []format.Field `json:"injectedDependencies"`
	BoundedContext       string         `json:"boundedContext"`
	Layer                Layer          `json:"layer"`
}

var domainServiceTool = &tool[domainServiceInput]{
	name:        "generateDomainService",
	title:       "Domain Service generator",
	description: "Generates a domain service: its error type, validated parameter type, implementation running in a unit of work, and a test skeleton.",
	schemaFile:  "generateDomainService.json",
	defaults: func(in *domainServiceInput) {
		in.Layer = defaultLayer(in.Layer)
		if strings.TrimSpace(in.Returns) == "" {
			in.Returns = format.DefaultResultType
		}
	},
	run: runDomainService,
}

// DomainService generates the four files of a domain service.
func DomainService() Generator { return domainServiceTool }

// transactionDependency is always injected first into a service implementation.
var transactionDependency = format.Field{Name: "transact", Type: "TransactionOnRepository"}

func runDomainService(e env, in domainServiceInput) (Result, error) {
	n := naming.Derive(in.ServiceName)
	serviceName := in.ServiceName
	loc := e.settings.at(in.BoundedContext, in.Layer)

	dependencies := append([]format.Field{transactionDependency}, in.InjectedDependencies...)

	data := render.Data{
		"serviceName":         serviceName,
		"typeName":            n.Base,
		"errorType":           n.Error,
		"errorsFile":          n.Errors,
		"errorCode":           strings.ReplaceAll(n.Table, "_", "-") + "-failed",
		"paramsType":          n.Params,
		"schemaName":          serviceName + "Schema",
		"implName":            serviceName + "Impl",
		"returns":             in.Returns,
		"parameters":          format.FieldViews(in.Parameters),
		"zodFields":           format.ZodFields(in.Parameters),
		"formattedParameters": format.ParameterList(in.Parameters),
		"anyTypedParameters":  format.AnyTypedParameterList(in.Parameters),
		"parameterNames":      format.ParameterNames(in.Parameters),
		"dependencies":        format.ParameterList(dependencies),
		"basicTypesFrom":      e.settings.BasicTypesFrom,
		"basicErrorTypesFrom": e.settings.BasicErrorTypesFrom,
	}

	files, err := e.renderAll(data,
		target{"serviceErrors.ts.tmpl", loc.file(folderDomainModel, n.Errors+".ts")},
		target{"serviceParams.ts.tmpl", loc.file(folderDomainModel, n.Params+".ts")},
		target{"service.ts.tmpl", loc.file(folderDomainModel, serviceName+".ts")},
		target{"service.spec.ts.tmpl", loc.file(folderTest, serviceName+".spec.ts")},
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ContentSummary: summarize(fmt.Sprintf("Prepared %d files for the domain service %q.", len(files), serviceName)),
		Files:          files,
	}, nil
}
