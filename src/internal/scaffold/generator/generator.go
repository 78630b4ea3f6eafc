// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mattes3/mcp4ddd/src/internal/helper/jsonrpc"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/render"
	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Generator is one scaffolding tool.
//
// Implementations are stateless; Generate may be called concurrently.
type Generator interface {
	// Name is the tool name clients call ("generateEntity").
	Name() string
	// Title is a short human-readable label.
	Title() string
	// Description explains what the tool produces.
	Description() string
	// InputSchema is the JSON Schema for the tool arguments.
	InputSchema() json.RawMessage
	// Generate validates args, renders the templates and assembles the result.
	// Validation failures are returned as *[schema.ValidationError].
	Generate(ctx context.Context, settings Settings, args map[string]any) (Result, error)
}

// env is what a generator body gets to work with.
type env struct {
	settings Settings
	renderer *render.Renderer
}

// tool implements [Generator] for a typed input.
type tool[In any] struct {
	name        string
	title       string
	description string
	schemaFile  string
	refinements []schema.Refinement
	defaults    func(*In)
	run         func(env, In) (Result, error)

	once      sync.Once
	validator *schema.Validator
	err       error
}

func (t *tool[In]) Name() string        { return t.name }
func (t *tool[In]) Title() string       { return t.title }
func (t *tool[In]) Description() string { return t.description }

func (t *tool[In]) InputSchema() json.RawMessage {
	v, err := t.compiled()
	if err != nil {
		return nil
	}
	return v.Raw()
}

func (t *tool[In]) compiled() (*schema.Validator, error) {
	t.once.Do(func() {
		raw, err := schemaFS.ReadFile("schemas/" + t.schemaFile)
		if err != nil {
			t.err = fmt.Errorf("failed to load input schema for %s: %w", t.name, err)
			return
		}
		t.validator, t.err = schema.Compile(raw, t.refinements...)
	})
	return t.validator, t.err
}

func (t *tool[In]) Generate(ctx context.Context, settings Settings, args map[string]any) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	v, err := t.compiled()
	if err != nil {
		return Result{}, err
	}
	if err := v.Validate(args); err != nil {
		return Result{}, err
	}

	in, err := jsonrpc.Decode[In](args)
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode arguments: %w", err)
	}
	if t.defaults != nil {
		t.defaults(&in)
	}

	if err := settings.Validate(); err != nil {
		return Result{}, err
	}

	renderer, err := render.Default()
	if err != nil {
		return Result{}, err
	}

	return t.run(env{settings: settings, renderer: renderer}, in)
}

// renderAll renders each (template, path) pair against the same data.
// Any failure discards everything rendered so far.
func (e env) renderAll(data render.Data, targets ...target) ([]File, error) {
	files := make([]File, 0, len(targets))
	for _, tg := range targets {
		content, err := e.renderer.Render(tg.template, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: tg.path, Content: content})
	}
	return files, nil
}

type target struct {
	template string
	path     string
}

// All returns every generator in registration order.
func All() []Generator {
	return []Generator{
		Entity(),
		ValueObject(),
		Repository(),
		DomainService(),
		DynamoDBRepository(),
		PostgreSQLRepository(),
		Module(),
	}
}

// Lookup finds a generator by tool name.
func Lookup(name string) (Generator, bool) {
	for _, g := range All() {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}
