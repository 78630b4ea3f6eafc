// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"
	"text/template"

	"github.com/mattes3/mcp4ddd/src/internal/helper/gc"
	"github.com/mattes3/mcp4ddd/src/mcp-server/templates"
)

// ErrTemplateNotFound is returned when a generator asks for a template that
// was not part of the parsed set.
var ErrTemplateNotFound = errors.New("template not found")

// CodeTemplates is the glob matching the embedded TypeScript templates.
const CodeTemplates = "code/*.tmpl"

// Data is the flat record a template is executed against.
type Data = map[string]any

// Renderer executes a fixed set of parsed templates.
//
// Templates are parsed with missingkey=error, so a placeholder without a value
// fails the render instead of printing "<no value>".
//
// A Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	root *template.Template
	pool gc.Pool
}

// New parses the templates matching patterns in fsys.
//
// Parameters:
//   - fsys: File system holding the templates
//   - patterns: Glob patterns passed to [template.ParseFS]
//
// Returns:
//   - *Renderer: Renderer over the parsed set
//   - error: Parse error, or an error when no pattern matched
func New(fsys fs.FS, patterns ...string) (*Renderer, error) {
	root, err := template.New("").
		Option("missingkey=error").
		Funcs(Funcs()).
		ParseFS(fsys, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{root: root, pool: gc.Default}, nil
}

// Render executes the named template against data and returns the output.
// Nothing is returned on failure; partial output is discarded.
func (r *Renderer) Render(name string, data Data) (string, error) {
	t := r.root.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	return gc.Capture(r.pool, func(w gc.Buffer) error {
		if err := t.Execute(w, data); err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
		return nil
	})
}

// Names lists the parsed template names in sorted order.
func (r *Renderer) Names() []string {
	var names []string
	for _, t := range r.root.Templates() {
		if t.Name() != "" && t.Tree != nil {
			names = append(names, t.Name())
		}
	}
	slices.Sort(names)
	return names
}

var defaultRenderer = sync.OnceValues(func() (*Renderer, error) {
	return New(templates.MagicEmbed, CodeTemplates)
})

// Default returns the renderer over the embedded code templates.
// Parsing happens once per process.
func Default() (*Renderer, error) { return defaultRenderer() }
