// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/schema"
)

// File is one generated source file.
type File struct {
	Path    string `json:"path" jsonschema:"description=the path where the generated source file output should be written"`
	Content string `json:"content" jsonschema:"description=the content to write into the source file"`
}

// Result is the output of every generator.
type Result struct {
	ContentSummary string `json:"contentSummary" jsonschema:"description=a short summary of what the generator produced with an instruction for the AI assistant about how to proceed"`
	Files          []File `json:"files"`
}

// JSON returns the compact JSON encoding used as the text content of a tool
// result. Generated TypeScript is not HTML-escaped, so "<" and ">" stay as
// they are.
func (r Result) JSON() (string, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Paths lists the file paths in order.
func (r Result) Paths() []string {
	out := make([]string, len(r.Files))
	for i, f := range r.Files {
		out[i] = f.Path
	}
	return out
}

// Layer is the architectural layer a component is generated into.
type Layer string

const (
	LayerDomain      Layer = "domain"
	LayerApplication Layer = "application"
)

// Folders below a layer.
const (
	folderDomainModel = "src/domainmodel"
	folderPersistence = "src/adapter/persistence"
	folderTest        = "test"
)

// location builds output paths of the form
// {parent}/{boundedContext}/{layer}/{folder}/{file}.
type location struct {
	parent         string
	boundedContext string
	layer          Layer
}

func (s Settings) at(boundedContext string, layer Layer) location {
	return location{
		parent:         s.BoundedContextsParentFolder,
		boundedContext: boundedContext,
		layer:          layer,
	}
}

func (l location) file(folder, name string) string {
	return path.Join(l.parent, l.boundedContext, string(l.layer), folder, name)
}

// assistantAlerts close every summary. The generator returns content only,
// writing is up to the caller.
var assistantAlerts = []string{
	"Assistant alert: Write the code to the named output files,",
	"exactly as the generator produced it.",
	"The generator itself does not write the code to disk.",
	"Assistant alert: Disregard compilation errors in the generated code",
	"and leave them for the human to fix.",
}

// summarize joins the lead sentences with the assistant alerts.
func summarize(lead ...string) string {
	return strings.Join(append(lead, assistantAlerts...), " ")
}

// FailureMessage renders a Generate error the way tool callers see it.
// Validation failures list every issue; anything else names the tool.
func FailureMessage(tool string, err error) string {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return "Invalid parameters: " + verr.Error()
	}
	return fmt.Sprintf("The %s tool failed: %v", tool, err)
}
