// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/mattes3/mcp4ddd/src/internal/scaffold/generator"
)

// renderMarkdown renders headers and rows as a markdown table.
func renderMarkdown(headers []string, rows [][]string) (string, error) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return "", err
	}
	if err := table.Render(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTools renders the name and title of each generator as a markdown table.
func RenderTools(gens []generator.Generator) (string, error) {
	rows := make([][]string, 0, len(gens))
	for i, g := range gens {
		rows = append(rows, []string{strconv.Itoa(i + 1), g.Name(), g.Title()})
	}
	return renderMarkdown([]string{"#", "Tool", "Title"}, rows)
}

// RenderFiles renders the path and line count of each generated file as a
// markdown table.
func RenderFiles(result generator.Result) (string, error) {
	if len(result.Files) == 0 {
		return "No files generated", nil
	}

	rows := make([][]string, 0, len(result.Files))
	for i, f := range result.Files {
		lines := strings.Count(f.Content, "\n")
		if f.Content != "" && !strings.HasSuffix(f.Content, "\n") {
			lines++
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), f.Path, strconv.Itoa(lines)})
	}
	return renderMarkdown([]string{"#", "Path", "Lines"}, rows)
}
