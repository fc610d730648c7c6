package spec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/farmstack/go-apidetails-generator/internal/report"
)

// The five verbs the renderer recognizes. Any other method key in the
// document is ignored.
var recognizedMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"patch":  true,
	"delete": true,
}

// Render walks the document in deterministic order and produces the full
// report: preamble, then one section per (path, method) operation. Paths are
// visited lexicographically, methods lexicographically within a path.
func Render(doc *Document, title string) []string {
	lines := report.Header(title)
	lines = append(lines, report.Contract()...)

	paths := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		methods := doc.Paths[path]

		methodKeys := make([]string, 0, len(methods))
		for m := range methods {
			methodKeys = append(methodKeys, m)
		}
		sort.Strings(methodKeys)

		for _, method := range methodKeys {
			if !recognizedMethods[strings.ToLower(method)] {
				continue
			}
			op := methods[method]
			if op == nil {
				op = &Operation{}
			}
			lines = append(lines, renderOperation(doc, path, strings.ToUpper(method), op)...)
		}
	}

	return lines
}

func renderOperation(doc *Document, path, method string, op *Operation) []string {
	lines := []string{fmt.Sprintf("## %s %s", method, path)}

	if op.Summary != "" {
		lines = append(lines, "**Summary:** "+op.Summary)
	}
	if op.Description != "" {
		lines = append(lines, "**Description:** "+op.Description)
	}
	if len(op.Tags) > 0 {
		lines = append(lines, "**Tags:** "+strings.Join(op.Tags, ", "))
	}

	// An operation with its own security requirement is protected; otherwise
	// the document-level default applies. An empty list falls back.
	security := op.Security
	if len(security) == 0 {
		security = doc.Security
	}
	if len(security) > 0 {
		lines = append(lines, "**Auth:** Required")
	} else {
		lines = append(lines, "**Auth:** None")
	}
	lines = append(lines, "")

	if len(op.Parameters) > 0 {
		lines = append(lines, "**Parameters:**")
		for _, p := range op.Parameters {
			requirement := "optional"
			if p.Required {
				requirement = "required"
			}
			schemaType := "object"
			if p.Schema != nil && p.Schema.Type != "" {
				schemaType = p.Schema.Type
			}
			lines = append(lines, fmt.Sprintf("- %s %s (%s, %s)", p.In, p.Name, schemaType, requirement))
		}
		lines = append(lines, "")
	}

	if op.RequestBody != nil {
		lines = append(lines, "**Request Body:**")
		for _, ctype := range sortedKeys(op.RequestBody.Content) {
			schema := op.RequestBody.Content[ctype].Schema
			lines = append(lines, "- "+ctype+": "+schemaLabel(schema))
		}
		lines = append(lines, "")
	}

	if len(op.Responses) > 0 {
		lines = append(lines, "**Responses:**")
		for _, code := range sortedResponseCodes(op.Responses) {
			resp := op.Responses[code]
			lines = append(lines, fmt.Sprintf("- %s: %s", code, resp.Description))
			for _, ctype := range sortedKeys(resp.Content) {
				schema := resp.Content[ctype].Schema
				lines = append(lines, "  - "+ctype+": "+schemaLabel(schema))
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, "---", "")
	return lines
}

// schemaLabel prefers a named schema reference over an inline type over a
// generic fallback label.
func schemaLabel(schema *Schema) string {
	if schema != nil {
		if schema.Ref != "" {
			return schema.Ref
		}
		if schema.Type != "" {
			return schema.Type
		}
	}
	return "schema"
}

// sortedResponseCodes orders status codes in ascending string order.
func sortedResponseCodes(responses map[string]Response) []string {
	codes := make([]string, 0, len(responses))
	for code := range responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func sortedKeys(content map[string]MediaType) []string {
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
