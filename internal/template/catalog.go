package template

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrTemplateNotFound is returned by Resolve.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed builtin/*.json
var builtinFS embed.FS

// Entry is a template available for selection.
type Entry struct {
	Index   int
	Source  string // "builtin" or the file path
	Schema  *TemplateSchema
	Builtin bool
}

// Catalog lists built-in templates followed by those found in Dir. Files in
// Dir override built-ins with the same id.
type Catalog struct {
	Dir string
}

// Entries returns every template, numbered from 1. Invalid files in Dir are
// skipped.
func (c Catalog) Entries() ([]Entry, error) {
	byID := map[string]Entry{}
	var order []string

	files, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in templates: %w", err)
	}
	for _, f := range files {
		data, err := builtinFS.ReadFile(path.Join("builtin", f.Name()))
		if err != nil {
			return nil, err
		}
		schema, err := ParseSchema(data)
		if err != nil {
			return nil, fmt.Errorf("built-in template %s: %w", f.Name(), err)
		}
		byID[schema.ID] = Entry{Source: "builtin", Schema: schema, Builtin: true}
		order = append(order, schema.ID)
	}

	if c.Dir != "" {
		paths, err := filepath.Glob(filepath.Join(c.Dir, "*.json"))
		if err != nil {
			return nil, err
		}
		sort.Strings(paths)
		for _, p := range paths {
			schema, err := LoadSchema(p)
			if err != nil {
				continue // skip invalid templates
			}
			if _, seen := byID[schema.ID]; !seen {
				order = append(order, schema.ID)
			}
			byID[schema.ID] = Entry{Source: p, Schema: schema}
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		e := byID[id]
		e.Index = len(entries) + 1
		entries = append(entries, e)
	}
	return entries, nil
}

// Resolve finds a template by id, display name (case-insensitive) or the
// number shown by Entries.
func (c Catalog) Resolve(ref string) (*Entry, error) {
	entries, err := c.Entries()
	if err != nil {
		return nil, err
	}
	input := strings.TrimSpace(ref)
	for i := range entries {
		e := &entries[i]
		if strings.EqualFold(e.Schema.ID, input) || strings.EqualFold(e.Schema.Name, input) {
			return e, nil
		}
	}
	if n, err := strconv.Atoi(input); err == nil {
		for i := range entries {
			if entries[i].Index == n {
				return &entries[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, ref)
}
