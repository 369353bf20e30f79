package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

// Transformer patches a parsed input schema before conversion. It may change
// field attributes but must not add, drop or reorder fields.
type Transformer interface {
	Transform(ctx context.Context, schema *inputschema.InputSchema) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, schema *inputschema.InputSchema) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, schema *inputschema.InputSchema) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, schema)
}

// PresetTransformer applies declarative overrides loaded from a JSON or YAML
// document:
//
//	{
//	  "title": "Website crawler",
//	  "fields": {
//	    "startUrls": {"title": "Start URLs", "prefill": [{"url": "https://example.com"}]},
//	    "maxDepth": {"description": "Link depth", "default": 2}
//	  }
//	}
//
// Every field key must exist in the schema.
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title       string                `json:"title" yaml:"title"`
	Description string                `json:"description" yaml:"description"`
	Fields      map[string]fieldPatch `json:"fields" yaml:"fields"`
}

type fieldPatch struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Editor      string `json:"editor" yaml:"editor"`
	Default     any    `json:"default" yaml:"default"`
	Prefill     any    `json:"prefill" yaml:"prefill"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}

	var document presetDocument
	var err error
	if inputschema.DetectFormat(data) == inputschema.FormatJSON {
		err = json.Unmarshal(data, &document)
	} else {
		err = yaml.Unmarshal(data, &document)
	}
	if err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied schema.
func (t *PresetTransformer) Transform(ctx context.Context, schema *inputschema.InputSchema) error {
	if schema == nil {
		return errors.New("preset transformer: schema is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		schema.Title = t.document.Title
	}
	if t.document.Description != "" {
		schema.Description = t.document.Description
	}

	index := make(map[string]int, len(schema.Properties))
	for i, named := range schema.Properties {
		index[named.Key] = i
	}

	keys := make([]string, 0, len(t.document.Fields))
	for key := range t.document.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		i, ok := index[key]
		if !ok {
			return fmt.Errorf("preset transformer: field %q not found", key)
		}
		applyFieldPatch(&schema.Properties[i].Field, t.document.Fields[key])
	}
	return nil
}

func applyFieldPatch(field *inputschema.Field, patch fieldPatch) {
	if patch.Title != "" {
		field.Title = patch.Title
	}
	if patch.Description != "" {
		field.Description = patch.Description
	}
	if patch.Editor != "" {
		field.Editor = patch.Editor
	}
	if patch.Default != nil {
		field.Default = patch.Default
	}
	if patch.Prefill != nil {
		field.Prefill = patch.Prefill
	}
}
