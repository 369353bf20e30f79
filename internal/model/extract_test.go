package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

func TestExtractInput(t *testing.T) {
	schema := inputschema.InputSchema{
		Properties: []inputschema.NamedField{
			{Key: "startUrls", Field: inputschema.Field{Type: "array", Editor: "requestListSources"}},
			{Key: "globs", Field: inputschema.Field{Type: "array", Editor: "stringList"}},
			{Key: "headers", Field: inputschema.Field{Type: "array", Editor: "keyValue"}},
			{Key: "proxy", Field: inputschema.Field{Type: "object", Editor: "proxy"}},
			{Key: "extra", Field: inputschema.Field{Type: "object", Editor: "json"}},
			{Key: "maxDepth", Field: inputschema.Field{Type: "integer"}},
			{Key: "unset", Field: inputschema.Field{Type: "string"}},
		},
	}
	props, _ := New(Options{}).Convert(schema)

	params := map[string]any{
		"startUrls": map[string]any{"items": []any{map[string]any{"url": "https://a"}}},
		"globs":     map[string]any{"values": []any{map[string]any{"value": "*.html"}, map[string]any{"value": "*.pdf"}}},
		"headers":   map[string]any{"pairs": []any{map[string]any{"key": "X", "value": "1"}}},
		"proxy":     `{"useApifyProxy":true}`,
		"extra":     "  ",
		"maxDepth":  float64(3),
	}

	got, err := ExtractInput(props, params)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := map[string]any{
		"startUrls": []any{map[string]any{"url": "https://a"}},
		"globs":     []any{"*.html", "*.pdf"},
		"headers":   []any{map[string]any{"key": "X", "value": "1"}},
		"proxy":     map[string]any{"useApifyProxy": true},
		"maxDepth":  float64(3),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("input mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractInput_EmptyCollection(t *testing.T) {
	props, _ := New(Options{}).Convert(single("urls", inputschema.Field{Type: "array", Editor: "requestListSources"}))

	got, err := ExtractInput(props, map[string]any{"urls": map[string]any{}})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"urls": []any{}}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractInput_InvalidJSON(t *testing.T) {
	props, _ := New(Options{}).Convert(single("cfg", inputschema.Field{Type: "object", Editor: "json"}))

	_, err := ExtractInput(props, map[string]any{"cfg": "{not json"})
	if !errors.Is(err, ErrInvalidJSONParameter) {
		t.Fatalf("expected ErrInvalidJSONParameter, got %v", err)
	}
}
