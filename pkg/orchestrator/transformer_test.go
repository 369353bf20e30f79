package orchestrator_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/orchestrator"
)

const presetSchema = `{
  "title": "Crawler",
  "properties": {
    "startUrls": {"type": "array", "editor": "requestListSources"},
    "maxDepth": {"type": "integer", "title": "Depth"}
  }
}`

func TestPresetTransformer_JSON(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformer([]byte(`{
		"title": "Patched",
		"fields": {
			"startUrls": {"title": "Start URLs", "prefill": [{"url": "https://example.com"}]},
			"maxDepth": {"description": "Link depth", "default": 2}
		}
	}`))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}

	doc := inputschema.MustNewDocument(inputschema.SourceFromFile("x.json"), []byte(presetSchema))
	result, err := orchestrator.New(orchestrator.WithSchemaTransformer(preset)).Convert(context.Background(), orchestrator.Request{Document: &doc})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if result.Schema.Title != "Patched" {
		t.Fatalf("expected patched title, got %q", result.Schema.Title)
	}
	urls := result.Properties[0].(model.FixedCollectionProperty)
	if urls.DisplayName != "Start URLs" {
		t.Fatalf("expected patched display name, got %q", urls.DisplayName)
	}
	if len(urls.Default[model.CollectionItems]) != 1 {
		t.Fatalf("expected patched prefill, got %#v", urls.Default)
	}
	depth := result.Properties[1].(model.NumberProperty)
	if depth.Default != 2 || depth.Description != "Link depth" || depth.DisplayName != "Depth" {
		t.Fatalf("unexpected depth property %#v", depth)
	}
}

func TestPresetTransformer_YAMLFromFS(t *testing.T) {
	files := fstest.MapFS{
		"preset.yaml": {Data: []byte("fields:\n  maxDepth:\n    title: Crawl depth\n")},
	}
	preset, err := orchestrator.NewPresetTransformerFromFS(files, "preset.yaml")
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}

	schema := inputschema.MustParse([]byte(presetSchema))
	if err := preset.Transform(context.Background(), &schema); err != nil {
		t.Fatalf("transform: %v", err)
	}
	field, _ := schema.Field("maxDepth")
	if field.Title != "Crawl depth" {
		t.Fatalf("expected patched title, got %q", field.Title)
	}
}

func TestPresetTransformer_UnknownField(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformer([]byte(`{"fields": {"missing": {"title": "x"}}}`))
	if err != nil {
		t.Fatalf("new preset: %v", err)
	}
	schema := inputschema.MustParse([]byte(presetSchema))
	err = preset.Transform(context.Background(), &schema)
	if err == nil || !strings.Contains(err.Error(), `field "missing" not found`) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestNewPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(nil, "x"); err == nil {
		t.Fatalf("expected nil fs error")
	}
}
