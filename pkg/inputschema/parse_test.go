package inputschema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/testsupport"
)

func TestParse_JSONKeepsPropertyOrder(t *testing.T) {
	schema, err := inputschema.Parse(testsupport.Fixture(t, testsupport.WebScraperFixture))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []string{
		"startUrls", "globs", "pageFunction", "maxCrawlingDepth", "proxyConfiguration",
		"proxyRotation", "headers", "resourceTypes", "downloadSince", "injectJQuery", "customData",
	}
	if diff := cmp.Diff(want, schema.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	if schema.Title != "Web Scraper input" || schema.SchemaVersion != 1 {
		t.Fatalf("unexpected envelope %q %v", schema.Title, schema.SchemaVersion)
	}
	if !schema.IsRequired("pageFunction") || schema.IsRequired("globs") {
		t.Fatalf("unexpected required flags %v", schema.Required)
	}

	depth, ok := schema.Field("maxCrawlingDepth")
	if !ok {
		t.Fatalf("expected maxCrawlingDepth field")
	}
	if depth.Minimum == nil || *depth.Minimum != 0 || depth.Maximum != nil {
		t.Fatalf("unexpected bounds %v %v", depth.Minimum, depth.Maximum)
	}

	rotation, _ := schema.Field("proxyRotation")
	if !rotation.HasEnum() || len(rotation.EnumTitles) != 3 {
		t.Fatalf("expected enum with titles, got %#v", rotation)
	}

	resources, _ := schema.Field("resourceTypes")
	if resources.Items == nil || len(resources.Items.Enum) != 3 || len(resources.Items.EnumTitles) != 2 {
		t.Fatalf("unexpected items %#v", resources.Items)
	}
}

func TestParse_YAMLKeepsPropertyOrder(t *testing.T) {
	raw := []byte(`
title: YAML schema
properties:
  zeta:
    type: string
    editor: textarea
  alpha:
    type: integer
    minimum: 1
    maximum: 10
  mid:
    type: array
    editor: stringList
    prefill: [a, b]
required: [alpha]
`)
	schema, err := inputschema.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, schema.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	alpha, _ := schema.Field("alpha")
	if alpha.Maximum == nil || *alpha.Maximum != 10 {
		t.Fatalf("unexpected maximum %v", alpha.Maximum)
	}
	mid, _ := schema.Field("mid")
	if diff := cmp.Diff([]any{"a", "b"}, mid.Prefill); diff != "" {
		t.Fatalf("prefill mismatch (-want +got):\n%s", diff)
	}
	if !schema.IsRequired("alpha") {
		t.Fatalf("expected alpha to be required")
	}
}

func TestParse_EnumPresence(t *testing.T) {
	schema := inputschema.MustParse([]byte(`{"properties":{"empty":{"type":"string","enum":[]},"none":{"type":"string"}}}`))

	empty, _ := schema.Field("empty")
	if !empty.HasEnum() {
		t.Fatalf("an empty enum list still counts as present")
	}
	none, _ := schema.Field("none")
	if none.HasEnum() {
		t.Fatalf("expected no enum")
	}
}

func TestParse_MissingProperties(t *testing.T) {
	for _, raw := range []string{`{"title":"x"}`, `{"properties":null}`, "title: x\n"} {
		schema, err := inputschema.Parse([]byte(raw))
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if len(schema.Properties) != 0 {
			t.Fatalf("expected no properties for %q", raw)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"":                     "raw schema is empty",
		`{"properties":`:       "invalid JSON",
		"- a\n- b\n":           "root must be an object",
		`{"properties":[1,2]}`: "properties must be an object",
		"properties: [1, 2]\n": "properties must be an object",
	}
	for raw, want := range cases {
		_, err := inputschema.Parse([]byte(raw))
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("Parse(%q): expected error containing %q, got %v", raw, want, err)
		}
	}
}

func TestParse_LenientFieldShapes(t *testing.T) {
	cases := map[string][]byte{
		"json": []byte(`{
			"schemaVersion": "1",
			"properties": {
				"a": {"type": "string"},
				"b": {"type": ["string", "null"]},
				"c": {"type": "boolean"},
				"d": {"type": "string", "editor": "select", "enum": [1, 2], "enumTitles": [1, null]},
				"e": {"type": "integer", "minimum": "1", "maximum": "lots"},
				"f": "not an object"
			},
			"required": ["a", 5]
		}`),
		"yaml": []byte(`schemaVersion: 1
properties:
  a: {type: string}
  b: {type: [string, "null"]}
  c: {type: boolean}
  d: {type: string, editor: select, enum: [1, 2], enumTitles: [1, null]}
  e: {type: integer, minimum: "1", maximum: lots}
  f: not an object
required: [a, 5]
`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			schema, err := inputschema.Parse(raw)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, schema.Keys()); diff != "" {
				t.Fatalf("key order mismatch (-want +got):\n%s", diff)
			}
			if schema.SchemaVersion != 1 {
				t.Fatalf("unexpected schema version %d", schema.SchemaVersion)
			}
			if diff := cmp.Diff([]string{"a", "5"}, schema.Required); diff != "" {
				t.Fatalf("required mismatch (-want +got):\n%s", diff)
			}

			b, _ := schema.Field("b")
			if b.Type != `["string","null"]` {
				t.Fatalf("expected list type kept as text, got %q", b.Type)
			}
			d, _ := schema.Field("d")
			if diff := cmp.Diff([]string{"1", ""}, d.EnumTitles); diff != "" {
				t.Fatalf("enum titles mismatch (-want +got):\n%s", diff)
			}
			e, _ := schema.Field("e")
			if e.Minimum == nil || *e.Minimum != 1 || e.Maximum != nil {
				t.Fatalf("unexpected bounds %v %v", e.Minimum, e.Maximum)
			}
			f, _ := schema.Field("f")
			if f.Type != "" {
				t.Fatalf("expected empty field for non-object descriptor, got %#v", f)
			}

			props, warnings := testsupport.MustConvert(t, raw)
			if len(props) != 6 {
				t.Fatalf("expected 6 properties, got %d", len(props))
			}
			if len(warnings) != 2 || warnings[0].Field != "b" || warnings[1].Field != "f" {
				t.Fatalf("expected warnings for b and f, got %v", warnings)
			}
			if !errors.Is(warnings[0].Err, model.ErrUnsupportedFieldType) {
				t.Fatalf("expected unsupported type warning, got %v", warnings[0].Err)
			}
			if props[1].Type() != model.PropertyTypeString || props[2].Type() != model.PropertyTypeBoolean {
				t.Fatalf("unexpected variants %s %s", props[1].Type(), props[2].Type())
			}
		})
	}
}

func TestParseDocument_AddsSource(t *testing.T) {
	doc := inputschema.MustNewDocument(inputschema.SourceFromFile("broken.json"), []byte(`{"properties":[]}`))
	_, err := inputschema.ParseDocument(doc)
	if err == nil || !strings.Contains(err.Error(), "broken.json") {
		t.Fatalf("expected source in error, got %v", err)
	}
}
