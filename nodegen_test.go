package nodegen_test

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-nodegen"
	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/testsupport"
)

func TestConvert(t *testing.T) {
	props, warnings, err := nodegen.Convert(testsupport.Fixture(t, testsupport.WebScraperFixture), model.WithStrippedHTML())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	if len(props) != 11 {
		t.Fatalf("expected 11 properties, got %d", len(props))
	}
	if strings.Contains(props[3].Common().Description, "<code>") {
		t.Fatalf("expected stripped description, got %q", props[3].Common().Description)
	}
}

func TestConvert_Empty(t *testing.T) {
	if _, _, err := nodegen.Convert(nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestGenerateFromDocument(t *testing.T) {
	doc := testsupport.FixtureDocument(t, testsupport.WebScraperFixture)

	out, err := nodegen.GenerateFromDocument(context.Background(), doc, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 11 || decoded[0]["name"] != "startUrls" {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestGenerate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, []byte(`{"properties":{"q":{"type":"string","title":"Query"}}}`), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	if doc := testsupport.LoadDocument(t, path); doc.Location() != path {
		t.Fatalf("unexpected location %q", doc.Location())
	}

	out, err := nodegen.Generate(context.Background(), inputschema.SourceFromFile(path), "yaml")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), "displayName: Query") {
		t.Fatalf("unexpected yaml %s", out)
	}
}

func TestNewLoader_FS(t *testing.T) {
	loader := nodegen.NewLoader(inputschema.WithFileSystem(nodegen.EmbeddedTemplates()))
	doc, err := loader.Load(context.Background(), inputschema.SourceFromFS("templates/summary.tmpl"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Raw()) == 0 {
		t.Fatalf("expected template payload")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(nodegen.EmbeddedTemplates(), "templates/summary.tmpl"); err != nil {
		t.Fatalf("expected summary template: %v", err)
	}
}
