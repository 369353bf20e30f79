package testsupport

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// WebScraperFixture names the bundled crawler schema covering every editor.
const WebScraperFixture = "web_scraper.json"

// Fixture returns the raw bytes of a bundled schema fixture.
func Fixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := fixtures.ReadFile(path.Join("fixtures", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// FixtureDocument wraps a bundled fixture in a Document with an fs source.
func FixtureDocument(t *testing.T, name string) inputschema.Document {
	t.Helper()

	doc, err := inputschema.NewDocument(inputschema.SourceFromFS(name), Fixture(t, name))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

// LoadDocument reads a fixture from disk and builds a Document using a file
// source.
func LoadDocument(t *testing.T, path string) inputschema.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (inputschema.Document, error) {
	if path == "" {
		return inputschema.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return inputschema.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := inputschema.NewDocument(inputschema.SourceFromFile(path), data)
	if err != nil {
		return inputschema.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustParseSchema parses raw into an InputSchema, failing the test on error.
func MustParseSchema(t *testing.T, raw []byte) inputschema.InputSchema {
	t.Helper()

	schema, err := inputschema.Parse(raw)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return schema
}

// MustConvert parses raw and converts it with the default converter.
func MustConvert(t *testing.T, raw []byte, options ...model.ConverterOption) (model.Properties, []model.Warning) {
	t.Helper()

	return model.NewConverter(options...).Convert(MustParseSchema(t, raw))
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
