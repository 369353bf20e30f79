package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

const payload = `{"properties":{"q":{"type":"string"}}}`

type fakeFetcher struct {
	raw []byte
	err error
	ids []string
}

func (f *fakeFetcher) InputSchema(_ context.Context, id string) ([]byte, error) {
	f.ids = append(f.ids, id)
	return f.raw, f.err
}

type customSource struct{}

func (customSource) Kind() inputschema.SourceKind { return "carrier-pigeon" }
func (customSource) Location() string             { return "coop" }

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "INPUT_SCHEMA.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := New(inputschema.NewLoaderOptions()).Load(context.Background(), inputschema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("unexpected payload %s", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("unexpected location %q", doc.Location())
	}

	_, err = New(inputschema.NewLoaderOptions()).Load(context.Background(), inputschema.SourceFromFile(filepath.Join(t.TempDir(), "missing.json")))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{"schemas/input.yaml": {Data: []byte("properties:\n  q:\n    type: string\n")}}
	loader := New(inputschema.NewLoaderOptions(inputschema.WithFileSystem(files)))

	doc, err := loader.Load(context.Background(), inputschema.SourceFromFS("schemas/input.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Format() != inputschema.FormatYAML {
		t.Fatalf("expected yaml document, got %q", doc.Format())
	}

	_, err = New(inputschema.NewLoaderOptions()).Load(context.Background(), inputschema.SourceFromFS("schemas/input.yaml"))
	if err == nil || !strings.Contains(err.Error(), "fs is nil") {
		t.Fatalf("expected nil fs error, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	disabled := New(inputschema.NewLoaderOptions())
	if _, err := disabled.Load(context.Background(), inputschema.SourceFromURL(server.URL)); err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}

	loader := New(inputschema.NewLoaderOptions(inputschema.WithHTTPFallback(0)))
	doc, err := loader.Load(context.Background(), inputschema.SourceFromURL(server.URL+"/schema.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("unexpected payload %s", doc.Raw())
	}

	_, err = loader.Load(context.Background(), inputschema.SourceFromURL(server.URL+"/missing"))
	if err == nil || !strings.Contains(err.Error(), "unexpected status 404") {
		t.Fatalf("expected status error, got %v", err)
	}

	custom := New(inputschema.NewLoaderOptions(inputschema.WithHTTPClient(server.Client())))
	if _, err := custom.Load(context.Background(), inputschema.SourceFromURL(server.URL)); err != nil {
		t.Fatalf("load with custom client: %v", err)
	}
}

func TestLoader_Actor(t *testing.T) {
	fetcher := &fakeFetcher{raw: []byte(payload)}
	loader := &Loader{actors: fetcher}

	doc, err := loader.Load(context.Background(), inputschema.SourceFromActor("apify/web-scraper"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != payload || doc.Source().Kind() != inputschema.SourceKindActor {
		t.Fatalf("unexpected document %s from %v", doc.Raw(), doc.Source())
	}
	if len(fetcher.ids) != 1 || fetcher.ids[0] != "apify/web-scraper" {
		t.Fatalf("unexpected fetch calls %v", fetcher.ids)
	}

	failing := &Loader{actors: &fakeFetcher{err: inputschema.ErrActorNotFound}}
	if _, err := failing.Load(context.Background(), inputschema.SourceFromActor("nobody/nothing")); !errors.Is(err, inputschema.ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound, got %v", err)
	}

	empty := &Loader{actors: &fakeFetcher{raw: []byte("  ")}}
	if _, err := empty.Load(context.Background(), inputschema.SourceFromActor("a/b")); err == nil {
		t.Fatalf("expected error for empty schema payload")
	}
}

func TestLoader_Errors(t *testing.T) {
	loader := New(inputschema.NewLoaderOptions())

	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected nil source error")
	}
	if _, err := loader.Load(context.Background(), customSource{}); err == nil || !strings.Contains(err.Error(), "unsupported source kind") {
		t.Fatalf("expected unsupported kind error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loader.Load(ctx, inputschema.SourceFromFile("anything.json")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
