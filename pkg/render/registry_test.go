package render_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.Properties, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry(stubRenderer{name: "yaml"}, stubRenderer{name: "JSON"})

	if diff := cmp.Diff([]string{"json", "yaml"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	got, err := registry.Get(" Yaml ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "yaml" {
		t.Fatalf("expected yaml renderer, got %q", got.Name())
	}
	if !registry.Has("json") {
		t.Fatalf("expected json to be registered")
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := render.NewRegistry(stubRenderer{name: "json"})

	if err := registry.Register(stubRenderer{name: "json"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{name: "  "}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}

	_, err := registry.Get("xml")
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "available: json") {
		t.Fatalf("expected available formats in error, got %v", err)
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	render.NewRegistry(stubRenderer{name: "a"}, stubRenderer{name: "A"})
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := render.NewRegistry()

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			registry.MustRegister(stubRenderer{name: name})
			_ = registry.List()
			_ = registry.Has(name)
		}(name)
	}
	wg.Wait()

	if got := len(registry.List()); got != 4 {
		t.Fatalf("expected 4 renderers, got %d", got)
	}
}
