package text_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/render"
	"github.com/goliatone/go-nodegen/pkg/renderers/text"
)

func TestRenderer_Render(t *testing.T) {
	renderer, err := text.New()
	if err != nil {
		t.Fatalf("text.New: %v", err)
	}
	if renderer.Name() != "text" {
		t.Fatalf("unexpected renderer name: %s", renderer.Name())
	}

	lower, upper := 1.0, 10.0
	props := model.Properties{
		model.NumberProperty{
			Base:     model.Base{DisplayName: "Max depth", Name: "maxDepth", Required: true, Description: " How deep "},
			Default:  3,
			MinValue: &lower,
			MaxValue: &upper,
		},
		model.MultiOptionsProperty{
			Base:    model.Base{DisplayName: "Formats", Name: "formats"},
			Default: []any{"pdf"},
			Options: []model.Option{{Name: "PDF", Value: "pdf"}},
		},
		model.FixedCollectionProperty{
			Base: model.Base{DisplayName: "Headers", Name: "headers"},
			Collection: model.Collection{
				Name:        model.CollectionPairs,
				DisplayName: "Key-Value Pairs",
				Values:      []model.SubField{{DisplayName: "Key", Name: "key"}, {DisplayName: "Value", Name: "value"}},
			},
		},
	}

	out, err := renderer.Render(context.Background(), props, render.RenderOptions{
		Title:  "Crawler <input>",
		Source: "actor:apify/web-scraper",
		Warnings: []model.Warning{{
			Field:  "weird",
			Detail: `type "null" rendered as string`,
			Err:    model.ErrUnsupportedFieldType,
		}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	summary := string(out)
	for _, fragment := range []string{
		"Crawler <input>",
		"Source: actor:apify/web-scraper",
		"Properties: 3",
		"1. maxDepth [number] (required)",
		"Label: Max depth",
		"Description: How deep",
		"Default: 3",
		"Hints: min=1, max=10",
		"2. formats [multiOptions]",
		`Default: ["pdf"]`,
		"Choices: PDF=pdf",
		"3. headers [fixedCollection]",
		"Default: {}",
		"Choices: pairs.key, pairs.value",
		"Hints: multipleValues",
		"Warnings:",
		`field "weird": unsupported field type`,
	} {
		if !strings.Contains(summary, fragment) {
			t.Fatalf("expected %q in summary:\n%s", fragment, summary)
		}
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/summary.tmpl": {Data: []byte("{% for p in properties %}{{ p.name }};{% endfor %}")},
	}
	renderer, err := text.New(text.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("text.New: %v", err)
	}

	props := model.Properties{
		model.BooleanProperty{Base: model.Base{Name: "a"}},
		model.BooleanProperty{Base: model.Base{Name: "b"}},
	}
	out, err := renderer.Render(context.Background(), props, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "a;b;" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNew_MissingTemplate(t *testing.T) {
	_, err := text.New(text.WithTemplatesFS(fstest.MapFS{}))
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
}
