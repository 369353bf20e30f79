// Package nodegen converts actor input schemas into node parameter
// descriptors and renders them as JSON, YAML or a text summary.
package nodegen

import (
	"context"
	"errors"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/orchestrator"
	"github.com/goliatone/go-nodegen/pkg/render"
)

// RenderOptions carries schema-level context for renderers.
type RenderOptions = render.RenderOptions

// Properties aliases the ordered converter output.
type Properties = model.Properties

// Warning aliases a field-level problem recovered during conversion.
type Warning = model.Warning

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Convert parses the schema held in raw and converts it to properties. It is
// the smallest entry point for callers that already hold the payload.
func Convert(raw []byte, options ...model.ConverterOption) (Properties, []Warning, error) {
	if len(raw) == 0 {
		return nil, nil, errors.New("nodegen: raw schema is empty")
	}
	schema, err := inputschema.Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	props, warnings := model.NewConverter(options...).Convert(schema)
	return props, warnings, nil
}

// Generate loads the input schema source, converts it, and renders the result
// with the named renderer. An empty renderer name selects JSON.
func Generate(ctx context.Context, source inputschema.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader
// stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc inputschema.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}
