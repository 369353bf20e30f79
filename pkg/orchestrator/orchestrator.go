package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goliatone/go-nodegen/internal/logger"
	internalLoader "github.com/goliatone/go-nodegen/internal/inputschema/loader"
	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/render"
	jsonrenderer "github.com/goliatone/go-nodegen/pkg/renderers/json"
	"github.com/goliatone/go-nodegen/pkg/renderers/text"
	yamlrenderer "github.com/goliatone/go-nodegen/pkg/renderers/yaml"
)

const defaultRendererName = "json"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom input schema loader.
func WithLoader(loader inputschema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithConverter injects a custom property converter.
func WithConverter(converter model.Converter) Option {
	return func(o *Orchestrator) {
		o.converter = converter
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchemaTransformer registers a Transformer that patches the parsed input
// schema before conversion.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that run against the converted
// properties before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger routes pipeline diagnostics to l. The default converter logs its
// field warnings there too.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

// Orchestrator coordinates the full pipeline from input schema source to
// rendered output. It applies sensible defaults (JSON renderer, built-in
// loader and converter) while remaining open to dependency injection.
type Orchestrator struct {
	loader          inputschema.Loader
	converter       model.Converter
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
	decorators      []model.Decorator
	transformer     Transformer
	logger          logger.Logger
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to convert an input schema.
type Request struct {
	// Source identifies where the input schema lives. Optional when Document
	// is supplied.
	Source inputschema.Source

	// Document allows callers to bypass the loader when they already hold the
	// raw schema.
	Document *inputschema.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions is passed to the renderer. Title, Description, Source and
	// Warnings are filled from the conversion when left empty.
	RenderOptions render.RenderOptions
}

// Result is the outcome of a conversion.
type Result struct {
	Document   inputschema.Document
	Schema     inputschema.InputSchema
	Properties model.Properties
	Warnings   []model.Warning
}

// Convert executes the loader -> parser -> converter sequence. Field-level
// problems do not fail the call; they are returned in Result.Warnings.
func (o *Orchestrator) Convert(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	schema, err := inputschema.ParseDocument(doc)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: parse input schema: %w", err)
	}
	if err := o.applyTransformer(ctx, &schema); err != nil {
		return Result{}, err
	}

	props, warnings := o.converter.Convert(schema)
	if err := o.applyDecorators(props); err != nil {
		return Result{}, err
	}

	o.logger.Debug("converted input schema",
		"source", doc.Location(),
		"properties", len(props),
		"warnings", len(warnings),
	)

	return Result{
		Document:   doc,
		Schema:     schema,
		Properties: props,
		Warnings:   warnings,
	}, nil
}

// Generate runs Convert and renders the properties with the requested
// renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Convert(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Title == "" {
		options.Title = result.Schema.Title
	}
	if options.Description == "" {
		options.Description = result.Schema.Description
	}
	if options.Source == "" {
		options.Source = result.Document.Location()
	}
	if options.Warnings == nil {
		options.Warnings = result.Warnings
	}

	output, err := renderer.Render(ctx, result.Properties, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (inputschema.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return inputschema.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return inputschema.Document{}, fmt.Errorf("orchestrator: load input schema: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

// applyDecorators runs every decorator and rejects changes to the property
// names or their order.
func (o *Orchestrator) applyDecorators(props model.Properties) error {
	if len(o.decorators) == 0 {
		return nil
	}
	names := props.Names()
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(props); err != nil {
			return fmt.Errorf("orchestrator: decorate properties: %w", err)
		}
	}
	if !slices.Equal(names, props.Names()) {
		return errors.New("orchestrator: decorators must not rename or reorder properties")
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, schema *inputschema.InputSchema) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, schema); err != nil {
		return fmt.Errorf("orchestrator: transform input schema: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = logger.Nop()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(inputschema.NewLoaderOptions())
	}
	if o.converter == nil {
		o.converter = model.NewConverter(model.WithLogger(o.logger))
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

// DefaultRegistry returns a registry holding the built-in json, yaml and text
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	textRenderer, err := text.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	return render.NewRegistry(jsonrenderer.New(), yamlrenderer.New(), textRenderer), nil
}
