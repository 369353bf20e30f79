// Package text renders a human readable summary of a property table, meant
// for reviewing a conversion in the terminal.
package text

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/render"
	rendertemplate "github.com/goliatone/go-nodegen/pkg/render/template"
	"github.com/goliatone/go-nodegen/pkg/render/template/pongo"
)

const templateName = "templates/summary.tmpl"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/summary.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the text summary.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a text renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("text renderer: template %q: %w", templateName, err)
		}
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS), pongo.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("text renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}

	return &Renderer{templates: templateRenderer}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the summary for props, headed by the schema title and source.
func (r *Renderer) Render(ctx context.Context, props model.Properties, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	warnings := make([]string, 0, len(options.Warnings))
	for _, warn := range options.Warnings {
		warnings = append(warnings, warn.Error())
	}

	data := map[string]any{
		"title":      options.Title,
		"source":     options.Source,
		"properties": summarize(props),
		"warnings":   warnings,
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("text renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

type summaryProperty struct {
	Name        string             `json:"name"`
	DisplayName string             `json:"displayName"`
	Description string             `json:"description"`
	Type        model.PropertyType `json:"type"`
	Required    bool               `json:"required"`
	Default     any                `json:"default"`
	Choices     []string           `json:"choices,omitempty"`
	Hints       []string           `json:"hints,omitempty"`
}

func summarize(props model.Properties) []summaryProperty {
	out := make([]summaryProperty, 0, len(props))
	for _, prop := range props {
		desc := model.Describe(prop)
		entry := summaryProperty{
			Name:        desc.Name,
			DisplayName: desc.DisplayName,
			Description: desc.Description,
			Type:        desc.Type,
			Required:    desc.Required,
			Default:     desc.Default,
		}

		switch p := prop.(type) {
		case model.OptionsProperty:
			entry.Choices = optionLabels(p.Options)
		case model.MultiOptionsProperty:
			entry.Choices = optionLabels(p.Options)
		case model.FixedCollectionProperty:
			for _, sub := range p.Collection.Values {
				entry.Choices = append(entry.Choices, p.Collection.Name+"."+sub.Name)
			}
		}

		if opts := desc.TypeOptions; opts != nil {
			if opts.Rows > 0 {
				entry.Hints = append(entry.Hints, fmt.Sprintf("rows=%d", opts.Rows))
			}
			if opts.MinValue != nil {
				entry.Hints = append(entry.Hints, fmt.Sprintf("min=%v", *opts.MinValue))
			}
			if opts.MaxValue != nil {
				entry.Hints = append(entry.Hints, fmt.Sprintf("max=%v", *opts.MaxValue))
			}
			if opts.MultipleValues {
				entry.Hints = append(entry.Hints, "multipleValues")
			}
		}
		out = append(out, entry)
	}
	return out
}

func optionLabels(options []model.Option) []string {
	labels := make([]string, 0, len(options))
	for _, opt := range options {
		labels = append(labels, fmt.Sprintf("%s=%v", opt.Name, opt.Value))
	}
	return labels
}
