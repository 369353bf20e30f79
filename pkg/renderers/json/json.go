// Package json renders property tables as the host platform's JSON parameter
// array.
package json

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"

	"github.com/tidwall/pretty"

	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/render"
)

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithIndent overrides the indentation unit. Defaults to a tab.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// WithCompact emits the array on a single line.
func WithCompact() Option {
	return func(r *Renderer) {
		r.compact = true
	}
}

// Renderer encodes properties as an ordered JSON array of descriptors. HTML
// characters in descriptions are written as is.
type Renderer struct {
	indent  string
	compact bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "\t"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render encodes props. Schema-level options are not part of the output.
func (r *Renderer) Render(ctx context.Context, props model.Properties, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(props.Descriptors()); err != nil {
		return nil, fmt.Errorf("json renderer: encode properties: %w", err)
	}

	if r.compact {
		return pretty.Ugly(buf.Bytes()), nil
	}
	return pretty.PrettyOptions(buf.Bytes(), &pretty.Options{
		Width:  80,
		Indent: r.indent,
	}), nil
}
