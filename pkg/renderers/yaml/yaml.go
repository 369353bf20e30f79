// Package yaml renders property tables as a YAML sequence of parameter
// descriptors.
package yaml

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nodegen/pkg/model"
	"github.com/goliatone/go-nodegen/pkg/render"
)

// Renderer encodes properties as YAML, keeping descriptor key order.
type Renderer struct {
	indent int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a YAML renderer with two-space indentation.
func New() *Renderer {
	return &Renderer{indent: 2}
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "yaml"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "application/yaml"
}

// Render encodes props.
func (r *Renderer) Render(ctx context.Context, props model.Properties, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(r.indent)
	if err := enc.Encode(props.Descriptors()); err != nil {
		return nil, fmt.Errorf("yaml renderer: encode properties: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml renderer: flush: %w", err)
	}
	return buf.Bytes(), nil
}
