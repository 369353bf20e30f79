package render

import (
	"context"

	"github.com/goliatone/go-nodegen/pkg/model"
)

// Renderer converts a property table into a byte representation (JSON, YAML,
// a text summary, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, props model.Properties, options RenderOptions) ([]byte, error)
}
