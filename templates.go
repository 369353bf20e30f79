package nodegen

import (
	"io/fs"

	"github.com/goliatone/go-nodegen/pkg/renderers/text"
)

// EmbeddedTemplates exposes the built-in text renderer templates so callers
// can copy or extend the summary layout without importing the renderer
// package directly.
func EmbeddedTemplates() fs.FS {
	return text.TemplatesFS()
}
