package render

import "github.com/goliatone/go-nodegen/pkg/model"

// RenderOptions carry schema-level context that renderers may surface
// alongside the properties. Structured renderers ignore it.
type RenderOptions struct {
	// Title is the input schema title.
	Title string
	// Description is the input schema description.
	Description string
	// Source names where the schema came from (a path, URL or actor).
	Source string
	// Warnings lists the field problems recovered during conversion.
	Warnings []model.Warning
}
