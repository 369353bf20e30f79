// Package template defines the template engine contract renderers depend on,
// so a renderer can be handed a custom engine instead of the pongo2 default.
package template
