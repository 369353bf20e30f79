package inputschema

import "errors"

// Errors reported by the actor schema fetch layer. Loaders wrap them with the
// offending identifier; match with errors.Is.
var (
	ErrActorNotFound      = errors.New("actor not found")
	ErrBuildNotFound      = errors.New("actor build not found")
	ErrInputSchemaMissing = errors.New("actor build has no input schema")
)
