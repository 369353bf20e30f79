package inputschema

import "github.com/goliatone/go-nodegen/pkg/schema"

// Source identifies where an input schema originated. This is an alias to the
// canonical schema source abstraction so loaders can be shared.
type Source = schema.Source

// SourceKind enumerates the loader modalities.
type SourceKind = schema.SourceKind

const (
	SourceKindFile  = schema.SourceKindFile
	SourceKindFS    = schema.SourceKindFS
	SourceKindURL   = schema.SourceKindURL
	SourceKindActor = schema.SourceKindActor
)

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return schema.SourceFromFile(path)
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return schema.SourceFromFS(name)
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	return schema.SourceFromURL(raw)
}

// SourceFromActor returns a Source resolved through the actor API.
func SourceFromActor(id string) Source {
	return schema.SourceFromActor(id)
}

// ActorPrefix marks actor identifiers in ParseSource input.
const ActorPrefix = schema.ActorPrefix

// ParseSource interprets a CLI style reference: "actor:<id>", an http(s) URL,
// or a file path. It returns nil for empty input.
func ParseSource(raw string) Source {
	return schema.ParseSource(raw)
}
