package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where an input schema originated so loaders can operate on
// files, fs.FS entries, URLs, or actor identifiers without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindURL   SourceKind = "url"
	SourceKindActor SourceKind = "actor"
)

// ActorPrefix marks a raw source string as an actor reference, e.g.
// "actor:apify/website-content-crawler".
const ActorPrefix = "actor:"

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("schema: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// actorSource references an actor whose default build carries the input
// schema. The location is the actor ID or its "username/name" slug.
type actorSource struct {
	id string
}

func (s actorSource) Location() string {
	return s.id
}

func (s actorSource) Kind() SourceKind {
	return SourceKindActor
}

// SourceFromActor returns a Source resolved through the actor API.
func SourceFromActor(id string) Source {
	return actorSource{id: strings.TrimSpace(id)}
}

// ParseSource maps a CLI style reference onto a Source: "actor:<id>" selects
// the actor API, http(s) URLs select the HTTP loader, anything else is a file
// path. Empty input returns nil.
func ParseSource(raw string) Source {
	value := strings.TrimSpace(raw)
	switch {
	case value == "":
		return nil
	case strings.HasPrefix(value, ActorPrefix):
		id := strings.TrimSpace(strings.TrimPrefix(value, ActorPrefix))
		if id == "" {
			return nil
		}
		return SourceFromActor(id)
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		if _, err := url.ParseRequestURI(value); err != nil {
			return nil
		}
		return urlSource{raw: value}
	default:
		return SourceFromFile(value)
	}
}
