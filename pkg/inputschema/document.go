package inputschema

import "github.com/goliatone/go-nodegen/pkg/schema"

// Document wraps the raw input schema payload and its origin.
type Document = schema.Document

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	return schema.NewDocument(src, raw)
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	return schema.MustNewDocument(src, raw)
}

// Format names the serialisation of a raw schema.
type Format = schema.Format

const (
	FormatJSON = schema.FormatJSON
	FormatYAML = schema.FormatYAML
)

// DetectFormat reports whether raw looks like JSON or YAML.
func DetectFormat(raw []byte) Format {
	return schema.DetectFormat(raw)
}
