package inputschema

// Source type values accepted by the converter. Anything else degrades to a
// plain string property.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Editor hints that change how a field is rendered.
const (
	EditorTextarea           = "textarea"
	EditorJavaScript         = "javascript"
	EditorPython             = "python"
	EditorSelect             = "select"
	EditorDatepicker         = "datepicker"
	EditorJSON               = "json"
	EditorProxy              = "proxy"
	EditorRequestListSources = "requestListSources"
	EditorStringList         = "stringList"
	EditorKeyValue           = "keyValue"
)

// InputSchema is the declarative description of an actor's input. Properties
// keep the key order of the source document.
type InputSchema struct {
	Title         string       `json:"title,omitempty" yaml:"title,omitempty"`
	Description   string       `json:"description,omitempty" yaml:"description,omitempty"`
	SchemaVersion int          `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty"`
	Properties    []NamedField `json:"-" yaml:"-"`
	Required      []string     `json:"required,omitempty" yaml:"required,omitempty"`
}

// NamedField pairs a property key with its descriptor.
type NamedField struct {
	Key   string
	Field Field
}

// Field describes one configurable input parameter.
type Field struct {
	Type           string      `json:"type" yaml:"type"`
	Editor         string      `json:"editor,omitempty" yaml:"editor,omitempty"`
	Title          string      `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string      `json:"description,omitempty" yaml:"description,omitempty"`
	SectionCaption string      `json:"sectionCaption,omitempty" yaml:"sectionCaption,omitempty"`
	Default        any         `json:"default,omitempty" yaml:"default,omitempty"`
	Prefill        any         `json:"prefill,omitempty" yaml:"prefill,omitempty"`
	Enum           []any       `json:"enum,omitempty" yaml:"enum,omitempty"`
	EnumTitles     []string    `json:"enumTitles,omitempty" yaml:"enumTitles,omitempty"`
	Items          *FieldItems `json:"items,omitempty" yaml:"items,omitempty"`
	Minimum        *float64    `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum        *float64    `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// FieldItems describes the element type of an array field.
type FieldItems struct {
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	Enum       []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	EnumTitles []string `json:"enumTitles,omitempty" yaml:"enumTitles,omitempty"`
}

// HasEnum reports whether the field declares a closed value set. An empty
// but present enum still counts.
func (f Field) HasEnum() bool {
	return f.Enum != nil
}

// IsRequired reports whether key is listed in the schema's required set.
func (s InputSchema) IsRequired(key string) bool {
	for _, item := range s.Required {
		if item == key {
			return true
		}
	}
	return false
}

// Keys returns the property keys in document order.
func (s InputSchema) Keys() []string {
	if len(s.Properties) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.Properties))
	for _, prop := range s.Properties {
		keys = append(keys, prop.Key)
	}
	return keys
}

// Field looks up a field by key.
func (s InputSchema) Field(key string) (Field, bool) {
	for _, prop := range s.Properties {
		if prop.Key == key {
			return prop.Field, true
		}
	}
	return Field{}, false
}
