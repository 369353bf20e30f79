package model

import (
	"errors"
	"fmt"
)

// PropertyType is the host platform's parameter kind.
type PropertyType string

const (
	PropertyTypeString          PropertyType = "string"
	PropertyTypeNumber          PropertyType = "number"
	PropertyTypeBoolean         PropertyType = "boolean"
	PropertyTypeDateTime        PropertyType = "dateTime"
	PropertyTypeOptions         PropertyType = "options"
	PropertyTypeMultiOptions    PropertyType = "multiOptions"
	PropertyTypeJSON            PropertyType = "json"
	PropertyTypeFixedCollection PropertyType = "fixedCollection"
)

// Sub-collection names synthesised for fixed collections. Value extraction
// matches on these, so they never change.
const (
	CollectionItems  = "items"
	CollectionValues = "values"
	CollectionPairs  = "pairs"
)

// Property is one UI parameter derived from an input field. The set of
// implementations is closed: StringProperty, NumberProperty, BooleanProperty,
// DateTimeProperty, OptionsProperty, MultiOptionsProperty, JSONProperty and
// FixedCollectionProperty.
type Property interface {
	Type() PropertyType
	Common() Base
	property()
}

// Base carries the attributes every property shares. Name is the source
// field key, unchanged.
type Base struct {
	DisplayName string
	Name        string
	Description string
	Required    bool
}

// Common returns the shared attributes.
func (b Base) Common() Base { return b }

func (Base) property() {}

// StringProperty is a free text parameter. Rows > 0 renders a multi-line box.
type StringProperty struct {
	Base
	Default any
	Rows    int
}

func (StringProperty) Type() PropertyType { return PropertyTypeString }

// NumberProperty is a numeric parameter with optional bounds.
type NumberProperty struct {
	Base
	Default  float64
	MinValue *float64
	MaxValue *float64
}

func (NumberProperty) Type() PropertyType { return PropertyTypeNumber }

// BooleanProperty is a toggle.
type BooleanProperty struct {
	Base
	Default bool
}

func (BooleanProperty) Type() PropertyType { return PropertyTypeBoolean }

// DateTimeProperty is a date picker.
type DateTimeProperty struct {
	Base
	Default any
}

func (DateTimeProperty) Type() PropertyType { return PropertyTypeDateTime }

// OptionsProperty is a single choice from a closed set.
type OptionsProperty struct {
	Base
	Default any
	Options []Option
}

func (OptionsProperty) Type() PropertyType { return PropertyTypeOptions }

// MultiOptionsProperty is a multiple choice from a closed set.
type MultiOptionsProperty struct {
	Base
	Default []any
	Options []Option
}

func (MultiOptionsProperty) Type() PropertyType { return PropertyTypeMultiOptions }

// JSONProperty is a raw JSON editor. Default is either the JSON text of the
// schema default or the prefill value as given.
type JSONProperty struct {
	Base
	Default any
}

func (JSONProperty) Type() PropertyType { return PropertyTypeJSON }

// FixedCollectionProperty is a repeatable group of sub-fields stored under a
// single sub-collection.
type FixedCollectionProperty struct {
	Base
	Collection Collection
	Default    CollectionValue
}

func (FixedCollectionProperty) Type() PropertyType { return PropertyTypeFixedCollection }

// Option is one entry of a closed choice set. Name is the visible label.
type Option struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// Collection describes the single sub-collection of a fixed collection.
type Collection struct {
	Name        string
	DisplayName string
	Values      []SubField
}

// SubField is a text input inside a collection entry.
type SubField struct {
	DisplayName string
	Name        string
}

// wrapsScalars reports whether entries hold one "value" sub-field, in which
// case plain scalars are wrapped as {value: v}.
func (c Collection) wrapsScalars() bool {
	return len(c.Values) == 1 && c.Values[0].Name == "value"
}

// CollectionValue is the default of a fixed collection, keyed by the
// sub-collection name. An empty value means no pre-populated entries.
type CollectionValue map[string][]any

// Properties is the ordered converter output.
type Properties []Property

// Names returns each property name in order.
func (p Properties) Names() []string {
	out := make([]string, 0, len(p))
	for _, prop := range p {
		out = append(out, prop.Common().Name)
	}
	return out
}

// Required returns the names of the required properties in order.
func (p Properties) Required() []string {
	var out []string
	for _, prop := range p {
		if base := prop.Common(); base.Required {
			out = append(out, base.Name)
		}
	}
	return out
}

// Lookup finds a property by name.
func (p Properties) Lookup(name string) (Property, bool) {
	for _, prop := range p {
		if prop.Common().Name == name {
			return prop, true
		}
	}
	return nil, false
}

var (
	// ErrUnsupportedFieldType marks a field whose type is outside the closed
	// set; it is converted to a string property.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
	// ErrMalformedPrefill marks a fixed collection prefill/default that is not
	// a list of the expected entries; it is treated as absent.
	ErrMalformedPrefill = errors.New("malformed prefill shape")
)

// Warning is a recovered, per-field conversion problem.
type Warning struct {
	Field  string
	Detail string
	Err    error
}

func (w Warning) Error() string {
	if w.Detail == "" {
		return fmt.Sprintf("field %q: %v", w.Field, w.Err)
	}
	return fmt.Sprintf("field %q: %v: %s", w.Field, w.Err, w.Detail)
}

func (w Warning) Unwrap() error {
	return w.Err
}
