package model

import (
	"encoding/json"
	"fmt"
)

// Descriptor is the flat serialised form of a Property, matching the host
// platform's parameter description. Field order is the emitted key order.
type Descriptor struct {
	DisplayName string       `json:"displayName" yaml:"displayName"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Required    bool         `json:"required" yaml:"required"`
	Default     any          `json:"default" yaml:"default"`
	Type        PropertyType `json:"type" yaml:"type"`
	TypeOptions *TypeOptions `json:"typeOptions,omitempty" yaml:"typeOptions,omitempty"`
	Options     any          `json:"options,omitempty" yaml:"options,omitempty"`
}

// TypeOptions holds auxiliary rendering hints. Unset hints are omitted.
type TypeOptions struct {
	Rows           int      `json:"rows,omitempty" yaml:"rows,omitempty"`
	MinValue       *float64 `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue       *float64 `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	MultipleValues bool     `json:"multipleValues,omitempty" yaml:"multipleValues,omitempty"`
}

func (t *TypeOptions) empty() bool {
	return t == nil || (t.Rows == 0 && t.MinValue == nil && t.MaxValue == nil && !t.MultipleValues)
}

// CollectionDescriptor is the serialised sub-collection of a fixed collection.
type CollectionDescriptor struct {
	Name        string               `json:"name" yaml:"name"`
	DisplayName string               `json:"displayName" yaml:"displayName"`
	Values      []SubFieldDescriptor `json:"values" yaml:"values"`
}

// SubFieldDescriptor is a serialised collection entry field; always text.
type SubFieldDescriptor struct {
	DisplayName string       `json:"displayName" yaml:"displayName"`
	Name        string       `json:"name" yaml:"name"`
	Type        PropertyType `json:"type" yaml:"type"`
	Default     string       `json:"default" yaml:"default"`
}

// Describe flattens a property into its Descriptor. It panics on a Property
// implementation outside this package, which the sealed interface rules out.
func Describe(prop Property) Descriptor {
	base := prop.Common()
	out := Descriptor{
		DisplayName: base.DisplayName,
		Name:        base.Name,
		Description: base.Description,
		Required:    base.Required,
		Type:        prop.Type(),
	}
	opts := &TypeOptions{}

	switch p := prop.(type) {
	case StringProperty:
		out.Default = orEmptyString(p.Default)
		opts.Rows = p.Rows
	case NumberProperty:
		out.Default = p.Default
		opts.MinValue = p.MinValue
		opts.MaxValue = p.MaxValue
	case BooleanProperty:
		out.Default = p.Default
	case DateTimeProperty:
		out.Default = orEmptyString(p.Default)
	case OptionsProperty:
		out.Default = orEmptyString(p.Default)
		out.Options = nonNilOptions(p.Options)
	case MultiOptionsProperty:
		def := p.Default
		if def == nil {
			def = []any{}
		}
		out.Default = def
		out.Options = nonNilOptions(p.Options)
	case JSONProperty:
		out.Default = orEmptyString(p.Default)
	case FixedCollectionProperty:
		def := p.Default
		if def == nil {
			def = CollectionValue{}
		}
		out.Default = def
		opts.MultipleValues = true
		out.Options = []CollectionDescriptor{describeCollection(p.Collection)}
	default:
		panic(fmt.Sprintf("model: unknown property variant %T", prop))
	}

	if !opts.empty() {
		out.TypeOptions = opts
	}
	return out
}

func describeCollection(c Collection) CollectionDescriptor {
	values := make([]SubFieldDescriptor, 0, len(c.Values))
	for _, sub := range c.Values {
		values = append(values, SubFieldDescriptor{
			DisplayName: sub.DisplayName,
			Name:        sub.Name,
			Type:        PropertyTypeString,
			Default:     "",
		})
	}
	return CollectionDescriptor{Name: c.Name, DisplayName: c.DisplayName, Values: values}
}

func orEmptyString(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func nonNilOptions(opts []Option) []Option {
	if opts == nil {
		return []Option{}
	}
	return opts
}

// Descriptors flattens every property, preserving order.
func (p Properties) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(p))
	for _, prop := range p {
		out = append(out, Describe(prop))
	}
	return out
}

// MarshalJSON encodes the properties as a descriptor array.
func (p Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Descriptors())
}

// MarshalYAML encodes the properties as a descriptor sequence.
func (p Properties) MarshalYAML() (any, error) {
	return p.Descriptors(), nil
}

func (p StringProperty) MarshalJSON() ([]byte, error)          { return json.Marshal(Describe(p)) }
func (p NumberProperty) MarshalJSON() ([]byte, error)          { return json.Marshal(Describe(p)) }
func (p BooleanProperty) MarshalJSON() ([]byte, error)         { return json.Marshal(Describe(p)) }
func (p DateTimeProperty) MarshalJSON() ([]byte, error)        { return json.Marshal(Describe(p)) }
func (p OptionsProperty) MarshalJSON() ([]byte, error)         { return json.Marshal(Describe(p)) }
func (p MultiOptionsProperty) MarshalJSON() ([]byte, error)    { return json.Marshal(Describe(p)) }
func (p JSONProperty) MarshalJSON() ([]byte, error)            { return json.Marshal(Describe(p)) }
func (p FixedCollectionProperty) MarshalJSON() ([]byte, error) { return json.Marshal(Describe(p)) }
