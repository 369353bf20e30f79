package model

import internalmodel "github.com/goliatone/go-nodegen/internal/model"

// PropertyType re-exports the internal PropertyType enumeration.
type PropertyType = internalmodel.PropertyType

const (
	PropertyTypeString          = internalmodel.PropertyTypeString
	PropertyTypeNumber          = internalmodel.PropertyTypeNumber
	PropertyTypeBoolean         = internalmodel.PropertyTypeBoolean
	PropertyTypeDateTime        = internalmodel.PropertyTypeDateTime
	PropertyTypeOptions         = internalmodel.PropertyTypeOptions
	PropertyTypeMultiOptions    = internalmodel.PropertyTypeMultiOptions
	PropertyTypeJSON            = internalmodel.PropertyTypeJSON
	PropertyTypeFixedCollection = internalmodel.PropertyTypeFixedCollection
)

const (
	CollectionItems  = internalmodel.CollectionItems
	CollectionValues = internalmodel.CollectionValues
	CollectionPairs  = internalmodel.CollectionPairs
)

type Property = internalmodel.Property
type Base = internalmodel.Base
type StringProperty = internalmodel.StringProperty
type NumberProperty = internalmodel.NumberProperty
type BooleanProperty = internalmodel.BooleanProperty
type DateTimeProperty = internalmodel.DateTimeProperty
type OptionsProperty = internalmodel.OptionsProperty
type MultiOptionsProperty = internalmodel.MultiOptionsProperty
type JSONProperty = internalmodel.JSONProperty
type FixedCollectionProperty = internalmodel.FixedCollectionProperty
type Option = internalmodel.Option
type Collection = internalmodel.Collection
type SubField = internalmodel.SubField
type CollectionValue = internalmodel.CollectionValue
type Properties = internalmodel.Properties
type Descriptor = internalmodel.Descriptor
type TypeOptions = internalmodel.TypeOptions
type CollectionDescriptor = internalmodel.CollectionDescriptor
type SubFieldDescriptor = internalmodel.SubFieldDescriptor
type Warning = internalmodel.Warning

var (
	ErrUnsupportedFieldType = internalmodel.ErrUnsupportedFieldType
	ErrMalformedPrefill     = internalmodel.ErrMalformedPrefill
	ErrInvalidJSONParameter = internalmodel.ErrInvalidJSONParameter
)

// Describe flattens a property into the host platform's parameter description.
func Describe(prop Property) Descriptor {
	return internalmodel.Describe(prop)
}

// ExtractInput maps host parameter values back onto actor input.
func ExtractInput(props Properties, params map[string]any) (map[string]any, error) {
	return internalmodel.ExtractInput(props, params)
}

// HumanizeLabel turns a field key such as "maxCrawlDepth" into "Max Crawl Depth".
func HumanizeLabel(key string) string {
	return internalmodel.HumanizeLabel(key)
}

// StripHTML removes markup from a description.
func StripHTML(s string) string {
	return internalmodel.StripHTML(s)
}
