package model

import (
	"fmt"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

const textareaRows = 5

// Converter maps input schemas onto ordered property tables. It holds no
// per-call state and is safe for concurrent use.
type Converter struct {
	opts Options
}

// New creates a Converter with the supplied options.
func New(options Options) *Converter {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.Sanitizer != nil {
		opts.Sanitizer = options.Sanitizer
	}
	if options.Logger != nil {
		opts.Logger = options.Logger
	}
	return &Converter{opts: opts}
}

// Convert produces one property per schema field, in schema order. Problems
// with individual fields never abort the conversion; they are logged and
// returned as warnings.
func (c *Converter) Convert(in inputschema.InputSchema) (Properties, []Warning) {
	props := make(Properties, 0, len(in.Properties))
	var warnings []Warning

	for _, named := range in.Properties {
		prop, warn := c.convertField(named.Key, named.Field, in.IsRequired(named.Key))
		props = append(props, prop)
		if warn != nil {
			c.opts.Logger.Warn(warn.Err.Error(), "field", warn.Field, "detail", warn.Detail)
			warnings = append(warnings, *warn)
		}
	}
	return props, warnings
}

func (c *Converter) convertField(key string, field inputschema.Field, required bool) (Property, *Warning) {
	base := Base{
		DisplayName: field.Title,
		Name:        key,
		Description: c.opts.Sanitizer(field.Description),
		Required:    required,
	}
	if base.DisplayName == "" {
		base.DisplayName = c.opts.Labeler(key)
	}

	prop, warn := dispatch(base, field)
	if warn != nil {
		return withDefault(prop, field), warn
	}

	if fixed, ok := prop.(FixedCollectionProperty); ok {
		value, warn := wrapCollectionDefault(fixed.Collection, field)
		fixed.Default = value
		if warn != nil {
			warn.Field = key
		}
		return fixed, warn
	}
	return withDefault(prop, field), nil
}

// dispatch picks the target variant from the (type, editor) pair. Defaults
// are filled in afterwards because they depend on the chosen variant.
func dispatch(base Base, field inputschema.Field) (Property, *Warning) {
	switch field.Type {
	case inputschema.TypeString:
		switch {
		case field.Editor == inputschema.EditorTextarea,
			field.Editor == inputschema.EditorJavaScript,
			field.Editor == inputschema.EditorPython:
			return StringProperty{Base: base, Rows: textareaRows}, nil
		case field.Editor == inputschema.EditorSelect || field.HasEnum():
			return OptionsProperty{Base: base, Options: buildOptions(field.Enum, field.EnumTitles)}, nil
		case field.Editor == inputschema.EditorDatepicker:
			return DateTimeProperty{Base: base}, nil
		default:
			return StringProperty{Base: base}, nil
		}

	case inputschema.TypeInteger:
		return NumberProperty{Base: base, MinValue: copyFloat(field.Minimum), MaxValue: copyFloat(field.Maximum)}, nil

	case inputschema.TypeBoolean:
		return BooleanProperty{Base: base}, nil

	case inputschema.TypeArray:
		switch field.Editor {
		case inputschema.EditorJSON:
			return JSONProperty{Base: base}, nil
		case inputschema.EditorRequestListSources:
			return FixedCollectionProperty{Base: base, Collection: requestListCollection()}, nil
		case inputschema.EditorStringList:
			return FixedCollectionProperty{Base: base, Collection: stringListCollection()}, nil
		case inputschema.EditorSelect:
			var enum []any
			var titles []string
			if field.Items != nil {
				enum, titles = field.Items.Enum, field.Items.EnumTitles
			}
			return MultiOptionsProperty{Base: base, Options: buildOptions(enum, titles)}, nil
		case inputschema.EditorKeyValue:
			return FixedCollectionProperty{Base: base, Collection: keyValueCollection()}, nil
		default:
			return JSONProperty{Base: base}, nil
		}

	case inputschema.TypeObject:
		// json and proxy editors and every other object editor share the
		// raw JSON property.
		return JSONProperty{Base: base}, nil

	default:
		return StringProperty{Base: base}, &Warning{
			Field:  base.Name,
			Detail: fmt.Sprintf("type %q rendered as string", field.Type),
			Err:    ErrUnsupportedFieldType,
		}
	}
}

func buildOptions(enum []any, titles []string) []Option {
	options := make([]Option, 0, len(enum))
	for i, value := range enum {
		label := ""
		if i < len(titles) {
			label = titles[i]
		}
		if label == "" {
			label = fmt.Sprint(value)
		}
		options = append(options, Option{Name: label, Value: value})
	}
	return options
}

func requestListCollection() Collection {
	return Collection{
		Name:        CollectionItems,
		DisplayName: "items",
		Values:      []SubField{{DisplayName: "item", Name: "url"}},
	}
}

func stringListCollection() Collection {
	return Collection{
		Name:        CollectionValues,
		DisplayName: "Values",
		Values:      []SubField{{DisplayName: "Value", Name: "value"}},
	}
}

func keyValueCollection() Collection {
	return Collection{
		Name:        CollectionPairs,
		DisplayName: "Key-Value Pairs",
		Values: []SubField{
			{DisplayName: "Key", Name: "key"},
			{DisplayName: "Value", Name: "value"},
		},
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
