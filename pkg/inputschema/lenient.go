package inputschema

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// rawSchema and rawField accept any JSON or YAML shape. Values of the wrong
// shape are coerced or dropped so a single odd field never fails the whole
// schema; a non-string type keeps its text and later degrades to a string
// property.
type rawSchema struct {
	Title         any `json:"title" yaml:"title"`
	Description   any `json:"description" yaml:"description"`
	SchemaVersion any `json:"schemaVersion" yaml:"schemaVersion"`
	Required      any `json:"required" yaml:"required"`
}

func (r rawSchema) schema() InputSchema {
	version, err := cast.ToIntE(r.SchemaVersion)
	if err != nil {
		version = 0
	}
	return InputSchema{
		Title:         text(r.Title),
		Description:   text(r.Description),
		SchemaVersion: version,
		Required:      textList(r.Required),
	}
}

type rawField struct {
	Type           any `json:"type" yaml:"type"`
	Editor         any `json:"editor" yaml:"editor"`
	Title          any `json:"title" yaml:"title"`
	Description    any `json:"description" yaml:"description"`
	SectionCaption any `json:"sectionCaption" yaml:"sectionCaption"`
	Default        any `json:"default" yaml:"default"`
	Prefill        any `json:"prefill" yaml:"prefill"`
	Enum           any `json:"enum" yaml:"enum"`
	EnumTitles     any `json:"enumTitles" yaml:"enumTitles"`
	Items          any `json:"items" yaml:"items"`
	Minimum        any `json:"minimum" yaml:"minimum"`
	Maximum        any `json:"maximum" yaml:"maximum"`
}

func (r rawField) field() Field {
	return Field{
		Type:           text(r.Type),
		Editor:         text(r.Editor),
		Title:          text(r.Title),
		Description:    text(r.Description),
		SectionCaption: text(r.SectionCaption),
		Default:        r.Default,
		Prefill:        r.Prefill,
		Enum:           list(r.Enum),
		EnumTitles:     textList(r.EnumTitles),
		Items:          items(r.Items),
		Minimum:        number(r.Minimum),
		Maximum:        number(r.Maximum),
	}
}

func items(v any) *FieldItems {
	var m map[string]any
	switch val := v.(type) {
	case map[string]any:
		m = val
	case map[any]any:
		m = make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = item
		}
	default:
		return nil
	}
	return &FieldItems{
		Type:       text(m["type"]),
		Enum:       list(m["enum"]),
		EnumTitles: textList(m["enumTitles"]),
	}
}

// text returns strings and scalars as text and anything structured as
// compact JSON.
func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any, map[string]any, map[any]any:
		if data, err := json.Marshal(val); err == nil {
			return string(data)
		}
		return fmt.Sprint(val)
	default:
		if s, err := cast.ToStringE(val); err == nil {
			return s
		}
		return fmt.Sprint(val)
	}
}

func textList(v any) []string {
	values, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, item := range values {
		out = append(out, cast.ToString(item))
	}
	return out
}

func list(v any) []any {
	values, ok := v.([]any)
	if !ok {
		return nil
	}
	return values
}

// number reads numeric values and numeric strings; anything else, booleans
// included, counts as absent.
func number(v any) *float64 {
	if v == nil {
		return nil
	}
	if _, isBool := v.(bool); isBool {
		return nil
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &n
}
