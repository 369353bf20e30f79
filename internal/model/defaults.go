package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"github.com/goliatone/go-nodegen/pkg/inputschema"
)

// withDefault fills the default of every variant except fixed collections,
// which need the wrapping in wrapCollectionDefault.
func withDefault(prop Property, field inputschema.Field) Property {
	switch p := prop.(type) {
	case StringProperty:
		p.Default = cloneValue(firstPresent(field.Default, field.Prefill, ""))
		return p
	case NumberProperty:
		p.Default = numberDefault(field.Default, field.Prefill)
		return p
	case BooleanProperty:
		p.Default = boolDefault(field.Default, field.Prefill)
		return p
	case DateTimeProperty:
		p.Default = cloneValue(firstPresent(field.Default, field.Prefill, ""))
		return p
	case OptionsProperty:
		p.Default = cloneValue(firstPresent(field.Default, field.Prefill, ""))
		return p
	case MultiOptionsProperty:
		p.Default = listDefault(field.Default, field.Prefill)
		return p
	case JSONProperty:
		p.Default = jsonDefault(field.Default, field.Prefill)
		return p
	default:
		return prop
	}
}

func firstPresent(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func numberDefault(candidates ...any) float64 {
	for _, v := range candidates {
		if v == nil {
			continue
		}
		if _, isBool := v.(bool); isBool {
			continue
		}
		if n, err := cast.ToFloat64E(v); err == nil {
			return n
		}
	}
	return 0
}

func boolDefault(candidates ...any) bool {
	for _, v := range candidates {
		if v == nil {
			continue
		}
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}
	return false
}

func listDefault(candidates ...any) []any {
	for _, v := range candidates {
		if list, ok := asList(v); ok {
			return cloneValue(list).([]any)
		}
	}
	return []any{}
}

// jsonDefault renders a truthy default as JSON text, otherwise hands a copy
// of the prefill through. false, 0 and "" count as no default; empty objects
// and lists do not.
func jsonDefault(def, prefill any) any {
	if truthy(def) {
		if text, err := marshalText(def); err == nil {
			return text
		}
	}
	if prefill != nil {
		return cloneValue(prefill)
	}
	return ""
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return cast.ToFloat64(v) != 0
	default:
		return true
	}
}

func marshalText(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cloneValue(v)); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// wrapCollectionDefault turns the raw prefill (or default) list into the
// sub-collection shape. Missing or empty input yields an empty value; input
// of the wrong shape yields an empty value plus a warning.
func wrapCollectionDefault(c Collection, field inputschema.Field) (CollectionValue, *Warning) {
	raw := field.Prefill
	if raw == nil {
		raw = field.Default
	}
	if raw == nil {
		return CollectionValue{}, nil
	}

	list, ok := asList(raw)
	if !ok {
		return CollectionValue{}, &Warning{
			Detail: fmt.Sprintf("expected a list for %q, got %T", c.Name, raw),
			Err:    ErrMalformedPrefill,
		}
	}
	if len(list) == 0 {
		return CollectionValue{}, nil
	}

	entries := make([]any, 0, len(list))
	for i, item := range list {
		if c.wrapsScalars() {
			if !isScalar(item) {
				return CollectionValue{}, &Warning{
					Detail: fmt.Sprintf("entry %d of %q is %T, expected a scalar", i, c.Name, item),
					Err:    ErrMalformedPrefill,
				}
			}
			entries = append(entries, map[string]any{"value": item})
			continue
		}

		entry, ok := asMap(item)
		if !ok {
			return CollectionValue{}, &Warning{
				Detail: fmt.Sprintf("entry %d of %q is %T, expected an object", i, c.Name, item),
				Err:    ErrMalformedPrefill,
			}
		}
		for _, sub := range c.Values {
			if _, present := entry[sub.Name]; !present {
				return CollectionValue{}, &Warning{
					Detail: fmt.Sprintf("entry %d of %q is missing %q", i, c.Name, sub.Name),
					Err:    ErrMalformedPrefill,
				}
			}
		}
		entries = append(entries, entry)
	}

	return CollectionValue{c.Name: entries}, nil
}

func asList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if list, ok := v.([]any); ok {
		return append([]any(nil), list...), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asMap returns a deep copy of an object entry.
func asMap(v any) (map[string]any, bool) {
	switch v.(type) {
	case map[string]any, map[any]any:
		return cloneValue(v).(map[string]any), true
	default:
		return nil, false
	}
}

func isScalar(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return false
	default:
		return true
	}
}

// cloneValue deep copies maps and lists so defaults never share memory with
// the schema they came from. map[any]any nodes, which encoding/json rejects,
// become map[string]any.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
