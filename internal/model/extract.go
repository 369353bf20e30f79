package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJSONParameter is returned when a json parameter holds text that
// does not parse.
var ErrInvalidJSONParameter = errors.New("invalid json parameter")

// ExtractInput maps host parameter values back onto actor input, keyed by the
// same names the properties carry. Fixed collections are unwrapped from their
// sub-collection, json text is parsed, and everything else passes through.
// Parameters missing from params are left out.
func ExtractInput(props Properties, params map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(props))
	for _, prop := range props {
		name := prop.Common().Name
		raw, ok := params[name]
		if !ok {
			continue
		}

		switch p := prop.(type) {
		case FixedCollectionProperty:
			out[name] = unwrapCollection(p.Collection, raw)
		case JSONProperty:
			value, keep, err := parseJSONParameter(raw)
			if err != nil {
				return nil, fmt.Errorf("model: parameter %q: %w", name, err)
			}
			if keep {
				out[name] = value
			}
		default:
			out[name] = raw
		}
	}
	return out, nil
}

// unwrapCollection reads {name: [entries]} and returns the entries; for
// scalar collections each {value: v} becomes v.
func unwrapCollection(c Collection, raw any) []any {
	wrapper, ok := asMap(raw)
	if !ok {
		return []any{}
	}
	list, ok := asList(wrapper[c.Name])
	if !ok {
		return []any{}
	}

	out := make([]any, 0, len(list))
	for _, item := range list {
		entry, ok := asMap(item)
		if !ok {
			continue
		}
		if c.wrapsScalars() {
			if value, present := entry["value"]; present {
				out = append(out, value)
			}
			continue
		}
		out = append(out, entry)
	}
	return out
}

func parseJSONParameter(raw any) (any, bool, error) {
	text, ok := raw.(string)
	if !ok {
		return raw, raw != nil, nil
	}
	if strings.TrimSpace(text) == "" {
		return nil, false, nil
	}
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidJSONParameter, err)
	}
	return value, true, nil
}
