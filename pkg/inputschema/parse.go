package inputschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nodegen/pkg/schema"
)

const propertiesKey = "properties"

// ParseDocument decodes the document payload into an InputSchema.
func ParseDocument(doc Document) (InputSchema, error) {
	parsed, err := Parse(doc.Raw())
	if err != nil {
		if loc := doc.Location(); loc != "" {
			return InputSchema{}, fmt.Errorf("%w (source %s)", err, loc)
		}
		return InputSchema{}, err
	}
	return parsed, nil
}

// Parse decodes a JSON or YAML input schema. Property order follows the order
// of the keys in the payload.
func Parse(raw []byte) (InputSchema, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return InputSchema{}, errors.New("inputschema: raw schema is empty")
	}
	switch schema.DetectFormat(trimmed) {
	case schema.FormatJSON:
		return parseJSON(trimmed)
	default:
		return parseYAML(trimmed)
	}
}

// MustParse panics when raw cannot be parsed. Useful for tests.
func MustParse(raw []byte) InputSchema {
	out, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return out
}

func parseJSON(raw []byte) (InputSchema, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !gjson.ValidBytes(raw) {
		return InputSchema{}, errors.New("inputschema: parse schema: invalid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return InputSchema{}, errors.New("inputschema: schema root must be an object")
	}

	var envelope rawSchema
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return InputSchema{}, fmt.Errorf("inputschema: parse schema: %w", err)
	}
	out := envelope.schema()

	props := root.Get(propertiesKey)
	if !props.Exists() || props.Type == gjson.Null {
		return out, nil
	}
	if !props.IsObject() {
		return InputSchema{}, errors.New("inputschema: properties must be an object")
	}

	props.ForEach(func(key, value gjson.Result) bool {
		var field rawField
		if value.IsObject() {
			// members decode as any; a valid object cannot fail
			_ = json.Unmarshal([]byte(value.Raw), &field)
		}
		out.Properties = append(out.Properties, NamedField{Key: key.String(), Field: field.field()})
		return true
	})
	return out, nil
}

func parseYAML(raw []byte) (InputSchema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return InputSchema{}, fmt.Errorf("inputschema: parse schema: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return InputSchema{}, errors.New("inputschema: raw schema is empty")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return InputSchema{}, errors.New("inputschema: schema root must be an object")
	}

	var envelope rawSchema
	if err := root.Decode(&envelope); err != nil {
		return InputSchema{}, fmt.Errorf("inputschema: parse schema: %w", err)
	}
	out := envelope.schema()

	props := mappingValue(root, propertiesKey)
	if props == nil || props.Tag == "!!null" {
		return out, nil
	}
	if props.Kind != yaml.MappingNode {
		return InputSchema{}, errors.New("inputschema: properties must be an object")
	}

	for i := 0; i+1 < len(props.Content); i += 2 {
		key := props.Content[i].Value
		var field rawField
		if value := props.Content[i+1]; value.Kind == yaml.MappingNode {
			if err := value.Decode(&field); err != nil {
				field = rawField{}
			}
		}
		out.Properties = append(out.Properties, NamedField{Key: key, Field: field.field()})
	}
	return out, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
