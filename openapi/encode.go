package openapi

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Format selects the wire encoding of a rendered document or schema.
type Format string

const (
	// FormatJSON encodes as indented JSON
	FormatJSON Format = "json"
	// FormatYAML encodes as YAML
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &oaserrors.ConfigError{Option: "format", Value: s, Message: "want json or yaml"}
	}
}

// MarshalJSON implements json.Marshaler using the document's own version.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// MarshalYAML implements yaml.Marshaler using the document's own version.
func (d *Document) MarshalYAML() (any, error) {
	return d.ToMap(), nil
}

// Encode renders a tree of maps, slices and scalars in the requested format.
// Map keys are written in sorted order, so equal trees encode to equal bytes.
func Encode(tree any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(tree, "", "  ")
	case FormatYAML:
		out, err := yaml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("openapi: yaml encode: %w", err)
		}
		return out, nil
	default:
		return nil, &oaserrors.ConfigError{Option: "format", Value: string(format), Message: "want json or yaml"}
	}
}

// EncodeDocument renders d for its version in the requested format.
func EncodeDocument(d *Document, format Format) ([]byte, error) {
	return Encode(d.ToMap(), format)
}

// EncodeSchema renders a standalone schema for version v in the requested format.
func EncodeSchema(s *Schema, v Version, format Format) ([]byte, error) {
	return Encode(s.ToMap(v), format)
}

// Normalize converts an arbitrary Go value into the generic JSON tree it
// encodes to (maps, slices, strings, bools, nil and numbers). Integers stay
// int64 or uint64 so 64-bit bounds and examples survive unchanged.
func Normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("openapi: normalize %T: %w", value, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("openapi: normalize %T: %w", value, err)
	}
	return fromNumbers(out), nil
}

func fromNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(string(t), 10, 64); err == nil {
			return u
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return string(t)
	case map[string]any:
		for k, e := range t {
			t[k] = fromNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = fromNumbers(e)
		}
		return t
	default:
		return v
	}
}
