package openapi

import (
	"slices"
	"sort"
)

// ToMap renders the schema for version v, omitting zero values.
// This is the only place where 3.0 and 3.1 schema spelling diverges.
//
//nolint:cyclop // one branch per schema keyword is inherent
func (s *Schema) ToMap(v Version) map[string]any {
	if s == nil {
		return nil
	}
	m := make(map[string]any)

	if s.Ref != "" {
		m["$ref"] = s.Ref
		return m
	}

	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Default != nil {
		m["default"] = s.Default
	}
	if s.Deprecated {
		m["deprecated"] = true
	}
	if s.ReadOnly {
		m["readOnly"] = true
	}
	if s.WriteOnly {
		m["writeOnly"] = true
	}
	if s.XML != nil {
		m["xml"] = s.XML
	}
	if s.ExternalDocs != nil {
		m["externalDocs"] = s.ExternalDocs
	}
	if s.Format != "" {
		m["format"] = s.Format
	}

	renderTypes(m, s, v)
	renderExamples(m, s, v)
	renderBounds(m, s, v)

	if s.MultipleOf != nil {
		m["multipleOf"] = s.MultipleOf
	}
	if s.MinLength != nil {
		m["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		m["maxLength"] = *s.MaxLength
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}

	renderItems(m, s, v)
	if s.MinItems != nil {
		m["minItems"] = *s.MinItems
	}
	if s.MaxItems != nil {
		m["maxItems"] = *s.MaxItems
	}
	if s.UniqueItems {
		m["uniqueItems"] = true
	}

	if len(s.Properties) > 0 {
		m["properties"] = schemaMap(s.Properties, v)
	}
	renderAdditional(m, s, v)
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.MinProperties != nil {
		m["minProperties"] = *s.MinProperties
	}
	if s.MaxProperties != nil {
		m["maxProperties"] = *s.MaxProperties
	}

	if len(s.AllOf) > 0 {
		m["allOf"] = schemaList(s.AllOf, v)
	}
	if len(s.AnyOf) > 0 {
		m["anyOf"] = schemaList(s.AnyOf, v)
	}
	if len(s.OneOf) > 0 {
		m["oneOf"] = schemaList(s.OneOf, v)
	}
	if s.Not != nil {
		m["not"] = s.Not.ToMap(v)
	}
	if s.Discriminator != nil {
		m["discriminator"] = s.Discriminator
	}
	return m
}

func renderTypes(m map[string]any, s *Schema, v Version) {
	types := make([]string, 0, len(s.Types))
	nullable := s.Nullable
	for _, t := range s.Types {
		if t == "null" {
			nullable = true
			continue
		}
		types = append(types, t)
	}
	onlyNull := nullable && len(types) == 0 && len(s.Types) > 0

	enum := s.Enum
	if nullable && (len(enum) > 0 || onlyNull) && !slices.Contains(enum, nil) {
		enum = append(slices.Clone(enum), nil)
	}

	if v.Is31() {
		if nullable && len(s.Types) > 0 {
			types = append(types, "null")
		}
		switch len(types) {
		case 0:
		case 1:
			m["type"] = types[0]
		default:
			m["type"] = types
		}
		if len(enum) > 0 && !onlyNull {
			m["enum"] = enum
		}
		return
	}

	switch {
	case onlyNull:
		m["type"] = "string"
	case len(types) > 0:
		// 3.0 has no type arrays; the first type wins.
		m["type"] = types[0]
	}
	if nullable && len(s.Types) > 0 {
		m["nullable"] = true
	}
	if len(enum) > 0 {
		m["enum"] = enum
	}
}

func renderExamples(m map[string]any, s *Schema, v Version) {
	if len(s.Examples) == 0 {
		return
	}
	if v.Is31() {
		m["examples"] = s.Examples
		return
	}
	m["example"] = s.Examples[0]
}

func renderBounds(m map[string]any, s *Schema, v Version) {
	if s.Minimum != nil {
		switch {
		case !s.ExclusiveMinimum:
			m["minimum"] = s.Minimum
		case v.Is31():
			m["exclusiveMinimum"] = s.Minimum
		default:
			m["minimum"] = s.Minimum
			m["exclusiveMinimum"] = true
		}
	}
	if s.Maximum != nil {
		switch {
		case !s.ExclusiveMaximum:
			m["maximum"] = s.Maximum
		case v.Is31():
			m["exclusiveMaximum"] = s.Maximum
		default:
			m["maximum"] = s.Maximum
			m["exclusiveMaximum"] = true
		}
	}
}

func renderItems(m map[string]any, s *Schema, v Version) {
	if len(s.PrefixItems) > 0 {
		if v.Is31() {
			m["prefixItems"] = schemaList(s.PrefixItems, v)
		} else if s.Items == nil {
			m["items"] = map[string]any{"oneOf": schemaList(s.PrefixItems, v)}
		}
	}
	if s.Items != nil {
		m["items"] = s.Items.ToMap(v)
	}
}

func renderAdditional(m map[string]any, s *Schema, v Version) {
	if v.Is31() {
		if len(s.PatternProperties) > 0 {
			m["patternProperties"] = schemaMap(s.PatternProperties, v)
		}
		if s.AdditionalProperties != nil {
			m["additionalProperties"] = s.AdditionalProperties.ToMap(v)
		}
		return
	}

	// 3.0 has no patternProperties: every value schema becomes an
	// additionalProperties alternative.
	alternatives := make([]*Schema, 0, len(s.PatternProperties)+1)
	patterns := make([]string, 0, len(s.PatternProperties))
	for p := range s.PatternProperties {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	for _, p := range patterns {
		alternatives = append(alternatives, s.PatternProperties[p])
	}
	if s.AdditionalProperties != nil {
		alternatives = append(alternatives, s.AdditionalProperties)
	}
	switch len(alternatives) {
	case 0:
	case 1:
		m["additionalProperties"] = alternatives[0].ToMap(v)
	default:
		m["additionalProperties"] = map[string]any{"oneOf": schemaList(alternatives, v)}
	}
}

func schemaList(list []*Schema, v Version) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, s.ToMap(v))
	}
	return out
}

func schemaMap(in map[string]*Schema, v Version) map[string]any {
	out := make(map[string]any, len(in))
	for k, s := range in {
		out[k] = s.ToMap(v)
	}
	return out
}
