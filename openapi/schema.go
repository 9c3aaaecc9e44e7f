package openapi

// Schema is the superset in-memory schema model covering OpenAPI 3.0 and 3.1.
//
// Fields that are spelled differently by the two versions are stored once in
// a neutral form and translated by [Schema.ToMap]:
//   - Nullable: `nullable: true` (3.0) or a "null" entry in `type` (3.1)
//   - Examples: `example` with the first value (3.0) or `examples` (3.1)
//   - ExclusiveMinimum/ExclusiveMaximum: boolean flags next to
//     minimum/maximum (3.0) or numeric bounds (3.1)
//   - PrefixItems: `items: {oneOf: [...]}` (3.0) or `prefixItems` (3.1)
//   - PatternProperties: folded into additionalProperties (3.0)
//
// Numeric bounds hold int64, uint64 or float64 values so that the full range
// of 64-bit integers survives serialization.
type Schema struct {
	Ref string

	// Metadata
	Title        string
	Description  string
	Default      any
	Examples     []any
	Deprecated   bool
	ReadOnly     bool
	WriteOnly    bool
	XML          *XML
	ExternalDocs *ExternalDocs

	// Type validation
	Types    []string
	Nullable bool
	Enum     []any
	Format   string

	// Numeric validation
	MultipleOf       any
	Minimum          any
	ExclusiveMinimum bool
	Maximum          any
	ExclusiveMaximum bool

	// String validation
	MinLength *int
	MaxLength *int
	Pattern   string

	// Array validation
	Items       *Schema
	PrefixItems []*Schema
	MinItems    *int
	MaxItems    *int
	UniqueItems bool

	// Object validation
	Properties           map[string]*Schema
	PatternProperties    map[string]*Schema
	AdditionalProperties *Schema
	Required             []string
	MinProperties        *int
	MaxProperties        *int

	// Composition
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	Discriminator *Discriminator
}

// Discriminator represents a discriminator for polymorphism.
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// XML represents metadata for XML encoding.
type XML struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool   `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
}

// Ptr returns a pointer to v. Handy for the optional integer limits.
func Ptr[T any](v T) *T {
	return &v
}

// RefTo returns a reference schema pointing at ref.
func RefTo(ref string) *Schema {
	return &Schema{Ref: ref}
}

// IsRef reports whether s is a bare reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// HasType reports whether t is one of the schema's types.
func (s *Schema) HasType(t string) bool {
	if s == nil {
		return false
	}
	for _, typ := range s.Types {
		if typ == t {
			return true
		}
	}
	return false
}

// NullSchema returns the schema accepting only null.
func NullSchema() *Schema {
	return &Schema{Types: []string{"null"}, Examples: []any{nil}}
}

// Clone returns a shallow copy whose slices and maps can be modified
// without affecting s. Nested schemas are shared.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	c := *s
	c.Types = append([]string(nil), s.Types...)
	c.Examples = append([]any(nil), s.Examples...)
	c.Enum = append([]any(nil), s.Enum...)
	c.Required = append([]string(nil), s.Required...)
	c.PrefixItems = append([]*Schema(nil), s.PrefixItems...)
	c.AllOf = append([]*Schema(nil), s.AllOf...)
	c.AnyOf = append([]*Schema(nil), s.AnyOf...)
	c.OneOf = append([]*Schema(nil), s.OneOf...)
	if s.Properties != nil {
		c.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			c.Properties[k] = v
		}
	}
	if s.PatternProperties != nil {
		c.PatternProperties = make(map[string]*Schema, len(s.PatternProperties))
		for k, v := range s.PatternProperties {
			c.PatternProperties[k] = v
		}
	}
	return &c
}
