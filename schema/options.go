package schema

import (
	"iter"

	"github.com/1ean267/nexustack-sub001/example"
)

// Number is the set of numeric types that carry bounds.
type Number interface {
	example.Integer | example.Float
}

// Bound is an optional numeric limit. The zero Bound is unbounded.
type Bound[T Number] struct {
	value     T
	set       bool
	exclusive bool
}

// Inclusive returns a bound that admits v itself.
func Inclusive[T Number](v T) Bound[T] {
	return Bound[T]{value: v, set: true}
}

// Exclusive returns a bound that excludes v.
func Exclusive[T Number](v T) Bound[T] {
	return Bound[T]{value: v, set: true, exclusive: true}
}

// Value returns the limit and whether one is set.
func (b Bound[T]) Value() (T, bool) { return b.value, b.set }

// IsExclusive reports whether the limit itself is excluded.
func (b Bound[T]) IsExclusive() bool { return b.set && b.exclusive }

// IsSet reports whether the bound limits anything.
func (b Bound[T]) IsSet() bool { return b.set }

// convertBound changes the numeric type of a bound.
func convertBound[T, U Number](b Bound[T]) Bound[U] {
	return Bound[U]{value: U(b.value), set: b.set, exclusive: b.exclusive}
}

// BoolOptions describe a boolean.
type BoolOptions struct {
	Description string
	Deprecated  bool
	Examples    iter.Seq[bool]
}

// IntOptions describe an integer of type T.
type IntOptions[T example.Integer] struct {
	Description string
	Deprecated  bool
	Min         Bound[T]
	Max         Bound[T]
	// MultipleOf restricts values to multiples of a non-zero value.
	MultipleOf T
	// Format overrides the format derived from the width.
	Format string
	// Only lists the allowed values.
	Only     []T
	Examples iter.Seq[T]
}

// FloatOptions describe a floating point number of type T.
type FloatOptions[T example.Float] struct {
	Description string
	Deprecated  bool
	Min         Bound[T]
	Max         Bound[T]
	MultipleOf  T
	// AllowNaN and AllowInf declare that the value may be NaN or infinite.
	// JSON cannot carry either, so they never show up in examples.
	AllowNaN bool
	AllowInf bool
	Format   string
	Examples iter.Seq[T]
}

// CharOptions describe a single character.
type CharOptions struct {
	Description string
	Deprecated  bool
	Only        []rune
	Examples    iter.Seq[rune]
}

// StringOptions describe a string.
type StringOptions struct {
	Description string
	Deprecated  bool
	// MinLength and MaxLength count code points.
	MinLength *int
	MaxLength *int
	// Pattern is an ECMA-262 style regular expression.
	Pattern  string
	Format   string
	Only     []string
	Examples iter.Seq[string]
}

// BytesOptions describe a byte sequence.
type BytesOptions struct {
	Description string
	Deprecated  bool
	MinLength   *int
	MaxLength   *int
	Examples    iter.Seq[[]byte]
}

// UnitOptions describe the unit value or a unit struct.
type UnitOptions struct {
	Description string
	Deprecated  bool
}

// OptionOptions describe an optional value.
type OptionOptions struct {
	Description string
	Deprecated  bool
	Examples    iter.Seq[any]
	// composed marks Examples derived from the inner schema.
	composed bool
}

// NewtypeOptions describe a named wrapper around a single inner schema.
type NewtypeOptions struct {
	Description string
	Deprecated  bool
	Examples    iter.Seq[any]
}

// SeqOptions describe a homogeneous sequence.
type SeqOptions struct {
	Description string
	Deprecated  bool
	MinItems    *int
	MaxItems    *int
	Unique      bool
	Examples    iter.Seq[any]
	// composed marks Examples derived from the element schema.
	composed bool
}

// TupleOptions describe a fixed size tuple or tuple struct.
type TupleOptions struct {
	Description string
	Deprecated  bool
	// Len is the number of elements that will be described.
	Len      int
	Examples iter.Seq[any]
}

// MapOptions describe a mapping.
type MapOptions struct {
	Description string
	Deprecated  bool
	// Len is a size hint for the number of named elements.
	Len      int
	Examples iter.Seq[any]
}

// StructOptions describe a record.
type StructOptions struct {
	Description string
	Deprecated  bool
	// Len is a size hint for the number of fields.
	Len      int
	Examples iter.Seq[any]
	// composed marks Examples derived from the fields.
	composed bool
}

// EnumOptions describe a tagged union.
type EnumOptions struct {
	Description string
	Deprecated  bool
	// Len is a size hint for the number of variants.
	Len int
	// NonExhaustive adds an alternative accepting every unknown variant.
	NonExhaustive bool
	// Tag selects the tagging convention. nil means ExternallyTagged.
	Tag      VariantTag
	Examples iter.Seq[any]
	// composed marks Examples derived from the variants.
	composed bool
}

// NotOptions describe a negated schema.
type NotOptions struct {
	Description string
	Deprecated  bool
	Examples    iter.Seq[any]
}

// CombinatorOptions describe an allOf, anyOf or oneOf composition.
type CombinatorOptions struct {
	Description string
	Deprecated  bool
	// Len is the number of subschemas that will be described.
	Len      int
	Examples iter.Seq[any]
}

// FieldMod restricts the direction in which a field is used.
type FieldMod int

const (
	// ReadWrite fields appear in requests and responses.
	ReadWrite FieldMod = iota
	// ReadOnly fields only appear in responses.
	ReadOnly
	// WriteOnly fields only appear in requests.
	WriteOnly
)

// FieldOptions describe a record field or map element.
type FieldOptions struct {
	Description string
	Deprecated  bool
	Mod         FieldMod
	// Default is the value assumed when an optional field is absent.
	Default any
}

// ElementOptions describe a tuple element.
type ElementOptions struct {
	Description string
	Deprecated  bool
}

// VariantOptions describe a union variant.
type VariantOptions struct {
	Description string
	Deprecated  bool
}

// VariantTag selects how the variant of a union is encoded.
// It is one of ExternallyTagged, InternallyTagged, AdjacentlyTagged or Untagged.
type VariantTag interface {
	variantTag()
}

// ExternallyTagged encodes a variant as {"Name": payload}; unit variants are
// the bare name.
type ExternallyTagged struct{}

// InternallyTagged merges a Tag property holding the variant name into the
// payload's own fields. Only unit and record shaped variants are allowed.
type InternallyTagged struct {
	Tag string
}

// AdjacentlyTagged encodes a variant as {Tag: "Name", Content: payload}.
type AdjacentlyTagged struct {
	Tag     string
	Content string
}

// Untagged encodes the bare payload of a variant.
type Untagged struct{}

func (ExternallyTagged) variantTag() {}
func (InternallyTagged) variantTag() {}
func (AdjacentlyTagged) variantTag() {}
func (Untagged) variantTag()         {}

// Combinator names a logical schema composition.
type Combinator int

const (
	// AllOf requires every subschema to match.
	AllOf Combinator = iota
	// AnyOf requires at least one subschema to match.
	AnyOf
	// OneOf requires exactly one subschema to match.
	OneOf
)

// String returns the JSON Schema keyword.
func (c Combinator) String() string {
	switch c {
	case AllOf:
		return "allOf"
	case AnyOf:
		return "anyOf"
	case OneOf:
		return "oneOf"
	default:
		return "unknown"
	}
}
