package schema

import (
	"iter"

	"github.com/1ean267/nexustack-sub001/oaserrors"
)

// Schema is implemented by every type that can describe its own shape.
//
// DescribeSchema drives exactly one shape call on b and returns its error.
// Implementations must be pure: describing the same type twice against
// equivalent builders produces identical calls.
type Schema interface {
	DescribeSchema(b Builder) error
}

// SchemaFunc adapts a function to the Schema interface.
type SchemaFunc func(b Builder) error

// DescribeSchema calls f(b).
func (f SchemaFunc) DescribeSchema(b Builder) error { return f(b) }

// Type is a Schema that also knows representative values of T.
type Type[T any] interface {
	Schema
	// Examples returns a finite, deterministic, restartable sequence.
	Examples() iter.Seq[T]
}

// Sink receives the result of a finished builder session.
type Sink[R any] func(R) error

// Factory creates a builder session that delivers its result to sink.
// Nested schemas are described against fresh sessions created by the
// same factory.
type Factory[R any] func(sink Sink[R]) Builder

// Describe walks s against a new session of f and returns the result.
func Describe[R any](f Factory[R], s Schema) (R, error) {
	var (
		out R
		got bool
	)
	b := f(func(r R) error {
		out, got = r, true
		return nil
	})
	if err := s.DescribeSchema(b); err != nil {
		var zero R
		return zero, err
	}
	if !got {
		var zero R
		return zero, &oaserrors.ShapeError{Message: "schema finished without describing a shape"}
	}
	return out, nil
}

// Builder is the capability protocol: one method per structural shape.
//
// A Builder is a single-use session. The first shape call consumes it;
// terminal shapes deliver their result to the session's sink before returning,
// shapes with members return a sub-builder that delivers the result on End.
// Calling a finished session panics.
type Builder interface {
	DescribeOption(opts OptionOptions, inner Schema) error
	DescribeBool(opts BoolOptions) error

	DescribeInt8(opts IntOptions[int8]) error
	DescribeInt16(opts IntOptions[int16]) error
	DescribeInt32(opts IntOptions[int32]) error
	DescribeInt64(opts IntOptions[int64]) error
	DescribeUint8(opts IntOptions[uint8]) error
	DescribeUint16(opts IntOptions[uint16]) error
	DescribeUint32(opts IntOptions[uint32]) error
	DescribeUint64(opts IntOptions[uint64]) error
	DescribeFloat32(opts FloatOptions[float32]) error
	DescribeFloat64(opts FloatOptions[float64]) error

	DescribeChar(opts CharOptions) error
	DescribeString(opts StringOptions) error
	DescribeBytes(opts BytesOptions) error
	DescribeUnit(opts UnitOptions) error
	DescribeUnitStruct(id SchemaID, opts UnitOptions) error
	DescribeNewtypeStruct(id SchemaID, opts NewtypeOptions, inner Schema) error

	DescribeSeq(opts SeqOptions, element Schema) error
	DescribeTuple(opts TupleOptions) (TupleBuilder, error)
	DescribeTupleStruct(id SchemaID, opts TupleOptions) (TupleBuilder, error)
	DescribeMap(id SchemaID, opts MapOptions) (MapBuilder, error)
	DescribeStruct(id SchemaID, opts StructOptions) (StructBuilder, error)
	DescribeEnum(id SchemaID, opts EnumOptions) (EnumBuilder, error)

	DescribeNot(opts NotOptions, inner Schema) error
	DescribeCombinator(kind Combinator, opts CombinatorOptions) (CombinatorBuilder, error)
}

// TupleBuilder collects the elements of a tuple in order.
type TupleBuilder interface {
	DescribeElement(s Schema, opts ElementOptions) error
	End() error
}

// StructBuilder collects the fields of a record.
type StructBuilder interface {
	// DescribeField adds a required field.
	DescribeField(key string, opts FieldOptions, s Schema) error
	// DescribeOptionalField adds a field that may be absent.
	DescribeOptionalField(key string, opts FieldOptions, s Schema) error
	// SkipField records a field that is never serialized.
	SkipField(key string) error
	// FlattenField merges the fields of a record or map into this record.
	FlattenField(s Schema) error
	End() error
}

// MapBuilder collects the entries of a mapping.
type MapBuilder interface {
	DescribeElement(key string, opts FieldOptions, s Schema) error
	DescribeOptionalElement(key string, opts FieldOptions, s Schema) error
	// DescribeAdditionalElements admits every other key matching key, each
	// holding a value.
	DescribeAdditionalElements(key, value Schema, opts FieldOptions) error
	SkipElement(key string) error
	FlattenElement(s Schema) error
	End() error
}

// EnumBuilder collects the variants of a tagged union.
type EnumBuilder interface {
	DescribeUnitVariant(index int, name string, opts VariantOptions) error
	DescribeNewtypeVariant(index int, name string, opts VariantOptions, s Schema) error
	DescribeTupleVariant(index int, name string, opts VariantOptions, length int) (TupleBuilder, error)
	DescribeStructVariant(index int, name string, opts VariantOptions, length int) (StructBuilder, error)
	End() error
}

// CombinatorBuilder collects the subschemas of an allOf, anyOf or oneOf.
type CombinatorBuilder interface {
	DescribeSubschema(s Schema) error
	End() error
}

const finishedMessage = "builder session already finished"

// Guard enforces the single-use contract of sessions and sub-builders.
// Embed it and call Check on every call and Finish on the consuming one.
type Guard struct {
	done bool
}

// Check panics if the session was finished.
func (g *Guard) Check() {
	if g.done {
		panic(finishedMessage)
	}
}

// Finish marks the session finished; it panics if it already was.
func (g *Guard) Finish() {
	g.Check()
	g.done = true
}

// Finished reports whether Finish was called.
func (g *Guard) Finished() bool { return g.done }
