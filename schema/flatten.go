package schema

import "github.com/1ean267/nexustack-sub001/oaserrors"

// Flatten returns a builder that writes the fields of a record or the
// entries of a map directly into parent, removing one level of nesting.
//
// Options and newtypes are looked through; fields reached through an option
// become optional elements of the parent. Unit values contribute nothing.
// Every other shape fails with a ShapeError. The parent is never ended.
func Flatten(parent MapBuilder) Builder {
	return &flattenBuilder{parent: parent}
}

type flattenBuilder struct {
	Guard
	parent   MapBuilder
	optional bool
}

func (f *flattenBuilder) reject(got string) error {
	f.Finish()
	return &oaserrors.ShapeError{
		Adapter: "flatten",
		Message: "can only flatten structs and maps",
		Got:     got,
	}
}

func (f *flattenBuilder) DescribeOption(_ OptionOptions, inner Schema) error {
	f.Finish()
	return inner.DescribeSchema(&flattenBuilder{parent: f.parent, optional: true})
}

func (f *flattenBuilder) DescribeNewtypeStruct(_ SchemaID, _ NewtypeOptions, inner Schema) error {
	f.Finish()
	return inner.DescribeSchema(&flattenBuilder{parent: f.parent, optional: f.optional})
}

func (f *flattenBuilder) DescribeUnit(UnitOptions) error {
	f.Finish()
	return nil
}

func (f *flattenBuilder) DescribeUnitStruct(SchemaID, UnitOptions) error {
	f.Finish()
	return nil
}

func (f *flattenBuilder) DescribeStruct(SchemaID, StructOptions) (StructBuilder, error) {
	f.Finish()
	return &flattenFields{parent: f.parent, optional: f.optional}, nil
}

func (f *flattenBuilder) DescribeMap(SchemaID, MapOptions) (MapBuilder, error) {
	f.Finish()
	return &flattenFields{parent: f.parent, optional: f.optional}, nil
}

func (f *flattenBuilder) DescribeBool(BoolOptions) error              { return f.reject("a boolean") }
func (f *flattenBuilder) DescribeInt8(IntOptions[int8]) error         { return f.reject("an integer") }
func (f *flattenBuilder) DescribeInt16(IntOptions[int16]) error       { return f.reject("an integer") }
func (f *flattenBuilder) DescribeInt32(IntOptions[int32]) error       { return f.reject("an integer") }
func (f *flattenBuilder) DescribeInt64(IntOptions[int64]) error       { return f.reject("an integer") }
func (f *flattenBuilder) DescribeUint8(IntOptions[uint8]) error       { return f.reject("an integer") }
func (f *flattenBuilder) DescribeUint16(IntOptions[uint16]) error     { return f.reject("an integer") }
func (f *flattenBuilder) DescribeUint32(IntOptions[uint32]) error     { return f.reject("an integer") }
func (f *flattenBuilder) DescribeUint64(IntOptions[uint64]) error     { return f.reject("an integer") }
func (f *flattenBuilder) DescribeFloat32(FloatOptions[float32]) error { return f.reject("a float") }
func (f *flattenBuilder) DescribeFloat64(FloatOptions[float64]) error { return f.reject("a float") }
func (f *flattenBuilder) DescribeChar(CharOptions) error              { return f.reject("a char") }
func (f *flattenBuilder) DescribeString(StringOptions) error          { return f.reject("a string") }
func (f *flattenBuilder) DescribeBytes(BytesOptions) error            { return f.reject("a byte array") }
func (f *flattenBuilder) DescribeSeq(SeqOptions, Schema) error        { return f.reject("a sequence") }
func (f *flattenBuilder) DescribeNot(NotOptions, Schema) error        { return f.reject("a not combinator") }

func (f *flattenBuilder) DescribeTuple(TupleOptions) (TupleBuilder, error) {
	return ImpossibleTuple{}, f.reject("a tuple")
}

func (f *flattenBuilder) DescribeTupleStruct(SchemaID, TupleOptions) (TupleBuilder, error) {
	return ImpossibleTuple{}, f.reject("a tuple struct")
}

func (f *flattenBuilder) DescribeEnum(SchemaID, EnumOptions) (EnumBuilder, error) {
	return Impossible{}, f.reject("an enum")
}

func (f *flattenBuilder) DescribeCombinator(Combinator, CombinatorOptions) (CombinatorBuilder, error) {
	return Impossible{}, f.reject("a combinator")
}

// flattenFields redirects record fields and map entries into the parent.
type flattenFields struct {
	Guard
	parent   MapBuilder
	optional bool
}

func (f *flattenFields) DescribeField(key string, opts FieldOptions, s Schema) error {
	f.Check()
	if f.optional {
		return f.parent.DescribeOptionalElement(key, opts, s)
	}
	return f.parent.DescribeElement(key, opts, s)
}

func (f *flattenFields) DescribeOptionalField(key string, opts FieldOptions, s Schema) error {
	f.Check()
	return f.parent.DescribeOptionalElement(key, opts, s)
}

func (f *flattenFields) SkipField(key string) error {
	f.Check()
	return f.parent.SkipElement(key)
}

func (f *flattenFields) FlattenField(s Schema) error {
	f.Check()
	return s.DescribeSchema(&flattenBuilder{parent: f.parent, optional: f.optional})
}

func (f *flattenFields) DescribeElement(key string, opts FieldOptions, s Schema) error {
	return f.DescribeField(key, opts, s)
}

func (f *flattenFields) DescribeOptionalElement(key string, opts FieldOptions, s Schema) error {
	return f.DescribeOptionalField(key, opts, s)
}

func (f *flattenFields) DescribeAdditionalElements(key, value Schema, opts FieldOptions) error {
	f.Check()
	return f.parent.DescribeAdditionalElements(key, value, opts)
}

func (f *flattenFields) SkipElement(key string) error {
	return f.SkipField(key)
}

func (f *flattenFields) FlattenElement(s Schema) error {
	return f.FlattenField(s)
}

func (f *flattenFields) End() error {
	f.Finish()
	return nil
}
