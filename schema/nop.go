package schema

// Nop returns a factory whose sessions accept every call, record nothing and
// deliver result once the shape is complete. Nested schemas are never
// walked, so Nop is safe on recursive types and useful to switch schema
// generation off or as a test double.
func Nop[R any](result R) Factory[R] {
	return func(sink Sink[R]) Builder {
		return &nopBuilder[R]{sink: sink, result: result}
	}
}

type nopBuilder[R any] struct {
	Guard
	sink   Sink[R]
	result R
}

func (n *nopBuilder[R]) done() error {
	n.Finish()
	return n.sink(n.result)
}

func (n *nopBuilder[R]) sub() *nopSub[R] {
	n.Finish()
	return &nopSub[R]{deliver: func() error { return n.sink(n.result) }}
}

func (n *nopBuilder[R]) DescribeOption(OptionOptions, Schema) error     { return n.done() }
func (n *nopBuilder[R]) DescribeBool(BoolOptions) error                 { return n.done() }
func (n *nopBuilder[R]) DescribeInt8(IntOptions[int8]) error            { return n.done() }
func (n *nopBuilder[R]) DescribeInt16(IntOptions[int16]) error          { return n.done() }
func (n *nopBuilder[R]) DescribeInt32(IntOptions[int32]) error          { return n.done() }
func (n *nopBuilder[R]) DescribeInt64(IntOptions[int64]) error          { return n.done() }
func (n *nopBuilder[R]) DescribeUint8(IntOptions[uint8]) error          { return n.done() }
func (n *nopBuilder[R]) DescribeUint16(IntOptions[uint16]) error        { return n.done() }
func (n *nopBuilder[R]) DescribeUint32(IntOptions[uint32]) error        { return n.done() }
func (n *nopBuilder[R]) DescribeUint64(IntOptions[uint64]) error        { return n.done() }
func (n *nopBuilder[R]) DescribeFloat32(FloatOptions[float32]) error    { return n.done() }
func (n *nopBuilder[R]) DescribeFloat64(FloatOptions[float64]) error    { return n.done() }
func (n *nopBuilder[R]) DescribeChar(CharOptions) error                 { return n.done() }
func (n *nopBuilder[R]) DescribeString(StringOptions) error             { return n.done() }
func (n *nopBuilder[R]) DescribeBytes(BytesOptions) error               { return n.done() }
func (n *nopBuilder[R]) DescribeUnit(UnitOptions) error                 { return n.done() }
func (n *nopBuilder[R]) DescribeUnitStruct(SchemaID, UnitOptions) error { return n.done() }
func (n *nopBuilder[R]) DescribeSeq(SeqOptions, Schema) error           { return n.done() }
func (n *nopBuilder[R]) DescribeNot(NotOptions, Schema) error           { return n.done() }

func (n *nopBuilder[R]) DescribeNewtypeStruct(SchemaID, NewtypeOptions, Schema) error {
	return n.done()
}

func (n *nopBuilder[R]) DescribeTuple(TupleOptions) (TupleBuilder, error) {
	return nopTuple[R]{n.sub()}, nil
}

func (n *nopBuilder[R]) DescribeTupleStruct(SchemaID, TupleOptions) (TupleBuilder, error) {
	return nopTuple[R]{n.sub()}, nil
}

func (n *nopBuilder[R]) DescribeMap(SchemaID, MapOptions) (MapBuilder, error) {
	return n.sub(), nil
}

func (n *nopBuilder[R]) DescribeStruct(SchemaID, StructOptions) (StructBuilder, error) {
	return n.sub(), nil
}

func (n *nopBuilder[R]) DescribeEnum(SchemaID, EnumOptions) (EnumBuilder, error) {
	return &nopEnum[R]{nopSub: n.sub()}, nil
}

func (n *nopBuilder[R]) DescribeCombinator(Combinator, CombinatorOptions) (CombinatorBuilder, error) {
	return n.sub(), nil
}

// nopSub serves as struct, map and combinator builder. Its tuple form is
// nopTuple because the tuple and map element methods differ.
type nopSub[R any] struct {
	Guard
	deliver func() error
}

func (s *nopSub[R]) ok() error {
	s.Check()
	return nil
}

func (s *nopSub[R]) DescribeField(string, FieldOptions, Schema) error         { return s.ok() }
func (s *nopSub[R]) DescribeOptionalField(string, FieldOptions, Schema) error { return s.ok() }
func (s *nopSub[R]) SkipField(string) error                                   { return s.ok() }
func (s *nopSub[R]) FlattenField(Schema) error                                { return s.ok() }
func (s *nopSub[R]) DescribeElement(string, FieldOptions, Schema) error       { return s.ok() }
func (s *nopSub[R]) DescribeOptionalElement(string, FieldOptions, Schema) error {
	return s.ok()
}
func (s *nopSub[R]) DescribeAdditionalElements(Schema, Schema, FieldOptions) error {
	return s.ok()
}
func (s *nopSub[R]) SkipElement(string) error       { return s.ok() }
func (s *nopSub[R]) FlattenElement(Schema) error    { return s.ok() }
func (s *nopSub[R]) DescribeSubschema(Schema) error { return s.ok() }

func (s *nopSub[R]) End() error {
	s.Finish()
	return s.deliver()
}

// nopTuple lets a nopSub act as tuple builder.
type nopTuple[R any] struct{ *nopSub[R] }

func (t nopTuple[R]) DescribeElement(Schema, ElementOptions) error { return t.ok() }

type nopEnum[R any] struct{ *nopSub[R] }

func (e *nopEnum[R]) DescribeUnitVariant(int, string, VariantOptions) error { return e.ok() }

func (e *nopEnum[R]) DescribeNewtypeVariant(int, string, VariantOptions, Schema) error {
	return e.ok()
}

func (e *nopEnum[R]) DescribeTupleVariant(int, string, VariantOptions, int) (TupleBuilder, error) {
	e.Check()
	return nopTuple[R]{&nopSub[R]{deliver: noDelivery}}, nil
}

func (e *nopEnum[R]) DescribeStructVariant(int, string, VariantOptions, int) (StructBuilder, error) {
	e.Check()
	return &nopSub[R]{deliver: noDelivery}, nil
}

func noDelivery() error { return nil }
