package schema

import (
	"iter"
	"maps"
	"math"

	"github.com/1ean267/nexustack-sub001/example"
)

// Records, unions, Nullable and Seq compose their examples from their
// members. Composition walks the members with an example collecting
// builder; a named shape met again inside itself contributes nothing, so
// recursive types terminate.

const (
	// maxComposed caps the examples composed for one shape.
	maxComposed = 10
	// maxExampleDepth bounds nesting for shapes that recurse without an id.
	maxExampleDepth = 32
)

// ExamplesOf returns the examples s hands to its builder, in JSON form.
// It returns nil when s describes none.
func ExamplesOf(s Schema) []any {
	return exampleScope{}.of(s)
}

// exampleScope tracks the named shapes being composed.
type exampleScope struct {
	visiting []SchemaID
	depth    int
}

func (sc exampleScope) of(s Schema) []any {
	if sc.depth > maxExampleDepth || s == nil {
		return nil
	}
	out, err := Describe(func(sink Sink[[]any]) Builder {
		return &exampleSession{scope: sc, sink: sink}
	}, s)
	if err != nil {
		return nil
	}
	return out
}

func (sc exampleScope) nested() exampleScope {
	return exampleScope{visiting: sc.visiting, depth: sc.depth + 1}
}

// enter returns the scope inside id; ok is false when id is already open.
func (sc exampleScope) enter(id SchemaID) (exampleScope, bool) {
	next := sc.nested()
	if id.IsZero() {
		return next, true
	}
	for _, v := range sc.visiting {
		if v == id {
			return sc, false
		}
	}
	next.visiting = append(append([]SchemaID{}, sc.visiting...), id)
	return next, true
}

// lazily defers f until the sequence is iterated.
func lazily(f func() []any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range f() {
			if !yield(v) {
				return
			}
		}
	}
}

// recordExamples zips the field examples into objects. Every required
// field needs an example; optional fields are set while theirs last.
func (sc exampleScope) recordExamples(fields []Field) []any {
	type member struct {
		field    Field
		examples []any
	}
	members := make([]member, 0, len(fields))
	n, bounded := 0, false
	for _, f := range fields {
		if f.Skip {
			continue
		}
		ex := sc.of(f.Schema)
		if !f.Optional {
			if len(ex) == 0 {
				return nil
			}
			if !bounded || len(ex) < n {
				n, bounded = len(ex), true
			}
		} else if !bounded && len(ex) > n {
			n = len(ex)
		}
		members = append(members, member{field: f, examples: ex})
	}
	if !bounded && n == 0 {
		n = 1
	}
	n = min(n, maxComposed)

	out := make([]any, 0, n)
	for i := range n {
		record := make(map[string]any, len(members))
		ok := true
		for _, m := range members {
			if i >= len(m.examples) {
				continue
			}
			if !m.field.Flatten {
				record[m.field.Name] = m.examples[i]
				continue
			}
			inner, isObject := m.examples[i].(map[string]any)
			if !isObject {
				ok = false
				break
			}
			maps.Copy(record, inner)
		}
		if ok {
			out = append(out, record)
		}
	}
	return out
}

// unionExamples yields the first example of every variant, encoded with tag.
func (sc exampleScope) unionExamples(tag VariantTag, variants []Variant) []any {
	var out []any
	for _, v := range variants {
		var payload []any
		switch v.Kind {
		case UnitKind:
			if ex, ok := encodeVariant(tag, v.Name, UnitKind, nil); ok {
				out = append(out, ex)
			}
			continue
		case NewtypeKind:
			payload = sc.of(v.Payload)
		case TupleKind:
			payload = sc.tupleExamples(v.Items)
		case StructKind:
			payload = sc.recordExamples(v.Fields)
		}
		if len(payload) == 0 {
			continue
		}
		if ex, ok := encodeVariant(tag, v.Name, v.Kind, payload[0]); ok {
			out = append(out, ex)
		}
		if len(out) == maxComposed {
			break
		}
	}
	return out
}

// encodeVariant places a variant payload the way the union encodes it.
func encodeVariant(tag VariantTag, name string, kind VariantKind, payload any) (any, bool) {
	switch t := tag.(type) {
	case InternallyTagged:
		if kind == UnitKind {
			return map[string]any{t.Tag: name}, true
		}
		obj, ok := payload.(map[string]any)
		if !ok || kind == TupleKind {
			return nil, false
		}
		out := maps.Clone(obj)
		out[t.Tag] = name
		return out, true
	case AdjacentlyTagged:
		if kind == UnitKind {
			return map[string]any{t.Tag: name}, true
		}
		return map[string]any{t.Tag: name, t.Content: payload}, true
	case Untagged:
		return payload, true
	default:
		if kind == UnitKind {
			return name, true
		}
		return map[string]any{name: payload}, true
	}
}

// tupleExamples zips element examples into arrays.
func (sc exampleScope) tupleExamples(items []Schema) []any {
	columns := make([][]any, len(items))
	n := maxComposed
	for i, s := range items {
		columns[i] = sc.of(s)
		n = min(n, len(columns[i]))
	}
	out := make([]any, 0, n)
	for i := range n {
		row := make([]any, len(items))
		for j := range items {
			row[j] = columns[j][i]
		}
		out = append(out, row)
	}
	return out
}

func (sc exampleScope) optionExamples(inner Schema) []any {
	return append(sc.nested().of(inner), nil)
}

// seqExamples yields prefixes of the element examples of length 0, 1, 2
// and 10 within the item bounds.
func (sc exampleScope) seqExamples(elem Schema, opts SeqOptions) []any {
	elems := sc.nested().of(elem)
	if opts.Unique {
		elems = uniqueJSON(elems)
	}
	var out []any
	seen := make(map[int]bool)
	for _, n := range []int{0, 1, 2, 10} {
		n = min(n, len(elems))
		if seen[n] || !opts.allowsLen(n) {
			continue
		}
		seen[n] = true
		out = append(out, append([]any{}, elems[:n]...))
	}
	return out
}

// uniqueJSON drops repeated scalar values. Composite values are kept.
func uniqueJSON(values []any) []any {
	seen := make(map[any]bool)
	out := values[:0:0]
	for _, v := range values {
		switch v.(type) {
		case map[string]any, []any:
			out = append(out, v)
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Nullable describes s or null. Unlike Option it accepts any Schema; its
// examples are those of s followed by null.
func Nullable(s Schema, opts OptionOptions) Schema {
	return SchemaFunc(func(b Builder) error {
		o := opts
		if o.Examples == nil {
			o.Examples = lazily(func() []any { return exampleScope{}.optionExamples(s) })
			o.composed = true
		}
		return b.DescribeOption(o, s)
	})
}

// Seq describes a homogeneous sequence of s. Unlike Slice it accepts any
// Schema; its examples are prefixes of the examples of s.
func Seq(s Schema, opts SeqOptions) Schema {
	return SchemaFunc(func(b Builder) error {
		o := opts
		if o.Examples == nil {
			o.Examples = lazily(func() []any { return exampleScope{}.seqExamples(s, o) })
			o.composed = true
		}
		return b.DescribeSeq(o, s)
	})
}

// exampleSession collects the examples of the outermost shape it is
// handed. Composed examples are rebuilt in its scope.
type exampleSession struct {
	Guard
	scope exampleScope
	sink  Sink[[]any]
}

func (e *exampleSession) deliver(examples []any) error {
	e.Finish()
	return e.sink(examples)
}

func (e *exampleSession) collect(seq iter.Seq[any]) error {
	if seq == nil {
		return e.deliver(nil)
	}
	return e.deliver(example.Collect(example.Take(seq, maxComposed)))
}

// typed collects a typed sequence through conv.
func typed[T any](e *exampleSession, seq iter.Seq[T], conv func(T) any) error {
	if seq == nil {
		return e.deliver(nil)
	}
	return e.collect(example.Map(seq, conv))
}

func signedJSON[T example.Signed](v T) any     { return int64(v) }
func unsignedJSON[T example.Unsigned](v T) any { return uint64(v) }

// floatJSON keeps NaN and infinities out of the examples; JSON has no
// spelling for them.
func floatJSON[T example.Float](seq iter.Seq[T]) iter.Seq[any] {
	if seq == nil {
		return nil
	}
	finite := example.Filter(seq, func(v T) bool {
		f := float64(v)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return example.Map(finite, func(v T) any { return float64(v) })
}

func (e *exampleSession) DescribeOption(opts OptionOptions, inner Schema) error {
	if opts.composed {
		return e.deliver(e.scope.optionExamples(inner))
	}
	return e.collect(opts.Examples)
}

func (e *exampleSession) DescribeBool(opts BoolOptions) error {
	return typed(e, opts.Examples, func(v bool) any { return v })
}

func (e *exampleSession) DescribeInt8(opts IntOptions[int8]) error {
	return typed(e, opts.Examples, signedJSON[int8])
}

func (e *exampleSession) DescribeInt16(opts IntOptions[int16]) error {
	return typed(e, opts.Examples, signedJSON[int16])
}

func (e *exampleSession) DescribeInt32(opts IntOptions[int32]) error {
	return typed(e, opts.Examples, signedJSON[int32])
}

func (e *exampleSession) DescribeInt64(opts IntOptions[int64]) error {
	return typed(e, opts.Examples, signedJSON[int64])
}

func (e *exampleSession) DescribeUint8(opts IntOptions[uint8]) error {
	return typed(e, opts.Examples, unsignedJSON[uint8])
}

func (e *exampleSession) DescribeUint16(opts IntOptions[uint16]) error {
	return typed(e, opts.Examples, unsignedJSON[uint16])
}

func (e *exampleSession) DescribeUint32(opts IntOptions[uint32]) error {
	return typed(e, opts.Examples, unsignedJSON[uint32])
}

func (e *exampleSession) DescribeUint64(opts IntOptions[uint64]) error {
	return typed(e, opts.Examples, unsignedJSON[uint64])
}

func (e *exampleSession) DescribeFloat32(opts FloatOptions[float32]) error {
	return e.collect(floatJSON(opts.Examples))
}

func (e *exampleSession) DescribeFloat64(opts FloatOptions[float64]) error {
	return e.collect(floatJSON(opts.Examples))
}

func (e *exampleSession) DescribeChar(opts CharOptions) error {
	return typed(e, opts.Examples, charType{}.EncodeExample)
}

func (e *exampleSession) DescribeString(opts StringOptions) error {
	return typed(e, opts.Examples, func(v string) any { return v })
}

func (e *exampleSession) DescribeBytes(opts BytesOptions) error {
	return typed(e, opts.Examples, bytesType{}.EncodeExample)
}

func (e *exampleSession) DescribeUnit(UnitOptions) error {
	return e.deliver([]any{nil})
}

func (e *exampleSession) DescribeUnitStruct(SchemaID, UnitOptions) error {
	return e.deliver([]any{nil})
}

func (e *exampleSession) DescribeNewtypeStruct(_ SchemaID, opts NewtypeOptions, _ Schema) error {
	return e.collect(opts.Examples)
}

func (e *exampleSession) DescribeSeq(opts SeqOptions, element Schema) error {
	if opts.composed {
		return e.deliver(e.scope.seqExamples(element, opts))
	}
	return e.collect(opts.Examples)
}

func (e *exampleSession) DescribeTuple(opts TupleOptions) (TupleBuilder, error) {
	e.Finish()
	return exampleElements{&exampleFields{deliver: e.collectLater(opts.Examples)}}, nil
}

func (e *exampleSession) DescribeTupleStruct(_ SchemaID, opts TupleOptions) (TupleBuilder, error) {
	e.Finish()
	return exampleElements{&exampleFields{deliver: e.collectLater(opts.Examples)}}, nil
}

func (e *exampleSession) DescribeMap(_ SchemaID, opts MapOptions) (MapBuilder, error) {
	e.Finish()
	return &exampleFields{deliver: e.collectLater(opts.Examples)}, nil
}

func (e *exampleSession) DescribeStruct(id SchemaID, opts StructOptions) (StructBuilder, error) {
	e.Finish()
	if !opts.composed {
		return &exampleFields{deliver: e.collectLater(opts.Examples)}, nil
	}
	inner, ok := e.scope.enter(id)
	if !ok {
		return &exampleFields{deliver: func([]Field) error { return e.sink(nil) }}, nil
	}
	return &exampleFields{deliver: func(fields []Field) error {
		return e.sink(inner.recordExamples(fields))
	}}, nil
}

func (e *exampleSession) DescribeEnum(id SchemaID, opts EnumOptions) (EnumBuilder, error) {
	e.Finish()
	if !opts.composed {
		return &exampleVariants{deliver: func([]Variant) error {
			return e.sink(example.Collect(example.Take(orEmpty(opts.Examples), maxComposed)))
		}}, nil
	}
	inner, ok := e.scope.enter(id)
	if !ok {
		return &exampleVariants{deliver: func([]Variant) error { return e.sink(nil) }}, nil
	}
	return &exampleVariants{deliver: func(variants []Variant) error {
		return e.sink(inner.unionExamples(opts.Tag, variants))
	}}, nil
}

func (e *exampleSession) DescribeNot(opts NotOptions, _ Schema) error {
	return e.collect(opts.Examples)
}

func (e *exampleSession) DescribeCombinator(_ Combinator, opts CombinatorOptions) (CombinatorBuilder, error) {
	e.Finish()
	return &exampleFields{deliver: e.collectLater(opts.Examples)}, nil
}

// collectLater delivers seq once the members of a composite are described.
func (e *exampleSession) collectLater(seq iter.Seq[any]) func([]Field) error {
	return func([]Field) error {
		return e.sink(example.Collect(example.Take(orEmpty(seq), maxComposed)))
	}
}

func orEmpty(seq iter.Seq[any]) iter.Seq[any] {
	if seq == nil {
		return example.Empty[any]()
	}
	return seq
}

// exampleFields records the members of a record, map, tuple or combinator
// as a field table.
type exampleFields struct {
	Guard
	fields  []Field
	deliver func([]Field) error
}

func (f *exampleFields) add(field Field) error {
	f.Check()
	f.fields = append(f.fields, field)
	return nil
}

func (f *exampleFields) DescribeField(key string, opts FieldOptions, s Schema) error {
	return f.add(Field{Name: key, Options: opts, Schema: s})
}

func (f *exampleFields) DescribeOptionalField(key string, opts FieldOptions, s Schema) error {
	return f.add(Field{Name: key, Options: opts, Schema: s, Optional: true})
}

func (f *exampleFields) SkipField(key string) error {
	return f.add(Field{Name: key, Skip: true})
}

func (f *exampleFields) FlattenField(s Schema) error {
	return f.add(Field{Schema: s, Flatten: true})
}

func (f *exampleFields) DescribeElement(key string, opts FieldOptions, s Schema) error {
	return f.DescribeField(key, opts, s)
}

func (f *exampleFields) DescribeOptionalElement(key string, opts FieldOptions, s Schema) error {
	return f.DescribeOptionalField(key, opts, s)
}

func (f *exampleFields) DescribeAdditionalElements(Schema, Schema, FieldOptions) error {
	f.Check()
	return nil
}

func (f *exampleFields) SkipElement(key string) error { return f.SkipField(key) }

func (f *exampleFields) FlattenElement(s Schema) error { return f.FlattenField(s) }

func (f *exampleFields) DescribeSubschema(s Schema) error {
	return f.add(Field{Schema: s})
}

func (f *exampleFields) End() error {
	f.Finish()
	return f.deliver(f.fields)
}

// exampleElements lets exampleFields act as tuple builder.
type exampleElements struct{ *exampleFields }

func (t exampleElements) DescribeElement(s Schema, _ ElementOptions) error {
	return t.add(Field{Schema: s})
}

// exampleVariants records the variants of a union.
type exampleVariants struct {
	Guard
	variants []Variant
	deliver  func([]Variant) error
}

func (v *exampleVariants) DescribeUnitVariant(_ int, name string, opts VariantOptions) error {
	v.Check()
	v.variants = append(v.variants, Variant{Name: name, Kind: UnitKind, Options: opts})
	return nil
}

func (v *exampleVariants) DescribeNewtypeVariant(_ int, name string, opts VariantOptions, s Schema) error {
	v.Check()
	v.variants = append(v.variants, Variant{Name: name, Kind: NewtypeKind, Options: opts, Payload: s})
	return nil
}

func (v *exampleVariants) DescribeTupleVariant(_ int, name string, opts VariantOptions, _ int) (TupleBuilder, error) {
	v.Check()
	return exampleElements{&exampleFields{deliver: func(fields []Field) error {
		items := make([]Schema, len(fields))
		for i, f := range fields {
			items[i] = f.Schema
		}
		v.variants = append(v.variants, Variant{Name: name, Kind: TupleKind, Options: opts, Items: items})
		return nil
	}}}, nil
}

func (v *exampleVariants) DescribeStructVariant(_ int, name string, opts VariantOptions, _ int) (StructBuilder, error) {
	v.Check()
	return &exampleFields{deliver: func(fields []Field) error {
		v.variants = append(v.variants, Variant{Name: name, Kind: StructKind, Options: opts, Fields: fields})
		return nil
	}}, nil
}

func (v *exampleVariants) End() error {
	v.Finish()
	return v.deliver(v.variants)
}
