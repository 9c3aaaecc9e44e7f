package schema

import (
	"iter"

	"github.com/1ean267/nexustack-sub001/example"
	"github.com/goccy/go-json"
)

type optionType[T any] struct {
	inner Type[T]
	opts  OptionOptions
}

// Option describes a value that may be absent, represented as a nil pointer.
func Option[T any](inner Type[T], opts OptionOptions) Type[*T] {
	return optionType[T]{inner: inner, opts: opts}
}

func (t optionType[T]) Examples() iter.Seq[*T] {
	some := example.Map(t.inner.Examples(), func(v T) *T { return &v })
	return example.Chain(some, example.Of[*T](nil))
}

func (t optionType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	return b.DescribeOption(opts, t.inner)
}

type sliceType[T any] struct {
	elem Type[T]
	opts SeqOptions
}

// Slice describes a homogeneous sequence.
func Slice[T any](elem Type[T], opts SeqOptions) Type[[]T] {
	return sliceType[T]{elem: elem, opts: opts}
}

// Set describes a sequence of unique values.
func Set[T any](elem Type[T], opts SeqOptions) Type[[]T] {
	opts.Unique = true
	return sliceType[T]{elem: elem, opts: opts}
}

// Examples yields the empty slice and prefixes of the element examples of
// length 1, 2 and 10, skipping lengths outside the item bounds.
func (t sliceType[T]) Examples() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		elems := example.Collect(example.Take(t.elem.Examples(), 10))
		seen := make(map[int]bool)
		for _, n := range []int{0, 1, 2, 10} {
			if n > len(elems) {
				n = len(elems)
			}
			if seen[n] || !t.opts.allowsLen(n) {
				continue
			}
			seen[n] = true
			if !yield(append([]T{}, elems[:n]...)) {
				return
			}
		}
	}
}

func (t sliceType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	return b.DescribeSeq(opts, t.elem)
}

type mapType[K comparable, V any] struct {
	key   Type[K]
	value Type[V]
	opts  MapOptions
}

// Map describes a mapping whose keys are described by key. Keys must be
// string-like (strings, integers, floats, booleans, chars) to appear in
// JSON; examples use the same key text the key schema's pattern admits.
func Map[K comparable, V any](key Type[K], value Type[V], opts MapOptions) Type[map[K]V] {
	return mapType[K, V]{key: key, value: value, opts: opts}
}

// Examples yields the empty map and the map zipping key and value examples.
func (t mapType[K, V]) Examples() iter.Seq[map[K]V] {
	return func(yield func(map[K]V) bool) {
		if !yield(map[K]V{}) {
			return
		}
		m := make(map[K]V)
		for kv := range example.Zip(t.key.Examples(), t.value.Examples(), func(k K, v V) Pair[K, V] {
			return Pair[K, V]{First: k, Second: v}
		}) {
			m[kv.First] = kv.Second
		}
		if len(m) > 0 {
			yield(m)
		}
	}
}

func (t mapType[K, V]) DescribeSchema(b Builder) error {
	opts := t.opts
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	mb, err := b.DescribeMap(SchemaID{}, opts)
	if err != nil {
		return err
	}
	if err := mb.DescribeAdditionalElements(t.key, t.value, FieldOptions{}); err != nil {
		return err
	}
	return mb.End()
}

// Pair is a two element tuple. It encodes as a JSON array.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MarshalJSON encodes p as [First, Second].
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.First, p.Second})
}

// Triple is a three element tuple. It encodes as a JSON array.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MarshalJSON encodes t as [First, Second, Third].
func (t Triple[A, B, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.First, t.Second, t.Third})
}

type tuple2Type[A, B any] struct {
	a    Type[A]
	b    Type[B]
	opts TupleOptions
}

// Tuple2 describes a fixed pair.
func Tuple2[A, B any](a Type[A], b Type[B], opts TupleOptions) Type[Pair[A, B]] {
	opts.Len = 2
	return tuple2Type[A, B]{a: a, b: b, opts: opts}
}

func (t tuple2Type[A, B]) Examples() iter.Seq[Pair[A, B]] {
	return example.Zip(t.a.Examples(), t.b.Examples(), func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

func (t tuple2Type[A, B]) DescribeSchema(b Builder) error {
	opts := t.opts
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	opts.Len = 2
	tb, err := b.DescribeTuple(opts)
	if err != nil {
		return err
	}
	return describeElements(tb, t.a, t.b)
}

type tuple3Type[A, B, C any] struct {
	a    Type[A]
	b    Type[B]
	c    Type[C]
	opts TupleOptions
}

// Tuple3 describes a fixed triple.
func Tuple3[A, B, C any](a Type[A], b Type[B], c Type[C], opts TupleOptions) Type[Triple[A, B, C]] {
	opts.Len = 3
	return tuple3Type[A, B, C]{a: a, b: b, c: c, opts: opts}
}

func (t tuple3Type[A, B, C]) Examples() iter.Seq[Triple[A, B, C]] {
	ab := example.Zip(t.a.Examples(), t.b.Examples(), func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
	return example.Zip(ab, t.c.Examples(), func(p Pair[A, B], c C) Triple[A, B, C] {
		return Triple[A, B, C]{First: p.First, Second: p.Second, Third: c}
	})
}

func (t tuple3Type[A, B, C]) DescribeSchema(b Builder) error {
	opts := t.opts
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	opts.Len = 3
	tb, err := b.DescribeTuple(opts)
	if err != nil {
		return err
	}
	return describeElements(tb, t.a, t.b, t.c)
}

func describeElements(tb TupleBuilder, elems ...Schema) error {
	for _, e := range elems {
		if err := tb.DescribeElement(e, ElementOptions{}); err != nil {
			return err
		}
	}
	return tb.End()
}

type namedType[T any] struct {
	id    SchemaID
	inner Type[T]
	opts  NewtypeOptions
}

// Named describes T as a newtype registered under id.
//
// The id must come from the declaration of the named type, not from a
// helper shared by many types:
//
//	var petID = schema.Named(schema.NewID("PetId"), schema.Int64(), schema.NewtypeOptions{})
func Named[T any](id SchemaID, inner Type[T], opts NewtypeOptions) Type[T] {
	return namedType[T]{id: id, inner: inner, opts: opts}
}

func (t namedType[T]) Examples() iter.Seq[T] { return t.inner.Examples() }

func (t namedType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	return b.DescribeNewtypeStruct(t.id, opts, t.inner)
}
