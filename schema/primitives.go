package schema

import (
	"iter"
	"reflect"

	"github.com/1ean267/nexustack-sub001/example"
)

type boolType struct{ opts BoolOptions }

// Bool describes a boolean.
func Bool(opts BoolOptions) Type[bool] { return boolType{opts: opts} }

func (t boolType) Examples() iter.Seq[bool] {
	if t.opts.Examples != nil {
		return t.opts.Examples
	}
	return example.Bools()
}

func (t boolType) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = t.Examples()
	return b.DescribeBool(opts)
}

type integerType[T example.Integer] struct{ opts IntOptions[T] }

// Integer describes an integer of type T. The width and signedness of T
// select the Describe method; int and uint are treated as 64 bits wide.
func Integer[T example.Integer](opts IntOptions[T]) Type[T] {
	return integerType[T]{opts: opts}
}

// Int describes an unconstrained int.
func Int() Type[int] { return Integer(IntOptions[int]{}) }

// Int8 describes an unconstrained int8.
func Int8() Type[int8] { return Integer(IntOptions[int8]{}) }

// Int16 describes an unconstrained int16.
func Int16() Type[int16] { return Integer(IntOptions[int16]{}) }

// Int32 describes an unconstrained int32.
func Int32() Type[int32] { return Integer(IntOptions[int32]{}) }

// Int64 describes an unconstrained int64.
func Int64() Type[int64] { return Integer(IntOptions[int64]{}) }

// Uint describes an unconstrained uint.
func Uint() Type[uint] { return Integer(IntOptions[uint]{}) }

// Uint8 describes an unconstrained uint8.
func Uint8() Type[uint8] { return Integer(IntOptions[uint8]{}) }

// Uint16 describes an unconstrained uint16.
func Uint16() Type[uint16] { return Integer(IntOptions[uint16]{}) }

// Uint32 describes an unconstrained uint32.
func Uint32() Type[uint32] { return Integer(IntOptions[uint32]{}) }

// Uint64 describes an unconstrained uint64.
func Uint64() Type[uint64] { return Integer(IntOptions[uint64]{}) }

func (t integerType[T]) Examples() iter.Seq[T] {
	defaults := t.opts.Examples
	if defaults == nil {
		defaults = example.Ints[T]()
	}
	candidates := defaults
	if t.opts.Examples == nil {
		candidates = t.opts.candidates(defaults)
	}
	return distinct(example.Filter(candidates, t.opts.allows))
}

func (t integerType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = t.Examples()
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return b.DescribeInt8(convertInt[T, int8](opts))
	case reflect.Int16:
		return b.DescribeInt16(convertInt[T, int16](opts))
	case reflect.Int32:
		return b.DescribeInt32(convertInt[T, int32](opts))
	case reflect.Int, reflect.Int64:
		return b.DescribeInt64(convertInt[T, int64](opts))
	case reflect.Uint8:
		return b.DescribeUint8(convertInt[T, uint8](opts))
	case reflect.Uint16:
		return b.DescribeUint16(convertInt[T, uint16](opts))
	case reflect.Uint32:
		return b.DescribeUint32(convertInt[T, uint32](opts))
	default:
		return b.DescribeUint64(convertInt[T, uint64](opts))
	}
}

func convertInt[T, U example.Integer](o IntOptions[T]) IntOptions[U] {
	out := IntOptions[U]{
		Description: o.Description,
		Deprecated:  o.Deprecated,
		Min:         convertBound[T, U](o.Min),
		Max:         convertBound[T, U](o.Max),
		MultipleOf:  U(o.MultipleOf),
		Format:      o.Format,
	}
	for _, v := range o.Only {
		out.Only = append(out.Only, U(v))
	}
	if o.Examples != nil {
		out.Examples = example.Map(o.Examples, func(v T) U { return U(v) })
	}
	return out
}

type floatType[T example.Float] struct{ opts FloatOptions[T] }

// Float describes a floating point number of type T.
func Float[T example.Float](opts FloatOptions[T]) Type[T] {
	return floatType[T]{opts: opts}
}

// Float32 describes an unconstrained float32.
func Float32() Type[float32] { return Float(FloatOptions[float32]{}) }

// Float64 describes an unconstrained float64.
func Float64() Type[float64] { return Float(FloatOptions[float64]{}) }

func (t floatType[T]) Examples() iter.Seq[T] {
	candidates := t.opts.Examples
	if candidates == nil {
		candidates = t.opts.candidates(example.Floats[T]())
	}
	return distinct(example.Filter(candidates, t.opts.allows))
}

func (t floatType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = t.Examples()
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		return b.DescribeFloat32(convertFloat[T, float32](opts))
	}
	return b.DescribeFloat64(convertFloat[T, float64](opts))
}

func convertFloat[T, U example.Float](o FloatOptions[T]) FloatOptions[U] {
	out := FloatOptions[U]{
		Description: o.Description,
		Deprecated:  o.Deprecated,
		Min:         convertBound[T, U](o.Min),
		Max:         convertBound[T, U](o.Max),
		MultipleOf:  U(o.MultipleOf),
		AllowNaN:    o.AllowNaN,
		AllowInf:    o.AllowInf,
		Format:      o.Format,
	}
	if o.Examples != nil {
		out.Examples = example.Map(o.Examples, func(v T) U { return U(v) })
	}
	return out
}

type charType struct{ opts CharOptions }

// Char describes a single character.
func Char(opts CharOptions) Type[rune] { return charType{opts: opts} }

func (t charType) Examples() iter.Seq[rune] {
	candidates := t.opts.Examples
	if candidates == nil {
		candidates = example.Chars()
		if len(t.opts.Only) > 0 {
			candidates = example.Of(t.opts.Only...)
		}
	}
	return distinct(example.Filter(candidates, t.opts.allows))
}

func (t charType) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = t.Examples()
	return b.DescribeChar(opts)
}

type stringType struct{ opts StringOptions }

// String describes a string.
func String(opts StringOptions) Type[string] { return stringType{opts: opts} }

// Text describes an unconstrained string.
func Text() Type[string] { return String(StringOptions{}) }

func (t stringType) Examples() iter.Seq[string] {
	candidates := t.opts.Examples
	if candidates == nil {
		candidates = t.opts.candidates(example.Strings())
	}
	return distinct(example.Filter(candidates, t.opts.allows))
}

func (t stringType) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = t.Examples()
	return b.DescribeString(opts)
}

type bytesType struct{ opts BytesOptions }

// Bytes describes a byte sequence.
func Bytes(opts BytesOptions) Type[[]byte] { return bytesType{opts: opts} }

func (t bytesType) Examples() iter.Seq[[]byte] {
	candidates := t.opts.Examples
	if candidates == nil {
		candidates = example.Of([]byte{}, []byte{0}, []byte("hello"), []byte{0xde, 0xad, 0xbe, 0xef})
	}
	return example.Filter(candidates, t.opts.allows)
}

func (t bytesType) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = t.Examples()
	return b.DescribeBytes(opts)
}

type unitType struct{ opts UnitOptions }

// Unit describes the unit value, encoded as null.
func Unit(opts UnitOptions) Type[struct{}] { return unitType{opts: opts} }

func (unitType) Examples() iter.Seq[struct{}] { return example.Units() }

func (t unitType) DescribeSchema(b Builder) error {
	return b.DescribeUnit(t.opts)
}
