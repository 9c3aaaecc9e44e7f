package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/1ean267/nexustack-sub001/example"
	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/schema"
)

const (
	signedKeyPattern   = `^(-?(0|[1-9]\d*)([eE][+-]?0+)?)$`
	unsignedKeyPattern = `^((0|[1-9]\d*)([eE][+-]?0+)?)$`
	floatKeyPattern    = `^(-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?)$`
	charKeyPattern     = `^(.{1})$`
)

// KeyPattern returns the regular expression matching the JSON object keys a
// map key schema serializes to. An empty pattern admits every key.
//
// Only string-like shapes can be keys: booleans, numbers, characters,
// strings, newtypes around those and unions of unit variants.
func KeyPattern(s schema.Schema) (string, error) {
	return schema.Describe(keyFactory, s)
}

func keyFactory(sink schema.Sink[string]) schema.Builder {
	return &keySession{sink: sink}
}

func keyError(got string) error {
	return &oaserrors.ShapeError{Adapter: "map key", Message: "key must be a string", Got: got}
}

// alternatives joins literal keys into one anchored pattern.
func alternatives(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return "^(" + strings.Join(quoted, "|") + ")$"
}

type keySession struct {
	schema.Guard
	sink schema.Sink[string]
}

func (k *keySession) DescribeBool(schema.BoolOptions) error {
	k.Finish()
	return k.sink("^(true|false)$")
}

func (k *keySession) DescribeInt8(opts schema.IntOptions[int8]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeInt16(opts schema.IntOptions[int16]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeInt32(opts schema.IntOptions[int32]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeInt64(opts schema.IntOptions[int64]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeUint8(opts schema.IntOptions[uint8]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeUint16(opts schema.IntOptions[uint16]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeUint32(opts schema.IntOptions[uint32]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeUint64(opts schema.IntOptions[uint64]) error {
	k.Finish()
	return k.sink(intKeyPattern(opts))
}

func (k *keySession) DescribeFloat32(schema.FloatOptions[float32]) error {
	k.Finish()
	return k.sink(floatKeyPattern)
}

func (k *keySession) DescribeFloat64(schema.FloatOptions[float64]) error {
	k.Finish()
	return k.sink(floatKeyPattern)
}

func (k *keySession) DescribeChar(opts schema.CharOptions) error {
	k.Finish()
	if len(opts.Only) > 0 {
		keys := make([]string, len(opts.Only))
		for i, r := range opts.Only {
			keys[i] = string(r)
		}
		return k.sink(alternatives(keys))
	}
	return k.sink(charKeyPattern)
}

func (k *keySession) DescribeString(opts schema.StringOptions) error {
	k.Finish()
	switch {
	case len(opts.Only) > 0:
		return k.sink(alternatives(opts.Only))
	case opts.Pattern != "":
		return k.sink(opts.Pattern)
	case opts.MinLength != nil && opts.MaxLength != nil:
		if *opts.MinLength == *opts.MaxLength {
			return k.sink(fmt.Sprintf("^(.{%d})$", *opts.MinLength))
		}
		return k.sink(fmt.Sprintf("^(.{%d,%d})$", *opts.MinLength, *opts.MaxLength))
	case opts.MinLength != nil:
		return k.sink(fmt.Sprintf("^(.{%d,})$", *opts.MinLength))
	case opts.MaxLength != nil:
		return k.sink(fmt.Sprintf("^(.{0,%d})$", *opts.MaxLength))
	default:
		return k.sink("")
	}
}

func (k *keySession) DescribeNewtypeStruct(_ schema.SchemaID, _ schema.NewtypeOptions, inner schema.Schema) error {
	k.Finish()
	pattern, err := KeyPattern(inner)
	if err != nil {
		return err
	}
	return k.sink(pattern)
}

func (k *keySession) DescribeEnum(_ schema.SchemaID, opts schema.EnumOptions) (schema.EnumBuilder, error) {
	k.Finish()
	return &keyEnum{sink: k.sink, open: opts.NonExhaustive}, nil
}

func (k *keySession) DescribeOption(schema.OptionOptions, schema.Schema) error {
	return keyError("an option")
}

func (k *keySession) DescribeBytes(schema.BytesOptions) error {
	return keyError("a byte array")
}

func (k *keySession) DescribeUnit(schema.UnitOptions) error {
	return keyError("a unit")
}

func (k *keySession) DescribeUnitStruct(schema.SchemaID, schema.UnitOptions) error {
	return keyError("a unit struct")
}

func (k *keySession) DescribeSeq(schema.SeqOptions, schema.Schema) error {
	return keyError("a sequence")
}

func (k *keySession) DescribeNot(schema.NotOptions, schema.Schema) error {
	return keyError("a not combinator")
}

func (k *keySession) DescribeTuple(schema.TupleOptions) (schema.TupleBuilder, error) {
	return schema.ImpossibleTuple{}, keyError("a tuple")
}

func (k *keySession) DescribeTupleStruct(schema.SchemaID, schema.TupleOptions) (schema.TupleBuilder, error) {
	return schema.ImpossibleTuple{}, keyError("a tuple struct")
}

func (k *keySession) DescribeMap(schema.SchemaID, schema.MapOptions) (schema.MapBuilder, error) {
	return schema.Impossible{}, keyError("a map")
}

func (k *keySession) DescribeStruct(schema.SchemaID, schema.StructOptions) (schema.StructBuilder, error) {
	return schema.Impossible{}, keyError("a struct")
}

func (k *keySession) DescribeCombinator(schema.Combinator, schema.CombinatorOptions) (schema.CombinatorBuilder, error) {
	return schema.Impossible{}, keyError("a combinator")
}

// keyEnum accepts unions whose variants all serialize to their bare name.
type keyEnum struct {
	schema.Guard
	sink  schema.Sink[string]
	names []string
	// open unions admit unknown names as well
	open bool
}

func (e *keyEnum) DescribeUnitVariant(_ int, name string, _ schema.VariantOptions) error {
	e.Check()
	e.names = append(e.names, name)
	return nil
}

func (e *keyEnum) DescribeNewtypeVariant(int, string, schema.VariantOptions, schema.Schema) error {
	return keyError("a newtype variant")
}

func (e *keyEnum) DescribeTupleVariant(int, string, schema.VariantOptions, int) (schema.TupleBuilder, error) {
	return schema.ImpossibleTuple{}, keyError("a tuple variant")
}

func (e *keyEnum) DescribeStructVariant(int, string, schema.VariantOptions, int) (schema.StructBuilder, error) {
	return schema.Impossible{}, keyError("a struct variant")
}

func (e *keyEnum) End() error {
	e.Finish()
	if e.open {
		return e.sink("")
	}
	if len(e.names) == 0 {
		return keyError("an empty enum")
	}
	return e.sink(alternatives(e.names))
}

// intKeyPattern matches the decimal keys of an integer. Allowed values are
// listed literally; a zero exponent is tolerated since some encoders emit it.
func intKeyPattern[T example.Integer](opts schema.IntOptions[T]) string {
	if len(opts.Only) == 0 {
		if isSigned[T]() {
			return signedKeyPattern
		}
		return unsignedKeyPattern
	}
	parts := make([]string, len(opts.Only))
	for i, v := range opts.Only {
		var lit string
		if isSigned[T]() {
			lit = strconv.FormatInt(int64(v), 10)
		} else {
			lit = strconv.FormatUint(uint64(v), 10)
		}
		parts[i] = "(" + lit + "([eE][+-]?0+)?)"
	}
	return "^(" + strings.Join(parts, "|") + ")$"
}
