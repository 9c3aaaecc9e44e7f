package render

import (
	"iter"
	"math"
	"unsafe"

	"github.com/1ean267/nexustack-sub001/example"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// session is the root builder handed out by Renderer.Factory.
type session struct {
	schema.Guard
	r    *Renderer
	sink schema.Sink[*openapi.Schema]
}

func (s *session) deliver(out *openapi.Schema) error {
	return s.sink(out)
}

func (s *session) DescribeBool(opts schema.BoolOptions) error {
	s.Finish()
	return s.deliver(&openapi.Schema{
		Types:       []string{"boolean"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		Examples:    collect(opts.Examples, func(v bool) any { return v }),
	})
}

func (s *session) DescribeInt8(opts schema.IntOptions[int8]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeInt16(opts schema.IntOptions[int16]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeInt32(opts schema.IntOptions[int32]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeInt64(opts schema.IntOptions[int64]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeUint8(opts schema.IntOptions[uint8]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeUint16(opts schema.IntOptions[uint16]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeUint32(opts schema.IntOptions[uint32]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeUint64(opts schema.IntOptions[uint64]) error {
	s.Finish()
	return s.deliver(integer(opts))
}

func (s *session) DescribeFloat32(opts schema.FloatOptions[float32]) error {
	s.Finish()
	return s.deliver(float(opts, "float"))
}

func (s *session) DescribeFloat64(opts schema.FloatOptions[float64]) error {
	s.Finish()
	return s.deliver(float(opts, "double"))
}

func (s *session) DescribeChar(opts schema.CharOptions) error {
	s.Finish()
	out := &openapi.Schema{
		Types:       []string{"string"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		MinLength:   openapi.Ptr(1),
		MaxLength:   openapi.Ptr(1),
		Examples:    collect(opts.Examples, func(r rune) any { return string(r) }),
	}
	for _, r := range opts.Only {
		out.Enum = append(out.Enum, string(r))
	}
	return s.deliver(out)
}

func (s *session) DescribeString(opts schema.StringOptions) error {
	s.Finish()
	out := &openapi.Schema{
		Types:       []string{"string"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		MinLength:   opts.MinLength,
		MaxLength:   opts.MaxLength,
		Pattern:     opts.Pattern,
		Format:      opts.Format,
		Examples:    collect(opts.Examples, func(v string) any { return v }),
	}
	for _, v := range opts.Only {
		out.Enum = append(out.Enum, v)
	}
	return s.deliver(out)
}

func (s *session) DescribeBytes(opts schema.BytesOptions) error {
	s.Finish()
	return s.deliver(&openapi.Schema{
		Types:       []string{"array"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		Items: &openapi.Schema{
			Types:   []string{"integer"},
			Format:  "uint8",
			Minimum: int64(0),
			Maximum: int64(math.MaxUint8),
		},
		MinItems: opts.MinLength,
		MaxItems: opts.MaxLength,
		Examples: collect(opts.Examples, func(b []byte) any {
			out := make([]any, len(b))
			for i, v := range b {
				out[i] = int64(v)
			}
			return out
		}),
	})
}

func (s *session) DescribeUnit(opts schema.UnitOptions) error {
	s.Finish()
	return s.deliver(unit(opts))
}

func (s *session) DescribeUnitStruct(id schema.SchemaID, opts schema.UnitOptions) error {
	s.Finish()
	ref, fresh, ok := s.r.named(id)
	if !ok {
		return s.deliver(unit(opts))
	}
	if fresh {
		if _, err := s.r.define(id, ref, unit(opts)); err != nil {
			return err
		}
	}
	return s.deliver(ref)
}

func unit(opts schema.UnitOptions) *openapi.Schema {
	out := openapi.NullSchema()
	out.Description = opts.Description
	out.Deprecated = opts.Deprecated
	return out
}

// integer renders an integer of any width. Missing bounds are filled in
// from the width of T.
func integer[T example.Integer](opts schema.IntOptions[T]) *openapi.Schema {
	out := &openapi.Schema{
		Types:       []string{"integer"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		Format:      opts.Format,
		Examples:    collect(opts.Examples, jsonInt[T]),
	}
	if out.Format == "" {
		switch unsafe.Sizeof(T(0)) {
		case 4:
			out.Format = "int32"
		case 8:
			out.Format = "int64"
		}
	}

	lo, hi := example.Bounds[T]()
	out.Minimum, out.Maximum = jsonInt(lo), jsonInt(hi)
	if v, ok := opts.Min.Value(); ok {
		out.Minimum = jsonInt(v)
		out.ExclusiveMinimum = opts.Min.IsExclusive()
	}
	if v, ok := opts.Max.Value(); ok {
		out.Maximum = jsonInt(v)
		out.ExclusiveMaximum = opts.Max.IsExclusive()
	}

	if opts.MultipleOf != 0 {
		out.MultipleOf = jsonInt(opts.MultipleOf)
	}
	for _, v := range opts.Only {
		out.Enum = append(out.Enum, jsonInt(v))
	}
	return out
}

// float renders a floating point number. Unlike integers, unbounded floats
// carry no minimum or maximum.
func float[T example.Float](opts schema.FloatOptions[T], format string) *openapi.Schema {
	out := &openapi.Schema{
		Types:       []string{"number"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		Format:      opts.Format,
		Examples: collect(opts.Examples, func(v T) any {
			return float64(v)
		}),
	}
	if out.Format == "" {
		out.Format = format
	}
	if v, ok := opts.Min.Value(); ok {
		out.Minimum = float64(v)
		out.ExclusiveMinimum = opts.Min.IsExclusive()
	}
	if v, ok := opts.Max.Value(); ok {
		out.Maximum = float64(v)
		out.ExclusiveMaximum = opts.Max.IsExclusive()
	}
	if opts.MultipleOf != 0 {
		out.MultipleOf = float64(opts.MultipleOf)
	}
	return out
}

func isSigned[T example.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// jsonInt widens v to int64 or uint64, the integer types of the model.
func jsonInt[T example.Integer](v T) any {
	if isSigned[T]() {
		return int64(v)
	}
	return uint64(v)
}

// collect converts a typed example sequence. JSON has no NaN or infinity,
// so such floats are dropped.
func collect[T any](seq iter.Seq[T], conv func(T) any) []any {
	if seq == nil {
		return nil
	}
	var out []any
	for v := range seq {
		c := conv(v)
		if f, ok := c.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			continue
		}
		out = append(out, c)
	}
	return out
}
