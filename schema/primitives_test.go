package schema

import (
	"math"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/1ean267/nexustack-sub001/example"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spy records which primitive method was called on it.
type spy struct {
	Builder
	called string
}

func newSpy() *spy {
	return &spy{Builder: Nop(0)(func(int) error { return nil })}
}

func (s *spy) DescribeInt8(IntOptions[int8]) error     { s.called = "int8"; return nil }
func (s *spy) DescribeInt16(IntOptions[int16]) error   { s.called = "int16"; return nil }
func (s *spy) DescribeInt32(IntOptions[int32]) error   { s.called = "int32"; return nil }
func (s *spy) DescribeInt64(IntOptions[int64]) error   { s.called = "int64"; return nil }
func (s *spy) DescribeUint8(IntOptions[uint8]) error   { s.called = "uint8"; return nil }
func (s *spy) DescribeUint16(IntOptions[uint16]) error { s.called = "uint16"; return nil }
func (s *spy) DescribeUint32(IntOptions[uint32]) error { s.called = "uint32"; return nil }
func (s *spy) DescribeUint64(IntOptions[uint64]) error { s.called = "uint64"; return nil }
func (s *spy) DescribeFloat32(FloatOptions[float32]) error {
	s.called = "float32"
	return nil
}
func (s *spy) DescribeFloat64(FloatOptions[float64]) error {
	s.called = "float64"
	return nil
}

type myInt16 int16

func TestInteger_Dispatch(t *testing.T) {
	tests := []struct {
		schema Schema
		want   string
	}{
		{Int8(), "int8"},
		{Int16(), "int16"},
		{Integer(IntOptions[myInt16]{}), "int16"},
		{Int32(), "int32"},
		{Int64(), "int64"},
		{Int(), "int64"},
		{Uint8(), "uint8"},
		{Uint16(), "uint16"},
		{Uint32(), "uint32"},
		{Uint64(), "uint64"},
		{Uint(), "uint64"},
		{Float32(), "float32"},
		{Float64(), "float64"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := newSpy()
			require.NoError(t, tt.schema.DescribeSchema(s))
			assert.Equal(t, tt.want, s.called)
		})
	}
}

func TestInteger_DefaultExamples(t *testing.T) {
	assert.Equal(t, []int8{math.MinInt8, -1, 0, 1, math.MaxInt8}, example.Collect(Int8().Examples()))
	assert.Equal(t, []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}, example.Collect(Int64().Examples()))
	assert.Equal(t, []uint16{0, 1, math.MaxUint16}, example.Collect(Uint16().Examples()))
	assert.Equal(t, []myInt16{math.MinInt16, -1, 0, 1, math.MaxInt16}, example.Collect(Integer(IntOptions[myInt16]{}).Examples()))
}

func TestInteger_ExamplesSatisfyConstraints(t *testing.T) {
	tests := []struct {
		name string
		opts IntOptions[int32]
	}{
		{name: "inclusive range", opts: IntOptions[int32]{Min: Inclusive[int32](5), Max: Inclusive[int32](10)}},
		{name: "exclusive range", opts: IntOptions[int32]{Min: Exclusive[int32](5), Max: Exclusive[int32](10)}},
		{name: "multiple of", opts: IntOptions[int32]{Min: Inclusive[int32](7), Max: Inclusive[int32](100), MultipleOf: 6}},
		{name: "negative range", opts: IntOptions[int32]{Min: Inclusive[int32](-17), Max: Exclusive[int32](-3), MultipleOf: 4}},
		{name: "allowed values", opts: IntOptions[int32]{Only: []int32{2, 4, 99}, Max: Inclusive[int32](50)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := example.Collect(Integer(tt.opts).Examples())
			require.NotEmpty(t, got)
			for _, v := range got {
				assert.True(t, tt.opts.allows(v), "example %d violates the constraints", v)
			}
			// deterministic
			assert.Equal(t, got, example.Collect(Integer(tt.opts).Examples()))
		})
	}
}

func TestInteger_Edges(t *testing.T) {
	got := example.Collect(Integer(IntOptions[uint8]{Min: Exclusive[uint8](10), Max: Exclusive[uint8](20)}).Examples())
	assert.Equal(t, []uint8{11, 19}, got)
}

func TestFloat_ExamplesSatisfyConstraints(t *testing.T) {
	opts := FloatOptions[float64]{Min: Exclusive(0.0), Max: Inclusive(100.0), AllowNaN: true, AllowInf: true}
	got := example.Collect(Float(opts).Examples())
	assert.Equal(t, []float64{3.5, 27, 0.0078125, 100}, got)

	multiple := FloatOptions[float32]{Min: Inclusive[float32](1), MultipleOf: 0.5}
	for _, v := range example.Collect(Float(multiple).Examples()) {
		assert.True(t, multiple.allows(v), "example %v violates the constraints", v)
	}
}

func TestChar_Examples(t *testing.T) {
	assert.Equal(t, []rune{'h', 'e', 'l', 'o', '\\', 'ß', ':', '\x00', '\U0010FFFF'}, example.Collect(Char(CharOptions{}).Examples()))
	assert.Equal(t, []rune{'x', 'y'}, example.Collect(Char(CharOptions{Only: []rune{'x', 'y'}}).Examples()))
}

func TestString_ExamplesSatisfyConstraints(t *testing.T) {
	tests := []struct {
		name string
		opts StringOptions
	}{
		{name: "min length", opts: StringOptions{MinLength: intPtr(3)}},
		{name: "max length", opts: StringOptions{MaxLength: intPtr(1)}},
		{name: "long minimum", opts: StringOptions{MinLength: intPtr(20), MaxLength: intPtr(30)}},
		{name: "pattern", opts: StringOptions{Pattern: "^[a-z]+$"}},
		{name: "allowed values", opts: StringOptions{Only: []string{"cat", "dog", "bird"}, MaxLength: intPtr(3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := example.Collect(String(tt.opts).Examples())
			require.NotEmpty(t, got)
			for _, s := range got {
				n := utf8.RuneCountInString(s)
				if tt.opts.MinLength != nil {
					assert.GreaterOrEqual(t, n, *tt.opts.MinLength)
				}
				if tt.opts.MaxLength != nil {
					assert.LessOrEqual(t, n, *tt.opts.MaxLength)
				}
				if tt.opts.Pattern != "" {
					assert.True(t, matchPattern(tt.opts.Pattern, s), "%q does not match %s", s, tt.opts.Pattern)
				}
			}
		})
	}
}

func TestString_PatternLookaround(t *testing.T) {
	got := example.Collect(String(StringOptions{Pattern: `^(?!admin$)[a-z]+$`, Examples: example.Of("admin", "h", "e", "Hello", "administrator")}).Examples())
	assert.Equal(t, []string{"h", "e", "administrator"}, got)

	got = example.Collect(String(StringOptions{Pattern: `^(?!admin$)[a-z]+$`}).Examples())
	assert.Equal(t, []string{"h", "e", "l", "o"}, got)

	got = example.Collect(String(StringOptions{Pattern: `(?<=a)b`, Examples: example.Of("ab", "cb")}).Examples())
	assert.Equal(t, []string{"ab"}, got)
}

func TestString_InvalidPatternAdmitsNothing(t *testing.T) {
	assert.Empty(t, example.Collect(String(StringOptions{Pattern: `[a-`}).Examples()))
}

func TestBytes_Examples(t *testing.T) {
	got := example.Collect(Bytes(BytesOptions{MinLength: intPtr(1), MaxLength: intPtr(4)}).Examples())
	assert.Equal(t, [][]byte{{0}, {0xde, 0xad, 0xbe, 0xef}}, got)
}

func TestContainers_Examples(t *testing.T) {
	t.Run("option appends nil", func(t *testing.T) {
		got := example.Collect(Option(Bool(BoolOptions{}), OptionOptions{}).Examples())
		require.Len(t, got, 3)
		assert.True(t, *got[0])
		assert.False(t, *got[1])
		assert.Nil(t, got[2])
	})

	t.Run("slice prefixes", func(t *testing.T) {
		got := example.Collect(Slice(Uint8(), SeqOptions{}).Examples())
		assert.Equal(t, [][]uint8{{}, {0}, {0, 1}, {0, 1, 255}}, got)
	})

	t.Run("slice respects item bounds", func(t *testing.T) {
		got := example.Collect(Slice(Uint8(), SeqOptions{MinItems: intPtr(1), MaxItems: intPtr(2)}).Examples())
		assert.Equal(t, [][]uint8{{0}, {0, 1}}, got)
	})

	t.Run("map zips keys and values", func(t *testing.T) {
		keys := String(StringOptions{Only: []string{"a", "b"}})
		got := example.Collect(Map(keys, Bool(BoolOptions{}), MapOptions{}).Examples())
		assert.Equal(t, []map[string]bool{{}, {"a": true, "b": false}}, got)
	})

	t.Run("tuples zip elements", func(t *testing.T) {
		got := example.Collect(Tuple2(Bool(BoolOptions{}), Uint8(), TupleOptions{}).Examples())
		assert.Equal(t, []Pair[bool, uint8]{{true, 0}, {false, 1}}, got)

		data, err := json.Marshal(got[0])
		require.NoError(t, err)
		assert.JSONEq(t, `[true, 0]`, string(data))

		triples := example.Collect(Tuple3(Bool(BoolOptions{}), Uint8(), Text(), TupleOptions{}).Examples())
		require.Len(t, triples, 2)
		assert.Equal(t, Triple[bool, uint8, string]{First: false, Second: 1, Third: "h"}, triples[1])
	})
}

func TestStdTypes_Examples(t *testing.T) {
	for _, s := range example.Collect(Duration(StringOptions{}).Examples()) {
		_, err := time.ParseDuration(s)
		if s != "0" {
			assert.NoError(t, err, s)
		}
	}
	assert.Len(t, example.Collect(IPv4(StringOptions{}).Examples()), 4)
	assert.True(t, example.Collect(IPv6(StringOptions{}).Examples())[0].Is6())
	assert.Equal(t, []string{"1970-01-01", "2024-02-29"}, example.Collect(Date(StringOptions{}).Examples()))
}

func intPtr(v int) *int { return &v }
