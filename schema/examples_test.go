package schema

import (
	"math"
	"testing"

	"github.com/1ean267/nexustack-sub001/example"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "char", got: Encode(Char(CharOptions{}), 'x'), want: "x"},
		{name: "bytes", got: Encode(Bytes(BytesOptions{}), []byte{1, 255}), want: []any{int64(1), int64(255)}},
		{name: "unit", got: Encode(Unit(UnitOptions{}), struct{}{}), want: nil},
		{name: "absent option", got: Encode(Option(Char(CharOptions{}), OptionOptions{}), nil), want: nil},
		{name: "slice of chars", got: Encode(Slice(Char(CharOptions{}), SeqOptions{}), []rune{'a', 'b'}), want: []any{"a", "b"}},
		{name: "plain value", got: Encode(Int32(), 7), want: int32(7)},
		{name: "char keys", got: Encode(Map(Char(CharOptions{}), Bool(BoolOptions{}), MapOptions{}), map[rune]bool{'k': true}), want: map[string]any{"k": true}},
		{name: "bool keys", got: Encode(Map(Bool(BoolOptions{}), Char(CharOptions{}), MapOptions{}), map[bool]rune{true: 'y', false: 'n'}), want: map[string]any{"true": "y", "false": "n"}},
		{name: "float keys", got: Encode(Map(Float64(), Int32(), MapOptions{}), map[float64]int32{1.5: 1, -2: 2}), want: map[string]any{"1.5": int32(1), "-2": int32(2)}},
		{name: "integer keys", got: Encode(Map(Uint8(), Text(), MapOptions{}), map[uint8]string{255: "max"}), want: map[string]any{"255": "max"}},
		{name: "pair", got: Encode(Tuple2(Char(CharOptions{}), Bytes(BytesOptions{}), TupleOptions{}), Pair[rune, []byte]{'a', []byte{2}}), want: []any{"a", []any{int64(2)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	t.Run("present option", func(t *testing.T) {
		r := 'z'
		assert.Equal(t, "z", Encode(Option(Char(CharOptions{}), OptionOptions{}), &r))
	})
}

func TestEncodedExamples(t *testing.T) {
	got := example.Collect(EncodedExamples(Option(Bytes(BytesOptions{MaxLength: intPtr(1)}), OptionOptions{})))
	assert.Equal(t, []any{[]any{}, []any{int64(0)}, nil}, got)
}

func TestExamplesOf_Record(t *testing.T) {
	id := NewIDAt("Pet", Callsite{File: "pet.go", Line: 3})
	pet := Struct(id, StructOptions{},
		Field{Name: "name", Schema: String(StringOptions{Only: []string{"rex", "tom"}})},
		Field{Name: "age", Schema: Uint8()},
		Field{Name: "tag", Schema: Char(CharOptions{Only: []rune{'a'}}), Optional: true},
		Field{Name: "secret", Skip: true},
	)
	got := ExamplesOf(pet)
	assert.Equal(t, []any{
		map[string]any{"name": "rex", "age": uint64(0), "tag": "a"},
		map[string]any{"name": "tom", "age": uint64(1)},
	}, got)

	t.Run("flattened members merge", func(t *testing.T) {
		outer := Struct(SchemaID{}, StructOptions{},
			Field{Name: "id", Schema: Bool(BoolOptions{})},
			Field{Flatten: true, Schema: pet},
		)
		got := ExamplesOf(outer)
		require.Len(t, got, 2)
		assert.Equal(t, map[string]any{"id": true, "name": "rex", "age": uint64(0), "tag": "a"}, got[0])
	})

	t.Run("required field without examples", func(t *testing.T) {
		empty := String(StringOptions{Only: []string{"x"}, MinLength: intPtr(2)})
		assert.Empty(t, ExamplesOf(Struct(SchemaID{}, StructOptions{}, Field{Name: "x", Schema: empty})))
	})

	t.Run("explicit examples win", func(t *testing.T) {
		s := Struct(id, StructOptions{Examples: example.Of[any](map[string]any{"name": "given"})},
			Field{Name: "name", Schema: Text()},
		)
		assert.Equal(t, []any{map[string]any{"name": "given"}}, ExamplesOf(s))
	})
}

var treeID = NewIDAt("Tree", Callsite{File: "tree.go", Line: 7})

// tree is a record holding a list of trees.
func tree() Schema {
	return Struct(treeID, StructOptions{},
		Field{Name: "value", Schema: Int32()},
		Field{Name: "children", Schema: Seq(SchemaFunc(func(b Builder) error {
			return tree().DescribeSchema(b)
		}), SeqOptions{})},
	)
}

func TestExamplesOf_RecursiveRecordTerminates(t *testing.T) {
	got := ExamplesOf(tree())
	assert.Equal(t, []any{
		map[string]any{"value": int64(math.MinInt32), "children": []any{}},
	}, got)
}

func TestExamplesOf_Enum(t *testing.T) {
	id := NewIDAt("Shape", Callsite{File: "shape.go", Line: 5})
	variants := []Variant{
		UnitVariant("Empty"),
		NewtypeVariant("Circle", Float64()),
		StructVariant("Rect", Field{Name: "w", Schema: Uint8()}),
	}
	rect := map[string]any{"w": uint64(0)}
	tests := []struct {
		name string
		tag  VariantTag
		want []any
	}{
		{
			name: "external",
			want: []any{"Empty", map[string]any{"Circle": 3.5}, map[string]any{"Rect": rect}},
		},
		{
			name: "internal",
			tag:  InternallyTagged{Tag: "kind"},
			want: []any{map[string]any{"kind": "Empty"}, map[string]any{"kind": "Rect", "w": uint64(0)}},
		},
		{
			name: "adjacent",
			tag:  AdjacentlyTagged{Tag: "t", Content: "c"},
			want: []any{
				map[string]any{"t": "Empty"},
				map[string]any{"t": "Circle", "c": 3.5},
				map[string]any{"t": "Rect", "c": rect},
			},
		},
		{
			name: "untagged",
			tag:  Untagged{},
			want: []any{nil, 3.5, rect},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExamplesOf(Enum(id, EnumOptions{Tag: tt.tag}, variants...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNullable(t *testing.T) {
	got := ExamplesOf(Nullable(Bool(BoolOptions{}), OptionOptions{}))
	assert.Equal(t, []any{true, false, nil}, got)

	rec := ExamplesOf(Nullable(Struct(SchemaID{}, StructOptions{}, Field{Name: "ok", Schema: Bool(BoolOptions{})}), OptionOptions{}))
	assert.Equal(t, []any{map[string]any{"ok": true}, map[string]any{"ok": false}, nil}, rec)
}

func TestSeq(t *testing.T) {
	got := ExamplesOf(Seq(Uint8(), SeqOptions{}))
	assert.Equal(t, []any{
		[]any{},
		[]any{uint64(0)},
		[]any{uint64(0), uint64(1)},
		[]any{uint64(0), uint64(1), uint64(255)},
	}, got)

	bounded := ExamplesOf(Seq(Uint8(), SeqOptions{MinItems: intPtr(1), MaxItems: intPtr(2)}))
	assert.Len(t, bounded, 2)

	unique := ExamplesOf(Seq(String(StringOptions{Examples: example.Of("a", "a", "b")}), SeqOptions{Unique: true}))
	assert.Contains(t, unique, []any{"a", "b"})
}
