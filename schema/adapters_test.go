package schema

import (
	"errors"
	"testing"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	ids := make([]SchemaID, 0, 2)
	for range 2 {
		ids = append(ids, NewID("Pet"))
	}
	other := NewID("Pet")

	assert.Equal(t, ids[0], ids[1], "same line yields the same id")
	assert.NotEqual(t, ids[0], other, "different lines yield different ids")
	assert.Equal(t, "Pet", other.Name())
	assert.Contains(t, other.Site().String(), "adapters_test.go:")
	assert.Contains(t, other.String(), "Pet @ adapters_test.go:")
	assert.False(t, other.IsZero())
	assert.True(t, SchemaID{}.IsZero())
}

func TestNewIDAt(t *testing.T) {
	site := Callsite{File: "/src/pet.go", Line: 12}
	id := NewIDAt("Pet", site)
	assert.Equal(t, NewIDAt("Pet", site), id)
	assert.Equal(t, "Pet @ pet.go:12", id.String())
}

func TestNop(t *testing.T) {
	t.Run("terminal shape delivers the result", func(t *testing.T) {
		got, err := Describe(Nop(42), Int32())
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("records deliver on End", func(t *testing.T) {
		s := Struct(NewID("Point"), StructOptions{},
			Field{Name: "x", Schema: Float64()},
			Field{Name: "y", Schema: Float64()},
		)
		got, err := Describe(Nop("done"), s)
		require.NoError(t, err)
		assert.Equal(t, "done", got)
	})

	t.Run("recursive schemas are not walked", func(t *testing.T) {
		var node Schema
		node = SchemaFunc(func(b Builder) error {
			return Struct(NewID("Node"), StructOptions{},
				Field{Name: "next", Schema: node, Optional: true},
			).DescribeSchema(b)
		})
		_, err := Describe(Nop(true), node)
		require.NoError(t, err)
	})

	t.Run("second call panics", func(t *testing.T) {
		b := Nop(1)(func(int) error { return nil })
		require.NoError(t, b.DescribeBool(BoolOptions{}))
		assert.PanicsWithValue(t, "builder session already finished", func() {
			_ = b.DescribeBool(BoolOptions{})
		})
	})

	t.Run("calls after End panic", func(t *testing.T) {
		b := Nop(1)(func(int) error { return nil })
		sb, err := b.DescribeStruct(SchemaID{}, StructOptions{})
		require.NoError(t, err)
		require.NoError(t, sb.End())
		assert.Panics(t, func() {
			_ = sb.DescribeField("x", FieldOptions{}, Bool(BoolOptions{}))
		})
	})
}

func TestOptionalize(t *testing.T) {
	tests := []struct {
		name     string
		schema   Schema
		optional bool
	}{
		{name: "plain integer", schema: Int32(), optional: false},
		{name: "option at the root", schema: Option(Int32(), OptionOptions{}), optional: true},
		{name: "option inside a slice", schema: Slice(Option(Int32(), OptionOptions{}), SeqOptions{}), optional: false},
		{name: "option of option", schema: Option(Option(Text(), OptionOptions{}), OptionOptions{}), optional: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Describe(Optionalize(Nop("value")), tt.schema)
			require.NoError(t, err)
			assert.Equal(t, tt.optional, got.IsOptional)
			assert.Equal(t, "value", got.Value)
		})
	}
}

func TestPostProcess(t *testing.T) {
	double := PostProcess(Nop(21), func(v int) (int, error) { return v * 2, nil })
	got, err := Describe(double, Bool(BoolOptions{}))
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	boom := errors.New("boom")
	failing := PostProcess(Nop(1), func(int) (string, error) { return "", boom })
	_, err = Describe(failing, Bool(BoolOptions{}))
	assert.ErrorIs(t, err, boom)
}

func TestPostProcess_Chained(t *testing.T) {
	f := PostProcess(Optionalize(Nop("x")), func(o Optional[string]) (bool, error) {
		return o.IsOptional, nil
	})
	got, err := Describe(f, Option(Text(), OptionOptions{}))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestImpossible(t *testing.T) {
	assert.ErrorIs(t, Impossible{}.End(), oaserrors.ErrUnreachable)
	assert.ErrorIs(t, Impossible{}.DescribeField("x", FieldOptions{}, Text()), oaserrors.ErrUnreachable)
	_, err := Impossible{}.DescribeTupleVariant(0, "A", VariantOptions{}, 1)
	assert.ErrorIs(t, err, oaserrors.ErrUnreachable)
	assert.ErrorIs(t, ImpossibleTuple{}.DescribeElement(Text(), ElementOptions{}), oaserrors.ErrUnreachable)
}

func TestDescribe_NoShape(t *testing.T) {
	_, err := Describe(Nop(1), SchemaFunc(func(Builder) error { return nil }))
	assert.ErrorIs(t, err, oaserrors.ErrShape)
}
