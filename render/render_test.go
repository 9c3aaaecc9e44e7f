package render

import (
	"errors"
	"math"
	"testing"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/registry"
	"github.com/1ean267/nexustack-sub001/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pointID = schema.NewIDAt("Point", schema.Callsite{File: "point.go", Line: 4})
	nodeID  = schema.NewIDAt("Node", schema.Callsite{File: "node.go", Line: 9})
	shapeID = schema.NewIDAt("Shape", schema.Callsite{File: "shape.go", Line: 12})
)

func point() schema.Schema {
	return schema.Struct(pointID, schema.StructOptions{Description: "A point"},
		schema.Field{Name: "x", Schema: schema.Int32()},
		schema.Field{Name: "y", Schema: schema.Option(schema.Int32(), schema.OptionOptions{})},
	)
}

// node is a recursive record: every node holds a list of nodes.
func node() schema.Schema {
	return schema.SchemaFunc(func(b schema.Builder) error {
		sb, err := b.DescribeStruct(nodeID, schema.StructOptions{Len: 2})
		if err != nil {
			return err
		}
		if err := sb.DescribeField("value", schema.FieldOptions{}, schema.Int32()); err != nil {
			return err
		}
		children := schema.SchemaFunc(func(b schema.Builder) error {
			return b.DescribeSeq(schema.SeqOptions{}, node())
		})
		if err := sb.DescribeField("children", schema.FieldOptions{}, children); err != nil {
			return err
		}
		return sb.End()
	})
}

// withRegistry renders s into a fresh registry and finalizes it.
func withRegistry(t *testing.T, s schema.Schema) (*openapi.Schema, map[string]*openapi.Schema) {
	t.Helper()
	c := registry.New()
	h := c.Share()
	out, err := New(WithRegistry(h)).Render(s)
	require.NoError(t, err)
	h.Release()
	components, err := c.Finalize()
	require.NoError(t, err)
	return out, components
}

func TestRender_Integer(t *testing.T) {
	s, err := Inline(schema.Int32())
	require.NoError(t, err)
	assert.Equal(t, []string{"integer"}, s.Types)
	assert.Equal(t, "int32", s.Format)
	assert.Equal(t, int64(math.MinInt32), s.Minimum)
	assert.Equal(t, int64(math.MaxInt32), s.Maximum)
	assert.Equal(t, []any{int64(math.MinInt32), int64(-1), int64(0), int64(1), int64(math.MaxInt32)}, s.Examples)

	small, err := Inline(schema.Int8())
	require.NoError(t, err)
	assert.Empty(t, small.Format)
	assert.Equal(t, int64(math.MinInt8), small.Minimum)

	wide, err := Inline(schema.Uint64())
	require.NoError(t, err)
	assert.Equal(t, "int64", wide.Format)
	assert.Equal(t, uint64(0), wide.Minimum)
	assert.Equal(t, uint64(math.MaxUint64), wide.Maximum)
}

func TestRender_ExclusiveBounds(t *testing.T) {
	s, err := Inline(schema.Integer(schema.IntOptions[int64]{
		Min:        schema.Exclusive[int64](0),
		Max:        schema.Inclusive[int64](100),
		MultipleOf: 5,
	}))
	require.NoError(t, err)

	v30 := s.ToMap(openapi.Version30)
	assert.Equal(t, int64(0), v30["minimum"])
	assert.Equal(t, true, v30["exclusiveMinimum"])
	assert.Equal(t, int64(100), v30["maximum"])
	assert.Equal(t, int64(5), v30["multipleOf"])

	v31 := s.ToMap(openapi.Version31)
	assert.Equal(t, int64(0), v31["exclusiveMinimum"])
	assert.NotContains(t, v31, "minimum")
}

func TestRender_Float(t *testing.T) {
	s, err := Inline(schema.Float64())
	require.NoError(t, err)
	assert.Equal(t, []string{"number"}, s.Types)
	assert.Equal(t, "double", s.Format)
	assert.Nil(t, s.Minimum)
	assert.Nil(t, s.Maximum)
	for _, ex := range s.Examples {
		f, ok := ex.(float64)
		require.True(t, ok)
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0))
	}
}

func TestRender_StringLike(t *testing.T) {
	c, err := Inline(schema.Char(schema.CharOptions{Only: []rune{'a', 'b'}}))
	require.NoError(t, err)
	assert.Equal(t, 1, *c.MinLength)
	assert.Equal(t, 1, *c.MaxLength)
	assert.Equal(t, []any{"a", "b"}, c.Enum)
	assert.Equal(t, []any{"a", "b"}, c.Examples)

	b, err := Inline(schema.Bytes(schema.BytesOptions{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"array"}, b.Types)
	assert.Equal(t, int64(255), b.Items.Maximum)
	assert.Contains(t, b.Examples, []any{int64(0xde), int64(0xad), int64(0xbe), int64(0xef)})
}

func TestRender_Unit(t *testing.T) {
	s, err := Inline(schema.Unit(schema.UnitOptions{Description: "nothing"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"null"}, s.Types)
	assert.Equal(t, "nothing", s.Description)
	assert.Equal(t, "null", s.ToMap(openapi.Version31)["type"])
}

func TestRender_Option(t *testing.T) {
	s, err := Inline(schema.Option(schema.Int32(), schema.OptionOptions{Description: "maybe"}))
	require.NoError(t, err)
	assert.True(t, s.Nullable)
	assert.Equal(t, "maybe", s.Description)
	require.NotEmpty(t, s.Examples)
	assert.Nil(t, s.Examples[len(s.Examples)-1])

	assert.Equal(t, []string{"integer", "null"}, s.ToMap(openapi.Version31)["type"])
	v30 := s.ToMap(openapi.Version30)
	assert.Equal(t, "integer", v30["type"])
	assert.Equal(t, true, v30["nullable"])
}

func TestRender_OptionOfReference(t *testing.T) {
	out, _ := withRegistry(t, schema.Option(schema.Named(pointID, schema.Int32(), schema.NewtypeOptions{}), schema.OptionOptions{}))
	require.Len(t, out.OneOf, 2)
	assert.Equal(t, registry.Ref("Point"), out.OneOf[0].Ref)
	assert.Equal(t, []string{"null"}, out.OneOf[1].Types)
}

func TestRender_Record(t *testing.T) {
	s, err := Inline(point())
	require.NoError(t, err)
	assert.Equal(t, []string{"object"}, s.Types)
	assert.Equal(t, "A point", s.Description)
	assert.Equal(t, []string{"x"}, s.Required)
	require.Contains(t, s.Properties, "y")
	assert.True(t, s.Properties["y"].Nullable)

	// inline mode ignores ids and is deterministic
	again, err := Inline(point())
	require.NoError(t, err)
	assert.Equal(t, s.ToMap(openapi.Version31), again.ToMap(openapi.Version31))
}

func TestRender_RegistryDedup(t *testing.T) {
	pair := schema.Struct(schema.SchemaID{}, schema.StructOptions{},
		schema.Field{Name: "from", Schema: point()},
		schema.Field{Name: "to", Schema: point(), Options: schema.FieldOptions{Description: "end", Mod: schema.ReadOnly}},
	)
	out, components := withRegistry(t, pair)

	assert.Equal(t, registry.Ref("Point"), out.Properties["from"].Ref)
	to := out.Properties["to"]
	require.Len(t, to.AllOf, 1, "a reference with metadata is wrapped")
	assert.Equal(t, registry.Ref("Point"), to.AllOf[0].Ref)
	assert.Equal(t, "end", to.Description)
	assert.True(t, to.ReadOnly)

	require.Len(t, components, 1)
	assert.Equal(t, []string{"x"}, components["Point"].Required)
}

func TestRender_Recursive(t *testing.T) {
	out, components := withRegistry(t, node())
	assert.Equal(t, registry.Ref("Node"), out.Ref)

	def := components["Node"]
	require.NotNil(t, def)
	children := def.Properties["children"]
	require.NotNil(t, children.Items)
	assert.Equal(t, registry.Ref("Node"), children.Items.Ref)
	assert.Equal(t, []string{"children", "value"}, def.Required)
}

func TestRender_DuplicateField(t *testing.T) {
	s := schema.Struct(schema.SchemaID{}, schema.StructOptions{},
		schema.Field{Name: "x", Schema: schema.Int32()},
		schema.Field{Name: "x", Schema: schema.Text()},
	)
	_, err := Inline(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConflict)
	assert.EqualError(t, err, "duplicate entry for field x")
}

func TestRender_Flatten(t *testing.T) {
	extra := schema.Struct(schema.NewIDAt("Extra", schema.Callsite{File: "extra.go", Line: 1}), schema.StructOptions{},
		schema.Field{Name: "b", Schema: schema.Bool(schema.BoolOptions{})},
		schema.Field{Name: "c", Schema: schema.Text(), Optional: true},
	)
	s := schema.Struct(schema.SchemaID{}, schema.StructOptions{},
		schema.Field{Name: "a", Schema: schema.Int32()},
		schema.Field{Flatten: true, Schema: extra},
	)
	out, components := withRegistry(t, s)
	assert.Len(t, out.Properties, 3)
	assert.Equal(t, []string{"a", "b"}, out.Required)
	assert.Empty(t, components, "flattened records are not registered")

	_, err := Inline(schema.Struct(schema.SchemaID{}, schema.StructOptions{},
		schema.Field{Flatten: true, Schema: schema.Slice(schema.Int32(), schema.SeqOptions{})},
	))
	assert.ErrorIs(t, err, oaserrors.ErrShape)
}

func TestRender_Map(t *testing.T) {
	plain, err := Inline(schema.Map(schema.Text(), schema.Int32(), schema.MapOptions{}))
	require.NoError(t, err)
	require.NotNil(t, plain.AdditionalProperties)
	assert.Equal(t, []string{"integer"}, plain.AdditionalProperties.Types)

	numbered, err := Inline(schema.Map(schema.Uint8(), schema.Bool(schema.BoolOptions{}), schema.MapOptions{}))
	require.NoError(t, err)
	assert.Contains(t, numbered.PatternProperties, unsignedKeyPattern)

	v30 := numbered.ToMap(openapi.Version30)
	assert.NotContains(t, v30, "patternProperties")
	assert.Equal(t, "boolean", v30["additionalProperties"].(map[string]any)["type"])

	sliceKeyed := schema.SchemaFunc(func(b schema.Builder) error {
		mb, err := b.DescribeMap(schema.SchemaID{}, schema.MapOptions{})
		if err != nil {
			return err
		}
		if err := mb.DescribeAdditionalElements(schema.Slice(schema.Text(), schema.SeqOptions{}), schema.Text(), schema.FieldOptions{}); err != nil {
			return err
		}
		return mb.End()
	})
	_, err = Inline(sliceKeyed)
	assert.ErrorIs(t, err, oaserrors.ErrShape)
}

func TestRender_Tuple(t *testing.T) {
	s, err := Inline(schema.Tuple2(schema.Bool(schema.BoolOptions{}), schema.Text(), schema.TupleOptions{}))
	require.NoError(t, err)
	assert.Len(t, s.PrefixItems, 2)
	assert.Equal(t, 2, *s.MinItems)
	assert.Equal(t, 2, *s.MaxItems)

	assert.Contains(t, s.ToMap(openapi.Version31), "prefixItems")
	items := s.ToMap(openapi.Version30)["items"].(map[string]any)
	assert.Len(t, items["oneOf"], 2)

	short := schema.SchemaFunc(func(b schema.Builder) error {
		tb, err := b.DescribeTuple(schema.TupleOptions{Len: 3})
		if err != nil {
			return err
		}
		if err := tb.DescribeElement(schema.Int32(), schema.ElementOptions{}); err != nil {
			return err
		}
		return tb.End()
	})
	_, err = Inline(short)
	assert.ErrorIs(t, err, oaserrors.ErrShape)
}

func TestRender_Seq(t *testing.T) {
	s, err := Inline(schema.Set(schema.Text(), schema.SeqOptions{MaxItems: openapi.Ptr(3)}))
	require.NoError(t, err)
	assert.True(t, s.UniqueItems)
	assert.Equal(t, 3, *s.MaxItems)
	assert.Equal(t, []string{"string"}, s.Items.Types)
}

func TestRender_NotAndCombinators(t *testing.T) {
	n, err := Inline(schema.Not(schema.NotOptions{Description: "not a string"}, schema.Text()))
	require.NoError(t, err)
	assert.Equal(t, []string{"string"}, n.Not.Types)

	c, err := Inline(schema.Compose(schema.OneOf, schema.CombinatorOptions{}, schema.Text(), schema.Int32()))
	require.NoError(t, err)
	assert.Len(t, c.OneOf, 2)

	nullable, err := Inline(schema.SchemaFunc(func(b schema.Builder) error {
		return b.DescribeOption(schema.OptionOptions{}, schema.Compose(schema.OneOf, schema.CombinatorOptions{}, schema.Text()))
	}))
	require.NoError(t, err)
	require.Len(t, nullable.OneOf, 2)
	assert.Equal(t, []string{"null"}, nullable.OneOf[1].Types)
}

func TestRender_SessionIsSingleUse(t *testing.T) {
	b := New().Factory()(func(*openapi.Schema) error { return nil })
	require.NoError(t, b.DescribeBool(schema.BoolOptions{}))
	assert.PanicsWithValue(t, "builder session already finished", func() {
		_ = b.DescribeBool(schema.BoolOptions{})
	})
}

func TestRender_RegistryConflict(t *testing.T) {
	other := schema.Struct(schema.NewIDAt("Point", schema.Callsite{File: "elsewhere.go", Line: 2}), schema.StructOptions{})
	both := schema.Struct(schema.SchemaID{}, schema.StructOptions{},
		schema.Field{Name: "a", Schema: point()},
		schema.Field{Name: "b", Schema: other},
	)
	c := registry.New()
	h := c.Share()
	_, err := New(WithRegistry(h)).Render(both)
	require.NoError(t, err, "conflicts surface on finalize")
	h.Release()

	_, err = c.Finalize()
	var re *oaserrors.RegistryError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, oaserrors.RegistryConflict, re.Kind)
}
