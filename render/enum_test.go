package render

import (
	"errors"
	"testing"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/registry"
	"github.com/1ean267/nexustack-sub001/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shape(tag schema.VariantTag, nonExhaustive bool) schema.Schema {
	return schema.Enum(schema.SchemaID{}, schema.EnumOptions{Tag: tag, NonExhaustive: nonExhaustive},
		schema.UnitVariant("A"),
		schema.NewtypeVariant("B", schema.Option(schema.Int32(), schema.OptionOptions{})),
		schema.StructVariant("C", schema.Field{Name: "x", Schema: schema.Int32()}),
	)
}

func TestEnum_ExternallyTagged(t *testing.T) {
	s, err := Inline(shape(nil, false))
	require.NoError(t, err)
	require.Len(t, s.AnyOf, 3)

	a := s.AnyOf[0]
	assert.Equal(t, []string{"string"}, a.Types)
	assert.Equal(t, []any{"A"}, a.Enum)

	b := s.AnyOf[1]
	assert.Equal(t, []string{"B"}, b.Required)
	assert.Equal(t, []string{"integer", "null"}, b.Properties["B"].ToMap(openapi.Version31)["type"])

	c := s.AnyOf[2]
	assert.Equal(t, []string{"C"}, c.Required)
	assert.Equal(t, []string{"x"}, c.Properties["C"].Required)
}

func TestEnum_InternallyTagged(t *testing.T) {
	s, err := Inline(schema.Enum(schema.SchemaID{}, schema.EnumOptions{Tag: schema.InternallyTagged{Tag: "kind"}},
		schema.UnitVariant("A"),
		schema.StructVariant("C", schema.Field{Name: "x", Schema: schema.Int32()}),
		schema.NewtypeVariant("D", schema.Map(schema.Text(), schema.Text(), schema.MapOptions{})),
	))
	require.NoError(t, err)
	require.Len(t, s.AnyOf, 3)

	a := s.AnyOf[0]
	assert.Equal(t, []string{"kind"}, a.Required)
	assert.Equal(t, []any{"A"}, a.Properties["kind"].Enum)

	c := s.AnyOf[1]
	assert.Equal(t, []string{"kind", "x"}, c.Required)
	assert.Equal(t, []any{"C"}, c.Properties["kind"].Enum)

	d := s.AnyOf[2]
	assert.Equal(t, []string{"kind"}, d.Required)
	assert.NotNil(t, d.AdditionalProperties)
}

func TestEnum_InternallyTaggedRejects(t *testing.T) {
	internal := schema.EnumOptions{Tag: schema.InternallyTagged{Tag: "type"}}
	tests := []struct {
		name    string
		variant schema.Variant
		target  error
	}{
		{name: "field named like the tag", variant: schema.StructVariant("C", schema.Field{Name: "type", Schema: schema.Text()}), target: oaserrors.ErrTagConflict},
		{name: "primitive payload", variant: schema.NewtypeVariant("N", schema.Int32()), target: oaserrors.ErrShape},
		{name: "tuple variant", variant: schema.TupleVariant("T", schema.Int32(), schema.Text()), target: oaserrors.ErrShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inline(schema.Enum(schema.SchemaID{}, internal, tt.variant))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestEnum_InternallyTaggedReference(t *testing.T) {
	e := schema.Enum(shapeID, schema.EnumOptions{Tag: schema.InternallyTagged{Tag: "type"}},
		schema.NewtypeVariant("P", point()),
	)
	out, components := withRegistry(t, e)
	assert.Equal(t, registry.Ref("Shape"), out.Ref)

	alt := components["Shape"].AnyOf[0]
	require.Len(t, alt.AllOf, 2)
	assert.Equal(t, registry.Ref("Point"), alt.AllOf[0].Ref)
	assert.Equal(t, []string{"type"}, alt.AllOf[1].Required)
}

func TestEnum_AdjacentlyTagged(t *testing.T) {
	s, err := Inline(shape(schema.AdjacentlyTagged{Tag: "t", Content: "c"}, false))
	require.NoError(t, err)

	a := s.AnyOf[0]
	assert.Equal(t, []string{"t"}, a.Required)
	assert.NotContains(t, a.Properties, "c")

	b := s.AnyOf[1]
	assert.Equal(t, []string{"t", "c"}, b.Required)
	assert.Equal(t, []any{"B"}, b.Properties["t"].Enum)
	assert.True(t, b.Properties["c"].Nullable)

	_, err = Inline(shape(schema.AdjacentlyTagged{Tag: "same", Content: "same"}, false))
	var tc *oaserrors.TagConflictError
	require.True(t, errors.As(err, &tc))
	assert.Equal(t, "same", tc.Content)
}

func TestEnum_Untagged(t *testing.T) {
	s, err := Inline(shape(schema.Untagged{}, true))
	require.NoError(t, err)
	require.Len(t, s.AnyOf, 3, "untagged unions get no catch-all")
	assert.Equal(t, []string{"null"}, s.AnyOf[0].Types)
	assert.True(t, s.AnyOf[1].Nullable)
	assert.Equal(t, []string{"x"}, s.AnyOf[2].Required)
}

func TestEnum_NonExhaustive(t *testing.T) {
	const pattern = `^(?!A$)(?!B$)(?!C$).*$`

	external, err := Inline(shape(nil, true))
	require.NoError(t, err)
	require.Len(t, external.AnyOf, 4)
	assert.Contains(t, external.AnyOf[3].PatternProperties, pattern)

	internal, err := Inline(schema.Enum(schema.SchemaID{}, schema.EnumOptions{Tag: schema.InternallyTagged{Tag: "kind"}, NonExhaustive: true},
		schema.UnitVariant("A"), schema.UnitVariant("B"), schema.UnitVariant("C"),
	))
	require.NoError(t, err)
	last := internal.AnyOf[len(internal.AnyOf)-1]
	assert.Equal(t, pattern, last.Properties["kind"].Pattern)
	assert.Equal(t, []string{"kind"}, last.Required)

	adjacent, err := Inline(shape(schema.AdjacentlyTagged{Tag: "t", Content: "c"}, true))
	require.NoError(t, err)
	last = adjacent.AnyOf[len(adjacent.AnyOf)-1]
	assert.Equal(t, pattern, last.Properties["t"].Pattern)
	assert.Contains(t, last.Properties, "c")

	for _, name := range []string{"A", "B", "C"} {
		assert.False(t, matches(t, pattern, name), name)
	}
	for _, name := range []string{"D", "AB", "", "a"} {
		assert.True(t, matches(t, pattern, name), name)
	}
}

func TestEnum_VariantOptions(t *testing.T) {
	s, err := Inline(schema.Enum(schema.SchemaID{}, schema.EnumOptions{Description: "a union"},
		schema.UnitVariant("Old").WithOptions(schema.VariantOptions{Description: "legacy", Deprecated: true}),
	))
	require.NoError(t, err)
	assert.Equal(t, "a union", s.Description)
	assert.Equal(t, "legacy", s.AnyOf[0].Description)
	assert.True(t, s.AnyOf[0].Deprecated)
}

func TestEnum_RecursiveThroughRegistry(t *testing.T) {
	var expr schema.Schema
	expr = schema.SchemaFunc(func(b schema.Builder) error {
		eb, err := b.DescribeEnum(shapeID, schema.EnumOptions{Len: 2})
		if err != nil {
			return err
		}
		if err := eb.DescribeNewtypeVariant(0, "Lit", schema.VariantOptions{}, schema.Int64()); err != nil {
			return err
		}
		if err := eb.DescribeNewtypeVariant(1, "Neg", schema.VariantOptions{}, expr); err != nil {
			return err
		}
		return eb.End()
	})
	out, components := withRegistry(t, expr)
	assert.Equal(t, registry.Ref("Shape"), out.Ref)
	neg := components["Shape"].AnyOf[1]
	assert.Equal(t, registry.Ref("Shape"), neg.Properties["Neg"].Ref)
}
