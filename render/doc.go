// Package render turns schema descriptions into OpenAPI schema objects.
//
// A [Renderer] implements the [schema.Builder] protocol. In inline mode
// every shape is rendered in place:
//
//	s, err := render.Inline(schema.Slice(schema.Int32(), schema.SeqOptions{}))
//
// With a registry, named records, maps, unions, tuple structs, newtypes and
// unit structs are defined once under components and referenced by "$ref".
// A name met again while its definition is still being built, as in a
// recursive type, resolves to the reference without walking the type again.
//
//	c := registry.New()
//	h := c.Share()
//	s, err := render.New(render.WithRegistry(h)).Render(petSchema)
//	h.Release()
//	components, err := c.Finalize()
//
// # Conventions
//
//   - integers carry the bounds of their width and an int32 or int64 format
//   - options become nullable; references and untyped compositions are
//     wrapped in a oneOf with the null schema
//   - fields whose outermost shape is an option are not required
//   - unions are an anyOf with one alternative per variant, shaped by the
//     variant tag (external, internal, adjacent or untagged)
//   - map keys are described by a pattern, see [KeyPattern]
//
// The rendered *openapi.Schema is version neutral. Spelling differences
// between OpenAPI 3.0 and 3.1 are applied by [openapi.Schema.ToMap].
package render
