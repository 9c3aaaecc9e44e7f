// Package nexustack derives OpenAPI 3.0 and 3.1 documents from type
// descriptions written in Go.
//
// Types describe themselves once, through the capability protocol of the
// schema package, and every consumer of that description is a builder:
// renderers produce JSON Schema, example generators produce sample values and
// adapters such as flattening or optional tracking wrap other builders.
//
// # Packages
//
//   - schema: type identity, the Builder protocol, option structs, adapters
//     and descriptions of primitives, containers, records and unions
//   - example: deterministic example sequences over iter.Seq
//   - registry: the schema collection of one build, deduplicated by name
//   - render: turns descriptions into *openapi.Schema, inline or by "$ref"
//   - builder: describes operations and assembles documents
//   - openapi: the document model and its 3.0 and 3.1 serialization
//   - oaserrors: error sentinels and structured error types
//
// # Quick Start
//
// Describe a record and render it:
//
//	var petID = schema.NewID("Pet")
//
//	pet := schema.Struct(petID, schema.StructOptions{},
//		schema.Field{Name: "id", Schema: schema.Uint64()},
//		schema.Field{Name: "tag", Schema: schema.Text(), Optional: true},
//	)
//	s, err := render.Inline(pet)
//
// Assemble a document:
//
//	doc, err := builder.New(openapi.Version31).
//		SetTitle("Pet Store").
//		SetVersion("1.0.0").
//		AddOperation(getPet).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := openapi.EncodeDocument(doc, openapi.FormatYAML)
//
// # Unions
//
// schema.Enum declares a tagged union. The tagging convention selects the
// wire shape of each variant:
//
//   - ExternallyTagged: {"Name": payload}, unit variants are the bare name
//   - InternallyTagged: the tag property merged into a record payload
//   - AdjacentlyTagged: {"tag": "Name", "content": payload}
//   - Untagged: the bare payload
//
// # Errors
//
// Every failure is returned, never logged and swallowed. Structural
// duplicates match oaserrors.ErrConflict, unsupported shapes match
// oaserrors.ErrShape and registry misuse matches oaserrors.ErrRegistry:
//
//	if errors.Is(err, oaserrors.ErrConflict) {
//		// duplicate field, status code, operation, ...
//	}
//
// # Command Line
//
// The nexusdoc command renders a sample pet store API:
//
//	nexusdoc document -version 3.0 -format yaml
//	nexusdoc schema Payment
//	nexusdoc mcp
package nexustack
