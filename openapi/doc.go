// Package openapi contains the wire object model shared by the renderers and
// the document builder, and its serialization to OpenAPI 3.0 and 3.1.
//
// # One Model, Two Dialects
//
// A [Schema] or [Document] is built once and can be rendered for either
// version. Version specific spelling is resolved by [Schema.ToMap] and
// [Document.ToMap]:
//
//	| Concept            | 3.0                               | 3.1                         |
//	|--------------------|-----------------------------------|-----------------------------|
//	| nullable           | nullable: true                    | type: [T, "null"]           |
//	| examples           | example: first                    | examples: [...]             |
//	| exclusive bounds   | minimum + exclusiveMinimum: true  | exclusiveMinimum: n         |
//	| tuples             | items: {oneOf: [...]}             | prefixItems: [...]          |
//	| null type          | type: string, nullable, enum:[null] | type: "null"              |
//	| patternProperties  | folded into additionalProperties  | patternProperties           |
//
// # Encoding
//
// [Encode] writes JSON (github.com/goccy/go-json) or YAML (go.yaml.in/yaml/v4).
// Map keys are sorted, so the same model always produces the same bytes:
//
//	data, err := openapi.EncodeDocument(doc, openapi.FormatYAML)
//
// # Logging
//
// [Logger] is the structured logging interface used throughout the module.
// [NopLogger] discards everything and [SlogAdapter] forwards to log/slog.
package openapi
