package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
)

type listTypesInput struct{}

type listTypesOutput struct {
	Total int                 `json:"total"`
	Types []petstore.TypeInfo `json:"types"`
}

func handleListTypes(_ context.Context, _ *mcp.CallToolRequest, _ listTypesInput) (*mcp.CallToolResult, listTypesOutput, error) {
	types := petstore.New(cfg.Rename).Types()
	return nil, listTypesOutput{Total: len(types), Types: types}, nil
}

type renderSchemaInput struct {
	Version string `json:"version,omitempty" jsonschema:"OpenAPI version: 3.0 or 3.1 (default from NEXUSDOC_VERSION)"`
	Format  string `json:"format,omitempty"  jsonschema:"Output format: json or yaml (default from NEXUSDOC_FORMAT)"`
	Rename  string `json:"rename,omitempty"  jsonschema:"Rename rule for fields and variants: none\\, lowercase\\, UPPERCASE\\, PascalCase\\, camelCase\\, snake_case\\, SCREAMING_SNAKE_CASE\\, kebab-case\\, SCREAMING-KEBAB-CASE"`
	Inline  *bool  `json:"inline,omitempty"  jsonschema:"Render every schema in place instead of referencing components"`
	Type    string `json:"type" jsonschema:"Name of the catalog type to render\\, e.g. Pet or Payment"`
}

type renderSchemaOutput struct {
	Type           string `json:"type"`
	Version        string `json:"version"`
	Format         string `json:"format"`
	ComponentCount int    `json:"component_count"`
	Schema         string `json:"schema"`
}

func handleRenderSchema(_ context.Context, _ *mcp.CallToolRequest, input renderSchemaInput) (*mcp.CallToolResult, renderSchemaOutput, error) {
	s, err := input.catalog().resolve()
	if err != nil {
		return errResult(err), renderSchemaOutput{}, nil
	}
	rendered, err := s.catalog.RenderType(input.Type, petstore.RenderOptions{Inline: s.inline, Logger: s.logger})
	if err != nil {
		return errResult(err), renderSchemaOutput{}, nil
	}
	out, err := openapi.Encode(rendered.ToMap(s.version), s.format)
	if err != nil {
		return errResult(err), renderSchemaOutput{}, nil
	}
	return nil, renderSchemaOutput{
		Type:           input.Type,
		Version:        s.version.String(),
		Format:         string(s.format),
		ComponentCount: len(rendered.Components),
		Schema:         string(out),
	}, nil
}
