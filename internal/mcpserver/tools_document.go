package mcpserver

import (
	"context"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1ean267/nexustack-sub001/internal/petstore"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/validator"
)

type generateDocumentInput struct {
	Version    string `json:"version,omitempty" jsonschema:"OpenAPI version: 3.0 or 3.1 (default from NEXUSDOC_VERSION)"`
	Format     string `json:"format,omitempty"  jsonschema:"Output format: json or yaml (default from NEXUSDOC_FORMAT)"`
	Rename     string `json:"rename,omitempty"  jsonschema:"Rename rule for fields and variants: none\\, lowercase\\, UPPERCASE\\, PascalCase\\, camelCase\\, snake_case\\, SCREAMING_SNAKE_CASE\\, kebab-case\\, SCREAMING-KEBAB-CASE"`
	Inline     *bool  `json:"inline,omitempty"  jsonschema:"Render every schema in place instead of referencing components"`
	Title      string `json:"title,omitempty"       jsonschema:"Overrides info.title"`
	APIVersion string `json:"api_version,omitempty" jsonschema:"Overrides info.version (the API version\\, not the OpenAPI version)"`
}

type generateDocumentOutput struct {
	Version        string   `json:"version"`
	Format         string   `json:"format"`
	Title          string   `json:"title"`
	PathCount      int      `json:"path_count"`
	OperationCount int      `json:"operation_count"`
	SchemaCount    int      `json:"schema_count"`
	Valid          bool     `json:"valid"`
	ErrorCount     int      `json:"error_count"`
	WarningCount   int      `json:"warning_count"`
	Issues         []string `json:"issues,omitempty"`
	Document       string   `json:"document"`
}

func buildDocument(s *settings, info *openapi.Info) (*openapi.Document, error) {
	return s.catalog.Document(petstore.DocumentOptions{
		Version: s.version,
		Inline:  s.inline,
		Logger:  s.logger,
		Info:    info,
	})
}

func handleGenerateDocument(_ context.Context, _ *mcp.CallToolRequest, input generateDocumentInput) (*mcp.CallToolResult, generateDocumentOutput, error) {
	s, err := input.catalog().resolve()
	if err != nil {
		return errResult(err), generateDocumentOutput{}, nil
	}
	doc, err := buildDocument(s, &openapi.Info{Title: input.Title, Version: input.APIVersion})
	if err != nil {
		return errResult(err), generateDocumentOutput{}, nil
	}
	out, err := openapi.EncodeDocument(doc, s.format)
	if err != nil {
		return errResult(err), generateDocumentOutput{}, nil
	}

	output := generateDocumentOutput{
		Version:   doc.Version.String(),
		Format:    string(s.format),
		Title:     doc.Info.Title,
		PathCount: len(doc.Paths),
		Document:  string(out),
	}
	for _, item := range doc.Paths {
		output.OperationCount += len(item.Operations())
	}
	if doc.Components != nil {
		output.SchemaCount = len(doc.Components.Schemas)
	}

	result := validator.New().Validate(doc)
	output.Valid = result.Valid
	output.ErrorCount = result.ErrorCount
	output.WarningCount = result.WarningCount
	for _, e := range result.Errors {
		output.Issues = append(output.Issues, e.String())
	}
	for _, w := range result.Warnings {
		output.Issues = append(output.Issues, w.String())
	}
	return nil, output, nil
}

type listOperationsInput struct {
	Version string `json:"version,omitempty" jsonschema:"OpenAPI version: 3.0 or 3.1 (default from NEXUSDOC_VERSION)"`
	Format  string `json:"format,omitempty"  jsonschema:"Output format: json or yaml (default from NEXUSDOC_FORMAT)"`
	Rename  string `json:"rename,omitempty"  jsonschema:"Rename rule for fields and variants: none\\, lowercase\\, UPPERCASE\\, PascalCase\\, camelCase\\, snake_case\\, SCREAMING_SNAKE_CASE\\, kebab-case\\, SCREAMING-KEBAB-CASE"`
	Inline  *bool  `json:"inline,omitempty"  jsonschema:"Render every schema in place instead of referencing components"`
	Tag     string `json:"tag,omitempty"      jsonschema:"Filter by tag"`
	Method  string `json:"method,omitempty"   jsonschema:"Filter by HTTP method (case-insensitive)"`
	GroupBy string `json:"group_by,omitempty" jsonschema:"Group results and return counts instead of individual items. Values: tag\\, method"`
	Limit   int    `json:"limit,omitempty"    jsonschema:"Maximum results (default 100)"`
	Offset  int    `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
}

type operationSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

type listOperationsOutput struct {
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
	Groups     []groupCount       `json:"groups,omitempty"`
}

func handleListOperations(_ context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, listOperationsOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"tag", "method"}); err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}
	s, err := input.catalog().resolve()
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}
	doc, err := buildDocument(s, nil)
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	all := summarizeOperations(doc.Paths)
	var matched []operationSummary
	for _, op := range all {
		if input.Method != "" && !strings.EqualFold(op.Method, input.Method) {
			continue
		}
		if input.Tag != "" && !containsFold(op.Tags, input.Tag) {
			continue
		}
		matched = append(matched, op)
	}

	output := listOperationsOutput{Total: len(all), Matched: len(matched)}
	switch strings.ToLower(input.GroupBy) {
	case "tag":
		output.Groups = groupAndSort(matched, func(op operationSummary) []string { return op.Tags })
		return nil, output, nil
	case "method":
		output.Groups = groupAndSort(matched, func(op operationSummary) []string { return []string{op.Method} })
		return nil, output, nil
	}
	output.Operations = paginate(matched, input.Offset, input.Limit)
	output.Returned = len(output.Operations)
	return nil, output, nil
}

// summarizeOperations lists operations sorted by path, then method.
func summarizeOperations(paths openapi.Paths) []operationSummary {
	var out []operationSummary
	for path, item := range paths {
		for method, op := range item.Operations() {
			out = append(out, operationSummary{
				Method:      strings.ToUpper(method),
				Path:        path,
				OperationID: op.OperationID,
				Summary:     op.Summary,
				Tags:        op.Tags,
				Deprecated:  op.Deprecated,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
