// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes document and schema generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	nexustack "github.com/1ean267/nexustack-sub001"
)

const serverInstructions = `nexusdoc MCP server. Renders the sample pet store API as OpenAPI 3.0 or 3.1 documents and standalone JSON schemas.

Configuration: defaults are configurable via NEXUSDOC_* environment variables set in your MCP client config.

Key settings:
- NEXUSDOC_VERSION (default: 3.1) - OpenAPI version of generated documents
- NEXUSDOC_FORMAT (default: json) - output format, json or yaml
- NEXUSDOC_RENAME (default: camelCase) - rename rule applied to fields and variants
- NEXUSDOC_INLINE (default: false) - render schemas in place instead of under components
- NEXUSDOC_LIST_LIMIT (default: 100) - default result limit for list_operations

Every call builds with a fresh schema registry; results do not depend on earlier calls.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "nexusdoc", Version: nexustack.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_types",
		Description: "List the named types of the pet store catalog with a short description. Recursive types can only be rendered with components (inline=false).",
	}, handleListTypes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_schema",
		Description: "Render one named type of the catalog as a standalone JSON schema together with the components it refers to. Use list_types for the available names.",
	}, handleRenderSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_document",
		Description: "Generate the complete pet store OpenAPI document. Returns path, operation and schema counts, the validation outcome with any issues, and the encoded document. Title and api_version override the info object.",
	}, handleGenerateDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the operations of the generated document. Filter by tag or method. Use group_by (tag or method) to get distribution counts instead of individual items. Default limit is configurable via NEXUSDOC_LIST_LIMIT.",
	}, handleListOperations)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is one of the allowed values.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}
