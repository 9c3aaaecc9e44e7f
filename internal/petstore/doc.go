// Package petstore is a complete sample API described with the schema and
// builder packages. It declares records with optional, skipped and flattened
// fields, a recursive record, a named tuple, a map keyed by a closed set of
// names and one union per tagging convention, together with operations that
// use all of them.
//
// The nexusdoc command and the MCP server render it; tests use it as a
// realistic end-to-end fixture.
package petstore
