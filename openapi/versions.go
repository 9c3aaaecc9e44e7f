package openapi

import (
	"fmt"
	"strings"

	"github.com/1ean267/nexustack-sub001/oaserrors"
)

// Version identifies the OpenAPI dialect a document or schema is serialized for.
// The in-memory model is shared by all versions; only serialization differs.
type Version int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown Version = iota
	// Version30 OpenAPI Specification Version 3.0.3
	Version30
	// Version31 OpenAPI Specification Version 3.1.0
	Version31
)

// DefaultJSONSchemaDialect is the jsonSchemaDialect emitted for 3.1 documents.
const DefaultJSONSchemaDialect = "https://spec.openapis.org/oas/3.1/dialect/base"

var versionToString = map[Version]string{
	Version30: "3.0.3",
	Version31: "3.1.0",
}

// String returns the full version string written to the `openapi` field.
func (v Version) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// Is31 reports whether v uses JSON Schema 2020-12 semantics.
func (v Version) Is31() bool {
	return v == Version31
}

// ParseVersion accepts "3.0", "3.0.x", "3.1" and "3.1.x".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "v"))
	switch {
	case s == "3.0" || strings.HasPrefix(s, "3.0."):
		return Version30, nil
	case s == "3.1" || strings.HasPrefix(s, "3.1."):
		return Version31, nil
	default:
		return Unknown, &oaserrors.ConfigError{
			Option:  "version",
			Value:   s,
			Message: fmt.Sprintf("unsupported OpenAPI version %q (want 3.0 or 3.1)", s),
		}
	}
}
