// Package naming converts Go identifiers into wire names.
//
// A [RenameRule] maps a field or variant name such as "CreatedAt" to the
// name used in documents, e.g. "created_at" for [SnakeCase]. Rules are
// parsed from their conventional spelling ("snake_case", "camelCase", ...)
// so they can be selected from flags and configuration.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
