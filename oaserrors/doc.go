// Package oaserrors provides structured error types for schema and document generation.
//
// Import path: github.com/1ean267/nexustack-sub001/oaserrors
//
// Every error produced while describing a type or assembling a document can be
// classified via [errors.Is] and inspected via [errors.As].
//
// # Error Types
//
//   - [ConflictError]: duplicate field, key, status code, content type, parameter,
//     security requirement name or (path, method) slot
//   - [TagConflictError]: a tagged union tag colliding with a field or its content key
//   - [ShapeError]: a shape the receiving builder cannot handle (flattening a
//     sequence, an unsupported HTTP method, a request body without content types)
//   - [RegistryError]: conflicting schema definitions, finalization while the
//     registry is still shared, reserved but undefined schemas
//   - [ConfigError]: invalid options or document metadata
//
// # Sentinel Errors
//
//   - [ErrConflict]: matches any [ConflictError]
//   - [ErrTagConflict]: matches any [TagConflictError]
//   - [ErrShape]: matches any [ShapeError]
//   - [ErrRegistry]: matches any [RegistryError]
//   - [ErrConfig]: matches any [ConfigError]
//   - [ErrUnreachable]: returned by placeholder builders that must never run
//
// # Usage
//
//	doc, err := b.Build()
//	if errors.Is(err, oaserrors.ErrConflict) {
//	    var conflict *oaserrors.ConflictError
//	    if errors.As(err, &conflict) {
//	        log.Printf("duplicate %s: %s", conflict.Kind, conflict.Key)
//	    }
//	}
package oaserrors
