package schema

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Callsite is the source location that defines a named schema.
type Callsite struct {
	File string
	Line int
}

// String returns "file:line" with the file reduced to its base name.
func (c Callsite) String() string {
	if c.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(c.File), c.Line)
}

// SchemaID identifies a named schema by name and definition site.
//
// Two ids are equal when both name and site match. Describing a type twice
// therefore reuses one registry entry, while two unrelated types that happen
// to share a name are reported as a conflict when the registry is finalized.
// The zero SchemaID marks an anonymous shape.
type SchemaID struct {
	name string
	site Callsite
}

// NewID returns the id for name defined at the caller's source line.
//
// Call it inside DescribeSchema so that every walk of the type produces the
// same id:
//
//	func (Pet) DescribeSchema(b schema.Builder) error {
//		sb, err := b.DescribeStruct(schema.NewID("Pet"), schema.StructOptions{Len: 2})
//		...
//	}
func NewID(name string) SchemaID {
	return SchemaID{name: name, site: caller(2)}
}

// NewIDAt returns the id for name defined at an explicit site. Generated
// code uses it to pin ids to the declaration of the type.
func NewIDAt(name string, site Callsite) SchemaID {
	return SchemaID{name: name, site: site}
}

// Name returns the schema name used in component keys and references.
func (id SchemaID) Name() string { return id.name }

// Site returns the definition site.
func (id SchemaID) Site() Callsite { return id.site }

// IsZero reports whether id is the anonymous id.
func (id SchemaID) IsZero() bool { return id == SchemaID{} }

// String returns "name @ file:line".
func (id SchemaID) String() string {
	if id.IsZero() {
		return "<anonymous>"
	}
	return id.name + " @ " + id.site.String()
}

func caller(skip int) Callsite {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Callsite{}
	}
	return Callsite{File: file, Line: line}
}
