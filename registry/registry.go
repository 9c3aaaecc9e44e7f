// Package registry stores the named schemas of one document build.
//
// A [Collection] is an arena: entries are appended on first encounter of a
// [schema.SchemaID] and addressed by name, so recursive and mutually
// recursive types only ever hold "$ref" strings to each other. Renderers work
// through shared [Handle]s; the collection can only be finalized once every
// handle has been released.
//
//	c := registry.New()
//	h := c.Share()
//	ref, fresh := h.GetOrCreate(id)
//	if fresh {
//		_ = h.Define(id, rendered)
//	}
//	h.Release()
//	schemas, err := c.Finalize()
//
// A collection is not safe for concurrent use. Give every build its own.
package registry

import (
	"strings"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// RefPrefix is the JSON pointer prefix of component schema references.
const RefPrefix = "#/components/schemas/"

// entry is one reserved or defined schema.
type entry struct {
	id      schema.SchemaID
	schema  *openapi.Schema
	defined bool
}

// conflict is a second definition site claiming an existing name.
type conflict struct {
	name  string
	first schema.Callsite
	other schema.Callsite
}

// Collection is the schema arena of a single build.
type Collection struct {
	entries   []entry
	byName    map[string]int
	conflicts []conflict
	shared    int
	finalized bool
	logger    openapi.Logger
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used for registration and conflict messages.
func WithLogger(l openapi.Logger) Option {
	return func(c *Collection) {
		c.logger = l
	}
}

// New creates an empty collection.
func New(opts ...Option) *Collection {
	c := &Collection{byName: make(map[string]int)}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = openapi.LoggerOrNop(c.logger)
	return c
}

// Ref returns the reference string for a schema name.
// "~" and "/" are escaped as required by JSON pointers.
func Ref(name string) string {
	return RefPrefix + strings.NewReplacer("~", "~0", "/", "~1").Replace(name)
}

// Len returns the number of reserved entries.
func (c *Collection) Len() int { return len(c.entries) }

// Share hands out a new shared reference to the collection.
func (c *Collection) Share() *Handle {
	c.shared++
	return &Handle{c: c}
}

// Finalize returns the defined schemas keyed by name.
//
// It fails while any handle is still shared, when two definition sites
// claimed one name, when a reserved schema was never defined, and when
// called a second time.
func (c *Collection) Finalize() (map[string]*openapi.Schema, error) {
	if c.finalized {
		return nil, &oaserrors.RegistryError{Kind: oaserrors.RegistryFinalized}
	}
	if c.shared > 0 {
		return nil, &oaserrors.RegistryError{Kind: oaserrors.RegistryStillShared, Outstanding: c.shared}
	}
	if len(c.conflicts) > 0 {
		cf := c.conflicts[0]
		return nil, &oaserrors.RegistryError{
			Kind:      oaserrors.RegistryConflict,
			Name:      cf.name,
			Site:      cf.first.String(),
			OtherSite: cf.other.String(),
		}
	}
	out := make(map[string]*openapi.Schema, len(c.entries))
	for _, e := range c.entries {
		if !e.defined {
			return nil, &oaserrors.RegistryError{
				Kind: oaserrors.RegistryPending,
				Name: e.id.Name(),
				Site: e.id.Site().String(),
			}
		}
		out[e.id.Name()] = e.schema
	}
	c.finalized = true
	c.logger.Debug("schema registry finalized", "schemas", len(out))
	return out, nil
}

// Handle is a shared reference to a Collection held by a renderer.
type Handle struct {
	c        *Collection
	released bool
}

// Release gives the reference back. Releasing twice is a no-op.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.c.shared--
}

// Share hands out another reference to the same collection.
func (h *Handle) Share() *Handle {
	return h.c.Share()
}

// GetOrCreate returns the reference for id, reserving an entry on the first
// encounter. fresh is true only then, and the caller must Define the schema.
//
// A known name with a different definition site is recorded as a conflict,
// reported by Finalize, and resolves to the existing entry.
func (h *Handle) GetOrCreate(id schema.SchemaID) (ref *openapi.Schema, fresh bool) {
	h.check()
	c := h.c
	name := id.Name()
	if i, ok := c.byName[name]; ok {
		if existing := c.entries[i].id; existing != id {
			c.conflicts = append(c.conflicts, conflict{name: name, first: existing.Site(), other: id.Site()})
			c.logger.Warn("conflicting schema definitions",
				"name", name, "site", existing.Site().String(), "other", id.Site().String())
		}
		return openapi.RefTo(Ref(name)), false
	}
	c.byName[name] = len(c.entries)
	c.entries = append(c.entries, entry{id: id})
	c.logger.Debug("schema reserved", "name", name, "site", id.Site().String())
	return openapi.RefTo(Ref(name)), true
}

// Define stores the schema for an id reserved by GetOrCreate.
func (h *Handle) Define(id schema.SchemaID, s *openapi.Schema) error {
	h.check()
	c := h.c
	i, ok := c.byName[id.Name()]
	if !ok || c.entries[i].id != id {
		return &oaserrors.RegistryError{Kind: oaserrors.RegistryPending, Name: id.Name(), Site: id.Site().String()}
	}
	if c.entries[i].defined {
		return &oaserrors.RegistryError{
			Kind:      oaserrors.RegistryConflict,
			Name:      id.Name(),
			Site:      id.Site().String(),
			OtherSite: id.Site().String(),
		}
	}
	c.entries[i].schema = s
	c.entries[i].defined = true
	c.logger.Debug("schema registered", "name", id.Name())
	return nil
}

// Lookup returns the defined schema for name.
func (h *Handle) Lookup(name string) (*openapi.Schema, bool) {
	i, ok := h.c.byName[name]
	if !ok || !h.c.entries[i].defined {
		return nil, false
	}
	return h.c.entries[i].schema, true
}

// Resolve follows a component reference to its defined schema.
func (h *Handle) Resolve(s *openapi.Schema) (*openapi.Schema, bool) {
	if !s.IsRef() || !strings.HasPrefix(s.Ref, RefPrefix) {
		return s, s != nil
	}
	name := strings.NewReplacer("~1", "/", "~0", "~").Replace(strings.TrimPrefix(s.Ref, RefPrefix))
	return h.Lookup(name)
}

func (h *Handle) check() {
	if h.released {
		panic("registry handle used after release")
	}
	if h.c.finalized {
		panic("registry used after finalization")
	}
}
