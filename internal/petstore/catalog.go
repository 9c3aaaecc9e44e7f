package petstore

import (
	"sort"
	"strings"

	"github.com/1ean267/nexustack-sub001/internal/naming"
	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/registry"
	"github.com/1ean267/nexustack-sub001/render"
	"github.com/1ean267/nexustack-sub001/schema"
)

// Catalog is the pet store API: its named types and its operations. Field
// and variant names are converted with the catalog's rename rule.
type Catalog struct {
	rule  naming.RenameRule
	types map[string]entry
}

type entry struct {
	description string
	recursive   bool
	schema      func() schema.Schema
}

// TypeInfo describes one named type of the catalog.
type TypeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Recursive types can only be rendered with a registry.
	Recursive bool `json:"recursive,omitempty"`
}

// New returns the catalog with names converted by rule.
func New(rule naming.RenameRule) *Catalog {
	c := &Catalog{rule: rule}
	c.types = map[string]entry{
		petID.Name():       {description: "A pet in the store", schema: c.pet},
		newPetID.Name():    {description: "A pet that has not been stored yet", schema: c.newPet},
		ownerID.Name():     {description: "The person responsible for a pet", schema: c.owner},
		kindID.Name():      {description: "The species of a pet (unit variants)", schema: c.petKind},
		eventID.Name():     {description: "Internally tagged union", schema: c.petEvent},
		paymentID.Name():   {description: "Adjacently tagged, non-exhaustive union", schema: c.payment},
		contactID.Name():   {description: "Untagged union", schema: c.contactMethod},
		locationID.Name():  {description: "Named tuple", schema: c.location},
		pageID.Name():      {description: "Record with a flattened record", schema: c.petPage},
		problemID.Name():   {description: "Error response body", schema: c.problem},
		petRefID.Name():    {description: "Recursive record", schema: c.petRef, recursive: true},
		catalogueID.Name(): {description: "Map keyed by pet kind", schema: c.inventory},
	}
	return c
}

// Rule returns the rename rule of the catalog.
func (c *Catalog) Rule() naming.RenameRule { return c.rule }

// Types lists the named types sorted by name.
func (c *Catalog) Types() []TypeInfo {
	out := make([]TypeInfo, 0, len(c.types))
	for name, e := range c.types {
		out = append(out, TypeInfo{Name: name, Description: e.description, Recursive: e.recursive})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the description of the named type.
func (c *Catalog) Lookup(name string) (schema.Schema, bool) {
	e, ok := c.types[name]
	if !ok {
		return nil, false
	}
	return e.schema(), true
}

// RenderOptions control RenderType.
type RenderOptions struct {
	// Inline renders every shape in place instead of collecting components.
	Inline bool
	Logger openapi.Logger
}

// Rendered is a standalone schema together with the components it refers to.
type Rendered struct {
	Schema     *openapi.Schema
	Components map[string]*openapi.Schema
}

// ToMap serializes r for version v.
func (r *Rendered) ToMap(v openapi.Version) map[string]any {
	out := map[string]any{"schema": r.Schema.ToMap(v)}
	if len(r.Components) > 0 {
		components := make(map[string]any, len(r.Components))
		for name, s := range r.Components {
			components[name] = s.ToMap(v)
		}
		out["components"] = components
	}
	return out
}

// RenderType renders the named type on its own, with a private registry.
func (c *Catalog) RenderType(name string, opts RenderOptions) (*Rendered, error) {
	e, ok := c.types[name]
	if !ok {
		return nil, &oaserrors.ConfigError{Option: "type", Value: name, Message: "unknown type, expected one of " + joinNames(c.Types())}
	}
	logger := openapi.LoggerOrNop(opts.Logger)
	if opts.Inline {
		s, err := render.New(render.WithLogger(logger)).Render(e.schema())
		if err != nil {
			return nil, err
		}
		return &Rendered{Schema: s}, nil
	}

	collection := registry.New(registry.WithLogger(logger))
	h := collection.Share()
	s, err := render.New(render.WithRegistry(h), render.WithLogger(logger)).Render(e.schema())
	h.Release()
	if err != nil {
		return nil, err
	}
	components, err := collection.Finalize()
	if err != nil {
		return nil, err
	}
	return &Rendered{Schema: s, Components: components}, nil
}

func joinNames(types []TypeInfo) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
