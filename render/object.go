package render

import (
	"slices"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// object builds records and maps. It implements both schema.StructBuilder
// and schema.MapBuilder so that flattened members land in the same object.
type object struct {
	schema.Guard
	r   *Renderer
	out *openapi.Schema
	// kind is "field" for records and "key" for maps.
	kind string
	// reserved names a property that members must not use, such as the
	// tag of an internally tagged union. variant names the union variant.
	reserved, variant string
	keys              map[string]struct{}
	done              func(*openapi.Schema) error
}

// field is a member rendered through an optional-tracking session.
type field struct {
	schema   *openapi.Schema
	optional bool
}

func (r *Renderer) newObject(kind, description string, deprecated bool, examples []any, done func(*openapi.Schema) error) *object {
	return &object{
		r:    r,
		kind: kind,
		out: &openapi.Schema{
			Types:       []string{"object"},
			Description: description,
			Deprecated:  deprecated,
			Examples:    examples,
		},
		keys: make(map[string]struct{}),
		done: done,
	}
}

func (o *object) claim(key string) error {
	if o.reserved != "" && key == o.reserved {
		return &oaserrors.TagConflictError{Tag: o.reserved, Variant: o.variant, Field: key}
	}
	if _, dup := o.keys[key]; dup {
		return &oaserrors.ConflictError{Kind: o.kind, Key: key}
	}
	o.keys[key] = struct{}{}
	return nil
}

// member renders s with field metadata applied. optional reports whether the
// outermost shape of s was an option.
func (o *object) member(opts schema.FieldOptions, s schema.Schema) (field, error) {
	f := schema.PostProcess(schema.Optionalize(o.r.Factory()), func(res schema.Optional[*openapi.Schema]) (field, error) {
		out, err := o.r.withFieldOptions(res.Value, opts)
		return field{schema: out, optional: res.IsOptional}, err
	})
	return schema.Describe(f, s)
}

func (r *Renderer) withFieldOptions(s *openapi.Schema, opts schema.FieldOptions) (*openapi.Schema, error) {
	var def any
	if opts.Default != nil {
		n, err := openapi.Normalize(opts.Default)
		if err != nil {
			return nil, err
		}
		def = n
	}
	readOnly := opts.Mod == schema.ReadOnly
	writeOnly := opts.Mod == schema.WriteOnly
	if opts.Description == "" && !opts.Deprecated && def == nil && !readOnly && !writeOnly {
		return s, nil
	}
	var out *openapi.Schema
	if s.IsRef() {
		out = &openapi.Schema{AllOf: []*openapi.Schema{s}}
	} else {
		out = s.Clone()
	}
	if opts.Description != "" {
		out.Description = opts.Description
	}
	out.Deprecated = out.Deprecated || opts.Deprecated
	if def != nil {
		out.Default = def
	}
	out.ReadOnly = out.ReadOnly || readOnly
	out.WriteOnly = out.WriteOnly || writeOnly
	return out, nil
}

func (o *object) property(key string, opts schema.FieldOptions, s schema.Schema, optional bool) error {
	o.Check()
	if err := o.claim(key); err != nil {
		return err
	}
	f, err := o.member(opts, s)
	if err != nil {
		return err
	}
	if o.out.Properties == nil {
		o.out.Properties = make(map[string]*openapi.Schema)
	}
	o.out.Properties[key] = f.schema
	if !optional && !f.optional {
		o.out.Required = append(o.out.Required, key)
	}
	return nil
}

func (o *object) DescribeField(key string, opts schema.FieldOptions, s schema.Schema) error {
	return o.property(key, opts, s, false)
}

func (o *object) DescribeOptionalField(key string, opts schema.FieldOptions, s schema.Schema) error {
	return o.property(key, opts, s, true)
}

func (o *object) DescribeElement(key string, opts schema.FieldOptions, s schema.Schema) error {
	return o.property(key, opts, s, false)
}

func (o *object) DescribeOptionalElement(key string, opts schema.FieldOptions, s schema.Schema) error {
	return o.property(key, opts, s, true)
}

func (o *object) SkipField(string) error {
	o.Check()
	return nil
}

func (o *object) SkipElement(string) error {
	o.Check()
	return nil
}

func (o *object) FlattenField(s schema.Schema) error {
	o.Check()
	return s.DescribeSchema(schema.Flatten(o))
}

func (o *object) FlattenElement(s schema.Schema) error {
	return o.FlattenField(s)
}

// DescribeAdditionalElements admits keys by pattern. Keys without a pattern
// go to additionalProperties, which can only be declared once.
func (o *object) DescribeAdditionalElements(key, value schema.Schema, opts schema.FieldOptions) error {
	o.Check()
	pattern, err := KeyPattern(key)
	if err != nil {
		return err
	}
	f, err := o.member(opts, value)
	if err != nil {
		return err
	}
	if pattern == "" {
		if o.out.AdditionalProperties != nil {
			return &oaserrors.ConflictError{Kind: "additional elements", Message: "additional elements declared twice"}
		}
		o.out.AdditionalProperties = f.schema
		return nil
	}
	if _, dup := o.out.PatternProperties[pattern]; dup {
		return &oaserrors.ConflictError{Kind: "key pattern", Key: pattern}
	}
	if o.out.PatternProperties == nil {
		o.out.PatternProperties = make(map[string]*openapi.Schema)
	}
	o.out.PatternProperties[pattern] = f.schema
	return nil
}

func (o *object) End() error {
	o.Finish()
	slices.Sort(o.out.Required)
	return o.done(o.out)
}

func (s *session) DescribeStruct(id schema.SchemaID, opts schema.StructOptions) (schema.StructBuilder, error) {
	s.Finish()
	ref, fresh, named := s.r.named(id)
	if named && !fresh {
		return schema.Nop(ref)(s.sink).DescribeStruct(id, opts)
	}
	if err := s.r.enter(id); err != nil {
		return schema.Impossible{}, err
	}
	return s.r.newObject("field", opts.Description, opts.Deprecated, s.r.examples(opts.Examples), s.finisher(id, ref, named)), nil
}

func (s *session) DescribeMap(id schema.SchemaID, opts schema.MapOptions) (schema.MapBuilder, error) {
	s.Finish()
	ref, fresh, named := s.r.named(id)
	if named && !fresh {
		return schema.Nop(ref)(s.sink).DescribeMap(id, opts)
	}
	if err := s.r.enter(id); err != nil {
		return schema.Impossible{}, err
	}
	return s.r.newObject("key", opts.Description, opts.Deprecated, s.r.examples(opts.Examples), s.finisher(id, ref, named)), nil
}

// finisher delivers a finished shape. Named shapes are defined in the
// registry and answered with their reference.
func (s *session) finisher(id schema.SchemaID, ref *openapi.Schema, named bool) func(*openapi.Schema) error {
	return func(out *openapi.Schema) error {
		if !named {
			s.r.leave(id)
			return s.deliver(out)
		}
		answer, err := s.r.define(id, ref, out)
		if err != nil {
			return err
		}
		return s.deliver(answer)
	}
}
