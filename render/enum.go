package render

import (
	"regexp"
	"slices"
	"strings"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// DescribeEnum renders a tagged union as an anyOf with one alternative per
// variant, shaped by the tagging convention.
func (s *session) DescribeEnum(id schema.SchemaID, opts schema.EnumOptions) (schema.EnumBuilder, error) {
	s.Finish()
	tag := opts.Tag
	if tag == nil {
		tag = schema.ExternallyTagged{}
	}
	if adj, ok := tag.(schema.AdjacentlyTagged); ok && adj.Tag == adj.Content {
		return schema.Impossible{}, &oaserrors.TagConflictError{Tag: adj.Tag, Content: adj.Content}
	}
	ref, fresh, named := s.r.named(id)
	if named && !fresh {
		return schema.Nop(ref)(s.sink).DescribeEnum(id, opts)
	}
	if err := s.r.enter(id); err != nil {
		return schema.Impossible{}, err
	}
	return &enum{
		r:    s.r,
		tag:  tag,
		open: opts.NonExhaustive,
		out: &openapi.Schema{
			Description: opts.Description,
			Deprecated:  opts.Deprecated,
			Examples:    s.r.examples(opts.Examples),
		},
		done: s.finisher(id, ref, named),
	}, nil
}

type enum struct {
	schema.Guard
	r            *Renderer
	tag          schema.VariantTag
	open         bool
	out          *openapi.Schema
	names        []string
	alternatives []*openapi.Schema
	done         func(*openapi.Schema) error
}

func (e *enum) add(name string, opts schema.VariantOptions, alt *openapi.Schema) {
	e.names = append(e.names, name)
	e.alternatives = append(e.alternatives, annotate(alt, opts.Description, opts.Deprecated))
}

func (e *enum) DescribeUnitVariant(_ int, name string, opts schema.VariantOptions) error {
	e.Check()
	var alt *openapi.Schema
	switch t := e.tag.(type) {
	case schema.InternallyTagged:
		alt = tagObject(t.Tag, name)
	case schema.AdjacentlyTagged:
		alt = tagObject(t.Tag, name)
	case schema.Untagged:
		alt = openapi.NullSchema()
	default:
		alt = nameSchema(name)
	}
	e.add(name, opts, alt)
	return nil
}

func (e *enum) DescribeNewtypeVariant(_ int, name string, opts schema.VariantOptions, s schema.Schema) error {
	e.Check()
	payload, err := e.r.Render(s)
	if err != nil {
		return err
	}
	alt, err := e.wrap(name, payload)
	if err != nil {
		return err
	}
	e.add(name, opts, alt)
	return nil
}

func (e *enum) DescribeTupleVariant(_ int, name string, opts schema.VariantOptions, length int) (schema.TupleBuilder, error) {
	e.Check()
	if _, ok := e.tag.(schema.InternallyTagged); ok {
		return schema.ImpossibleTuple{}, &oaserrors.ShapeError{
			Message: "internally tagged enum cannot contain tuple variants",
			Got:     name,
		}
	}
	return e.r.newTuple(schema.TupleOptions{Len: length}, func(payload *openapi.Schema) error {
		alt, err := e.wrap(name, payload)
		if err != nil {
			return err
		}
		e.add(name, opts, alt)
		return nil
	}), nil
}

func (e *enum) DescribeStructVariant(_ int, name string, opts schema.VariantOptions, _ int) (schema.StructBuilder, error) {
	e.Check()
	if t, ok := e.tag.(schema.InternallyTagged); ok {
		o := e.r.newObject("field", "", false, nil, func(payload *openapi.Schema) error {
			payload.Properties[t.Tag] = nameSchema(name)
			payload.Required = append(payload.Required, t.Tag)
			slices.Sort(payload.Required)
			e.add(name, opts, payload)
			return nil
		})
		o.reserved, o.variant = t.Tag, name
		o.out.Properties = make(map[string]*openapi.Schema)
		return o, nil
	}
	return e.r.newObject("field", "", false, nil, func(payload *openapi.Schema) error {
		alt, err := e.wrap(name, payload)
		if err != nil {
			return err
		}
		e.add(name, opts, alt)
		return nil
	}), nil
}

// wrap places a variant payload according to the tagging convention.
func (e *enum) wrap(name string, payload *openapi.Schema) (*openapi.Schema, error) {
	switch t := e.tag.(type) {
	case schema.InternallyTagged:
		return e.mergeTag(t.Tag, name, payload)
	case schema.AdjacentlyTagged:
		return &openapi.Schema{
			Types: []string{"object"},
			Properties: map[string]*openapi.Schema{
				t.Tag:     nameSchema(name),
				t.Content: payload,
			},
			Required: []string{t.Tag, t.Content},
		}, nil
	case schema.Untagged:
		return payload, nil
	default:
		return &openapi.Schema{
			Types:      []string{"object"},
			Properties: map[string]*openapi.Schema{name: payload},
			Required:   []string{name},
		}, nil
	}
}

// mergeTag adds the tag property to an object payload. Referenced payloads
// are combined with the tag object through allOf.
func (e *enum) mergeTag(tag, name string, payload *openapi.Schema) (*openapi.Schema, error) {
	notObject := &oaserrors.ShapeError{Message: "internally tagged enum must contain struct or map in newtype variant", Got: name}
	if payload.IsRef() {
		if def, ok := e.r.resolve(payload); ok {
			if !def.HasType("object") {
				return nil, notObject
			}
			if _, clash := def.Properties[tag]; clash {
				return nil, &oaserrors.TagConflictError{Tag: tag, Variant: name, Field: tag}
			}
		}
		return &openapi.Schema{AllOf: []*openapi.Schema{payload, tagObject(tag, name)}}, nil
	}
	if !payload.HasType("object") {
		return nil, notObject
	}
	if _, clash := payload.Properties[tag]; clash {
		return nil, &oaserrors.TagConflictError{Tag: tag, Variant: name, Field: tag}
	}
	out := payload.Clone()
	if out.Properties == nil {
		out.Properties = make(map[string]*openapi.Schema)
	}
	out.Properties[tag] = nameSchema(name)
	out.Required = append(out.Required, tag)
	slices.Sort(out.Required)
	return out, nil
}

func (e *enum) End() error {
	e.Finish()
	if e.open {
		if alt := e.catchAll(); alt != nil {
			e.alternatives = append(e.alternatives, alt)
		}
	}
	e.out.AnyOf = e.alternatives
	return e.done(e.out)
}

// catchAll admits every variant name not declared by the union. Untagged
// unions carry no name, so they get no catch-all.
func (e *enum) catchAll() *openapi.Schema {
	var b strings.Builder
	b.WriteString("^")
	for _, name := range e.names {
		b.WriteString("(?!" + regexp.QuoteMeta(name) + "$)")
	}
	b.WriteString(".*$")
	pattern := b.String()
	unknown := &openapi.Schema{Types: []string{"string"}, Pattern: pattern}

	switch t := e.tag.(type) {
	case schema.InternallyTagged:
		return &openapi.Schema{
			Types:      []string{"object"},
			Properties: map[string]*openapi.Schema{t.Tag: unknown},
			Required:   []string{t.Tag},
		}
	case schema.AdjacentlyTagged:
		return &openapi.Schema{
			Types: []string{"object"},
			Properties: map[string]*openapi.Schema{
				t.Tag:     unknown,
				t.Content: {},
			},
			Required: []string{t.Tag},
		}
	case schema.Untagged:
		return nil
	default:
		return &openapi.Schema{
			Types:             []string{"object"},
			PatternProperties: map[string]*openapi.Schema{pattern: {}},
		}
	}
}

// nameSchema accepts exactly the variant name.
func nameSchema(name string) *openapi.Schema {
	return &openapi.Schema{Types: []string{"string"}, Enum: []any{name}}
}

// tagObject is an object holding only the tag property.
func tagObject(tag, name string) *openapi.Schema {
	return &openapi.Schema{
		Types:      []string{"object"},
		Properties: map[string]*openapi.Schema{tag: nameSchema(name)},
		Required:   []string{tag},
	}
}
