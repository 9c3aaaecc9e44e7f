package render

import (
	"fmt"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// DescribeOption renders inner as nullable. The outermost description and
// examples win over those of inner.
func (s *session) DescribeOption(opts schema.OptionOptions, inner schema.Schema) error {
	s.Finish()
	res, err := s.r.Render(inner)
	if err != nil {
		return err
	}
	out := nullable(res)
	if opts.Description != "" {
		out.Description = opts.Description
	}
	out.Deprecated = out.Deprecated || opts.Deprecated
	if ex := s.r.examples(opts.Examples); len(ex) > 0 {
		out.Examples = ex
	}
	return s.deliver(out)
}

// nullable returns a copy of s that also admits null. Typed schemas get the
// nullable flag; references and untyped compositions become a oneOf with the
// null schema.
func nullable(s *openapi.Schema) *openapi.Schema {
	switch {
	case s.IsRef():
		return &openapi.Schema{OneOf: []*openapi.Schema{s, openapi.NullSchema()}}
	case len(s.Types) > 0:
		out := s.Clone()
		out.Nullable = true
		return out
	case len(s.OneOf) > 0 && len(s.AnyOf) == 0 && len(s.AllOf) == 0:
		out := s.Clone()
		out.OneOf = append(out.OneOf, openapi.NullSchema())
		return out
	case len(s.AnyOf) > 0 && len(s.OneOf) == 0 && len(s.AllOf) == 0:
		out := s.Clone()
		out.AnyOf = append(out.AnyOf, openapi.NullSchema())
		return out
	default:
		return &openapi.Schema{OneOf: []*openapi.Schema{s, openapi.NullSchema()}}
	}
}

func (s *session) DescribeNewtypeStruct(id schema.SchemaID, opts schema.NewtypeOptions, inner schema.Schema) error {
	s.Finish()
	ref, fresh, named := s.r.named(id)
	if named && !fresh {
		return s.deliver(ref)
	}
	if err := s.r.enter(id); err != nil {
		return err
	}
	res, err := s.r.Render(inner)
	if err != nil {
		return err
	}
	out := annotate(res, opts.Description, opts.Deprecated)
	if ex := s.r.examples(opts.Examples); len(ex) > 0 {
		if out == res {
			if out.IsRef() {
				out = &openapi.Schema{AllOf: []*openapi.Schema{res}}
			} else {
				out = res.Clone()
			}
		}
		out.Examples = ex
	}
	return s.finisher(id, ref, named)(out)
}

func (s *session) DescribeSeq(opts schema.SeqOptions, element schema.Schema) error {
	s.Finish()
	items, err := s.r.Render(element)
	if err != nil {
		return err
	}
	return s.deliver(&openapi.Schema{
		Types:       []string{"array"},
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		Items:       items,
		MinItems:    opts.MinItems,
		MaxItems:    opts.MaxItems,
		UniqueItems: opts.Unique,
		Examples:    s.r.examples(opts.Examples),
	})
}

func (s *session) DescribeTuple(opts schema.TupleOptions) (schema.TupleBuilder, error) {
	s.Finish()
	return s.r.newTuple(opts, s.deliver), nil
}

func (s *session) DescribeTupleStruct(id schema.SchemaID, opts schema.TupleOptions) (schema.TupleBuilder, error) {
	s.Finish()
	ref, fresh, named := s.r.named(id)
	if named && !fresh {
		return schema.Nop(ref)(s.sink).DescribeTupleStruct(id, opts)
	}
	if err := s.r.enter(id); err != nil {
		return schema.ImpossibleTuple{}, err
	}
	return s.r.newTuple(opts, s.finisher(id, ref, named)), nil
}

// tuple builds a fixed length array from positional elements.
type tuple struct {
	schema.Guard
	r     *Renderer
	want  int
	out   *openapi.Schema
	items []*openapi.Schema
	done  func(*openapi.Schema) error
}

func (r *Renderer) newTuple(opts schema.TupleOptions, done func(*openapi.Schema) error) *tuple {
	return &tuple{
		r:    r,
		want: opts.Len,
		out: &openapi.Schema{
			Types:       []string{"array"},
			Description: opts.Description,
			Deprecated:  opts.Deprecated,
			Examples:    r.examples(opts.Examples),
		},
		done: done,
	}
}

func (t *tuple) DescribeElement(s schema.Schema, opts schema.ElementOptions) error {
	t.Check()
	res, err := t.r.Render(s)
	if err != nil {
		return err
	}
	t.items = append(t.items, annotate(res, opts.Description, opts.Deprecated))
	return nil
}

func (t *tuple) End() error {
	t.Finish()
	if len(t.items) != t.want {
		return &oaserrors.ShapeError{
			Message: fmt.Sprintf("tuple declared %d elements but described %d", t.want, len(t.items)),
		}
	}
	t.out.PrefixItems = t.items
	t.out.MinItems = openapi.Ptr(len(t.items))
	t.out.MaxItems = openapi.Ptr(len(t.items))
	return t.done(t.out)
}

func (s *session) DescribeNot(opts schema.NotOptions, inner schema.Schema) error {
	s.Finish()
	res, err := s.r.Render(inner)
	if err != nil {
		return err
	}
	return s.deliver(&openapi.Schema{
		Not:         res,
		Description: opts.Description,
		Deprecated:  opts.Deprecated,
		Examples:    s.r.examples(opts.Examples),
	})
}

func (s *session) DescribeCombinator(kind schema.Combinator, opts schema.CombinatorOptions) (schema.CombinatorBuilder, error) {
	s.Finish()
	switch kind {
	case schema.AllOf, schema.AnyOf, schema.OneOf:
	default:
		return schema.Impossible{}, &oaserrors.ShapeError{Message: "unknown combinator", Got: kind.String()}
	}
	return &combinator{
		r:    s.r,
		kind: kind,
		want: opts.Len,
		out: &openapi.Schema{
			Description: opts.Description,
			Deprecated:  opts.Deprecated,
			Examples:    s.r.examples(opts.Examples),
		},
		done: s.deliver,
	}, nil
}

type combinator struct {
	schema.Guard
	r    *Renderer
	kind schema.Combinator
	want int
	out  *openapi.Schema
	subs []*openapi.Schema
	done func(*openapi.Schema) error
}

func (c *combinator) DescribeSubschema(s schema.Schema) error {
	c.Check()
	res, err := c.r.Render(s)
	if err != nil {
		return err
	}
	c.subs = append(c.subs, res)
	return nil
}

func (c *combinator) End() error {
	c.Finish()
	if len(c.subs) != c.want {
		return &oaserrors.ShapeError{
			Message: fmt.Sprintf("%s declared %d subschemas but described %d", c.kind, c.want, len(c.subs)),
		}
	}
	switch c.kind {
	case schema.AllOf:
		c.out.AllOf = c.subs
	case schema.AnyOf:
		c.out.AnyOf = c.subs
	default:
		c.out.OneOf = c.subs
	}
	return c.done(c.out)
}
