package render

import (
	"iter"
	"slices"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/registry"
	"github.com/1ean267/nexustack-sub001/schema"
)

// Renderer turns schema descriptions into *openapi.Schema values.
//
// Without a registry every shape is rendered inline and ids are ignored.
// With a registry named shapes are defined once and referenced by "$ref".
type Renderer struct {
	handle *registry.Handle
	logger openapi.Logger
	// open lists the named shapes being rendered inline, outermost first.
	open []schema.SchemaID
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRegistry renders named shapes into the registry behind h.
func WithRegistry(h *registry.Handle) Option {
	return func(r *Renderer) {
		r.handle = h
	}
}

// WithLogger sets the logger.
func WithLogger(l openapi.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = openapi.LoggerOrNop(r.logger)
	return r
}

// Inline renders s without a registry.
func Inline(s schema.Schema) (*openapi.Schema, error) {
	return New().Render(s)
}

// Factory returns the session factory of r.
func (r *Renderer) Factory() schema.Factory[*openapi.Schema] {
	return func(sink schema.Sink[*openapi.Schema]) schema.Builder {
		return &session{r: r, sink: sink}
	}
}

// Render describes s against a new session and returns the rendered schema.
//
// Without a registry a type that contains itself cannot be written out and
// fails with an *oaserrors.ShapeError instead of recursing forever.
func (r *Renderer) Render(s schema.Schema) (*openapi.Schema, error) {
	out, err := schema.Describe(r.Factory(), s)
	if err != nil {
		// Shapes abandoned by the failure never finish.
		r.open = r.open[:0]
	}
	return out, err
}

// Registered reports whether r renders into a registry.
func (r *Renderer) Registered() bool { return r.handle != nil }

// examples collects and normalizes a sequence. Values that cannot be
// encoded are skipped.
func (r *Renderer) examples(seq iter.Seq[any]) []any {
	if seq == nil {
		return nil
	}
	var out []any
	for v := range seq {
		n, err := openapi.Normalize(v)
		if err != nil {
			r.logger.Debug("skipping example", "error", err)
			continue
		}
		out = append(out, n)
	}
	return out
}

// named reserves id in the registry. ok is false for anonymous ids and in
// inline mode; fresh is false when the id was seen before.
func (r *Renderer) named(id schema.SchemaID) (ref *openapi.Schema, fresh, ok bool) {
	if r.handle == nil || id.IsZero() {
		return nil, false, false
	}
	ref, fresh = r.handle.GetOrCreate(id)
	return ref, fresh, true
}

// enter marks the inline rendering of id as started. Meeting an open id
// again means the shape contains itself.
func (r *Renderer) enter(id schema.SchemaID) error {
	if r.handle != nil || id.IsZero() {
		return nil
	}
	if slices.Contains(r.open, id) {
		return &oaserrors.ShapeError{
			Adapter: "inline",
			Message: "recursive type needs a schema registry",
			Got:     id.String(),
		}
	}
	r.open = append(r.open, id)
	return nil
}

// leave marks the inline rendering of id as finished.
func (r *Renderer) leave(id schema.SchemaID) {
	if i := slices.Index(r.open, id); i >= 0 {
		r.open = r.open[:i]
	}
}

// define stores s under id and returns the reference to deliver instead.
func (r *Renderer) define(id schema.SchemaID, ref, s *openapi.Schema) (*openapi.Schema, error) {
	if err := r.handle.Define(id, s); err != nil {
		return nil, err
	}
	return ref, nil
}

// resolve follows a reference into the registry.
func (r *Renderer) resolve(s *openapi.Schema) (*openapi.Schema, bool) {
	if !s.IsRef() {
		return s, true
	}
	if r.handle == nil {
		return nil, false
	}
	return r.handle.Resolve(s)
}

// annotate applies a description and deprecation to s. References cannot
// carry siblings in 3.0, so they are wrapped in a single element allOf.
func annotate(s *openapi.Schema, description string, deprecated bool) *openapi.Schema {
	if description == "" && !deprecated {
		return s
	}
	if s.IsRef() {
		return &openapi.Schema{AllOf: []*openapi.Schema{s}, Description: description, Deprecated: deprecated}
	}
	out := s.Clone()
	if description != "" {
		out.Description = description
	}
	out.Deprecated = out.Deprecated || deprecated
	return out
}
