package builder

import (
	"github.com/1ean267/nexustack-sub001/internal/httputil"
	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// ResponseBuilder collects the responses of an operation, one per status.
type ResponseBuilder interface {
	DescribeResponse(status string, opts ResponseOptions) (ContentTypeBuilder, error)
	// DescribeEmptyResponse describes a response without content.
	DescribeEmptyResponse(status string, opts ResponseOptions) error
	End() error
}

// ContentTypeBuilder collects the media types of a request body or response.
type ContentTypeBuilder interface {
	DescribeContentType(mediaType string, opts ContentOptions, s schema.Schema) error
	End() error
}

// ResponseOptions holds the metadata of a response.
type ResponseOptions struct {
	// Description defaults to the empty string.
	Description string
}

// ContentOptions holds the metadata of one media type.
type ContentOptions struct {
	Example any
}

type responses struct {
	schema.Guard
	b     *Builder
	scope string
	out   openapi.Responses
	done  func(openapi.Responses) error
}

func newResponses(b *Builder, scope string, done func(openapi.Responses) error) *responses {
	return &responses{b: b, scope: scope, out: make(openapi.Responses), done: done}
}

func (r *responses) DescribeResponse(status string, opts ResponseOptions) (ContentTypeBuilder, error) {
	r.Check()
	if !httputil.ValidateStatusCode(status) {
		return nil, &oaserrors.ShapeError{Adapter: "response", Message: "invalid status code", Got: status}
	}
	if _, dup := r.out[status]; dup {
		return nil, &oaserrors.ConflictError{Kind: "status code", Key: status, Scope: r.scope}
	}
	if httputil.IsNumericStatusCode(status) && !httputil.IsStandardStatusCode(status) {
		r.b.logger.Debug("non-standard status code", "status", status, "operation", r.scope)
	}
	resp := &openapi.Response{Description: opts.Description}
	r.out[status] = resp
	return newContentTypes(r.b, status+" response of "+r.scope, func(content map[string]*openapi.MediaType, _ bool) error {
		if len(content) > 0 {
			resp.Content = content
		}
		return nil
	}), nil
}

func (r *responses) DescribeEmptyResponse(status string, opts ResponseOptions) error {
	c, err := r.DescribeResponse(status, opts)
	if err != nil {
		return err
	}
	return c.End()
}

func (r *responses) End() error {
	r.Finish()
	return r.done(r.out)
}

// contentTypes is the ContentTypeBuilder of a request body or response.
// required records whether any described content is not an option type.
type contentTypes struct {
	schema.Guard
	b        *Builder
	scope    string
	content  map[string]*openapi.MediaType
	required bool
	done     func(content map[string]*openapi.MediaType, required bool) error
}

func newContentTypes(b *Builder, scope string, done func(map[string]*openapi.MediaType, bool) error) *contentTypes {
	return &contentTypes{b: b, scope: scope, content: make(map[string]*openapi.MediaType), done: done}
}

func (c *contentTypes) DescribeContentType(mediaType string, opts ContentOptions, s schema.Schema) error {
	c.Check()
	if !httputil.IsValidMediaType(mediaType) {
		return &oaserrors.ShapeError{Adapter: "content type", Message: "invalid media type", Got: mediaType}
	}
	if _, dup := c.content[mediaType]; dup {
		return &oaserrors.ConflictError{Kind: "content type", Key: mediaType, Scope: c.scope}
	}
	example, err := c.b.example(opts.Example)
	if err != nil {
		return err
	}
	r, err := schema.Describe(schema.Optionalize(c.b.renderer.Factory()), s)
	if err != nil {
		return err
	}
	if !r.IsOptional {
		c.required = true
	}
	c.content[mediaType] = &openapi.MediaType{Schema: r.Value, Example: example}
	return nil
}

func (c *contentTypes) End() error {
	c.Finish()
	return c.done(c.content, c.required)
}
