package builder

import (
	"runtime"
	"strings"

	"github.com/1ean267/nexustack-sub001/internal/httputil"
	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// OperationID identifies an operation by name and definition site.
// The name becomes the operationId of the rendered operation.
type OperationID struct {
	name string
	site schema.Callsite
}

// NewOperationID returns the id for name defined at the caller's source line.
func NewOperationID(name string) OperationID {
	id := OperationID{name: name}
	if _, file, line, ok := runtime.Caller(1); ok {
		id.site = schema.Callsite{File: file, Line: line}
	}
	return id
}

// Name returns the operationId.
func (id OperationID) Name() string { return id.name }

// Site returns the definition site.
func (id OperationID) Site() schema.Callsite { return id.site }

// Operation describes one HTTP operation through an OperationBuilder.
type Operation interface {
	DescribeOperation(b OperationBuilder) error
}

// OperationFunc adapts a function to the Operation interface.
type OperationFunc func(b OperationBuilder) error

// DescribeOperation calls f(b).
func (f OperationFunc) DescribeOperation(b OperationBuilder) error { return f(b) }

// OperationBuilder collects the request side of an operation.
//
// Parameters, the request body and security requirements are described
// first. DescribeOperation then binds the operation to a method and path and
// returns the ResponseBuilder; the operation is added to the document when
// that builder ends.
type OperationBuilder interface {
	DescribeQueryParameter(name string, opts ParameterOptions, s schema.Schema) error
	DescribeHeaderParameter(name string, opts ParameterOptions, s schema.Schema) error
	DescribeCookieParameter(name string, opts ParameterOptions, s schema.Schema) error
	// DescribePathParameter describes a templated path segment. Path
	// parameters are always required.
	DescribePathParameter(name string, opts ParameterOptions, s schema.Schema) error
	DescribeRequestBody(opts RequestBodyOptions) (ContentTypeBuilder, error)
	DescribeSecurityRequirement() (SecurityRequirementBuilder, error)
	DescribeOperation(id OperationID, method, path string, opts OperationOptions) (ResponseBuilder, error)
}

// SecurityRequirementBuilder collects one group of security requirements.
// All schemes of a group apply together; separate groups are alternatives.
type SecurityRequirementBuilder interface {
	DescribeRequirement(name string, scopes ...string) error
	End() error
}

// ParameterOptions holds the metadata of a parameter.
type ParameterOptions struct {
	Description string
	Deprecated  bool
	// Required overrides the default, which is "not an option type".
	Required *bool
	Example  any
}

// RequestBodyOptions holds the metadata of a request body.
type RequestBodyOptions struct {
	Description string
	// Required overrides the default, which is "any content type is not an
	// option type".
	Required *bool
}

// OperationOptions holds the metadata of an operation.
type OperationOptions struct {
	Tags        []string
	Summary     string
	Description string
	Deprecated  bool
}

// operation is the OperationBuilder handed to one Operation.
type operation struct {
	schema.Guard
	b          *Builder
	parameters []*openapi.Parameter
	seen       map[string]struct{}
	body       *openapi.RequestBody
	security   []openapi.SecurityRequirement

	method   string
	path     string
	id       OperationID
	complete bool
}

func newOperation(b *Builder) *operation {
	return &operation{b: b, seen: make(map[string]struct{})}
}

func (o *operation) DescribeQueryParameter(name string, opts ParameterOptions, s schema.Schema) error {
	return o.parameter(openapi.InQuery, name, opts, s)
}

func (o *operation) DescribeHeaderParameter(name string, opts ParameterOptions, s schema.Schema) error {
	return o.parameter(openapi.InHeader, name, opts, s)
}

func (o *operation) DescribeCookieParameter(name string, opts ParameterOptions, s schema.Schema) error {
	return o.parameter(openapi.InCookie, name, opts, s)
}

func (o *operation) DescribePathParameter(name string, opts ParameterOptions, s schema.Schema) error {
	opts.Required = openapi.Ptr(true)
	return o.parameter(openapi.InPath, name, opts, s)
}

func (o *operation) parameter(in openapi.ParameterLocation, name string, opts ParameterOptions, s schema.Schema) error {
	o.Check()
	key := string(in) + ":" + name
	if _, dup := o.seen[key]; dup {
		return &oaserrors.ConflictError{Kind: string(in) + " parameter", Key: name}
	}
	o.seen[key] = struct{}{}

	example, err := o.b.example(opts.Example)
	if err != nil {
		return err
	}
	f := schema.PostProcess(schema.Optionalize(o.b.renderer.Factory()),
		func(r schema.Optional[*openapi.Schema]) (*openapi.Parameter, error) {
			required := !r.IsOptional
			if opts.Required != nil {
				required = *opts.Required
			}
			return &openapi.Parameter{
				Name:        name,
				In:          in,
				Description: opts.Description,
				Required:    required,
				Deprecated:  opts.Deprecated,
				Schema:      r.Value,
				Example:     example,
			}, nil
		})
	p, err := schema.Describe(f, s)
	if err != nil {
		return err
	}
	o.parameters = append(o.parameters, p)
	return nil
}

func (o *operation) DescribeRequestBody(opts RequestBodyOptions) (ContentTypeBuilder, error) {
	o.Check()
	if o.body != nil {
		return nil, &oaserrors.ConflictError{Kind: "request body", Message: "request body already described"}
	}
	return newContentTypes(o.b, "request body", func(content map[string]*openapi.MediaType, anyRequired bool) error {
		if len(content) == 0 {
			return &oaserrors.ShapeError{Adapter: "request body", Message: "request body must have content type"}
		}
		required := anyRequired
		if opts.Required != nil {
			required = *opts.Required
		}
		o.body = &openapi.RequestBody{
			Description: opts.Description,
			Content:     content,
			Required:    required,
		}
		return nil
	}), nil
}

func (o *operation) DescribeSecurityRequirement() (SecurityRequirementBuilder, error) {
	o.Check()
	return &securityGroup{
		req: make(openapi.SecurityRequirement),
		done: func(req openapi.SecurityRequirement) {
			o.security = append(o.security, req)
		},
	}, nil
}

func (o *operation) DescribeOperation(id OperationID, method, path string, opts OperationOptions) (ResponseBuilder, error) {
	o.Finish()
	normalized, ok := httputil.NormalizeMethod(method)
	if !ok {
		return nil, NewInvalidMethodError(method, path)
	}
	o.method, o.path, o.id = normalized, path, id
	scope := strings.ToUpper(normalized) + " " + path
	return newResponses(o.b, scope, func(responses openapi.Responses) error {
		op := &openapi.Operation{
			Tags:        opts.Tags,
			Summary:     opts.Summary,
			Description: opts.Description,
			OperationID: id.Name(),
			Parameters:  o.parameters,
			RequestBody: o.body,
			Responses:   responses,
			Deprecated:  opts.Deprecated,
			Security:    o.security,
		}
		if err := o.b.insert(normalized, path, id, op); err != nil {
			return err
		}
		o.complete = true
		return nil
	}), nil
}

// securityGroup is the SecurityRequirementBuilder of one operation.
type securityGroup struct {
	schema.Guard
	req  openapi.SecurityRequirement
	done func(openapi.SecurityRequirement)
}

func (g *securityGroup) DescribeRequirement(name string, scopes ...string) error {
	g.Check()
	if _, dup := g.req[name]; dup {
		return &oaserrors.ConflictError{Kind: "security requirement", Key: name}
	}
	if scopes == nil {
		scopes = []string{}
	}
	g.req[name] = scopes
	return nil
}

func (g *securityGroup) End() error {
	g.Finish()
	g.done(g.req)
	return nil
}
