package openapi

import (
	"strings"
)

// Paths holds the relative paths to the individual endpoints.
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
// Each method has exactly one slot.
type PathItem struct {
	Summary     string
	Description string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []*Parameter
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []*Parameter
	RequestBody  *RequestBody
	Responses    Responses
	Deprecated   bool
	Security     []SecurityRequirement
	Servers      []*Server
}

// ParameterLocation is the `in` value of a parameter.
type ParameterLocation string

const (
	// InQuery is a query string parameter
	InQuery ParameterLocation = "query"
	// InHeader is a request header parameter
	InHeader ParameterLocation = "header"
	// InPath is a templated path segment
	InPath ParameterLocation = "path"
	// InCookie is a cookie parameter
	InCookie ParameterLocation = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string
	In          ParameterLocation
	Description string
	Required    bool
	Deprecated  bool
	Style       string
	Explode     *bool
	Schema      *Schema
	Example     any
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description string
	Content     map[string]*MediaType
	Required    bool
}

// Responses maps status codes (or "default") to responses.
type Responses map[string]*Response

// Response describes a single response from an API operation.
type Response struct {
	Description string
	Headers     map[string]*Header
	Content     map[string]*MediaType
}

// Header follows the structure of a Parameter without name and location.
type Header struct {
	Description string
	Required    bool
	Deprecated  bool
	Schema      *Schema
}

// MediaType provides schema and example for one content type.
type MediaType struct {
	Schema  *Schema
	Example any
}

// Slot returns the operation slot for method, matched case-insensitively.
// ok is false for methods that have no slot.
func (p *PathItem) Slot(method string) (slot **Operation, ok bool) {
	switch strings.ToLower(method) {
	case "get":
		return &p.Get, true
	case "put":
		return &p.Put, true
	case "post":
		return &p.Post, true
	case "delete":
		return &p.Delete, true
	case "options":
		return &p.Options, true
	case "head":
		return &p.Head, true
	case "patch":
		return &p.Patch, true
	case "trace":
		return &p.Trace, true
	default:
		return nil, false
	}
}

// Operations returns the non-nil operations keyed by lowercase method.
func (p *PathItem) Operations() map[string]*Operation {
	out := make(map[string]*Operation)
	for method, op := range map[string]*Operation{
		"get": p.Get, "put": p.Put, "post": p.Post, "delete": p.Delete,
		"options": p.Options, "head": p.Head, "patch": p.Patch, "trace": p.Trace,
	} {
		if op != nil {
			out[method] = op
		}
	}
	return out
}

func (p Paths) toMap(v Version) map[string]any {
	m := make(map[string]any, len(p))
	for path, item := range p {
		m[path] = item.toMap(v)
	}
	return m
}

func (p *PathItem) toMap(v Version) map[string]any {
	m := make(map[string]any)
	if p.Summary != "" {
		m["summary"] = p.Summary
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	for method, op := range p.Operations() {
		m[method] = op.toMap(v)
	}
	if len(p.Servers) > 0 {
		m["servers"] = p.Servers
	}
	if len(p.Parameters) > 0 {
		m["parameters"] = parameterList(p.Parameters, v)
	}
	return m
}

func (o *Operation) toMap(v Version) map[string]any {
	m := map[string]any{
		"responses": o.Responses.toMap(v),
	}
	if len(o.Tags) > 0 {
		m["tags"] = o.Tags
	}
	if o.Summary != "" {
		m["summary"] = o.Summary
	}
	if o.Description != "" {
		m["description"] = o.Description
	}
	if o.ExternalDocs != nil {
		m["externalDocs"] = o.ExternalDocs
	}
	if o.OperationID != "" {
		m["operationId"] = o.OperationID
	}
	if len(o.Parameters) > 0 {
		m["parameters"] = parameterList(o.Parameters, v)
	}
	if o.RequestBody != nil {
		m["requestBody"] = o.RequestBody.toMap(v)
	}
	if o.Deprecated {
		m["deprecated"] = true
	}
	if o.Security != nil {
		m["security"] = o.Security
	}
	if len(o.Servers) > 0 {
		m["servers"] = o.Servers
	}
	return m
}

func parameterList(params []*Parameter, v Version) []any {
	out := make([]any, 0, len(params))
	for _, p := range params {
		out = append(out, p.toMap(v))
	}
	return out
}

func (p *Parameter) toMap(v Version) map[string]any {
	m := map[string]any{
		"name": p.Name,
		"in":   string(p.In),
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Required {
		m["required"] = true
	}
	if p.Deprecated {
		m["deprecated"] = true
	}
	if p.Style != "" {
		m["style"] = p.Style
	}
	if p.Explode != nil {
		m["explode"] = *p.Explode
	}
	if p.Schema != nil {
		m["schema"] = p.Schema.ToMap(v)
	}
	if p.Example != nil {
		m["example"] = p.Example
	}
	return m
}

func (r *RequestBody) toMap(v Version) map[string]any {
	m := map[string]any{
		"content": contentMap(r.Content, v),
	}
	if r.Description != "" {
		m["description"] = r.Description
	}
	if r.Required {
		m["required"] = true
	}
	return m
}

func (r Responses) toMap(v Version) map[string]any {
	m := make(map[string]any, len(r))
	for code, resp := range r {
		m[code] = resp.toMap(v)
	}
	return m
}

func (r *Response) toMap(v Version) map[string]any {
	// description is required, even when empty.
	m := map[string]any{
		"description": r.Description,
	}
	if len(r.Headers) > 0 {
		headers := make(map[string]any, len(r.Headers))
		for name, h := range r.Headers {
			headers[name] = h.toMap(v)
		}
		m["headers"] = headers
	}
	if len(r.Content) > 0 {
		m["content"] = contentMap(r.Content, v)
	}
	return m
}

func (h *Header) toMap(v Version) map[string]any {
	m := make(map[string]any)
	if h.Description != "" {
		m["description"] = h.Description
	}
	if h.Required {
		m["required"] = true
	}
	if h.Deprecated {
		m["deprecated"] = true
	}
	if h.Schema != nil {
		m["schema"] = h.Schema.ToMap(v)
	}
	return m
}

func contentMap(content map[string]*MediaType, v Version) map[string]any {
	m := make(map[string]any, len(content))
	for ct, mt := range content {
		entry := make(map[string]any)
		if mt.Schema != nil {
			entry["schema"] = mt.Schema.ToMap(v)
		}
		if mt.Example != nil {
			entry["example"] = mt.Example
		}
		m[ct] = entry
	}
	return m
}
