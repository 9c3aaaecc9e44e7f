package openapi

// Document represents an OpenAPI 3.x document built from the superset model.
// Version selects the serialization dialect.
type Document struct {
	Version           Version
	Info              *Info
	JSONSchemaDialect string // 3.1 only
	Servers           []*Server
	Paths             Paths
	Components        *Components
	Security          []SecurityRequirement
	Tags              []*Tag
	ExternalDocs      *ExternalDocs
}

// Info provides metadata about the API. Summary is written for 3.1 only.
type Info struct {
	Title          string   `validate:"required"`
	Summary        string
	Description    string
	TermsOfService string   `validate:"omitempty,url"`
	Contact        *Contact `validate:"omitempty"`
	License        *License `validate:"omitempty"`
	Version        string   `validate:"required"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty" validate:"omitempty,url"`
	Email string `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
}

// License information for the exposed API.
type License struct {
	Name       string `validate:"required"`
	Identifier string // SPDX expression, 3.1 only
	URL        string `validate:"omitempty,url"`
}

// Server represents a server.
type Server struct {
	URL         string                     `yaml:"url" json:"url" validate:"required"`
	Description string                     `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// ServerVariable represents a server variable for server URL template substitution.
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// ExternalDocs allows referencing external documentation.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name         string        `yaml:"name" json:"name" validate:"required"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
}

// Components holds reusable objects. Only schemas are filled from the registry.
type Components struct {
	Schemas         map[string]*Schema
	SecuritySchemes map[string]*SecurityScheme
}

// SecurityRequirement lists required security schemes with their scopes.
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that can be used by the operations.
type SecurityScheme struct {
	Type             string      `yaml:"type" json:"type" validate:"required,oneof=apiKey http oauth2 openIdConnect mutualTLS"`
	Description      string      `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string      `yaml:"name,omitempty" json:"name,omitempty"`
	In               string      `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string      `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string      `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string      `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
}

// OAuthFlows allows configuration of the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
}

// OAuthFlow contains configuration details for a supported OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"`
}

// ToMap renders the document for d.Version.
func (d *Document) ToMap() map[string]any {
	v := d.Version
	m := map[string]any{
		"openapi": v.String(),
	}
	if d.Info != nil {
		m["info"] = d.Info.toMap(v)
	}
	if v.Is31() {
		dialect := d.JSONSchemaDialect
		if dialect == "" {
			dialect = DefaultJSONSchemaDialect
		}
		m["jsonSchemaDialect"] = dialect
	}
	if len(d.Servers) > 0 {
		m["servers"] = d.Servers
	}
	// paths is required in 3.0, so it is always written.
	m["paths"] = d.Paths.toMap(v)
	if c := d.Components.toMap(v); len(c) > 0 {
		m["components"] = c
	}
	if len(d.Security) > 0 {
		m["security"] = d.Security
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.ExternalDocs != nil {
		m["externalDocs"] = d.ExternalDocs
	}
	return m
}

func (i *Info) toMap(v Version) map[string]any {
	m := map[string]any{
		"title":   i.Title,
		"version": i.Version,
	}
	if i.Summary != "" && v.Is31() {
		m["summary"] = i.Summary
	}
	if i.Description != "" {
		m["description"] = i.Description
	}
	if i.TermsOfService != "" {
		m["termsOfService"] = i.TermsOfService
	}
	if i.Contact != nil {
		m["contact"] = i.Contact
	}
	if i.License != nil {
		l := map[string]any{"name": i.License.Name}
		if i.License.Identifier != "" && v.Is31() {
			l["identifier"] = i.License.Identifier
		}
		if i.License.URL != "" {
			l["url"] = i.License.URL
		}
		m["license"] = l
	}
	return m
}

func (c *Components) toMap(v Version) map[string]any {
	if c == nil {
		return nil
	}
	m := make(map[string]any)
	if len(c.Schemas) > 0 {
		m["schemas"] = schemaMap(c.Schemas, v)
	}
	if len(c.SecuritySchemes) > 0 {
		m["securitySchemes"] = c.SecuritySchemes
	}
	return m
}
