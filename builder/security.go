package builder

import (
	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// AddSecurityScheme adds a security scheme to components.securitySchemes.
// Registering a name twice fails the build.
func (b *Builder) AddSecurityScheme(name string, scheme *openapi.SecurityScheme) *Builder {
	if _, dup := b.securitySchemes[name]; dup {
		b.fail(&BuilderError{
			Component: ComponentSecurityScheme,
			Path:      name,
			Cause:     &oaserrors.ConflictError{Kind: "security scheme", Key: name},
		})
		return b
	}
	b.securitySchemes[name] = scheme
	return b
}

// AddAPIKeySecurityScheme adds an API key security scheme.
func (b *Builder) AddAPIKeySecurityScheme(name string, in string, keyName string, description string) *Builder {
	scheme := &openapi.SecurityScheme{
		Type:        "apiKey",
		Name:        keyName,
		In:          in,
		Description: description,
	}
	return b.AddSecurityScheme(name, scheme)
}

// AddHTTPSecurityScheme adds an HTTP security scheme (Basic, Bearer, etc.).
func (b *Builder) AddHTTPSecurityScheme(name string, scheme string, bearerFormat string, description string) *Builder {
	ss := &openapi.SecurityScheme{
		Type:         "http",
		Scheme:       scheme,
		BearerFormat: bearerFormat,
		Description:  description,
	}
	return b.AddSecurityScheme(name, ss)
}

// AddOAuth2SecurityScheme adds an OAuth2 security scheme.
func (b *Builder) AddOAuth2SecurityScheme(name string, flows *openapi.OAuthFlows, description string) *Builder {
	scheme := &openapi.SecurityScheme{
		Type:        "oauth2",
		Flows:       flows,
		Description: description,
	}
	return b.AddSecurityScheme(name, scheme)
}

// AddOpenIDConnectSecurityScheme adds an OpenID Connect security scheme.
func (b *Builder) AddOpenIDConnectSecurityScheme(name string, openIDConnectURL string, description string) *Builder {
	scheme := &openapi.SecurityScheme{
		Type:             "openIdConnect",
		OpenIDConnectURL: openIDConnectURL,
		Description:      description,
	}
	return b.AddSecurityScheme(name, scheme)
}

// AddSecurityRequirement appends a document-wide security requirement.
func (b *Builder) AddSecurityRequirement(req openapi.SecurityRequirement) *Builder {
	b.security = append(b.security, req)
	return b
}

// SecurityRequirement creates a security requirement for use with AddSecurityRequirement.
func SecurityRequirement(schemeName string, scopes ...string) openapi.SecurityRequirement {
	if scopes == nil {
		scopes = []string{}
	}
	return openapi.SecurityRequirement{
		schemeName: scopes,
	}
}

// tagConfig holds configuration for tag building.
type tagConfig struct {
	description      string
	externalDocsURL  string
	externalDocsDesc string
}

// TagOption configures a tag.
type TagOption func(*tagConfig)

// WithTagDescription sets the tag description.
func WithTagDescription(desc string) TagOption {
	return func(cfg *tagConfig) {
		cfg.description = desc
	}
}

// WithTagExternalDocs sets the external documentation for a tag.
func WithTagExternalDocs(url, description string) TagOption {
	return func(cfg *tagConfig) {
		cfg.externalDocsURL = url
		cfg.externalDocsDesc = description
	}
}

// AddTag adds a tag to the document.
func (b *Builder) AddTag(name string, opts ...TagOption) *Builder {
	cfg := &tagConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	tag := &openapi.Tag{
		Name:        name,
		Description: cfg.description,
	}

	if cfg.externalDocsURL != "" {
		tag.ExternalDocs = &openapi.ExternalDocs{
			URL:         cfg.externalDocsURL,
			Description: cfg.externalDocsDesc,
		}
	}

	b.tags = append(b.tags, tag)
	return b
}
