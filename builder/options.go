package builder

import (
	"github.com/go-playground/validator/v10"

	"github.com/1ean267/nexustack-sub001/openapi"
)

// BuilderOption configures a Builder instance.
// Options are applied when creating a new Builder with New().
type BuilderOption func(*builderConfig)

// builderConfig holds builder configuration applied via options.
type builderConfig struct {
	logger    openapi.Logger
	inline    bool
	dialect   string
	validator *validator.Validate
}

// defaultBuilderConfig returns a new builderConfig with default values.
// Named schemas go to components and 3.1 documents use the OAS base dialect.
func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		dialect: openapi.DefaultJSONSchemaDialect,
	}
}

// WithLogger sets the logger used for operation assembly and the schema registry.
// The default discards all messages.
func WithLogger(l openapi.Logger) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.logger = l
	}
}

// WithInlineSchemas renders every schema in place instead of collecting named
// schemas under components. Recursive types cannot be rendered inline.
func WithInlineSchemas(inline bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.inline = inline
	}
}

// WithSchemaDialect overrides the jsonSchemaDialect of OpenAPI 3.1 documents.
// An empty dialect falls back to openapi.DefaultJSONSchemaDialect.
func WithSchemaDialect(dialect string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.dialect = dialect
	}
}

// WithValidator sets the struct validator used to check document metadata at
// Build. Register custom tags on v before passing it in.
func WithValidator(v *validator.Validate) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.validator = v
	}
}
