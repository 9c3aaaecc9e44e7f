package builder

import (
	"maps"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/registry"
	"github.com/1ean267/nexustack-sub001/render"
	"github.com/1ean267/nexustack-sub001/schema"
)

// Builder is the main entry point for assembling OpenAPI documents.
// It owns the schema registry of one build: named schemas met while
// describing operations are collected once and referenced by "$ref".
//
// Concurrency: Builder instances are not safe for concurrent use.
// Create separate Builder instances for concurrent builds.
type Builder struct {
	version openapi.Version

	// Document sections
	info            *openapi.Info
	servers         []*openapi.Server
	paths           openapi.Paths
	tags            []*openapi.Tag
	security        []openapi.SecurityRequirement
	externalDocs    *openapi.ExternalDocs
	securitySchemes map[string]*openapi.SecurityScheme

	// Schema rendering
	collection *registry.Collection
	handle     *registry.Handle
	renderer   *render.Renderer

	// Tracking
	operationIDs map[string]operationLocation
	err          error
	built        bool

	config *builderConfig
	logger openapi.Logger
}

// New creates a new Builder for the given OpenAPI version.
//
// Example:
//
//	doc, err := builder.New(openapi.Version31).
//		SetTitle("Pet Store").
//		SetVersion("1.0.0").
//		AddOperation(listPets).
//		Build()
func New(version openapi.Version, opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.validator == nil {
		cfg.validator = validator.New()
	}
	logger := openapi.LoggerOrNop(cfg.logger)

	b := &Builder{
		version:         version,
		paths:           make(openapi.Paths),
		securitySchemes: make(map[string]*openapi.SecurityScheme),
		operationIDs:    make(map[string]operationLocation),
		config:          cfg,
		logger:          logger,
	}
	if cfg.inline {
		b.renderer = render.New(render.WithLogger(logger))
	} else {
		b.collection = registry.New(registry.WithLogger(logger))
		b.handle = b.collection.Share()
		b.renderer = render.New(render.WithRegistry(b.handle), render.WithLogger(logger))
	}
	return b
}

// SetInfo sets the Info object for the document.
func (b *Builder) SetInfo(info *openapi.Info) *Builder {
	b.info = info
	return b
}

func (b *Builder) ensureInfo() *openapi.Info {
	if b.info == nil {
		b.info = &openapi.Info{}
	}
	return b.info
}

// SetTitle sets the title in the Info object.
func (b *Builder) SetTitle(title string) *Builder {
	b.ensureInfo().Title = title
	return b
}

// SetVersion sets the version in the Info object.
// Note: This is the API version, not the OpenAPI version.
func (b *Builder) SetVersion(version string) *Builder {
	b.ensureInfo().Version = version
	return b
}

// SetSummary sets the summary in the Info object. It is written for 3.1 only.
func (b *Builder) SetSummary(summary string) *Builder {
	b.ensureInfo().Summary = summary
	return b
}

// SetDescription sets the description in the Info object.
func (b *Builder) SetDescription(desc string) *Builder {
	b.ensureInfo().Description = desc
	return b
}

// SetTermsOfService sets the terms of service URL in the Info object.
func (b *Builder) SetTermsOfService(url string) *Builder {
	b.ensureInfo().TermsOfService = url
	return b
}

// SetContact sets the contact information in the Info object.
func (b *Builder) SetContact(contact *openapi.Contact) *Builder {
	b.ensureInfo().Contact = contact
	return b
}

// SetLicense sets the license information in the Info object.
func (b *Builder) SetLicense(license *openapi.License) *Builder {
	b.ensureInfo().License = license
	return b
}

// SetLicenseIdentifier sets the SPDX identifier of the license. It is written
// for 3.1 only.
func (b *Builder) SetLicenseIdentifier(identifier string) *Builder {
	info := b.ensureInfo()
	if info.License == nil {
		info.License = &openapi.License{}
	}
	info.License.Identifier = identifier
	return b
}

// SetExternalDocs sets the external documentation for the document.
func (b *Builder) SetExternalDocs(externalDocs *openapi.ExternalDocs) *Builder {
	b.externalDocs = externalDocs
	return b
}

// Share hands out a reference to the build's schema registry, for callers
// that render additional schemas themselves. Release it before Build.
// It returns nil for builders created with WithInlineSchemas.
func (b *Builder) Share() *registry.Handle {
	if b.handle == nil {
		return nil
	}
	return b.handle.Share()
}

// AddSchema renders s with the builder's renderer and returns the result,
// a "$ref" for named shapes. Use it to publish component schemas that no
// operation refers to.
func (b *Builder) AddSchema(s schema.Schema) (*openapi.Schema, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}
	out, err := b.renderer.Render(s)
	if err != nil {
		err = NewSchemaError("", "rendering failed", err)
		b.fail(err)
		return nil, err
	}
	return out, nil
}

// AddOperation describes op and adds it to the document.
//
// The first failing operation is recorded and returned by Build; operations
// added after it are skipped.
func (b *Builder) AddOperation(op Operation) *Builder {
	if err := b.usable(); err != nil {
		b.fail(err)
		return b
	}
	if b.err != nil {
		b.logger.Debug("skipping operation after earlier failure")
		return b
	}
	o := newOperation(b)
	err := op.DescribeOperation(o)
	if err == nil && !o.complete {
		err = &BuilderError{
			Component: ComponentOperation,
			Method:    o.method,
			Path:      o.path,
			Message:   "operation description did not complete",
		}
	}
	if err != nil {
		err = NewOperationError(o.method, o.path, o.id.Name(), err)
		b.logger.Warn("operation failed", "method", o.method, "path", o.path, "error", err)
		b.fail(err)
		return b
	}
	b.logger.Debug("operation added", "method", o.method, "path", o.path, "operationId", o.id.Name())
	return b
}

// insert places op into its path item slot.
func (b *Builder) insert(method, path string, id OperationID, op *openapi.Operation) error {
	item, ok := b.paths[path]
	if !ok {
		item = &openapi.PathItem{}
	}
	slot, ok := item.Slot(method)
	if !ok {
		return NewInvalidMethodError(method, path)
	}
	if *slot != nil {
		return &BuilderError{
			Component:   ComponentOperation,
			Method:      method,
			Path:        path,
			OperationID: id.Name(),
			Cause: &oaserrors.ConflictError{
				Kind: "operation",
				Key:  strings.ToUpper(method) + " " + path,
			},
		}
	}
	if id.Name() != "" {
		if first, dup := b.operationIDs[id.Name()]; dup {
			return NewDuplicateOperationIDError(id.Name(), method, path, &first)
		}
		b.operationIDs[id.Name()] = operationLocation{Method: method, Path: path, Site: id.Site().String()}
	}
	*slot = op
	b.paths[path] = item
	return nil
}

// example normalizes an example value for the document tree.
func (b *Builder) example(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return openapi.Normalize(v)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) usable() error {
	if b.built {
		return &BuilderError{Message: "builder already built"}
	}
	return nil
}

// Build validates the document metadata, finalizes the schema registry and
// returns the assembled document. It returns the first recorded error
// instead of a partial document.
//
// components.schemas is filled exclusively from the registry. Build fails
// with an oaserrors.ErrRegistry error while a handle from Share is held.
func (b *Builder) Build() (*openapi.Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	doc := &openapi.Document{
		Version:      b.version,
		Info:         b.info,
		Servers:      b.servers,
		Paths:        b.paths,
		Security:     b.security,
		Tags:         b.tags,
		ExternalDocs: b.externalDocs,
	}
	if b.version.Is31() {
		doc.JSONSchemaDialect = b.config.dialect
	}

	components := &openapi.Components{}
	if b.collection != nil {
		if b.handle != nil {
			b.handle.Release()
			b.handle = nil
		}
		schemas, err := b.collection.Finalize()
		if err != nil {
			return nil, &BuilderError{Component: ComponentRegistry, Cause: err}
		}
		if len(schemas) > 0 {
			components.Schemas = schemas
		}
	}
	if len(b.securitySchemes) > 0 {
		components.SecuritySchemes = b.securitySchemes
	}
	if components.Schemas != nil || components.SecuritySchemes != nil {
		doc.Components = components
	}

	b.built = true
	b.logger.Debug("document built", "paths", len(b.paths), "version", b.version.String())
	return doc, nil
}

// validate checks the metadata structs against their validate tags.
func (b *Builder) validate() error {
	v := b.config.validator
	var errs BuilderErrors
	if b.info == nil {
		errs = append(errs, &BuilderError{Component: ComponentInfo, Message: "title and version are required"})
	} else if err := v.Struct(b.info); err != nil {
		errs = append(errs, newValidationErrors(ComponentInfo, "", err)...)
	}
	for _, s := range b.servers {
		if err := v.Struct(s); err != nil {
			errs = append(errs, newValidationErrors(ComponentServer, s.URL, err)...)
		}
	}
	for _, t := range b.tags {
		if err := v.Struct(t); err != nil {
			errs = append(errs, newValidationErrors(ComponentTag, t.Name, err)...)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(b.securitySchemes)) {
		if err := v.Struct(b.securitySchemes[name]); err != nil {
			errs = append(errs, newValidationErrors(ComponentSecurityScheme, name, err)...)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
