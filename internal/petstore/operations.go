package petstore

import (
	"net/http"

	"github.com/1ean267/nexustack-sub001/builder"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

const (
	jsonMediaType = "application/json"

	readScope    = "pets:read"
	writeScope   = "pets:write"
	oauthScheme  = "petstore_auth"
	apiKeyScheme = "api_key"
	petsTag      = "pets"
	eventsTag    = "events"
	storeTag     = "store"
)

var (
	listPetsID    = builder.NewOperationID("listPets")
	createPetID   = builder.NewOperationID("createPet")
	getPetID      = builder.NewOperationID("getPet")
	deletePetID   = builder.NewOperationID("deletePet")
	listEventsID  = builder.NewOperationID("listPetEvents")
	payID         = builder.NewOperationID("payAdoption")
	inventoryID   = builder.NewOperationID("getInventory")
	uploadPhotoID = builder.NewOperationID("uploadPhoto")
	petAncestryID = builder.NewOperationID("getPetAncestry")
)

type catalogOperation struct {
	op builder.OperationFunc
	// recursive operations refer to a recursive type.
	recursive bool
}

func (c *Catalog) operations() []catalogOperation {
	return []catalogOperation{
		{op: c.listPets},
		{op: c.createPet},
		{op: c.getPet},
		{op: c.deletePet},
		{op: c.uploadPhoto},
		{op: c.getPetAncestry, recursive: true},
		{op: c.listEvents},
		{op: c.pay},
		{op: c.getInventory},
	}
}

// Operations returns the catalog's operations in document order.
func (c *Catalog) Operations() []builder.Operation {
	ops := c.operations()
	out := make([]builder.Operation, len(ops))
	for i, o := range ops {
		out[i] = o.op
	}
	return out
}

// DocumentOptions control Document.
type DocumentOptions struct {
	Version openapi.Version
	// Inline renders every schema in place. Recursive types are left out.
	Inline bool
	Logger openapi.Logger
	// Info replaces the default title and version when its fields are set.
	Info *openapi.Info
	// Servers replace the default server when non-empty.
	Servers []*openapi.Server
}

// Document assembles the pet store document.
func (c *Catalog) Document(opts DocumentOptions) (*openapi.Document, error) {
	version := opts.Version
	if version == openapi.Unknown {
		version = openapi.Version31
	}
	b := builder.New(version,
		builder.WithLogger(opts.Logger),
		builder.WithInlineSchemas(opts.Inline),
	)
	b.SetInfo(c.info(opts.Info))
	if len(opts.Servers) == 0 {
		b.AddServer("https://petstore.example.com/v1", builder.WithServerDescription("production"))
	}
	for _, s := range opts.Servers {
		serverOpts := []builder.ServerOption{builder.WithServerDescription(s.Description)}
		for name, v := range s.Variables {
			serverOpts = append(serverOpts, builder.WithServerVariable(name, v.Default,
				builder.WithServerVariableEnum(v.Enum...),
				builder.WithServerVariableDescription(v.Description),
			))
		}
		b.AddServer(s.URL, serverOpts...)
	}
	b.AddTag(petsTag, builder.WithTagDescription("Everything about pets")).
		AddTag(eventsTag, builder.WithTagDescription("Pet history")).
		AddTag(storeTag, builder.WithTagDescription("Adoptions and inventory")).
		AddOAuth2SecurityScheme(oauthScheme, &openapi.OAuthFlows{
			AuthorizationCode: &openapi.OAuthFlow{
				AuthorizationURL: "https://petstore.example.com/oauth/authorize",
				TokenURL:         "https://petstore.example.com/oauth/token",
				Scopes: map[string]string{
					readScope:  "read pets",
					writeScope: "modify pets",
				},
			},
		}, "").
		AddAPIKeySecurityScheme(apiKeyScheme, "header", "X-API-Key", "")

	for _, o := range c.operations() {
		if opts.Inline && o.recursive {
			continue
		}
		b.AddOperation(o.op)
	}
	if !opts.Inline {
		// publish every named type, including those no operation uses
		for _, t := range c.Types() {
			s, _ := c.Lookup(t.Name)
			if _, err := b.AddSchema(s); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

func (c *Catalog) info(override *openapi.Info) *openapi.Info {
	info := &openapi.Info{
		Title:       "Pet Store",
		Version:     "1.0.0",
		Description: "A sample API that exercises records, optional fields and every union convention.",
		License:     &openapi.License{Name: "Apache 2.0", Identifier: "Apache-2.0"},
	}
	if override == nil {
		return info
	}
	if override.Title != "" {
		info.Title = override.Title
	}
	if override.Version != "" {
		info.Version = override.Version
	}
	if override.Summary != "" {
		info.Summary = override.Summary
	}
	if override.Description != "" {
		info.Description = override.Description
	}
	if override.TermsOfService != "" {
		info.TermsOfService = override.TermsOfService
	}
	if override.Contact != nil {
		info.Contact = override.Contact
	}
	return info
}

// respondJSON adds a response with a single JSON body.
func respondJSON(rb builder.ResponseBuilder, status, description string, s schema.Schema) error {
	ct, err := rb.DescribeResponse(status, builder.ResponseOptions{Description: description})
	if err != nil {
		return err
	}
	if err := ct.DescribeContentType(jsonMediaType, builder.ContentOptions{}, s); err != nil {
		return err
	}
	return ct.End()
}

func requestJSON(b builder.OperationBuilder, description string, s schema.Schema) error {
	body, err := b.DescribeRequestBody(builder.RequestBodyOptions{Description: description})
	if err != nil {
		return err
	}
	if err := body.DescribeContentType(jsonMediaType, builder.ContentOptions{}, s); err != nil {
		return err
	}
	return body.End()
}

func requireScopes(b builder.OperationBuilder, scheme string, scopes ...string) error {
	sec, err := b.DescribeSecurityRequirement()
	if err != nil {
		return err
	}
	if err := sec.DescribeRequirement(scheme, scopes...); err != nil {
		return err
	}
	return sec.End()
}

func petIDParameter(b builder.OperationBuilder) error {
	return b.DescribePathParameter("petId", builder.ParameterOptions{Description: "ID of the pet", Example: 1}, schema.Uint64())
}

func (c *Catalog) problemResponse(rb builder.ResponseBuilder) error {
	return respondJSON(rb, "default", "unexpected error", c.problem())
}

func (c *Catalog) listPets(b builder.OperationBuilder) error {
	if err := b.DescribeQueryParameter("limit", builder.ParameterOptions{Description: "Maximum number of pets to return"},
		schema.Option(schema.Integer(schema.IntOptions[uint32]{Min: schema.Inclusive[uint32](1), Max: schema.Inclusive[uint32](100)}), schema.OptionOptions{})); err != nil {
		return err
	}
	if err := b.DescribeQueryParameter("kind", builder.ParameterOptions{}, schema.Nullable(c.petKind(), schema.OptionOptions{})); err != nil {
		return err
	}
	if err := b.DescribeQueryParameter("tags", builder.ParameterOptions{Deprecated: true},
		schema.Option(schema.Slice(schema.Text(), schema.SeqOptions{}), schema.OptionOptions{})); err != nil {
		return err
	}
	if err := requireScopes(b, oauthScheme, readScope); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(listPetsID, http.MethodGet, "/pets", builder.OperationOptions{
		Tags:    []string{petsTag},
		Summary: "List all pets",
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "200", "A page of pets", c.petPage()); err != nil {
		return err
	}
	if err := c.problemResponse(rb); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) createPet(b builder.OperationBuilder) error {
	if err := requestJSON(b, "The pet to add", c.newPet()); err != nil {
		return err
	}
	if err := requireScopes(b, oauthScheme, writeScope); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(createPetID, http.MethodPost, "/pets", builder.OperationOptions{
		Tags:    []string{petsTag},
		Summary: "Add a pet",
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "201", "The stored pet", c.pet()); err != nil {
		return err
	}
	if err := respondJSON(rb, "4XX", "The pet was rejected", c.problem()); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) getPet(b builder.OperationBuilder) error {
	if err := petIDParameter(b); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(getPetID, http.MethodGet, "/pets/{petId}", builder.OperationOptions{
		Tags:    []string{petsTag},
		Summary: "Find a pet by ID",
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "200", "The pet", c.pet()); err != nil {
		return err
	}
	if err := rb.DescribeEmptyResponse("404", builder.ResponseOptions{Description: "No such pet"}); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) deletePet(b builder.OperationBuilder) error {
	if err := petIDParameter(b); err != nil {
		return err
	}
	if err := b.DescribeHeaderParameter("If-Match", builder.ParameterOptions{Description: "Expected entity tag"},
		schema.Option(schema.Text(), schema.OptionOptions{})); err != nil {
		return err
	}
	for _, scheme := range []string{apiKeyScheme, oauthScheme} {
		var scopes []string
		if scheme == oauthScheme {
			scopes = []string{writeScope}
		}
		if err := requireScopes(b, scheme, scopes...); err != nil {
			return err
		}
	}
	rb, err := b.DescribeOperation(deletePetID, http.MethodDelete, "/pets/{petId}", builder.OperationOptions{
		Tags: []string{petsTag},
	})
	if err != nil {
		return err
	}
	if err := rb.DescribeEmptyResponse("204", builder.ResponseOptions{Description: "Deleted"}); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) uploadPhoto(b builder.OperationBuilder) error {
	if err := petIDParameter(b); err != nil {
		return err
	}
	body, err := b.DescribeRequestBody(builder.RequestBodyOptions{})
	if err != nil {
		return err
	}
	for _, mediaType := range []string{"image/png", "image/jpeg"} {
		if err := body.DescribeContentType(mediaType, builder.ContentOptions{}, schema.Bytes(schema.BytesOptions{})); err != nil {
			return err
		}
	}
	if err := body.End(); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(uploadPhotoID, http.MethodPut, "/pets/{petId}/photo", builder.OperationOptions{
		Tags: []string{petsTag},
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "200", "The photo URL", schema.URL(schema.StringOptions{})); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) getPetAncestry(b builder.OperationBuilder) error {
	if err := petIDParameter(b); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(petAncestryID, http.MethodGet, "/pets/{petId}/ancestry", builder.OperationOptions{
		Tags: []string{petsTag},
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "200", "The pet and its ancestors", c.petRef()); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) listEvents(b builder.OperationBuilder) error {
	if err := b.DescribeQueryParameter("since", builder.ParameterOptions{},
		schema.Option(schema.Time(schema.StringOptions{}), schema.OptionOptions{})); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(listEventsID, http.MethodGet, "/events", builder.OperationOptions{
		Tags:        []string{eventsTag},
		Description: "Events are returned oldest first.",
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "200", "The events", schema.Seq(c.petEvent(), schema.SeqOptions{})); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) pay(b builder.OperationBuilder) error {
	if err := petIDParameter(b); err != nil {
		return err
	}
	if err := requestJSON(b, "How the adoption is paid", c.payment()); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(payID, http.MethodPost, "/pets/{petId}/adoption", builder.OperationOptions{
		Tags: []string{storeTag},
	})
	if err != nil {
		return err
	}
	if err := rb.DescribeEmptyResponse("202", builder.ResponseOptions{Description: "Payment accepted"}); err != nil {
		return err
	}
	if err := c.problemResponse(rb); err != nil {
		return err
	}
	return rb.End()
}

func (c *Catalog) getInventory(b builder.OperationBuilder) error {
	if err := requireScopes(b, apiKeyScheme); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(inventoryID, http.MethodGet, "/store/inventory", builder.OperationOptions{
		Tags: []string{storeTag},
	})
	if err != nil {
		return err
	}
	if err := respondJSON(rb, "200", "Pets per kind", c.inventory()); err != nil {
		return err
	}
	return rb.End()
}
