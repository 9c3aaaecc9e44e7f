// Package builder assembles OpenAPI 3.0 and 3.1 documents from operation
// descriptions.
//
// An [Operation] describes itself through an [OperationBuilder]: parameters,
// request body and security requirements first, then [OperationBuilder.DescribeOperation]
// binds it to a method and path and hands out a [ResponseBuilder]. Every type
// passed along is a [schema.Schema]; named types are rendered once into the
// build's registry and referenced by "$ref".
//
// # Quick Start
//
//	func listPets(b builder.OperationBuilder) error {
//		if err := b.DescribeQueryParameter("limit", builder.ParameterOptions{},
//			schema.Option(schema.Uint32(), schema.OptionOptions{})); err != nil {
//			return err
//		}
//		rb, err := b.DescribeOperation(builder.NewOperationID("listPets"), http.MethodGet, "/pets",
//			builder.OperationOptions{Tags: []string{"pets"}})
//		if err != nil {
//			return err
//		}
//		ct, err := rb.DescribeResponse("200", builder.ResponseOptions{Description: "the pets"})
//		if err != nil {
//			return err
//		}
//		if err := ct.DescribeContentType("application/json", builder.ContentOptions{}, pets); err != nil {
//			return err
//		}
//		if err := ct.End(); err != nil {
//			return err
//		}
//		return rb.End()
//	}
//
//	doc, err := builder.New(openapi.Version31).
//		SetTitle("Pet Store").
//		SetVersion("1.0.0").
//		AddOperation(builder.OperationFunc(listPets)).
//		Build()
//
// # Required Flags
//
// A parameter is required unless its outermost type is an option; path
// parameters are always required. A request body is required when any of
// its content types is not an option. ParameterOptions.Required and
// RequestBodyOptions.Required override both defaults.
//
// # Errors
//
// Each builder session reports duplicates through the error it returns: a
// parameter (name and location), a content type, a status code or a
// security scheme name within one requirement group. A second operation on
// the same method and path, a reused operationId and an unsupported method
// fail too. AddOperation records the first error and skips every later
// operation; Build returns it and never a partial document.
//
// All errors are a *[BuilderError] or [BuilderErrors] and match
// oaserrors.ErrConfig. The underlying oaserrors type stays reachable:
//
//	if errors.Is(err, oaserrors.ErrConflict) {
//		// duplicate path and method, status code, ...
//	}
//
// # Components
//
// components.schemas is filled exclusively from the registry at Build. The
// registry can only be finalized once every handle obtained from
// [Builder.Share] has been released. [WithInlineSchemas] renders every
// schema in place and leaves components.schemas empty.
//
// # Validation
//
// Build checks the document metadata (info, contact, license, servers, tags
// and security schemes) with go-playground/validator struct tags. The
// produced document is not otherwise validated.
package builder
