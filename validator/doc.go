// Package validator checks generated OpenAPI documents for internal
// consistency.
//
// The builder rejects most mistakes while a document is assembled. The
// validator looks at the finished document as a whole and reports what only
// shows up there:
//
// Paths:
//   - Path templates must be well-formed (leading "/", no empty or nested braces)
//   - Every template parameter must be declared as a required path parameter
//   - Declared path parameters missing from the template are warnings
//
// Operations:
//   - Operation IDs must be unique across the document
//   - Every operation needs at least one response
//   - Status keys must be "default", a range like "2XX" or a code from 100 to 599
//   - Media types must follow RFC 2045/2046
//   - Tags used by operations should be declared at the top level (warning)
//
// References:
//   - Every "$ref" must resolve to an entry of components.schemas
//   - Components no operation reaches are reported as warnings
//
// Security:
//   - Requirements must name a declared security scheme
//   - OAuth2 scopes must be declared by one of the scheme's flows
//
// # Usage
//
//	doc, err := b.Build()
//	if err != nil {
//		return err
//	}
//	result := validator.New().Validate(doc)
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e.String())
//		}
//	}
//
// Set [Validator.IncludeWarnings] to false to keep only errors.
package validator
