package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/1ean267/nexustack-sub001/oaserrors"
)

// ComponentType identifies the type of component where an error occurred.
type ComponentType string

const (
	// ComponentOperation indicates an error in an operation definition.
	ComponentOperation ComponentType = "operation"
	// ComponentSchema indicates an error in a schema definition.
	ComponentSchema ComponentType = "schema"
	// ComponentInfo indicates invalid document metadata.
	ComponentInfo ComponentType = "info"
	// ComponentSecurityScheme indicates an error in a security scheme.
	ComponentSecurityScheme ComponentType = "security_scheme"
	// ComponentServer indicates an error in a server definition.
	ComponentServer ComponentType = "server"
	// ComponentTag indicates an error in a tag definition.
	ComponentTag ComponentType = "tag"
	// ComponentRegistry indicates a failure finalizing the schema registry.
	ComponentRegistry ComponentType = "registry"
)

// operationLocation tracks where an operationID was first defined.
type operationLocation struct {
	Method string
	Path   string
	Site   string
}

// String returns a human-readable location description.
func (ol operationLocation) String() string {
	method := strings.ToUpper(ol.Method)
	if ol.Site == "" {
		return fmt.Sprintf("%s %s", method, ol.Path)
	}
	return fmt.Sprintf("%s %s at %s", method, ol.Path, ol.Site)
}

// BuilderError represents a structured error from the builder package.
// It provides detailed context about where and why an error occurred while
// assembling a document.
type BuilderError struct {
	// Component is the type of component where the error occurred.
	Component ComponentType
	// Method is the HTTP method (for operation errors).
	Method string
	// Path is the API path (for operation errors) or the component name.
	Path string
	// OperationID is the operation identifier (if applicable).
	OperationID string
	// Field is the specific field with the error (e.g., "Info.Title").
	Field string
	// Message describes the error.
	Message string
	// FirstOccurrence tracks where a duplicate was first defined.
	FirstOccurrence *operationLocation
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface with a detailed, formatted message.
func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}

	if e.Method != "" && e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(strings.ToUpper(e.Method))
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	} else if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}

	if e.OperationID != "" {
		sb.WriteString(" [operationId: ")
		sb.WriteString(e.OperationID)
		sb.WriteString("]")
	}

	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.FirstOccurrence != nil {
		sb.WriteString(" (first defined at ")
		sb.WriteString(e.FirstOccurrence.String())
		sb.WriteString(")")
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
// Conflicts, shape errors and registry errors stay reachable through it.
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// All BuilderErrors are classified as ErrConfig errors, enabling callers to use
// errors.Is(err, oaserrors.ErrConfig) to detect builder issues.
func (e *BuilderError) Is(target error) bool {
	return target == oaserrors.ErrConfig
}

// HasLocation returns true if this error has location context.
func (e *BuilderError) HasLocation() bool {
	return e.Path != "" || e.Component != ""
}

// Location returns a descriptive location string.
func (e *BuilderError) Location() string {
	if e.Method != "" && e.Path != "" {
		return fmt.Sprintf("%s %s", strings.ToUpper(e.Method), e.Path)
	}
	if e.Path != "" {
		return e.Path
	}
	if e.Component != "" {
		return string(e.Component)
	}
	return "unknown"
}

// NewDuplicateOperationIDError creates an error for duplicate operation IDs.
func NewDuplicateOperationIDError(operationID, method, path string, first *operationLocation) *BuilderError {
	return &BuilderError{
		Component:       ComponentOperation,
		Method:          method,
		Path:            path,
		OperationID:     operationID,
		Message:         fmt.Sprintf("duplicate operationId %q", operationID),
		FirstOccurrence: first,
		Cause:           &oaserrors.ConflictError{Kind: "operationId", Key: operationID},
	}
}

// NewInvalidMethodError creates an error for methods without a path item slot.
func NewInvalidMethodError(method, path string) *BuilderError {
	return &BuilderError{
		Component: ComponentOperation,
		Method:    method,
		Path:      path,
		Cause: &oaserrors.ShapeError{
			Adapter: "operation",
			Message: "unsupported HTTP method",
			Got:     method,
		},
	}
}

// NewOperationError wraps a failure raised while describing an operation.
// Errors that already are a *BuilderError are returned unchanged.
func NewOperationError(method, path, operationID string, cause error) error {
	var be *BuilderError
	if errors.As(cause, &be) {
		return cause
	}
	return &BuilderError{
		Component:   ComponentOperation,
		Method:      method,
		Path:        path,
		OperationID: operationID,
		Cause:       cause,
	}
}

// NewSchemaError creates an error for schema-related issues.
func NewSchemaError(schemaName, message string, cause error) *BuilderError {
	return &BuilderError{
		Component: ComponentSchema,
		Path:      schemaName,
		Message:   message,
		Cause:     cause,
	}
}

// newValidationErrors converts struct validation failures of one component.
func newValidationErrors(component ComponentType, name string, err error) BuilderErrors {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return BuilderErrors{{Component: component, Path: name, Message: "invalid", Cause: err}}
	}
	out := make(BuilderErrors, 0, len(valErrs))
	for _, ve := range valErrs {
		out = append(out, &BuilderError{
			Component: component,
			Path:      name,
			Field:     ve.Namespace(),
			Message:   formatValidationError(ve),
		})
	}
	return out
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of %s", ve.Param())
	default:
		return fmt.Sprintf("failed %q validation", ve.Tag())
	}
}

// BuilderErrors is a collection of BuilderError with formatting support.
type BuilderErrors []*BuilderError

// Error implements the error interface with a formatted multi-error message.
func (errs BuilderErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		if errs[0] == nil {
			return ""
		}
		return errs[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("builder: %d error(s):\n", len(errs)))
	for _, e := range errs {
		if e == nil {
			continue
		}
		sb.WriteString("  - ")
		// Strip the "builder: " prefix for nested errors to avoid repetition
		errMsg := strings.TrimPrefix(e.Error(), "builder: ")
		sb.WriteString(errMsg)
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors for Go 1.20+ error wrapping semantics,
// enabling errors.Is and errors.As to work with multiple wrapped errors.
func (errs BuilderErrors) Unwrap() []error {
	result := make([]error, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		result = append(result, e)
	}
	return result
}
