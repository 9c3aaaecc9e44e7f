package validator

import (
	"strconv"

	"github.com/1ean267/nexustack-sub001/internal/issues"
	"github.com/1ean267/nexustack-sub001/internal/severity"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a suspicious but valid construct
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// maxSchemaNestingDepth bounds the schema walk.
const maxSchemaNestingDepth = 100

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid"`
	// Version is the OpenAPI version string of the document
	Version string `json:"version"`
	// Errors contains all validation errors
	Errors []ValidationError `json:"errors,omitempty"`
	// Warnings contains all validation warnings
	Warnings []ValidationError `json:"warnings,omitempty"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"error_count"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warning_count"`
}

// Validator checks generated documents.
type Validator struct {
	// IncludeWarnings determines whether warnings are reported
	IncludeWarnings bool
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{IncludeWarnings: true}
}

// Validate checks doc. Issues are reported in a stable order: info, paths
// sorted by template, then components sorted by name.
func (v *Validator) Validate(doc *openapi.Document) *ValidationResult {
	result := &ValidationResult{}
	if doc == nil {
		v.addError(result, "", "document is nil")
		return v.finish(result)
	}
	result.Version = doc.Version.String()

	if doc.Version == openapi.Unknown {
		v.addError(result, "openapi", "unknown OpenAPI version")
	}
	v.validateInfo(doc, result)
	v.validatePaths(doc, result)
	v.validateRefs(doc, result)
	v.validateSecurity(doc, result)
	return v.finish(result)
}

func (v *Validator) finish(result *ValidationResult) *ValidationResult {
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	return result
}

func (v *Validator) validateInfo(doc *openapi.Document, result *ValidationResult) {
	if doc.Info == nil {
		v.addError(result, "info", "info is required", withField("info"))
		return
	}
	if doc.Info.Title == "" {
		v.addError(result, "info.title", "title is required", withField("title"))
	}
	if doc.Info.Version == "" {
		v.addError(result, "info.version", "version is required", withField("version"))
	}
	for i, server := range doc.Servers {
		if server == nil || server.URL == "" {
			v.addError(result, "servers["+strconv.Itoa(i)+"].url", "server url is required", withField("url"))
		}
	}
}

// addError appends a validation error.
func (v *Validator) addError(result *ValidationResult, path, message string, opts ...func(*ValidationError)) {
	err := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityError,
	}
	for _, opt := range opts {
		opt(&err)
	}
	result.Errors = append(result.Errors, err)
}

// addWarning appends a validation warning unless warnings are disabled.
func (v *Validator) addWarning(result *ValidationResult, path, message string, opts ...func(*ValidationError)) {
	if !v.IncludeWarnings {
		return
	}
	warn := ValidationError{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
	}
	for _, opt := range opts {
		opt(&warn)
	}
	result.Warnings = append(result.Warnings, warn)
}

// withField sets the Field on a ValidationError.
func withField(field string) func(*ValidationError) {
	return func(e *ValidationError) { e.Field = field }
}

// withValue sets the Value on a ValidationError.
func withValue(value any) func(*ValidationError) {
	return func(e *ValidationError) { e.Value = value }
}

// withOperation sets the OperationContext on a ValidationError.
func withOperation(ctx *issues.OperationContext) func(*ValidationError) {
	return func(e *ValidationError) { e.OperationContext = ctx }
}
