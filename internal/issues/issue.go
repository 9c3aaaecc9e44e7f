// Package issues provides the issue type reported by document validation.
package issues

import (
	"fmt"

	"github.com/1ean267/nexustack-sub001/internal/severity"
)

// Issue represents a single problem found in a generated document.
type Issue struct {
	// Path is the dotted path to the problematic field (e.g., "paths./pets.get.responses")
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Field is the specific field name that has the issue
	Field string `json:"field,omitempty"`
	// Value is the problematic value (optional)
	Value any `json:"value,omitempty"`
	// OperationContext names the operation the issue belongs to, or the
	// operations using the component it was found in. Nil when not applicable.
	OperationContext *OperationContext `json:"operation,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		path = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}
	return fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
}

// IsError reports whether the issue makes the document invalid.
func (i Issue) IsError() bool {
	return i.Severity == severity.SeverityError
}
