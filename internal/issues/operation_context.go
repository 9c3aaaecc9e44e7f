package issues

import "fmt"

// OperationContext provides API operation context for an issue.
// For issues under paths.*, it identifies the operation. For issues in
// components, it shows which operations use the component.
type OperationContext struct {
	// Method is the HTTP method (GET, POST, etc.), empty for path-level issues
	Method string `json:"method,omitempty"`
	// Path is the API path pattern (e.g., "/users/{id}")
	Path string `json:"path,omitempty"`
	// OperationID is the operationId if defined (may be empty)
	OperationID string `json:"operation_id,omitempty"`
	// IsReusableComponent is true when the issue is in components
	IsReusableComponent bool `json:"component,omitempty"`
	// AdditionalRefs is the count of other operations using this component.
	// -1 marks a component no operation uses.
	AdditionalRefs int `json:"additional_refs,omitempty"`
}

// String returns a formatted string representation of the operation context.
// Returns empty string if the context is empty.
func (c OperationContext) String() string {
	if c.IsEmpty() {
		return ""
	}

	if c.IsReusableComponent && c.AdditionalRefs == -1 {
		return "(unused component)"
	}

	var primary string
	switch {
	case c.OperationID != "":
		primary = "operationId: " + c.OperationID
	case c.Method != "":
		primary = c.Method + " " + c.Path
	default:
		return fmt.Sprintf("(path: %s)", c.Path)
	}

	if c.IsReusableComponent && c.AdditionalRefs > 0 {
		return fmt.Sprintf("(%s, +%d operations)", primary, c.AdditionalRefs)
	}
	return fmt.Sprintf("(%s)", primary)
}

// IsEmpty returns true if no context is set.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == "" && !c.IsReusableComponent
}
