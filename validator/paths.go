package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1ean267/nexustack-sub001/internal/httputil"
	"github.com/1ean267/nexustack-sub001/internal/issues"
	"github.com/1ean267/nexustack-sub001/internal/pathutil"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// operationRef identifies one operation of the document.
type operationRef struct {
	Method    string // lowercase slot name
	Path      string
	Operation *openapi.Operation
}

func (r operationRef) context() *issues.OperationContext {
	return &issues.OperationContext{
		Method:      strings.ToUpper(r.Method),
		Path:        r.Path,
		OperationID: r.Operation.OperationID,
	}
}

// location is "paths.<template>.<method>".
func (r operationRef) location() string {
	return "paths." + r.Path + "." + r.Method
}

// sortedOperations lists the operations by path template, then in path item
// slot order.
func sortedOperations(doc *openapi.Document) []operationRef {
	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out []operationRef
	for _, path := range paths {
		item := doc.Paths[path]
		if item == nil {
			continue
		}
		ops := item.Operations()
		for _, method := range httputil.Methods {
			if op, ok := ops[method]; ok {
				out = append(out, operationRef{Method: method, Path: path, Operation: op})
			}
		}
	}
	return out
}

func (v *Validator) validatePaths(doc *openapi.Document, result *ValidationResult) {
	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := pathutil.CheckTemplate(path); err != nil {
			v.addError(result, "paths."+path, err.Error(), withValue(path))
		}
		if item := doc.Paths[path]; item != nil && len(item.Operations()) == 0 {
			v.addWarning(result, "paths."+path, "path item has no operations")
		}
	}

	declaredTags := make(map[string]bool, len(doc.Tags))
	for _, tag := range doc.Tags {
		if tag != nil {
			declaredTags[tag.Name] = true
		}
	}

	operationIDs := make(map[string]operationRef)
	for _, ref := range sortedOperations(doc) {
		op := ref.Operation
		if op.OperationID != "" {
			if first, dup := operationIDs[op.OperationID]; dup {
				v.addError(result, ref.location()+".operationId",
					fmt.Sprintf("duplicate operationId %q, first used by %s %s", op.OperationID, strings.ToUpper(first.Method), first.Path),
					withField("operationId"), withValue(op.OperationID), withOperation(ref.context()))
			} else {
				operationIDs[op.OperationID] = ref
			}
		}
		for _, tag := range op.Tags {
			if !declaredTags[tag] {
				v.addWarning(result, ref.location()+".tags",
					fmt.Sprintf("tag %q is not declared in the top-level tags", tag),
					withField("tags"), withValue(tag), withOperation(ref.context()))
			}
		}
		v.validateParameters(doc.Paths[ref.Path], ref, result)
		v.validateRequestBody(ref, result)
		v.validateResponses(ref, result)
	}
}

// validateParameters checks that the path template and the declared path
// parameters agree.
func (v *Validator) validateParameters(item *openapi.PathItem, ref operationRef, result *ValidationResult) {
	declared := make(map[string]bool)
	check := func(params []*openapi.Parameter, at string) {
		for i, param := range params {
			if param == nil || param.In != openapi.InPath {
				continue
			}
			declared[param.Name] = true
			if !param.Required {
				v.addError(result, fmt.Sprintf("%s.parameters[%d]", at, i),
					"path parameters must have required: true",
					withField("required"), withValue(param.Name), withOperation(ref.context()))
			}
		}
	}
	check(item.Parameters, "paths."+ref.Path)
	check(ref.Operation.Parameters, ref.location())

	inTemplate := make(map[string]bool)
	for _, name := range pathutil.TemplateParams(ref.Path) {
		inTemplate[name] = true
		if !declared[name] {
			v.addError(result, ref.location(),
				fmt.Sprintf("path template references parameter '{%s}' but it is not declared in parameters", name),
				withValue(name), withOperation(ref.context()))
		}
	}
	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !inTemplate[name] {
			v.addWarning(result, ref.location(),
				fmt.Sprintf("parameter '%s' is declared as path parameter but not used in path template", name),
				withValue(name), withOperation(ref.context()))
		}
	}
}

func (v *Validator) validateRequestBody(ref operationRef, result *ValidationResult) {
	body := ref.Operation.RequestBody
	if body == nil {
		return
	}
	at := ref.location() + ".requestBody"
	if len(body.Content) == 0 {
		v.addError(result, at+".content", "request body must have at least one media type",
			withField("content"), withOperation(ref.context()))
	}
	v.validateMediaTypes(body.Content, at, ref, result)
}

func (v *Validator) validateResponses(ref operationRef, result *ValidationResult) {
	at := ref.location() + ".responses"
	if len(ref.Operation.Responses) == 0 {
		v.addError(result, at, "operation must declare at least one response",
			withField("responses"), withOperation(ref.context()))
		return
	}
	statuses := make([]string, 0, len(ref.Operation.Responses))
	for status := range ref.Operation.Responses {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		switch {
		case !httputil.ValidateStatusCode(status):
			v.addError(result, at+"."+status,
				fmt.Sprintf("invalid status code %q", status),
				withValue(status), withOperation(ref.context()))
		case httputil.IsNumericStatusCode(status) && !httputil.IsStandardStatusCode(status):
			v.addWarning(result, at+"."+status,
				fmt.Sprintf("status code %s is not a registered HTTP status", status),
				withValue(status), withOperation(ref.context()))
		}
		if resp := ref.Operation.Responses[status]; resp != nil {
			v.validateMediaTypes(resp.Content, at+"."+status, ref, result)
		}
	}
}

func (v *Validator) validateMediaTypes(content map[string]*openapi.MediaType, at string, ref operationRef, result *ValidationResult) {
	mediaTypes := make([]string, 0, len(content))
	for mt := range content {
		mediaTypes = append(mediaTypes, mt)
	}
	sort.Strings(mediaTypes)
	for _, mt := range mediaTypes {
		if !httputil.IsValidMediaType(mt) {
			v.addError(result, at+".content",
				fmt.Sprintf("invalid media type %q", mt),
				withValue(mt), withOperation(ref.context()))
		}
	}
}
