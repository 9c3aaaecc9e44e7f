package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1ean267/nexustack-sub001/internal/issues"
	"github.com/1ean267/nexustack-sub001/internal/pathutil"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/registry"
)

// refWalker collects the references of a group of schemas and reports those
// that do not resolve.
type refWalker struct {
	v      *Validator
	result *ValidationResult
	valid  map[string]string // ref -> component name
	path   pathutil.PathBuilder
	ctx    *issues.OperationContext
	found  map[string]bool // component names referenced
}

func (w *refWalker) schema(s *openapi.Schema, depth int) {
	if s == nil {
		return
	}
	if depth > maxSchemaNestingDepth {
		w.v.addError(w.result, w.path.String(),
			fmt.Sprintf("schema nesting exceeds %d levels", maxSchemaNestingDepth),
			withOperation(w.ctx))
		return
	}
	if s.Ref != "" {
		w.ref(s.Ref)
		return
	}

	w.child("items", s.Items, depth)
	for i, item := range s.PrefixItems {
		w.path.Push("prefixItems")
		w.path.PushIndex(i)
		w.schema(item, depth+1)
		w.path.Pop()
		w.path.Pop()
	}
	w.children("properties", s.Properties, depth)
	w.children("patternProperties", s.PatternProperties, depth)
	w.child("additionalProperties", s.AdditionalProperties, depth)
	w.list("allOf", s.AllOf, depth)
	w.list("anyOf", s.AnyOf, depth)
	w.list("oneOf", s.OneOf, depth)
	w.child("not", s.Not, depth)

	if s.Discriminator != nil {
		keys := make([]string, 0, len(s.Discriminator.Mapping))
		for k := range s.Discriminator.Mapping {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		w.path.Push("discriminator")
		w.path.Push("mapping")
		for _, k := range keys {
			w.path.Push(k)
			w.ref(s.Discriminator.Mapping[k])
			w.path.Pop()
		}
		w.path.Pop()
		w.path.Pop()
	}
}

func (w *refWalker) child(key string, s *openapi.Schema, depth int) {
	if s == nil {
		return
	}
	w.path.Push(key)
	w.schema(s, depth+1)
	w.path.Pop()
}

func (w *refWalker) children(key string, m map[string]*openapi.Schema, depth int) {
	if len(m) == 0 {
		return
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	w.path.Push(key)
	for _, name := range names {
		w.path.Push(name)
		w.schema(m[name], depth+1)
		w.path.Pop()
	}
	w.path.Pop()
}

func (w *refWalker) list(key string, list []*openapi.Schema, depth int) {
	for i, s := range list {
		w.path.Push(key)
		w.path.PushIndex(i)
		w.schema(s, depth+1)
		w.path.Pop()
		w.path.Pop()
	}
}

func (w *refWalker) ref(ref string) {
	if name, ok := w.valid[ref]; ok {
		w.found[name] = true
		return
	}
	message := fmt.Sprintf("$ref '%s' does not resolve to a component of the document", ref)
	switch {
	case strings.HasSuffix(ref, "/"):
		message = fmt.Sprintf("$ref %q references an empty schema name", ref)
	case !strings.HasPrefix(ref, registry.RefPrefix):
		message = fmt.Sprintf("$ref %q does not point into components.schemas", ref)
	}
	w.v.addError(w.result, w.path.String(), message,
		withField("$ref"), withValue(ref), withOperation(w.ctx))
}

// content walks the schemas of a content map.
func (w *refWalker) content(content map[string]*openapi.MediaType) {
	mediaTypes := make([]string, 0, len(content))
	for mt := range content {
		mediaTypes = append(mediaTypes, mt)
	}
	sort.Strings(mediaTypes)
	w.path.Push("content")
	for _, mt := range mediaTypes {
		if media := content[mt]; media != nil {
			w.path.Push(mt)
			w.child("schema", media.Schema, 0)
			w.path.Pop()
		}
	}
	w.path.Pop()
}

func (w *refWalker) parameters(params []*openapi.Parameter) {
	w.path.Push("parameters")
	for i, p := range params {
		if p == nil {
			continue
		}
		w.path.PushIndex(i)
		w.child("schema", p.Schema, 0)
		w.path.Pop()
	}
	w.path.Pop()
}

// operation walks every schema of one operation.
func (w *refWalker) operation(item *openapi.PathItem, ref operationRef) {
	w.path.Push("paths")
	w.path.Push(ref.Path)
	w.parameters(item.Parameters)
	w.path.Push(ref.Method)
	w.parameters(ref.Operation.Parameters)
	if body := ref.Operation.RequestBody; body != nil {
		w.path.Push("requestBody")
		w.content(body.Content)
		w.path.Pop()
	}
	statuses := make([]string, 0, len(ref.Operation.Responses))
	for status := range ref.Operation.Responses {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	w.path.Push("responses")
	for _, status := range statuses {
		resp := ref.Operation.Responses[status]
		if resp == nil {
			continue
		}
		w.path.Push(status)
		w.content(resp.Content)
		headers := make([]string, 0, len(resp.Headers))
		for name := range resp.Headers {
			headers = append(headers, name)
		}
		sort.Strings(headers)
		w.path.Push("headers")
		for _, name := range headers {
			if h := resp.Headers[name]; h != nil {
				w.path.Push(name)
				w.child("schema", h.Schema, 0)
				w.path.Pop()
			}
		}
		w.path.Pop()
		w.path.Pop()
	}
	w.path.Truncate(0)
}

// validateRefs checks that every reference resolves and reports components
// that no operation reaches.
func (v *Validator) validateRefs(doc *openapi.Document, result *ValidationResult) {
	var components map[string]*openapi.Schema
	if doc.Components != nil {
		components = doc.Components.Schemas
	}
	valid := make(map[string]string, len(components))
	names := make([]string, 0, len(components))
	for name := range components {
		valid[registry.Ref(name)] = name
		names = append(names, name)
	}
	sort.Strings(names)

	newWalker := func(ctx *issues.OperationContext) *refWalker {
		return &refWalker{v: v, result: result, valid: valid, ctx: ctx, found: make(map[string]bool)}
	}

	// direct references of every operation
	ops := sortedOperations(doc)
	direct := make([]map[string]bool, len(ops))
	for i, ref := range ops {
		w := newWalker(ref.context())
		w.operation(doc.Paths[ref.Path], ref)
		direct[i] = w.found
	}

	// references between components, reported once per component
	edges := make(map[string]map[string]bool, len(names))
	for _, name := range names {
		w := newWalker(nil)
		w.path.Push("components")
		w.path.Push("schemas")
		w.path.Push(name)
		w.schema(components[name], 0)
		edges[name] = w.found
	}

	// which operations reach each component
	users := make(map[string][]operationRef, len(names))
	for i, ref := range ops {
		for name := range reachable(direct[i], edges) {
			users[name] = append(users[name], ref)
		}
	}

	for _, name := range names {
		if len(users[name]) == 0 {
			v.addWarning(result, "components.schemas."+name, "component is not used by any operation",
				withOperation(&issues.OperationContext{IsReusableComponent: true, AdditionalRefs: -1}))
		}
	}
	v.attachComponentContext(result, users)
}

// reachable returns the components reachable from roots.
func reachable(roots map[string]bool, edges map[string]map[string]bool) map[string]bool {
	seen := make(map[string]bool, len(roots))
	stack := make([]string, 0, len(roots))
	for name := range roots {
		stack = append(stack, name)
	}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[name] {
			continue
		}
		seen[name] = true
		for next := range edges[name] {
			stack = append(stack, next)
		}
	}
	return seen
}

// attachComponentContext fills in the operation context of errors found in
// components from the operations that use them.
func (v *Validator) attachComponentContext(result *ValidationResult, users map[string][]operationRef) {
	const prefix = "components.schemas."
	for i := range result.Errors {
		e := &result.Errors[i]
		if e.OperationContext != nil || !strings.HasPrefix(e.Path, prefix) {
			continue
		}
		name := strings.TrimPrefix(e.Path, prefix)
		if end := strings.IndexAny(name, ".["); end >= 0 {
			name = name[:end]
		}
		refs := users[name]
		ctx := &issues.OperationContext{IsReusableComponent: true, AdditionalRefs: -1}
		if len(refs) > 0 {
			first := refs[0]
			ctx = &issues.OperationContext{
				Method:              strings.ToUpper(first.Method),
				Path:                first.Path,
				OperationID:         first.Operation.OperationID,
				IsReusableComponent: true,
				AdditionalRefs:      len(refs) - 1,
			}
		}
		e.OperationContext = ctx
	}
}
