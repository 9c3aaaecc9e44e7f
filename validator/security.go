package validator

import (
	"fmt"
	"sort"

	"github.com/1ean267/nexustack-sub001/internal/issues"
	"github.com/1ean267/nexustack-sub001/openapi"
)

// validateSecurity checks that document and operation requirements name
// declared schemes, and that OAuth2 scopes exist in the scheme's flows.
func (v *Validator) validateSecurity(doc *openapi.Document, result *ValidationResult) {
	var schemes map[string]*openapi.SecurityScheme
	if doc.Components != nil {
		schemes = doc.Components.SecuritySchemes
	}

	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if schemes[name] == nil {
			v.addError(result, "components.securitySchemes."+name, "security scheme is empty")
			continue
		}
		if s := schemes[name]; s.Type == "oauth2" && !hasFlow(s.Flows) {
			v.addError(result, "components.securitySchemes."+name, "oauth2 security scheme declares no flows", withField("flows"))
		}
	}

	for i, req := range doc.Security {
		v.validateRequirement(result, schemes, req, fmt.Sprintf("security[%d]", i), nil)
	}
	for _, ref := range sortedOperations(doc) {
		for i, req := range ref.Operation.Security {
			v.validateRequirement(result, schemes, req, fmt.Sprintf("%s.security[%d]", ref.location(), i), ref.context())
		}
	}
}

func (v *Validator) validateRequirement(result *ValidationResult, schemes map[string]*openapi.SecurityScheme,
	req openapi.SecurityRequirement, path string, ctx *issues.OperationContext) {
	names := make([]string, 0, len(req))
	for name := range req {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		scheme, ok := schemes[name]
		if !ok || scheme == nil {
			v.addError(result, path+"."+name, fmt.Sprintf("security scheme '%s' is not declared", name),
				withValue(name), withOperation(ctx))
			continue
		}
		scopes := req[name]
		if scheme.Type != "oauth2" {
			if len(scopes) > 0 && scheme.Type != "openIdConnect" {
				v.addWarning(result, path+"."+name,
					fmt.Sprintf("scopes on a %s security scheme are treated as roles", scheme.Type),
					withOperation(ctx))
			}
			continue
		}
		for _, scope := range scopes {
			if !declaresScope(scheme.Flows, scope) {
				v.addError(result, path+"."+name, fmt.Sprintf("scope '%s' is not declared by any flow of '%s'", scope, name),
					withField("scopes"), withValue(scope), withOperation(ctx))
			}
		}
	}
}

func flows(f *openapi.OAuthFlows) []*openapi.OAuthFlow {
	if f == nil {
		return nil
	}
	return []*openapi.OAuthFlow{f.Implicit, f.Password, f.ClientCredentials, f.AuthorizationCode}
}

func hasFlow(f *openapi.OAuthFlows) bool {
	for _, flow := range flows(f) {
		if flow != nil {
			return true
		}
	}
	return false
}

func declaresScope(f *openapi.OAuthFlows, scope string) bool {
	for _, flow := range flows(f) {
		if flow == nil {
			continue
		}
		if _, ok := flow.Scopes[scope]; ok {
			return true
		}
	}
	return false
}
