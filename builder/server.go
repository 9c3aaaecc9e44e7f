package builder

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/1ean267/nexustack-sub001/openapi"
)

// ServerOption configures a server entry.
type ServerOption func(*openapi.Server)

// WithServerDescription sets the server description.
func WithServerDescription(desc string) ServerOption {
	return func(s *openapi.Server) {
		s.Description = desc
	}
}

// ServerVariableOption configures a server variable.
type ServerVariableOption func(*openapi.ServerVariable)

// WithServerVariableEnum restricts a server variable to values.
func WithServerVariableEnum(values ...string) ServerVariableOption {
	return func(v *openapi.ServerVariable) {
		v.Enum = values
	}
}

// WithServerVariableDescription sets the description of a server variable.
func WithServerVariableDescription(desc string) ServerVariableOption {
	return func(v *openapi.ServerVariable) {
		v.Description = desc
	}
}

// WithServerVariable declares the substitution for the {name} placeholder
// of the server URL template.
func WithServerVariable(name, defaultValue string, opts ...ServerVariableOption) ServerOption {
	return func(s *openapi.Server) {
		v := &openapi.ServerVariable{Default: defaultValue}
		for _, opt := range opts {
			opt(v)
		}
		if s.Variables == nil {
			s.Variables = make(map[string]*openapi.ServerVariable)
		}
		s.Variables[name] = v
	}
}

// AddServer adds a server to the document. Every {name} placeholder of url
// must be declared with WithServerVariable, every declared variable must
// appear in url and a variable's default must be one of its enum values.
// Violations are returned by Build.
func (b *Builder) AddServer(url string, opts ...ServerOption) *Builder {
	s := &openapi.Server{URL: url}
	for _, opt := range opts {
		opt(s)
	}
	if errs := checkServer(s); len(errs) > 0 {
		b.logger.Warn("invalid server", "url", url, "errors", len(errs))
		b.fail(errs)
	}
	b.servers = append(b.servers, s)
	return b
}

// checkServer matches the URL template of s against its variables.
func checkServer(s *openapi.Server) BuilderErrors {
	invalid := func(field, format string, args ...any) *BuilderError {
		return &BuilderError{
			Component: ComponentServer,
			Path:      s.URL,
			Field:     field,
			Message:   fmt.Sprintf(format, args...),
		}
	}

	names, ok := placeholders(s.URL)
	if !ok {
		return BuilderErrors{invalid("URL", "unbalanced braces in URL template")}
	}
	var errs BuilderErrors
	for _, name := range names {
		if _, declared := s.Variables[name]; !declared {
			errs = append(errs, invalid("Variables", "placeholder {%s} has no variable", name))
		}
	}
	for _, name := range slices.Sorted(maps.Keys(s.Variables)) {
		v := s.Variables[name]
		if !slices.Contains(names, name) {
			errs = append(errs, invalid("Variables."+name, "variable is not used in the URL"))
		}
		if len(v.Enum) > 0 && !slices.Contains(v.Enum, v.Default) {
			errs = append(errs, invalid("Variables."+name+".Default",
				"default %q is not one of %s", v.Default, strings.Join(v.Enum, ", ")))
		}
	}
	return errs
}

// placeholders returns the distinct variable names of a URL template in
// order of appearance. ok is false for unbalanced or empty braces.
func placeholders(url string) (names []string, ok bool) {
	rest := url
	for {
		before, after, found := strings.Cut(rest, "{")
		if strings.Contains(before, "}") {
			return nil, false
		}
		if !found {
			return names, true
		}
		name, tail, closed := strings.Cut(after, "}")
		if !closed || name == "" || strings.Contains(name, "{") {
			return nil, false
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
		rest = tail
	}
}
