package pathutil

import (
	"fmt"
	"regexp"
	"strings"
)

// PathParamRegex matches a {name} segment of a path template.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// TemplateParams returns the parameter names of a path template in order of
// appearance.
func TemplateParams(path string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// CheckTemplate returns an error when path is not a well-formed path
// template: it must start with "/", must not contain empty segments, "#" or
// "?", and its braces must enclose distinct, non-empty names.
func CheckTemplate(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with '/'")
	}
	if strings.Contains(path, "//") {
		return fmt.Errorf("path contains consecutive slashes")
	}
	if i := strings.IndexAny(path, "#?"); i >= 0 {
		return fmt.Errorf("path contains reserved character '%c'", path[i])
	}

	open := false
	for i, ch := range path {
		switch ch {
		case '{':
			if open {
				return fmt.Errorf("nested braces are not allowed at position %d", i)
			}
			open = true
		case '}':
			if !open {
				return fmt.Errorf("unexpected closing brace at position %d", i)
			}
			open = false
		}
	}
	if open {
		return fmt.Errorf("unclosed brace in path template")
	}
	if strings.Contains(path, "{}") {
		return fmt.Errorf("empty parameter name in path template")
	}

	seen := make(map[string]bool)
	for _, name := range TemplateParams(path) {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("empty parameter name in path template")
		}
		if seen[name] {
			return fmt.Errorf("duplicate parameter name '%s' in path template", name)
		}
		seen[name] = true
	}
	return nil
}
