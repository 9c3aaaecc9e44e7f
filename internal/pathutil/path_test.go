package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single parameter", "/pets/{petId}", []string{"petId"}},
		{"multiple parameters", "/pets/{petId}/owners/{ownerId}", []string{"petId", "ownerId"}},
		{"no parameters", "/pets/all", nil},
		{"parameter at start", "/{version}/pets", []string{"version"}},
		{"parameter within segment", "/files/{name}.{ext}", []string{"name", "ext"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateParams(tt.input))
		})
	}
}

func TestCheckTemplate(t *testing.T) {
	valid := []string{"/", "/pets", "/pets/{petId}", "/pets/{petId}/photo", "/files/{name}.{ext}"}
	for _, path := range valid {
		t.Run(path, func(t *testing.T) {
			assert.NoError(t, CheckTemplate(path))
		})
	}

	invalid := map[string]string{
		"pets":                  "start with '/'",
		"/pets//{petId}":        "consecutive slashes",
		"/pets#frag":            "reserved character '#'",
		"/pets?limit=1":         "reserved character '?'",
		"/pets/{a{b}}":          "nested braces",
		"/pets/petId}":          "unexpected closing brace",
		"/pets/{petId":          "unclosed brace",
		"/pets/{}":              "empty parameter name",
		"/pets/{ }":             "empty parameter name",
		"/pets/{id}/owner/{id}": "duplicate parameter name 'id'",
	}
	for path, want := range invalid {
		t.Run(path, func(t *testing.T) {
			err := CheckTemplate(path)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
