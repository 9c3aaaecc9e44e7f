package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMethod(t *testing.T) {
	tests := []struct {
		method string
		want   string
		ok     bool
	}{
		{"GET", "get", true},
		{"Post", "post", true},
		{" trace ", "trace", true},
		{"patch", "patch", true},
		{"QUERY", "query", false},
		{"CONNECT", "connect", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, ok := NormalizeMethod(tt.method)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"default keyword", "default", true},
		{"wildcard 2XX", "2XX", true},
		{"wildcard 5XX", "5XX", true},
		{"wildcard 0XX", "0XX", false},
		{"wildcard 6XX", "6XX", false},
		{"partial wildcard 20X", "20X", false},
		{"lowercase wildcard", "2xx", false},
		{"valid 100", "100", true},
		{"valid 200", "200", true},
		{"valid 418", "418", true},
		{"valid 599", "599", true},
		{"below range", "099", false},
		{"above range", "600", false},
		{"extension", "x-200", false},
		{"too short", "20", false},
		{"too long", "2000", false},
		{"empty", "", false},
		{"alphanumeric", "2a0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStatusCode(tt.code))
		})
	}
}

func TestIsStandardStatusCode(t *testing.T) {
	for _, code := range []string{"200", "201", "204", "301", "404", "418", "429", "500", "503"} {
		assert.True(t, IsStandardStatusCode(code), code)
	}
	for _, code := range []string{"299", "499", "599", "default", "2XX", ""} {
		assert.False(t, IsStandardStatusCode(code), code)
	}
}

func TestIsValidMediaType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		expected  bool
	}{
		{"universal wildcard", "*/*", true},
		{"type wildcard", "application/*", true},
		{"subtype wildcard", "*/json", false},
		{"json", "application/json", true},
		{"with charset", "text/plain; charset=utf-8", true},
		{"vendor", "application/vnd.api+json", true},
		{"uppercase", "APPLICATION/JSON", true},
		{"missing subtype", "application/", false},
		{"missing type", "/json", false},
		{"no slash", "applicationjson", false},
		{"multiple slashes", "application/json/extra", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidMediaType(tt.mediaType))
		})
	}
}
