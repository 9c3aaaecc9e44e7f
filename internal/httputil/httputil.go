// Package httputil validates the HTTP vocabulary of operations: methods,
// response status keys and media types.
package httputil

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// Path item method slots, lowercase as they appear in documents.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists every method with a path item slot, in document order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// Status code bounds.
const (
	MinStatusCode = 100
	MaxStatusCode = 599
)

// DefaultStatus is the response key matching every undeclared status.
const DefaultStatus = "default"

// NormalizeMethod lowercases method and reports whether it has a slot.
func NormalizeMethod(method string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(method))
	for _, known := range Methods {
		if m == known {
			return m, true
		}
	}
	return m, false
}

// ValidateStatusCode reports whether code is a valid response key:
// "default", a range such as "2XX", or a number from 100 to 599.
func ValidateStatusCode(code string) bool {
	if code == DefaultStatus {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}
	if !IsNumericStatusCode(code) {
		return false
	}
	n, _ := strconv.Atoi(code)
	return n >= MinStatusCode && n <= MaxStatusCode
}

// IsNumericStatusCode reports whether code consists of three digits.
func IsNumericStatusCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// IsStandardStatusCode reports whether code is a status known to net/http.
func IsStandardStatusCode(code string) bool {
	if !IsNumericStatusCode(code) {
		return false
	}
	n, _ := strconv.Atoi(code)
	return http.StatusText(n) != ""
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and rejects a wildcard type with a
// concrete subtype.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if strings.HasPrefix(mediaType, "*/") {
		return false
	}
	if strings.HasSuffix(mediaType, "/*") {
		parts := strings.Split(mediaType, "/")
		return len(parts) == 2 && parts[0] != ""
	}
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil && strings.Contains(mediaType, "/")
}
