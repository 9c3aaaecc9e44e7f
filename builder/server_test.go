package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1ean267/nexustack-sub001/oaserrors"
	"github.com/1ean267/nexustack-sub001/openapi"
)

func TestAddServer_Variables(t *testing.T) {
	doc, err := newBuilder(openapi.Version31).
		AddServer("https://{region}.example.com/{basePath}",
			WithServerDescription("regional"),
			WithServerVariable("region", "eu", WithServerVariableEnum("eu", "us"), WithServerVariableDescription("data center")),
			WithServerVariable("basePath", "v1"),
		).
		Build()
	require.NoError(t, err)
	require.Len(t, doc.Servers, 1)

	s := doc.Servers[0]
	assert.Equal(t, "regional", s.Description)
	require.Contains(t, s.Variables, "region")
	assert.Equal(t, &openapi.ServerVariable{Default: "eu", Enum: []string{"eu", "us"}, Description: "data center"}, s.Variables["region"])
	assert.Equal(t, "v1", s.Variables["basePath"].Default)
}

func TestAddServer_InvalidVariables(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		opts    []ServerOption
		field   string
		message string
	}{
		{
			name:    "undeclared placeholder",
			url:     "https://{region}.example.com",
			field:   "Variables",
			message: "placeholder {region} has no variable",
		},
		{
			name:    "unused variable",
			url:     "https://example.com",
			opts:    []ServerOption{WithServerVariable("region", "eu")},
			field:   "Variables.region",
			message: "variable is not used in the URL",
		},
		{
			name:    "default outside enum",
			url:     "https://{region}.example.com",
			opts:    []ServerOption{WithServerVariable("region", "ap", WithServerVariableEnum("eu", "us"))},
			field:   "Variables.region.Default",
			message: `default "ap" is not one of eu, us`,
		},
		{
			name:    "unbalanced braces",
			url:     "https://{region.example.com",
			field:   "URL",
			message: "unbalanced braces in URL template",
		},
		{
			name:    "empty placeholder",
			url:     "https://{}.example.com",
			field:   "URL",
			message: "unbalanced braces in URL template",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newBuilder(openapi.Version31).AddServer(tt.url, tt.opts...).Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)

			var errs BuilderErrors
			require.True(t, errors.As(err, &errs))
			require.Len(t, errs, 1)
			assert.Equal(t, ComponentServer, errs[0].Component)
			assert.Equal(t, tt.url, errs[0].Path)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestAddServer_FirstFailureWins(t *testing.T) {
	_, err := newBuilder(openapi.Version31).
		AddServer("https://{a}.example.com").
		AddServer("https://{b}.example.com").
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{a}")
	assert.NotContains(t, err.Error(), "{b}")
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		url  string
		want []string
		ok   bool
	}{
		{url: "https://example.com", ok: true},
		{url: "{scheme}://{host}:{port}/{host}", want: []string{"scheme", "host", "port"}, ok: true},
		{url: "https://example.com/}", ok: false},
		{url: "https://{a{b}}", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := placeholders(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
