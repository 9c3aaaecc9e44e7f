package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ToMap(t *testing.T) {
	doc := &Document{
		Info: &Info{
			Title:   "Pets",
			Version: "1.0.0",
			License: &License{Name: "Apache 2.0", Identifier: "Apache-2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0"},
		},
		Paths: Paths{
			"/pets": {
				Get: &Operation{
					OperationID: "listPets",
					Parameters:  []*Parameter{{Name: "limit", In: InQuery, Schema: &Schema{Types: []string{"integer"}, Nullable: true}}},
					Responses:   Responses{"200": {Description: "ok"}},
				},
			},
		},
		Components: &Components{},
	}

	t.Run("3.0", func(t *testing.T) {
		doc.Version = Version30
		m := doc.ToMap()
		assert.Equal(t, "3.0.3", m["openapi"])
		assert.NotContains(t, m, "jsonSchemaDialect")
		assert.NotContains(t, m, "components", "empty components are omitted")

		license := m["info"].(map[string]any)["license"].(map[string]any)
		assert.NotContains(t, license, "identifier")
		assert.Equal(t, "https://www.apache.org/licenses/LICENSE-2.0", license["url"])

		get := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)
		param := get["parameters"].([]any)[0].(map[string]any)
		assert.Equal(t, "query", param["in"])
		assert.Equal(t, map[string]any{"type": "integer", "nullable": true}, param["schema"])
	})

	t.Run("3.1", func(t *testing.T) {
		doc.Version = Version31
		m := doc.ToMap()
		assert.Equal(t, "3.1.0", m["openapi"])
		assert.Equal(t, DefaultJSONSchemaDialect, m["jsonSchemaDialect"])

		license := m["info"].(map[string]any)["license"].(map[string]any)
		assert.Equal(t, "Apache-2.0", license["identifier"])

		get := m["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)
		param := get["parameters"].([]any)[0].(map[string]any)
		assert.Equal(t, map[string]any{"type": []string{"integer", "null"}}, param["schema"])
	})
}

func TestDocument_ToMap_EmptyPaths(t *testing.T) {
	m := (&Document{Version: Version30, Info: &Info{Title: "x", Version: "1"}}).ToMap()
	assert.Equal(t, map[string]any{}, m["paths"])
}

func TestPathItem_Slot(t *testing.T) {
	item := &PathItem{}
	for _, method := range []string{"GET", "put", "Post", "delete", "options", "head", "patch", "trace"} {
		slot, ok := item.Slot(method)
		require.True(t, ok, method)
		*slot = &Operation{OperationID: method}
	}
	_, ok := item.Slot("CONNECT")
	assert.False(t, ok)

	ops := item.Operations()
	assert.Len(t, ops, 8)
	assert.Equal(t, "GET", ops["get"].OperationID)
	assert.Equal(t, "Post", ops["post"].OperationID)
}
