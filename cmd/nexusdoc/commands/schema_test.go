package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1ean267/nexustack-sub001/oaserrors"
)

func TestSetupSchemaFlags(t *testing.T) {
	fs, flags := SetupSchemaFlags()
	require.NoError(t, fs.Parse([]string{"-version", "3.0", "-inline", "Owner"}))
	assert.Equal(t, "3.0", flags.Version)
	assert.True(t, flags.Inline)
	assert.Equal(t, "Owner", fs.Arg(0))
}

func TestHandleSchema(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HandleSchema([]string{"Payment"}, &out))

	var m map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &m))
	s, ok := m["schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Payment", s["$ref"])
	components, ok := m["components"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, components, "Payment")
}

func TestHandleSchema_Inline(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, HandleSchema([]string{"-inline", "-rename", "snake_case", "Owner"}, &out))

	var m map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &m))
	assert.NotContains(t, m, "components")
	s, ok := m["schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"name", "since"}, s["required"])
}

func TestHandleSchema_Errors(t *testing.T) {
	t.Run("no type", func(t *testing.T) {
		assert.Error(t, HandleSchema(nil, &bytes.Buffer{}))
	})

	t.Run("unknown type", func(t *testing.T) {
		err := HandleSchema([]string{"Unicorn"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
		assert.Contains(t, err.Error(), "Unicorn")
	})

	t.Run("inline recursive type", func(t *testing.T) {
		err := HandleSchema([]string{"-inline", "PetRef"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, oaserrors.ErrShape)
	})
}

func TestHandleSchema_Help(t *testing.T) {
	assert.NoError(t, HandleSchema([]string{"-h"}, &bytes.Buffer{}))
}
