package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	assert.Equal(t, "Status: 42 items, true active", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "This will fail")
	})
}

func TestWriteOutput_Stdout(t *testing.T) {
	for _, path := range []string{"", StdoutPath} {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput(&buf, path, []byte(`{"a":1}`)))
		assert.Equal(t, "{\"a\":1}\n", buf.String())
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, "", []byte("a: 1\n")))
	assert.Equal(t, "a: 1\n", buf.String(), "no second newline")
}

func TestWriteOutput_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.json")

	require.NoError(t, WriteOutput(nil, path, []byte("{}")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteOutput_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))
	link := filepath.Join(dir, "link.json")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	err := WriteOutput(nil, link, []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}
