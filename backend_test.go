// FILE: lixenwraith/lightconfig/backend_test.go
package lightconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := NewFileBackend(fs)
	assert.Same(t, fs, b.Fs())

	t.Run("WriteAndRead", func(t *testing.T) {
		require.NoError(t, b.MkdirAll("/data"))
		require.NoError(t, b.WriteFile("/data/c.xml", []byte("one")))
		require.NoError(t, b.WriteFile("/data/c.xml", []byte("two")))

		data, err := b.ReadFile("/data/c.xml")
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))

		entries, err := afero.ReadDir(fs, "/data")
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file is renamed away")
	})

	t.Run("Probes", func(t *testing.T) {
		exists, err := b.Exists("/data/c.xml")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.True(t, b.IsRegular("/data/c.xml"))
		assert.True(t, b.Readable("/data/c.xml"))
		assert.True(t, b.Writable("/data/c.xml"))

		assert.False(t, b.IsRegular("/data"))
		assert.False(t, b.Readable("/data/missing.xml"))
		assert.False(t, b.Writable("/data/missing.xml"))
	})

	t.Run("ReadMissing", func(t *testing.T) {
		_, err := b.ReadFile("/data/missing.xml")
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, b.Remove("/data/c.xml"))
		exists, _ := b.Exists("/data/c.xml")
		assert.False(t, exists)
		assert.Error(t, b.Remove("/data/c.xml"))
	})

	t.Run("ReadOnly", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/ro.xml", []byte("x"), 0644))
		ro := NewFileBackend(afero.NewReadOnlyFs(fs))
		assert.True(t, ro.Readable("/ro.xml"))
		assert.False(t, ro.Writable("/ro.xml"))
		assert.Error(t, ro.WriteFile("/ro.xml", []byte("y")))
	})
}

// TestFileBackendOS checks the atomic write on the real filesystem
func TestFileBackendOS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os.xml")
	b := NewFileBackend(nil)

	require.NoError(t, b.WriteFile(path, []byte("content")))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
