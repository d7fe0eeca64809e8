package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestExpandSourcesPassthrough tests that plain paths skip the glob walk
func TestExpandSourcesPassthrough(t *testing.T) {
	sources, err := expandSources("/no/such/file.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/no/such/file.txt"}, sources)
}

// 🧪 TestExpandSourcesGlob tests pattern expansion against real files
func TestExpandSourcesGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	sources, err := expandSources(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)

	// Directories are excluded even when they match the pattern
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, sources)
}

// 🧪 TestExpandSourcesDoublestar tests recursive ** patterns
func TestExpandSourcesDoublestar(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "x", "y"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x", "y", "deep.txt"), []byte("x"), 0644))

	sources, err := expandSources(filepath.Join(dir, "**", "*.txt"))
	require.NoError(t, err)
	assert.Contains(t, sources, filepath.Join(dir, "x", "y", "deep.txt"))
}

// 🧪 TestExpandSourcesNoMatch tests that an empty match set is an error
func TestExpandSourcesNoMatch(t *testing.T) {
	dir := t.TempDir()

	_, err := expandSources(filepath.Join(dir, "*.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files match")
}
