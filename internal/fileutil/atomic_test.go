package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "results.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("## Lane 1: no game ##\n"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## Lane 1: no game ##\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
	assert.Equal(t, "results.txt", entries[0].Name())
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFileAtomicCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "nested", "results.txt")
	require.NoError(t, WriteFileAtomic(path, []byte("data"), 0o644))
	assert.FileExists(t, path)
}

func TestWriteFileAtomicParentIsFile(t *testing.T) {
	t.Parallel()

	parent := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(parent, nil, 0o644))

	err := WriteFileAtomic(filepath.Join(parent, "results.txt"), []byte("data"), 0o644)
	assert.ErrorContains(t, err, "failed to create directory")
}
