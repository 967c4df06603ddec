package osutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.xlsx")

	require.NoError(t, WriteFileAtomic(path, []byte("one"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("two"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.True(t, IsDir(dir))
	require.False(t, IsDir(path))
	require.False(t, IsDir(filepath.Join(dir, "missing")))
}
