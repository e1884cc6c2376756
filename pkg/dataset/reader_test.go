package dataset

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeGzipFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestOpenPlainFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.tsv", "hello\nworld\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(data))
}

func TestOpenGzipFile(t *testing.T) {
	path := writeGzipFile(t, t.TempDir(), "data.tsv.gz", "hello\nworld\n")

	r, err := Open(path)
	require.NoError(t, err)

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(data))
	require.NoError(t, r.Close())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.tsv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenCorruptGzip(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.tsv.gz", "this is not gzip data")

	_, err := Open(path)
	require.Error(t, err)
}
