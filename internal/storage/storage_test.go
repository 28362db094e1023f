package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// In-memory filesystem, no disk I/O.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "content/dir/content.yaml"
	fileContent := "version: \"1\"\n"

	t.Run("Save", func(t *testing.T) {
		bytesWritten, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))

		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Get", func(t *testing.T) {
		file, err := store.Get(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, filePath)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "content/dir")
		require.NoError(t, err)
		assert.False(t, ok, "directories are not content files")

		ok, err = store.Exists(ctx, "missing.yaml")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Get missing file", func(t *testing.T) {
		_, err := store.Get(ctx, "missing.yaml")
		assert.Error(t, err)
	})
}

func TestReadOnlyStore(t *testing.T) {
	ctx := context.Background()
	store := NewReadOnlyStore(fstest.MapFS{
		"data/content.yaml": &fstest.MapFile{Data: []byte("hello")},
	})

	file, err := store.Get(ctx, "data/content.yaml")
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = store.Save(ctx, "data/other.yaml", strings.NewReader("nope"))
	assert.Error(t, err, "read-only stores reject writes")
}
