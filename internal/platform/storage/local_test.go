package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalStore(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads", "vehicles")

		_, err := NewLocalStore(dir, "http://localhost:8080")

		require.NoError(t, err)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		_, err := NewLocalStore("  ", "http://localhost:8080")
		assert.Error(t, err)
	})
}

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080")
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Put(ctx, "42_bike.jpg", strings.NewReader("image bytes"), 11, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "42_bike.jpg", ref, "stored reference is the bare name")

	content, err := os.ReadFile(filepath.Join(dir, "42_bike.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, "42_bike.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_Put_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080")
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "../../escape.jpg", strings.NewReader("x"), 1, "")
	require.NoError(t, err)
	assert.Equal(t, "escape.jpg", ref)

	_, err = os.Stat(filepath.Join(dir, "escape.jpg"))
	assert.NoError(t, err, "file must land inside the upload directory")
}

func TestLocalStore_Delete_MissingFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-existed.jpg"))
}

func TestLocalStore_PublicURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)

	url := store.PublicURL("42_bike.jpg")

	assert.Equal(t, "http://localhost:8080/static/uploads/vehicles/42_bike.jpg", url,
		"trailing slash on the base URL must not double up")
}
