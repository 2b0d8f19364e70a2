package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*DiskStore, string) {
	t.Helper()
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store, err := NewDiskStore(dir, logger)
	require.NoError(t, err)
	return store, dir
}

func TestDiskStore_Store(t *testing.T) {
	t.Run("writes file and returns URL reference", func(t *testing.T) {
		store, dir := newTestStore(t)

		ref, err := store.Store([]byte("image-bytes"), "cola.png")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/cola.png", ref)

		data, err := os.ReadFile(filepath.Join(dir, "cola.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
	})

	t.Run("empty suggested name gets a generated one", func(t *testing.T) {
		store, dir := newTestStore(t)

		ref, err := store.Store([]byte("x"), "")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(ref, "/uploads/upload-"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("path components are stripped", func(t *testing.T) {
		store, dir := newTestStore(t)

		ref, err := store.Store([]byte("x"), "../../etc/passwd")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/passwd", ref)

		_, err = os.Stat(filepath.Join(dir, "passwd"))
		require.NoError(t, err)
	})

	t.Run("spaces become underscores", func(t *testing.T) {
		store, _ := newTestStore(t)

		ref, err := store.Store([]byte("x"), "my product photo.jpg")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/my_product_photo.jpg", ref)
	})

	t.Run("identical names overwrite", func(t *testing.T) {
		store, dir := newTestStore(t)

		_, err := store.Store([]byte("first"), "cola.png")
		require.NoError(t, err)
		_, err = store.Store([]byte("second"), "cola.png")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "cola.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"cola.png":          "cola.png",
		" cola.png ":        "cola.png",
		"../../etc/passwd":  "passwd",
		"weird*name?.png":   "weirdname.png",
		"..":                "",
		".hidden":           "hidden",
		"продукт.png":       "png",
		"my photo (1).jpeg": "my_photo_1.jpeg",
	}
	for input, want := range cases {
		assert.Equal(t, want, sanitizeFilename(input), "input %q", input)
	}
}
