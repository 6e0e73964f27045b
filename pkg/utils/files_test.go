package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func testImage() []byte {
	b := make([]byte, 0x8000)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	img := testImage()

	t.Run("raw", func(t *testing.T) {
		b, err := LoadFile(writeFile(t, "game.gb", img))
		require.NoError(t, err)
		assert.Equal(t, img, b)
	})
	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(img)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		b, err := LoadFile(writeFile(t, "game.gb.gz", buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, img, b)
	})
	t.Run("xz", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(img)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		b, err := LoadFile(writeFile(t, "game.gb.xz", buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, img, b)
	})
	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("game.gb")
		require.NoError(t, err)
		_, err = f.Write(img)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		b, err := LoadFile(writeFile(t, "game.zip", buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, img, b)
	})
	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, zip.NewWriter(&buf).Close())

		_, err := LoadFile(writeFile(t, "empty.zip", buf.Bytes()))
		assert.Error(t, err)
	})
	t.Run("corrupt gzip", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "game.gz", []byte("not gzip")))
		assert.Error(t, err)
	})
	t.Run("corrupt 7z", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "game.7z", []byte("7z\xbc\xaf\x27\x1c truncated")))
		assert.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
