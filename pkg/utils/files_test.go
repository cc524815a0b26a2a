package utils

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	payload := []byte{0x00, 0xC3, 0x50, 0x01}
	dir := t.TempDir()

	t.Run("plain", func(t *testing.T) {
		name := filepath.Join(dir, "rom.gb")
		require.NoError(t, os.WriteFile(name, payload, 0o644))

		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("gzip", func(t *testing.T) {
		name := filepath.Join(dir, "rom.gb.gz")
		f, err := os.Create(name)
		require.NoError(t, err)
		w := gzip.NewWriter(f)
		_, err = w.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, f.Close())

		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("zip", func(t *testing.T) {
		name := filepath.Join(dir, "rom.zip")
		f, err := os.Create(name)
		require.NoError(t, err)
		w := zip.NewWriter(f)
		entry, err := w.Create("rom.gb")
		require.NoError(t, err)
		_, err = entry.Write(payload)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, f.Close())

		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.gb"))
		assert.Error(t, err)
	})
}
