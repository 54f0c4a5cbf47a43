package problem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecFor(t *testing.T) {
	tests := map[string]Codec{
		"case.txt":     CodecNone,
		"case":         CodecNone,
		"case.txt.zst": CodecZstd,
		"case.ZSTD":    CodecZstd,
		"case.txt.lz4": CodecLZ4,
		"dir.zst/case": CodecNone,
		"-":            CodecNone,
	}
	for path, want := range tests {
		assert.Equal(t, want, CodecFor(path), path)
	}
}

func TestCreateOpen_RoundTrip(t *testing.T) {
	p, err := Generate(GenerateOptions{Dims: 3, Points: 2000, Queries: 100, MaxCoord: 50, Seed: 11})
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"case.txt", "case.txt.zst", "case.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			w, err := Create(path)
			require.NoError(t, err)
			require.NoError(t, Write(w, p))
			require.NoError(t, w.Close())

			r, err := Open(path)
			require.NoError(t, err)
			got, err := Read(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, p, got)
		})
	}
}

func TestCreate_Compresses(t *testing.T) {
	p, err := Generate(GenerateOptions{Dims: 2, Points: 5000, MaxCoord: 4, Seed: 2})
	require.NoError(t, err)

	dir := t.TempDir()
	size := func(name string) int64 {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		require.NoError(t, err)
		require.NoError(t, Write(w, p))
		require.NoError(t, w.Close())
		info, err := os.Stat(path)
		require.NoError(t, err)
		return info.Size()
	}

	plain := size("plain.txt")
	assert.Less(t, size("small.zst"), plain)
	assert.Less(t, size("small.lz4"), plain)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.zst"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_NotZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zst")
	require.NoError(t, os.WriteFile(path, []byte("2 1\n1 1\n"), 0o644))

	r, err := Open(path)
	if err != nil {
		return
	}
	defer r.Close()
	_, err = io.ReadAll(r)
	assert.Error(t, err)
}
