package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverSortsAndFilters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.h"), "")
	writeFile(t, filepath.Join(root, "a", "z.h"), "")
	writeFile(t, filepath.Join(root, "a.c"), "")
	writeFile(t, filepath.Join(root, "c.hpp"), "")

	paths, err := Discover(root, []string{".h"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "z.h"),
		filepath.Join(root, "b.h"),
	}, paths)

	paths, err = Discover(root, []string{".h", ".hpp"})
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), []string{".h"})
	require.Error(t, err)
}

func TestDiscoverNoSources(t *testing.T) {
	root := t.TempDir()
	_, err := Discover(root, []string{".h"})
	require.ErrorIs(t, err, ErrNoSources)

	writeFile(t, filepath.Join(root, "main.c"), "int main(void) { return 0; }\n")
	_, err = Discover(root, []string{".h"})
	require.ErrorIs(t, err, ErrNoSources)
	assert.Contains(t, err.Error(), root)
}

func TestParseFilesKeepsOrder(t *testing.T) {
	root := t.TempDir()
	var paths []string
	for _, name := range []string{"a.h", "b.h", "c.h", "d.h"} {
		path := filepath.Join(root, name)
		writeFile(t, path, "typedef struct { u64 x; } "+name[:1]+";\n")
		paths = append(paths, path)
	}

	sources, err := ParseFiles(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, sources, 4)
	for i, src := range sources {
		assert.Equal(t, paths[i], src.Path)
		require.Len(t, src.Result.File.Structs, 1)
		assert.Equal(t, string(rune('a'+i)), src.Result.File.Structs[0].Name)
	}
}

func TestParseFilesKeepsRecoverableErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.h")
	writeFile(t, path, "u8 a @ b;\n")

	sources, err := ParseFiles(context.Background(), []string{path}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, sources[0].Result.ScanErrors)
}

func TestParseFilesUnreadable(t *testing.T) {
	_, err := ParseFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.h")}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
