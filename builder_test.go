package hdrscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clarete/hdrscan/sdk"
	"github.com/clarete/hdrscan/version"
)

func TestBuilderAddFromCppPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.h")
	require.NoError(t, os.WriteFile(path, []byte("#define MAX_PATH 260\n"), 0o644))

	b := NewBuilder()
	require.NoError(t, b.AddFromCppPath(path))

	root := b.Finish()
	c, ok := root.Constants().Get("MAX_PATH")
	require.True(t, ok)
	require.Equal(t, "260", c.Value)
	require.Equal(t, path, c.DefinedAt[0].Path())
}

func TestBuilderAddFromCppPathEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.h")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	b := NewBuilder()
	require.NoError(t, b.AddFromCppPath(path))
}

func TestBuilderAddFromDirFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.h"), []byte("#define A 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hpp"), []byte("#define B 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.cpp"), []byte("#define C 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not a header"), 0o644))

	b := NewBuilder()
	require.NoError(t, b.AddFromDir(dir))

	root := b.Finish()
	_, ok := root.Constants().Get("A")
	require.True(t, ok)
	_, ok = root.Constants().Get("B")
	require.True(t, ok)
	_, ok = root.Constants().Get("C")
	require.False(t, ok)
}

func TestBuilderAddFromSDKForceAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "um"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "um", "custom.h"), []byte("#define CUSTOM 1\n"), 0o644))

	v, err := version.Parse("10.0.19041.0")
	require.NoError(t, err)
	kit := sdk.WindowsKit{Version: v, Include: dir}

	b := NewBuilder()
	require.NoError(t, b.AddFromSDK(kit, true))

	root := b.Finish()
	_, ok := root.Constants().Get("CUSTOM")
	require.True(t, ok)
}

func TestBuilderAddFromSDKCuratedSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "um"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "um", "windows.h"), []byte("#define FROM_CURATED 1\n"), 0o644))

	v, err := version.Parse("10.0.19041.0")
	require.NoError(t, err)
	kit := sdk.WindowsKit{Version: v, Include: dir}

	b := NewBuilder()
	require.NoError(t, b.AddFromSDK(kit, false))

	root := b.Finish()
	_, ok := root.Constants().Get("FROM_CURATED")
	require.True(t, ok)
}
