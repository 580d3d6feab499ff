package glyph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedoc-inc/nearmiss/types"
)

func TestBuiltin(t *testing.T) {
	r, err := Builtin()
	require.NoError(t, err)

	on, off := r.Resolve(true), r.Resolve(false)
	require.NotNil(t, on)
	require.NotNil(t, off)
	assert.NotEqual(t, on.Data, off.Data)
	assert.Same(t, on, r.Resolve(true), "resolution is stable")
	assert.Equal(t, boxPixels, on.PixelWidth)

	box := r.Box(false)
	assert.Equal(t, float64(Size), box.Width)
	assert.Equal(t, float64(Size), box.Height)
	assert.Same(t, off, box.Src)

	assert.Equal(t, 1, r.Blank().PixelWidth)

	again, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, on.Data, again.Resolve(true).Data, "built-in glyphs are deterministic")
}

func writeAssets(t *testing.T, dir string, names ...string) {
	t.Helper()
	r, err := Builtin()
	require.NoError(t, err)
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), r.Resolve(true).Data, 0o644))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir, CheckedFile, UncheckedFile, BlankFile)

	r, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, UncheckedFile), r.Resolve(false).Key)
	assert.Equal(t, filepath.Join(dir, BlankFile), r.Blank().Key)
}

func TestLoad_MissingResource(t *testing.T) {
	dir := t.TempDir()
	writeAssets(t, dir, CheckedFile, BlankFile)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, types.IsConfigurationError(err))
	rErr, ok := types.AsReportError(err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, UncheckedFile), rErr.Path())
}

func TestNew_EmptyDirUsesBuiltin(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "glyph:"+CheckedFile, r.Resolve(true).Key)
}
