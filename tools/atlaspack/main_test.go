package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSize(t *testing.T) {
	for _, s := range []int32{64, 128, 256, 512, 1024, 2048, 4096} {
		assert.True(t, validSize(s), "size %d", s)
	}
	for _, s := range []int32{0, 63, 100, 8192, -64} {
		assert.False(t, validSize(s), "size %d", s)
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, logLevel(0))
	assert.Equal(t, logrus.InfoLevel, logLevel(1))
	assert.Equal(t, logrus.DebugLevel, logLevel(2))
	assert.Equal(t, logrus.TraceLevel, logLevel(3))
	assert.Equal(t, logrus.TraceLevel, logLevel(9))
}

func TestApplyConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
xml = true
trim = true
size = 512
pad = 2
heuristic = "BottomLeft"
`), 0666))

	o := options{size: 4096, pad: 1, heuristic: "BestShortSideFit", extension: "png"}
	require.NoError(t, applyConfig(cmdRoot.Flags(), &o, path))
	assert.True(t, o.xml)
	assert.True(t, o.trim)
	assert.False(t, o.unique)
	assert.Equal(t, int32(512), o.size)
	assert.Equal(t, int32(2), o.pad)
	assert.Equal(t, "BottomLeft", o.heuristic)
	assert.Equal(t, "png", o.extension)
}

func TestApplyConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.toml")
	require.NoError(t, os.WriteFile(path, []byte("sized = 512\n"), 0666))
	var o options
	assert.Error(t, applyConfig(cmdRoot.Flags(), &o, path))
}

func TestBuildHash(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(img, []byte("not really a png"), 0666))
	// Non-image files do not contribute.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0666))

	o := options{size: 1024, heuristic: "BestShortSideFit", extension: "png"}
	h1, err := buildHash(&o, []string{dir})
	require.NoError(t, err)
	h2, err := buildHash(&o, []string{dir})
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "hash is deterministic")

	require.NoError(t, os.WriteFile(img, []byte("different bytes"), 0666))
	h3, err := buildHash(&o, []string{dir})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "hash tracks image contents")

	o.rotate = true
	h4, err := buildHash(&o, []string{dir})
	require.NoError(t, err)
	assert.NotEqual(t, h3, h4, "hash tracks options")
}
