package config

import (
	"os"
	"path/filepath"
	"testing"

	"GLTutorial/harness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {

	t.Helper()

	path := filepath.Join(t.TempDir(), "gltutorial.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path

}

func TestDefault(t *testing.T) {

	c := Default()

	assert.Equal(t, harness.WindowConfig{
		Title: "OpenGL", X: 100, Y: 100, Width: 800, Height: 600,
		ContextMajor: 3, ContextMinor: 2,
		CoreProfile: true, ForwardCompatible: true,
		StencilBits: 8,
	}, c.WindowConfig())
	assert.Equal(t, "kitten.png", c.Textures.First)
	assert.Equal(t, "puppy.png", c.Textures.Second)
	assert.Equal(t, "info", c.Log.Level)

}

func TestLoadOverrides(t *testing.T) {

	path := writeConfig(t, `
window:
  title: Tutorial
  width: 1024
context:
  major: 4
  minor: 1
  forwardCompatible: false
textures:
  first: assets/a.png
log:
  level: debug
`)

	c, err := Load(path)
	require.NoError(t, err)

	w := c.WindowConfig()
	assert.Equal(t, "Tutorial", w.Title)
	assert.Equal(t, 1024, w.Width)
	assert.Equal(t, 600, w.Height)
	assert.Equal(t, 4, w.ContextMajor)
	assert.Equal(t, 1, w.ContextMinor)
	assert.True(t, w.CoreProfile)
	assert.False(t, w.ForwardCompatible)
	assert.Equal(t, "assets/a.png", c.Textures.First)
	assert.Equal(t, "puppy.png", c.Textures.Second)
	assert.Equal(t, "debug", c.Log.Level)

}

func TestLoadWindowAtOrigin(t *testing.T) {

	path := writeConfig(t, "window:\n  x: 0\n  y: 0\n")

	c, err := Load(path)
	require.NoError(t, err)

	w := c.WindowConfig()
	assert.Zero(t, w.X)
	assert.Zero(t, w.Y)

}

func TestLoadMinorOnly(t *testing.T) {

	path := writeConfig(t, "context:\n  minor: 3\n")

	c, err := Load(path)
	require.NoError(t, err)

	w := c.WindowConfig()
	assert.Equal(t, 3, w.ContextMajor)
	assert.Equal(t, 3, w.ContextMinor)

}

func TestLoadMajorOnly(t *testing.T) {

	path := writeConfig(t, "context:\n  major: 4\n")

	c, err := Load(path)
	require.NoError(t, err)

	w := c.WindowConfig()
	assert.Equal(t, 4, w.ContextMajor)
	assert.Equal(t, 0, w.ContextMinor)

}

func TestLoadRejectsOldContext(t *testing.T) {

	path := writeConfig(t, "context:\n  major: 2\n  minor: 1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2.1")

}

func TestLoadBadYAML(t *testing.T) {

	path := writeConfig(t, "window: [")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")

}

func TestLoadMissing(t *testing.T) {

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

}
