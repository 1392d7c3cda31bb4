package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5187", c.BaseURL)
	assert.Equal(t, ThemeAuto, c.Theme)
	assert.Contains(t, c.LogFile, "playroom.log")
}

func TestLoadFromFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "playroom")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("base_url: http://parties.example.com\ntheme: dark\n"), 0600))

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://parties.example.com", c.BaseURL)
	assert.Equal(t, ThemeDark, c.Theme)
}

func TestEnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "playroom")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("base_url: http://file.example.com\n"), 0600))

	t.Setenv("PLAYROOM_BASE_URL", "http://env.example.com")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", c.BaseURL)
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "playroom")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("theme: neon\n"), 0600))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeAuto, c.Theme)
}

func TestSaveThemeRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SaveTheme(ThemeDark))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, c.Theme)
}

func TestSaveThemeKeepsOtherSettings(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "playroom")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("base_url: http://keep.example.com\ntheme: light\n"), 0600))

	require.NoError(t, SaveTheme(ThemeDark))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://keep.example.com", c.BaseURL)
	assert.Equal(t, ThemeDark, c.Theme)
}
