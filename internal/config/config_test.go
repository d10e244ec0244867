package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/copycolors/internal/canvas"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.Equal(t, canvas.DefaultLayout(), Default().Canvas.Layout())
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cc.yaml")
	data := `
display:
  canvas: true
  rgb: true
canvas:
  decimal_square: 9
serve:
  idle_timeout: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Display.Canvas)
	assert.True(t, cfg.Display.RGB)
	assert.False(t, cfg.Display.Clip)
	assert.Equal(t, 9, cfg.Canvas.DecimalSquare)
	assert.Equal(t, 4, cfg.Canvas.HexSquare, "unset keys keep their defaults")
	assert.Equal(t, 5*time.Minute, cfg.Serve.IdleTimeout)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("canvas: [1, 2"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("canvas:\n  hex_square: 0\n"), 0o600))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "hex_square")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".copycolors")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Canvas.RowSpacing = 0
	cfg.Canvas.ColSpacing = -1
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "row_spacing")
	assert.ErrorContains(t, err, "col_spacing")
	assert.ErrorContains(t, err, "log.level")
}

func TestValidateAllowsTouchingColumns(t *testing.T) {
	cfg := Default()
	cfg.Canvas.ColSpacing = 0
	assert.NoError(t, cfg.Validate())

	cfg.Canvas.RowSpacing = 1
	assert.NoError(t, cfg.Validate())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.copycolors/palettes.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".copycolors", "palettes.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
