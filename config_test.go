package shapes

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultModelSource, cfg.ModelSource)
	assert.Equal(t, 1000, cfg.StarCount)
	assert.Equal(t, float32(45), cfg.FOV)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Window.Width = 0 },
		"no model":       func(c *Config) { c.ModelSource = "" },
		"negative stars": func(c *Config) { c.StarCount = -1 },
		"flat extent":    func(c *Config) { c.StarExtent = 0 },
		"fov":            func(c *Config) { c.FOV = 180 },
		"near past far":  func(c *Config) { c.Near, c.Far = 10, 1 },
		"fps":            func(c *Config) { c.FPS = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "shapes.toml", `
model_source = "teapot.obj"
star_count = 250
spacing = 0.0

[window]
width = 640
height = 480
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "teapot.obj", cfg.ModelSource)
	assert.Equal(t, 250, cfg.StarCount)
	assert.Equal(t, float32(0), cfg.Spacing)
	assert.Equal(t, 640, cfg.Window.Width)
	// unset keys keep their defaults
	assert.Equal(t, "Shapes", cfg.Window.Title)
	assert.Equal(t, float32(10), cfg.StarExtent)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "shapes.yaml", `
window:
  title: Demo
seed: 7
pointer_frequency: 5.5
debug: true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 5.5, cfg.PointerFrequency)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "bad.toml", "stars = 5\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yml", "stars: 5\n"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml", "empty.yml"} {
		cfg, err := LoadConfig(writeFile(t, name, ""))
		require.NoError(t, err, name)
		assert.Equal(t, DefaultConfig(), cfg, name)
	}

	cfg, err := LoadConfig(writeFile(t, "comments.yaml", "# nothing set\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigUnknownFormat(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "shapes.json", "{}"))
	assert.ErrorIs(t, err, ErrUnknownConfigFormat)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("shapes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "shapes.toml", `
star_count = 250
seed = 3

[window]
width = 640
`)
	cfg, err := ParseFlags(newFlagSet(), []string{"-config", path, "-stars", "50", "-debug"})
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.StarCount, "explicit flag wins over the file")
	assert.Equal(t, int64(3), cfg.Seed, "file wins over flag defaults")
	assert.Equal(t, 640, cfg.Window.Width)
	assert.True(t, cfg.Debug)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := ParseFlags(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)

	_, err = ParseFlags(newFlagSet(), []string{"-width", "0"})
	assert.Error(t, err)

	_, err = ParseFlags(newFlagSet(), []string{"-config", writeFile(t, "shapes.ini", "")})
	assert.ErrorIs(t, err, ErrUnknownConfigFormat)
}
