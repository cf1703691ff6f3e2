package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glpipe/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 1000, cfg.Window.Height)
	assert.Equal(t, config.BackendGLFW, cfg.Window.Backend)
	assert.Equal(t, 4, cfg.GL.Major)
	assert.Equal(t, 1, cfg.GL.Minor)
	assert.True(t, cfg.GL.Core)
	assert.Equal(t, config.SceneShapes, cfg.Frame.Scene)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.Frame.ClearColor)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
[window]
backend = "sdl"
width = 640

[frame]
scene = "clear"
clear_color = [0.2, 0.3, 0.3, 1.0]
max_frames = 10

[log]
level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, config.BackendSDL, cfg.Window.Backend)
	assert.Equal(t, 640, cfg.Window.Width)
	// Keys not in the file keep their defaults.
	assert.Equal(t, 1000, cfg.Window.Height)
	assert.Equal(t, "triangle", cfg.Window.Title)
	assert.Equal(t, config.SceneClear, cfg.Frame.Scene)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, cfg.Frame.ClearColor)
	assert.Equal(t, uint64(10), cfg.Frame.MaxFrames)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("[window]\nfullscreen = true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestParse_Syntax(t *testing.T) {
	_, err := config.Parse([]byte("[window\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"zero width", func(c *config.Config) { c.Window.Width = 0 }, "must be positive"},
		{"backend", func(c *config.Config) { c.Window.Backend = "wayland" }, "unknown window backend"},
		{"old GL", func(c *config.Config) { c.GL.Major, c.GL.Minor = 3, 2 }, "below 3.3"},
		{"scene", func(c *config.Config) { c.Frame.Scene = "cube" }, "unknown scene"},
		{"clear color", func(c *config.Config) { c.Frame.ClearColor[2] = 1.5 }, "clear_color[2]"},
		{"log level", func(c *config.Config) { c.Log.Level = "loud" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Height = -1
	cfg.Frame.Scene = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
	assert.Contains(t, err.Error(), "unknown scene")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glpipe.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nvsync = false\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Window.VSync)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glpipe.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gl]\nmajor = 2\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_ExampleFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "example", "glpipe.toml"))
	require.NoError(t, err)
	assert.True(t, cfg.Frame.CheckErrors)

	want := config.Default()
	want.Frame.CheckErrors = true
	assert.Equal(t, want, cfg)
}
