// Package config loads the runtime configuration from TOML.
//
// Values missing from the file keep their defaults, which reproduce the
// triangle demo: a 1000x1000 resizable window, an OpenGL 4.1 core
// context, black clear color and vsync.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Backend names.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// Scene names.
const (
	SceneShapes = "shapes"
	SceneClear  = "clear"
)

type Config struct {
	Window Window `toml:"window"`
	GL     GL     `toml:"gl"`
	Frame  Frame  `toml:"frame"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
	Hidden    bool   `toml:"hidden"`
	Backend   string `toml:"backend"`
}

// GL is the requested context version and profile.
type GL struct {
	Major             int  `toml:"major"`
	Minor             int  `toml:"minor"`
	Core              bool `toml:"core"`
	ForwardCompatible bool `toml:"forward_compatible"`
}

type Frame struct {
	Scene       string     `toml:"scene"`
	ClearColor  [4]float32 `toml:"clear_color"`
	DepthTest   bool       `toml:"depth_test"`
	MaxFrames   uint64     `toml:"max_frames"`
	CheckErrors bool       `toml:"check_errors"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "triangle",
			Width:     1000,
			Height:    1000,
			Resizable: true,
			VSync:     true,
			Backend:   BackendGLFW,
		},
		GL: GL{
			Major:             4,
			Minor:             1,
			Core:              true,
			ForwardCompatible: true,
		},
		Frame: Frame{
			Scene:      SceneShapes,
			ClearColor: [4]float32{0, 0, 0, 1},
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("decode config at %d:%d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Window.Backend {
	case BackendGLFW, BackendSDL:
	default:
		errs = append(errs, fmt.Errorf("unknown window backend %q", c.Window.Backend))
	}
	// The driver binds the 4.1 core entry points.
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) || c.GL.Minor < 0 {
		errs = append(errs, fmt.Errorf("GL version %d.%d is below 3.3", c.GL.Major, c.GL.Minor))
	}
	switch c.Frame.Scene {
	case SceneShapes, SceneClear:
	default:
		errs = append(errs, fmt.Errorf("unknown scene %q", c.Frame.Scene))
	}
	for i, v := range c.Frame.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %g is outside [0, 1]", i, v))
		}
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return l, nil
}
