// Example opens a window and renders one of the demo scenes until the window
// is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                              # provides Go + OpenGL/X11/SDL2 headers
//	go run ./example/                         # shapes scene with GLFW
//	go run ./example/ -config example/glpipe.toml  # settings from a TOML file
//
// A configuration file only needs the keys it changes:
//
//	[window]
//	backend = "sdl"
//
//	[frame]
//	scene = "clear"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/backend/opengl"
	"github.com/go-theft-auto/glpipe/backend/sdl2"
	"github.com/go-theft-auto/glpipe/config"
	"github.com/go-theft-auto/glpipe/demo"
)

func init() {
	// GLFW and SDL must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// window is what run needs from either backend.
type window interface {
	glpipe.Window
	Close()
}

func openWindow(cfg config.Config) (window, error) {
	switch cfg.Window.Backend {
	case config.BackendSDL:
		return sdl2.OpenWindow(cfg.Window, cfg.GL)
	default:
		return opengl.OpenWindow(cfg.Window, cfg.GL)
	}
}

func run(configPath string, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	glpipe.SetLogLevel(level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	win, err := openWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	drv, err := opengl.NewDriver()
	if err != nil {
		return err
	}
	logger.Info("gl context", "backend", cfg.Window.Backend, "version", drv.Version(), "renderer", drv.Renderer())

	ctx := glpipe.NewContext(drv, glpipe.WithLogger(logger))
	logger.Info("vertex attribute slots", "max", ctx.MaxVertexAttribs())

	scene, err := demo.Build(ctx, cfg.Frame.Scene, cfg.GL)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	defer scene.Release()

	loop := glpipe.NewFrameLoop(ctx, win,
		glpipe.WithClearColor(mgl32.Vec4(cfg.Frame.ClearColor)),
		glpipe.WithClearMask(scene.ClearMask),
		glpipe.WithDepthTest(cfg.Frame.DepthTest),
		glpipe.WithMaxFrames(cfg.Frame.MaxFrames),
		glpipe.WithErrorCheck(cfg.Frame.CheckErrors),
		glpipe.WithDrawables(scene.Drawables...),
	)
	return loop.Run()
}
