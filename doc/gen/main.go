// Command gen renders one frame of every demo scene in a hidden window,
// reads the framebuffer back and saves PNG snapshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/backend/opengl"
	"github.com/go-theft-auto/glpipe/config"
	"github.com/go-theft-auto/glpipe/demo"
)

const (
	width  = 400
	height = 400
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	cfg.Window.Title = "snapshot-gen"
	cfg.Window.Width, cfg.Window.Height = width, height
	cfg.Window.Resizable = false
	cfg.Window.VSync = false
	// Only the framebuffer is read.
	cfg.Window.Hidden = true

	win, err := opengl.OpenWindow(cfg.Window, cfg.GL)
	if err != nil {
		return err
	}
	defer win.Close()

	drv, err := opengl.NewDriver()
	if err != nil {
		return err
	}
	ctx := glpipe.NewContext(drv)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, name := range []string{config.SceneShapes, config.SceneClear} {
		if err := capture(ctx, win, cfg, name, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		fmt.Printf("  %s.png (%dx%d)\n", name, width, height)
	}
	return nil
}

func capture(ctx *glpipe.Context, win *opengl.Window, cfg config.Config, name, outDir string) error {
	scene, err := demo.Build(ctx, name, cfg.GL)
	if err != nil {
		return err
	}
	defer scene.Release()

	// Render into the back buffer without presenting, so the read sees the
	// frame just drawn.
	back := &backBuffer{win: win}
	loop := glpipe.NewFrameLoop(ctx, back,
		glpipe.WithClearMask(scene.ClearMask|glpipe.ClearColor),
		glpipe.WithClearColor([4]float32{0.12, 0.12, 0.14, 1}),
		glpipe.WithDrawables(scene.Drawables...),
		glpipe.WithErrorCheck(true),
		glpipe.WithMaxFrames(1),
	)
	if err := loop.Run(); err != nil {
		return err
	}

	img := ctx.Snapshot(width, height)
	f, err := os.Create(filepath.Join(outDir, name+".png"))
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// backBuffer forwards events of the real window but never presents.
type backBuffer struct {
	win *opengl.Window
}

func (b *backBuffer) PollEvents() []glpipe.Event { return b.win.PollEvents() }

func (b *backBuffer) SwapBuffers() {}

func (b *backBuffer) FramebufferSize() (int, int) { return b.win.FramebufferSize() }
