// Package sdl2 provides an SDL2 window for the glpipe package. The GL
// driver is the same go-gl driver as with GLFW (backend/opengl).
package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/config"
)

// Window adapts an SDL2 window with a GL context to glpipe.Window.
// SDL must be used from the main thread.
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

var _ glpipe.Window = (*Window)(nil)

type glAttr struct {
	attr  sdl.GLattr
	value int
}

// OpenWindow initializes SDL video, creates a window and a GL context with
// the requested version and profile, and makes it current.
func OpenWindow(wc config.Window, gc config.GL) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	attrs := []glAttr{
		{sdl.GL_CONTEXT_MAJOR_VERSION, gc.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, gc.Minor},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	if gc.Core {
		attrs = append(attrs, glAttr{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE})
	}
	if gc.ForwardCompatible {
		attrs = append(attrs, glAttr{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl gl attribute %d: %w", a.attr, err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL)
	if wc.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}
	if wc.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	win, err := sdl.CreateWindow(wc.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(wc.Width), int32(wc.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create gl context: %w", err)
	}

	interval := 0
	if wc.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		// Not every driver allows changing the swap interval.
		slog.Warn("sdl swap interval not applied", "interval", interval, "err", err)
	}

	return &Window{window: win, context: ctx}, nil
}

// PollEvents drains the SDL event queue.
func (w *Window) PollEvents() []glpipe.Event {
	var events []glpipe.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, glpipe.Event{Kind: glpipe.EventQuit})
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				width, height := w.FramebufferSize()
				events = append(events, glpipe.Event{Kind: glpipe.EventResize, Width: width, Height: height})
			case sdl.WINDOWEVENT_CLOSE:
				events = append(events, glpipe.Event{Kind: glpipe.EventQuit})
			}
		}
	}
	return events
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.GLSwap()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

// Close deletes the GL context, destroys the window and shuts SDL down.
func (w *Window) Close() {
	if w.window == nil {
		return
	}
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
	w.window = nil
	sdl.Quit()
}
