package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glpipe"
	"github.com/go-theft-auto/glpipe/config"
)

// Window adapts a GLFW window to glpipe.Window. GLFW callbacks only queue
// events; PollEvents hands them to the frame loop in arrival order.
//
// GLFW must run on the main thread: lock it with runtime.LockOSThread
// before calling OpenWindow.
type Window struct {
	window *glfw.Window
	events []glpipe.Event
	quit   bool
}

var _ glpipe.Window = (*Window)(nil)

// OpenWindow initializes GLFW, creates a window with the requested context
// version and profile and makes its context current.
func OpenWindow(wc config.Window, gc config.GL) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, gc.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, gc.Minor)
	if gc.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if gc.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if wc.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if wc.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: win}
	win.SetCloseCallback(w.closeCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetKeyCallback(w.keyCallback)

	return w, nil
}

// PollEvents processes pending GLFW events and drains the queue.
func (w *Window) PollEvents() []glpipe.Event {
	glfw.PollEvents()
	if w.window.ShouldClose() {
		w.queueQuit()
	}
	events := w.events
	w.events = nil
	return events
}

// SwapBuffers presents the back buffer, waiting for vsync when enabled.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}

func (w *Window) queueQuit() {
	if w.quit {
		return
	}
	w.quit = true
	w.events = append(w.events, glpipe.Event{Kind: glpipe.EventQuit})
}

func (w *Window) closeCallback(win *glfw.Window) {
	w.queueQuit()
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	w.events = append(w.events, glpipe.Event{Kind: glpipe.EventResize, Width: width, Height: height})
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
		w.queueQuit()
	}
}
