package glpipe

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Context is the single binding context of a GL context. The driver keeps
// its binding points as global mutable state; Context mirrors that state so
// each resource operation can check its binding preconditions.
//
// This is NOT context.Context. A Context must only be used from the thread
// that owns the GL context.
type Context struct {
	drv Driver
	log *slog.Logger

	maxAttribs uint32

	program ProgramID
	array   BufferID
	layout  VertexArrayID

	// The element binding is vertex array state: each layout (and the
	// zero layout) remembers its own element buffer.
	elements map[VertexArrayID]BufferID

	clearColor mgl32.Vec4
	depthTest  bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLogger sets the logger used for resource lifecycle messages. A nil
// logger keeps the default.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext wraps a driver whose GL context is current on the calling thread.
func NewContext(drv Driver, opts ...ContextOption) *Context {
	c := &Context{
		drv:      drv,
		log:      defaultLogger,
		elements: make(map[VertexArrayID]BufferID),
	}
	for _, opt := range opts {
		opt(c)
	}

	if n := drv.MaxVertexAttribs(); n > 0 {
		c.maxAttribs = uint32(n)
	}
	c.log.Debug("context created", "maxVertexAttribs", c.maxAttribs)

	return c
}

// Driver returns the underlying driver.
func (c *Context) Driver() Driver { return c.drv }

// Logger returns the context logger.
func (c *Context) Logger() *slog.Logger { return c.log }

// MaxVertexAttribs returns the number of generic vertex attribute slots.
func (c *Context) MaxVertexAttribs() uint32 { return c.maxAttribs }

// ActiveProgram returns the program used by subsequent draws, or 0.
func (c *Context) ActiveProgram() ProgramID { return c.program }

// ArrayBuffer returns the buffer bound to the array target, or 0.
func (c *Context) ArrayBuffer() BufferID { return c.array }

// BoundLayout returns the bound vertex layout, or 0.
func (c *Context) BoundLayout() VertexArrayID { return c.layout }

// ElementBuffer returns the element buffer of the bound layout, or 0.
func (c *Context) ElementBuffer() BufferID { return c.elements[c.layout] }

// Bound reports whether buf is bound to target.
func (c *Context) Bound(target BufferTarget, buf BufferID) bool {
	return c.binding(target) == buf
}

func (c *Context) binding(target BufferTarget) BufferID {
	if target == TargetElementArray {
		return c.elements[c.layout]
	}
	return c.array
}

func (c *Context) bindBuffer(target BufferTarget, buf BufferID) {
	c.drv.BindBuffer(target, buf)
	if target == TargetElementArray {
		if buf == 0 {
			delete(c.elements, c.layout)
		} else {
			c.elements[c.layout] = buf
		}
		return
	}
	c.array = buf
}

func (c *Context) bindLayout(vao VertexArrayID) {
	c.drv.BindVertexArray(vao)
	c.layout = vao
}

func (c *Context) useProgram(p ProgramID) {
	c.drv.UseProgram(p)
	c.program = p
}

// forgetBuffer drops the bindings the driver resets when buf is deleted:
// the array target and the element binding of the bound layout. Other
// layouts keep referring to the deleted name.
func (c *Context) forgetBuffer(buf BufferID) {
	if c.array == buf {
		c.array = 0
	}
	if c.elements[c.layout] == buf {
		delete(c.elements, c.layout)
	}
}

func (c *Context) forgetLayout(vao VertexArrayID) {
	if c.layout == vao {
		c.layout = 0
	}
	delete(c.elements, vao)
}

func (c *Context) forgetProgram(p ProgramID) {
	if c.program == p {
		c.program = 0
	}
}

// SetClearColor sets the color used by Clear for the color plane.
func (c *Context) SetClearColor(color mgl32.Vec4) {
	c.clearColor = color
	c.drv.ClearColor(color[0], color[1], color[2], color[3])
}

// ClearColor returns the current clear color.
func (c *Context) ClearColor() mgl32.Vec4 { return c.clearColor }

// Clear clears the selected framebuffer planes.
func (c *Context) Clear(mask ClearMask) {
	c.drv.Clear(mask)
}

// Viewport sets the viewport rectangle in framebuffer pixels.
func (c *Context) Viewport(x, y, width, height int32) {
	c.drv.Viewport(x, y, width, height)
}

// SetDepthTest enables or disables depth testing. Disabled by default, so
// later draws overwrite earlier ones.
func (c *Context) SetDepthTest(enabled bool) {
	if enabled {
		c.drv.Enable(CapDepthTest)
	} else {
		c.drv.Disable(CapDepthTest)
	}
	c.depthTest = enabled
}

// DepthTest reports whether depth testing is enabled.
func (c *Context) DepthTest() bool { return c.depthTest }

// CheckError drains the driver error flag. It returns nil when no error is
// pending, otherwise the first recorded error.
func (c *Context) CheckError() error {
	var first error
	// The flag holds at most one code per error kind; bound the loop in
	// case a lost context keeps reporting.
	for i := 0; i < 8; i++ {
		code := c.drv.GetError()
		if code == NoError {
			break
		}
		if first == nil {
			first = &DriverError{Code: code}
		}
	}
	return first
}
