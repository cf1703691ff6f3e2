package glpipe

// EventKind tags a window event.
type EventKind int

const (
	// EventQuit is a close/quit request.
	EventQuit EventKind = iota + 1
	// EventResize reports a new framebuffer size in Width and Height.
	EventResize
	// EventFatal reports a windowing failure in Err; the loop must stop.
	EventFatal
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Event is one windowing event.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	Err    error
}

// Window is the windowing collaborator of the frame loop.
type Window interface {
	// PollEvents drains all pending events without blocking.
	PollEvents() []Event
	// SwapBuffers presents the back buffer. It may block for vsync.
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
}
