package glpipe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// LoopState is the state of a FrameLoop.
type LoopState int

const (
	Running LoopState = iota
	Terminated
)

func (s LoopState) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// FrameLoop drives one window: each iteration drains events, clears,
// draws every drawable in declaration order and presents.
type FrameLoop struct {
	ctx    *Context
	window Window
	log    *slog.Logger

	clearColor mgl32.Vec4
	clearMask  ClearMask
	depthTest  bool
	drawables  []*Drawable
	maxFrames  uint64
	checkErr   bool

	state  LoopState
	frames uint64
}

// LoopOption configures a FrameLoop.
type LoopOption func(*FrameLoop)

// WithClearColor sets the clear color. Default is opaque black.
func WithClearColor(c mgl32.Vec4) LoopOption {
	return func(l *FrameLoop) { l.clearColor = c }
}

// WithClearMask sets the planes cleared each frame. Default is ClearColor.
func WithClearMask(m ClearMask) LoopOption {
	return func(l *FrameLoop) { l.clearMask = m }
}

// WithDepthTest enables depth testing for the loop.
func WithDepthTest(enabled bool) LoopOption {
	return func(l *FrameLoop) { l.depthTest = enabled }
}

// WithDrawables appends drawables, drawn in the order given.
func WithDrawables(ds ...*Drawable) LoopOption {
	return func(l *FrameLoop) { l.drawables = append(l.drawables, ds...) }
}

// WithMaxFrames stops the loop after n presented frames. Zero means no limit.
func WithMaxFrames(n uint64) LoopOption {
	return func(l *FrameLoop) { l.maxFrames = n }
}

// WithErrorCheck drains the driver error flag after every frame and stops
// the loop on the first error.
func WithErrorCheck(enabled bool) LoopOption {
	return func(l *FrameLoop) { l.checkErr = enabled }
}

// WithLoopLogger sets the loop logger. Defaults to the context logger; nil
// keeps the default.
func WithLoopLogger(log *slog.Logger) LoopOption {
	return func(l *FrameLoop) {
		if log != nil {
			l.log = log
		}
	}
}

// NewFrameLoop creates a loop in the Running state.
func NewFrameLoop(ctx *Context, window Window, opts ...LoopOption) *FrameLoop {
	l := &FrameLoop{
		ctx:        ctx,
		window:     window,
		log:        ctx.log,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
		clearMask:  ClearColor,
	}
	for _, opt := range opts {
		opt(l)
	}

	ctx.SetClearColor(l.clearColor)
	ctx.SetDepthTest(l.depthTest)
	if w, h := window.FramebufferSize(); w > 0 && h > 0 {
		ctx.Viewport(0, 0, int32(w), int32(h))
	}
	return l
}

// Add appends a drawable after those already registered.
func (l *FrameLoop) Add(d *Drawable) { l.drawables = append(l.drawables, d) }

// Drawables returns the registered drawables in draw order.
func (l *FrameLoop) Drawables() []*Drawable { return l.drawables }

// State returns the current loop state.
func (l *FrameLoop) State() LoopState { return l.state }

// Frames returns the number of presented frames.
func (l *FrameLoop) Frames() uint64 { return l.frames }

// Terminate moves the loop to Terminated. No further frames are drawn.
func (l *FrameLoop) Terminate() { l.state = Terminated }

// Step runs one iteration. Once a quit or fatal event is observed the loop
// terminates and nothing more is drawn or presented, even within the same
// iteration. A fatal event's error is returned.
func (l *FrameLoop) Step() error {
	if l.state == Terminated {
		return nil
	}

	for _, ev := range l.window.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			l.log.Info("quit requested", "frames", l.frames)
			l.state = Terminated
			return nil
		case EventFatal:
			l.state = Terminated
			err := ev.Err
			if err == nil {
				err = errors.New("unspecified windowing failure")
			}
			return fmt.Errorf("window: %w", err)
		case EventResize:
			if ev.Width > 0 && ev.Height > 0 {
				l.ctx.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
				l.log.Debug("viewport resized", "width", ev.Width, "height", ev.Height)
			}
		}
	}

	l.ctx.Clear(l.clearMask)
	for _, d := range l.drawables {
		if err := d.Draw(l.ctx); err != nil {
			l.state = Terminated
			return err
		}
	}
	if l.checkErr {
		if err := l.ctx.CheckError(); err != nil {
			l.state = Terminated
			return fmt.Errorf("frame %d: %w", l.frames, err)
		}
	}

	l.window.SwapBuffers()
	l.frames++

	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		l.state = Terminated
	}
	return nil
}

// Run steps until the loop terminates.
func (l *FrameLoop) Run() error {
	l.log.Info("frame loop started", "drawables", len(l.drawables))
	for l.state == Running {
		if err := l.Step(); err != nil {
			l.log.Error("frame loop stopped", "frames", l.frames, "err", err)
			return err
		}
	}
	l.log.Info("frame loop stopped", "frames", l.frames)
	return nil
}
