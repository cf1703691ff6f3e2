package fakegl

import "github.com/go-theft-auto/glpipe"

// Window is a scripted glpipe.Window. Each PollEvents call returns the next
// batch of Script; once the script is exhausted polls return no events.
type Window struct {
	Script [][]glpipe.Event
	Width  int
	Height int

	// OnSwap, if set, runs at every SwapBuffers.
	OnSwap func(frame int)

	polls int
	swaps int
}

var _ glpipe.Window = (*Window)(nil)

// NewWindow returns a window of the given size playing script.
func NewWindow(width, height int, script ...[]glpipe.Event) *Window {
	return &Window{Script: script, Width: width, Height: height}
}

// PollEvents returns the next scripted batch.
func (w *Window) PollEvents() []glpipe.Event {
	defer func() { w.polls++ }()
	if w.polls < len(w.Script) {
		return w.Script[w.polls]
	}
	return nil
}

// SwapBuffers counts presented frames.
func (w *Window) SwapBuffers() {
	w.swaps++
	if w.OnSwap != nil {
		w.OnSwap(w.swaps)
	}
}

// FramebufferSize returns the configured size.
func (w *Window) FramebufferSize() (int, int) { return w.Width, w.Height }

// Polls returns how many times PollEvents was called.
func (w *Window) Polls() int { return w.polls }

// Swaps returns how many frames were presented.
func (w *Window) Swaps() int { return w.swaps }

// Quit is a batch holding a single quit event.
func Quit() []glpipe.Event {
	return []glpipe.Event{{Kind: glpipe.EventQuit}}
}

// Resize is a batch holding a single resize event.
func Resize(width, height int) []glpipe.Event {
	return []glpipe.Event{{Kind: glpipe.EventResize, Width: width, Height: height}}
}
