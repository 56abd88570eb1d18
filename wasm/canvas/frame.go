//go:build js && wasm

package canvas

import "syscall/js"

// FrameScheduler paces frames with window.requestAnimationFrame.
type FrameScheduler struct {
	window  js.Value
	cb      js.Func
	pending []func()
}

// NewFrameScheduler creates a scheduler for the current window.
func NewFrameScheduler() *FrameScheduler {
	f := &FrameScheduler{window: js.Global()}
	f.cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		batch := f.pending
		f.pending = nil
		for _, fn := range batch {
			fn()
		}
		return nil
	})
	return f
}

// RequestFrame runs fn on the next animation frame.
func (f *FrameScheduler) RequestFrame(fn func()) {
	f.pending = append(f.pending, fn)
	if len(f.pending) == 1 {
		f.window.Call("requestAnimationFrame", f.cb)
	}
}
