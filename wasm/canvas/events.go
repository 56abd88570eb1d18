//go:build js && wasm

package canvas

import (
	"syscall/js"

	"github.com/dswdata/landing/particle"
)

// Bind forwards resize, pointer and visibility events to the system. The
// returned function removes the listeners.
func Bind(sys *particle.System) (release func()) {
	window := js.Global()
	doc := window.Get("document")

	type listener struct {
		target js.Value
		event  string
		fn     js.Func
	}
	var listeners []listener
	on := func(target js.Value, event string, fn func(ev js.Value)) {
		f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			fn(args[0])
			return nil
		})
		target.Call("addEventListener", event, f)
		listeners = append(listeners, listener{target, event, f})
	}

	on(window, "resize", func(js.Value) {
		sys.Resize()
	})
	on(window, "mousemove", func(ev js.Value) {
		sys.SetPointer(pointerFromEvent(ev))
	})
	on(window, "mouseout", func(js.Value) {
		sys.ClearPointer()
	})
	on(doc, "visibilitychange", func(js.Value) {
		sys.SetVisible(!doc.Get("hidden").Bool())
	})

	return func() {
		for _, l := range listeners {
			l.target.Call("removeEventListener", l.event, l.fn)
			l.fn.Release()
		}
	}
}
