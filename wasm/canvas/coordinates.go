//go:build js && wasm

package canvas

import (
	"syscall/js"

	"github.com/dswdata/landing/particle"
)

// pointerFromEvent returns the viewport position of a mouse event. The
// canvas is fixed over the viewport, so client coordinates are canvas
// coordinates.
func pointerFromEvent(ev js.Value) particle.Point {
	return particle.Point{
		X: ev.Get("clientX").Float(),
		Y: ev.Get("clientY").Float(),
	}
}
