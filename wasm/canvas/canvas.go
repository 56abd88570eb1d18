//go:build js && wasm

package canvas

import (
	"math"
	"syscall/js"

	"github.com/dswdata/landing/particle"
)

// Canvas binds the particle system to an HTML canvas element.
type Canvas struct {
	window js.Value
	doc    js.Value
	canvas js.Value
	ctx    js.Value

	width, height float64
}

// NewCanvas creates a canvas host over the current document.
func NewCanvas() *Canvas {
	var c Canvas
	c.window = js.Global()
	c.doc = c.window.Get("document")

	return &c
}

// Lookup binds the canvas matching selector and its 2D context.
func (c *Canvas) Lookup(selector string) (particle.Surface, bool) {
	el := c.doc.Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, false
	}
	c.canvas, c.ctx = el, ctx
	return c, true
}

// Viewport reports the window inner size.
func (c *Canvas) Viewport() (float64, float64) {
	return c.window.Get("innerWidth").Float(), c.window.Get("innerHeight").Float()
}

// SetSize resizes the canvas backing store.
func (c *Canvas) SetSize(w, h float64) {
	c.width, c.height = w, h
	c.canvas.Set("width", w)
	c.canvas.Set("height", h)
}

// Clear wipes the whole canvas.
func (c *Canvas) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.width, c.height)
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(x, y, r float64, p particle.Paint) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", p.CSS())
	c.ctx.Call("fill")
}

// StrokeLine draws a straight line.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, p particle.Paint) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Set("strokeStyle", p.CSS())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}

// Alert calls the `alert` Javascript function
func (c *Canvas) Alert(msg string) {
	c.window.Call("alert", msg)
}

// Log calls the `console.log` Javascript function
func (c *Canvas) Log(args ...interface{}) {
	c.window.Get("console").Call("log", args...)
}
