package particle

import (
	"fmt"
	"image/color"
	"strconv"
)

// Paint is an RGB colour with a real valued alpha channel, the way
// canvas fill and stroke styles are expressed.
type Paint struct {
	R, G, B uint8
	A       float64
}

// RGBA creates a new paint.
func RGBA(r, g, b uint8, a float64) Paint {
	return Paint{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of the paint with a replaced alpha channel.
func (p Paint) WithAlpha(a float64) Paint {
	p.A = a
	return p
}

// CSS renders the paint as a CSS rgba() colour.
func (p Paint) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", p.R, p.G, p.B, strconv.FormatFloat(p.alpha(), 'f', -1, 64))
}

// NRGBA converts the paint to a non-premultiplied colour.
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(p.alpha()*255 + 0.5)}
}

func (p Paint) alpha() float64 {
	switch {
	case p.A < 0:
		return 0
	case p.A > 1:
		return 1
	}
	return p.A
}
