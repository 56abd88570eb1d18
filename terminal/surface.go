package terminal

import (
	"math"

	"github.com/nsf/termbox-go"

	"github.com/dswdata/landing/particle"
)

// A terminal cell covers CellWidth x CellHeight surface pixels, which keeps
// the particle distances close to what a browser viewport uses.
const (
	CellWidth  = 8
	CellHeight = 16
)

var (
	dotGlyphs  = []rune{'∙', '•', '●'}
	lineGlyphs = []rune{'.', '·', ':', '+'}
)

// Surface rasterizes the particle frame into a termbox cell back buffer.
type Surface struct {
	backbuf  []termbox.Cell
	weight   []float64
	bbw, bbh int
}

// NewSurface allocates a surface of w x h cells.
func NewSurface(w, h int) *Surface {
	s := new(Surface)
	s.realloc(w, h)
	return s
}

// Cols returns the surface width in cells.
func (s *Surface) Cols() int { return s.bbw }

// Rows returns the surface height in cells.
func (s *Surface) Rows() int { return s.bbh }

// Cell returns the cell at column x and row y.
func (s *Surface) Cell(x, y int) termbox.Cell {
	return s.backbuf[s.bbw*y+x]
}

// Cells returns the back buffer.
func (s *Surface) Cells() []termbox.Cell {
	return s.backbuf
}

// SetSize reallocates the back buffer for a surface of w x h pixels.
func (s *Surface) SetSize(w, h float64) {
	s.realloc(int(math.Ceil(w/CellWidth)), int(math.Ceil(h/CellHeight)))
}

func (s *Surface) realloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.bbw, s.bbh = w, h
	s.backbuf = make([]termbox.Cell, w*h)
	s.weight = make([]float64, w*h)
	s.Clear()
}

// Clear blanks every cell.
func (s *Surface) Clear() {
	for i := range s.backbuf {
		s.backbuf[i] = termbox.Cell{Ch: ' ', Fg: termbox.ColorDefault, Bg: termbox.ColorDefault}
		s.weight[i] = 0
	}
}

// FillCircle marks the cell under the centre with a dot sized by radius.
func (s *Surface) FillCircle(x, y, r float64, p particle.Paint) {
	idx := int(r) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(dotGlyphs) {
		idx = len(dotGlyphs) - 1
	}
	s.plot(int(x/CellWidth), int(y/CellHeight), dotGlyphs[idx], p)
}

// StrokeLine draws a line of glyphs whose density follows the alpha.
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, p particle.Paint) {
	glyph := shade(p.A)
	cx0, cy0 := int(x0/CellWidth), int(y0/CellHeight)
	cx1, cy1 := int(x1/CellWidth), int(y1/CellHeight)

	// Bresenham, in cell space.
	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx, sy := sign(cx1-cx0), sign(cy1-cy0)
	e := dx + dy
	for {
		s.plot(cx0, cy0, glyph, p)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx0 += sx
		}
		if e2 <= dx {
			e += dx
			cy0 += sy
		}
	}
}

// plot writes a glyph unless the cell already holds a more opaque one.
func (s *Surface) plot(x, y int, ch rune, p particle.Paint) {
	if x < 0 || y < 0 || x >= s.bbw || y >= s.bbh {
		return
	}
	i := s.bbw*y + x
	if p.A < s.weight[i] {
		return
	}
	s.weight[i] = p.A
	s.backbuf[i] = termbox.Cell{Ch: ch, Fg: color256(p), Bg: termbox.ColorDefault}
}

func shade(a float64) rune {
	switch {
	case a < 0.04:
		return lineGlyphs[0]
	case a < 0.08:
		return lineGlyphs[1]
	case a < 0.16:
		return lineGlyphs[2]
	}
	return lineGlyphs[3]
}

// color256 maps the paint onto the xterm 6x6x6 colour cube.
func color256(p particle.Paint) termbox.Attribute {
	q := func(c uint8) int { return (int(c)*5 + 127) / 255 }
	return termbox.Attribute(16+36*q(p.R)+6*q(p.G)+q(p.B)) + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
