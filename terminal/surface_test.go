package terminal

import (
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/dswdata/landing/particle"
)

func TestSetSizeInCells(t *testing.T) {
	s := NewSurface(0, 0)
	s.SetSize(800, 600)
	if s.Cols() != 100 || s.Rows() != 38 {
		t.Errorf("expected 100x38 cells, got %dx%d", s.Cols(), s.Rows())
	}
	if len(s.Cells()) != 100*38 {
		t.Errorf("back buffer holds %d cells", len(s.Cells()))
	}
}

func TestFillCircle(t *testing.T) {
	s := NewSurface(10, 5)
	s.FillCircle(20, 40, 3, particle.RGBA(102, 126, 234, 0.6))

	c := s.Cell(2, 2)
	if c.Ch != '●' {
		t.Errorf("expected a large dot, got %q", c.Ch)
	}
	if c.Fg == termbox.ColorDefault {
		t.Error("expected a foreground colour")
	}
}

func TestStrokeLineKeepsParticles(t *testing.T) {
	s := NewSurface(10, 1)
	s.FillCircle(4*CellWidth, 0, 1, particle.RGBA(255, 255, 255, 0.5))
	s.StrokeLine(0, 0, 9*CellWidth, 0, 1, particle.RGBA(255, 255, 255, 0.1))

	for x := 0; x < 10; x++ {
		want := ':'
		if x == 4 {
			want = '∙'
		}
		if got := s.Cell(x, 0).Ch; got != want {
			t.Errorf("cell %d = %q, want %q", x, got, want)
		}
	}
}

func TestStrokeLineDiagonalAndClipping(t *testing.T) {
	s := NewSurface(4, 4)
	s.StrokeLine(-2*CellWidth, -2*CellHeight, 3*CellWidth, 3*CellHeight, 1, particle.RGBA(0, 0, 0, 0.02))

	for i := 0; i < 4; i++ {
		if got := s.Cell(i, i).Ch; got != '.' {
			t.Errorf("cell (%d, %d) = %q, want '.'", i, i, got)
		}
	}
	if got := s.Cell(1, 0).Ch; got != ' ' {
		t.Errorf("off diagonal cell drawn: %q", got)
	}

	s.Clear()
	if got := s.Cell(2, 2).Ch; got != ' ' {
		t.Errorf("clear left %q", got)
	}
}

func TestTerminalDrivesSystem(t *testing.T) {
	cfg := particle.DefaultConfig()
	cfg.Count = 3
	surface := NewSurface(0, 0)
	queue := particle.NewFrameQueue()
	host := &fixedHost{surface: surface, w: 320, h: 160}

	sys := particle.NewSystem(cfg, host, queue)
	sys.Initialize(cfg.Selector)
	sys.Start()
	queue.Run()

	if surface.Cols() != 40 || surface.Rows() != 10 {
		t.Fatalf("surface sized to %dx%d cells", surface.Cols(), surface.Rows())
	}
	drawn := 0
	for _, c := range surface.Cells() {
		if c.Ch != ' ' {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("expected the frame to draw particles")
	}
}

type fixedHost struct {
	surface *Surface
	w, h    float64
}

func (h *fixedHost) Lookup(string) (particle.Surface, bool) { return h.surface, true }
func (h *fixedHost) Viewport() (float64, float64)           { return h.w, h.h }
