package terminal

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/dswdata/landing/particle"
)

// Terminal previews the particle background in a terminal window.
type Terminal struct {
	cfg     particle.Config
	surface *Surface
	system  *particle.System
	queue   *particle.FrameQueue
	logger  *log.Logger
	logfile *os.File
	fn      string
	fps     int
}

// New creates a terminal preview logging to debug.log.
func New(cfg particle.Config) *Terminal {
	t := new(Terminal)
	t.cfg = cfg
	t.fn = "debug.log"
	t.fps = 30
	t.queue = particle.NewFrameQueue()
	t.surface = NewSurface(0, 0)

	var err error
	t.logfile, err = os.OpenFile(t.fn, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.logger = log.Default()
	} else {
		t.logger = log.New(t.logfile, "terminal: ", log.LstdFlags)
	}
	return t
}

// Lookup returns the terminal screen, the only surface there is.
func (t *Terminal) Lookup(string) (particle.Surface, bool) {
	return t.surface, true
}

// Viewport reports the terminal size in surface pixels.
func (t *Terminal) Viewport() (float64, float64) {
	w, h := termbox.Size()
	return float64(w * CellWidth), float64(h * CellHeight)
}

// Render runs the preview until Esc or q is pressed.
func (t *Terminal) Render() error {
	if t.logfile != nil {
		defer t.logfile.Close()
	}

	if err := termbox.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)

	t.system = particle.NewSystem(t.cfg, t, t.queue, particle.WithLogger(t.logger))
	t.system.Initialize(t.cfg.Selector)
	t.system.Start()
	t.logger.Printf("started %d particles on %dx%d cells", len(t.system.Particles()), t.surface.Cols(), t.surface.Rows())

	events := make(chan termbox.Event)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(termbox.PollEvent, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if quit := t.handle(ev); quit {
				return nil
			}
		case <-ticker.C:
			if t.queue.Run() > 0 {
				t.redraw()
			}
		}
	}
}

// forwardEvents sends polled events to the render loop until done is closed.
func forwardEvents(poll func() termbox.Event, events chan<- termbox.Event, done <-chan struct{}) {
	for {
		ev := poll()
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies a terminal event to the system and reports whether the
// preview should quit.
func (t *Terminal) handle(ev termbox.Event) bool {
	switch ev.Type {
	case termbox.EventKey:
		switch {
		case ev.Key == termbox.KeyEsc, ev.Ch == 'q':
			return true
		case ev.Key == termbox.KeySpace:
			if t.system.State() == particle.Running {
				t.system.Pause()
			} else {
				t.system.Resume()
			}
			t.logger.Printf("state: %s", t.system.State())
		}
	case termbox.EventMouse:
		if ev.Key == termbox.MouseRelease {
			t.system.ClearPointer()
			return false
		}
		t.system.SetPointer(particle.Point{
			X: float64(ev.MouseX*CellWidth + CellWidth/2),
			Y: float64(ev.MouseY*CellHeight + CellHeight/2),
		})
	case termbox.EventResize:
		t.system.Resize()
		t.logger.Printf("resized to %dx%d cells", ev.Width, ev.Height)
	case termbox.EventError:
		t.logger.Println(ev.Err)
	}
	return false
}

func (t *Terminal) redraw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	w, h := termbox.Size()
	buf := termbox.CellBuffer()
	for y := 0; y < h && y < t.surface.Rows(); y++ {
		for x := 0; x < w && x < t.surface.Cols(); x++ {
			buf[y*w+x] = t.surface.Cell(x, y)
		}
	}
	termbox.Flush()
}
