// Package desktop previews the particle background in a native window.
package desktop

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dswdata/landing/emailjs"
	"github.com/dswdata/landing/particle"
)

var background = color.RGBA{R: 10, G: 14, B: 39, A: 255}

// Game runs a particle system inside an ebiten window.
type Game struct {
	cfg    particle.Config
	system *particle.System
	queue  *particle.FrameQueue
	frame  *particle.Recorder
	logger *log.Logger

	width, height int

	mailer  *emailjs.Client
	dialog  bool
	results chan error
	status  string

	prevKey map[ebiten.Key]bool
}

// NewGame creates a game for the given particle configuration. A nil
// mailer disables the contact dialog.
func NewGame(cfg particle.Config, mailer *emailjs.Client, logger *log.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		queue:   particle.NewFrameQueue(),
		frame:   &particle.Recorder{},
		logger:  logger,
		mailer:  mailer,
		results: make(chan error, 1),
		prevKey: map[ebiten.Key]bool{},
	}
	g.system = particle.NewSystem(cfg, g, g.queue, particle.WithLogger(logger))
	return g
}

// Lookup returns the window back buffer.
func (g *Game) Lookup(string) (particle.Surface, bool) {
	return g.frame, true
}

// Viewport reports the logical window size.
func (g *Game) Viewport() (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		if g.system.State() == particle.Running {
			g.system.Pause()
		} else {
			g.system.Resume()
		}
	}
	if justPressed(ebiten.KeyC) {
		g.openContact()
	}

	select {
	case err := <-g.results:
		g.dialog = false
		if err != nil {
			g.status = err.Error()
			g.logger.Println(err)
		} else {
			g.status = ""
		}
	default:
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < g.width && my < g.height {
		g.system.SetPointer(particle.Point{X: float64(mx), Y: float64(my)})
	} else {
		g.system.ClearPointer()
	}

	g.queue.Run()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	// Particles go first, connections are drawn over them.
	for _, c := range g.frame.Circles {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.R), c.Paint.NRGBA(), true)
	}
	for _, l := range g.frame.Lines {
		vector.StrokeLine(screen, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), float32(l.Width), l.Paint.NRGBA(), true)
	}

	help := fmt.Sprintf("%d particles, %s | Space: pause  C: contact  Esc/Q: quit", len(g.system.Particles()), g.system.State())
	if g.status != "" {
		help += " | " + g.status
	}
	ebitenutil.DebugPrintAt(screen, help, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.system.State() == particle.Uninitialized {
			g.system.Initialize(g.cfg.Selector)
			g.system.Start()
		} else {
			g.system.Resize()
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) openContact() {
	if g.dialog || g.mailer == nil {
		return
	}
	g.dialog = true
	go func() {
		g.results <- AskContact(context.Background(), g.mailer)
	}()
}
