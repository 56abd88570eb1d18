package particle

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// State is the lifecycle state of a System.
type State int

const (
	Uninitialized State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "uninitialized"
}

// Point is a pointer location in surface coordinates.
type Point struct {
	X, Y float64
}

// System owns the particles, the drawing surface and the frame loop.
type System struct {
	cfg       Config
	host      Host
	scheduler Scheduler
	rng       *rand.Rand
	logger    *log.Logger

	surface       Surface
	particles     []*Particle
	width, height float64

	pointer    Point
	hasPointer bool

	state   State
	pending bool
	invalid bool
}

// Option customizes a System.
type Option func(*System)

// WithRand sets the random source used when spawning particles.
func WithRand(rng *rand.Rand) Option {
	return func(s *System) {
		s.rng = rng
	}
}

// WithLogger sets the logger receiving diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *System) {
		s.logger = l
	}
}

// NewSystem creates an inert system. Initialize binds it to a surface.
func NewSystem(cfg Config, host Host, scheduler Scheduler, opts ...Option) *System {
	s := &System{
		cfg:       cfg,
		host:      host,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		s.logger.Printf("particles: invalid config: %v", err)
		s.invalid = true
	}
	return s
}

// Initialize looks up the drawing surface. When it cannot be found, or the
// configuration is invalid, a warning is logged and the system stays inert.
func (s *System) Initialize(selector string) {
	if s.invalid {
		return
	}
	if selector == "" {
		selector = s.cfg.Selector
	}
	surface, ok := s.host.Lookup(selector)
	if !ok || surface == nil {
		s.logger.Printf("particles: canvas not found: %s", selector)
		return
	}
	s.surface = surface
}

// Start sizes the surface, spawns the particles and starts the frame loop.
func (s *System) Start() {
	if s.surface == nil {
		return
	}
	s.measure()
	s.createParticles()
	s.state = Running
	s.schedule()
}

// State returns the current lifecycle state.
func (s *System) State() State {
	return s.state
}

// Particles returns the live particles.
func (s *System) Particles() []*Particle {
	return s.particles
}

// Size returns the current surface dimensions.
func (s *System) Size() (w, h float64) {
	return s.width, s.height
}

// Pointer returns the tracked pointer location, if any.
func (s *System) Pointer() (Point, bool) {
	return s.pointer, s.hasPointer
}

// SetPointer records the pointer location used by the next frame.
func (s *System) SetPointer(p Point) {
	s.pointer = p
	s.hasPointer = true
}

// ClearPointer removes the pointer; no pointer effects are applied.
func (s *System) ClearPointer() {
	s.hasPointer = false
}

// Resize re-measures the viewport and re-bounds every particle.
func (s *System) Resize() {
	if s.surface == nil {
		return
	}
	s.measure()
	for _, p := range s.particles {
		p.Resize(s.width, s.height)
	}
}

// Recreate replaces every particle with a freshly spawned one.
func (s *System) Recreate() {
	if s.surface == nil {
		return
	}
	s.measure()
	s.createParticles()
}

// Pause stops scheduling frames. A frame already requested runs as a no-op.
func (s *System) Pause() {
	if s.state == Running {
		s.state = Paused
	}
}

// Resume restarts the frame loop unless a frame is still pending.
func (s *System) Resume() {
	if s.state != Paused {
		return
	}
	s.state = Running
	s.schedule()
}

// SetVisible pauses the system while the page is hidden.
func (s *System) SetVisible(visible bool) {
	if visible {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Tick renders a single frame.
func (s *System) Tick() {
	if s.surface == nil {
		return
	}
	s.surface.Clear()

	for _, p := range s.particles {
		p.Update()
		p.Draw(s.surface, s.cfg.ParticleColor)
	}
	s.drawConnections()

	if s.hasPointer {
		s.repel()
		s.drawPointerLines()
	}
}

func (s *System) schedule() {
	if s.pending {
		return
	}
	s.pending = true
	s.scheduler.RequestFrame(s.loop)
}

func (s *System) loop() {
	s.pending = false
	if s.state != Running {
		return
	}
	s.Tick()
	s.schedule()
}

func (s *System) measure() {
	s.width, s.height = s.host.Viewport()
	s.surface.SetSize(s.width, s.height)
}

func (s *System) createParticles() {
	s.particles = make([]*Particle, 0, s.cfg.Count)
	for i := 0; i < s.cfg.Count; i++ {
		s.particles = append(s.particles, NewParticle(s.cfg, s.width, s.height, s.rng))
	}
}

// drawConnections joins every unique pair of close particles.
func (s *System) drawConnections() {
	for i := 0; i < len(s.particles); i++ {
		p1 := s.particles[i]
		for j := i + 1; j < len(s.particles); j++ {
			p2 := s.particles[j]

			opacity, ok := LinkOpacity(p1.distance(p2.x, p2.y), s.cfg.ConnectionDistance)
			if !ok {
				continue
			}
			s.surface.StrokeLine(p1.x, p1.y, p2.x, p2.y, s.cfg.LineWidth,
				s.cfg.LineColor.WithAlpha(opacity*s.cfg.LineColor.A))
		}
	}
}

func (s *System) repel() {
	for _, p := range s.particles {
		dx, dy := Repulsion(p.x, p.y, s.pointer, s.cfg.PointerRadius)
		p.x += dx * s.cfg.RepelStep
		p.y += dy * s.cfg.RepelStep
	}
}

func (s *System) drawPointerLines() {
	for _, p := range s.particles {
		d := p.distance(s.pointer.X, s.pointer.Y)
		if d == 0 {
			continue
		}
		opacity, ok := LinkOpacity(d, s.cfg.PointerRadius)
		if !ok {
			continue
		}
		s.surface.StrokeLine(s.pointer.X, s.pointer.Y, p.x, p.y, s.cfg.LineWidth,
			s.cfg.PointerLineColor.WithAlpha(opacity*s.cfg.PointerLineColor.A))
	}
}

// LinkOpacity returns the opacity of a line spanning distance d, and
// whether a line should be drawn at all.
func LinkOpacity(d, threshold float64) (float64, bool) {
	if d >= threshold {
		return 0, false
	}
	return 1 - d/threshold, true
}

// Repulsion returns the displacement direction scaled by the force the
// pointer applies to a particle at {x, y}. Outside the radius, and on the
// pointer itself, the result is zero.
func Repulsion(x, y float64, ptr Point, radius float64) (dx, dy float64) {
	vx, vy := x-ptr.X, y-ptr.Y
	d := math.Hypot(vx, vy)
	if d == 0 || d >= radius {
		return 0, 0
	}
	force := (radius - d) / radius
	return vx / d * force, vy / d * force
}
