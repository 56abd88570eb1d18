package particle

import (
	"math"
	"math/rand"
)

// Particle defines a single point of the animated background.
type Particle struct {
	x, y    float64
	vx, vy  float64
	radius  float64
	opacity float64

	width, height float64
}

// NewParticle spawns a particle at a random place inside the {w, h} bounds
// with a random velocity, radius and opacity.
func NewParticle(cfg Config, w, h float64, rng *rand.Rand) *Particle {
	return &Particle{
		x:       rng.Float64() * w,
		y:       rng.Float64() * h,
		vx:      (rng.Float64() - 0.5) * cfg.MaxSpeed,
		vy:      (rng.Float64() - 0.5) * cfg.MaxSpeed,
		radius:  rng.Float64()*(cfg.MaxRadius-cfg.MinRadius) + cfg.MinRadius,
		opacity: rng.Float64()*0.5 + 0.3,
		width:   w,
		height:  h,
	}
}

// GetX retrieve the particle value at {x} position.
func (p *Particle) GetX() float64 {
	return p.x
}

// SetX set the particle value at {x} position.
func (p *Particle) SetX(val float64) {
	p.x = val
}

// GetY retrieve the particle value at {y} position.
func (p *Particle) GetY() float64 {
	return p.y
}

// SetY set the particle value at {y} position.
func (p *Particle) SetY(val float64) {
	p.y = val
}

// GetVx get the particle velocity on the {x} axis.
func (p *Particle) GetVx() float64 {
	return p.vx
}

// SetVx set the particle velocity on the {x} axis.
func (p *Particle) SetVx(val float64) {
	p.vx = val
}

// GetVy get the particle velocity on the {y} axis.
func (p *Particle) GetVy() float64 {
	return p.vy
}

// SetVy set the particle velocity on the {y} axis.
func (p *Particle) SetVy(val float64) {
	p.vy = val
}

// GetRadius get the particle radius.
func (p *Particle) GetRadius() float64 {
	return p.radius
}

// GetOpacity get the particle opacity.
func (p *Particle) GetOpacity() float64 {
	return p.opacity
}

// Bounds returns the area the particle bounces in.
func (p *Particle) Bounds() (w, h float64) {
	return p.width, p.height
}

// Update moves the particle and bounces it off the bounds. The velocity
// component is negated only while it points outwards, so a particle
// caught beyond an edge flips once and then heads back in.
func (p *Particle) Update() {
	p.x += p.vx
	p.y += p.vy

	if (p.x < 0 && p.vx < 0) || (p.x > p.width && p.vx > 0) {
		p.vx = -p.vx
	}
	if (p.y < 0 && p.vy < 0) || (p.y > p.height && p.vy > 0) {
		p.vy = -p.vy
	}
	p.x = clamp(p.x, 0, p.width)
	p.y = clamp(p.y, 0, p.height)
}

// Draw renders the particle as a filled circle.
func (p *Particle) Draw(s Surface, base Paint) {
	s.FillCircle(p.x, p.y, p.radius, base.WithAlpha(p.opacity))
}

// Resize sets new bounds and pulls the particle back inside them.
func (p *Particle) Resize(w, h float64) {
	p.width, p.height = w, h
	p.x = clamp(p.x, 0, w)
	p.y = clamp(p.y, 0, h)
}

// distance returns the euclidean distance between the particle and {x, y}.
func (p *Particle) distance(x, y float64) float64 {
	return math.Hypot(p.x-x, p.y-y)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
