package particle

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewParticleRanges(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		p := NewParticle(cfg, 640, 480, rng)
		if p.GetX() < 0 || p.GetX() > 640 || p.GetY() < 0 || p.GetY() > 480 {
			t.Fatalf("position out of bounds: (%f, %f)", p.GetX(), p.GetY())
		}
		if math.Hypot(p.GetVx(), p.GetVy()) > cfg.MaxSpeed {
			t.Fatalf("speed %f exceeds %f", math.Hypot(p.GetVx(), p.GetVy()), cfg.MaxSpeed)
		}
		if p.GetRadius() < cfg.MinRadius || p.GetRadius() > cfg.MaxRadius {
			t.Fatalf("radius %f out of range", p.GetRadius())
		}
		if p.GetOpacity() < 0.3 || p.GetOpacity() > 0.8 {
			t.Fatalf("opacity %f out of range", p.GetOpacity())
		}
	}
}

func TestUpdateStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSpeed = 40
	rng := rand.New(rand.NewSource(1))

	particles := make([]*Particle, 50)
	for i := range particles {
		particles[i] = NewParticle(cfg, 100, 60, rng)
	}
	for step := 0; step < 2000; step++ {
		for _, p := range particles {
			p.Update()
			if p.GetX() < 0 || p.GetX() > 100 || p.GetY() < 0 || p.GetY() > 60 {
				t.Fatalf("step %d: particle escaped to (%f, %f)", step, p.GetX(), p.GetY())
			}
		}
	}
}

func TestUpdateFlipsOncePerCrossing(t *testing.T) {
	tests := []struct {
		name       string
		x, vx      float64
		wantVx     float64
		wantInside bool
	}{
		{"beyond right moving out", 100.5, 1, -1, true},
		{"beyond right moving in", 100.5, -1, -1, true},
		{"beyond left moving out", -0.5, -1, 1, true},
		{"inside", 50, 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Particle{x: tt.x, y: 10, vx: tt.vx, width: 100, height: 20}
			p.Update()
			if p.GetVx() != tt.wantVx {
				t.Errorf("vx = %f, want %f", p.GetVx(), tt.wantVx)
			}
			if p.GetX() < 0 || p.GetX() > 100 {
				t.Errorf("x = %f, want inside [0, 100]", p.GetX())
			}
		})
	}
}

func TestResizeBouncesOnNewBounds(t *testing.T) {
	p := &Particle{x: 150, y: 150, vx: 1, vy: 0, width: 200, height: 200}
	p.Resize(100, 100)
	if p.GetX() != 100 || p.GetY() != 100 {
		t.Fatalf("expected particle clamped to (100, 100), got (%f, %f)", p.GetX(), p.GetY())
	}

	p.Update()
	if p.GetVx() != -1 {
		t.Fatalf("expected bounce against the new right edge, vx = %f", p.GetVx())
	}

	q := &Particle{x: 90, y: 10, vx: 1, width: 100, height: 100}
	q.Resize(300, 300)
	for i := 0; i < 20; i++ {
		q.Update()
	}
	if q.GetVx() != 1 || q.GetX() != 110 {
		t.Fatalf("expected old edge to be ignored, got x=%f vx=%f", q.GetX(), q.GetVx())
	}
}

func TestDrawUsesParticleOpacity(t *testing.T) {
	rec := &Recorder{}
	p := &Particle{x: 3, y: 4, radius: 2, opacity: 0.42}
	p.Draw(rec, RGBA(1, 2, 3, 0.6))

	if len(rec.Circles) != 1 {
		t.Fatalf("expected one circle, got %d", len(rec.Circles))
	}
	c := rec.Circles[0]
	if c.X != 3 || c.Y != 4 || c.R != 2 || c.Paint != RGBA(1, 2, 3, 0.42) {
		t.Errorf("unexpected circle %+v", c)
	}
}

func TestPaintCSS(t *testing.T) {
	if got := RGBA(102, 126, 234, 0.15).CSS(); got != "rgba(102, 126, 234, 0.15)" {
		t.Errorf("CSS() = %q", got)
	}
	if got := RGBA(0, 0, 0, 2).NRGBA().A; got != 255 {
		t.Errorf("alpha not clamped: %d", got)
	}
}
