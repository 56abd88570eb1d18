package particle

import "errors"

// DefaultSelector identifies the background canvas on the landing page.
const DefaultSelector = "#particles-canvas"

// Config holds the static parameters of a particle system.
type Config struct {
	Count     int
	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64

	// ConnectionDistance is the distance under which two particles are joined.
	ConnectionDistance float64
	// PointerRadius is the distance within which the pointer repels particles
	// and is connected to them.
	PointerRadius float64
	// RepelStep scales the per frame displacement caused by the pointer.
	RepelStep float64

	ParticleColor    Paint
	LineColor        Paint
	PointerLineColor Paint
	LineWidth        float64

	Selector string
}

// DefaultConfig returns the configuration used by the landing page.
func DefaultConfig() Config {
	return Config{
		Count:              80,
		MinRadius:          1,
		MaxRadius:          3,
		MaxSpeed:           0.5,
		ConnectionDistance: 150,
		PointerRadius:      150,
		RepelStep:          2,
		ParticleColor:      RGBA(102, 126, 234, 0.6),
		LineColor:          RGBA(102, 126, 234, 0.15),
		PointerLineColor:   RGBA(102, 126, 234, 0.3),
		LineWidth:          1,
		Selector:           DefaultSelector,
	}
}

var (
	ErrCount    = errors.New("particle count must be positive")
	ErrRadius   = errors.New("invalid particle radius range")
	ErrDistance = errors.New("connection distance and pointer radius must be positive")
)

// Validate reports the first inconsistency found in the configuration.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return ErrCount
	}
	if c.MinRadius <= 0 || c.MinRadius > c.MaxRadius {
		return ErrRadius
	}
	if c.ConnectionDistance <= 0 || c.PointerRadius <= 0 {
		return ErrDistance
	}
	return nil
}
