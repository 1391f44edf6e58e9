package lights

import (
	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Point is an omnidirectional light at a position, attenuated with distance
// by 1 / (kC + kL·d + kQ·d²)
type Point struct {
	intensity core.Vec3
	position  core.Vec3
	kC        float64 // Constant attenuation
	kL        float64 // Linear attenuation
	kQ        float64 // Quadratic attenuation
	radius    float64
}

// NewPoint creates a point light with no attenuation
func NewPoint(intensity, position core.Vec3) Point {
	return Point{intensity: intensity, position: position, kC: 1}
}

// WithKC returns a copy with the constant attenuation factor set
func (p Point) WithKC(kC float64) Point {
	p.kC = kC
	return p
}

// WithKL returns a copy with the linear attenuation factor set
func (p Point) WithKL(kL float64) Point {
	p.kL = kL
	return p
}

// WithKQ returns a copy with the quadratic attenuation factor set
func (p Point) WithKQ(kQ float64) Point {
	p.kQ = kQ
	return p
}

// WithRadius returns a copy with the emitting disc radius set, used for soft
// shadows
func (p Point) WithRadius(radius float64) Point {
	p.radius = radius
	return p
}

// Position returns the light position
func (p Point) Position() core.Vec3 { return p.position }

func (p Point) Intensity(point core.Vec3) core.Vec3 {
	d := point.Distance(p.position)
	return p.intensity.Multiply(1 / (p.kC + p.kL*d + p.kQ*d*d))
}

func (p Point) Direction(point core.Vec3) core.Vec3 {
	return point.Subtract(p.position).Normalize()
}

func (p Point) Distance(point core.Vec3) float64 {
	return point.Distance(p.position)
}

func (p Point) Radius() float64 { return p.radius }
