package lights

import (
	"fmt"
	"math"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Spot is a point light aimed along a direction. Its intensity falls off as
// max(0, direction·l)^narrowBeam away from the beam axis.
type Spot struct {
	Point
	direction  core.Vec3
	narrowBeam float64
}

// NewSpot creates a spot light. The direction must not be zero.
func NewSpot(intensity, position, direction core.Vec3) (Spot, error) {
	dir, err := core.Direction(direction)
	if err != nil {
		return Spot{}, fmt.Errorf("spot light: %w", err)
	}
	return Spot{Point: NewPoint(intensity, position), direction: dir, narrowBeam: 1}, nil
}

// WithNarrowBeam returns a copy with the beam exponent set
func (s Spot) WithNarrowBeam(narrowBeam float64) Spot {
	s.narrowBeam = narrowBeam
	return s
}

func (s Spot) WithKC(kC float64) Spot {
	s.Point = s.Point.WithKC(kC)
	return s
}

func (s Spot) WithKL(kL float64) Spot {
	s.Point = s.Point.WithKL(kL)
	return s
}

func (s Spot) WithKQ(kQ float64) Spot {
	s.Point = s.Point.WithKQ(kQ)
	return s
}

func (s Spot) WithRadius(radius float64) Spot {
	s.Point = s.Point.WithRadius(radius)
	return s
}

func (s Spot) Intensity(point core.Vec3) core.Vec3 {
	factor := math.Max(0, s.direction.Dot(s.Point.Direction(point)))
	return s.Point.Intensity(point).Multiply(math.Pow(factor, s.narrowBeam))
}
