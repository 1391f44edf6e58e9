package lights

import (
	"fmt"
	"math"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Directional is a light at infinity shining in a fixed direction with no
// attenuation
type Directional struct {
	intensity core.Vec3
	direction core.Vec3
}

// NewDirectional creates a directional light. The direction must not be zero.
func NewDirectional(intensity, direction core.Vec3) (Directional, error) {
	dir, err := core.Direction(direction)
	if err != nil {
		return Directional{}, fmt.Errorf("directional light: %w", err)
	}
	return Directional{intensity: intensity, direction: dir}, nil
}

// Intensity is the same everywhere
func (d Directional) Intensity(core.Vec3) core.Vec3 { return d.intensity }

// Direction is the same everywhere
func (d Directional) Direction(core.Vec3) core.Vec3 { return d.direction }

func (d Directional) Distance(core.Vec3) float64 { return math.Inf(1) }

func (d Directional) Radius() float64 { return 0 }
