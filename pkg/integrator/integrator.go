package integrator

import (
	"fmt"
	"math/rand"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Integrator computes the color seen along a ray
type Integrator interface {
	// TraceRay returns the color for ray. random is only used by stochastic
	// effects and must belong to the calling goroutine.
	TraceRay(ray core.Ray, random *rand.Rand) core.Vec3
}

// ShadowMode selects how occlusion between a point and a light is handled
type ShadowMode int

const (
	// ShadowNone lights every point that faces the light
	ShadowNone ShadowMode = iota
	// ShadowHard blocks a light when anything lies between the point and it
	ShadowHard
	// ShadowSoft samples the disc of lights with a radius and scales the
	// light by the unblocked fraction
	ShadowSoft
)

var shadowModeNames = map[ShadowMode]string{
	ShadowNone: "none",
	ShadowHard: "hard",
	ShadowSoft: "soft",
}

func (m ShadowMode) String() string {
	if name, ok := shadowModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ShadowMode(%d)", int(m))
}

// ParseShadowMode converts a name ("none", "hard", "soft") to a ShadowMode
func ParseShadowMode(name string) (ShadowMode, error) {
	for mode, modeName := range shadowModeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return ShadowNone, fmt.Errorf("unknown shadow mode %q (want none, hard or soft)", name)
}
