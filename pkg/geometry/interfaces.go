package geometry

import (
	"errors"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/lights"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/material"
)

// ErrInvalidGeometry is wrapped by every constructor validation failure
var ErrInvalidGeometry = errors.New("invalid geometry")

// Intersectable is anything a ray can be tested against.
// Intersect returns nil when there is no hit within maxDistance and a
// non-empty slice otherwise.
type Intersectable interface {
	Intersect(ray core.Ray, maxDistance float64) []Intersection
}

// Surface is a shaded primitive
type Surface interface {
	Intersectable
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	Material() material.Material
	Emission() core.Vec3
}

// Bounded is implemented by surfaces with a finite extent
type Bounded interface {
	BoundingBox() core.AABB
}

// Intersection is a single ray/surface hit. The shading fields are filled in
// lazily by the integrator and only live for one shading evaluation.
type Intersection struct {
	Surface  Surface
	Point    core.Vec3
	Material material.Material

	Normal core.Vec3     // Surface normal at Point
	View   core.Vec3     // Incoming ray direction
	NV     float64       // Normal · View
	Light  lights.Source // Light currently being evaluated
	L      core.Vec3     // Direction from Light towards Point
	LN     float64       // L · Normal
}

func newIntersection(s Surface, point core.Vec3) Intersection {
	return Intersection{Surface: s, Point: point, Material: s.Material()}
}
