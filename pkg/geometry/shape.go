package geometry

import (
	"math"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/material"
)

// Option configures the appearance shared by all surfaces
type Option func(*surface)

// WithMaterial sets the surface material
func WithMaterial(m material.Material) Option {
	return func(s *surface) { s.material = m }
}

// WithEmission sets the surface emission color
func WithEmission(c core.Vec3) Option {
	return func(s *surface) { s.emission = c }
}

// surface holds the appearance of a primitive
type surface struct {
	material material.Material
	emission core.Vec3
}

func newSurface(opts []Option) surface {
	s := surface{material: material.New()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Material returns the surface material
func (s *surface) Material() material.Material { return s.material }

// Emission returns the surface emission color
func (s *surface) Emission() core.Vec3 { return s.emission }

// FindIntersections returns the hit points of a ray with no distance bound
func FindIntersections(shape Intersectable, ray core.Ray) []core.Vec3 {
	hits := shape.Intersect(ray, math.Inf(1))
	if hits == nil {
		return nil
	}
	points := make([]core.Vec3, len(hits))
	for i, hit := range hits {
		points[i] = hit.Point
	}
	return points
}

// ClosestIntersection returns the hit nearest to the ray origin.
// Ties keep the first one found.
func ClosestIntersection(ray core.Ray, hits []Intersection) (Intersection, bool) {
	if len(hits) == 0 {
		return Intersection{}, false
	}
	closest := 0
	minDistance := ray.Origin.DistanceSquared(hits[0].Point)
	for i := 1; i < len(hits); i++ {
		if d := ray.Origin.DistanceSquared(hits[i].Point); d < minDistance {
			minDistance = d
			closest = i
		}
	}
	return hits[closest], true
}

// withinRange reports whether a ray parameter is strictly positive and not
// beyond maxDistance
func withinRange(t, maxDistance float64) bool {
	return core.AlignZero(t) > 0 && core.AlignZero(t-maxDistance) <= 0
}

// chord solves the ray/sphere problem for a ray with unit direction dir whose
// origin is toCenter away from a sphere center. It returns both ray parameters
// of the chord, nearest first, or false when the ray misses or is tangent.
func chord(toCenter, dir core.Vec3, radius float64) (float64, float64, bool) {
	var tm, d2 float64
	// An origin at the center projects to zero
	if !toCenter.IsZero() {
		tm = toCenter.Dot(dir)
		d2 = math.Max(0, toCenter.LengthSquared()-tm*tm)
	}
	if core.AlignZero(math.Sqrt(d2)-radius) >= 0 {
		return 0, 0, false
	}
	th := math.Sqrt(radius*radius - d2)
	return tm - th, tm + th, true
}
