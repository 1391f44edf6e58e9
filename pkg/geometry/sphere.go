package geometry

import (
	"fmt"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	center core.Vec3
	radius float64
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, opts ...Option) (*Sphere, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: sphere radius %g must be positive", ErrInvalidGeometry, radius)
	}
	return &Sphere{surface: newSurface(opts), center: center, radius: radius}, nil
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 { return s.center }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.center).Normalize()
}

// Intersect returns up to two hits, nearest first. A tangent ray misses.
func (s *Sphere) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	t1, t2, ok := chord(s.center.Subtract(ray.Origin), ray.Direction, s.radius)
	if !ok {
		return nil
	}

	var hits []Intersection
	for _, t := range [2]float64{t1, t2} {
		if withinRange(t, maxDistance) {
			hits = append(hits, newIntersection(s, ray.At(t)))
		}
	}
	return hits
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.radius, s.radius, s.radius)
	return core.NewAABB(s.center.Subtract(radius), s.center.Add(radius))
}
