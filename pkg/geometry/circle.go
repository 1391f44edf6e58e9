package geometry

import (
	"fmt"
	"math"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Circle is a flat disc
type Circle struct {
	surface
	plane  *Plane
	radius float64
}

// NewCircle creates a disc around center lying in the plane with the given
// normal. The radius must be positive.
func NewCircle(center core.Vec3, radius float64, normal core.Vec3, opts ...Option) (*Circle, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: circle radius %g must be positive", ErrInvalidGeometry, radius)
	}
	plane, err := NewPlane(center, normal)
	if err != nil {
		return nil, err
	}
	return &Circle{surface: newSurface(opts), plane: plane, radius: radius}, nil
}

// Center returns the disc center
func (c *Circle) Center() core.Vec3 { return c.plane.point }

// Radius returns the disc radius
func (c *Circle) Radius() float64 { return c.radius }

// NormalAt returns the disc normal
func (c *Circle) NormalAt(core.Vec3) core.Vec3 { return c.plane.normal }

// Intersect returns the plane hit when it is strictly inside the disc
func (c *Circle) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	distance, ok := c.plane.distance(ray, maxDistance)
	if !ok {
		return nil
	}
	point := ray.At(distance)
	if core.AlignZero(point.Distance(c.plane.point)-c.radius) >= 0 {
		return nil
	}
	return []Intersection{newIntersection(c, point)}
}

// BoundingBox returns the axis-aligned bounding box for this disc
func (c *Circle) BoundingBox() core.AABB {
	n := c.plane.normal
	extent := core.NewVec3(
		c.radius*math.Sqrt(math.Max(0, 1-n.X*n.X)),
		c.radius*math.Sqrt(math.Max(0, 1-n.Y*n.Y)),
		c.radius*math.Sqrt(math.Max(0, 1-n.Z*n.Z)),
	)
	return core.NewAABB(c.plane.point.Subtract(extent), c.plane.point.Add(extent))
}
