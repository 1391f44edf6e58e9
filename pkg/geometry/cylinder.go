package geometry

import (
	"fmt"
	"sort"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Cylinder is a closed finite cylinder: a tube cut to a height and capped by
// two discs
type Cylinder struct {
	surface
	tube   *Tube
	bottom *Circle // At the axis origin, facing −axis
	top    *Circle // At height along the axis, facing +axis
	height float64
}

// NewCylinder creates a cylinder standing on axis.Origin and extending height
// along axis.Direction
func NewCylinder(radius float64, axis core.Ray, height float64, opts ...Option) (*Cylinder, error) {
	if core.AlignZero(height) <= 0 {
		return nil, fmt.Errorf("%w: cylinder height %g must be positive", ErrInvalidGeometry, height)
	}
	tube, err := NewTube(radius, axis)
	if err != nil {
		return nil, err
	}
	direction := tube.axis.Direction
	bottom, err := NewCircle(tube.axis.Origin, radius, direction.Negate())
	if err != nil {
		return nil, err
	}
	top, err := NewCircle(tube.axis.At(height), radius, direction)
	if err != nil {
		return nil, err
	}

	return &Cylinder{
		surface: newSurface(opts),
		tube:    tube,
		bottom:  bottom,
		top:     top,
		height:  height,
	}, nil
}

// Height returns the cylinder height
func (c *Cylinder) Height() float64 { return c.height }

// Axis returns the axis the cylinder stands on
func (c *Cylinder) Axis() core.Ray { return c.tube.axis }

// Radius returns the cylinder radius
func (c *Cylinder) Radius() float64 { return c.tube.radius }

// NormalAt returns the cap normal on either cap and the tube normal on the
// lateral surface
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	s := c.tube.axial(point)
	switch {
	case core.IsZero(s):
		return c.bottom.plane.normal
	case core.IsZero(s - c.height):
		return c.top.plane.normal
	default:
		return c.tube.NormalAt(point)
	}
}

// Intersect returns lateral hits inside the axial span together with cap
// hits, nearest first
func (c *Cylinder) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	var hits []Intersection
	for _, hit := range c.tube.Intersect(ray, maxDistance) {
		s := c.tube.axial(hit.Point)
		if core.AlignZero(s) > 0 && core.AlignZero(s-c.height) < 0 {
			hits = append(hits, newIntersection(c, hit.Point))
		}
	}
	for _, disc := range [2]*Circle{c.bottom, c.top} {
		for _, hit := range disc.Intersect(ray, maxDistance) {
			hits = append(hits, newIntersection(c, hit.Point))
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		return ray.Origin.DistanceSquared(hits[i].Point) < ray.Origin.DistanceSquared(hits[j].Point)
	})
	return hits
}

// BoundingBox returns the axis-aligned bounding box for this cylinder
func (c *Cylinder) BoundingBox() core.AABB {
	return c.bottom.BoundingBox().Union(c.top.BoundingBox())
}
