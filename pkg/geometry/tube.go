package geometry

import (
	"fmt"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Tube is an infinite cylinder of constant radius around an axis
type Tube struct {
	surface
	axis   core.Ray
	radius float64
}

// NewTube creates a new tube around axis. The radius must be positive.
func NewTube(radius float64, axis core.Ray, opts ...Option) (*Tube, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: tube radius %g must be positive", ErrInvalidGeometry, radius)
	}
	direction, err := core.Direction(axis.Direction)
	if err != nil {
		return nil, fmt.Errorf("%w: tube axis: %w", ErrInvalidGeometry, err)
	}
	return &Tube{
		surface: newSurface(opts),
		axis:    core.Ray{Origin: axis.Origin, Direction: direction},
		radius:  radius,
	}, nil
}

// Axis returns the tube axis
func (t *Tube) Axis() core.Ray { return t.axis }

// Radius returns the tube radius
func (t *Tube) Radius() float64 { return t.radius }

// NormalAt returns the unit vector from the axis to the point, perpendicular
// to the axis
func (t *Tube) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(t.axis.At(t.axial(point))).Normalize()
}

// axial returns the coordinate of point's projection along the axis
func (t *Tube) axial(point core.Vec3) float64 {
	if point.Equals(t.axis.Origin) {
		return 0
	}
	return point.Subtract(t.axis.Origin).Dot(t.axis.Direction)
}

// perpendicular removes the axis component of v
func (t *Tube) perpendicular(v core.Vec3) core.Vec3 {
	return v.Subtract(t.axis.Direction.Multiply(v.Dot(t.axis.Direction)))
}

// Intersect returns up to two hits, nearest first. Rays parallel to the axis
// and rays tangent to the tube miss.
func (t *Tube) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	t1, t2, ok := t.chord(ray)
	if !ok {
		return nil
	}

	var hits []Intersection
	for _, param := range [2]float64{t1, t2} {
		if withinRange(param, maxDistance) {
			hits = append(hits, newIntersection(t, ray.At(param)))
		}
	}
	return hits
}

// chord solves the problem in the plane perpendicular to the axis, where the
// tube is a circle, and scales the 2D parameters back onto the ray
func (t *Tube) chord(ray core.Ray) (float64, float64, bool) {
	direction := t.perpendicular(ray.Direction)
	if direction.IsZero() {
		return 0, 0, false
	}
	scale := direction.Length()

	var toAxis core.Vec3
	if !ray.Origin.Equals(t.axis.Origin) {
		toAxis = t.perpendicular(t.axis.Origin.Subtract(ray.Origin))
	}

	s1, s2, ok := chord(toAxis, direction.Multiply(1/scale), t.radius)
	if !ok {
		return 0, 0, false
	}
	return s1 / scale, s2 / scale, true
}
