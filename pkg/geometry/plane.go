package geometry

import (
	"fmt"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	surface
	point  core.Vec3 // A point on the plane
	normal core.Vec3 // Unit normal
}

// NewPlane creates a plane through point with the given normal
func NewPlane(point, normal core.Vec3, opts ...Option) (*Plane, error) {
	if _, err := core.Direction(normal); err != nil {
		return nil, fmt.Errorf("%w: plane normal: %w", ErrInvalidGeometry, err)
	}
	return &Plane{
		surface: newSurface(opts),
		point:   point,
		normal:  normal.Normalize(),
	}, nil
}

// NewPlaneFromPoints creates the plane through three points. The points must
// be distinct and not on one line.
func NewPlaneFromPoints(p1, p2, p3 core.Vec3, opts ...Option) (*Plane, error) {
	normal, err := supportNormal(p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return &Plane{surface: newSurface(opts), point: p1, normal: normal}, nil
}

// supportNormal returns the unit normal of the plane through three points
func supportNormal(p1, p2, p3 core.Vec3) (core.Vec3, error) {
	if p1.Equals(p2) || p1.Equals(p3) || p2.Equals(p3) {
		return core.Zero, fmt.Errorf("%w: coincident points %v, %v, %v", ErrInvalidGeometry, p1, p2, p3)
	}
	cross := p2.Subtract(p1).Cross(p3.Subtract(p1))
	if cross.IsZero() {
		return core.Zero, fmt.Errorf("%w: collinear points %v, %v, %v", ErrInvalidGeometry, p1, p2, p3)
	}
	return cross.Normalize(), nil
}

// Normal returns the plane's unit normal
func (p *Plane) Normal() core.Vec3 { return p.normal }

// Point returns the reference point of the plane
func (p *Plane) Point() core.Vec3 { return p.point }

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 { return p.normal }

// Intersect returns the single hit of the ray with the plane, if any
func (p *Plane) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	t, ok := p.distance(ray, maxDistance)
	if !ok {
		return nil
	}
	return []Intersection{newIntersection(p, ray.At(t))}
}

// distance solves t = n·(Q−O) / n·d. Parallel rays and rays starting on the
// plane never hit.
func (p *Plane) distance(ray core.Ray, maxDistance float64) (float64, bool) {
	if p.point.Equals(ray.Origin) {
		return 0, false
	}
	denominator := core.AlignZero(p.normal.Dot(ray.Direction))
	if denominator == 0 {
		return 0, false
	}
	numerator := core.AlignZero(p.normal.Dot(p.point.Subtract(ray.Origin)))
	if numerator == 0 {
		return 0, false
	}
	t := numerator / denominator
	if !withinRange(t, maxDistance) {
		return 0, false
	}
	return t, true
}
