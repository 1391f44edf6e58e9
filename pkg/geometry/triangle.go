package geometry

import (
	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Triangle represents a triangle defined by three vertices
type Triangle struct {
	surface
	v0, v1, v2 core.Vec3
	plane      *Plane // Supporting plane
}

// NewTriangle creates a new triangle. Coincident or collinear vertices are
// rejected.
func NewTriangle(v0, v1, v2 core.Vec3, opts ...Option) (*Triangle, error) {
	plane, err := NewPlaneFromPoints(v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &Triangle{surface: newSurface(opts), v0: v0, v1: v1, v2: v2, plane: plane}, nil
}

// Vertices returns the three vertices
func (t *Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.v0, t.v1, t.v2
}

// NormalAt returns the normal of the supporting plane
func (t *Triangle) NormalAt(core.Vec3) core.Vec3 { return t.plane.normal }

// Barycentric returns the coordinates (u, v) of a point in the triangle's
// plane such that point = (1−u−v)·v0 + u·v1 + v·v2, solved by Cramer's rule
func (t *Triangle) Barycentric(point core.Vec3) (float64, float64) {
	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)
	w := point.Subtract(t.v0)

	d11 := edge1.Dot(edge1)
	d12 := edge1.Dot(edge2)
	d22 := edge2.Dot(edge2)
	w1 := w.Dot(edge1)
	w2 := w.Dot(edge2)

	det := d11*d22 - d12*d12
	u := (w1*d22 - w2*d12) / det
	v := (d11*w2 - d12*w1) / det
	return u, v
}

// Intersect returns the hit with the triangle interior. Points on an edge or
// vertex are misses.
func (t *Triangle) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	distance, ok := t.plane.distance(ray, maxDistance)
	if !ok {
		return nil
	}

	point := ray.At(distance)
	u, v := t.Barycentric(point)
	if core.AlignZero(u) <= 0 || core.AlignZero(v) <= 0 || core.AlignZero(u+v-1) >= 0 {
		return nil
	}
	return []Intersection{newIntersection(t, point)}
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.v0, t.v1, t.v2)
}
