package geometry

import (
	"fmt"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Polygon is a planar convex polygon with at least three vertices
type Polygon struct {
	surface
	vertices []core.Vec3
	plane    *Plane
}

// NewPolygon creates a polygon from vertices listed in order around its edge.
// The vertices must be distinct, coplanar and form a convex outline with no
// three consecutive vertices on one line.
func NewPolygon(vertices []core.Vec3, opts ...Option) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidGeometry, len(vertices))
	}
	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2])
	if err != nil {
		return nil, err
	}
	n := plane.normal
	count := len(vertices)

	var winding float64
	for i := range vertices {
		prev := vertices[i]
		curr := vertices[(i+1)%count]
		next := vertices[(i+2)%count]

		if core.AlignZero(n.Dot(curr.Subtract(vertices[0]))) != 0 {
			return nil, fmt.Errorf("%w: vertex %v is not on the polygon plane", ErrInvalidGeometry, curr)
		}
		if prev.Equals(curr) {
			return nil, fmt.Errorf("%w: coincident vertices %v", ErrInvalidGeometry, curr)
		}

		turn := core.AlignZero(curr.Subtract(prev).Cross(next.Subtract(curr)).Dot(n))
		if turn == 0 {
			return nil, fmt.Errorf("%w: collinear vertices %v, %v, %v", ErrInvalidGeometry, prev, curr, next)
		}
		if i == 0 {
			winding = turn
		} else if !core.CompareSign(winding, turn) {
			return nil, fmt.Errorf("%w: polygon is not convex at vertex %v", ErrInvalidGeometry, curr)
		}
	}

	return &Polygon{
		surface:  newSurface(opts),
		vertices: append([]core.Vec3(nil), vertices...),
		plane:    plane,
	}, nil
}

// Vertices returns a copy of the polygon vertices
func (p *Polygon) Vertices() []core.Vec3 {
	return append([]core.Vec3(nil), p.vertices...)
}

// NormalAt returns the normal of the supporting plane
func (p *Polygon) NormalAt(core.Vec3) core.Vec3 { return p.plane.normal }

// Intersect returns the hit with the polygon interior. The plane hit must lie
// strictly on the same side of every edge.
func (p *Polygon) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	distance, ok := p.plane.distance(ray, maxDistance)
	if !ok {
		return nil
	}

	point := ray.At(distance)
	n := p.plane.normal
	count := len(p.vertices)

	var side float64
	for i, vertex := range p.vertices {
		edge := p.vertices[(i+1)%count].Subtract(vertex)
		s := core.AlignZero(edge.Cross(point.Subtract(vertex)).Dot(n))
		if s == 0 {
			return nil
		}
		if i == 0 {
			side = s
		} else if !core.CompareSign(side, s) {
			return nil
		}
	}
	return []Intersection{newIntersection(p, point)}
}

// BoundingBox returns the axis-aligned bounding box for this polygon
func (p *Polygon) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(p.vertices...)
}
