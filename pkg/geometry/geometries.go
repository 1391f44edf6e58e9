package geometry

import (
	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// Geometries is an unordered collection of intersectables that is itself
// intersectable, so collections can nest
type Geometries struct {
	members []Intersectable
}

// NewGeometries creates a collection holding the given members
func NewGeometries(members ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(members...)
	return g
}

// Add appends members to the collection
func (g *Geometries) Add(members ...Intersectable) {
	g.members = append(g.members, members...)
}

// Len returns the number of direct members
func (g *Geometries) Len() int { return len(g.members) }

// Members returns the direct members
func (g *Geometries) Members() []Intersectable { return g.members }

// Intersect concatenates every member's hits. It returns nil when no member
// is hit.
func (g *Geometries) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	return intersectAll(g.members, ray, maxDistance)
}

func intersectAll(members []Intersectable, ray core.Ray, maxDistance float64) []Intersection {
	var hits []Intersection
	for _, member := range members {
		if found := member.Intersect(ray, maxDistance); len(found) > 0 {
			hits = append(hits, found...)
		}
	}
	return hits
}
