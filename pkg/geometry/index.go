package geometry

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// boundPadding keeps flat boxes (a triangle in an axis plane, a disc facing
// an axis) from collapsing to zero width in the tree
const boundPadding = 1e-6

// Index is an intersectable collection that keeps bounded members in an
// R-tree and only tests the members whose boxes the ray segment can reach.
// Unbounded members (planes, tubes) are always tested. Its hits are the same
// set the linear Geometries would return.
type Index struct {
	tree      *rtreego.Rtree
	bounds    core.AABB // Union of all bounded members
	unbounded []Intersectable
}

// indexEntry adapts a bounded member to rtreego.Spatial
type indexEntry struct {
	member Intersectable
	box    core.AABB
	rect   rtreego.Rect
}

func (e *indexEntry) Bounds() rtreego.Rect { return e.rect }

// NewIndex builds an index over members. Nested collections are indexed as
// unbounded members.
func NewIndex(members ...Intersectable) (*Index, error) {
	index := &Index{}
	var entries []rtreego.Spatial
	for _, member := range members {
		bounded, ok := member.(Bounded)
		if !ok {
			index.unbounded = append(index.unbounded, member)
			continue
		}

		box := bounded.BoundingBox().Expand(boundPadding)
		rect, err := toRect(box)
		if err != nil {
			return nil, fmt.Errorf("indexing %T: %w", member, err)
		}
		if len(entries) == 0 {
			index.bounds = box
		} else {
			index.bounds = index.bounds.Union(box)
		}
		entries = append(entries, &indexEntry{member: member, box: box, rect: rect})
	}

	index.tree = rtreego.NewTree(3, 2, 8, entries...)
	return index, nil
}

// Len returns the number of indexed members
func (idx *Index) Len() int {
	return idx.tree.Size() + len(idx.unbounded)
}

// Intersect returns every hit within maxDistance, or nil when nothing is hit
func (idx *Index) Intersect(ray core.Ray, maxDistance float64) []Intersection {
	hits := intersectAll(idx.unbounded, ray, maxDistance)
	for _, member := range idx.candidates(ray, maxDistance) {
		if found := member.Intersect(ray, maxDistance); len(found) > 0 {
			hits = append(hits, found...)
		}
	}
	return hits
}

// candidates returns the bounded members whose boxes the ray enters within
// maxDistance
func (idx *Index) candidates(ray core.Ray, maxDistance float64) []Intersectable {
	if idx.tree.Size() == 0 {
		return nil
	}
	t0, t1, ok := idx.bounds.Clip(ray, 0, maxDistance)
	if !ok {
		return nil
	}

	// Box of the ray segment inside the scene bounds
	segment := core.NewAABBFromPoints(ray.At(t0), ray.At(t1)).Expand(boundPadding)
	query, err := toRect(segment)
	if err != nil {
		return nil
	}

	found := idx.tree.SearchIntersect(query, func(_ []rtreego.Spatial, object rtreego.Spatial) (bool, bool) {
		return !object.(*indexEntry).box.Hit(ray, 0, maxDistance), false
	})

	members := make([]Intersectable, len(found))
	for i, object := range found {
		members[i] = object.(*indexEntry).member
	}
	return members
}

func toRect(box core.AABB) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z},
		rtreego.Point{box.Max.X, box.Max.Y, box.Max.Z},
	)
}
