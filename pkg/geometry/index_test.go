package geometry

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

func indexTestMembers() []Intersectable {
	members := []Intersectable{
		must(NewPlane(core.NewVec3(0, -5, 0), core.AxisY)),
		must(NewTube(0.5, core.NewRay(core.NewVec3(8, 0, 0), core.AxisY))),
		must(NewCylinder(1, core.NewRay(core.NewVec3(-6, -5, -4), core.AxisY), 3)),
		must(NewCircle(core.NewVec3(0, 4, -2), 1.5, core.NewVec3(0, -1, 1))),
		must(NewTriangle(core.NewVec3(-3, 0, -6), core.NewVec3(3, 0, -6), core.NewVec3(0, 3, -6))),
		must(NewPolygon([]core.Vec3{
			core.NewVec3(2, -2, -3), core.NewVec3(4, -2, -3), core.NewVec3(4, 0, -3), core.NewVec3(2, 0, -3),
		})),
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			center := core.NewVec3(float64(i)*2.5-5, float64(j)*2.5-5, -8)
			members = append(members, must(NewSphere(center, 0.8)))
		}
	}
	return members
}

func sortedByDistance(ray core.Ray, hits []Intersection) []core.Vec3 {
	points := hitPoints(hits)
	sort.Slice(points, func(i, j int) bool {
		return ray.Origin.DistanceSquared(points[i]) < ray.Origin.DistanceSquared(points[j])
	})
	return points
}

func TestIndex_MatchesLinearScan(t *testing.T) {
	members := indexTestMembers()
	linear := NewGeometries(members...)
	index, err := NewIndex(members...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if index.Len() != len(members) {
		t.Fatalf("Expected %d indexed members, got %d", len(members), index.Len())
	}

	random := rand.New(rand.NewSource(42))
	origin := core.NewVec3(0, 0, 10)
	for i := 0; i < 500; i++ {
		target := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, -8)
		ray := core.NewRay(origin, target.Subtract(origin))
		for _, maxDistance := range []float64{math.Inf(1), 15} {
			expected := sortedByDistance(ray, linear.Intersect(ray, maxDistance))
			got := sortedByDistance(ray, index.Intersect(ray, maxDistance))
			if len(got) != len(expected) {
				t.Fatalf("Ray %d (max %g): expected %d hits, got %d", i, maxDistance, len(expected), len(got))
			}
			for k := range expected {
				if !approxVec(got[k], expected[k]) {
					t.Fatalf("Ray %d hit %d: expected %v, got %v", i, k, expected[k], got[k])
				}
			}
		}
	}
}

func TestIndex_Empty(t *testing.T) {
	index, err := NewIndex()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if hits := index.Intersect(core.NewRay(core.Zero, core.AxisZ), math.Inf(1)); hits != nil {
		t.Errorf("Expected nil for an empty index, got %d hits", len(hits))
	}
}

func TestIndex_RayStartingInsideBounds(t *testing.T) {
	sphere := must(NewSphere(core.Zero, 1))
	index, err := NewIndex(sphere)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	hits := index.Intersect(core.NewRay(core.Zero, core.AxisX), math.Inf(1))
	checkPoints(t, hitPoints(hits), []core.Vec3{core.NewVec3(1, 0, 0)})
}
