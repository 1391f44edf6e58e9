package geometry

import (
	"math"
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

func TestGeometries_Intersect(t *testing.T) {
	sphere := must(NewSphere(core.NewVec3(0, 0, -3), 1))
	triangle := must(NewTriangle(core.NewVec3(-1, -1, -6), core.NewVec3(1, -1, -6), core.NewVec3(0, 1, -6)))
	plane := must(NewPlane(core.NewVec3(0, 0, -10), core.AxisZ))
	aside := must(NewSphere(core.NewVec3(5, 5, 5), 1))

	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		members  []Intersectable
		expected int
	}{
		{"empty", nil, 0},
		{"no member hit", []Intersectable{aside}, 0},
		{"single member hit", []Intersectable{aside, plane}, 1},
		{"all hit", []Intersectable{sphere, triangle, plane, aside}, 4},
		{"nested collection", []Intersectable{NewGeometries(sphere, triangle), plane}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geometries := NewGeometries(tt.members...)
			hits := geometries.Intersect(ray, math.Inf(1))
			if tt.expected == 0 {
				if hits != nil {
					t.Errorf("Expected nil, got %d hits", len(hits))
				}
				return
			}
			if len(hits) != tt.expected {
				t.Errorf("Expected %d hits, got %d", tt.expected, len(hits))
			}
		})
	}
}

func TestGeometries_Add(t *testing.T) {
	geometries := NewGeometries()
	if geometries.Len() != 0 {
		t.Fatalf("Expected empty collection, got %d members", geometries.Len())
	}
	geometries.Add(must(NewSphere(core.Zero, 1)), must(NewPlane(core.Zero, core.AxisY)))
	if geometries.Len() != 2 {
		t.Errorf("Expected 2 members, got %d", geometries.Len())
	}
}

func TestClosestIntersection(t *testing.T) {
	near := must(NewSphere(core.NewVec3(0, 0, -3), 1))
	far := must(NewSphere(core.NewVec3(0, 0, -10), 1))
	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))

	hits := NewGeometries(far, near).Intersect(ray, math.Inf(1))
	closest, ok := ClosestIntersection(ray, hits)
	if !ok {
		t.Fatal("Expected a closest intersection")
	}
	if closest.Surface != near || !approxVec(closest.Point, core.NewVec3(0, 0, -2)) {
		t.Errorf("Expected the near sphere at (0, 0, -2), got %v", closest.Point)
	}

	if _, ok := ClosestIntersection(ray, nil); ok {
		t.Error("Expected no closest intersection for an empty list")
	}
}

func TestClosestIntersection_TieKeepsFirst(t *testing.T) {
	first := must(NewPlane(core.NewVec3(0, 0, -1), core.AxisZ))
	second := must(NewPlane(core.NewVec3(0, 0, -1), core.AxisZ))
	ray := core.NewRay(core.Zero, core.NewVec3(0, 0, -1))

	hits := NewGeometries(first, second).Intersect(ray, math.Inf(1))
	closest, _ := ClosestIntersection(ray, hits)
	if closest.Surface != first {
		t.Error("Expected the first hit to win a tie")
	}
}

func TestFindIntersections(t *testing.T) {
	sphere := must(NewSphere(core.Zero, 1))

	points := FindIntersections(sphere, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	checkPoints(t, points, []core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)})

	if points := FindIntersections(sphere, core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))); points != nil {
		t.Errorf("Expected nil for a miss, got %v", points)
	}
}

func TestSurfaceOptions(t *testing.T) {
	emission := core.NewVec3(10, 20, 30)
	sphere := must(NewSphere(core.Zero, 1, WithEmission(emission)))
	if sphere.Emission() != emission {
		t.Errorf("Expected emission %v, got %v", emission, sphere.Emission())
	}
	if sphere.Material().Ka != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected default material, got %+v", sphere.Material())
	}

	hits := sphere.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), math.Inf(1))
	if len(hits) == 0 || hits[0].Material != sphere.Material() {
		t.Error("Expected hits to carry the surface material")
	}
}

func TestNormalsAreUnit(t *testing.T) {
	axis := core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(1, 2, 3))

	tests := []struct {
		name    string
		surface Surface
		point   core.Vec3
	}{
		{"plane", must(NewPlane(core.Zero, core.NewVec3(3, 4, 5))), core.Zero},
		{"sphere", must(NewSphere(core.NewVec3(1, 2, 3), 4)), core.NewVec3(1, 2, 7)},
		{"triangle", must(NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(3, 0, 1), core.NewVec3(0, 5, 2))), core.NewVec3(1, 1, 0.6)},
		{"polygon", must(NewPolygon([]core.Vec3{
			core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), core.NewVec3(4, 4, 4), core.NewVec3(0, 4, 4),
		})), core.NewVec3(2, 2, 2)},
		{"tube", must(NewTube(2, axis)), axis.At(3).Add(core.NewVec3(2, -1, 0).Normalize().Multiply(2))},
		{"circle", must(NewCircle(core.Zero, 2, core.NewVec3(1, 1, 0))), core.Zero},
		{"cylinder lateral", must(NewCylinder(2, axis, 5)), axis.At(3).Add(core.NewVec3(2, -1, 0).Normalize().Multiply(2))},
		{"cylinder cap", must(NewCylinder(2, axis, 5)), axis.At(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normal := tt.surface.NormalAt(tt.point)
			if math.Abs(normal.Length()-1) > tolerance {
				t.Errorf("Expected unit normal, got %v with length %f", normal, normal.Length())
			}
		})
	}
}
