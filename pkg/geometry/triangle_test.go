package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

func TestNewTriangle_RejectsDegenerateVertices(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 core.Vec3
	}{
		{"coincident", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)},
		{"collinear", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangle(tt.v0, tt.v1, tt.v2); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestTriangle_Intersect(t *testing.T) {
	triangle := must(NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)))

	tests := []struct {
		name   string
		target core.Vec3
		hit    bool
	}{
		{"interior", core.NewVec3(0.5, 0.5, 0), true},
		{"near an edge", core.NewVec3(1, 0.01, 0), true},
		{"on an edge", core.NewVec3(1, 0, 0), false},
		{"on the hypotenuse", core.NewVec3(1, 1, 0), false},
		{"on a vertex", core.NewVec3(2, 0, 0), false},
		{"outside against an edge", core.NewVec3(-0.5, 0.5, 0), false},
		{"outside against a vertex", core.NewVec3(3, -1, 0), false},
		{"outside beyond the hypotenuse", core.NewVec3(2, 2, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := tt.target.Add(core.NewVec3(0, 0, 1))
			hits := triangle.Intersect(core.NewRay(origin, core.NewVec3(0, 0, -1)), math.Inf(1))
			if !tt.hit {
				checkPoints(t, hitPoints(hits), nil)
				return
			}
			checkPoints(t, hitPoints(hits), []core.Vec3{tt.target})
		})
	}
}

func TestTriangle_Barycentric(t *testing.T) {
	v0, v1, v2 := core.NewVec3(1, 0, 0), core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 2)
	triangle := must(NewTriangle(v0, v1, v2))

	u, v := 0.2, 0.3
	target := v0.Multiply(1 - u - v).Add(v1.Multiply(u)).Add(v2.Multiply(v))
	origin := target.Add(triangle.NormalAt(target).Multiply(5))

	hits := triangle.Intersect(core.NewRay(origin, target.Subtract(origin)), math.Inf(1))
	if len(hits) != 1 {
		t.Fatalf("Expected exactly one hit, got %d", len(hits))
	}

	gotU, gotV := triangle.Barycentric(hits[0].Point)
	if math.Abs(gotU-u) > tolerance || math.Abs(gotV-v) > tolerance {
		t.Errorf("Expected barycentric (%f, %f), got (%f, %f)", u, v, gotU, gotV)
	}
	reconstructed := v0.Multiply(1 - gotU - gotV).Add(v1.Multiply(gotU)).Add(v2.Multiply(gotV))
	if !approxVec(reconstructed, hits[0].Point) {
		t.Errorf("Expected reconstructed point %v, got %v", hits[0].Point, reconstructed)
	}
}

func TestTriangle_ParallelRayMisses(t *testing.T) {
	triangle := must(NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)))
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0), core.NewVec3(1, 0, 0))
	if hits := triangle.Intersect(ray, math.Inf(1)); hits != nil {
		t.Errorf("Expected no hit, got %v", hitPoints(hits))
	}
}
