package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

func TestNewPlane_RejectsZeroNormal(t *testing.T) {
	_, err := NewPlane(core.NewVec3(0, 0, 1), core.Zero)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry, got %v", err)
	}
	if !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected wrapped ErrZeroVector, got %v", err)
	}
}

func TestNewPlaneFromPoints(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 core.Vec3
		wantErr    bool
	}{
		{"valid", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), false},
		{"first two coincide", core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), core.NewVec3(0, 1, 0), true},
		{"last two coincide", core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), true},
		{"collinear", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane, err := NewPlaneFromPoints(tt.p1, tt.p2, tt.p3)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Errorf("Expected ErrInvalidGeometry, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !approxVec(plane.Normal(), core.AxisZ) {
				t.Errorf("Expected normal %v, got %v", core.AxisZ, plane.Normal())
			}
		})
	}
}

func TestPlane_Intersect(t *testing.T) {
	plane := must(NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 2)))

	tests := []struct {
		name        string
		origin      core.Vec3
		direction   core.Vec3
		maxDistance float64
		expected    []core.Vec3
	}{
		{"crosses the plane", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), math.Inf(1), []core.Vec3{core.NewVec3(0, 0, 1)}},
		{"oblique crossing", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 1), math.Inf(1), []core.Vec3{core.NewVec3(1, 0, 1)}},
		{"points away", core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 1), math.Inf(1), nil},
		{"parallel", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), math.Inf(1), nil},
		{"parallel in the plane", core.NewVec3(1, 1, 1), core.NewVec3(1, 0, 0), math.Inf(1), nil},
		{"starts on the plane", core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 1), math.Inf(1), nil},
		{"starts at the plane point", core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 1), math.Inf(1), nil},
		{"beyond max distance", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0.5, nil},
		{"exactly at max distance", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1, []core.Vec3{core.NewVec3(0, 0, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := plane.Intersect(core.NewRay(tt.origin, tt.direction), tt.maxDistance)
			checkPoints(t, hitPoints(hits), tt.expected)
		})
	}
}
