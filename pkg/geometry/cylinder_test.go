package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

func newTestCylinder() *Cylinder {
	return must(NewCylinder(1, core.NewRay(core.Zero, core.AxisZ), 2))
}

func TestNewCylinder_Validation(t *testing.T) {
	axis := core.NewRay(core.Zero, core.AxisZ)
	if _, err := NewCylinder(1, axis, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Zero height: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := NewCylinder(-1, axis, 1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Negative radius: expected ErrInvalidGeometry, got %v", err)
	}
}

func TestCylinder_Intersect(t *testing.T) {
	cylinder := newTestCylinder()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expected  []core.Vec3
	}{
		{"through the lateral surface", core.NewVec3(-2, 0, 1), core.NewVec3(1, 0, 0),
			[]core.Vec3{core.NewVec3(-1, 0, 1), core.NewVec3(1, 0, 1)}},
		{"through both caps", core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1),
			[]core.Vec3{core.NewVec3(0.5, 0, 0), core.NewVec3(0.5, 0, 2)}},
		{"through both caps from above", core.NewVec3(0, 0.5, 3), core.NewVec3(0, 0, -1),
			[]core.Vec3{core.NewVec3(0, 0.5, 2), core.NewVec3(0, 0.5, 0)}},
		{"lateral surface then top cap", core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 1),
			[]core.Vec3{core.NewVec3(-1, 0, 1), core.NewVec3(0, 0, 2)}},
		{"passes above", core.NewVec3(-2, 0, 3), core.NewVec3(1, 0, 0), nil},
		{"passes beside", core.NewVec3(-2, 2, 1), core.NewVec3(1, 0, 0), nil},
		{"starts on the top cap plane moving away", core.NewVec3(0.5, 0, 2), core.NewVec3(0, 0, 1), nil},
		{"starts on the top cap plane moving obliquely away", core.NewVec3(0.5, 0, 2), core.NewVec3(1, 0, 1), nil},
		{"starts on the bottom cap plane moving away", core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1), nil},
		{"starts inside", core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0),
			[]core.Vec3{core.NewVec3(1, 0, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := cylinder.Intersect(core.NewRay(tt.origin, tt.direction), math.Inf(1))
			checkPoints(t, hitPoints(hits), tt.expected)
			for _, hit := range hits {
				if hit.Surface != cylinder {
					t.Errorf("Expected hit surface to be the cylinder, got %T", hit.Surface)
				}
			}
		})
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	cylinder := newTestCylinder()

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"bottom cap", core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1)},
		{"top cap", core.NewVec3(0, 0.5, 2), core.NewVec3(0, 0, 1)},
		{"lateral surface", core.NewVec3(1, 0, 1), core.NewVec3(1, 0, 0)},
		{"lateral surface near the bottom", core.NewVec3(0, -1, 0.5), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cylinder.NormalAt(tt.point); !approxVec(got, tt.expected) {
				t.Errorf("Expected normal %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCylinder_BoundingBox(t *testing.T) {
	box := newTestCylinder().BoundingBox()
	if !approxVec(box.Min, core.NewVec3(-1, -1, 0)) || !approxVec(box.Max, core.NewVec3(1, 1, 2)) {
		t.Errorf("Unexpected bounding box %v - %v", box.Min, box.Max)
	}
}
