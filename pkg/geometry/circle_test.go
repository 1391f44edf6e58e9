package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

func TestNewCircle_Validation(t *testing.T) {
	if _, err := NewCircle(core.Zero, 0, core.AxisZ); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Zero radius: expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := NewCircle(core.Zero, 1, core.Zero); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Zero normal: expected ErrInvalidGeometry, got %v", err)
	}
}

func TestCircle_Intersect(t *testing.T) {
	circle := must(NewCircle(core.Zero, 1, core.AxisZ))

	tests := []struct {
		name   string
		target core.Vec3
		hit    bool
	}{
		{"center", core.NewVec3(0, 0, 0), true},
		{"inside", core.NewVec3(0.5, 0.5, 0), true},
		{"on the rim", core.NewVec3(1, 0, 0), false},
		{"outside", core.NewVec3(2, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := tt.target.Add(core.NewVec3(0, 0, 1))
			hits := circle.Intersect(core.NewRay(origin, core.NewVec3(0, 0, -1)), math.Inf(1))
			var expected []core.Vec3
			if tt.hit {
				expected = []core.Vec3{tt.target}
			}
			checkPoints(t, hitPoints(hits), expected)
		})
	}
}

func TestCircle_BoundingBox(t *testing.T) {
	circle := must(NewCircle(core.NewVec3(1, 1, 1), 2, core.AxisY))
	box := circle.BoundingBox()
	if !approxVec(box.Min, core.NewVec3(-1, 1, -1)) || !approxVec(box.Max, core.NewVec3(3, 1, 3)) {
		t.Errorf("Unexpected bounding box %v - %v", box.Min, box.Max)
	}
}
