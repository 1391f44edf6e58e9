package core

import (
	"math"
	"testing"
)

func TestAABB_Clip(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name   string
		ray    Ray
		tMax   float64
		hit    bool
		t0, t1 float64
	}{
		{"through center", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), math.Inf(1), true, 4, 6},
		{"starting inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), math.Inf(1), true, 0, 1},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), math.Inf(1), false, 0, 0},
		{"parallel outside slab", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), math.Inf(1), false, 0, 0},
		{"too short", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 3, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := box.Clip(tt.ray, 0, tt.tMax)
			if ok != tt.hit {
				t.Fatalf("Expected hit=%t, got %t", tt.hit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(t0-tt.t0) > 1e-9 || math.Abs(t1-tt.t1) > 1e-9 {
				t.Errorf("Expected interval [%f, %f], got [%f, %f]", tt.t0, tt.t1, t0, t1)
			}
			if box.Hit(tt.ray, 0, tt.tMax) != ok {
				t.Error("Hit disagrees with Clip")
			}
		})
	}
}

func TestAABB_UnionAndExpand(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0), NewVec3(0, 3, 0.5))

	u := a.Union(b)
	if u.Min != NewVec3(-2, 0, 0) || u.Max != NewVec3(1, 3, 1) {
		t.Errorf("Unexpected union %v - %v", u.Min, u.Max)
	}

	e := a.Expand(0.5)
	if e.Min != NewVec3(-0.5, -0.5, -0.5) || e.Max != NewVec3(1.5, 1.5, 1.5) {
		t.Errorf("Unexpected expansion %v - %v", e.Min, e.Max)
	}
}
