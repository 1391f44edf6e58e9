package core

import (
	"errors"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, 5))
	if !ray.Direction.Equals(AxisZ) {
		t.Errorf("Expected unit direction %v, got %v", AxisZ, ray.Direction)
	}
}

func TestNewValidRay(t *testing.T) {
	ray, err := NewValidRay(NewVec3(1, 0, 0), NewVec3(0, 0, 5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ray.Direction.Equals(AxisZ) {
		t.Errorf("Expected unit direction %v, got %v", AxisZ, ray.Direction)
	}
	if _, err := NewValidRay(NewVec3(1, 0, 0), Zero); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector for a zero direction, got %v", err)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(1, 0, 0))

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"positive distance", 1, NewVec3(2, 0, 0)},
		{"negative distance", -1, NewVec3(0, 0, 0)},
		{"zero distance returns origin", 0, NewVec3(1, 0, 0)},
		{"sub-epsilon distance returns origin", 1e-12, NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ray.At(tt.t); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewRayWithOffset(t *testing.T) {
	origin := NewVec3(0, 0, 0)
	normal := AxisY

	tests := []struct {
		name      string
		direction Vec3
		expected  Vec3
	}{
		{"same side as normal", NewVec3(1, 1, 0), NewVec3(0, Delta, 0)},
		{"opposite side", NewVec3(1, -1, 0), NewVec3(0, -Delta, 0)},
		{"tangent keeps origin", NewVec3(1, 0, 0), origin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRayWithOffset(origin, tt.direction, normal)
			if !ray.Origin.Equals(tt.expected) {
				t.Errorf("Expected origin %v, got %v", tt.expected, ray.Origin)
			}
			if !IsZero(ray.Direction.Length() - 1) {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
		})
	}
}
