package geometry

import (
	"testing"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

const tolerance = 1e-9

func approxVec(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < tolerance
}

// must unwraps a constructor result for fixtures that are known to be valid
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// hitPoints extracts the points of a hit list in order
func hitPoints(hits []Intersection) []core.Vec3 {
	if hits == nil {
		return nil
	}
	points := make([]core.Vec3, len(hits))
	for i, hit := range hits {
		points[i] = hit.Point
	}
	return points
}

func checkPoints(t *testing.T, got, expected []core.Vec3) {
	t.Helper()
	if len(expected) == 0 {
		if got != nil {
			t.Fatalf("Expected no hits, got %v", got)
		}
		return
	}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d hits %v, got %d hits %v", len(expected), expected, len(got), got)
	}
	for i := range expected {
		if !approxVec(got[i], expected[i]) {
			t.Errorf("Hit %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}
