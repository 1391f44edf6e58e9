package lights

import "github.com/minipNaf/ISE5785-9200-0429/pkg/core"

// Source is a light that illuminates points in the scene
type Source interface {
	// Intensity returns the light color arriving at point
	Intensity(point core.Vec3) core.Vec3

	// Direction returns the unit vector from the light toward point
	Direction(point core.Vec3) core.Vec3

	// Distance returns the distance from point to the light, +Inf for lights
	// at infinity
	Distance(point core.Vec3) float64

	// Radius returns the radius of the emitting disc, 0 for an ideal light
	Radius() float64
}
