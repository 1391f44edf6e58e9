package scene

import (
	"fmt"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/geometry"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is built once and
// read concurrently by the render workers.
type Scene struct {
	Name         string
	Background   core.Vec3              // Color of rays that hit nothing
	AmbientLight core.Vec3              // Ambient intensity, scaled by each material's Ka
	Geometries   geometry.Intersectable // Everything a ray can hit
	Lights       []lights.Source        // Lights in the scene
	Camera       CameraConfig           // Suggested viewpoint for presets
}

// CameraConfig describes the viewpoint a preset scene was composed for
type CameraConfig struct {
	Location   core.Vec3
	Target     core.Vec3
	Up         core.Vec3
	VPDistance float64 // View plane distance
	VPWidth    float64
	VPHeight   float64
	Width      int     // Default image width in pixels
	Height     int     // Default image height in pixels
	Aperture   float64 // Focal distance for depth of field, 0 for a pinhole
}

// New creates an empty scene with a black background and no ambient light
func New(name string) Scene {
	return Scene{Name: name, Geometries: geometry.NewGeometries()}
}

// WithBackground returns a copy with the background color set
func (s Scene) WithBackground(color core.Vec3) Scene {
	s.Background = color
	return s
}

// WithAmbientLight returns a copy with the ambient intensity set
func (s Scene) WithAmbientLight(intensity core.Vec3) Scene {
	s.AmbientLight = intensity
	return s
}

// WithGeometries returns a copy that renders the given geometries
func (s Scene) WithGeometries(geometries geometry.Intersectable) Scene {
	s.Geometries = geometries
	return s
}

// WithLights returns a copy lit by the given lights
func (s Scene) WithLights(sources ...lights.Source) Scene {
	s.Lights = append([]lights.Source(nil), sources...)
	return s
}

// WithCamera returns a copy with the suggested viewpoint set
func (s Scene) WithCamera(config CameraConfig) Scene {
	s.Camera = config
	return s
}

// Preprocess returns a copy whose flat geometry collection is replaced by a
// spatial index over the same members
func (s Scene) Preprocess() (Scene, error) {
	flat, ok := s.Geometries.(*geometry.Geometries)
	if !ok {
		return s, nil
	}
	index, err := geometry.NewIndex(flat.Members()...)
	if err != nil {
		return s, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	s.Geometries = index
	return s, nil
}
