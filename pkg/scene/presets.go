package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/geometry"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/lights"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/material"
)

// ErrUnknownScene is returned by Load for an unregistered scene ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
}

type preset struct {
	info  SceneInfo
	build func() (Scene, error)
}

var presets = []preset{
	{SceneInfo{"sphere", "Sphere", "Black sphere on a white background"}, NewSphereScene},
	{SceneInfo{"sphere-lights", "Sphere Lights", "Sphere lit by a spot, a point and a directional light"}, NewSphereLightsScene},
	{SceneInfo{"triangles-lights", "Triangles Lights", "Two triangles lit by three kinds of light"}, NewTrianglesLightsScene},
	{SceneInfo{"soft-shadows", "Soft Shadows", "Mixed primitives on a ground plane under disc lights"}, NewSoftShadowsScene},
	{SceneInfo{"depth-of-field", "Depth of Field", "Spheres at increasing depth, focused on the middle one"}, NewDepthOfFieldScene},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, len(presets))
	for i, p := range presets {
		infos[i] = p.info
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Load builds the built-in scene with the given ID
func Load(id string) (Scene, error) {
	for _, p := range presets {
		if p.info.ID == id {
			s, err := p.build()
			if err != nil {
				return Scene{}, fmt.Errorf("building scene %q: %w", id, err)
			}
			return s, nil
		}
	}
	return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// collector gathers constructor results and keeps the first error
type collector struct {
	geometries *geometry.Geometries
	lights     []lights.Source
	err        error
}

func newCollector() *collector {
	return &collector{geometries: geometry.NewGeometries()}
}

func (c *collector) shape(s geometry.Surface, err error) {
	if err != nil {
		c.fail(err)
		return
	}
	c.geometries.Add(s)
}

func (c *collector) light(l lights.Source, err error) {
	if err != nil {
		c.fail(err)
		return
	}
	c.lights = append(c.lights, l)
}

func (c *collector) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *collector) scene(s Scene) (Scene, error) {
	if c.err != nil {
		return Scene{}, c.err
	}
	return s.WithGeometries(c.geometries).WithLights(c.lights...), nil
}

func phong(kd, ks float64, shininess int) geometry.Option {
	return geometry.WithMaterial(material.New().WithKd(kd).WithKs(ks).WithShininess(shininess))
}

func rgb(r, g, b float64) core.Vec3 { return core.NewVec3(r, g, b) }

// NewSphereScene creates a single black sphere against a white background,
// filling the middle of the frame
func NewSphereScene() (Scene, error) {
	c := newCollector()
	c.shape(geometry.NewSphere(core.NewVec3(1, 0, 0), 100, geometry.WithEmission(core.Zero)))

	return c.scene(New("Sphere").
		WithBackground(rgb(255, 255, 255)).
		WithCamera(CameraConfig{
			Location:   core.NewVec3(0, 0, 500),
			Target:     core.Zero,
			Up:         core.AxisY,
			VPDistance: 100,
			VPWidth:    100,
			VPHeight:   100,
			Width:      200,
			Height:     200,
		}))
}

// NewSphereLightsScene creates a shiny blue sphere lit by one light of each
// kind
func NewSphereLightsScene() (Scene, error) {
	c := newCollector()
	c.shape(geometry.NewSphere(core.NewVec3(0, 0, -50), 50,
		geometry.WithEmission(rgb(0, 0, 127.5)), phong(0.5, 0.5, 301)))

	c.light(lights.NewSpot(rgb(0, 255, 255), core.NewVec3(-80, 0, 0), core.NewVec3(42, 12, -20)))
	c.light(lights.NewPoint(rgb(255, 204, 102), core.NewVec3(20, 20, 0)).WithKL(0.001).WithKQ(0.0001), nil)
	c.light(lights.NewDirectional(rgb(400, 400, 0), core.NewVec3(1, 1, -1.5)))

	return c.scene(New("Sphere Lights").WithCamera(CameraConfig{
		Location:   core.NewVec3(0, 0, 1000),
		Target:     core.Zero,
		Up:         core.AxisY,
		VPDistance: 1000,
		VPWidth:    150,
		VPHeight:   150,
		Width:      500,
		Height:     500,
	}))
}

// NewTrianglesLightsScene creates two large triangles meeting at a shared
// edge, lit by a spot, a point and a directional light
func NewTrianglesLightsScene() (Scene, error) {
	m := geometry.WithMaterial(material.New().
		WithKdVec(core.NewVec3(0.2, 0.6, 0.4)).
		WithKsVec(core.NewVec3(0.2, 0.4, 0.3)).
		WithShininess(301))
	leftBottom := core.NewVec3(-110, -110, -150)
	rightTop := core.NewVec3(95, 100, -150)

	c := newCollector()
	c.shape(geometry.NewTriangle(leftBottom, rightTop, core.NewVec3(110, -110, -150), m))
	c.shape(geometry.NewTriangle(leftBottom, rightTop, core.NewVec3(-75, 78, 100), m))

	spot, err := lights.NewSpot(rgb(0, 400, 400), core.NewVec3(0, 0, -30), core.NewVec3(4.14, -13.77, -100))
	c.light(spot.WithKC(0.001).WithKL(0.001).WithKQ(0.0001), err)
	c.light(lights.NewDirectional(rgb(0, 200, 0), core.NewVec3(-140, 153, 50)))
	c.light(lights.NewPoint(rgb(3000, 51, 0), core.NewVec3(-20, 20, 0)).WithKL(0.005).WithKQ(0.0009), nil)

	return c.scene(New("Triangles Lights").
		WithAmbientLight(rgb(38, 38, 38)).
		WithCamera(CameraConfig{
			Location:   core.NewVec3(0, 0, 1000),
			Target:     core.Zero,
			Up:         core.AxisY,
			VPDistance: 1000,
			VPWidth:    200,
			VPHeight:   200,
			Width:      500,
			Height:     500,
		}))
}

// NewSoftShadowsScene creates a ground plane with a mix of primitives lit by
// three spot lights with disc radii
func NewSoftShadowsScene() (Scene, error) {
	up := core.AxisY
	c := newCollector()
	c.shape(geometry.NewPlane(core.NewVec3(0, -50, 0), up,
		geometry.WithEmission(rgb(180, 180, 180)), phong(0.7, 0.2, 10)))
	c.shape(geometry.NewCylinder(20, core.NewRay(core.NewVec3(80, 0, 60), up), 50,
		geometry.WithEmission(rgb(100, 200, 100)), phong(0.7, 0.4, 70)))
	c.shape(geometry.NewTube(10, core.NewRay(core.NewVec3(-80, 0, 90), up),
		geometry.WithEmission(rgb(250, 100, 150)), phong(0.5, 0.5, 80)))
	c.shape(geometry.NewSphere(core.NewVec3(60, 10, -40), 25,
		geometry.WithEmission(rgb(200, 100, 250)), phong(0.6, 0.4, 90)))
	c.shape(geometry.NewTriangle(core.NewVec3(-90, 0, -80), core.NewVec3(-110, 50, -80), core.NewVec3(-70, 40, -80),
		geometry.WithEmission(rgb(150, 250, 50)), phong(0.6, 0.3, 50)))
	c.shape(geometry.NewPolygon([]core.Vec3{
		core.NewVec3(-60, 0, 110), core.NewVec3(-30, 50, 100), core.NewVec3(30, 50, 100), core.NewVec3(60, 0, 110),
	}, geometry.WithEmission(rgb(200, 200, 50)), phong(0.5, 0.5, 100)))
	c.shape(geometry.NewTube(15, core.NewRay(core.NewVec3(70, 0, -80), up),
		geometry.WithEmission(rgb(100, 150, 250)), phong(0.7, 0.3, 70)))
	c.shape(geometry.NewCylinder(30, core.NewRay(core.NewVec3(-50, 0, 60), up), 60,
		geometry.WithEmission(rgb(250, 150, 100)), phong(0.6, 0.4, 80)))
	c.shape(geometry.NewCircle(core.NewVec3(0, -49, 40), 25, up,
		geometry.WithEmission(rgb(220, 140, 200)), phong(0.6, 0.4, 75)))
	c.shape(geometry.NewTriangle(core.NewVec3(-30, 0, -120), core.NewVec3(-50, 60, -120), core.NewVec3(-10, 50, -120),
		geometry.WithEmission(rgb(250, 180, 90)), phong(0.5, 0.5, 85)))

	spots := []struct {
		color     core.Vec3
		position  core.Vec3
		direction core.Vec3
		radius    float64
	}{
		{rgb(300, 250, 200), core.NewVec3(50, 150, 100), core.NewVec3(-1, -1, -1), 10},
		{rgb(250, 300, 250), core.NewVec3(-100, 200, 100), core.NewVec3(1, -1, -2), 12},
		{rgb(200, 250, 300), core.NewVec3(100, 50, 150), core.NewVec3(-1, -1, -1), 15},
	}
	for _, s := range spots {
		spot, err := lights.NewSpot(s.color, s.position, s.direction)
		c.light(spot.WithKL(1e-4).WithKQ(1e-5).WithRadius(s.radius), err)
	}

	return c.scene(New("Soft Shadows").WithCamera(CameraConfig{
		Location:   core.NewVec3(0, 100, 500),
		Target:     core.NewVec3(0, 100, 0),
		Up:         up,
		VPDistance: 300,
		VPWidth:    250,
		VPHeight:   250,
		Width:      500,
		Height:     500,
	}))
}

// NewDepthOfFieldScene creates a diagonal row of spheres receding from the
// camera with triangles behind them, focused on the middle of the row
func NewDepthOfFieldScene() (Scene, error) {
	m := phong(0.5, 0.3, 30)
	c := newCollector()
	for i := 0; i < 7; i++ {
		fi := float64(i)
		c.shape(geometry.NewSphere(core.NewVec3((fi-3)*30, 0, 150+fi*30), 15,
			geometry.WithEmission(rgb(30*fi, 255-30*fi, 50+20*fi)), m))
	}
	c.shape(geometry.NewTriangle(core.NewVec3(-60, 30, 300), core.NewVec3(-30, 0, 300), core.NewVec3(-90, 0, 300),
		geometry.WithEmission(rgb(150, 150, 255)), m))
	c.shape(geometry.NewTriangle(core.NewVec3(30, 30, 330), core.NewVec3(60, 0, 330), core.NewVec3(0, 0, 330),
		geometry.WithEmission(rgb(255, 200, 100)), m))
	c.shape(geometry.NewTriangle(core.NewVec3(0, 40, 360), core.NewVec3(30, 10, 360), core.NewVec3(-30, 10, 360),
		geometry.WithEmission(rgb(100, 255, 100)), m))

	spot, err := lights.NewSpot(rgb(500, 500, 500), core.NewVec3(50, -50, 150), core.NewVec3(-1, 1, 0))
	c.light(spot.WithKL(0.0002).WithKQ(0.00002), err)

	return c.scene(New("Depth of Field").
		WithAmbientLight(rgb(20, 20, 20)).
		WithCamera(CameraConfig{
			Location:   core.NewVec3(0, -200, 150),
			Target:     core.NewVec3(0, 0, 200),
			Up:         core.AxisZ,
			VPDistance: 200,
			VPWidth:    150,
			VPHeight:   150,
			Width:      600,
			Height:     600,
			Aperture:   200,
		}))
}
