package integrator

import (
	"math"
	"math/rand"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/geometry"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/lights"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/sampling"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/scene"
)

// DefaultShadowSamples is the soft shadow grid side used when none is set
const DefaultShadowSamples = 9

// Config holds the tracer settings
type Config struct {
	Shadows       ShadowMode
	ShadowSamples int // Grid side for soft shadows
}

// SimpleRayTracer shades the nearest hit with the Phong model: ambient,
// emission and the diffuse and specular terms of every light on the visible
// side of the surface. There are no secondary bounces.
type SimpleRayTracer struct {
	scene  scene.Scene
	config Config
}

// NewSimpleRayTracer creates a tracer for the scene
func NewSimpleRayTracer(s scene.Scene, config Config) *SimpleRayTracer {
	if config.ShadowSamples < 1 {
		config.ShadowSamples = DefaultShadowSamples
	}
	return &SimpleRayTracer{scene: s, config: config}
}

// TraceRay returns the background for a miss and the shaded color of the
// nearest hit otherwise
func (rt *SimpleRayTracer) TraceRay(ray core.Ray, random *rand.Rand) core.Vec3 {
	hits := rt.scene.Geometries.Intersect(ray, math.Inf(1))
	hit, ok := geometry.ClosestIntersection(ray, hits)
	if !ok {
		return rt.scene.Background
	}
	return rt.calcColor(&hit, ray, random)
}

func (rt *SimpleRayTracer) calcColor(hit *geometry.Intersection, ray core.Ray, random *rand.Rand) core.Vec3 {
	emission := hit.Surface.Emission()
	// Grazing rays see the surface unlit
	if !prepare(hit, ray.Direction) {
		return emission
	}
	color := rt.scene.AmbientLight.MultiplyVec(hit.Material.Ka).Add(emission)
	return color.Add(rt.localEffects(hit, random))
}

func (rt *SimpleRayTracer) localEffects(hit *geometry.Intersection, random *rand.Rand) core.Vec3 {
	color := core.Zero
	for _, light := range rt.scene.Lights {
		if !setLight(hit, light) {
			continue
		}
		visible := rt.transparency(hit, random)
		if core.IsZero(visible) {
			continue
		}
		intensity := light.Intensity(hit.Point).Multiply(visible)
		color = color.Add(intensity.MultiplyVec(diffuse(hit).Add(specular(hit))))
	}
	return color
}

// prepare fills in the view dependent fields and reports whether the ray
// meets the surface at a nonzero angle
func prepare(hit *geometry.Intersection, view core.Vec3) bool {
	hit.View = view
	hit.Normal = hit.Surface.NormalAt(hit.Point)
	hit.NV = core.AlignZero(hit.Normal.Dot(view))
	return hit.NV != 0
}

// setLight fills in the light dependent fields and reports whether the light
// is on the side of the surface the viewer sees
func setLight(hit *geometry.Intersection, light lights.Source) bool {
	hit.Light = light
	hit.L = light.Direction(hit.Point)
	hit.LN = core.AlignZero(hit.L.Dot(hit.Normal))
	return core.CompareSign(hit.LN, hit.NV)
}

func diffuse(hit *geometry.Intersection) core.Vec3 {
	return hit.Material.Kd.Multiply(math.Abs(hit.LN))
}

func specular(hit *geometry.Intersection) core.Vec3 {
	r := hit.L.Subtract(hit.Normal.Multiply(2 * hit.LN))
	rv := core.AlignZero(r.Dot(hit.View))
	if rv >= 0 {
		return core.Zero
	}
	return hit.Material.Ks.Multiply(math.Pow(-rv, float64(hit.Material.Shininess)))
}

// transparency returns the unblocked fraction of the current light, 1 when
// shadows are off
func (rt *SimpleRayTracer) transparency(hit *geometry.Intersection, random *rand.Rand) float64 {
	switch rt.config.Shadows {
	case ShadowHard:
		return rt.hardShadow(hit)
	case ShadowSoft:
		if hit.Light.Radius() > 0 && random != nil {
			return rt.softShadow(hit, random)
		}
		return rt.hardShadow(hit)
	default:
		return 1
	}
}

func (rt *SimpleRayTracer) hardShadow(hit *geometry.Intersection) float64 {
	toLight := hit.L.Negate()
	shadowRay := core.NewRayWithOffset(hit.Point, toLight, hit.Normal)
	if rt.blocked(shadowRay, hit.Light.Distance(hit.Point)) {
		return 0
	}
	return 1
}

// softShadow casts rays from the point to a jittered grid over the light's
// disc, which faces the point
func (rt *SimpleRayTracer) softShadow(hit *geometry.Intersection, random *rand.Rand) float64 {
	toLight := hit.L.Negate()
	distance := hit.Light.Distance(hit.Point)
	grid, err := sampling.NewGrid(hit.Point, distance, perpendicular(toLight), toLight,
		sampling.WithSize(2*hit.Light.Radius()),
		sampling.WithCount(rt.config.ShadowSamples),
		sampling.WithCircular(),
		sampling.WithNormal(hit.Normal))
	if err != nil {
		return rt.hardShadow(hit)
	}

	rays := grid.Rays(random)
	if len(rays) == 0 {
		return rt.hardShadow(hit)
	}
	open := 0
	for _, ray := range rays {
		if !rt.blocked(ray, distance) {
			open++
		}
	}
	return float64(open) / float64(len(rays))
}

func (rt *SimpleRayTracer) blocked(ray core.Ray, maxDistance float64) bool {
	return len(rt.scene.Geometries.Intersect(ray, maxDistance)) > 0
}

// perpendicular returns some vector perpendicular to v
func perpendicular(v core.Vec3) core.Vec3 {
	if math.Abs(v.X) < 0.9 {
		return v.Cross(core.AxisX)
	}
	return v.Cross(core.AxisY)
}
