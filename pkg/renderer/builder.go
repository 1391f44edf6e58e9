package renderer

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/imaging"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/integrator"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/sampling"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/scene"
)

// DefaultSeed seeds the jitter of cameras built without WithSeed
const DefaultSeed = 42

// CameraBuilder collects camera settings. Every method returns a modified
// copy, so a partially configured builder can be reused as a template.
type CameraBuilder struct {
	location *core.Vec3

	// Exactly one way of aiming is kept: an explicit orthogonal pair or a
	// target point with an up hint
	to, up    core.Vec3
	target    *core.Vec3
	hasDirect bool

	transforms []transform

	vpDistance, vpWidth, vpHeight float64
	nx, ny                        int

	antiAliasing  int     // Grid side per pixel, 1 or less for a single ray
	aperture      float64 // Focal distance, 0 for a pinhole
	apertureCount int

	threads       int
	printInterval float64 // Seconds

	rayTracer integrator.Integrator
	seed      int64
	logger    core.Logger
}

// transform changes an aimed camera frame, applied in call order at Build
type transform func(f *frame) error

// frame is the camera position and orthonormal basis
type frame struct {
	location, to, up, right core.Vec3
	target                  *core.Vec3
}

// NewCameraBuilder returns a builder with a 1x1 resolution, sequential
// rendering and no progress output
func NewCameraBuilder() CameraBuilder {
	return CameraBuilder{
		nx:            1,
		ny:            1,
		apertureCount: sampling.DefaultCount,
		seed:          DefaultSeed,
	}
}

// WithLocation sets the camera position
func (b CameraBuilder) WithLocation(location core.Vec3) CameraBuilder {
	b.location = &location
	return b
}

// WithDirection aims the camera along to with the given up vector. The two
// must be orthogonal.
func (b CameraBuilder) WithDirection(to, up core.Vec3) CameraBuilder {
	b.to, b.up = to, up
	b.hasDirect = true
	b.target = nil
	return b
}

// WithTarget aims the camera at target. up is a hint that is made orthogonal
// to the view direction.
func (b CameraBuilder) WithTarget(target, up core.Vec3) CameraBuilder {
	b.target = &target
	b.up = up
	b.hasDirect = false
	return b
}

// WithTargetDefaultUp aims the camera at target with +Y as the up hint
func (b CameraBuilder) WithTargetDefaultUp(target core.Vec3) CameraBuilder {
	return b.WithTarget(target, core.AxisY)
}

// Move translates the camera. A camera aimed at a target keeps looking at it.
func (b CameraBuilder) Move(offset core.Vec3) CameraBuilder {
	return b.withTransform(func(f *frame) error {
		f.location = f.location.Add(offset)
		if f.target == nil {
			return nil
		}
		return f.aim(*f.target, f.up)
	})
}

// Rotate turns the camera around its view direction by degrees
func (b CameraBuilder) Rotate(degrees float64) CameraBuilder {
	return b.withTransform(func(f *frame) error {
		angle := degrees * math.Pi / 180
		f.up = f.up.Multiply(math.Cos(angle)).Add(f.to.Cross(f.up).Multiply(math.Sin(angle))).Normalize()
		f.right = f.to.Cross(f.up).Normalize()
		return nil
	})
}

func (b CameraBuilder) withTransform(t transform) CameraBuilder {
	b.transforms = append(b.transforms[:len(b.transforms):len(b.transforms)], t)
	return b
}

// WithVPDistance sets the distance from the camera to the view plane
func (b CameraBuilder) WithVPDistance(distance float64) CameraBuilder {
	b.vpDistance = distance
	return b
}

// WithVPSize sets the view plane width and height
func (b CameraBuilder) WithVPSize(width, height float64) CameraBuilder {
	b.vpWidth, b.vpHeight = width, height
	return b
}

// WithResolution sets the image size in pixels
func (b CameraBuilder) WithResolution(nx, ny int) CameraBuilder {
	b.nx, b.ny = nx, ny
	return b
}

// WithAntiAliasing traces a count by count jittered grid of rays per pixel.
// A count of 1 or less traces a single ray through the pixel center.
func (b CameraBuilder) WithAntiAliasing(count int) CameraBuilder {
	b.antiAliasing = count
	return b
}

// WithApertureDistance enables depth of field focused at distance along the
// view direction. Zero disables it.
func (b CameraBuilder) WithApertureDistance(distance float64) CameraBuilder {
	b.aperture = distance
	return b
}

// WithApertureSamples sets the side of the aperture sample grid
func (b CameraBuilder) WithApertureSamples(count int) CameraBuilder {
	b.apertureCount = count
	return b
}

// WithMultithreading selects the render mode: 0 renders on the calling
// goroutine, -1 renders rows in parallel, n > 0 starts n pixel workers and
// -2 starts one worker per CPU minus two.
func (b CameraBuilder) WithMultithreading(threads int) CameraBuilder {
	b.threads = threads
	return b
}

// WithDebugPrint logs render progress every interval seconds. Zero disables it.
func (b CameraBuilder) WithDebugPrint(interval float64) CameraBuilder {
	b.printInterval = interval
	return b
}

// WithRayTracer sets the integrator that colors each ray
func (b CameraBuilder) WithRayTracer(rt integrator.Integrator) CameraBuilder {
	b.rayTracer = rt
	return b
}

// WithSeed seeds the pixel and aperture jitter
func (b CameraBuilder) WithSeed(seed int64) CameraBuilder {
	b.seed = seed
	return b
}

// WithLogger sets where progress and summaries go
func (b CameraBuilder) WithLogger(logger core.Logger) CameraBuilder {
	b.logger = logger
	return b
}

// WithSceneCamera applies the viewpoint a scene was composed for
func (b CameraBuilder) WithSceneCamera(config scene.CameraConfig) CameraBuilder {
	up := config.Up
	if up.IsZero() {
		up = core.AxisY
	}
	return b.WithLocation(config.Location).
		WithTarget(config.Target, up).
		WithVPDistance(config.VPDistance).
		WithVPSize(config.VPWidth, config.VPHeight).
		WithResolution(config.Width, config.Height).
		WithApertureDistance(config.Aperture)
}

// Build validates the settings and returns the camera. All problems found are
// reported together.
func (b CameraBuilder) Build() (*Camera, error) {
	var errs []error

	f, err := b.frame()
	if err != nil {
		errs = append(errs, err)
	}
	if core.AlignZero(b.vpWidth) <= 0 || core.AlignZero(b.vpHeight) <= 0 {
		errs = append(errs, fmt.Errorf("%w: %gx%g", ErrNonPositiveSize, b.vpWidth, b.vpHeight))
	}
	if core.AlignZero(b.vpDistance) <= 0 {
		errs = append(errs, fmt.Errorf("view plane: %w: %g", ErrNonPositiveDistance, b.vpDistance))
	}
	if b.nx <= 0 || b.ny <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrNonPositiveResolution, b.nx, b.ny))
	}
	if b.aperture < 0 {
		errs = append(errs, fmt.Errorf("aperture: %w: %g", ErrNonPositiveDistance, b.aperture))
	}
	if b.antiAliasing < 0 || b.apertureCount < 1 {
		errs = append(errs, fmt.Errorf("%w: sample grid side must be positive", sampling.ErrInvalidGrid))
	}
	if b.rayTracer == nil {
		errs = append(errs, ErrMissingRayTracer)
	}
	if b.threads < -2 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidThreads, b.threads))
	}
	if b.printInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrInvalidPrintInterval, b.printInterval))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	cam := &Camera{
		location:      f.location,
		to:            f.to,
		up:            f.up,
		right:         f.right,
		vpDistance:    b.vpDistance,
		width:         b.vpWidth,
		height:        b.vpHeight,
		nx:            b.nx,
		ny:            b.ny,
		antiAliasing:  b.antiAliasing,
		aperture:      b.aperture,
		threads:       resolveThreads(b.threads),
		printInterval: time.Duration(b.printInterval * float64(time.Second)),
		rayTracer:     b.rayTracer,
		writer:        imaging.NewWriter(b.nx, b.ny),
		seed:          b.seed,
		logger:        b.logger,
	}
	if cam.logger == nil {
		cam.logger = core.NopLogger{}
	}
	cam.viewCenter = cam.location.Add(cam.to.Multiply(cam.vpDistance))

	if cam.aperture > 0 {
		// The lens lies in the plane of the camera location. Its rays are
		// retargeted per pixel with WithSingle.
		lens, err := sampling.NewGrid(cam.location.Add(cam.to.Multiply(cam.aperture)), cam.aperture,
			cam.up.Negate(), cam.to.Negate(),
			sampling.WithSize(cam.aperture/2),
			sampling.WithCount(b.apertureCount),
			sampling.WithCircular(),
			sampling.WithDepthOfField())
		if err != nil {
			return nil, fmt.Errorf("aperture: %w", err)
		}
		cam.lens = &lens
	}
	return cam, nil
}

// frame resolves the camera basis and applies the queued transforms
func (b CameraBuilder) frame() (frame, error) {
	var errs []error
	if b.location == nil {
		errs = append(errs, ErrMissingLocation)
	}
	if !b.hasDirect && b.target == nil {
		errs = append(errs, ErrMissingDirection)
	}
	if len(errs) > 0 {
		return frame{}, errors.Join(errs...)
	}

	f := frame{location: *b.location}
	if b.hasDirect {
		if err := f.orient(b.to, b.up); err != nil {
			return frame{}, err
		}
	} else {
		target := *b.target
		f.target = &target
		if err := f.aim(target, b.up); err != nil {
			return frame{}, err
		}
	}

	for _, t := range b.transforms {
		if err := t(&f); err != nil {
			return frame{}, err
		}
	}
	return f, nil
}

// orient takes an explicit orthogonal direction pair
func (f *frame) orient(to, up core.Vec3) error {
	var err error
	if f.to, err = core.Direction(to); err != nil {
		return fmt.Errorf("%w: to: %w", ErrMissingDirection, err)
	}
	if f.up, err = core.Direction(up); err != nil {
		return fmt.Errorf("%w: up: %w", ErrMissingDirection, err)
	}
	if !core.IsZero(f.to.Dot(f.up)) {
		return fmt.Errorf("%w: to %v, up %v", ErrNotOrthogonal, to, up)
	}
	f.right = f.to.Cross(f.up).Normalize()
	return nil
}

// aim looks at target and makes the up hint orthogonal to the view
func (f *frame) aim(target, hint core.Vec3) error {
	to, err := core.Direction(target.Subtract(f.location))
	if err != nil {
		return fmt.Errorf("%w: target %v is the camera location", ErrMissingDirection, target)
	}
	right, err := core.Direction(to.Cross(hint))
	if err != nil {
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrNotOrthogonal, hint)
	}
	f.to = to
	f.right = right
	f.up = right.Cross(to).Normalize()
	return nil
}

func resolveThreads(threads int) int {
	if threads != -2 {
		return threads
	}
	if n := runtime.NumCPU() - 2; n > 1 {
		return n
	}
	return 1
}
