package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/imaging"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/integrator"
	"github.com/minipNaf/ISE5785-9200-0429/pkg/sampling"
)

// Camera casts rays through a view plane and writes the traced colors to an
// image. It is created by CameraBuilder.Build.
type Camera struct {
	location, to, up, right core.Vec3
	viewCenter              core.Vec3 // Center of the view plane

	vpDistance    float64
	width, height float64 // View plane size
	nx, ny        int     // Image size in pixels

	antiAliasing int
	aperture     float64
	lens         *sampling.Grid // Aperture samples around the location, nil for a pinhole

	threads       int
	printInterval time.Duration

	rayTracer integrator.Integrator
	writer    *imaging.Writer
	seed      int64
	logger    core.Logger
}

// Location returns the camera position
func (c *Camera) Location() core.Vec3 { return c.location }

// To returns the unit view direction
func (c *Camera) To() core.Vec3 { return c.to }

// Up returns the unit up direction
func (c *Camera) Up() core.Vec3 { return c.up }

// Right returns the unit right direction
func (c *Camera) Right() core.Vec3 { return c.right }

// Threads returns the resolved render mode, see WithMultithreading
func (c *Camera) Threads() int { return c.threads }

// Writer returns the image the camera renders into
func (c *Camera) Writer() *imaging.Writer { return c.writer }

// Image returns the rendered pixels
func (c *Camera) Image() *image.RGBA { return c.writer.Image() }

// ConstructRays returns the rays for pixel column j and row i. Without
// antialiasing or depth of field this is the single ray through the pixel
// center.
func (c *Camera) ConstructRays(j, i int, random *rand.Rand) []core.Ray {
	rx := c.width / float64(c.nx)
	ry := c.height / float64(c.ny)
	xj := (float64(j) - float64(c.nx-1)/2) * rx
	yi := -(float64(i) - float64(c.ny-1)/2) * ry

	pixel := c.viewCenter
	if !core.IsZero(xj) {
		pixel = pixel.Add(c.right.Multiply(xj))
	}
	if !core.IsZero(yi) {
		pixel = pixel.Add(c.up.Multiply(yi))
	}
	toPixel := pixel.Subtract(c.location)

	rays := []core.Ray{core.NewRay(c.location, toPixel)}
	if c.antiAliasing > 1 {
		grid, err := sampling.NewGrid(c.location, toPixel.Length(), c.up, toPixel,
			sampling.WithSize(rx), sampling.WithCount(c.antiAliasing))
		if err == nil {
			if jittered := grid.Rays(random); len(jittered) > 0 {
				rays = jittered
			}
		}
	}
	if c.lens == nil {
		return rays
	}

	var focused []core.Ray
	for _, ray := range rays {
		focal := ray.At(c.aperture / c.to.Dot(ray.Direction))
		focused = append(focused, c.lens.WithSingle(focal).Rays(random)...)
	}
	if len(focused) == 0 {
		return rays
	}
	return focused
}

// castRay traces every ray of a pixel, writes their average color and
// returns how many rays were traced
func (c *Camera) castRay(j, i int, random *rand.Rand) int {
	var pixel PixelStats
	for _, ray := range c.ConstructRays(j, i, random) {
		pixel.AddSample(c.rayTracer.TraceRay(ray, random))
	}
	c.writer.WritePixel(j, i, pixel.GetColor())
	return pixel.SampleCount
}

// RenderImage renders every pixel in the configured mode and returns once
// the image is complete
func (c *Camera) RenderImage() RenderStats {
	start := time.Now()
	pixels := NewPixelManager(c.nx, c.ny, c.printInterval, c.logger)

	var rays, workers int
	switch {
	case c.threads == 0:
		rays, workers = c.renderSequential(pixels), 1
	case c.threads == -1:
		rays, workers = c.renderRows(pixels)
	default:
		pool := NewWorkerPool(c.threads, c.seed, pixels, c.castRay)
		pool.Start()
		rays, workers = pool.Wait(), pool.GetNumWorkers()
	}
	pixels.Finish()

	stats := newRenderStats(pixels.Completed(), rays, workers, time.Since(start))
	stats.Luminance = CalculateAverageLuminance(c.writer.Image())
	if c.printInterval > 0 {
		c.logger.Printf("Rendered %dx%d: %d rays (%.1f per pixel) on %d workers in %v\n",
			c.nx, c.ny, stats.TotalRays, stats.AverageRays, stats.Workers, stats.Duration)
	}
	return stats
}

func (c *Camera) renderSequential(pixels *PixelManager) int {
	random := rand.New(rand.NewSource(c.seed))
	rays := 0
	for i := 0; i < c.ny; i++ {
		for j := 0; j < c.nx; j++ {
			rays += c.castRay(j, i, random)
			pixels.Done()
		}
	}
	return rays
}

// renderRows renders one row per goroutine, at most GOMAXPROCS at a time.
// Row i jitters with seed+i so the result does not depend on scheduling.
func (c *Camera) renderRows(pixels *PixelManager) (int, int) {
	var rays atomic.Int64
	workers := runtime.GOMAXPROCS(0)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < c.ny; i++ {
		i := i
		g.Go(func() error {
			random := rand.New(rand.NewSource(c.seed + int64(i)))
			count := 0
			for j := 0; j < c.nx; j++ {
				count += c.castRay(j, i, random)
				pixels.Done()
			}
			rays.Add(int64(count))
			return nil
		})
	}
	_ = g.Wait() // Rows never fail
	return int(rays.Load()), workers
}

// PrintGrid draws grid lines every interval pixels over the image
func (c *Camera) PrintGrid(interval int, color core.Vec3) {
	c.writer.DrawGrid(interval, color)
}

// WriteToImage saves the image as a PNG named name in the writer's directory
func (c *Camera) WriteToImage(name string) error {
	return c.writer.WriteToImage(name)
}
