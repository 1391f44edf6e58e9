// Package sampling builds jittered sample grids used to turn one ray into a
// bundle of rays: pixel antialiasing, lens apertures and area-light discs.
package sampling

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

const (
	// DefaultCount is the number of samples along each side of the grid
	DefaultCount = 9
	// DefaultSize is the side length of the grid
	DefaultSize = 0.5
)

// ErrInvalidGrid is wrapped by every grid construction failure
var ErrInvalidGrid = errors.New("invalid sample grid")

// Grid is a square of count×count jittered sample points centered a given
// distance in front of a single point. It is immutable; WithSingle returns a
// modified copy.
type Grid struct {
	single core.Vec3 // Ray origin, or ray target in depth of field mode
	center core.Vec3
	up     core.Vec3
	right  core.Vec3

	size     float64
	count    int
	circular bool
	dof      bool
	normal   *core.Vec3 // Offset secondary ray origins along this normal
}

// Option configures a Grid
type Option func(*Grid)

// WithSize sets the grid side length
func WithSize(size float64) Option {
	return func(g *Grid) { g.size = size }
}

// WithCount sets the number of samples along each side
func WithCount(count int) Option {
	return func(g *Grid) { g.count = count }
}

// WithCircular keeps only the samples inside the disc inscribed in the grid
func WithCircular() Option {
	return func(g *Grid) { g.circular = true }
}

// WithNormal makes Rays offset every origin along normal, for secondary rays
// leaving a surface
func WithNormal(normal core.Vec3) Option {
	return func(g *Grid) { g.normal = &normal }
}

// WithDepthOfField makes Rays run from each sample toward the single point
func WithDepthOfField() Option {
	return func(g *Grid) { g.dof = true }
}

// NewGrid creates a grid centered at single + forward·distance, lying in the
// plane perpendicular to forward and oriented by up
func NewGrid(single core.Vec3, distance float64, up, forward core.Vec3, opts ...Option) (Grid, error) {
	fwd, err := core.Direction(forward)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: forward: %w", ErrInvalidGrid, err)
	}
	right, err := core.Direction(fwd.Cross(up))
	if err != nil {
		return Grid{}, fmt.Errorf("%w: up %v is zero or parallel to forward: %w", ErrInvalidGrid, up, err)
	}

	g := Grid{
		single: single,
		center: single.Add(fwd.Multiply(distance)),
		up:     right.Cross(fwd).Normalize(),
		right:  right,
		size:   DefaultSize,
		count:  DefaultCount,
	}
	for _, opt := range opts {
		opt(&g)
	}

	if core.AlignZero(g.size) <= 0 {
		return Grid{}, fmt.Errorf("%w: size %g must be positive", ErrInvalidGrid, g.size)
	}
	if g.count < 1 {
		return Grid{}, fmt.Errorf("%w: count %d must be at least 1", ErrInvalidGrid, g.count)
	}
	return g, nil
}

// WithSingle returns a copy with a different single point. The grid stays
// where it is.
func (g Grid) WithSingle(single core.Vec3) Grid {
	g.single = single
	return g
}

// Center returns the grid center
func (g Grid) Center() core.Vec3 { return g.center }

// Up returns the grid's unit up vector
func (g Grid) Up() core.Vec3 { return g.up }

// Right returns the grid's unit right vector
func (g Grid) Right() core.Vec3 { return g.right }

// Size returns the grid side length
func (g Grid) Size() float64 { return g.size }

// Count returns the number of samples along each side
func (g Grid) Count() int { return g.count }

// CellSize returns the side length of one grid cell
func (g Grid) CellSize() float64 { return g.size / float64(g.count) }

// Samples returns the jittered sample points row by row, top row first.
// Each point is displaced from its cell center by at most half a cell along
// each axis. In circular mode points outside the inscribed disc are dropped.
func (g Grid) Samples(random *rand.Rand) []core.Vec3 {
	cell := g.CellSize()
	half := float64(g.count-1) / 2
	radiusSquared := g.size * g.size / 4

	samples := make([]core.Vec3, 0, g.count*g.count)
	for i := 0; i < g.count; i++ {
		for j := 0; j < g.count; j++ {
			x := (float64(j)-half)*cell + jitter(random, cell)
			y := -(float64(i)-half)*cell + jitter(random, cell)

			point := g.center
			if x != 0 {
				point = point.Add(g.right.Multiply(x))
			}
			if y != 0 {
				point = point.Add(g.up.Multiply(y))
			}

			if g.circular && point.DistanceSquared(g.center) > radiusSquared {
				continue
			}
			samples = append(samples, point)
		}
	}
	return samples
}

// Rays returns one ray per sample. Samples that coincide with the single
// point are skipped.
func (g Grid) Rays(random *rand.Rand) []core.Ray {
	samples := g.Samples(random)
	rays := make([]core.Ray, 0, len(samples))
	for _, sample := range samples {
		origin, direction := g.single, sample.Subtract(g.single)
		if g.dof {
			origin, direction = sample, g.single.Subtract(sample)
		}
		ray, err := core.NewValidRay(origin, direction)
		if err != nil {
			continue
		}
		if g.normal != nil && !g.dof {
			ray = core.NewRayWithOffset(origin, direction, *g.normal)
		}
		rays = append(rays, ray)
	}
	return rays
}

// jitter draws a Gaussian offset with deviation cell/4, resampled until it
// stays within half a cell
func jitter(random *rand.Rand, cell float64) float64 {
	for {
		offset := random.NormFloat64() * cell / 4
		if math.Abs(offset) <= cell/2 {
			return offset
		}
	}
}
