package renderer

import (
	"image"
	"time"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels int           // Number of pixels written
	TotalRays   int           // Number of primary rays traced
	AverageRays float64       // Rays per pixel
	Workers     int           // Goroutines that rendered pixels
	Duration    time.Duration // Wall time of the render
	Luminance   float64       // Average image luminance in 0..1
}

func newRenderStats(pixels, rays, workers int, duration time.Duration) RenderStats {
	stats := RenderStats{TotalPixels: pixels, TotalRays: rays, Workers: workers, Duration: duration}
	if pixels > 0 {
		stats.AverageRays = float64(rays) / float64(pixels)
	}
	return stats
}

// PixelStats accumulates the colors traced for one pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Sum of traced colors
	SampleCount int       // Number of rays traced
}

// AddSample adds a traced color
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the average traced color, black before any sample
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in 0..1
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}
	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return total / float64(pixels)
}
