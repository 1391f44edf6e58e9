// Package imaging turns traced colors into pixels and PNG files.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/minipNaf/ISE5785-9200-0429/pkg/core"
)

// DefaultDir is the directory WriteToImage saves into unless Dir is changed
const DefaultDir = "images"

// Writer holds an image being rendered. WritePixel may be called from several
// goroutines as long as each pixel is written by one of them.
type Writer struct {
	Dir string // Output directory for WriteToImage

	image *image.RGBA
	ctx   *gg.Context // Draws into image
}

// NewWriter creates a black nx by ny image
func NewWriter(nx, ny int) *Writer {
	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	ctx := gg.NewContextForRGBA(img)
	ctx.SetRGB(0, 0, 0)
	ctx.Clear()
	return &Writer{Dir: DefaultDir, image: img, ctx: ctx}
}

// Width returns the image width in pixels
func (w *Writer) Width() int { return w.image.Rect.Dx() }

// Height returns the image height in pixels
func (w *Writer) Height() int { return w.image.Rect.Dy() }

// Image returns the backing image
func (w *Writer) Image() *image.RGBA { return w.image }

// WritePixel stores a color given on the 0..255 scale. Channels outside the
// range are clamped. Pixels outside the image are ignored.
func (w *Writer) WritePixel(x, y int, c core.Vec3) {
	w.image.SetRGBA(x, y, ToRGBA(c))
}

// DrawGrid paints every pixel whose column or row is a multiple of interval
func (w *Writer) DrawGrid(interval int, c core.Vec3) {
	if interval <= 0 {
		return
	}
	w.ctx.SetColor(ToRGBA(c))
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if x%interval == 0 || y%interval == 0 {
				w.ctx.SetPixel(x, y)
			}
		}
	}
}

// Path returns the file WriteToImage(name) writes
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name+".png")
}

// WriteToImage saves the image as <Dir>/<name>.png
func (w *Writer) WriteToImage(name string) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := w.Path(name)
	if err := w.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image to out in PNG format
func (w *Writer) EncodePNG(out io.Writer) error {
	return w.ctx.EncodePNG(out)
}

// ToRGBA converts a 0..255 color to an opaque pixel, truncating fractions
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 255)
	return color.RGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: 255}
}
