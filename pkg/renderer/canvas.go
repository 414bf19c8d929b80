// Package renderer turns a world and a camera into pixels: ray generation
// with oversampling and depth of field, a shared canvas, and a parallel
// row-band render loop.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ppmMaxLineLength is the longest line the PPM writer emits; the format
// caps lines at 70 characters.
const ppmMaxLineLength = 70

// Canvas is a fixed-size grid of linear-light colors. Writes are
// mutex-guarded so render workers can share one canvas.
type Canvas struct {
	Width  int
	Height int

	mu     sync.Mutex
	pixels []core.Color
}

// NewCanvas creates a canvas of the given size with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel stores a color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.mu.Lock()
	c.pixels[y*c.Width+x] = color
	c.mu.Unlock()
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pixels[y*c.Width+x]
}

// ToPPM serializes the canvas as a plain PPM (P3) string. Components are
// clamped to [0, 255] with no gamma applied, and lines wrap at 70 columns.
func (c *Canvas) ToPPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		line := ""
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range []float64{p.R, p.G, p.B} {
				component := fmt.Sprintf("%d", clampComponent(v))
				if line == "" {
					line = component
				} else if len(line)+1+len(component) > ppmMaxLineLength {
					b.WriteString(line + "\n")
					line = component
				} else {
					line += " " + component
				}
			}
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Image converts the canvas to an sRGB image for PNG or JPEG encoding.
// Canvas colors are linear light; this is where gamma is applied.
func (c *Canvas) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			srgb := colorful.LinearRgb(clamp01(p.R), clamp01(p.G), clamp01(p.B))
			r, g, b := srgb.RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func clampComponent(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
