package renderer

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Camera maps canvas pixels to world-space rays. The zero aperture disables
// depth of field; oversampling counts are rays per pixel and default to a
// single centered ray.
type Camera struct {
	HSize int
	VSize int
	FOV   float64

	// MaxDepth caps how many reflection and refraction bounces a primary
	// ray may spawn.
	MaxDepth int

	// Oversampling is the antialiasing grid resolution: a value of N casts
	// N x N jittered sub-pixel rays.
	Oversampling int

	// Aperture is the lens radius for depth of field; FocalLength is the
	// distance to the plane in perfect focus, and BlurOversampling the
	// number of lens samples per antialiasing ray.
	Aperture         float64
	FocalLength      float64
	BlurOversampling int

	// Threads is the number of render workers; zero means one per CPU.
	Threads int

	transform        core.Matrix
	transformInverse core.Matrix
	pixelSize        float64
	halfWidth        float64
	halfHeight       float64
}

// NewCamera creates a camera for the given canvas size and horizontal field
// of view, looking down -z from the origin
func NewCamera(hsize, vsize int, fov float64) *Camera {
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	halfWidth, halfHeight := halfView, halfView/aspect
	if aspect < 1 {
		halfWidth, halfHeight = halfView*aspect, halfView
	}

	return &Camera{
		HSize:            hsize,
		VSize:            vsize,
		FOV:              fov,
		MaxDepth:         5,
		Oversampling:     1,
		FocalLength:      1,
		BlurOversampling: 1,
		transform:        core.Identity(),
		transformInverse: core.Identity(),
		pixelSize:        halfWidth * 2 / float64(hsize),
		halfWidth:        halfWidth,
		halfHeight:       halfHeight,
	}
}

// WithTransform attaches a view transform, caching its inverse
func (c *Camera) WithTransform(transform core.Matrix) *Camera {
	c.transform = transform
	c.transformInverse = transform.Inverse()
	return c
}

// Transform returns the attached view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space size of one canvas pixel on the
// projection plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray through the center of the given pixel
func (c *Camera) RayForPixel(px, py int) core.Ray {
	return c.rayForOffset(float64(px)+0.5, float64(py)+0.5)
}

// rayForOffset casts through a fractional canvas position, measured in
// pixels from the top-left corner
func (c *Camera) rayForOffset(x, y float64) core.Ray {
	worldX := c.halfWidth - x*c.pixelSize
	worldY := c.halfHeight - y*c.pixelSize

	pixel := c.transformInverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.transformInverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	return core.NewRay(origin, pixel.Subtract(origin).Normalize())
}

// dofRay jitters the ray origin across the lens aperture disc, keeping the
// point at the focal distance fixed so only out-of-focus geometry blurs
func (c *Camera) dofRay(ray core.Ray, rnd *rand.Rand) core.Ray {
	focalPoint := ray.Position(c.FocalLength)

	r := c.Aperture * math.Sqrt(rnd.Float64())
	theta := 2 * math.Pi * rnd.Float64()
	offset := core.NewVector(r*math.Cos(theta), r*math.Sin(theta), 0)

	origin := ray.Origin.Add(c.transformInverse.MultiplyTuple(offset))
	return core.NewRay(origin, focalPoint.Subtract(origin).Normalize())
}

// pixelColor shades one pixel, averaging a stratified n x n sub-pixel grid
// of antialiasing rays, each carrying its own lens samples
func (c *Camera) pixelColor(w *world.World, px, py int, rnd *rand.Rand) core.Color {
	n := c.Oversampling
	if n < 1 {
		n = 1
	}
	if n == 1 {
		return c.sampleColor(w, c.RayForPixel(px, py), rnd)
	}

	cell := 1 / float64(n)
	sum := core.Black
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := float64(px) + (float64(i)+rnd.Float64())*cell
			y := float64(py) + (float64(j)+rnd.Float64())*cell
			sum = sum.Add(c.sampleColor(w, c.rayForOffset(x, y), rnd))
		}
	}
	return sum.MultiplyScalar(1 / float64(n*n))
}

// sampleColor traces one antialiasing ray, through the lens when depth of
// field is enabled
func (c *Camera) sampleColor(w *world.World, ray core.Ray, rnd *rand.Rand) core.Color {
	if c.Aperture > 0 {
		return c.blurredColor(w, ray, rnd)
	}
	return w.ColorAt(ray, c.MaxDepth)
}

// blurredColor averages the lens samples for one antialiasing ray
func (c *Camera) blurredColor(w *world.World, ray core.Ray, rnd *rand.Rand) core.Color {
	samples := c.BlurOversampling
	if samples < 1 {
		samples = 1
	}

	sum := core.Black
	for s := 0; s < samples; s++ {
		sum = sum.Add(w.ColorAt(c.dofRay(ray, rnd), c.MaxDepth))
	}
	return sum.MultiplyScalar(1 / float64(samples))
}

// Render shades every pixel of the world onto a new canvas, splitting rows
// across worker goroutines. The world is prepared before any ray is cast;
// cancelling the context stops the render between rows.
func (c *Camera) Render(ctx context.Context, w *world.World, logger *zap.Logger) (*Canvas, error) {
	w.Prepare()

	threads := c.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > c.VSize {
		threads = c.VSize
	}

	logger.Info("starting render",
		zap.Int("width", c.HSize),
		zap.Int("height", c.VSize),
		zap.Int("threads", threads),
		zap.Int("maxDepth", c.MaxDepth),
		zap.Int("oversampling", c.Oversampling))
	start := time.Now()

	canvas := NewCanvas(c.HSize, c.VSize)
	rowsPerBand := (c.VSize + threads - 1) / threads

	g, ctx := errgroup.WithContext(ctx)
	for band := 0; band < threads; band++ {
		firstRow := band * rowsPerBand
		lastRow := firstRow + rowsPerBand
		if lastRow > c.VSize {
			lastRow = c.VSize
		}

		rnd := rand.New(rand.NewSource(int64(band) + 1))
		g.Go(func() error {
			for y := firstRow; y < lastRow; y++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				for x := 0; x < c.HSize; x++ {
					canvas.WritePixel(x, y, c.pixelColor(w, x, y, rnd))
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("render complete", zap.Duration("elapsed", time.Since(start)))
	return canvas, nil
}
