// Package sampler turns raster images into point clouds. An image is
// downscaled onto a bounded analysis grid, scanned on a fixed stride, and
// every pixel that is opaque enough and dark enough is extruded into a
// column of points along the depth axis.
package sampler

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"spincloud/internal/cloud"
	"spincloud/internal/config"
)

type options struct {
	brightness float64
	contrast   float64
	invert     bool
}

type Option func(*options)

// WithBrightness shifts pixel brightness by a percentage in [-100, 100]
// before sampling.
func WithBrightness(pct float64) Option {
	return func(o *options) { o.brightness = pct }
}

// WithContrast shifts pixel contrast by a percentage in [-100, 100] before
// sampling.
func WithContrast(pct float64) Option {
	return func(o *options) { o.contrast = pct }
}

// WithInvert inverts colors before sampling, for light-on-dark sources.
func WithInvert() Option {
	return func(o *options) { o.invert = true }
}

// Load decodes an image from r and samples it. A decode failure returns a
// wrapped error and no cloud; the caller's previous cloud stays intact.
func Load(r io.Reader, cfg config.SamplerConfig, opts ...Option) (cloud.Cloud, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return Sample(img, cfg, opts...), nil
}

// Sample converts a decoded image into a point cloud. The result fully
// replaces any prior cloud; zero qualifying pixels yield an empty cloud,
// which is valid.
func Sample(img image.Image, cfg config.SamplerConfig, opts ...Option) cloud.Cloud {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	img = preprocess(img, o)
	img = fit(img, cfg.GridSize)

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	halfW, halfH := float64(w)/2, float64(h)/2
	layers := cfg.Layers()

	var pts cloud.Cloud
	for y := 0; y < h; y += cfg.Stride {
		for x := 0; x < w; x += cfg.Stride {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if !qualifies(c, cfg) {
				continue
			}
			// Center on the image midpoint and flip Y so pixel rows
			// counting down become scene-space up.
			px := float64(x) - halfW
			py := halfH - float64(y)
			for i := 0; i < layers; i++ {
				pts = append(pts, cloud.Point{
					X: px,
					Y: py,
					Z: -cfg.Depth/2 + float64(i)*cfg.DepthStep,
				})
			}
		}
	}
	return pts
}

// qualifies is the validity predicate: sufficiently opaque and not
// near-white. The dual rule covers transparent-background logos and
// white-background photos with one test. The channels must be straight
// alpha: premultiplied values darken bright semi-transparent pixels enough
// to sneak past the near-white cutoff.
func qualifies(c color.NRGBA, cfg config.SamplerConfig) bool {
	if int(c.A) <= cfg.AlphaMin {
		return false
	}
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	return avg < cfg.LumaMax
}

func preprocess(img image.Image, o options) image.Image {
	if o.brightness != 0 {
		img = imaging.AdjustBrightness(img, o.brightness)
	}
	if o.contrast != 0 {
		img = imaging.AdjustContrast(img, o.contrast)
	}
	if o.invert {
		img = imaging.Invert(img)
	}
	return img
}

// fit downscales so the larger dimension maps to the grid bound, preserving
// aspect ratio. Images already inside the grid pass through untouched.
func fit(img image.Image, grid int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= grid && h <= grid {
		return img
	}
	if w >= h {
		return resize.Resize(uint(grid), 0, img, resize.Lanczos3)
	}
	return resize.Resize(0, uint(grid), img, resize.Lanczos3)
}
