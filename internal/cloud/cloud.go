// Package cloud holds the point-cloud value types produced by the sampler
// and consumed by the renderer.
package cloud

import "math"

// Point is a 3D coordinate in sampler space: origin at the image center,
// Y up, Z along the extrusion axis. Points are never mutated after sampling.
type Point struct {
	X, Y, Z float64
}

// Cloud is the sampled geometry for one image. The renderer treats it as an
// unordered set; a new image replaces the whole slice.
type Cloud []Point

// Bounds returns the axis-aligned extent of the cloud. Zero points give a
// zero extent.
func (c Cloud) Bounds() (min, max Point) {
	if len(c) == 0 {
		return Point{}, Point{}
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}
	return min, max
}

// Radius is the largest distance from the origin to any point, a cheap bound
// on how far rotation can move geometry.
func (c Cloud) Radius() float64 {
	var r2 float64
	for _, p := range c {
		d2 := p.X*p.X + p.Y*p.Y + p.Z*p.Z
		if d2 > r2 {
			r2 = d2
		}
	}
	return math.Sqrt(r2)
}

// DepthHistogram buckets point Z values into bins across the cloud's depth
// extent, for plotting.
func (c Cloud) DepthHistogram(bins int) []float64 {
	if bins <= 0 {
		return nil
	}
	hist := make([]float64, bins)
	if len(c) == 0 {
		return hist
	}
	min, max := c.Bounds()
	span := max.Z - min.Z
	if span == 0 {
		hist[0] = float64(len(c))
		return hist
	}
	for _, p := range c {
		i := int((p.Z - min.Z) / span * float64(bins))
		if i >= bins {
			i = bins - 1
		}
		hist[i]++
	}
	return hist
}
