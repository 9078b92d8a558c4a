package render

import (
	"math"

	"spincloud/internal/cloud"
	"spincloud/internal/config"
)

// camera projects sampler-space points onto the character grid: a spin
// around the vertical axis, a fixed downward tilt, then a perspective
// divide. The tilt never animates, so its trig is precomputed.
type camera struct {
	cfg     config.RenderConfig
	cosTilt float64
	sinTilt float64
}

func newCamera(cfg config.RenderConfig) camera {
	return camera{
		cfg:     cfg,
		cosTilt: math.Cos(cfg.Tilt),
		sinTilt: math.Sin(cfg.Tilt),
	}
}

// rotate spins p around the Y axis by angle, then tilts around X.
func (c camera) rotate(p cloud.Point, angle float64) cloud.Point {
	cy, sy := math.Cos(angle), math.Sin(angle)
	x := p.X*cy + p.Z*sy
	z := -p.X*sy + p.Z*cy
	y := p.Y*c.cosTilt - z*c.sinTilt
	z = p.Y*c.sinTilt + z*c.cosTilt
	return cloud.Point{X: x, Y: y, Z: z}
}

// project maps a rotated point to fractional screen coordinates. Y is
// compressed to correct for character cell aspect. Points at or behind the
// camera are not projectable.
func (c camera) project(p cloud.Point) (fx, fy, depth float64, ok bool) {
	if p.Z >= c.cfg.CameraDist {
		return 0, 0, 0, false
	}
	scale := c.cfg.FOV / (c.cfg.CameraDist - p.Z)
	fx = p.X*scale + float64(c.cfg.Width)/2
	fy = -p.Y*scale*c.cfg.YSquash + float64(c.cfg.Height)/2
	return fx, fy, p.Z, true
}
