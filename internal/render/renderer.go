package render

import (
	"math"
	"strings"
	"time"

	"spincloud/internal/cloud"
	"spincloud/internal/config"
)

// Mode selects the rasterization style for a frame.
type Mode int

const (
	// ModeGlyph shades each cell with a ramp character by depth.
	ModeGlyph Mode = iota
	// ModeBraille rasterizes at 2x4 sub-cell resolution with braille runes.
	ModeBraille
)

func (m Mode) String() string {
	if m == ModeBraille {
		return "braille"
	}
	return "glyph"
}

// Renderer owns the rotation angle and the per-frame buffers. A frame is a
// pure function of (cloud, angle): both buffers are fully reset at the start
// of every pass and carry nothing across frames.
//
// The renderer is passive; scheduling lives with the caller. It is not safe
// for concurrent use, matching the single-goroutine tick loop that drives it.
type Renderer struct {
	cfg   config.RenderConfig
	cam   camera
	cloud cloud.Cloud
	angle float64
	ramp  []rune

	depth   []float64
	cells   []rune
	braille []rune
}

func New(cfg config.RenderConfig) *Renderer {
	n := cfg.Width * cfg.Height
	return &Renderer{
		cfg:     cfg,
		cam:     newCamera(cfg),
		ramp:    []rune(cfg.GlyphRamp),
		depth:   make([]float64, n),
		cells:   make([]rune, n),
		braille: make([]rune, n),
	}
}

// SetCloud replaces the point cloud wholesale. The angle is preserved so the
// spin stays visually continuous across swaps.
func (r *Renderer) SetCloud(c cloud.Cloud) { r.cloud = c }

func (r *Renderer) Cloud() cloud.Cloud { return r.cloud }

// Running reports whether there is geometry to draw.
func (r *Renderer) Running() bool { return len(r.cloud) > 0 }

func (r *Renderer) Angle() float64 { return r.angle }

func (r *Renderer) ResetAngle() { r.angle = 0 }

// SetAngle positions the rotation directly, normalized into [0, 2π).
func (r *Renderer) SetAngle(a float64) {
	r.angle = math.Mod(a, 2*math.Pi)
	if r.angle < 0 {
		r.angle += 2 * math.Pi
	}
}

// Advance moves the rotation forward by the configured speed, wrapped mod 2π.
func (r *Renderer) Advance(dt time.Duration) {
	r.angle = math.Mod(r.angle+r.cfg.RotationSpeed*dt.Seconds(), 2*math.Pi)
	if r.angle < 0 {
		r.angle += 2 * math.Pi
	}
}

// FrameIn renders one frame in the given mode.
func (r *Renderer) FrameIn(mode Mode) string {
	if mode == ModeBraille {
		return r.BrailleFrame()
	}
	return r.Frame()
}

// Frame rasterizes the cloud at the current angle into a character grid of
// exactly Height lines of Width runes, each line newline-terminated. An
// empty cloud produces an all-blank frame.
func (r *Renderer) Frame() string {
	w, h := r.cfg.Width, r.cfg.Height
	for i := range r.depth {
		r.depth[i] = math.Inf(-1)
		r.cells[i] = ' '
	}

	for _, p := range r.cloud {
		fx, fy, z, ok := r.cam.project(r.cam.rotate(p, r.angle))
		if !ok {
			continue
		}
		col, row := int(fx), int(fy)
		if fx < 0 || col >= w || fy < 0 || row >= h {
			continue
		}
		idx := row*w + col
		// Nearest point wins regardless of iteration order.
		if z <= r.depth[idx] {
			continue
		}
		r.depth[idx] = z
		r.cells[idx] = r.glyph(z)
	}

	var b strings.Builder
	b.Grow(h * (w + 1))
	for row := 0; row < h; row++ {
		b.WriteString(string(r.cells[row*w : (row+1)*w]))
		b.WriteByte('\n')
	}
	return b.String()
}

// glyph maps a rotated depth onto the ramp: near points toward the heavy
// end, far points toward the light end.
func (r *Renderer) glyph(z float64) rune {
	t := (z + r.cfg.DepthSpan/2) / r.cfg.DepthSpan
	i := int(t * float64(len(r.ramp)))
	if i < 0 {
		i = 0
	}
	if i >= len(r.ramp) {
		i = len(r.ramp) - 1
	}
	return r.ramp[i]
}
