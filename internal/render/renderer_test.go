package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"spincloud/internal/cloud"
	"spincloud/internal/config"
)

func testRenderConfig() config.RenderConfig {
	return config.DefaultConfig().Render
}

// squareCloud mimics a 4x4 opaque square sampled at stride 1: 16 pixel
// columns extruded across 5 depth layers.
func squareCloud() cloud.Cloud {
	var c cloud.Cloud
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			for i := 0; i < 5; i++ {
				c = append(c, cloud.Point{
					X: float64(x) - 2,
					Y: 2 - float64(y),
					Z: -8 + float64(i)*4,
				})
			}
		}
	}
	return c
}

func TestEmptyCloudBlankFrame(t *testing.T) {
	cfg := testRenderConfig()
	r := New(cfg)

	frame := r.Frame()

	if len(frame) != cfg.Width*cfg.Height+cfg.Height {
		t.Fatalf("expected frame length %d, got %d", cfg.Width*cfg.Height+cfg.Height, len(frame))
	}
	for _, ch := range frame {
		if ch != ' ' && ch != '\n' {
			t.Fatalf("empty cloud frame should be blank, found %q", ch)
		}
	}
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	if len(lines) != cfg.Height {
		t.Errorf("expected %d lines, got %d", cfg.Height, len(lines))
	}
}

func TestFrameFullyPopulated(t *testing.T) {
	cfg := testRenderConfig()
	r := New(cfg)
	r.SetCloud(squareCloud())

	lines := strings.Split(strings.TrimRight(r.Frame(), "\n"), "\n")
	if len(lines) != cfg.Height {
		t.Fatalf("expected %d lines, got %d", cfg.Height, len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != cfg.Width {
			t.Fatalf("line %d has %d cells, want %d", i, len([]rune(line)), cfg.Width)
		}
	}
}

func TestFrameIdempotent(t *testing.T) {
	r := New(testRenderConfig())
	r.SetCloud(squareCloud())
	r.Advance(700 * time.Millisecond)

	if r.Frame() != r.Frame() {
		t.Error("same cloud and angle must produce identical frames")
	}
}

func TestRotationPeriodicity(t *testing.T) {
	cam := newCamera(testRenderConfig())
	points := []cloud.Point{
		{X: 10, Y: -4, Z: 3},
		{X: -70, Y: 33, Z: -8},
		{X: 0.5, Y: 0, Z: 0},
	}

	for _, p := range points {
		a := cam.rotate(p, 0)
		b := cam.rotate(p, 2*math.Pi)
		if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 || math.Abs(a.Z-b.Z) > 1e-9 {
			t.Errorf("full rotation moved %+v to %+v", a, b)
		}
	}
}

func TestDepthTestCommutative(t *testing.T) {
	cfg := testRenderConfig()
	cfg.Tilt = 0 // keep both points on the same screen cell

	near := cloud.Point{X: 0, Y: 0, Z: 10}
	far := cloud.Point{X: 0, Y: 0, Z: -10}

	ra := New(cfg)
	ra.SetCloud(cloud.Cloud{near, far})
	rb := New(cfg)
	rb.SetCloud(cloud.Cloud{far, near})

	fa, fb := ra.Frame(), rb.Frame()
	if fa != fb {
		t.Fatal("frame must not depend on point iteration order")
	}

	lines := strings.Split(fa, "\n")
	got := []rune(lines[cfg.Height/2])[cfg.Width/2]

	nearOnly := New(cfg)
	nearOnly.SetCloud(cloud.Cloud{near})
	want := []rune(strings.Split(nearOnly.Frame(), "\n")[cfg.Height/2])[cfg.Width/2]

	if got != want {
		t.Errorf("cell should show the nearer point's glyph %q, got %q", want, got)
	}
}

func TestSquareProjectsCentered(t *testing.T) {
	cfg := testRenderConfig()
	r := New(cfg)
	r.SetCloud(squareCloud())

	frame := r.Frame()
	if len(frame) != cfg.Width*cfg.Height+cfg.Height {
		t.Fatalf("unexpected frame length %d", len(frame))
	}

	minRow, maxRow, minCol, maxCol := cfg.Height, -1, cfg.Width, -1
	for row, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
		for col, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
			if col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	if maxRow < 0 {
		t.Fatal("expected visible geometry")
	}
	midRow, midCol := (minRow+maxRow)/2, (minCol+maxCol)/2
	if abs(midRow-cfg.Height/2) > 3 || abs(midCol-cfg.Width/2) > 3 {
		t.Errorf("cluster centered at (%d,%d), want near (%d,%d)", midCol, midRow, cfg.Width/2, cfg.Height/2)
	}
}

func TestGlyphDepthShading(t *testing.T) {
	cfg := testRenderConfig()
	r := New(cfg)
	ramp := []rune(cfg.GlyphRamp)

	idx := func(g rune) int {
		for i, c := range ramp {
			if c == g {
				return i
			}
		}
		return -1
	}

	nearIdx := idx(r.glyph(40))
	farIdx := idx(r.glyph(-40))
	if nearIdx <= farIdx {
		t.Errorf("near points should map heavier: near=%d far=%d", nearIdx, farIdx)
	}

	// Depths outside the assumed span clamp to the ramp ends.
	if got := r.glyph(1e6); got != ramp[len(ramp)-1] {
		t.Errorf("expected heaviest glyph for extreme near depth, got %q", got)
	}
	if got := r.glyph(-1e6); got != ramp[0] {
		t.Errorf("expected lightest glyph for extreme far depth, got %q", got)
	}
}

func TestAdvanceWrapsMonotonically(t *testing.T) {
	r := New(testRenderConfig())

	r.Advance(500 * time.Millisecond)
	if math.Abs(r.Angle()-0.5) > 1e-9 {
		t.Fatalf("expected angle 0.5 after 500ms at 1 rad/s, got %f", r.Angle())
	}

	prev := r.Angle()
	wrapped := false
	for i := 0; i < 100; i++ {
		r.Advance(100 * time.Millisecond)
		a := r.Angle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %f left [0, 2π)", a)
		}
		if a < prev {
			wrapped = true
		}
		prev = a
	}
	if !wrapped {
		t.Error("expected the angle to wrap at least once")
	}
}

func TestSetAngleNormalizes(t *testing.T) {
	r := New(testRenderConfig())

	r.SetAngle(-math.Pi / 2)
	if math.Abs(r.Angle()-3*math.Pi/2) > 1e-9 {
		t.Errorf("expected normalized angle 3π/2, got %f", r.Angle())
	}

	r.SetAngle(5 * math.Pi)
	if math.Abs(r.Angle()-math.Pi) > 1e-9 {
		t.Errorf("expected normalized angle π, got %f", r.Angle())
	}
}

func TestSetCloudSwapKeepsAngle(t *testing.T) {
	r := New(testRenderConfig())
	r.SetCloud(squareCloud())
	r.Advance(300 * time.Millisecond)
	angle := r.Angle()

	r.SetCloud(nil)

	if r.Running() {
		t.Error("empty cloud should leave the renderer idle")
	}
	if r.Angle() != angle {
		t.Error("cloud swap should not reset the angle")
	}
	for _, ch := range r.Frame() {
		if ch != ' ' && ch != '\n' {
			t.Fatal("swapped-in empty cloud must render blank")
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
