package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGridSize      = 150
	DefaultStride        = 2
	DefaultAlphaMin      = 50
	DefaultLumaMax       = 250
	DefaultDepth         = 16.0
	DefaultDepthStep     = 4.0
	DefaultWidth         = 100
	DefaultHeight        = 40
	DefaultFOV           = 90.0
	DefaultCameraDist    = 130.0
	DefaultTilt          = -0.35
	DefaultYSquash       = 0.55
	DefaultDepthSpan     = 150.0
	DefaultRotationSpeed = 1.0
	DefaultFPS           = 30
	DefaultGlyphRamp     = ".,-~:;=!*#$@"
)

type Config struct {
	Sampler SamplerConfig `yaml:"sampler"`
	Render  RenderConfig  `yaml:"render"`
}

// SamplerConfig bounds the analysis grid and the pixel validity test.
type SamplerConfig struct {
	GridSize  int     `yaml:"grid_size"`
	Stride    int     `yaml:"stride"`
	AlphaMin  int     `yaml:"alpha_min"`
	LumaMax   int     `yaml:"luma_max"`
	Depth     float64 `yaml:"depth"`
	DepthStep float64 `yaml:"depth_step"`
}

// RenderConfig shapes the character grid and the projection.
type RenderConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	FOV           float64 `yaml:"fov"`
	CameraDist    float64 `yaml:"camera_dist"`
	Tilt          float64 `yaml:"tilt"`
	YSquash       float64 `yaml:"y_squash"`
	DepthSpan     float64 `yaml:"depth_span"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	FPS           int     `yaml:"fps"`
	GlyphRamp     string  `yaml:"glyph_ramp"`
}

func DefaultConfig() *Config {
	return &Config{
		Sampler: SamplerConfig{
			GridSize:  DefaultGridSize,
			Stride:    DefaultStride,
			AlphaMin:  DefaultAlphaMin,
			LumaMax:   DefaultLumaMax,
			Depth:     DefaultDepth,
			DepthStep: DefaultDepthStep,
		},
		Render: RenderConfig{
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			FOV:           DefaultFOV,
			CameraDist:    DefaultCameraDist,
			Tilt:          DefaultTilt,
			YSquash:       DefaultYSquash,
			DepthSpan:     DefaultDepthSpan,
			RotationSpeed: DefaultRotationSpeed,
			FPS:           DefaultFPS,
			GlyphRamp:     DefaultGlyphRamp,
		},
	}
}

// Load overlays a yaml file onto the compiled-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	s, r := c.Sampler, c.Render
	if s.GridSize <= 0 {
		return fmt.Errorf("grid_size must be positive, got %d", s.GridSize)
	}
	if s.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", s.Stride)
	}
	if s.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %g", s.Depth)
	}
	if s.DepthStep <= 0 {
		return fmt.Errorf("depth_step must be positive, got %g", s.DepthStep)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render grid must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.FOV <= 0 {
		return fmt.Errorf("fov must be positive, got %g", r.FOV)
	}
	if r.DepthSpan <= 0 {
		return fmt.Errorf("depth_span must be positive, got %g", r.DepthSpan)
	}
	if r.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", r.FPS)
	}
	if r.RotationSpeed <= 0 {
		return fmt.Errorf("rotation_speed must be positive, got %g", r.RotationSpeed)
	}
	// The camera must sit outside anything the sampler can produce, or the
	// perspective divide blows up.
	if r.CameraDist <= s.Depth/2 {
		return fmt.Errorf("camera_dist %g is inside the extruded depth range", r.CameraDist)
	}
	if len(r.GlyphRamp) == 0 {
		return fmt.Errorf("glyph_ramp must not be empty")
	}
	return nil
}

// Layers is the number of extrusion planes a qualifying pixel expands into.
func (s SamplerConfig) Layers() int {
	return int(s.Depth/s.DepthStep) + 1
}
