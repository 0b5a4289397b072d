package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg []float64

// CameraCfg overrides the camera of a scene. Zero fields keep the scene's value.
type CameraCfg struct {
	LookFrom      Vec3Cfg `json:"lookFrom,omitempty"`
	LookAt        Vec3Cfg `json:"lookAt,omitempty"`
	Up            Vec3Cfg `json:"up,omitempty"`
	Width         int     `json:"width,omitempty"`
	AspectRatio   float64 `json:"aspectRatio,omitempty"`
	VFov          float64 `json:"vfov,omitempty"`
	DefocusAngle  float64 `json:"defocusAngle,omitempty"`
	FocusDistance float64 `json:"focusDistance,omitempty"`
}

// SamplingCfg overrides the sampling settings of a scene. Zero fields keep the scene's value.
type SamplingCfg struct {
	SamplesPerPixel int    `json:"spp,omitempty"`
	MaxDepth        int    `json:"maxDepth,omitempty"`
	TileSize        int    `json:"tileSize,omitempty"`
	Workers         int    `json:"workers,omitempty"`
	Seed            *int64 `json:"seed,omitempty"`
}

// RenderConfig describes a render job read from a JSON file
type RenderConfig struct {
	Scene        string      `json:"scene"`
	Output       string      `json:"output,omitempty"`
	EarthTexture string      `json:"earthTexture,omitempty"`
	Camera       CameraCfg   `json:"camera"`
	Sampling     SamplingCfg `json:"sampling"`
	Background   Vec3Cfg     `json:"background,omitempty"`
}

// Vec returns the vector, or the zero vector when unset
func (v Vec3Cfg) Vec() core.Vec3 {
	if len(v) != 3 {
		return core.Vec3{}
	}
	return core.NewVec3(v[0], v[1], v[2])
}

func (v Vec3Cfg) validate(name string) error {
	if len(v) != 0 && len(v) != 3 {
		return fmt.Errorf("%s must have 3 components, got %d", name, len(v))
	}
	return nil
}

// LoadRenderConfig reads and validates a JSON render config file
func LoadRenderConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseRenderConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRenderConfig decodes and validates a JSON render config.
// The scene defaults to "default"; an empty output is left for the caller to choose.
func ParseRenderConfig(data []byte) (*RenderConfig, error) {
	var cfg RenderConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Defaults / validation
	if cfg.Scene == "" {
		cfg.Scene = "default"
	}
	for name, v := range map[string]Vec3Cfg{
		"camera.lookFrom": cfg.Camera.LookFrom,
		"camera.lookAt":   cfg.Camera.LookAt,
		"camera.up":       cfg.Camera.Up,
		"background":      cfg.Background,
	} {
		if err := v.validate(name); err != nil {
			return nil, err
		}
	}
	if cfg.Camera.Width < 0 || cfg.Sampling.SamplesPerPixel < 0 || cfg.Sampling.MaxDepth < 0 ||
		cfg.Sampling.TileSize < 0 || cfg.Sampling.Workers < 0 {
		return nil, fmt.Errorf("sizes and counts must not be negative")
	}

	return &cfg, nil
}

// SceneOptions returns the scene construction options the config asks for
func (c *RenderConfig) SceneOptions() (scene.Options, error) {
	opts := scene.DefaultOptions()
	if c.Sampling.Seed != nil {
		opts.Seed = *c.Sampling.Seed
	}

	if c.EarthTexture != "" {
		texture, err := LoadTexture(c.EarthTexture)
		if err != nil {
			return opts, fmt.Errorf("failed to load earth texture: %w", err)
		}
		opts.EarthTexture = texture
	}
	return opts, nil
}

// CameraOverride converts the camera section into a partial camera config
func (c *RenderConfig) CameraOverride() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        c.Camera.LookFrom.Vec(),
		LookAt:        c.Camera.LookAt.Vec(),
		Up:            c.Camera.Up.Vec(),
		Width:         c.Camera.Width,
		AspectRatio:   c.Camera.AspectRatio,
		VFov:          c.Camera.VFov,
		DefocusAngle:  c.Camera.DefocusAngle,
		FocusDistance: c.Camera.FocusDistance,
	}
}

// Apply overrides the camera, sampling and background settings of s
func (c *RenderConfig) Apply(s *scene.Scene) {
	s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, c.CameraOverride())

	sampling := &s.SamplingConfig
	if c.Sampling.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = c.Sampling.SamplesPerPixel
	}
	if c.Sampling.MaxDepth > 0 {
		sampling.MaxDepth = c.Sampling.MaxDepth
	}
	if c.Sampling.TileSize > 0 {
		sampling.TileSize = c.Sampling.TileSize
	}
	if c.Sampling.Workers > 0 {
		sampling.NumWorkers = c.Sampling.Workers
	}
	if c.Sampling.Seed != nil {
		sampling.Seed = *c.Sampling.Seed
	}

	if len(c.Background) == 3 {
		s.Background = integrator.NewSolidBackground(c.Background.Vec())
	}
}

// BuildScene creates the configured scene with every override applied
func (c *RenderConfig) BuildScene() (*scene.Scene, error) {
	opts, err := c.SceneOptions()
	if err != nil {
		return nil, err
	}
	s, err := scene.Create(c.Scene, opts)
	if err != nil {
		return nil, err
	}
	c.Apply(s)
	return s, nil
}
