package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Objects        []geometry.Hittable   // Objects in the scene
	World          geometry.Hittable     // Root of the acceleration structure, built by Preprocess
	CameraConfig   geometry.CameraConfig // Camera placement and image size
	SamplingConfig SamplingConfig
	Background     integrator.Background // Radiance for rays that escape, black when nil
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Tile edge length in pixels
	NumWorkers      int   // Worker goroutines, 0 uses every CPU
	Seed            int64 // Base seed for the per-tile random generators
}

// DefaultSamplingConfig returns the sampling settings used by most scenes
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Options customizes built-in scene construction
type Options struct {
	Seed         int64                 // Seed for randomly placed objects and noise tables
	EarthTexture material.Texture      // Globe texture, a generated grid when nil
	Camera       geometry.CameraConfig // Non-zero fields override the scene camera
}

// DefaultOptions returns options that reproduce the built-in scenes exactly
func DefaultOptions() Options {
	return Options{Seed: 42}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	// Create corner at bottom-left of the quad
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0) which normalizes to (0,1,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// Validate checks the camera and sampling settings before rendering
func (s *Scene) Validate() error {
	if err := ValidateCameraConfig(s.CameraConfig); err != nil {
		return err
	}
	return s.SamplingConfig.Validate()
}

// ValidateCameraConfig rejects camera settings that cannot produce an image
func ValidateCameraConfig(camera geometry.CameraConfig) error {
	if camera.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", camera.Width)
	}
	if camera.AspectRatio <= 0 || math.IsInf(camera.AspectRatio, 0) || math.IsNaN(camera.AspectRatio) {
		return fmt.Errorf("aspect ratio must be a positive number, got %g", camera.AspectRatio)
	}
	if camera.VFov <= 0 || camera.VFov >= 180 {
		return fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %g", camera.VFov)
	}
	if camera.DefocusAngle < 0 {
		return fmt.Errorf("defocus angle must not be negative, got %g", camera.DefocusAngle)
	}
	view := camera.LookAt.Subtract(camera.Center)
	if view.NearZero() {
		return errors.New("camera center and look-at point coincide")
	}
	if camera.Up.Cross(view).NearZero() {
		return errors.New("camera up vector is parallel to the view direction")
	}
	return nil
}

// Validate rejects sampling settings the renderer cannot honor
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	return nil
}

// Preprocess validates the scene and builds the BVH over its objects
func (s *Scene) Preprocess() error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid scene %q: %w", s.Name, err)
	}

	if s.Background == nil {
		s.Background = integrator.NewSolidBackground(core.Vec3{})
	}

	s.World = geometry.NewBVH(s.Objects)
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, object := range s.Objects {
		count += countPrimitives(object)
	}
	return count
}

// countPrimitives counts primitives in a single object, looking through groups and transforms
func countPrimitives(object geometry.Hittable) int {
	switch obj := object.(type) {
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects() {
			count += countPrimitives(child)
		}
		return count
	case *geometry.BVHNode:
		count := 0
		if obj.Left != nil {
			count += countPrimitives(obj.Left)
		}
		if obj.Right != nil {
			count += countPrimitives(obj.Right)
		}
		return count
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	default:
		// Spheres, quads and media count as 1 primitive each
		return 1
	}
}

// cameraFor applies the option overrides to a scene's default camera
func cameraFor(defaults geometry.CameraConfig, opts Options) geometry.CameraConfig {
	return geometry.MergeCameraConfig(defaults, opts.Camera)
}

// skyBackground is the light blue backdrop shared by the daylight scenes
func skyBackground() integrator.Background {
	return integrator.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0))
}
