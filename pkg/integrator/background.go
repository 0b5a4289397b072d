package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies radiance for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a uniform background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color implements the Background interface
func (s *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Value
}

// GradientBackground blends vertically between two colors
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// NewSkyBackground returns the blue-over-white sky used by the simpler scenes
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Color returns a gradient color based on ray direction
func (g *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}
