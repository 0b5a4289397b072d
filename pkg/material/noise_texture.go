package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// turbulenceDepth is the number of noise octaves in the marble pattern
const turbulenceDepth = 7

// NoiseTexture is a gray marble pattern: a sine along z phase-shifted by turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture with its own noise tables
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{
		Noise: NewPerlin(DefaultPerlinPointCount, sampler),
		Scale: scale,
	}
}

// Evaluate returns the marble intensity at point as a gray color
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	intensity := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, turbulenceDepth)))
	return core.NewVec3(intensity, intensity, intensity)
}
