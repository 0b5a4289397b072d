package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// exitEpsilon separates the entry hit from the search for the exit hit
const exitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium (smoke, fog) filling a
// boundary object. The boundary is assumed convex: a ray enters and leaves once.
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium whose isotropic phase function uses texture
func NewConstantMedium(boundary Hittable, density float64, texture material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(texture),
		negInvDensity: -1.0 / density,
	}
}

// NewConstantMediumColor creates a medium with a solid color phase function
func NewConstantMediumColor(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a scattering distance inside the boundary. Rays that travel
// past the exit point pass through untouched.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+exitEpsilon, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	tEntry := math.Max(entry.T, rayT.Min)
	tExit := math.Min(exit.T, rayT.Max)
	if tEntry >= tExit {
		return nil, false
	}

	// Ray origin is inside the medium
	if tEntry < 0 {
		tEntry = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEntry) * rayLength

	// U in (0, 1] keeps the logarithm finite
	hitDistance := m.negInvDensity * math.Log(1-sampler.Get1D())

	// Written as a negated <= so a NaN distance also passes through
	if !(hitDistance <= distanceInsideBoundary) {
		return nil, false
	}

	t := tEntry + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
