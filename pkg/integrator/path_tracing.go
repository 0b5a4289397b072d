package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// shadowAcneEpsilon is the smallest accepted hit distance for every ray
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	maxDepth   int
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A nil background renders escaped rays black.
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if background == nil {
		background = NewSolidBackground(core.Vec3{})
	}
	return &PathTracingIntegrator{
		maxDepth:   maxDepth,
		background: background,
	}
}

// MaxDepth returns the bounce limit for camera rays
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor implements the Integrator interface, tracing up to MaxDepth bounces
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.Trace(ray, world, pt.maxDepth, sampler)
}

// Trace computes the color for a single ray with depth bounces remaining
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.background.Color(ray)
	}

	colorEmitted := pt.getEmittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.Trace(scatter.Scattered, world, depth-1, sampler))
	return colorEmitted.Add(colorScattered)
}

// getEmittedLight returns the emitted light from a material if it's emissive
func (pt *PathTracingIntegrator) getEmittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, hit)
	}
	return core.Vec3{}
}
