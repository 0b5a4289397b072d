package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellBoxSize = 555.0

// cornellCameraConfig looks into the open side of the box
func cornellCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:            core.NewVec3(0, 1, 0),
		Width:         600,
		AspectRatio:   1.0,
		VFov:          40.0,
		FocusDistance: 10.0,
	}
}

// cornellSamplingConfig uses more samples per pixel, the small light is noisy
func cornellSamplingConfig() SamplingConfig {
	config := DefaultSamplingConfig()
	config.SamplesPerPixel = 200
	return config
}

// addCornellWalls adds the red, green and white walls of the box
func addCornellWalls(s *Scene, white material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	size := cornellBoxSize
	s.Add(
		// Right wall (green) - YZ plane at x=size
		geometry.NewQuad(core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), red),
		// Floor - XZ plane at y=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), white),
		// Ceiling - XZ plane at y=size
		geometry.NewQuad(core.NewVec3(size, size, size), core.NewVec3(-size, 0, 0), core.NewVec3(0, 0, -size), white),
		// Back wall - XY plane at z=size
		geometry.NewQuad(core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), white),
	)
}

// cornellBlocks returns the tall and short boxes, rotated and placed on the floor
func cornellBlocks(white material.Material) (tall, short geometry.Hittable) {
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellScene creates a classic Cornell box scene with two rotated blocks
func NewCornellScene(opts Options) *Scene {
	s := &Scene{
		Name:           "cornell",
		CameraConfig:   cameraFor(cornellCameraConfig(), opts),
		SamplingConfig: cornellSamplingConfig(),
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	addCornellWalls(s, white)

	// Ceiling light, slightly below the ceiling
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	s.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBlocks(white)
	s.Add(tall, short)

	return s
}

// NewCornellSmokeScene creates the Cornell box with its blocks replaced by smoke and fog
func NewCornellSmokeScene(opts Options) *Scene {
	s := &Scene{
		Name:           "cornell-smoke",
		CameraConfig:   cameraFor(cornellCameraConfig(), opts),
		SamplingConfig: cornellSamplingConfig(),
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	addCornellWalls(s, white)

	// A larger, dimmer light keeps the media from looking noisy
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBlocks(white)
	s.Add(
		geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s
}
