package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewQuadsScene creates five colored quads arranged around the view axis
func NewQuadsScene(opts Options) *Scene {
	cameraConfig := cameraFor(geometry.CameraConfig{
		Center:        core.NewVec3(0, 0, 9),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          80.0,
		FocusDistance: 10.0,
	}, opts)

	s := &Scene{
		Name:           "quads",
		CameraConfig:   cameraConfig,
		SamplingConfig: DefaultSamplingConfig(),
		Background:     skyBackground(),
	}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.Add(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	return s
}

// NewSimpleLightScene creates the marbled spheres lit only by a sphere light and a quad light
func NewSimpleLightScene(opts Options) *Scene {
	cameraConfig := cameraFor(geometry.CameraConfig{
		Center:        core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		FocusDistance: 10.0,
	}, opts)

	s := &Scene{
		Name:           "simple-light",
		CameraConfig:   cameraConfig,
		SamplingConfig: DefaultSamplingConfig(),
		Background:     nil, // Black, all light comes from the emitters
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(opts.Seed)))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	return s
}
