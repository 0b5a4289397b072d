package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates three spheres (glass bubble, diffuse, fuzzy gold) on a large ground sphere
func NewDefaultScene(opts Options) *Scene {
	cameraConfig := cameraFor(geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		DefocusAngle:  10.0, // Strong depth of field blur
		FocusDistance: 3.4,
	}, opts)

	s := &Scene{
		Name:           "default",
		CameraConfig:   cameraConfig,
		SamplingConfig: DefaultSamplingConfig(),
		Background:     skyBackground(),
	}

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5) // Air pocket inside the glass
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return s
}

// NewRedBlueScene creates two touching spheres that exactly fill a 90 degree view
func NewRedBlueScene(opts Options) *Scene {
	cameraConfig := cameraFor(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}, opts)

	s := &Scene{
		Name:           "redblue",
		CameraConfig:   cameraConfig,
		SamplingConfig: DefaultSamplingConfig(),
		Background:     skyBackground(),
	}

	r := math.Cos(math.Pi / 4)
	blue := material.NewLambertian(core.NewVec3(0, 0, 1))
	red := material.NewLambertian(core.NewVec3(1, 0, 0))

	s.Add(
		geometry.NewSphere(core.NewVec3(-r, 0, -1), r, blue),
		geometry.NewSphere(core.NewVec3(r, 0, -1), r, red),
	)

	return s
}
