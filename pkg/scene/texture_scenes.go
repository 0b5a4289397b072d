package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// textureCameraConfig frames a unit-scale subject from the side, as the texture scenes share it
func textureCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		FocusDistance: 10.0,
	}
}

// NewCheckeredScene creates two large checkered spheres touching at the origin
func NewCheckeredScene(opts Options) *Scene {
	s := &Scene{
		Name:           "checkered",
		CameraConfig:   cameraFor(textureCameraConfig(), opts),
		SamplingConfig: DefaultSamplingConfig(),
		Background:     skyBackground(),
	}

	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return s
}

// NewEarthScene creates a single globe wrapped in an equirectangular texture
func NewEarthScene(opts Options) *Scene {
	defaults := textureCameraConfig()
	defaults.Center = core.NewVec3(0, 0, 12)

	s := &Scene{
		Name:           "earth",
		CameraConfig:   cameraFor(defaults, opts),
		SamplingConfig: DefaultSamplingConfig(),
		Background:     skyBackground(),
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture(opts))))
	return s
}

// earthTexture returns the caller's globe texture or a lat-long grid stand-in
func earthTexture(opts Options) material.Texture {
	if opts.EarthTexture != nil {
		return opts.EarthTexture
	}
	return material.NewLatLongGridTexture(512, 256, 32)
}

// NewPerlinScene creates a marbled sphere resting on a marbled ground
func NewPerlinScene(opts Options) *Scene {
	s := &Scene{
		Name:           "perlin",
		CameraConfig:   cameraFor(textureCameraConfig(), opts),
		SamplingConfig: DefaultSamplingConfig(),
		Background:     skyBackground(),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewSeededSampler(opts.Seed)))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return s
}
