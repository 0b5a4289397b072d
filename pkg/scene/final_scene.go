package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewFinalScene creates the showcase scene exercising every primitive, material and texture
func NewFinalScene(opts Options) *Scene {
	cameraConfig := cameraFor(geometry.CameraConfig{
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         800,
		AspectRatio:   1.0,
		VFov:          40.0,
		FocusDistance: 10.0,
	}, opts)

	s := &Scene{
		Name:           "final",
		CameraConfig:   cameraConfig,
		SamplingConfig: cornellSamplingConfig(),
	}

	sampler := core.NewSeededSampler(opts.Seed)

	// Ground of boxes with random heights, grouped under their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxesPerSide := 20
	boxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Add(geometry.NewBVH(boxes))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	// Motion blurred sphere
	center := core.NewVec3(400, 400, 200)
	s.Add(geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass ball filled with blue subsurface haze
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	s.Add(
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture(opts))),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(0.2, sampler))),
	)

	// Cluster of small white spheres, rotated and lifted as one object
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3Range(sampler, 0, 165), 10, white))
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(geometry.NewBVH(cluster), 15), core.NewVec3(-100, 270, 395)))

	return s
}
