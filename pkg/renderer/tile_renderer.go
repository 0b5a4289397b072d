package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera          *geometry.Camera
	world           geometry.Hittable
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer. Everything it holds is only read while rendering.
func NewTileRenderer(camera *geometry.Camera, world geometry.Hittable, integratorInst integrator.Integrator, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		world:           world,
		integrator:      integratorInst,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTileBounds renders pixels within the specified bounds into frame
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame *Frame, sampler core.Sampler) RenderStats {
	stats := RenderStats{
		TotalPixels:     bounds.Dx() * bounds.Dy(),
		TotalTiles:      1,
		SamplesPerPixel: tr.samplesPerPixel,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			tr.samplePixel(i, j, &ps, sampler)
			frame.Set(i, j, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// samplePixel accumulates samplesPerPixel jittered camera rays through pixel (i, j)
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler) {
	for ps.SampleCount < tr.samplesPerPixel {
		ray := tr.camera.GetRay(i, j, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}
}
