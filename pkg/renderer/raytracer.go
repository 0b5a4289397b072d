package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Raytracer renders a scene through a camera into a frame
type Raytracer struct {
	scene  *scene.Scene
	config geometry.CameraConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards log output.
func NewRaytracer(s *scene.Scene, config geometry.CameraConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render renders the scene with the raytracer's camera. Every pixel gets the
// scene's full sample count; tiles are spread over the worker pool.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	if rt.scene == nil {
		return nil, RenderStats{}, errors.New("no scene to render")
	}
	if rt.scene.World == nil {
		if err := rt.scene.Preprocess(); err != nil {
			return nil, RenderStats{}, fmt.Errorf("failed to preprocess scene: %w", err)
		}
	}
	if err := scene.ValidateCameraConfig(rt.config); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid camera: %w", err)
	}
	sampling := rt.scene.SamplingConfig
	if err := sampling.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid sampling config: %w", err)
	}

	start := time.Now()
	camera := geometry.NewCamera(rt.config)
	width, height := camera.ImageWidth(), camera.ImageHeight()
	frame := NewFrame(width, height)

	pathTracer := integrator.NewPathTracingIntegrator(sampling.MaxDepth, rt.scene.Background)
	tileRenderer := NewTileRenderer(camera, rt.scene.World, pathTracer, sampling.SamplesPerPixel)

	tiles := NewTileGrid(width, height, sampling.TileSize, sampling.Seed)
	pool := NewWorkerPool(tileRenderer, len(tiles), sampling.NumWorkers)

	rt.logger.Printf("Rendering %q: %dx%d, %d spp, max depth %d, %d tiles on %d workers\n",
		rt.scene.Name, width, height, sampling.SamplesPerPixel, sampling.MaxDepth, len(tiles), pool.GetNumWorkers())
	rt.logBVHStats()

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Frame: frame})
	}
	pool.Stop()

	stats := RenderStats{SamplesPerPixel: sampling.SamplesPerPixel}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = errors.Join(renderErr, result.Error)
			continue
		}
		stats.Merge(result.Stats)
	}
	stats.Elapsed = time.Since(start)

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render failed: %w", renderErr)
	}

	rt.logger.Printf("Render complete in %v (%d samples, %.0f samples/s)\n",
		stats.Elapsed, stats.TotalSamples, stats.SamplesPerSecond())
	return frame, stats, nil
}

// logBVHStats reports the shape of the scene's acceleration structure
func (rt *Raytracer) logBVHStats() {
	bvh, ok := rt.scene.World.(*geometry.BVHNode)
	if !ok {
		return
	}
	bvhStats := bvh.Stats()
	rt.logger.Printf("BVH: %d objects, %d primitives, %d nodes, depth %d\n",
		bvhStats.Leaves, rt.scene.GetPrimitiveCount(), bvhStats.Nodes, bvhStats.MaxDepth)
}

// Render renders s through the given camera with the scene's sampling settings
func Render(s *scene.Scene, config geometry.CameraConfig) (*Frame, error) {
	frame, _, err := NewRaytracer(s, config, nil).Render()
	return frame, err
}
