package scene

import (
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-smoke", "Cornell Smoke"},
		{"simple_light", "Simple Light"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestCreate_AllScenesPreprocess(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, DefaultOptions())
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if len(s.Objects) == 0 {
				t.Error("Expected scene to have objects")
			}

			if err := s.Preprocess(); err != nil {
				t.Fatalf("Preprocess failed: %v", err)
			}
			if s.World == nil {
				t.Fatal("Expected Preprocess to build the world BVH")
			}
			if s.Background == nil {
				t.Error("Expected Preprocess to fill in a background")
			}

			// The camera must look at something inside the scene bounds
			camera := geometry.NewCamera(s.CameraConfig)
			ray := core.NewRay(s.CameraConfig.Center, camera.GetCameraForward())
			if !s.World.BoundingBox().Hit(ray, core.NewInterval(0.001, 1e9)) {
				t.Error("Expected camera to look toward the scene")
			}
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	_, err := Create("no-such-scene", DefaultOptions())
	if err == nil {
		t.Fatal("Expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "cornell") {
		t.Errorf("Expected error to list available scenes, got %q", err.Error())
	}
}

func TestCreate_SeededScenesAreReproducible(t *testing.T) {
	first, _ := Create("bouncing", Options{Seed: 7})
	second, _ := Create("bouncing", Options{Seed: 7})
	other, _ := Create("bouncing", Options{Seed: 8})

	if len(first.Objects) != len(second.Objects) {
		t.Fatalf("Expected same object count, got %d and %d", len(first.Objects), len(second.Objects))
	}
	for i := range first.Objects {
		if first.Objects[i].BoundingBox() != second.Objects[i].BoundingBox() {
			t.Fatalf("Object %d differs between runs with the same seed", i)
		}
	}

	differs := len(first.Objects) != len(other.Objects)
	for i := 0; !differs && i < len(first.Objects); i++ {
		differs = first.Objects[i].BoundingBox() != other.Objects[i].BoundingBox()
	}
	if !differs {
		t.Error("Expected a different seed to produce a different sphere field")
	}
}

func TestCreate_CameraOverride(t *testing.T) {
	s, err := Create("cornell", Options{Camera: geometry.CameraConfig{Width: 64, VFov: 30}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.CameraConfig.Width != 64 || s.CameraConfig.VFov != 30 {
		t.Errorf("Expected overridden width and fov, got %+v", s.CameraConfig)
	}
	if s.CameraConfig.AspectRatio != 1.0 {
		t.Errorf("Expected Cornell aspect ratio to survive override, got %f", s.CameraConfig.AspectRatio)
	}
}

func TestCreate_EarthTextureOption(t *testing.T) {
	texture := material.NewSolidColor(core.NewVec3(0.1, 0.2, 0.3))
	s, _ := Create("earth", Options{EarthTexture: texture})

	globe, ok := s.Objects[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected globe sphere, got %T", s.Objects[0])
	}
	lambertian, ok := globe.Material.(*material.Lambertian)
	if !ok || lambertian.Albedo != material.Texture(texture) {
		t.Errorf("Expected globe to use the supplied texture")
	}
}

func TestGetPrimitiveCount(t *testing.T) {
	s, _ := Create("cornell", DefaultOptions())

	// 5 walls, 1 light and two 6-sided boxes
	if count := s.GetPrimitiveCount(); count != 18 {
		t.Errorf("Expected 18 primitives, got %d", count)
	}

	s, _ = Create("final", DefaultOptions())
	// 400 ground boxes, light, 3 spheres, boundary + medium, mist, 2 textured spheres, 1000 cluster spheres
	expected := 400*6 + 1 + 3 + 2 + 1 + 2 + 1000
	if count := s.GetPrimitiveCount(); count != expected {
		t.Errorf("Expected %d primitives, got %d", expected, count)
	}
}

func TestPreprocess_Validation(t *testing.T) {
	valid := func() *Scene {
		return &Scene{
			Name:           "test",
			CameraConfig:   geometry.DefaultCameraConfig(),
			SamplingConfig: DefaultSamplingConfig(),
		}
	}

	tests := []struct {
		name    string
		modify  func(s *Scene)
		wantErr string
	}{
		{"valid", func(s *Scene) {}, ""},
		{"zero width", func(s *Scene) { s.CameraConfig.Width = 0 }, "width"},
		{"zero aspect", func(s *Scene) { s.CameraConfig.AspectRatio = 0 }, "aspect"},
		{"zero fov", func(s *Scene) { s.CameraConfig.VFov = 0 }, "field of view"},
		{"straight fov", func(s *Scene) { s.CameraConfig.VFov = 180 }, "field of view"},
		{"negative defocus", func(s *Scene) { s.CameraConfig.DefocusAngle = -1 }, "defocus"},
		{"look at own position", func(s *Scene) { s.CameraConfig.LookAt = s.CameraConfig.Center }, "coincide"},
		{"up along view", func(s *Scene) { s.CameraConfig.Up = core.NewVec3(0, 0, -1) }, "parallel"},
		{"no samples", func(s *Scene) { s.SamplingConfig.SamplesPerPixel = 0 }, "samples"},
		{"negative depth", func(s *Scene) { s.SamplingConfig.MaxDepth = -1 }, "depth"},
		{"zero tile", func(s *Scene) { s.SamplingConfig.TileSize = 0 }, "tile"},
		{"negative workers", func(s *Scene) { s.SamplingConfig.NumWorkers = -2 }, "worker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.modify(s)
			err := s.Preprocess()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
			if s.World != nil {
				t.Error("Expected no world to be built for an invalid scene")
			}
		})
	}
}

func TestPreprocess_KeepsBackground(t *testing.T) {
	sky := integrator.NewSkyBackground()
	s := &Scene{
		CameraConfig:   geometry.DefaultCameraConfig(),
		SamplingConfig: DefaultSamplingConfig(),
		Background:     sky,
	}
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if s.Background != integrator.Background(sky) {
		t.Error("Expected Preprocess to keep the configured background")
	}

	// An empty scene still gets a world that nothing hits
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, hit := s.World.Hit(ray, core.NewInterval(0.001, 1e9), core.NewSeededSampler(1)); hit {
		t.Error("Expected empty world to never be hit")
	}
}

func TestNewGroundQuad_FacesUp(t *testing.T) {
	quad := NewGroundQuad(core.NewVec3(1, 2, 3), 10, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	if !quad.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected ground normal (0,1,0), got %v", quad.Normal)
	}

	box := quad.BoundingBox()
	if box.X.Min != -4 || box.X.Max != 6 || box.Z.Min != -2 || box.Z.Max != 8 {
		t.Errorf("Expected ground centered on (1,2,3) with size 10, got %v", box)
	}
}

func TestListAllScenes(t *testing.T) {
	response := ListAllScenes()

	total := 0
	for i, group := range response.Groups {
		if i > 0 && response.Groups[i-1].Name >= group.Name {
			t.Errorf("Expected groups in alphabetical order, got %q before %q", response.Groups[i-1].Name, group.Name)
		}
		for _, info := range group.Scenes {
			if info.Group != group.Name {
				t.Errorf("Scene %q listed under %q but belongs to %q", info.ID, group.Name, info.Group)
			}
			if info.DisplayName == "" || info.Description == "" {
				t.Errorf("Scene %q is missing metadata", info.ID)
			}
		}
		total += len(group.Scenes)
	}

	if total != len(Names()) {
		t.Errorf("Expected %d scenes listed, got %d", len(Names()), total)
	}
}
