package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/loaders"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-scene", "cornell", "-width", "200", "-spp", "8", "-seed", "0"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if opts.sceneName != "cornell" || opts.width != 200 || opts.spp != 8 || opts.seed != 0 {
		t.Errorf("Unexpected options: %+v", opts)
	}
	for _, name := range []string{"scene", "width", "spp", "seed"} {
		if !opts.set[name] {
			t.Errorf("Expected flag %q to be marked as set", name)
		}
	}
	if opts.set["max-depth"] {
		t.Error("Expected max-depth to be unset")
	}

	if _, err := parseFlags([]string{"-width", "abc"}); err == nil {
		t.Error("Expected error for non-numeric width")
	}
}

func TestRenderConfig_FlagsOnly(t *testing.T) {
	opts, _ := parseFlags([]string{"-scene", "quads", "-max-depth", "5"})
	cfg, err := renderConfig(opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "quads" || cfg.Sampling.MaxDepth != 5 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Sampling.Seed == nil || *cfg.Sampling.Seed != 42 {
		t.Errorf("Expected default seed 42, got %v", cfg.Sampling.Seed)
	}
	if cfg.Camera.Width != 0 || cfg.Sampling.SamplesPerPixel != 0 {
		t.Errorf("Expected unset flags to keep scene values, got %+v", cfg)
	}
}

func TestRenderConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	config := `{"scene": "cornell", "output": "out.exr", "camera": {"width": 300}, "sampling": {"spp": 64, "seed": 7}}`
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	opts, _ := parseFlags([]string{"-config", path, "-spp", "4"})
	cfg, err := renderConfig(opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "cornell" {
		t.Errorf("Expected scene from file, got %q", cfg.Scene)
	}
	if cfg.Output != "out.exr" {
		t.Errorf("Expected output from file, got %q", cfg.Output)
	}
	if cfg.Camera.Width != 300 {
		t.Errorf("Expected width from file, got %d", cfg.Camera.Width)
	}
	if cfg.Sampling.SamplesPerPixel != 4 {
		t.Errorf("Expected spp flag to win, got %d", cfg.Sampling.SamplesPerPixel)
	}
	if cfg.Sampling.Seed == nil || *cfg.Sampling.Seed != 7 {
		t.Errorf("Expected seed from file, got %v", cfg.Sampling.Seed)
	}
}

func TestRenderConfig_FileWithoutOutputUsesDefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	if err := os.WriteFile(path, []byte(`{"scene": "cornell"}`), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	opts, _ := parseFlags([]string{"-config", path, "-scene", "quads"})
	cfg, err := renderConfig(opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	expected := filepath.Join("output", "quads", "render_20240309_140506.png")
	if got := outputPath(cfg, now); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderConfig_Errors(t *testing.T) {
	opts, _ := parseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	if _, err := renderConfig(opts); err == nil {
		t.Error("Expected error for missing config file")
	}

	opts, _ = parseFlags([]string{"-spp", "-3"})
	if _, err := renderConfig(opts); err == nil {
		t.Error("Expected error for negative spp")
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	explicit := &loaders.RenderConfig{Scene: "cornell", Output: "renders/box.exr"}
	if got := outputPath(explicit, now); got != "renders/box.exr" {
		t.Errorf("Expected explicit output path, got %q", got)
	}

	defaulted := &loaders.RenderConfig{Scene: "cornell"}
	expected := filepath.Join("output", "cornell", "render_20240309_140506.png")
	if got := outputPath(defaulted, now); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "renders", "redblue.png")
	err := run([]string{"-scene", "redblue", "-width", "32", "-spp", "1", "-max-depth", "2", "-output", output})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := loaders.LoadImage(output)
	if err != nil {
		t.Fatalf("Failed to load rendered image: %v", err)
	}
	if img.Width != 32 || img.Height != 18 {
		t.Errorf("Expected 32x18 render, got %dx%d", img.Width, img.Height)
	}
}

func TestRun_UnknownScene(t *testing.T) {
	err := run([]string{"-scene", "nonexistent", "-output", filepath.Join(t.TempDir(), "x.png")})
	if err == nil || !strings.Contains(err.Error(), "unknown scene") {
		t.Errorf("Expected unknown scene error, got %v", err)
	}
}

func TestRun_List(t *testing.T) {
	if err := run([]string{"-list"}); err != nil {
		t.Errorf("Unexpected error listing scenes: %v", err)
	}
}
