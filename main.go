package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	configPath   string
	sceneName    string
	outputPath   string
	earthTexture string
	width        int
	spp          int
	maxDepth     int
	workers      int
	seed         int64
	list         bool
	help         bool
	set          map[string]bool
	usage        func()
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "JSON render config file")
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name (see -list)")
	fs.StringVar(&opts.outputPath, "output", "", "Output file (.png or .exr), default output/<scene>/render_<timestamp>.png")
	fs.StringVar(&opts.earthTexture, "earth", "", "Image (PNG, JPEG or EXR) used as the earth texture")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 keeps the scene's)")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 keeps the scene's)")
	fs.IntVar(&opts.maxDepth, "max-depth", 0, "Maximum bounces per path (0 keeps the scene's)")
	fs.IntVar(&opts.workers, "workers", 0, "Worker goroutines (0 uses all CPUs)")
	fs.Int64Var(&opts.seed, "seed", 42, "Random seed for scene construction and sampling")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.usage = fs.PrintDefaults
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// renderConfig merges the optional config file with the flags. Flags given
// explicitly on the command line win over the file.
func renderConfig(opts *options) (*loaders.RenderConfig, error) {
	cfg := &loaders.RenderConfig{Scene: opts.sceneName}
	if opts.configPath != "" {
		loaded, err := loaders.LoadRenderConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if opts.set["scene"] {
			cfg.Scene = opts.sceneName
		}
	}

	if opts.set["output"] || cfg.Output == "" {
		cfg.Output = opts.outputPath
	}
	if opts.set["earth"] {
		cfg.EarthTexture = opts.earthTexture
	}
	if opts.set["width"] {
		cfg.Camera.Width = opts.width
	}
	if opts.set["spp"] {
		cfg.Sampling.SamplesPerPixel = opts.spp
	}
	if opts.set["max-depth"] {
		cfg.Sampling.MaxDepth = opts.maxDepth
	}
	if opts.set["workers"] {
		cfg.Sampling.Workers = opts.workers
	}
	if opts.set["seed"] || cfg.Sampling.Seed == nil {
		seed := opts.seed
		cfg.Sampling.Seed = &seed
	}
	if cfg.Camera.Width < 0 || cfg.Sampling.SamplesPerPixel < 0 || cfg.Sampling.MaxDepth < 0 || cfg.Sampling.Workers < 0 {
		return nil, fmt.Errorf("sizes and counts must not be negative")
	}
	return cfg, nil
}

// outputPath returns where the render is written
func outputPath(cfg *loaders.RenderConfig, now time.Time) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", cfg.Scene, fmt.Sprintf("render_%s.png", timestamp))
}

func printHelp(opts *options) {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	opts.usage()
	fmt.Println()
	printScenes()
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, group := range scene.ListAllScenes().Groups {
		fmt.Printf("  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("    %-14s %s\n", info.ID, info.Description)
		}
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(opts)
		return nil
	}
	if opts.list {
		printScenes()
		return nil
	}

	cfg, err := renderConfig(opts)
	if err != nil {
		return err
	}

	fmt.Println("Starting Path Tracer...")
	selectedScene, err := cfg.BuildScene()
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	raytracer := renderer.NewRaytracer(selectedScene, selectedScene.CameraConfig, logger)
	frame, stats, err := raytracer.Render()
	if err != nil {
		return err
	}

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Samples per pixel: %d (%d samples total)\n", stats.SamplesPerPixel, stats.TotalSamples)

	filename := outputPath(cfg, time.Now())
	if err := loaders.SaveImage(frame, filename); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
