package loaders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func createTestFrame() *renderer.Frame {
	frame := renderer.NewFrame(3, 2)
	frame.Set(0, 0, core.NewVec3(1, 0, 0))
	frame.Set(1, 0, core.NewVec3(0, 0.25, 0))
	frame.Set(2, 0, core.NewVec3(0, 0, 4)) // HDR value
	frame.Set(0, 1, core.NewVec3(0.5, 0.5, 0.5))
	return frame
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(createTestFrame(), path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	r, g, b, _ := img.At(1, 0).RGBA()
	if r != 0 || g>>8 != 128 || b != 0 {
		t.Errorf("Expected gamma-corrected half green, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	_, _, b, _ = img.At(2, 0).RGBA()
	if b>>8 != 255 {
		t.Errorf("Expected HDR blue to clamp to 255, got %d", b>>8)
	}
}

func TestSaveEXR_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.exr")
	frame := createTestFrame()
	if err := SaveEXR(frame, path); err != nil {
		t.Fatalf("SaveEXR failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Width != frame.Width || loaded.Height != frame.Height {
		t.Fatalf("Expected %dx%d, got %dx%d", frame.Width, frame.Height, loaded.Width, loaded.Height)
	}

	// Half floats keep these values exactly, including the linear HDR one
	for i, expected := range frame.Pixels {
		if loaded.Pixels[i].Subtract(expected).Length() > 1e-3 {
			t.Errorf("Pixel %d: expected %v, got %v", i, expected, loaded.Pixels[i])
		}
	}
}

func TestSaveImage_ChoosesFormatAndCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	tests := []struct {
		name  string
		file  string
		magic []byte
	}{
		{"png", "frame.png", []byte("\x89PNG")},
		{"exr", "frame.exr", []byte{0x76, 0x2f, 0x31, 0x01}},
		{"uppercase exr", "FRAME.EXR", []byte{0x76, 0x2f, 0x31, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := SaveImage(createTestFrame(), path); err != nil {
				t.Fatalf("SaveImage failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			if len(data) < len(tt.magic) || string(data[:len(tt.magic)]) != string(tt.magic) {
				t.Errorf("Expected file to start with %x, got %x", tt.magic, data[:min(len(data), 4)])
			}
		})
	}
}
