package loaders

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// SaveImage writes frame to filename, choosing the format from the extension.
// ".exr" keeps linear HDR values; anything else is written as gamma-corrected PNG.
func SaveImage(frame *renderer.Frame, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if strings.EqualFold(filepath.Ext(filename), ".exr") {
		return SaveEXR(frame, filename)
	}
	return SavePNG(frame, filename)
}

// SavePNG writes the gamma-corrected 8-bit frame as a PNG file
func SavePNG(frame *renderer.Frame, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(file, frame.RGBA()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

// SaveEXR writes the linear frame as an OpenEXR file
func SaveEXR(frame *renderer.Frame, filename string) error {
	img := exr.NewRGBAImage(frameRect(frame))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			img.SetRGBA(x, y, float32(c.X), float32(c.Y), float32(c.Z), 1)
		}
	}

	if err := exr.EncodeFile(filename, img); err != nil {
		return fmt.Errorf("failed to encode EXR: %w", err)
	}
	return nil
}

func frameRect(frame *renderer.Frame) image.Rectangle {
	return image.Rect(0, 0, frame.Width, frame.Height)
}
