package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame holds the averaged linear color of every pixel, row-major with the origin top-left
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the linear color of pixel (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[y*f.Width+x] = color
}

// RGB8 returns the gamma-corrected 8-bit RGB triples of the frame, row-major
func (f *Frame) RGB8() []uint8 {
	rgb := make([]uint8, 0, len(f.Pixels)*3)
	for _, pixel := range f.Pixels {
		r, g, b := pixel.ToRGB8()
		rgb = append(rgb, r, g, b)
	}
	return rgb
}

// RGBA converts the frame to a displayable image
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, ColorToRGBA(f.At(x, y)))
		}
	}
	return img
}

// ColorToRGBA converts a linear color to RGBA with gamma correction and clamping
func ColorToRGBA(colorVec core.Vec3) color.RGBA {
	r, g, b := colorVec.ToRGB8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
